// Package utils provides general-purpose helper utilities used across the
// application: HTTP client construction, JSON response writing and
// unverified JWT inspection.
package utils
