// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client builds the shared handle to the hosted backend used for
// authentication and session storage.
//
// A [Client] is created once in main with [New] and passed explicitly to the
// code that needs it. Construction validates the endpoint and access key and
// fails with a *config.ConfigurationError instead of deferring the failure to
// the first request. Sessions are always persisted in the supplied
// [store.SessionStorage] and always refreshed before they expire; the
// [RefreshJob] does the latter in the background.
package client
