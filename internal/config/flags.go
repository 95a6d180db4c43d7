// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses all configuration flags from args (usually os.Args[1:]).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-request-timeout inbound request timeout (e.g., "30s", "1m")
//	-operator-token bearer token required by the session API
//	-backend-url hosted backend endpoint URL
//	-backend-access-key hosted backend access key
//	-backend-timeout outbound backend request timeout
//	-d session database DSN
//	-refresh-interval session refresh interval (e.g., "30s")
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("homecare-jobs", flag.ContinueOnError)

	var serverAddress NetAddress
	var requestTimeout time.Duration
	var operatorToken string
	var backendURL string
	var backendAccessKey string
	var backendTimeout time.Duration
	var databaseDSN string
	var refreshInterval time.Duration
	var jsonConfigPath string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&operatorToken, "operator-token", "", "Bearer token required by the session API")
	fs.StringVar(&backendURL, "backend-url", "", "Hosted backend endpoint URL")
	fs.StringVar(&backendAccessKey, "backend-access-key", "", "Hosted backend access key")
	fs.DurationVar(&backendTimeout, "backend-timeout", 0, "Backend request timeout (e.g., 15s)")
	fs.StringVar(&databaseDSN, "d", "", "Session database DSN")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Session refresh interval (e.g., 30s)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Backend: Backend{
			URL:            backendURL,
			AccessKey:      backendAccessKey,
			RequestTimeout: backendTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			OperatorToken:  operatorToken,
		},
		Workers: Workers{
			RefreshInterval: refreshInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost"
// or empty, and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
