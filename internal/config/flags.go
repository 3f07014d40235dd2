// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// BaseURL holds a backend base URL given on the command line.
// It implements the flag.Value interface.
type BaseURL struct {
	raw string
}

// parseFlags parses the client configuration flags from args.
//
// Flags:
//
//	-a backend base URL (e.g. https://api.example.com)
//	-d database DSN
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-session-key secret used to seal the stored session
//	-log-file path of the log file
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("recipe-keeper", flag.ContinueOnError)

	var baseURL BaseURL
	var databaseDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var sessionKey string
	var logFile string

	fs.Var(&baseURL, "a", "Backend base URL")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&sessionKey, "session-key", "", "Session sealing key")
	fs.StringVar(&logFile, "log-file", "", "Log file path")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogFile: logFile,
		},
		Adapter: Adapter{
			HTTPAddress:    baseURL.String(),
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Session: Session{
				Key: sessionKey,
			},
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns the URL as given, or an empty string when unset.
func (u *BaseURL) String() string {
	return u.raw
}

// Set validates that s is an absolute http(s) URL or a bare host[:port].
func (u *BaseURL) Set(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errors.New("empty base URL")
	}

	candidate := s
	if !strings.Contains(candidate, "://") {
		candidate = "http://" + candidate
	}

	parsed, err := url.Parse(candidate)
	if err != nil {
		return err
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return errors.New("base URL scheme must be http or https")
	}
	if parsed.Host == "" {
		return errors.New("base URL host is empty")
	}

	u.raw = s
	return nil
}
