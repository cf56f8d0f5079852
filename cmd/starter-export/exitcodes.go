// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"

	"github.com/pdiddy/starter-export/internal/wos"
)

// Exit codes.
const (
	ExitSuccess          = 0 // Success, including an empty result set
	ExitError            = 1 // Runtime or network failure
	ExitConfigError      = 2 // Missing key, missing query, invalid flag or config value
	ExitUnsupportedField = 3 // Query rejected for unsupported field tags
	ExitAuthError        = 4 // API key invalid, expired or not entitled
	ExitTooLarge         = 5 // Result set above the record ceiling
)

// configError marks usage and configuration failures.
type configError struct {
	err error
}

func (e *configError) Error() string { return e.err.Error() }
func (e *configError) Unwrap() error { return e.err }

func newConfigError(err error) error {
	if err == nil {
		return nil
	}
	return &configError{err: err}
}

// exitCode maps an error returned by a command to a process exit code.
func exitCode(err error) int {
	var cfgErr *configError
	switch {
	case err == nil, wos.IsEmpty(err):
		return ExitSuccess
	case errors.As(err, &cfgErr):
		return ExitConfigError
	case wos.IsUnsupportedField(err):
		return ExitUnsupportedField
	case wos.IsAuthError(err):
		return ExitAuthError
	case wos.IsTooLarge(err):
		return ExitTooLarge
	default:
		return ExitError
	}
}
