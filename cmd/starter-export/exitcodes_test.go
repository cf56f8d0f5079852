// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/starter-export/internal/wos"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"success", nil, ExitSuccess},
		{"empty result set", fmt.Errorf("run: %w", wos.ErrEmptyResultSet), ExitSuccess},
		{"config", newConfigError(errors.New("missing key")), ExitConfigError},
		{"unsupported field", &wos.UnsupportedFieldError{Query: "AB=x"}, ExitUnsupportedField},
		{"auth", fmt.Errorf("page 1: %w", &wos.AuthorizationError{StatusCode: 403}), ExitAuthError},
		{"too large", &wos.ResultSetTooLargeError{Total: 50001, Limit: 50000}, ExitTooLarge},
		{"transient", &wos.TransientNetworkError{Page: 3, Err: errors.New("reset")}, ExitError},
		{"other", errors.New("disk full"), ExitError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
	assert.NoError(t, newConfigError(nil))
}
