// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package wos

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyResultSet is returned when the query matched no records. It is
// informational, not a failure.
var ErrEmptyResultSet = errors.New("no results were retrieved for this query")

// ErrNoQuery is returned when neither a query nor a UT list was supplied.
var ErrNoQuery = errors.New("no query or UT list given")

// UnsupportedFieldError is returned when the API rejects the query with
// 400 Bad Request, which the Starter API does for unsupported field tags.
type UnsupportedFieldError struct {
	Query   string
	Message string
}

func (e *UnsupportedFieldError) Error() string {
	msg := fmt.Sprintf("query rejected by the Starter API; only these fields can be searched: %s",
		strings.Join(AllowedFields, ", "))
	if e.Message != "" {
		msg += " (" + e.Message + ")"
	}
	return msg
}

// AllowedFields returns the field tags the Starter API accepts.
func (e *UnsupportedFieldError) AllowedFields() []string {
	return append([]string(nil), AllowedFields...)
}

// AuthorizationError is returned for 401 and 403 responses.
type AuthorizationError struct {
	StatusCode int
	Message    string
}

func (e *AuthorizationError) Error() string {
	msg := fmt.Sprintf("Starter API authorization failed (status %d): check STARTER_APIKEY", e.StatusCode)
	if e.Message != "" {
		msg += " (" + e.Message + ")"
	}
	return msg
}

// ResultSetTooLargeError is returned when the reported total exceeds the
// record ceiling. Nothing beyond the first page is fetched.
type ResultSetTooLargeError struct {
	Total int
	Limit int
}

func (e *ResultSetTooLargeError) Error() string {
	return fmt.Sprintf("query returned %d results, max allowed is %d; refine the query", e.Total, e.Limit)
}

// TransientNetworkError wraps any other request failure: transport errors,
// unexpected statuses and undecodable responses.
type TransientNetworkError struct {
	Page       int
	StatusCode int
	Err        error
}

func (e *TransientNetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetching page %d: unexpected status %d: %v", e.Page, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetching page %d: %v", e.Page, e.Err)
}

func (e *TransientNetworkError) Unwrap() error { return e.Err }

// IsUnsupportedField reports whether err is an UnsupportedFieldError.
func IsUnsupportedField(err error) bool {
	var target *UnsupportedFieldError
	return errors.As(err, &target)
}

// IsAuthError reports whether err is an AuthorizationError.
func IsAuthError(err error) bool {
	var target *AuthorizationError
	return errors.As(err, &target)
}

// IsTooLarge reports whether err is a ResultSetTooLargeError.
func IsTooLarge(err error) bool {
	var target *ResultSetTooLargeError
	return errors.As(err, &target)
}

// IsTransient reports whether err is a TransientNetworkError.
func IsTransient(err error) bool {
	var target *TransientNetworkError
	return errors.As(err, &target)
}

// IsEmpty reports whether err signals an empty result set.
func IsEmpty(err error) bool {
	return errors.Is(err, ErrEmptyResultSet)
}
