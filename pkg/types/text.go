// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/segmentio/encoding/json"
)

// Text is a scalar API value kept exactly as the API sent it. The Starter
// API returns volume, issue, page and year fields as JSON numbers in some
// records and as strings in others ("86A", "+"); Text accepts both and never
// converts the value to a number.
type Text string

// UnmarshalJSON stores strings unquoted and numbers or booleans as their
// literal token. Null, objects and arrays leave the value empty.
func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		*t = ""
		return nil
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
	case 'n', '{', '[':
		*t = ""
	default:
		*t = Text(data)
	}
	return nil
}

// String returns the verbatim value.
func (t Text) String() string { return string(t) }

// Int parses the value as a base-10 integer. The second result is false when
// the value is empty or not an integer.
func (t Text) Int() (int, bool) {
	s := strings.TrimSpace(string(t))
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
