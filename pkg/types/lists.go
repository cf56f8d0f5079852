// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"bytes"

	"github.com/segmentio/encoding/json"
)

// People is a list of contributors. The API usually sends an array, but a
// single-entry list sometimes arrives as a bare object or string.
type People []Person

// UnmarshalJSON accepts an array, a single person, or null.
func (p *People) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0, data[0] == 'n':
		*p = nil
		return nil
	case data[0] == '[':
		var v []Person
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*p = v
		return nil
	}
	var one Person
	if err := json.Unmarshal(data, &one); err != nil {
		return err
	}
	*p = People{one}
	return nil
}

// Strings is a list of verbatim values. A single value is accepted in
// place of an array, and numbers keep their literal form.
type Strings []string

// UnmarshalJSON accepts an array, a single scalar, or null. Nested objects
// and arrays are dropped.
func (s *Strings) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0, data[0] == 'n':
		*s = nil
		return nil
	case data[0] == '[':
		var items []Text
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		out := make(Strings, 0, len(items))
		for _, t := range items {
			if t != "" {
				out = append(out, string(t))
			}
		}
		*s = out
		return nil
	}
	var one Text
	if err := one.UnmarshalJSON(data); err != nil {
		return err
	}
	if one == "" {
		*s = nil
		return nil
	}
	*s = Strings{string(one)}
	return nil
}
