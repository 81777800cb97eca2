/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package apis

import (
	"fmt"
	"strings"
)

// PointerMode controls how pointer types are stubbed.
//
// # Values
//
//   - PresentIfPossible: stub the element; fall back to nil when the element
//     cannot be stubbed (including when the depth guard trips).
//   - Present: stub the element; fail when it cannot be stubbed.
//   - Nil: always produce a nil pointer.
//
// PointerMode is a plain integer and safe to share across goroutines. It
// implements encoding.TextMarshaler and encoding.TextUnmarshaler so that it
// can be read from configuration profiles.
type PointerMode int

const (
	// PresentIfPossible stubs the element and falls back to nil.
	PresentIfPossible PointerMode = iota
	// Present stubs the element and fails when that is impossible.
	Present
	// Nil always produces a nil pointer.
	Nil
)

// String returns the canonical name of the mode.
func (m PointerMode) String() string {
	switch m {
	case PresentIfPossible:
		return "present-if-possible"
	case Present:
		return "present"
	case Nil:
		return "nil"
	default:
		return fmt.Sprintf("Unknown(%d)", int(m))
	}
}

// ParsePointerMode parses a mode name, ignoring case, surrounding spaces
// and the separator used between words ("present_if_possible" works too).
func ParsePointerMode(s string) (PointerMode, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return PresentIfPossible, fmt.Errorf("stubx: empty pointer mode")
	}

	switch strings.NewReplacer("_", "-", " ", "-").Replace(strings.ToLower(trimmed)) {
	case "present-if-possible":
		return PresentIfPossible, nil
	case "present":
		return Present, nil
	case "nil", "null", "empty":
		return Nil, nil
	default:
		return PresentIfPossible, fmt.Errorf("stubx: unknown pointer mode %q", s)
	}
}

// MustParsePointerMode is ParsePointerMode that panics on error.
func MustParsePointerMode(s string) PointerMode {
	m, err := ParsePointerMode(s)
	if err != nil {
		panic(err)
	}
	return m
}

// MarshalText implements encoding.TextMarshaler.
func (m PointerMode) MarshalText() ([]byte, error) {
	switch m {
	case PresentIfPossible, Present, Nil:
		return []byte(m.String()), nil
	default:
		return nil, fmt.Errorf("stubx: cannot marshal unknown pointer mode %d", int(m))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *PointerMode) UnmarshalText(text []byte) error {
	v, err := ParsePointerMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}
