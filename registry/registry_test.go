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

package registry_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"dirpx.dev/stubx/registry"
)

type Pair struct{ A, B string }

func NewPair(a, b string) Pair         { return Pair{A: a, B: b} }
func NewPairOf(a string) Pair          { return Pair{A: a, B: a} }
func ParsePair(s string) (Pair, error) { return Pair{A: s}, nil }
func badResults() (Pair, string)       { return Pair{}, "" }
func noResults()                       {}

func TestRegister_IdempotentAndLookup(t *testing.T) {
	reg := registry.New()

	if err := reg.Register(NewPair, registry.ParamNames("a", "b")); err != nil {
		t.Fatalf("Register(NewPair): unexpected error: %v", err)
	}
	// idempotent re-register
	if err := reg.Register(NewPair); err != nil {
		t.Fatalf("Register(NewPair) idempotent: unexpected error: %v", err)
	}
	if err := reg.Register(ParsePair); err != nil {
		t.Fatalf("Register(ParsePair): unexpected error: %v", err)
	}

	got := reg.Lookup(reflect.TypeOf(Pair{}))
	if len(got) != 2 {
		t.Fatalf("Lookup(Pair) returned %d constructors, want 2", len(got))
	}
	if got[0].ParamName(1) != "b" || got[0].ReturnsError() {
		t.Fatalf("Lookup(Pair)[0] = %+v, want NewPair with params", got[0])
	}
	if !strings.HasSuffix(got[0].Name, ".NewPair") {
		t.Fatalf("Lookup(Pair)[0].Name = %q, want suffix .NewPair", got[0].Name)
	}
	if !got[1].ReturnsError() || got[1].Order <= got[0].Order {
		t.Fatalf("Lookup(Pair)[1] = %+v, want ParsePair registered second", got[1])
	}
	if reg.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", reg.Count())
	}
	if n := len(reg.Lookup(reflect.TypeOf(0))); n != 0 {
		t.Fatalf("Lookup(int) returned %d constructors, want 0", n)
	}
	if reg.Lookup(nil) != nil {
		t.Fatalf("Lookup(nil) should be nil")
	}
}

func TestRegister_LookupReturnsCopy(t *testing.T) {
	reg := registry.New()
	_ = reg.Register(NewPair)

	got := reg.Lookup(reflect.TypeOf(Pair{}))
	got[0].Primary = true
	if reg.Lookup(reflect.TypeOf(Pair{}))[0].Primary {
		t.Fatalf("Lookup leaked internal state")
	}
}

func TestRegister_PrimaryConflict(t *testing.T) {
	reg := registry.New()

	if err := reg.Register(NewPair, registry.Primary()); err != nil {
		t.Fatalf("Register: unexpected error: %v", err)
	}
	err := reg.Register(NewPairOf, registry.Primary())
	if !errors.Is(err, registry.ErrConflictingRegistration) {
		t.Fatalf("expected ErrConflictingRegistration, got: %v", err)
	}
	if err := reg.Register(NewPairOf, registry.Named("pairOf")); err != nil {
		t.Fatalf("non-primary registration failed: %v", err)
	}
	if got := reg.Lookup(reflect.TypeOf(Pair{}))[1].Name; got != "pairOf" {
		t.Fatalf("Named option ignored: %q", got)
	}
}

// TestRegister_PrimaryFlagChange verifies that registering a function again
// with another Primary flag is rejected instead of adding a second entry.
func TestRegister_PrimaryFlagChange(t *testing.T) {
	reg := registry.New()

	if err := reg.Register(NewPair); err != nil {
		t.Fatalf("Register: unexpected error: %v", err)
	}
	err := reg.Register(NewPair, registry.Primary())
	if !errors.Is(err, registry.ErrConflictingRegistration) {
		t.Fatalf("expected ErrConflictingRegistration, got: %v", err)
	}
	if got := len(reg.Lookup(reflect.TypeOf(Pair{}))); got != 1 {
		t.Fatalf("Lookup: want 1 constructor, got %d", got)
	}
	if got := reg.Count(); got != 1 {
		t.Fatalf("Count: want 1, got %d", got)
	}

	reg.Reset()
	if err := reg.Register(NewPair, registry.Primary()); err != nil {
		t.Fatalf("Register primary: unexpected error: %v", err)
	}
	if err := reg.Register(NewPair); !errors.Is(err, registry.ErrConflictingRegistration) {
		t.Fatalf("expected ErrConflictingRegistration when dropping primary, got: %v", err)
	}
}

func TestRegister_Errors(t *testing.T) {
	reg := registry.New()
	var nilFn func() Pair

	cases := []struct {
		name string
		fn   any
		want error
	}{
		{"nil", nil, registry.ErrNilFunc},
		{"nil func", nilFn, registry.ErrNilFunc},
		{"not func", Pair{}, registry.ErrNotFunc},
		{"no results", noResults, registry.ErrBadResults},
		{"bad second result", badResults, registry.ErrBadResults},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := reg.Register(tc.fn); !errors.Is(err, tc.want) {
				t.Fatalf("Register(%v) error = %v, want %v", tc.fn, err, tc.want)
			}
		})
	}
	if reg.Count() != 0 {
		t.Fatalf("failed registrations were counted: %d", reg.Count())
	}
}

func TestEntriesAndReset(t *testing.T) {
	reg := registry.New()
	_ = reg.Register(NewPair)
	_ = reg.Register(func() int { return 1 })

	if n := len(reg.Entries()); n != 2 {
		t.Fatalf("Entries() len = %d, want 2", n)
	}

	reg.Reset()
	if reg.Count() != 0 || len(reg.Entries()) != 0 {
		t.Fatalf("Reset() left entries behind")
	}
	if err := reg.Register(NewPair); err != nil {
		t.Fatalf("Register after Reset: %v", err)
	}
}
