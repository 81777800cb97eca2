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

package registry

import (
	"reflect"
	"sync"

	"github.com/Laisky/errors/v2"

	"dirpx.dev/stubx/apis"
	uref "dirpx.dev/stubx/utils/reflect"
)

var (
	// ErrNilFunc is returned when a nil constructor is provided.
	ErrNilFunc = errors.New("stubx(registry): nil constructor provided")
	// ErrNotFunc is returned when the constructor is not a function.
	ErrNotFunc = errors.New("stubx(registry): constructor is not a function")
	// ErrBadResults indicates a constructor that does not return T or (T, error).
	ErrBadResults = errors.New("stubx(registry): constructor must return T or (T, error)")
	// ErrConflictingRegistration indicates an attempt to register a second
	// primary constructor for the same type.
	ErrConflictingRegistration = errors.New("stubx(registry): conflicting primary constructor")
)

var errorType = reflect.TypeFor[error]()

// Primary marks the constructor as the preferred one for its type.
func Primary() apis.ConstructorOption {
	return func(c *apis.Constructor) { c.Primary = true }
}

// ParamNames names the constructor parameters, in order. Names show up in
// stubbing sites, where matchers and fakers can use them.
func ParamNames(names ...string) apis.ConstructorOption {
	return func(c *apis.Constructor) { c.Params = append([]string(nil), names...) }
}

// Named overrides the diagnostic name of the constructor.
func Named(name string) apis.ConstructorOption {
	return func(c *apis.Constructor) { c.Name = name }
}

// New constructs an empty Registry.
func New() apis.Registry {
	return &registry{}
}

// registry is a Registry backed by sync.Map with copy-on-write slices, so
// lookups never take the lock.
type registry struct {
	// mu serializes writers and guards the counters.
	mu sync.Mutex
	// m maps the produced reflect.Type to its constructors.
	m sync.Map // map[reflect.Type][]apis.Constructor
	// count tracks the number of registered constructors.
	count int
	// seq numbers registrations.
	seq int
}

// Register adds fn as a constructor of its first result type. It is
// idempotent for the same function value; registering it again with a
// different Primary flag is a conflict.
func (r *registry) Register(fn any, opts ...apis.ConstructorOption) error {
	if fn == nil {
		return ErrNilFunc
	}
	fv := reflect.ValueOf(fn)
	if fv.Kind() != reflect.Func {
		return errors.Wrapf(ErrNotFunc, "got %T", fn)
	}
	if fv.IsNil() {
		return ErrNilFunc
	}
	ft := fv.Type()
	switch {
	case ft.NumOut() == 1:
	case ft.NumOut() == 2 && ft.Out(1) == errorType:
	default:
		return errors.Wrapf(ErrBadResults, "got %s", ft)
	}

	c := apis.Constructor{Func: fv, Name: uref.FuncName(fv), Out: ft.Out(0)}
	for _, opt := range opts {
		opt(&c)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var existing []apis.Constructor
	if v, ok := r.m.Load(c.Out); ok {
		existing = v.([]apis.Constructor)
	}
	for _, e := range existing {
		if e.Func.Pointer() == fv.Pointer() && e.Func.Type() == ft {
			if e.Primary != c.Primary {
				return errors.Wrapf(ErrConflictingRegistration, "%s already registered with primary=%t", e.Name, e.Primary)
			}
			return nil // idempotent re-registration
		}
		if c.Primary && e.Primary {
			return errors.Wrapf(ErrConflictingRegistration, "%s already has primary %s", c.Out, e.Name)
		}
	}

	c.Order = r.seq
	r.seq++
	next := make([]apis.Constructor, len(existing), len(existing)+1)
	copy(next, existing)
	r.m.Store(c.Out, append(next, c))
	r.count++
	return nil
}

// Lookup returns the constructors of t in registration order.
func (r *registry) Lookup(t reflect.Type) []apis.Constructor {
	if t == nil {
		return nil
	}
	if v, ok := r.m.Load(t); ok {
		return append([]apis.Constructor(nil), v.([]apis.Constructor)...)
	}
	return nil
}

// Entries returns a snapshot for diagnostics/docs.
func (r *registry) Entries() []apis.Constructor {
	entries := make([]apis.Constructor, 0, r.Count())
	r.m.Range(func(_, value any) bool {
		entries = append(entries, value.([]apis.Constructor)...)
		return true
	})
	return entries
}

// Count returns the number of registered constructors.
func (r *registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Reset clears all registered constructors.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m.Clear()
	r.count = 0
}
