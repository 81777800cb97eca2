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
	"reflect"
	"runtime"
	"sync"
	"testing"

	"dirpx.dev/stubx/apis"
	"dirpx.dev/stubx/registry"
)

// A few named types so every constructor produces its own key.
type T0 struct{}
type T1 struct{}
type T2 struct{}
type T3 struct{}
type T4 struct{}

func newT0() T0 { return T0{} }
func newT1() T1 { return T1{} }
func newT2() T2 { return T2{} }
func newT3() T3 { return T3{} }
func newT4() T4 { return T4{} }

// TestConcurrentRegisterAndLookup verifies that Register/Lookup/Entries/Count
// are race-free and consistent under concurrent use.
func TestConcurrentRegisterAndLookup(t *testing.T) {
	reg := registry.New()

	ctors := []any{newT0, newT1, newT2, newT3, newT4}
	types := []reflect.Type{
		reflect.TypeOf(T0{}), reflect.TypeOf(T1{}), reflect.TypeOf(T2{}),
		reflect.TypeOf(T3{}), reflect.TypeOf(T4{}),
	}

	// Register once (sequential) to establish baseline.
	for _, fn := range ctors {
		if err := reg.Register(fn); err != nil {
			t.Fatalf("register %T: %v", fn, err)
		}
	}

	wg := sync.WaitGroup{}
	workers := runtime.GOMAXPROCS(0) * 4

	// Readers
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 5000; i++ {
				tt := types[i%len(types)]
				if got := reg.Lookup(tt); len(got) != 1 || got[0].Out != tt {
					t.Errorf("lookup failed for %v: %v", tt, got)
					return
				}
				_ = reg.Count()
				_ = reg.Entries()
			}
		}()
	}

	// Writers (idempotent re-register)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				_ = reg.Register(ctors[(i+id)%len(ctors)]) // must be safe & idempotent
			}
		}(w)
	}

	wg.Wait()

	if reg.Count() != len(ctors) {
		t.Fatalf("count mismatch: got %d want %d", reg.Count(), len(ctors))
	}
	seen := map[reflect.Type]int{}
	for _, e := range reg.Entries() {
		seen[e.Out]++
	}
	for _, tt := range types {
		if seen[tt] != 1 {
			t.Fatalf("entry mismatch for %v: got %d want 1", tt, seen[tt])
		}
	}
}

// TestResetSnapshot ensures Reset is safe and Entries returns a stable snapshot.
func TestResetSnapshot(t *testing.T) {
	reg := registry.New()

	_ = reg.Register(newT0)
	_ = reg.Register(newT1)

	snap := reg.Entries()
	reg.Reset()

	if reg.Count() != 0 {
		t.Fatalf("count after reset: got %d want 0", reg.Count())
	}
	if len(snap) != 2 {
		t.Fatalf("snapshot length changed unexpectedly: %d", len(snap))
	}
	if snap[0].Name == "" || snap[1].Name == "" {
		t.Fatalf("snapshot contents invalid after reset")
	}
}

// This ensures the interface is satisfied; not a test but a compile-time check.
var _ apis.Registry = registry.New()
