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

// Package selector picks one value out of several candidates, for example
// the constructor a Constructor strategy invokes or the constant an Enum
// strategy returns.
package selector

import (
	"math/rand/v2"
	"sync"

	"dirpx.dev/stubx/apis"
)

// Selector picks one of values. It reports false when it cannot decide,
// which lets OrElse chain fallbacks.
type Selector[T any] func(ctx apis.Context, values []T) (T, bool)

// Select runs s. A nil Selector never decides.
func (s Selector[T]) Select(ctx apis.Context, values []T) (T, bool) {
	if s == nil {
		var zero T
		return zero, false
	}
	return s(ctx, values)
}

// OrElse falls back to o when s cannot decide.
func (s Selector[T]) OrElse(o Selector[T]) Selector[T] {
	return func(ctx apis.Context, values []T) (T, bool) {
		if v, ok := s.Select(ctx, values); ok {
			return v, true
		}
		return o.Select(ctx, values)
	}
}

// First picks the first value.
func First[T any]() Selector[T] {
	return func(_ apis.Context, values []T) (T, bool) {
		if len(values) == 0 {
			var zero T
			return zero, false
		}
		return values[0], true
	}
}

// Random picks a pseudo random value from a source seeded with seed.
// Equal seeds give equal sequences of picks.
func Random[T any](seed uint64) Selector[T] {
	var mu sync.Mutex
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	return func(_ apis.Context, values []T) (T, bool) {
		if len(values) == 0 {
			var zero T
			return zero, false
		}
		mu.Lock()
		i := r.IntN(len(values))
		mu.Unlock()
		return values[i], true
	}
}

// FromMatcher picks the first value matching m.
func FromMatcher[T any](m apis.Matcher[T]) Selector[T] {
	return func(ctx apis.Context, values []T) (T, bool) {
		for _, v := range values {
			if m.Matches(ctx, v) {
				return v, true
			}
		}
		var zero T
		return zero, false
	}
}

// Compose narrows values with filter, then lets s pick among the rest.
func Compose[T any](filter apis.Matcher[T], s Selector[T]) Selector[T] {
	return func(ctx apis.Context, values []T) (T, bool) {
		var kept []T
		for _, v := range values {
			if filter.Matches(ctx, v) {
				kept = append(kept, v)
			}
		}
		return s.Select(ctx, kept)
	}
}
