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

// Matcher is a predicate over a stubbing context and a value, used to gate
// strategies to particular types or sites.
//
// A nil Matcher matches nothing.
type Matcher[T any] func(ctx Context, v T) bool

// Matches evaluates m.
func (m Matcher[T]) Matches(ctx Context, v T) bool {
	return m != nil && m(ctx, v)
}

// And matches when both m and o match. o is not evaluated when m fails.
func (m Matcher[T]) And(o Matcher[T]) Matcher[T] {
	return func(ctx Context, v T) bool {
		return m.Matches(ctx, v) && o.Matches(ctx, v)
	}
}

// Or matches when m or o matches. o is not evaluated when m matches.
func (m Matcher[T]) Or(o Matcher[T]) Matcher[T] {
	return func(ctx Context, v T) bool {
		return m.Matches(ctx, v) || o.Matches(ctx, v)
	}
}

// Not inverts m.
func (m Matcher[T]) Not() Matcher[T] {
	return func(ctx Context, v T) bool {
		return !m.Matches(ctx, v)
	}
}
