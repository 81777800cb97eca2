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

package strategy

import (
	"reflect"

	"dirpx.dev/stubx/apis"
	"dirpx.dev/stubx/types"
)

// RawStrategy is the part of a strategy dealing with raw types only. Most
// strategies need nothing else; wrap them with Simple.
type RawStrategy interface {
	AcceptsRaw(ctx apis.Context, t reflect.Type) bool
	StubRaw(ctx apis.Context, t reflect.Type) (any, error)
}

// ParameterizedStrategy is implemented by raw strategies that want to see
// containers with their type arguments instead of the raw view.
type ParameterizedStrategy interface {
	AcceptsParameterized(ctx apis.Context, t types.Type) bool
	StubParameterized(ctx apis.Context, t types.Type) (any, error)
}

// GenericArrayStrategy is implemented by raw strategies handling arrays.
type GenericArrayStrategy interface {
	AcceptsGenericArray(ctx apis.Context, t types.Type) bool
	StubGenericArray(ctx apis.Context, t types.Type) (any, error)
}

// UnresolvedStrategy is implemented by raw strategies handling requests
// for nil types or the empty interface.
type UnresolvedStrategy interface {
	AcceptsUnresolved(ctx apis.Context, t types.Type) bool
	StubUnresolved(ctx apis.Context, t types.Type) (any, error)
}

// Simple adapts r to apis.Strategy by routing on the type kind:
//
//   - Raw goes to r.
//   - Parameterized goes to ParameterizedStrategy when r implements it,
//     otherwise to r with the raw view of the type.
//   - GenericArray and Unresolved go to the matching optional interface
//     and are rejected otherwise.
//
// apis.Validator is forwarded when r implements it.
func Simple(r RawStrategy) apis.Strategy {
	return simple{raw: r}
}

// Exact is Simple for raw strategies that compare the requested type by
// identity: fixed-size arrays and the empty interface reach r unchanged
// when r does not implement the matching optional interface. Requests for
// a nil type are still rejected.
func Exact(r RawStrategy) apis.Strategy {
	return simple{raw: r, exact: true}
}

type simple struct {
	raw   RawStrategy
	exact bool
}

// direct reports whether a GenericArray or Unresolved request goes to the
// raw methods.
func (s simple) direct(t types.Type) bool { return s.exact && t.Reflect() != nil }

// Ensure simple implements apis.Strategy and apis.Validator.
var (
	_ apis.Strategy  = simple{}
	_ apis.Validator = simple{}
)

func (s simple) Accepts(ctx apis.Context, t types.Type) bool {
	switch t.Kind() {
	case types.Raw:
		return s.raw.AcceptsRaw(ctx, t.Reflect())
	case types.Parameterized:
		if p, ok := s.raw.(ParameterizedStrategy); ok {
			return p.AcceptsParameterized(ctx, t)
		}
		return s.raw.AcceptsRaw(ctx, t.AsRaw().Reflect())
	case types.GenericArray:
		if a, ok := s.raw.(GenericArrayStrategy); ok {
			return a.AcceptsGenericArray(ctx, t)
		}
		return s.direct(t) && s.raw.AcceptsRaw(ctx, t.Reflect())
	case types.Unresolved:
		if u, ok := s.raw.(UnresolvedStrategy); ok {
			return u.AcceptsUnresolved(ctx, t)
		}
		return s.direct(t) && s.raw.AcceptsRaw(ctx, t.Reflect())
	}
	return false
}

func (s simple) Stub(ctx apis.Context, t types.Type) (any, error) {
	switch t.Kind() {
	case types.Raw:
		return s.raw.StubRaw(ctx, t.Reflect())
	case types.Parameterized:
		if p, ok := s.raw.(ParameterizedStrategy); ok {
			return p.StubParameterized(ctx, t)
		}
		return s.raw.StubRaw(ctx, t.AsRaw().Reflect())
	case types.GenericArray:
		if a, ok := s.raw.(GenericArrayStrategy); ok {
			return a.StubGenericArray(ctx, t)
		}
		if s.direct(t) {
			return s.raw.StubRaw(ctx, t.Reflect())
		}
	case types.Unresolved:
		if u, ok := s.raw.(UnresolvedStrategy); ok {
			return u.StubUnresolved(ctx, t)
		}
		if s.direct(t) {
			return s.raw.StubRaw(ctx, t.Reflect())
		}
	}
	return nil, apis.NewStubbingError(ctx.Site(), t.Reflect(), apis.ErrNoStrategy)
}

func (s simple) Validate() error {
	if v, ok := s.raw.(apis.Validator); ok {
		return v.Validate()
	}
	return nil
}
