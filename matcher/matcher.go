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

// Package matcher provides combinators building apis.Matcher predicates
// over values, types and sites.
package matcher

import (
	"reflect"

	"dirpx.dev/stubx/apis"
	"dirpx.dev/stubx/site"
	"dirpx.dev/stubx/types"
)

// Any matches everything.
func Any[T any]() apis.Matcher[T] {
	return func(apis.Context, T) bool { return true }
}

// None matches nothing.
func None[T any]() apis.Matcher[T] {
	return func(apis.Context, T) bool { return false }
}

// Not inverts m.
func Not[T any](m apis.Matcher[T]) apis.Matcher[T] { return m.Not() }

// And matches when every matcher matches. An empty And matches everything.
func And[T any](ms ...apis.Matcher[T]) apis.Matcher[T] {
	return func(ctx apis.Context, v T) bool {
		for _, m := range ms {
			if !m.Matches(ctx, v) {
				return false
			}
		}
		return true
	}
}

// Or matches when any matcher matches. An empty Or matches nothing.
func Or[T any](ms ...apis.Matcher[T]) apis.Matcher[T] {
	return func(ctx apis.Context, v T) bool {
		for _, m := range ms {
			if m.Matches(ctx, v) {
				return true
			}
		}
		return false
	}
}

// EqualTo matches values == want.
func EqualTo[T comparable](want T) apis.Matcher[T] {
	return func(_ apis.Context, v T) bool { return v == want }
}

// InstanceOf matches values whose dynamic type is U and that delegate
// matches. A nil delegate only checks the type.
func InstanceOf[T, U any](delegate apis.Matcher[U]) apis.Matcher[T] {
	return func(ctx apis.Context, v T) bool {
		u, ok := any(v).(U)
		if !ok {
			return false
		}
		return delegate == nil || delegate(ctx, u)
	}
}

// MappedTo applies delegate to the value extracted from v.
func MappedTo[T, U any](extract func(T) U, delegate apis.Matcher[U]) apis.Matcher[T] {
	return func(ctx apis.Context, v T) bool {
		return delegate.Matches(ctx, extract(v))
	}
}

// Site matches when the context site matches m, whatever the value.
func Site[T any](m apis.Matcher[apis.Site]) apis.Matcher[T] {
	return func(ctx apis.Context, _ T) bool {
		return ctx.Site() != nil && m.Matches(ctx, ctx.Site())
	}
}

// Parent matches sites whose parent matches m.
func Parent(m apis.Matcher[apis.Site]) apis.Matcher[apis.Site] {
	return func(ctx apis.Context, s apis.Site) bool {
		if s == nil {
			return false
		}
		p, ok := s.Parent()
		return ok && m.Matches(ctx, p)
	}
}

// Ancestor matches sites with any ancestor matching m.
func Ancestor(m apis.Matcher[apis.Site]) apis.Matcher[apis.Site] {
	return func(ctx apis.Context, s apis.Site) bool {
		chain := site.Walk(s)
		for i := 1; i < len(chain); i++ {
			if m.Matches(ctx, chain[i]) {
				return true
			}
		}
		return false
	}
}

// EqualsSite matches sites structurally equal to want.
func EqualsSite(want apis.Site) apis.Matcher[apis.Site] {
	return func(_ apis.Context, s apis.Site) bool { return site.Equal(s, want) }
}

// SiteOf matches sites of variant S that delegate matches. A nil delegate
// only checks the variant.
func SiteOf[S apis.Site](delegate apis.Matcher[S]) apis.Matcher[apis.Site] {
	return InstanceOf[apis.Site, S](delegate)
}

// Named matches sites carrying the given name.
func Named(name string) apis.Matcher[apis.Site] {
	return func(_ apis.Context, s apis.Site) bool {
		got, ok := site.NameOf(s)
		return ok && got == name
	}
}

// Tagged matches field sites whose struct tag key equals value. An empty
// value only requires the key to be present.
func Tagged(key, value string) apis.Matcher[apis.Site] {
	return func(_ apis.Context, s apis.Site) bool {
		f, ok := s.(site.FieldSite)
		if !ok {
			return false
		}
		got, ok := f.Tag(key)
		return ok && (value == "" || got == value)
	}
}

// ConstructorParameterOf matches parameter sites of constructors of out.
func ConstructorParameterOf(out reflect.Type) apis.Matcher[apis.Site] {
	return func(_ apis.Context, s apis.Site) bool {
		p, ok := s.(site.ConstructorParameterSite)
		if !ok || p.Constructor.Type == nil || p.Constructor.Type.NumOut() == 0 {
			return false
		}
		return p.Constructor.Type.Out(0) == out
	}
}

// TypeIs matches exactly t.
func TypeIs(t reflect.Type) apis.Matcher[types.Type] {
	return func(_ apis.Context, v types.Type) bool { return v.Reflect() == t }
}

// TypeOf matches exactly T.
func TypeOf[T any]() apis.Matcher[types.Type] {
	return TypeIs(reflect.TypeFor[T]())
}

// KindIs matches types of any of the given reflect kinds.
func KindIs(kinds ...reflect.Kind) apis.Matcher[types.Type] {
	return func(_ apis.Context, v types.Type) bool {
		if v.Reflect() == nil {
			return false
		}
		for _, k := range kinds {
			if v.Reflect().Kind() == k {
				return true
			}
		}
		return false
	}
}

// ShapeIs matches types classified as k.
func ShapeIs(k types.Kind) apis.Matcher[types.Type] {
	return func(_ apis.Context, v types.Type) bool { return v.Kind() == k }
}

// AssignableTo matches types whose values can be assigned to t.
func AssignableTo(t reflect.Type) apis.Matcher[types.Type] {
	return func(_ apis.Context, v types.Type) bool {
		return v.Reflect() != nil && v.Reflect().AssignableTo(t)
	}
}

// Implements matches types implementing the interface iface.
func Implements(iface reflect.Type) apis.Matcher[types.Type] {
	return func(_ apis.Context, v types.Type) bool {
		return v.Reflect() != nil && iface.Kind() == reflect.Interface && v.Reflect().Implements(iface)
	}
}
