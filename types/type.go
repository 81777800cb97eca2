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

// Package types classifies reflected Go types into the four shapes that
// stubbing strategies dispatch on.
package types

import (
	"fmt"
	"reflect"
)

// Kind is the closed set of requested type shapes.
type Kind int

const (
	// Unresolved is a nil type or the empty interface: nothing is known
	// about the value beyond it being a value.
	Unresolved Kind = iota
	// Raw is a type without type arguments: basic kinds, structs,
	// non-empty interfaces, funcs and named types over them.
	Raw
	// Parameterized is a container exposing type arguments: slices, maps,
	// channels and pointers.
	Parameterized
	// GenericArray is a fixed-size array. Its component type is kept whole.
	GenericArray
)

func (k Kind) String() string {
	switch k {
	case Unresolved:
		return "Unresolved"
	case Raw:
		return "Raw"
	case Parameterized:
		return "Parameterized"
	case GenericArray:
		return "GenericArray"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Type is a classified requested type.
type Type struct {
	t    reflect.Type
	kind Kind
}

// Classify normalizes t into a Type.
func Classify(t reflect.Type) Type {
	switch {
	case t == nil, t.Kind() == reflect.Interface && t.NumMethod() == 0:
		return Type{t: t, kind: Unresolved}
	case t.Kind() == reflect.Array:
		return Type{t: t, kind: GenericArray}
	}
	switch t.Kind() {
	case reflect.Slice, reflect.Map, reflect.Chan, reflect.Pointer:
		return Type{t: t, kind: Parameterized}
	default:
		return Type{t: t, kind: Raw}
	}
}

// Kind returns the shape of t.
func (t Type) Kind() Kind { return t.kind }

// Reflect returns the underlying reflect.Type. It is nil only for the
// Unresolved nil type.
func (t Type) Reflect() reflect.Type { return t.t }

// Args returns the type arguments: the element of slices, channels,
// pointers and arrays, the key and value of maps. Other shapes have none.
func (t Type) Args() []reflect.Type {
	if t.t == nil {
		return nil
	}
	switch t.t.Kind() {
	case reflect.Slice, reflect.Chan, reflect.Pointer, reflect.Array:
		return []reflect.Type{t.t.Elem()}
	case reflect.Map:
		return []reflect.Type{t.t.Key(), t.t.Elem()}
	default:
		return nil
	}
}

// Component returns the element type of a GenericArray.
func (t Type) Component() (reflect.Type, bool) {
	if t.kind != GenericArray {
		return nil, false
	}
	return t.t.Elem(), true
}

// Len returns the length of a GenericArray, or 0.
func (t Type) Len() int {
	if t.kind != GenericArray {
		return 0
	}
	return t.t.Len()
}

// RawType returns the named type behind t. Unnamed containers such as
// []string have no raw type; named ones such as `type Names []string` are
// their own raw type.
func (t Type) RawType() (reflect.Type, bool) {
	if t.t == nil || t.t.Name() == "" {
		return nil, false
	}
	return t.t, true
}

// AsRaw views a Parameterized type as Raw, keeping the same reflect.Type.
// Other kinds are returned unchanged.
func (t Type) AsRaw() Type {
	if t.kind != Parameterized {
		return t
	}
	return Type{t: t.t, kind: Raw}
}

// Is reports whether t is exactly o.
func (t Type) Is(o reflect.Type) bool { return t.t == o }

func (t Type) String() string {
	if t.t == nil {
		return "<unresolved>"
	}
	return t.t.String()
}

// Of returns the classified type of T. Interface types are preserved.
func Of[T any]() Type {
	return Classify(reflect.TypeFor[T]())
}

// Literal captures T as a value, for APIs that want a type token.
//
//	var names types.Literal[[]string]
//	s.Stub(names.Reflect(), site.Unknown())
type Literal[T any] struct{}

// Type returns the classified type of T.
func (Literal[T]) Type() Type { return Of[T]() }

// Reflect returns reflect.TypeFor[T]().
func (Literal[T]) Reflect() reflect.Type { return reflect.TypeFor[T]() }
