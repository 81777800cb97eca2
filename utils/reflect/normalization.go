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

package reflect

import (
	"reflect"

	"github.com/Laisky/errors/v2"
)

var (
	// ErrReflectNilType is returned when a nil reflect.Type is provided.
	ErrReflectNilType = errors.New("reflect: nil reflect.Type provided")
	// ErrReflectNotAssignable indicates that a value cannot be stored in a
	// variable of the requested type, even after conversion.
	ErrReflectNotAssignable = errors.New("reflect: value not assignable")
)

// Coerce turns v into a reflect.Value of type t, suitable for Set, Call
// arguments or MakeFunc results.
//
// Coercion policy:
//   - nil -> zero value of t
//   - assignable -> v as is, re-typed to t (interfaces keep their dynamic value)
//   - convertible between numeric or string kinds -> converted
//   - anything else -> ErrReflectNotAssignable
func Coerce(v any, t reflect.Type) (reflect.Value, error) {
	if t == nil {
		return reflect.Value{}, ErrReflectNilType
	}
	if v == nil {
		return reflect.Zero(t), nil
	}

	rv := reflect.ValueOf(v)
	if rv.Type().AssignableTo(t) {
		if rv.Type() == t {
			return rv, nil
		}
		out := reflect.New(t).Elem()
		out.Set(rv)
		return out, nil
	}
	if convertible(rv.Type(), t) {
		return rv.Convert(t), nil
	}
	return reflect.Value{}, errors.Wrapf(ErrReflectNotAssignable, "%s to %s", rv.Type(), t)
}

// convertible restricts reflect's conversion rules to the lossless-looking
// ones: numeric to numeric and string to string kinds. Conversions such as
// int to string are technically allowed by Go but never what a stub means.
func convertible(from, to reflect.Type) bool {
	if !from.ConvertibleTo(to) {
		return false
	}
	switch {
	case IsNumeric(from.Kind()) && IsNumeric(to.Kind()):
		return true
	case from.Kind() == reflect.String && to.Kind() == reflect.String:
		return true
	case from.Kind() == reflect.Bool && to.Kind() == reflect.Bool:
		return true
	default:
		return false
	}
}

// IsNumeric reports whether k is an integer, float or complex kind.
func IsNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	default:
		return false
	}
}

// IsBasic reports whether k is a boolean, numeric or string kind.
func IsBasic(k reflect.Kind) bool {
	return k == reflect.Bool || k == reflect.String || IsNumeric(k)
}

// IsNillable reports whether values of kind k can be nil.
func IsNillable(k reflect.Kind) bool {
	switch k {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map,
		reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}

// Instantiable reports whether a value of t can be produced without a
// constructor: everything except interfaces, funcs and unsafe pointers.
func Instantiable(t reflect.Type) bool {
	if t == nil {
		return false
	}
	switch t.Kind() {
	case reflect.Interface, reflect.Func, reflect.UnsafePointer, reflect.Invalid:
		return false
	default:
		return true
	}
}
