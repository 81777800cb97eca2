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
	"net/url"
	"reflect"
	"time"

	"github.com/Laisky/errors/v2"
	"github.com/google/uuid"

	"dirpx.dev/stubx/apis"
	uref "dirpx.dev/stubx/utils/reflect"
)

// ConstantValue stubs v for requests of exactly v's dynamic type.
// A nil v is rejected when the stubber is built; use ConstantValueOf to
// stub nil for a nillable type.
func ConstantValue(v any) apis.Strategy {
	if v == nil {
		return invalid{err: errors.Wrap(apis.ErrInvalidArgument, "constant value of unknown type")}
	}
	return ConstantValueOf(reflect.TypeOf(v), v)
}

// ConstantValueOf stubs v for requests of exactly t. v must be assignable
// or convertible to t.
func ConstantValueOf(t reflect.Type, v any) apis.Strategy {
	rv, err := uref.Coerce(v, t)
	if err != nil {
		return invalid{err: errors.Wrapf(apis.ErrInvalidArgument, "constant for %v: %v", t, err)}
	}
	return Exact(constant{t: t, v: rv})
}

// Constant stubs v for requests of exactly T.
func Constant[T any](v T) apis.Strategy {
	return ConstantValueOf(reflect.TypeFor[T](), v)
}

// CommonConstantValues returns constants for well-known immutable standard
// and ecosystem types: the Unix epoch, UTC, a fixed UUID and a URL.
func CommonConstantValues() []apis.Strategy {
	return []apis.Strategy{
		Constant(time.Unix(0, 0).UTC()),
		Constant(time.UTC),
		Constant(uuid.MustParse("123e4567-e89b-12d3-a456-556642440000")),
		Constant(url.URL{Scheme: "https", Host: "example.com", Path: "/"}),
	}
}

type constant struct {
	t reflect.Type
	v reflect.Value
}

func (c constant) AcceptsRaw(_ apis.Context, t reflect.Type) bool { return t == c.t }

func (c constant) StubRaw(apis.Context, reflect.Type) (any, error) { return c.v.Interface(), nil }
