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

package stubx

import (
	"reflect"

	"dirpx.dev/stubx/apis"
	"dirpx.dev/stubx/site"
	uref "dirpx.dev/stubx/utils/reflect"
)

// Stub stubs a T at an unknown site.
func Stub[T any](s apis.Stubber) (T, error) { return StubAt[T](s, site.Unknown()) }

// StubAt stubs a T at at.
func StubAt[T any](s apis.Stubber, at apis.Site) (T, error) {
	t := reflect.TypeFor[T]()
	v, err := s.Stub(t, at)
	if err != nil {
		var zero T
		return zero, err
	}
	return as[T](v, t, at)
}

// TryStub is the typed form of apis.Stubber.TryStub at an unknown site.
// ok is false when no strategy accepted the request.
func TryStub[T any](s apis.Stubber) (v T, ok bool, err error) {
	return TryStubAt[T](s, site.Unknown())
}

// TryStubAt is TryStub at at.
func TryStubAt[T any](s apis.Stubber, at apis.Site) (v T, ok bool, err error) {
	t := reflect.TypeFor[T]()
	res, err := s.TryStub(t, at)
	if err != nil {
		return v, false, err
	}
	x, ok := res.Value()
	if !ok {
		return v, false, nil
	}
	v, err = as[T](x, t, at)
	return v, err == nil, err
}

// as converts a stubbed value to T. Nil stays the zero T.
func as[T any](v any, t reflect.Type, at apis.Site) (T, error) {
	if out, ok := v.(T); ok {
		return out, nil
	}
	var zero T
	rv, err := uref.Coerce(v, t)
	if err != nil {
		return zero, apis.NewStubbingError(at, t, err)
	}
	if rv.IsValid() {
		if out, ok := rv.Interface().(T); ok {
			return out, nil
		}
	}
	return zero, nil
}
