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
	uref "dirpx.dev/stubx/utils/reflect"
)

var stubbableType = reflect.TypeFor[apis.Stubbable]()

// SelfStubbing stubs types implementing apis.Stubbable, on the value or on
// the pointer receiver, with their own StubValue.
func SelfStubbing() apis.Strategy { return Exact(selfStubbing{}) }

// selfStubbing is a zero-cost fast path: the type knows its own stub.
type selfStubbing struct{}

func (selfStubbing) AcceptsRaw(_ apis.Context, t reflect.Type) bool {
	if t.Kind() == reflect.Interface {
		return false
	}
	return t.Implements(stubbableType) || reflect.PointerTo(t).Implements(stubbableType)
}

func (selfStubbing) StubRaw(ctx apis.Context, t reflect.Type) (any, error) {
	var recv reflect.Value
	if t.Implements(stubbableType) {
		recv = reflect.Zero(t)
		if t.Kind() == reflect.Pointer {
			recv = reflect.New(t.Elem())
		}
	} else {
		recv = reflect.New(t)
	}

	v := recv.Interface().(apis.Stubbable).StubValue()
	rv, err := uref.Coerce(v, t)
	if err != nil {
		return nil, apis.NewStubbingError(ctx.Site(), t, err)
	}
	return rv.Interface(), nil
}
