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
	"sync"

	"dirpx.dev/stubx/apis"
	"dirpx.dev/stubx/site"
	uref "dirpx.dev/stubx/utils/reflect"
)

// Func stubs function types with functions whose results are stubbed at
// MethodReturnValueSites each time they are called. With cache set, the
// results of the first call are returned by every later call.
//
// A stubbed function panics with the *apis.StubbingError when one of its
// results cannot be stubbed.
func Func(cache bool) apis.Strategy { return Simple(function{cache: cache}) }

type function struct {
	cache bool
}

func (function) AcceptsRaw(_ apis.Context, t reflect.Type) bool { return t.Kind() == reflect.Func }

func (f function) StubRaw(ctx apis.Context, t reflect.Type) (any, error) {
	m := site.Method{Name: t.String(), Type: t}
	results := func() []reflect.Value {
		out := make([]reflect.Value, t.NumOut())
		for i := range out {
			at := site.MethodReturnValue(ctx.Site(), m, i)
			v, err := ctx.Stubber().Stub(t.Out(i), at)
			if err != nil {
				panic(err)
			}
			rv, err := uref.Coerce(v, t.Out(i))
			if err != nil {
				panic(apis.NewStubbingError(at, t.Out(i), err))
			}
			out[i] = rv
		}
		return out
	}

	if f.cache {
		results = sync.OnceValue(results)
	}
	return reflect.MakeFunc(t, func([]reflect.Value) []reflect.Value {
		return results()
	}).Interface(), nil
}
