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
	"dirpx.dev/stubx/site"
	"dirpx.dev/stubx/types"
	uref "dirpx.dev/stubx/utils/reflect"
)

// Array stubs fixed-size arrays by stubbing every element at an ArraySite
// carrying the full component type.
func Array() apis.Strategy { return array{} }

type array struct{}

// Ensure array implements apis.Strategy.
var _ apis.Strategy = array{}

func (array) Accepts(_ apis.Context, t types.Type) bool { return t.Kind() == types.GenericArray }

func (array) Stub(ctx apis.Context, t types.Type) (any, error) {
	component, _ := t.Component()
	at := site.Array(ctx.Site(), component)
	out := reflect.New(t.Reflect()).Elem()
	for i := 0; i < t.Len(); i++ {
		v, err := ctx.Stubber().Stub(component, at)
		if err != nil {
			return nil, err
		}
		rv, err := uref.Coerce(v, component)
		if err != nil {
			return nil, apis.NewStubbingError(at, component, err)
		}
		out.Index(i).Set(rv)
	}
	return out.Interface(), nil
}
