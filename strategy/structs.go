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
	uref "dirpx.dev/stubx/utils/reflect"
)

// TagKey is the struct tag consulted by StructFields. A field tagged
// `stub:"-"` is left at its zero value.
const TagKey = "stub"

// StructFields stubs struct types as literals: every exported field is
// stubbed at a FieldSite, unexported fields keep their zero value.
func StructFields() apis.Strategy { return Simple(structFields{}) }

type structFields struct{}

func (structFields) AcceptsRaw(_ apis.Context, t reflect.Type) bool {
	return t.Kind() == reflect.Struct
}

func (structFields) StubRaw(ctx apis.Context, t reflect.Type) (any, error) {
	v := reflect.New(t).Elem()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() || f.Tag.Get(TagKey) == "-" {
			continue
		}
		at := site.Field(ctx.Site(), t, f)
		x, err := ctx.Stubber().Stub(f.Type, at)
		if err != nil {
			return nil, err
		}
		rv, err := uref.Coerce(x, f.Type)
		if err != nil {
			return nil, apis.NewStubbingError(at, f.Type, err)
		}
		v.Field(i).Set(rv)
	}
	return v.Interface(), nil
}
