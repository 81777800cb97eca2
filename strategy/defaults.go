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
	uref "dirpx.dev/stubx/utils/reflect"
)

// DefaultValue stubs the zero value of boolean, numeric and string kinds,
// named types over them included.
func DefaultValue() apis.Strategy { return Simple(defaultValue{}) }

type defaultValue struct{}

func (defaultValue) AcceptsRaw(_ apis.Context, t reflect.Type) bool { return uref.IsBasic(t.Kind()) }

func (defaultValue) StubRaw(_ apis.Context, t reflect.Type) (any, error) {
	return reflect.Zero(t).Interface(), nil
}

// NilValue stubs nil for every type that can be nil, and for unresolved
// types.
func NilValue() apis.Strategy { return nilValue{} }

type nilValue struct{}

// Ensure nilValue implements apis.Strategy.
var _ apis.Strategy = nilValue{}

func (nilValue) Accepts(_ apis.Context, t types.Type) bool {
	return t.Reflect() == nil || uref.IsNillable(t.Reflect().Kind())
}

func (nilValue) Stub(_ apis.Context, t types.Type) (any, error) {
	if t.Reflect() == nil {
		return nil, nil
	}
	return reflect.Zero(t.Reflect()).Interface(), nil
}
