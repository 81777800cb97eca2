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
)

var stubberType = reflect.TypeFor[apis.Stubber]()

// StubberValue stubs apis.Stubber with the active stubber, so that values
// can stub more values lazily.
func StubberValue() apis.Strategy { return Simple(stubberValue{}) }

type stubberValue struct{}

func (stubberValue) AcceptsRaw(_ apis.Context, t reflect.Type) bool { return t == stubberType }

func (stubberValue) StubRaw(ctx apis.Context, _ reflect.Type) (any, error) {
	return ctx.Stubber(), nil
}
