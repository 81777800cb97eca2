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
	"fmt"
	"reflect"

	"github.com/Laisky/errors/v2"
)

// ErrReflectPanic wraps a panic raised by a function called through SafeCall.
var ErrReflectPanic = errors.New("reflect: call panicked")

var errorType = reflect.TypeFor[error]()

// SafeCall calls fn with args, using CallSlice for variadic functions so
// that the last argument is passed as the variadic slice. A panic inside fn
// is returned as ErrReflectPanic. A non-nil trailing error result is
// returned as err, with the results still available.
func SafeCall(fn reflect.Value, args []reflect.Value) (out []reflect.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Wrap(ErrReflectPanic, fmt.Sprint(r))
		}
	}()

	ft := fn.Type()
	if ft.IsVariadic() {
		out = fn.CallSlice(args)
	} else {
		out = fn.Call(args)
	}

	if n := ft.NumOut(); n > 0 && ft.Out(n-1) == errorType && !out[n-1].IsNil() {
		return out, out[n-1].Interface().(error)
	}
	return out, nil
}
