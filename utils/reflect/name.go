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
	"path"
	"reflect"
	"runtime"
	"strings"
	"sync"
)

// typeNameCache caches TypeName results by type.
var typeNameCache sync.Map // key: reflect.Type, val: string

// TypeName returns a short, stable name for t used in site diagnostics:
// "pkg.Type" for named types (generic instantiation parameters stripped),
// t.String() for everything else, "<nil>" for nil.
func TypeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	if v, ok := typeNameCache.Load(t); ok {
		return v.(string)
	}

	name := t.String()
	if t.Name() != "" {
		name = stripTypeParams(t.Name())
		if p := t.PkgPath(); p != "" {
			name = path.Base(p) + "." + name
		}
	}

	typeNameCache.Store(t, name)
	return name
}

// FuncName returns the runtime name of a function value without its
// package path, e.g. "mypkg.NewPair" or "mypkg.TestX.func1".
func FuncName(fn reflect.Value) string {
	if !fn.IsValid() || fn.Kind() != reflect.Func || fn.IsNil() {
		return ""
	}
	f := runtime.FuncForPC(fn.Pointer())
	if f == nil {
		return ""
	}
	return path.Base(f.Name())
}

// stripTypeParams removes generic type instantiation suffix: "T[int,string]" -> "T".
func stripTypeParams(s string) string {
	if i := strings.IndexByte(s, '['); i >= 0 {
		return s[:i]
	}
	return s
}
