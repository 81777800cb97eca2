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

	"github.com/Laisky/errors/v2"

	"dirpx.dev/stubx/apis"
	"dirpx.dev/stubx/site"
	"dirpx.dev/stubx/types"
	uref "dirpx.dev/stubx/utils/reflect"
)

// Pointer stubs pointer types according to mode. The element is requested
// at a TypeArgumentSite, so self-referencing types terminate through the
// depth guard when mode is apis.PresentIfPossible: the innermost pointer
// that cannot be filled stays nil.
func Pointer(mode apis.PointerMode) apis.Strategy { return pointer{mode: mode} }

type pointer struct {
	mode apis.PointerMode
}

// Ensure pointer implements apis.Strategy.
var _ apis.Strategy = pointer{}

func (pointer) Accepts(_ apis.Context, t types.Type) bool {
	return t.Kind() == types.Parameterized && t.Reflect().Kind() == reflect.Pointer
}

func (p pointer) Stub(ctx apis.Context, t types.Type) (any, error) {
	pt := t.Reflect()
	elem := pt.Elem()
	at := site.TypeArgument(ctx.Site(), pt, 0)

	var v any
	switch p.mode {
	case apis.Nil:
		return reflect.Zero(pt).Interface(), nil
	case apis.Present:
		x, err := ctx.Stubber().Stub(elem, at)
		if err != nil {
			return nil, err
		}
		v = x
	default:
		res, err := ctx.Stubber().TryStub(elem, at)
		if errors.Is(err, apis.ErrMaxDepth) {
			return reflect.Zero(pt).Interface(), nil
		}
		if err != nil {
			return nil, err
		}
		x, ok := res.Value()
		if !ok {
			return reflect.Zero(pt).Interface(), nil
		}
		v = x
	}

	rv, err := uref.Coerce(v, elem)
	if err != nil {
		return nil, apis.NewStubbingError(at, elem, err)
	}
	out := reflect.New(elem)
	out.Elem().Set(rv)
	return out.Interface(), nil
}
