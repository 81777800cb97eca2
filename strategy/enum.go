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
	"dirpx.dev/stubx/selector"
)

// Enum stubs T with one of values, picked by sel. Go has no enum types;
// this serves the usual typed-constant sets:
//
//	type Color int
//	const (Red Color = iota; Green)
//	strategy.Enum(selector.First[Color](), Red, Green)
func Enum[T any](sel selector.Selector[T], values ...T) apis.Strategy {
	switch {
	case len(values) == 0:
		return invalid{err: errors.Wrapf(apis.ErrInvalidArgument, "no values for enum %s", reflect.TypeFor[T]())}
	case sel == nil:
		return invalid{err: errors.Wrapf(apis.ErrInvalidArgument, "no selector for enum %s", reflect.TypeFor[T]())}
	}
	return Exact(enum[T]{sel: sel, values: append([]T(nil), values...)})
}

type enum[T any] struct {
	sel    selector.Selector[T]
	values []T
}

func (e enum[T]) AcceptsRaw(_ apis.Context, t reflect.Type) bool { return t == reflect.TypeFor[T]() }

func (e enum[T]) StubRaw(ctx apis.Context, t reflect.Type) (any, error) {
	v, ok := e.sel.Select(ctx, e.values)
	if !ok {
		return nil, apis.NewStubbingError(ctx.Site(), t, errors.Wrap(apis.ErrInvocation, "selector picked no enum value"))
	}
	return v, nil
}
