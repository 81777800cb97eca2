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

// SizeFunc decides how many elements a stubbed collection holds.
type SizeFunc func(ctx apis.Context, t types.Type) int

// Size returns a SizeFunc always answering n.
func Size(n int) SizeFunc {
	return func(apis.Context, types.Type) int { return n }
}

func (f SizeFunc) of(ctx apis.Context, t types.Type) int {
	if f == nil {
		return 0
	}
	return max(f(ctx, t), 0)
}

// Slice stubs slice types with size elements, each requested at a
// TypeArgumentSite.
func Slice(size SizeFunc) apis.Strategy { return container{kind: reflect.Slice, size: size} }

// Map stubs map types with up to size entries. Keys are requested at
// TypeArgumentSite 0 and values at TypeArgumentSite 1; duplicate keys
// collapse.
func Map(size SizeFunc) apis.Strategy { return container{kind: reflect.Map, size: size} }

// Chan stubs channel types with a buffer of size holding size elements.
func Chan(size SizeFunc) apis.Strategy { return container{kind: reflect.Chan, size: size} }

type container struct {
	kind reflect.Kind
	size SizeFunc
}

// Ensure container implements apis.Strategy.
var _ apis.Strategy = container{}

func (c container) Accepts(_ apis.Context, t types.Type) bool {
	return t.Kind() == types.Parameterized && t.Reflect().Kind() == c.kind
}

func (c container) Stub(ctx apis.Context, t types.Type) (any, error) {
	rt := t.Reflect()
	n := c.size.of(ctx, t)

	switch c.kind {
	case reflect.Slice:
		out := reflect.MakeSlice(rt, n, n)
		for i := 0; i < n; i++ {
			v, err := stubArg(ctx, rt, 0, rt.Elem())
			if err != nil {
				return nil, err
			}
			out.Index(i).Set(v)
		}
		return out.Interface(), nil

	case reflect.Map:
		out := reflect.MakeMapWithSize(rt, n)
		for i := 0; i < n; i++ {
			k, err := stubArg(ctx, rt, 0, rt.Key())
			if err != nil {
				return nil, err
			}
			v, err := stubArg(ctx, rt, 1, rt.Elem())
			if err != nil {
				return nil, err
			}
			out.SetMapIndex(k, v)
		}
		return out.Interface(), nil

	default:
		// Directional channel types cannot be made; make a bidirectional
		// one and convert.
		ch := reflect.MakeChan(reflect.ChanOf(reflect.BothDir, rt.Elem()), n)
		for i := 0; i < n; i++ {
			v, err := stubArg(ctx, rt, 0, rt.Elem())
			if err != nil {
				return nil, err
			}
			ch.Send(v)
		}
		return ch.Convert(rt).Interface(), nil
	}
}

// Collection stubs C by stubbing size values of E, each at a
// TypeArgumentSite of C, and passing them to factory. It serves container
// types whose element type reflection cannot see, such as generic structs.
func Collection[C, E any](factory func([]E) C, size SizeFunc) apis.Strategy {
	if factory == nil {
		return invalid{err: errors.Wrap(apis.ErrInvalidArgument, "nil collection factory")}
	}
	return collection[C, E]{factory: factory, size: size}
}

type collection[C, E any] struct {
	factory func([]E) C
	size    SizeFunc
}

func (c collection[C, E]) Accepts(_ apis.Context, t types.Type) bool {
	return t.Reflect() != nil && t.Reflect() == reflect.TypeFor[C]()
}

func (c collection[C, E]) Stub(ctx apis.Context, t types.Type) (any, error) {
	et := reflect.TypeFor[E]()
	n := c.size.of(ctx, t)
	elems := make([]E, n)
	for i := range elems {
		v, err := stubArg(ctx, t.Reflect(), 0, et)
		if err != nil {
			return nil, err
		}
		if x, ok := v.Interface().(E); ok {
			elems[i] = x
		}
	}
	return c.factory(elems), nil
}

// stubArg stubs type argument index of container.
func stubArg(ctx apis.Context, container reflect.Type, index int, t reflect.Type) (reflect.Value, error) {
	at := site.TypeArgument(ctx.Site(), container, index)
	v, err := ctx.Stubber().Stub(t, at)
	if err != nil {
		return reflect.Value{}, err
	}
	rv, err := uref.Coerce(v, t)
	if err != nil {
		return reflect.Value{}, apis.NewStubbingError(at, t, err)
	}
	return rv, nil
}
