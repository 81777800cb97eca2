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

package inject

import (
	"reflect"
	"strings"

	"github.com/Laisky/errors/v2"
	"go.uber.org/multierr"

	"dirpx.dev/stubx/apis"
	"dirpx.dev/stubx/matcher"
	"dirpx.dev/stubx/strategy"
	"dirpx.dev/stubx/types"
	uref "dirpx.dev/stubx/utils/reflect"
)

var (
	strategyType   = reflect.TypeFor[apis.Strategy]()
	strategiesType = reflect.TypeFor[[]apis.Strategy]()
	contextType    = reflect.TypeFor[apis.Context]()
)

// Strategies collects the strategies declared by the StubXxx methods of
// provider, in method name order:
//
//   - func() apis.Strategy and func() []apis.Strategy contribute the
//     returned strategies;
//   - func() T, func() (T, error), func(apis.Context) T and
//     func(apis.Context) (T, error) become suppliers of T called on every
//     request.
//
// Methods with other signatures are reported as errors.
func Strategies(provider any) ([]apis.Strategy, error) {
	rv := reflect.ValueOf(provider)
	if !rv.IsValid() {
		return nil, errors.Wrap(apis.ErrInvalidArgument, "stubx(inject): nil provider")
	}
	t := rv.Type()

	var (
		out  []apis.Strategy
		errs error
	)
	for i := 0; i < t.NumMethod(); i++ {
		name := t.Method(i).Name
		if !strings.HasPrefix(name, "Stub") {
			continue
		}
		fn := rv.Method(i)
		ft := fn.Type()
		switch {
		case ft.NumIn() == 0 && ft.NumOut() == 1 && ft.Out(0) == strategyType:
			if s, ok := fn.Call(nil)[0].Interface().(apis.Strategy); ok {
				out = append(out, s)
			}
		case ft.NumIn() == 0 && ft.NumOut() == 1 && ft.Out(0) == strategiesType:
			ss, _ := fn.Call(nil)[0].Interface().([]apis.Strategy)
			out = append(out, ss...)
		default:
			s, err := supplier(name, fn)
			if err != nil {
				errs = multierr.Append(errs, err)
				continue
			}
			out = append(out, s)
		}
	}
	return out, errs
}

func supplier(name string, fn reflect.Value) (apis.Strategy, error) {
	ft := fn.Type()
	withCtx := ft.NumIn() == 1 && ft.In(0) == contextType
	switch {
	case ft.NumIn() > 1 || ft.NumIn() == 1 && !withCtx,
		ft.NumOut() == 0 || ft.NumOut() > 2,
		ft.Out(0) == errorType,
		ft.NumOut() == 2 && ft.Out(1) != errorType:
		return nil, errors.Wrapf(apis.ErrInvalidArgument, "stubx(inject): provider method %s has unsupported signature %s", name, ft)
	}
	return strategy.SuppliedValue(ft.Out(0), func(ctx apis.Context, _ int) (any, error) {
		var args []reflect.Value
		if withCtx {
			args = []reflect.Value{reflect.ValueOf(ctx)}
		}
		out, err := uref.SafeCall(fn, args)
		if err != nil {
			return nil, err
		}
		return out[0].Interface(), nil
	}), nil
}

// SubjectDependencies restricts s to the constructor parameters of
// subject, the type under test. subject must be instantiable; interfaces
// and funcs are rejected when the stubber is built.
func SubjectDependencies(subject reflect.Type, s apis.Strategy) apis.Strategy {
	if !uref.Instantiable(subject) {
		return strategy.Invalid(errors.Wrapf(apis.ErrInvalidArgument,
			"stubx(inject): subject %v is not an instantiable type", subject))
	}
	return strategy.When(s, matcher.Site[types.Type](matcher.ConstructorParameterOf(subject)))
}

// Injecting returns a strategy that fills the values delegate produces:
// selected fields first, then setters. Values must be struct pointers
// for fields to be injected; struct values are copied, filled and
// returned.
func Injecting(delegate apis.Strategy, opts ...Option) apis.Strategy {
	return strategy.Enhance(delegate, Enhancer(opts...))
}

// Enhancer is the strategy.EnhanceFunc behind Injecting. Injected values
// are requested below the site of the enhanced value unless At is given.
func Enhancer(opts ...Option) strategy.EnhanceFunc {
	return func(ctx apis.Context, _ types.Type, v any) (any, error) {
		rv := reflect.ValueOf(v)
		if !rv.IsValid() || uref.IsNillable(rv.Kind()) && rv.IsNil() {
			return v, nil
		}
		o := options{fields: tagged, at: ctx.Site()}
		for _, opt := range opts {
			opt(&o)
		}
		ctx = ctx.Fork(o.at)

		var target reflect.Value
		switch {
		case rv.Kind() == reflect.Pointer && rv.Elem().Kind() == reflect.Struct:
			target = rv
		case rv.Kind() == reflect.Struct:
			target = reflect.New(rv.Type())
			target.Elem().Set(rv)
		default:
			return v, setters(ctx, rv)
		}
		err := multierr.Append(fields(ctx, target.Elem(), o.fields), setters(ctx, target))
		if err != nil {
			return nil, err
		}
		if rv.Kind() == reflect.Struct {
			return target.Elem().Interface(), nil
		}
		return v, nil
	}
}
