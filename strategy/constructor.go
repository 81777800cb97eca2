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
	"dirpx.dev/stubx/site"
	uref "dirpx.dev/stubx/utils/reflect"
)

// Constructor stubs types that have constructors in reg. Every parameter
// is stubbed through the active stubber at a ConstructorParameterSite,
// then the constructor is invoked.
//
// sel decides which constructor is used when a type has several. There is
// no implicit tie-break: a type is only accepted when sel picks one, for
// example
//
//	selector.Primary().OrElse(selector.First[apis.Constructor]())
//
// prefers the constructor registered as primary and otherwise the first
// registered one.
func Constructor(reg apis.Registry, sel selector.Selector[apis.Constructor]) apis.Strategy {
	return Simple(&constructor{reg: reg, sel: sel})
}

// constructor consults a provided apis.Registry.
type constructor struct {
	reg apis.Registry
	sel selector.Selector[apis.Constructor]
}

// Ensure constructor implements RawStrategy and apis.Validator.
var (
	_ RawStrategy    = (*constructor)(nil)
	_ apis.Validator = (*constructor)(nil)
)

func (c *constructor) Validate() error {
	if c.reg == nil {
		return errors.Wrap(apis.ErrInvalidArgument, "constructor strategy without registry")
	}
	if c.sel == nil {
		return errors.Wrap(apis.ErrInvalidArgument, "constructor strategy without selector")
	}
	return nil
}

func (c *constructor) AcceptsRaw(ctx apis.Context, t reflect.Type) bool {
	_, ok := c.pick(ctx, t)
	return ok
}

func (c *constructor) StubRaw(ctx apis.Context, t reflect.Type) (any, error) {
	ctor, ok := c.pick(ctx, t)
	if !ok {
		return nil, apis.NewStubbingError(ctx.Site(), t, errors.Wrap(apis.ErrNoStrategy, "no constructor selected"))
	}
	return Construct(ctx, ctor)
}

func (c *constructor) pick(ctx apis.Context, t reflect.Type) (apis.Constructor, bool) {
	if c.reg == nil {
		return apis.Constructor{}, false
	}
	candidates := c.reg.Lookup(t)
	if len(candidates) == 0 {
		return apis.Constructor{}, false
	}
	return c.sel.Select(ctx, candidates)
}

// Construct stubs the parameters of ctor in ctx and invokes it.
func Construct(ctx apis.Context, ctor apis.Constructor) (any, error) {
	args := make([]reflect.Value, ctor.NumIn())
	for i := range args {
		at := site.ConstructorParameter(ctx.Site(), ctor, i)
		in := ctor.In(i)
		v, err := ctx.Stubber().Stub(in, at)
		if err != nil {
			return nil, err
		}
		rv, err := uref.Coerce(v, in)
		if err != nil {
			return nil, apis.NewStubbingError(at, in, err)
		}
		args[i] = rv
	}

	out, err := uref.SafeCall(ctor.Func, args)
	if err != nil {
		return nil, apis.NewStubbingError(ctx.Site(), ctor.Out,
			apis.Invocation(err, "%s", ctor.Name))
	}
	return out[0].Interface(), nil
}
