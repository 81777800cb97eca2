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

package stubx

import (
	"reflect"

	"github.com/Laisky/errors/v2"

	"dirpx.dev/stubx/apis"
	"dirpx.dev/stubx/builder"
	"dirpx.dev/stubx/config"
	"dirpx.dev/stubx/faker"
	"dirpx.dev/stubx/matcher"
	"dirpx.dev/stubx/selector"
	"dirpx.dev/stubx/strategy"
	"dirpx.dev/stubx/types"
)

// NilTag is the `stub` struct tag value requesting a nil field.
const NilTag = "nil"

var errorType = reflect.TypeFor[error]()

// DefaultStrategies returns the strategies of Default, in resolution
// order. reg may be nil, in which case constructors are not used.
func DefaultStrategies(cfg apis.Config, reg apis.Registry) []apis.Strategy {
	size := strategy.Size(cfg.CollectionSize)

	out := []apis.Strategy{
		strategy.SelfStubbing(),
		strategy.StubberValue(),
	}
	out = append(out, strategy.CommonConstantValues()...)
	out = append(out, strategy.CommonSuppliedValues()...)
	out = append(out,
		strategy.When(strategy.NilValue(), matcher.Site[types.Type](matcher.Tagged(strategy.TagKey, NilTag))),
		strategy.When(strategy.NilValue(), matcher.TypeIs(errorType)),
		strategy.DefaultValue(),
	)
	if reg != nil {
		sel := selector.Primary().OrElse(selector.First[apis.Constructor]())
		out = append(out, strategy.Constructor(reg, sel))
	}
	return append(out,
		strategy.Func(false),
		strategy.Pointer(cfg.PointerMode),
		strategy.Slice(size),
		strategy.Map(size),
		strategy.Chan(size),
		strategy.Array(),
		strategy.StructFields(),
	)
}

// Default returns a stubber producing usable values: zero values of
// basic kinds, nil errors, well-known standard library values, values
// built by the registered constructors (the primary one, otherwise the
// first registered), functions, filled pointers, collections of
// cfg.CollectionSize elements, arrays and struct literals.
//
// Interfaces other than error are not stubbed; add a mocking strategy
// or an implementation for them.
func Default(cfg apis.Config, reg apis.Registry, opts ...builder.Option) (apis.Stubber, error) {
	return builder.New(cfg, opts...).StubWith(DefaultStrategies(cfg, reg)...).Build()
}

// Minimal is Default with nil pointers and empty collections. Mutable
// standard values such as *sync.Mutex are still supplied.
func Minimal(cfg apis.Config, reg apis.Registry, opts ...builder.Option) (apis.Stubber, error) {
	cfg.PointerMode = apis.Nil
	cfg.CollectionSize = 0
	return Default(cfg, reg, opts...)
}

// Realistic is Default with fake names, addresses and phone numbers for
// strings requested at suitably named sites. The faker is seeded with
// cfg.Seed; the zero seed is fixed too, so runs are reproducible.
func Realistic(cfg apis.Config, reg apis.Registry, opts ...builder.Option) (apis.Stubber, error) {
	base, err := Default(cfg, reg, opts...)
	if err != nil {
		return nil, err
	}
	return builder.New(cfg, opts...).
		Include(base).
		StubFirst(faker.FakedData(faker.New(cfg.Seed))...).
		Build()
}

// ProfileStrategies returns a constant strategy for every constant of p.
func ProfileStrategies(p config.Profile) ([]apis.Strategy, error) {
	consts, err := p.ConstantValues()
	if err != nil {
		return nil, err
	}
	out := make([]apis.Strategy, len(consts))
	for i, c := range consts {
		out[i] = strategy.ConstantValueOf(c.Type, c.Value)
	}
	return out, nil
}

// FromProfile returns Default configured by p, with the constants of p
// taking precedence.
func FromProfile(p config.Profile, reg apis.Registry, opts ...builder.Option) (apis.Stubber, error) {
	consts, err := ProfileStrategies(p)
	if err != nil {
		return nil, errors.Wrap(err, "stubx: profile")
	}
	cfg := p.Config()
	base, err := Default(cfg, reg, opts...)
	if err != nil {
		return nil, err
	}
	return builder.New(cfg, opts...).Include(base).StubFirst(consts...).Build()
}
