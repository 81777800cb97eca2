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

package strategy_test

import (
	"errors"
	"reflect"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/stubx/apis"
	"dirpx.dev/stubx/config"
	"dirpx.dev/stubx/registry"
	"dirpx.dev/stubx/selector"
	"dirpx.dev/stubx/site"
	"dirpx.dev/stubx/strategy"
	"dirpx.dev/stubx/stubber"
	uref "dirpx.dev/stubx/utils/reflect"
)

type Pair struct{ A, B string }

func NewPair(a, b string) Pair { return Pair{A: a, B: b} }

func firstCtor() selector.Selector[apis.Constructor] { return selector.First[apis.Constructor]() }

func TestConstructor_PairScenario(t *testing.T) {
	reg := registry.New()
	require.NoError(t, reg.Register(NewPair))

	s := newStubber(t, strategy.ConstantValue("X"), strategy.Constructor(reg, firstCtor()))
	assert.Equal(t, Pair{A: "X", B: "X"}, stub[Pair](t, s))
}

func TestConstructor_ParametersAtConstructorSites(t *testing.T) {
	reg := registry.New()
	require.NoError(t, reg.Register(NewPair, registry.ParamNames("a", "b")))

	var seen []apis.Site
	names := strategy.SuppliedValue(reflect.TypeFor[string](), func(ctx apis.Context, _ int) (any, error) {
		seen = append(seen, ctx.Site())
		name, _ := site.NameOf(ctx.Site())
		return name, nil
	})
	s := newStubber(t, names, strategy.Constructor(reg, firstCtor()))

	root := site.Root("pair")
	got := stubAt[Pair](t, s, root)
	assert.Equal(t, Pair{A: "a", B: "b"}, got)

	ctor := reg.Lookup(reflect.TypeFor[Pair]())[0]
	assert.Equal(t, []apis.Site{
		site.ConstructorParameter(root, ctor, 0),
		site.ConstructorParameter(root, ctor, 1),
	}, seen)
}

var calls struct{ one, two, primary atomic.Int32 }

type Multi struct{ N int }

func NewMultiOne(n int) Multi    { calls.one.Add(1); return Multi{N: n} }
func NewMultiTwo(a, b int) Multi { calls.two.Add(1); return Multi{N: a + b} }
func NewMultiPrimary() Multi     { calls.primary.Add(1); return Multi{N: -1} }

func TestConstructor_SingleConstructorIsAlwaysUsed(t *testing.T) {
	reg := registry.New()
	require.NoError(t, reg.Register(NewMultiOne))
	s := newStubber(t, strategy.Supplied(func(n int) int { return n + 1 }), strategy.Constructor(reg, selector.Only()))

	before := calls.one.Load()
	assert.Equal(t, Multi{N: 1}, stub[Multi](t, s))
	assert.Equal(t, Multi{N: 2}, stub[Multi](t, s))
	assert.Equal(t, before+2, calls.one.Load())
}

func TestConstructor_PrimarySelector(t *testing.T) {
	reg := registry.New()
	require.NoError(t, reg.Register(NewMultiOne))
	require.NoError(t, reg.Register(NewMultiPrimary, registry.Primary()))
	require.NoError(t, reg.Register(NewMultiTwo))

	s := newStubber(t, strategy.DefaultValue(), strategy.Constructor(reg, selector.Primary()))

	one, two, primary := calls.one.Load(), calls.two.Load(), calls.primary.Load()
	for i := 0; i < 3; i++ {
		assert.Equal(t, Multi{N: -1}, stub[Multi](t, s))
	}
	assert.Equal(t, one, calls.one.Load())
	assert.Equal(t, two, calls.two.Load())
	assert.Equal(t, primary+3, calls.primary.Load())
}

func TestConstructor_NoSelectionMeansNoAcceptance(t *testing.T) {
	reg := registry.New()
	require.NoError(t, reg.Register(NewMultiOne))
	require.NoError(t, reg.Register(NewMultiTwo))

	s := newStubber(t, strategy.DefaultValue(), strategy.Constructor(reg, selector.Only()))
	res, err := s.TryStub(reflect.TypeFor[Multi](), nil)
	require.NoError(t, err)
	assert.True(t, res.IsFailure())

	s = newStubber(t, strategy.DefaultValue(), strategy.Constructor(reg, selector.GreatestArity()))
	assert.Equal(t, Multi{N: 0}, stub[Multi](t, s))
}

func TestConstructor_RequiresRegistryAndSelector(t *testing.T) {
	_, err := stubber.New(config.DefaultConfig(), []apis.Strategy{
		strategy.Constructor(nil, firstCtor()),
		strategy.Constructor(registry.New(), nil),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apis.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "without registry")
	assert.Contains(t, err.Error(), "without selector")
}

type Conn struct{ Addr string }

var errDial = errors.New("dial refused")

func Dial(addr string) (*Conn, error) { return nil, errDial }
func MustDial(addr string) Conn       { panic("no network in tests") }

func TestConstructor_ParameterFailurePropagates(t *testing.T) {
	reg := registry.New()
	require.NoError(t, reg.Register(NewPair))
	s := newStubber(t, strategy.Constructor(reg, firstCtor()))

	root := site.Root("pair")
	_, err := s.Stub(reflect.TypeFor[Pair](), root)
	require.Error(t, err)

	se, ok := apis.AsStubbingError(err)
	require.True(t, ok)
	assert.Equal(t, reflect.TypeFor[string](), se.Type)
	assert.Equal(t, apis.Site(site.ConstructorParameter(root, reg.Lookup(reflect.TypeFor[Pair]())[0], 0)), se.Site)
	assert.Equal(t, apis.Site(root), se.Path()[1])
	assert.ErrorIs(t, err, apis.ErrNoStrategy)
}

func TestConstructor_InvocationFailures(t *testing.T) {
	reg := registry.New()
	require.NoError(t, reg.Register(Dial))
	require.NoError(t, reg.Register(MustDial))
	s := newStubber(t, strategy.DefaultValue(), strategy.Constructor(reg, firstCtor()))

	err := stubErr[*Conn](s)
	assert.ErrorIs(t, err, apis.ErrInvocation)
	assert.ErrorIs(t, err, errDial)
	assert.Contains(t, err.Error(), "dial refused")

	err = stubErr[Conn](s)
	assert.ErrorIs(t, err, apis.ErrInvocation)
	assert.ErrorIs(t, err, uref.ErrReflectPanic)
	assert.Contains(t, err.Error(), "no network in tests")
}

type Joined string

func NewJoined(sep string, parts ...string) Joined { return Joined(strings.Join(parts, sep)) }

func TestConstructor_Variadic(t *testing.T) {
	reg := registry.New()
	require.NoError(t, reg.Register(NewJoined))
	s := newStubber(t,
		strategy.Sequence("-", "a", "b"),
		strategy.Slice(strategy.Size(2)),
		strategy.Constructor(reg, firstCtor()),
	)
	assert.Equal(t, Joined("a-b"), stub[Joined](t, s))
}
