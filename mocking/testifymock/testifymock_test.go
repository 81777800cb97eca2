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

package testifymock_test

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dirpx.dev/stubx/apis"
	"dirpx.dev/stubx/config"
	"dirpx.dev/stubx/mocking/testifymock"
	"dirpx.dev/stubx/site"
	"dirpx.dev/stubx/strategy"
	"dirpx.dev/stubx/stubber"
)

type Greeter interface {
	Greet(name string) string
	Count() (int, error)
}

type Closer interface{ Close() error }

type GreeterMock struct{ mock.Mock }

func (m *GreeterMock) Greet(name string) string { return m.Called(name).String(0) }

func (m *GreeterMock) Count() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

func (m *GreeterMock) Close() error { return m.Called().Error(0) }

type plainGreeter struct{}

func (plainGreeter) Greet(string) string { return "" }
func (plainGreeter) Count() (int, error) { return 0, nil }

func newMocker() *testifymock.Mocker {
	m := testifymock.New()
	testifymock.Register[Greeter](m, func() Greeter { return new(GreeterMock) })
	return m
}

func stubGreeter(t *testing.T, strategies ...apis.Strategy) (Greeter, error) {
	t.Helper()
	s, err := stubber.New(config.DefaultConfig(), strategies)
	require.NoError(t, err)
	v, err := s.Stub(reflect.TypeFor[Greeter](), site.Root("greeter"))
	if err != nil {
		return nil, err
	}
	return v.(Greeter), nil
}

func TestCanMock(t *testing.T) {
	m := newMocker()
	assert.True(t, m.CanMock(reflect.TypeFor[Greeter]()))
	assert.False(t, m.CanMock(reflect.TypeFor[Closer]()))
}

func TestRelaxedMockAnswersWithStubs(t *testing.T) {
	g, err := stubGreeter(t,
		strategy.GenericMock(newMocker(), strategy.Relaxed(true)),
		strategy.Sequence("hi", "hey"),
		strategy.ConstantValue(3),
		strategy.NilValue(),
	)
	require.NoError(t, err)

	assert.Equal(t, "hi", g.Greet("ann"))
	assert.Equal(t, "hey", g.Greet("bob"))
	n, err := g.Count()
	assert.NoError(t, err)
	assert.Equal(t, 3, n)

	g.(*GreeterMock).AssertExpectations(t)
}

func TestRelaxedMockResultSites(t *testing.T) {
	var seen apis.Site
	rec := strategy.SuppliedValue(reflect.TypeFor[string](), func(ctx apis.Context, _ int) (any, error) {
		seen = ctx.Site()
		return "x", nil
	})
	g, err := stubGreeter(t, strategy.GenericMock(newMocker(), strategy.Relaxed(true)), rec)
	require.NoError(t, err)

	g.Greet("ann")
	rs, ok := seen.(site.MethodReturnValueSite)
	require.True(t, ok, "%T", seen)
	assert.Equal(t, "Greet", rs.Method.Name)
	parent, _ := rs.Parent()
	assert.Equal(t, apis.Site(site.Root("greeter")), parent)
}

func TestRelaxedMockPanicsWhenResultCannotBeStubbed(t *testing.T) {
	g, err := stubGreeter(t, strategy.GenericMock(newMocker(), strategy.Relaxed(true)))
	require.NoError(t, err)
	assert.Panics(t, func() { g.Greet("ann") })
}

func TestConfiguredMock(t *testing.T) {
	configure := strategy.Configure(func(v any) error {
		v.(*GreeterMock).On("Greet", "bob").Return("hello bob")
		return nil
	})
	g, err := stubGreeter(t, strategy.Mock(reflect.TypeFor[Greeter](), newMocker(), configure))
	require.NoError(t, err)

	assert.Equal(t, "hello bob", g.Greet("bob"))
	assert.Panics(t, func() { g.Greet("eve") })

	failing := strategy.Configure(func(any) error { return fmt.Errorf("bad setup") })
	_, err = stubGreeter(t, strategy.Mock(reflect.TypeFor[Greeter](), newMocker(), failing))
	assert.ErrorIs(t, err, apis.ErrInvocation)
	assert.Contains(t, err.Error(), "bad setup")
}

func TestExtraInterfaces(t *testing.T) {
	g, err := stubGreeter(t,
		strategy.GenericMock(newMocker(),
			strategy.Relaxed(true),
			strategy.ExtraInterfaces(reflect.TypeFor[Closer]())),
		strategy.NilValue(),
	)
	require.NoError(t, err)
	c, ok := g.(Closer)
	require.True(t, ok)
	assert.NoError(t, c.Close())

	_, err = stubGreeter(t, strategy.GenericMock(newMocker(), strategy.ExtraInterfaces(reflect.TypeFor[fmt.Stringer]())))
	assert.ErrorIs(t, err, apis.ErrInvocation)
	assert.Contains(t, err.Error(), "does not implement")
}

func TestRelaxedNeedsTestifyMock(t *testing.T) {
	m := testifymock.New()
	testifymock.Register[Greeter](m, func() Greeter { return plainGreeter{} })

	_, err := stubGreeter(t, strategy.GenericMock(m, strategy.Relaxed(true)))
	assert.ErrorIs(t, err, apis.ErrInvocation)

	g, err := stubGreeter(t, strategy.GenericMock(m))
	require.NoError(t, err)
	assert.Equal(t, plainGreeter{}, g)
}
