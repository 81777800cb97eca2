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

// Package testifymock adapts github.com/stretchr/testify/mock to
// strategy.Mocker.
//
// Mocks are written the testify way and registered per interface:
//
//	type GreeterMock struct{ mock.Mock }
//
//	func (m *GreeterMock) Greet(name string) string { return m.Called(name).String(0) }
//
//	m := testifymock.New()
//	testifymock.Register[Greeter](m, func() Greeter { return new(GreeterMock) })
//	s, _ := builder.New(cfg).StubWith(strategy.GenericMock(m, strategy.Relaxed(true))).Build()
//
// A relaxed mock answers every method of the mocked interface, and of
// the extra interfaces, with values stubbed at the method's return value
// sites on each call. Those expectations are optional, so
// AssertExpectations only checks the ones set up by the test.
package testifymock

import (
	"reflect"
	"sync"

	"github.com/Laisky/errors/v2"
	"github.com/stretchr/testify/mock"

	"dirpx.dev/stubx/apis"
	"dirpx.dev/stubx/site"
	"dirpx.dev/stubx/strategy"
	uref "dirpx.dev/stubx/utils/reflect"
)

var (
	// ErrNotExpecter is returned for relaxed mocks that do not embed
	// mock.Mock.
	ErrNotExpecter = errors.New("stubx(testifymock): mock does not embed mock.Mock")
	// ErrMissingInterface is returned when a mock lacks an interface
	// requested with strategy.ExtraInterfaces.
	ErrMissingInterface = errors.New("stubx(testifymock): mock does not implement interface")
)

// expecter is the part of *mock.Mock used to relax mocks.
type expecter interface {
	On(methodName string, arguments ...any) *mock.Call
}

// Mocker creates testify mocks from registered factories. It is safe for
// concurrent use.
type Mocker struct {
	mu        sync.RWMutex
	factories map[reflect.Type]func() any
}

// Ensure Mocker implements strategy.Mocker.
var _ strategy.Mocker = (*Mocker)(nil)

// New returns an empty Mocker.
func New() *Mocker {
	return &Mocker{factories: make(map[reflect.Type]func() any)}
}

// Register makes m create mocks of T with factory. A later registration
// for the same T replaces the earlier one.
func Register[T any](m *Mocker, factory func() T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.factories[reflect.TypeFor[T]()] = func() any { return factory() }
}

// CanMock reports whether a factory is registered for t.
func (m *Mocker) CanMock(t reflect.Type) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.factories[t]
	return ok
}

// Mock creates a mock of t, relaxes it when asked, checks the extra
// interfaces and runs the configure callback.
func (m *Mocker) Mock(ctx apis.Context, t reflect.Type, opts strategy.MockOptions) (any, error) {
	m.mu.RLock()
	factory, ok := m.factories[t]
	m.mu.RUnlock()
	if !ok {
		return nil, errors.Errorf("stubx(testifymock): no mock registered for %s", t)
	}

	v := factory()
	if v == nil {
		return nil, errors.Errorf("stubx(testifymock): factory for %s returned nil", t)
	}
	vt := reflect.TypeOf(v)
	for _, iface := range opts.Interfaces {
		if iface == nil || iface.Kind() != reflect.Interface || !vt.Implements(iface) {
			return nil, errors.Wrapf(ErrMissingInterface, "%s does not implement %v", vt, iface)
		}
	}

	if opts.Relaxed {
		e, ok := v.(expecter)
		if !ok {
			return nil, errors.Wrapf(ErrNotExpecter, "%s", vt)
		}
		relax(ctx, e, append([]reflect.Type{t}, opts.Interfaces...))
	}

	if opts.Configure != nil {
		if err := opts.Configure(v); err != nil {
			return nil, errors.Wrapf(err, "configure mock of %s", t)
		}
	}
	return v, nil
}

// relax sets up an optional expectation for every method of ifaces that
// returns values stubbed on each call.
func relax(ctx apis.Context, e expecter, ifaces []reflect.Type) {
	seen := make(map[string]bool)
	for _, iface := range ifaces {
		if iface.Kind() != reflect.Interface {
			continue
		}
		for i := 0; i < iface.NumMethod(); i++ {
			meth := iface.Method(i)
			if seen[meth.Name] {
				continue
			}
			seen[meth.Name] = true

			args := make([]any, meth.Type.NumIn())
			for j := range args {
				args[j] = mock.Anything
			}
			target := site.MethodOf(iface, meth)
			call := e.On(meth.Name, args...).Maybe()
			call.Run(func(mock.Arguments) {
				call.Return(results(ctx, target)...)
			})
		}
	}
}

// results stubs the results of m below the mock's site. It panics with
// the *apis.StubbingError when a result cannot be stubbed, like functions
// stubbed by strategy.Func.
func results(ctx apis.Context, m site.Method) []any {
	out := make([]any, m.Type.NumOut())
	for i := range out {
		rt := m.Type.Out(i)
		at := site.MethodReturnValue(ctx.Site(), m, i)
		v, err := ctx.Stubber().Stub(rt, at)
		if err != nil {
			panic(err)
		}
		rv, err := uref.Coerce(v, rt)
		if err != nil {
			panic(apis.NewStubbingError(at, rt, err))
		}
		out[i] = rv.Interface()
	}
	return out
}
