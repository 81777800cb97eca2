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
	"dirpx.dev/stubx/types"
	uref "dirpx.dev/stubx/utils/reflect"
)

// MockOptions is what a Mocker is asked for besides the type.
type MockOptions struct {
	// Relaxed mocks answer unexpected calls with stubbed values instead of
	// failing.
	Relaxed bool
	// Interfaces lists extra interfaces the mock must implement.
	Interfaces []reflect.Type
	// Configure is called with the new mock before it is returned.
	Configure func(mock any) error
}

// MockOption tweaks MockOptions.
type MockOption func(*MockOptions)

// Relaxed sets MockOptions.Relaxed.
func Relaxed(relaxed bool) MockOption {
	return func(o *MockOptions) { o.Relaxed = relaxed }
}

// ExtraInterfaces appends to MockOptions.Interfaces.
func ExtraInterfaces(ifaces ...reflect.Type) MockOption {
	return func(o *MockOptions) { o.Interfaces = append(o.Interfaces, ifaces...) }
}

// Configure sets MockOptions.Configure.
func Configure(fn func(mock any) error) MockOption {
	return func(o *MockOptions) { o.Configure = fn }
}

// Mocker creates mocks. It is the boundary to a mocking library; see
// package mocking/testifymock for an implementation.
type Mocker interface {
	// CanMock reports whether t can be mocked.
	CanMock(t reflect.Type) bool
	// Mock returns a mock assignable to t.
	Mock(ctx apis.Context, t reflect.Type, opts MockOptions) (any, error)
}

func newMockOptions(opts []MockOption) MockOptions {
	var o MockOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Mock stubs exactly t with mocks from m. t must be mockable by m; this is
// checked when the stubber is built.
func Mock(t reflect.Type, m Mocker, opts ...MockOption) apis.Strategy {
	switch {
	case t == nil || m == nil:
		return invalid{err: errors.Wrap(apis.ErrInvalidArgument, "mock needs a type and a mocker")}
	case !m.CanMock(t):
		return invalid{err: errors.Wrapf(apis.ErrInvalidArgument, "%s cannot be mocked", t)}
	}
	return Exact(mock{m: m, opts: newMockOptions(opts), only: t})
}

// GenericMock stubs every type m can mock, except basic kinds, arrays and
// unnamed containers. Parameterized types are mocked through their raw
// type; when there is none the request fails with apis.ErrNoRawType.
func GenericMock(m Mocker, opts ...MockOption) apis.Strategy {
	if m == nil {
		return invalid{err: errors.Wrap(apis.ErrInvalidArgument, "nil mocker")}
	}
	return Simple(mock{m: m, opts: newMockOptions(opts)})
}

type mock struct {
	m    Mocker
	opts MockOptions
	only reflect.Type
}

// Ensure mock implements ParameterizedStrategy.
var _ ParameterizedStrategy = mock{}

func (s mock) AcceptsRaw(_ apis.Context, t reflect.Type) bool {
	if s.only != nil {
		return t == s.only
	}
	return !uref.IsBasic(t.Kind()) && s.m.CanMock(t)
}

func (s mock) StubRaw(ctx apis.Context, t reflect.Type) (any, error) {
	v, err := s.m.Mock(ctx, t, s.opts)
	if err != nil {
		if _, ok := apis.AsStubbingError(err); ok {
			return nil, err
		}
		return nil, apis.NewStubbingError(ctx.Site(), t, apis.Invocation(err, "mock"))
	}
	if v == nil || !reflect.TypeOf(v).AssignableTo(t) {
		return nil, apis.NewStubbingError(ctx.Site(), t, errors.Wrapf(apis.ErrInvocation, "mock of type %T", v))
	}
	return v, nil
}

func (s mock) AcceptsParameterized(ctx apis.Context, t types.Type) bool {
	if s.only != nil {
		return t.Reflect() == s.only
	}
	return s.m.CanMock(t.Reflect())
}

func (s mock) StubParameterized(ctx apis.Context, t types.Type) (any, error) {
	raw, ok := t.RawType()
	if !ok {
		return nil, apis.NewStubbingError(ctx.Site(), t.Reflect(), apis.ErrNoRawType)
	}
	return s.StubRaw(ctx, raw)
}
