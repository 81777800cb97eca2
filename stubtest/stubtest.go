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

// Package stubtest wires stubbers into tests. Every helper fails the test
// immediately on error and logs stub resolution through the test log.
package stubtest

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"dirpx.dev/stubx"
	"dirpx.dev/stubx/apis"
	"dirpx.dev/stubx/builder"
	"dirpx.dev/stubx/config"
	"dirpx.dev/stubx/inject"
	"dirpx.dev/stubx/site"
)

func logger(tb testing.TB) builder.Option {
	return builder.WithLogger(zaptest.NewLogger(tb))
}

// New builds a stubber from strategies in resolution order.
func New(tb testing.TB, strategies ...apis.Strategy) apis.Stubber {
	tb.Helper()
	s, err := builder.New(config.DefaultConfig(), logger(tb)).StubWith(strategies...).Build()
	require.NoError(tb, err, "build stubber")
	return s
}

// Default returns stubx.Default for the config built from opts. reg may
// be nil.
func Default(tb testing.TB, reg apis.Registry, opts ...config.Option) apis.Stubber {
	tb.Helper()
	s, err := stubx.Default(config.NewConfig(opts...), reg, logger(tb))
	require.NoError(tb, err, "build default stubber")
	return s
}

// Provided returns Default preceded by the strategies provider declares
// through its StubXxx methods (see inject.Strategies).
func Provided(tb testing.TB, provider any, reg apis.Registry, opts ...config.Option) apis.Stubber {
	tb.Helper()
	provided, err := inject.Strategies(provider)
	require.NoError(tb, err, "strategies of %T", provider)

	cfg := config.NewConfig(opts...)
	base, err := stubx.Default(cfg, reg, logger(tb))
	require.NoError(tb, err, "build default stubber")
	s, err := builder.New(cfg, logger(tb)).Include(base).StubFirst(provided...).Build()
	require.NoError(tb, err, "build provided stubber")
	return s
}

// Stub stubs a T.
func Stub[T any](tb testing.TB, s apis.Stubber) T {
	tb.Helper()
	return StubAt[T](tb, s, site.Unknown())
}

// StubAt stubs a T at at.
func StubAt[T any](tb testing.TB, s apis.Stubber, at apis.Site) T {
	tb.Helper()
	v, err := stubx.StubAt[T](s, at)
	require.NoError(tb, err, "stub %T", v)
	return v
}

// Inject stubs the fields of the struct target points to, then calls its
// setters.
func Inject(tb testing.TB, s apis.Stubber, target any, opts ...inject.Option) {
	tb.Helper()
	require.NoError(tb, inject.Fields(s, target, opts...), "inject fields of %T", target)
	require.NoError(tb, inject.Setters(s, target, opts...), "call setters of %T", target)
}

// Call calls fn with stubbed arguments and returns its results.
func Call(tb testing.TB, s apis.Stubber, fn any, opts ...inject.Option) []any {
	tb.Helper()
	out, err := inject.Call(s, fn, opts...)
	require.NoError(tb, err, "call %T", fn)
	return out
}
