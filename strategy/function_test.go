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
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/stubx/apis"
	"dirpx.dev/stubx/site"
	"dirpx.dev/stubx/strategy"
)

func TestFunc_StubsResultsPerCall(t *testing.T) {
	s := newStubber(t, counting(), strategy.ConstantValue("s"), strategy.Func(false))

	fn := stub[func(string) (int, string)](t, s)
	require.NotNil(t, fn)
	n, str := fn("ignored")
	assert.Equal(t, 0, n)
	assert.Equal(t, "s", str)
	n, _ = fn("ignored")
	assert.Equal(t, 1, n)
}

func TestFunc_Cached(t *testing.T) {
	s := newStubber(t, counting(), strategy.Func(true))

	fn := stub[func() int](t, s)
	assert.Equal(t, 0, fn())
	assert.Equal(t, 0, fn())
}

func TestFunc_NoResults(t *testing.T) {
	s := newStubber(t, strategy.Func(false))
	fn := stub[func(int)](t, s)
	assert.NotPanics(t, func() { fn(1) })
}

func TestFunc_ResultSites(t *testing.T) {
	var seen apis.Site
	rec := strategy.SuppliedValue(reflect.TypeFor[int](), func(ctx apis.Context, n int) (any, error) {
		seen = ctx.Site()
		return n, nil
	})
	s := newStubber(t, rec, strategy.Func(false))

	root := site.Root("fn")
	stubAt[func() int](t, s, root)()

	rs, ok := seen.(site.MethodReturnValueSite)
	require.True(t, ok, "%T", seen)
	parent, _ := rs.Parent()
	assert.Equal(t, apis.Site(root), parent)
	assert.Equal(t, 0, rs.Index)
}

func TestFunc_PanicsWithStubbingError(t *testing.T) {
	s := newStubber(t, strategy.Func(false))
	fn := stub[func() struct{}](t, s)

	defer func() {
		r := recover()
		err, ok := r.(error)
		require.True(t, ok, "%v", r)
		assert.ErrorIs(t, err, apis.ErrNoStrategy)
		_, ok = apis.AsStubbingError(err)
		assert.True(t, ok)
	}()
	fn()
	t.Fatal("stubbed function did not panic")
}
