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

package selector_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/stubx/apis"
	"dirpx.dev/stubx/matcher"
	"dirpx.dev/stubx/selector"
	"dirpx.dev/stubx/site"
)

var ctx = apis.NewContext(nil, site.Unknown())

func TestFirstAndOrElse(t *testing.T) {
	v, ok := selector.First[int]().Select(ctx, []int{3, 4})
	require.True(t, ok)
	assert.Equal(t, 3, v)

	_, ok = selector.First[int]().Select(ctx, nil)
	assert.False(t, ok)

	never := selector.FromMatcher(matcher.None[int]())
	v, ok = never.OrElse(selector.First[int]()).Select(ctx, []int{5})
	require.True(t, ok)
	assert.Equal(t, 5, v)

	var nilSel selector.Selector[int]
	_, ok = nilSel.Select(ctx, []int{1})
	assert.False(t, ok)
}

func TestRandomIsSeeded(t *testing.T) {
	values := []string{"a", "b", "c", "d", "e"}
	a, b := selector.Random[string](42), selector.Random[string](42)
	for i := 0; i < 20; i++ {
		va, _ := a.Select(ctx, values)
		vb, _ := b.Select(ctx, values)
		assert.Equal(t, va, vb)
		assert.Contains(t, values, va)
	}
	_, ok := a.Select(ctx, nil)
	assert.False(t, ok)
}

func TestFromMatcherAndCompose(t *testing.T) {
	even := apis.Matcher[int](func(_ apis.Context, v int) bool { return v%2 == 0 })

	v, ok := selector.FromMatcher(even).Select(ctx, []int{1, 3, 4, 6})
	require.True(t, ok)
	assert.Equal(t, 4, v)

	v, ok = selector.Compose(even, selector.First[int]()).Select(ctx, []int{1, 8, 2})
	require.True(t, ok)
	assert.Equal(t, 8, v)

	_, ok = selector.Compose(even, selector.First[int]()).Select(ctx, []int{1, 3})
	assert.False(t, ok)
}

func newZero() int         { return 0 }
func newOne(a int) int     { return a }
func newTwo(a, b int) int  { return a + b }
func newTwoB(a, b int) int { return a * b }

func constructors(primary int) []apis.Constructor {
	fns := []any{newOne, newTwo, newZero, newTwoB}
	out := make([]apis.Constructor, len(fns))
	for i, fn := range fns {
		out[i] = apis.Constructor{Func: reflect.ValueOf(fn), Out: reflect.TypeOf(0), Order: i, Primary: i == primary}
	}
	return out
}

func TestConstructorSelectors(t *testing.T) {
	cs := constructors(-1)

	c, ok := selector.GreatestArity().Select(ctx, cs)
	require.True(t, ok)
	assert.Equal(t, 1, c.Order, "earliest of the two-arg constructors")

	c, ok = selector.LeastArity().Select(ctx, cs)
	require.True(t, ok)
	assert.Equal(t, 2, c.Order)

	_, ok = selector.Primary().Select(ctx, cs)
	assert.False(t, ok)

	c, ok = selector.Primary().Select(ctx, constructors(3))
	require.True(t, ok)
	assert.Equal(t, 3, c.Order)

	_, ok = selector.Only().Select(ctx, cs)
	assert.False(t, ok)
	c, ok = selector.Only().Select(ctx, cs[:1])
	require.True(t, ok)
	assert.Equal(t, 0, c.Order)

	_, ok = selector.GreatestArity().Select(ctx, nil)
	assert.False(t, ok)
}
