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

package site_test

import (
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/stubx/apis"
	"dirpx.dev/stubx/site"
)

type Pair struct {
	A string `stub:"first"`
	B string
}

func NewPair(a, b string) Pair { return Pair{A: a, B: b} }

func ctor() apis.Constructor {
	return apis.Constructor{
		Func:   reflect.ValueOf(NewPair),
		Name:   "site_test.NewPair",
		Out:    reflect.TypeOf(Pair{}),
		Params: []string{"a"},
	}
}

func TestStructuralEquality(t *testing.T) {
	root := site.Root("TestPair")
	f := reflect.TypeOf(Pair{}).Field(0)

	a := site.Field(root, reflect.TypeOf(Pair{}), f)
	b := site.Field(site.Root("TestPair"), reflect.TypeOf(Pair{}), f)
	c := site.Field(site.Root("Other"), reflect.TypeOf(Pair{}), f)

	assert.True(t, apis.Site(a) == apis.Site(b))
	assert.False(t, apis.Site(a) == apis.Site(c))

	m := map[apis.Site]int{a: 1}
	assert.Equal(t, 1, m[b])

	p0 := site.ConstructorParameter(root, ctor(), 0)
	p1 := site.ConstructorParameter(root, ctor(), 1)
	assert.NotEqual(t, apis.Site(p0), apis.Site(p1))
	assert.Equal(t, apis.Site(p0), apis.Site(site.ConstructorParameter(root, ctor(), 0)))
}

// pathSite is a caller-defined site that cannot be compared with ==.
type pathSite struct{ parts []string }

func (pathSite) Parent() (apis.Site, bool) { return nil, false }

func (s pathSite) String() string { return strings.Join(s.parts, "/") }

func TestComparableAndEqual(t *testing.T) {
	root := site.Root("svc")
	odd := pathSite{parts: []string{"a", "b"}}
	below := site.TypeArgument(odd, reflect.TypeFor[[]int](), 0)

	assert.True(t, site.Comparable(nil))
	assert.True(t, site.Comparable(root))
	assert.True(t, site.Comparable(site.TypeArgument(root, reflect.TypeFor[[]int](), 0)))
	assert.False(t, site.Comparable(odd))
	assert.False(t, site.Comparable(below), "an uncomparable parent makes the chain uncomparable")

	assert.True(t, site.Equal(root, site.Root("svc")))
	assert.False(t, site.Equal(root, site.Root("other")))
	assert.True(t, site.Equal(odd, pathSite{parts: []string{"a", "b"}}))
	assert.False(t, site.Equal(odd, pathSite{parts: []string{"a"}}))
	assert.True(t, site.Equal(below, site.TypeArgument(pathSite{parts: []string{"a", "b"}}, reflect.TypeFor[[]int](), 0)))
	assert.False(t, site.Equal(odd, root))
}

func TestNilParentBecomesUnknown(t *testing.T) {
	s := site.Memoizing(nil)
	p, ok := s.Parent()
	require.True(t, ok)
	assert.Equal(t, apis.Site(site.Unknown()), p)
}

func TestParentlessSites(t *testing.T) {
	for _, s := range []apis.Site{site.Unknown(), site.Root("x")} {
		_, ok := s.Parent()
		assert.False(t, ok, s.String())
		assert.Zero(t, site.Depth(s))
	}
}

func TestWalkDepthPath(t *testing.T) {
	root := site.Root("TestPair")
	param := site.ConstructorParameter(root, ctor(), 0)
	elem := site.TypeArgument(param, reflect.TypeOf([]string{}), 0)

	chain := site.Walk(elem)
	require.Len(t, chain, 3)
	assert.Equal(t, apis.Site(elem), chain[0])
	assert.Equal(t, apis.Site(param), chain[1])
	assert.Equal(t, apis.Site(root), chain[2])
	assert.Equal(t, 2, site.Depth(elem))

	assert.Equal(t,
		"root TestPair > parameter #0 (a) of constructor site_test.NewPair > type argument #0 of []string",
		site.Path(elem))
	assert.Empty(t, site.Walk(nil))
}

func TestParameterTypes(t *testing.T) {
	assert.Equal(t, reflect.TypeOf(""), site.ConstructorParameter(nil, ctor(), 1).Type())

	readerT := reflect.TypeOf((*io.Reader)(nil)).Elem()
	read, _ := readerT.MethodByName("Read")
	m := site.MethodOf(readerT, read)
	assert.Equal(t, reflect.TypeOf([]byte{}), site.MethodParameter(nil, m, 0).Type())
	assert.Equal(t, reflect.TypeOf(0), site.MethodReturnValue(nil, m, 0).Type())
	assert.Equal(t, "result #1 of io.Reader.Read", site.MethodReturnValue(nil, m, 1).String())

	bufT := reflect.TypeOf(&buffer{})
	write, _ := bufT.MethodByName("Write")
	wm := site.MethodOf(bufT, write)
	assert.Equal(t, reflect.TypeOf([]byte{}), site.MethodParameter(nil, wm, 0).Type())
}

func TestNames(t *testing.T) {
	f := reflect.TypeOf(Pair{}).Field(0)
	fs := site.Field(nil, reflect.TypeOf(Pair{}), f)

	name, ok := site.NameOf(fs)
	assert.True(t, ok)
	assert.Equal(t, "A", name)

	tag, ok := fs.Tag("stub")
	assert.True(t, ok)
	assert.Equal(t, "first", tag)

	_, ok = site.NameOf(site.ConstructorParameter(nil, ctor(), 1))
	assert.False(t, ok, "unnamed parameter")

	name, _ = site.NameOf(site.Property(nil, reflect.TypeOf(Pair{}), "City", reflect.TypeOf("")))
	assert.Equal(t, "City", name)

	ms := site.MethodParameter(nil, site.Method{Name: "f", Type: reflect.TypeOf(NewPair)}, 0).WithName("first")
	assert.Equal(t, "first", ms.Name())
	assert.Equal(t, "parameter #0 (first) of f", ms.String())

	_, ok = site.NameOf(site.Unknown())
	assert.False(t, ok)
}

type buffer struct{}

func (*buffer) Write(p []byte) (int, error) { return len(p), nil }
