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

package stubtest_test

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/stubx/apis"
	"dirpx.dev/stubx/config"
	"dirpx.dev/stubx/registry"
	"dirpx.dev/stubx/site"
	"dirpx.dev/stubx/strategy"
	"dirpx.dev/stubx/stubtest"
)

type fixtures struct{}

func (fixtures) StubGreeting() string { return "hello" }

func (fixtures) StubNumbers() []apis.Strategy { return []apis.Strategy{strategy.Constant(42)} }

type Greeter struct {
	Greeting string
	Times    int
	Names    []string
}

type Handler struct {
	Greeter *Greeter `stub:"inject"`
	Plain   string
	name    string
}

func (h *Handler) SetName(name string) { h.name = name }

func NewGreeter(greeting string) *Greeter { return &Greeter{Greeting: greeting + "!"} }

func TestNew(t *testing.T) {
	s := stubtest.New(t, strategy.Constant("x"), strategy.DefaultValue())
	assert.Equal(t, "x", stubtest.Stub[string](t, s))
	assert.Equal(t, 0, stubtest.Stub[int](t, s))
}

func TestDefault(t *testing.T) {
	s := stubtest.Default(t, nil, config.WithCollectionSize(2))
	g := stubtest.Stub[Greeter](t, s)
	assert.Len(t, g.Names, 2)
}

func TestDefault_WithRegistry(t *testing.T) {
	reg := registry.New()
	require.NoError(t, reg.Register(NewGreeter))

	s := stubtest.Default(t, reg)
	assert.Equal(t, "!", stubtest.Stub[*Greeter](t, s).Greeting)
}

func TestProvided(t *testing.T) {
	s := stubtest.Provided(t, fixtures{}, nil)
	g := stubtest.Stub[Greeter](t, s)
	assert.Equal(t, "hello", g.Greeting)
	assert.Equal(t, 42, g.Times)
	assert.Equal(t, []string{"hello"}, g.Names)
}

func TestStubAt(t *testing.T) {
	s := stubtest.New(t, strategy.SuppliedValue(stringType, func(ctx apis.Context, _ int) (any, error) {
		name, _ := site.NameOf(ctx.Site())
		return name, nil
	}))
	assert.Equal(t, "greeting", stubtest.StubAt[string](t, s, site.Root("greeting")))
}

func TestInject(t *testing.T) {
	s := stubtest.Provided(t, fixtures{}, nil)

	var h Handler
	stubtest.Inject(t, s, &h)
	require.NotNil(t, h.Greeter)
	assert.Equal(t, "hello", h.Greeter.Greeting)
	assert.Empty(t, h.Plain, "untagged fields are left alone")
	assert.Equal(t, "hello", h.name)
}

func TestCall(t *testing.T) {
	s := stubtest.Provided(t, fixtures{}, nil)

	out := stubtest.Call(t, s, func(greeting string, times int) (string, error) {
		return fmt.Sprintf("%s x%d", greeting, times), nil
	})
	assert.Equal(t, []any{"hello x42"}, out)
}

var stringType = reflect.TypeFor[string]()
