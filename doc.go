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

// Package stubx builds stub values for arbitrary Go types by reflection.
//
// A stub is a value good enough to stand in for a real one in a test:
// a struct with every exported field filled, a slice with a couple of
// elements, a service built from its registered constructor with stubbed
// arguments, a relaxed mock for an interface.
//
// # Model
//
// A Stubber (apis.Stubber) is an ordered, immutable list of strategies.
// Each request names a reflect.Type and the Site asking for it: a struct
// field, a constructor parameter, a slice element, a method result. The
// first strategy that accepts the request produces the value; a strategy
// that accepts and then fails makes the whole request fail. Strategies
// recurse through the Stubber carried by their apis.Context, extending
// the site chain, which is bounded by Config.MaxDepth.
//
// # Building a stubber
//
// Default, Minimal and Realistic return ready made stubbers. Anything
// else is assembled with the builder package:
//
//	base, err := stubx.Default(config.DefaultConfig(), reg)
//	if err != nil {
//		return err
//	}
//	s, err := builder.New(config.DefaultConfig()).
//		Include(base).
//		StubFirst(strategy.ConstantValue("fixture")).
//		Build()
//
// Constructors are registered in a registry.Registry and picked with a
// selector. Strategies live in the strategy package, matchers for
// conditional strategies in matcher, and sites in site.
//
// # Typed access
//
// Stub, StubAt, TryStub and TryStubAt wrap the reflect based Stubber
// methods for a static type:
//
//	u, err := stubx.Stub[User](s)
//
// # Companion packages
//
//   - inject fills struct fields, calls setters and functions with stubs.
//   - faker produces realistic strings for well named sites.
//   - mocking/testifymock stubs interfaces with testify mocks.
//   - stubtest wraps all of the above for tests.
//   - config reads profiles from YAML or TOML.
package stubx
