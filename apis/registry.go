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

package apis

import "reflect"

// Registry holds constructor functions, keyed by the type they produce.
// A constructor is any func returning T or (T, error).
type Registry interface {
	// Register adds fn as a constructor of its first result type.
	// Registering the same constructor twice is a no-op.
	Register(fn any, opts ...ConstructorOption) error
	// Lookup returns the constructors of t in registration order.
	Lookup(t reflect.Type) []Constructor
	// Entries returns a snapshot of every constructor (order is unspecified
	// across types, registration order within a type).
	Entries() []Constructor
	// Count returns the number of registered constructors.
	Count() int
	// Reset clears all registered constructors.
	Reset()
}

// Constructor describes a registered constructor function.
type Constructor struct {
	// Func is the constructor itself.
	Func reflect.Value
	// Name is the runtime name of the function, used in diagnostics.
	Name string
	// Out is the type the constructor produces.
	Out reflect.Type
	// Primary marks the preferred constructor of Out.
	Primary bool
	// Params optionally names the parameters; missing names are "".
	Params []string
	// Order is the registration sequence number within the registry.
	Order int
}

// ConstructorOption tweaks a Constructor during registration.
type ConstructorOption func(*Constructor)

// NumIn returns the number of parameters.
func (c Constructor) NumIn() int { return c.Func.Type().NumIn() }

// In returns the type of parameter i.
func (c Constructor) In(i int) reflect.Type { return c.Func.Type().In(i) }

// ParamName returns the name of parameter i, or "" when unknown.
func (c Constructor) ParamName(i int) string {
	if i < 0 || i >= len(c.Params) {
		return ""
	}
	return c.Params[i]
}

// ReturnsError reports whether the constructor has a trailing error result.
func (c Constructor) ReturnsError() bool { return c.Func.Type().NumOut() == 2 }
