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

// Package inject fills existing values with stubs: struct fields, setter
// methods and function parameters. It also turns provider values into
// strategies, which lets a test suite describe its stubs as methods.
//
// # Fields
//
// Fields stubs the exported fields tagged `stub:"inject"` of a struct
// pointer, each at a site.FieldSite:
//
//	type suite struct {
//		Repo  *Repo  `stub:"inject"`
//		Clock Clock  `stub:"inject"`
//		t     *testing.T
//	}
//
//	err := inject.Fields(s, &st)
//
// # Setters
//
// Setters calls every SetXxx method taking one argument with a stub
// requested at a site.PropertySite named Xxx.
//
// # Providers
//
// Strategies reads the StubXxx methods of a provider: methods returning
// apis.Strategy or []apis.Strategy contribute those, any other method
// becomes a supplier of its result type.
//
// Errors of independent fields and setters are collected and returned
// together.
package inject
