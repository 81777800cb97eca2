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

// Package strategy provides the stubbing strategies: constants, suppliers,
// constructors, containers, pointers, functions, mocks, and wrappers that
// memoize, gate or enhance other strategies.
//
// Constructors in this package never fail. Arguments a strategy cannot work
// with produce a strategy that accepts nothing and reports the problem
// through apis.Validator, so that it surfaces when the stubber is built.
package strategy
