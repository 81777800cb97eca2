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

// Stubber is an ordered, immutable collection of strategies that resolves
// stub requests. Implementations must be safe for concurrent use provided
// the strategies they hold are.
type Stubber interface {
	// TryStub asks strategies in order for a value of type t at site.
	// It returns Failure when no strategy accepts, and the error of the
	// accepting strategy when it could not produce the value.
	TryStub(t reflect.Type, site Site) (Result, error)

	// Stub is TryStub that turns Failure into a *StubbingError for t at site.
	Stub(t reflect.Type, site Site) (any, error)

	// Strategies returns a copy of the strategies in resolution order.
	Strategies() []Strategy
}
