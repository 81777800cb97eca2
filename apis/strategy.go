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

import (
	"dirpx.dev/stubx/types"
)

// Strategy is a pluggable unit of stub resolution. A Stubber tries its
// strategies in order; the first one that accepts a request commits to it.
type Strategy interface {
	// Accepts reports whether the strategy can produce a value for t in ctx.
	// It must be free of side effects.
	Accepts(ctx Context, t types.Type) bool

	// Stub produces a value for t. It is only called after Accepts returned
	// true for the same (ctx, t). Nested values are requested through
	// ctx.Stubber() with a forked context; when they cannot be produced the
	// returned error is a *StubbingError carrying the failing site and type.
	Stub(ctx Context, t types.Type) (any, error)
}

// Validator is implemented by strategies that can be misconfigured.
// Stubbers call Validate once when they are built so that configuration
// errors surface at setup instead of during resolution.
type Validator interface {
	Validate() error
}

// Stubbable is implemented by types that know how to stub themselves.
// StubValue is called on the zero value of the type.
type Stubbable interface {
	StubValue() any
}
