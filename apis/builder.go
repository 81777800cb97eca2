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

import "dirpx.dev/stubx/types"

// Builder assembles a Stubber. Resolution order is load-bearing so the
// builder keeps appending and prepending explicit:
//
//	prepended strategies (latest StubFirst call first)
//	included strategies (in Include order, each in its original order)
//	appended strategies (in StubWith/StubWhen order)
type Builder interface {
	// Include appends the strategies of s as a baseline.
	Include(s Stubber) Builder
	// StubWith appends strategies at the back.
	StubWith(strategies ...Strategy) Builder
	// StubFirst prepends strategies at the front, keeping their given order.
	StubFirst(strategies ...Strategy) Builder
	// StubWhen appends strategies gated by m.
	StubWhen(m Matcher[types.Type], strategies ...Strategy) Builder
	// Build validates the strategies and returns an immutable Stubber.
	Build() (Stubber, error)
}
