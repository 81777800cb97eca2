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

package strategy

import (
	"dirpx.dev/stubx/apis"
	"dirpx.dev/stubx/types"
)

// Invalid returns a strategy that accepts nothing and fails validation
// with err. Constructors of strategies, here and in collaborator packages,
// return it for bad arguments so that the error surfaces when the stubber
// is built.
func Invalid(err error) apis.Strategy { return invalid{err: err} }

// invalid stands in for a strategy built from bad arguments. It accepts
// nothing and reports err when the stubber holding it is built.
type invalid struct {
	err error
}

// Ensure invalid implements apis.Strategy and apis.Validator.
var (
	_ apis.Strategy  = invalid{}
	_ apis.Validator = invalid{}
)

func (invalid) Accepts(apis.Context, types.Type) bool { return false }

func (s invalid) Stub(ctx apis.Context, t types.Type) (any, error) {
	return nil, apis.NewStubbingError(ctx.Site(), t.Reflect(), s.err)
}

func (s invalid) Validate() error { return s.err }
