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
	"github.com/Laisky/errors/v2"

	"dirpx.dev/stubx/apis"
	"dirpx.dev/stubx/types"
)

var errNilDelegate = errors.Wrap(apis.ErrInvalidArgument, "nil delegate strategy")

// When restricts s to requests matching m. A nil m matches nothing.
func When(s apis.Strategy, m apis.Matcher[types.Type]) apis.Strategy {
	if s == nil {
		return invalid{err: errNilDelegate}
	}
	return conditional{delegate: s, when: m}
}

type conditional struct {
	delegate apis.Strategy
	when     apis.Matcher[types.Type]
}

// Ensure conditional implements apis.Strategy and apis.Validator.
var (
	_ apis.Strategy  = conditional{}
	_ apis.Validator = conditional{}
)

func (c conditional) Accepts(ctx apis.Context, t types.Type) bool {
	return c.when.Matches(ctx, t) && c.delegate.Accepts(ctx, t)
}

func (c conditional) Stub(ctx apis.Context, t types.Type) (any, error) {
	return c.delegate.Stub(ctx, t)
}

func (c conditional) Validate() error { return validate(c.delegate) }

func validate(s apis.Strategy) error {
	if v, ok := s.(apis.Validator); ok {
		return v.Validate()
	}
	return nil
}
