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

// EnhanceFunc post-processes a value produced for t. It may mutate v and
// return it, or return a different value of type t.
type EnhanceFunc func(ctx apis.Context, t types.Type, v any) (any, error)

// Enhance runs fn on every value delegate produces. Typical enhancers fill
// fields or call setters after construction.
func Enhance(delegate apis.Strategy, fn EnhanceFunc) apis.Strategy {
	switch {
	case delegate == nil:
		return invalid{err: errNilDelegate}
	case fn == nil:
		return invalid{err: errors.Wrap(apis.ErrInvalidArgument, "nil enhancer")}
	}
	return enhancing{delegate: delegate, fn: fn}
}

type enhancing struct {
	delegate apis.Strategy
	fn       EnhanceFunc
}

// Ensure enhancing implements apis.Strategy and apis.Validator.
var (
	_ apis.Strategy  = enhancing{}
	_ apis.Validator = enhancing{}
)

func (e enhancing) Accepts(ctx apis.Context, t types.Type) bool { return e.delegate.Accepts(ctx, t) }

func (e enhancing) Stub(ctx apis.Context, t types.Type) (any, error) {
	v, err := e.delegate.Stub(ctx, t)
	if err != nil {
		return nil, err
	}
	out, err := e.fn(ctx, t, v)
	if err != nil {
		if _, ok := apis.AsStubbingError(err); ok {
			return nil, err
		}
		return nil, apis.NewStubbingError(ctx.Site(), t.Reflect(), apis.Invocation(err, "enhance"))
	}
	return out, nil
}

func (e enhancing) Validate() error { return validate(e.delegate) }
