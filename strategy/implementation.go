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
	"reflect"

	"github.com/Laisky/errors/v2"

	"dirpx.dev/stubx/apis"
)

// Implementation stubs target by requesting impl from the active stubber
// at the same site: "when asked for X, build Y". impl must be assignable
// to target; this is checked when the stubber is built.
func Implementation(target, impl reflect.Type) apis.Strategy {
	switch {
	case target == nil || impl == nil:
		return invalid{err: errors.Wrap(apis.ErrInvalidArgument, "implementation needs target and impl types")}
	case target == impl:
		return invalid{err: errors.Wrapf(apis.ErrInvalidArgument, "%s implemented by itself", target)}
	case !impl.AssignableTo(target):
		return invalid{err: errors.Wrapf(apis.ErrInvalidArgument, "%s is not assignable to %s", impl, target)}
	}
	return Exact(implementation{target: target, impl: impl})
}

// Implement is Implementation for type parameters.
func Implement[T, U any]() apis.Strategy {
	return Implementation(reflect.TypeFor[T](), reflect.TypeFor[U]())
}

type implementation struct {
	target reflect.Type
	impl   reflect.Type
}

func (s implementation) AcceptsRaw(_ apis.Context, t reflect.Type) bool { return t == s.target }

func (s implementation) StubRaw(ctx apis.Context, _ reflect.Type) (any, error) {
	return ctx.Stubber().Stub(s.impl, ctx.Site())
}
