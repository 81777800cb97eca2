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
	"github.com/jinzhu/copier"

	"dirpx.dev/stubx/apis"
)

// Prototype stubs the type of v with a fresh deep copy of v per request,
// so tests can mutate stubs without affecting each other. v must be a
// struct, a pointer to a struct, a slice or a map.
func Prototype(v any) apis.Strategy {
	if v == nil {
		return invalid{err: errors.Wrap(apis.ErrInvalidArgument, "nil prototype")}
	}
	t := reflect.TypeOf(v)
	switch t.Kind() {
	case reflect.Struct, reflect.Slice, reflect.Map:
	case reflect.Pointer:
		if t.Elem().Kind() != reflect.Struct || reflect.ValueOf(v).IsNil() {
			return invalid{err: errors.Wrapf(apis.ErrInvalidArgument, "prototype %s", t)}
		}
	default:
		return invalid{err: errors.Wrapf(apis.ErrInvalidArgument, "prototype of kind %s, use a constant", t.Kind())}
	}
	return Exact(prototype{t: t, v: v})
}

type prototype struct {
	t reflect.Type
	v any
}

func (p prototype) AcceptsRaw(_ apis.Context, t reflect.Type) bool { return t == p.t }

func (p prototype) StubRaw(ctx apis.Context, t reflect.Type) (any, error) {
	base := t
	if t.Kind() == reflect.Pointer {
		base = t.Elem()
	}
	out := reflect.New(base)
	if err := copier.CopyWithOption(out.Interface(), p.v, copier.Option{DeepCopy: true}); err != nil {
		return nil, apis.NewStubbingError(ctx.Site(), t, apis.Invocation(err, "copy prototype"))
	}
	if t.Kind() == reflect.Pointer {
		return out.Interface(), nil
	}
	return out.Elem().Interface(), nil
}
