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

package inject

import (
	"reflect"
	"strings"

	"github.com/Laisky/errors/v2"
	"go.uber.org/multierr"

	"dirpx.dev/stubx/apis"
	"dirpx.dev/stubx/site"
	"dirpx.dev/stubx/strategy"
	uref "dirpx.dev/stubx/utils/reflect"
)

// Tag is the value of the `stub` struct tag marking fields for injection.
const Tag = "inject"

var (
	// ErrNotStructPointer is returned by Fields for targets that are not
	// non-nil pointers to structs.
	ErrNotStructPointer = errors.Wrap(apis.ErrInvalidArgument, "stubx(inject): target must be a non-nil struct pointer")
	// ErrNotFunc is returned by Call for non-function arguments.
	ErrNotFunc = errors.Wrap(apis.ErrInvalidArgument, "stubx(inject): not a function")
)

var errorType = reflect.TypeFor[error]()

// Option configures an injection.
type Option func(*options)

type options struct {
	at     apis.Site
	fields apis.Matcher[site.FieldInfo]
	names  []string
}

// At sets the parent site of injected values. By default a root site
// named after the target type is used; enhancers use the site of the
// enhanced value.
func At(parent apis.Site) Option {
	return func(o *options) { o.at = parent }
}

// FieldsMatching replaces the default `stub:"inject"` field selection.
func FieldsMatching(m apis.Matcher[site.FieldInfo]) Option {
	return func(o *options) { o.fields = m }
}

// AllFields injects every exported field.
func AllFields() Option {
	return FieldsMatching(func(apis.Context, site.FieldInfo) bool { return true })
}

// ParamNames names the parameters of a function passed to Call.
func ParamNames(names ...string) Option {
	return func(o *options) { o.names = names }
}

func tagged(_ apis.Context, f site.FieldInfo) bool {
	v, _ := f.Tag.Lookup(strategy.TagKey)
	return v == Tag
}

func newOptions(root string, opts []Option) options {
	o := options{fields: tagged}
	for _, opt := range opts {
		opt(&o)
	}
	if o.at == nil {
		o.at = site.Root(root)
	}
	return o
}

// Fields stubs the selected fields of the struct target points to.
func Fields(s apis.Stubber, target any, opts ...Option) error {
	rv := reflect.ValueOf(target)
	if !rv.IsValid() || rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return errors.Wrapf(ErrNotStructPointer, "got %T", target)
	}
	o := newOptions(uref.TypeName(rv.Type().Elem()), opts)
	return fields(apis.NewContext(s, o.at), rv.Elem(), o.fields)
}

func fields(ctx apis.Context, v reflect.Value, m apis.Matcher[site.FieldInfo]) error {
	t := v.Type()
	var errs error
	for _, f := range reflect.VisibleFields(t) {
		if !f.IsExported() || f.Anonymous {
			continue
		}
		at := site.Field(ctx.Site(), t, f)
		if !m.Matches(ctx.Fork(at), at.Field) {
			continue
		}
		fv, err := v.FieldByIndexErr(f.Index)
		if err != nil || !fv.CanSet() {
			// Promoted through a nil embedded pointer.
			continue
		}
		x, err := ctx.Stubber().Stub(f.Type, at)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		rv, err := uref.Coerce(x, f.Type)
		if err != nil {
			errs = multierr.Append(errs, apis.NewStubbingError(at, f.Type, err))
			continue
		}
		fv.Set(rv)
	}
	return errs
}

// Setters calls every SetXxx method of target that takes one argument
// and returns nothing or an error, with a stub requested at a
// PropertySite named Xxx.
func Setters(s apis.Stubber, target any, opts ...Option) error {
	rv := reflect.ValueOf(target)
	if !rv.IsValid() || uref.IsNillable(rv.Kind()) && rv.IsNil() {
		return errors.Wrapf(apis.ErrInvalidArgument, "stubx(inject): cannot call setters of %T", target)
	}
	o := newOptions(uref.TypeName(rv.Type()), opts)
	return setters(apis.NewContext(s, o.at), rv)
}

func setters(ctx apis.Context, v reflect.Value) error {
	t := v.Type()
	var errs error
	for i := 0; i < t.NumMethod(); i++ {
		name, ok := strings.CutPrefix(t.Method(i).Name, "Set")
		if !ok || name == "" {
			continue
		}
		fn := v.Method(i)
		ft := fn.Type()
		if ft.NumIn() != 1 || ft.IsVariadic() || ft.NumOut() > 1 || ft.NumOut() == 1 && ft.Out(0) != errorType {
			continue
		}
		at := site.Property(ctx.Site(), t, name, ft.In(0))
		x, err := ctx.Stubber().Stub(ft.In(0), at)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		arg, err := uref.Coerce(x, ft.In(0))
		if err != nil {
			errs = multierr.Append(errs, apis.NewStubbingError(at, ft.In(0), err))
			continue
		}
		if _, err := uref.SafeCall(fn, []reflect.Value{arg}); err != nil {
			errs = multierr.Append(errs, apis.NewStubbingError(at, ft.In(0),
				apis.Invocation(err, "%s.%s", uref.TypeName(t), t.Method(i).Name)))
		}
	}
	return errs
}

// Call invokes fn with stubbed arguments, each requested at a
// MethodParameterSite, and returns its results. A trailing error result
// is returned as err, wrapped with apis.ErrInvocation.
func Call(s apis.Stubber, fn any, opts ...Option) ([]any, error) {
	rv := reflect.ValueOf(fn)
	if !rv.IsValid() || rv.Kind() != reflect.Func || rv.IsNil() {
		return nil, errors.Wrapf(ErrNotFunc, "got %T", fn)
	}
	ft := rv.Type()
	m := site.Method{Name: uref.FuncName(rv), Type: ft}
	o := newOptions(m.Name, opts)

	args := make([]reflect.Value, ft.NumIn())
	for i := range args {
		at := site.MethodParameter(o.at, m, i)
		if i < len(o.names) {
			at = at.WithName(o.names[i])
		}
		x, err := s.Stub(ft.In(i), at)
		if err != nil {
			return nil, err
		}
		if args[i], err = uref.Coerce(x, ft.In(i)); err != nil {
			return nil, apis.NewStubbingError(at, ft.In(i), err)
		}
	}

	out, err := uref.SafeCall(rv, args)
	if err != nil {
		return nil, apis.Invocation(err, "%s", m.Name)
	}
	if n := ft.NumOut(); n > 0 && ft.Out(n-1) == errorType {
		out = out[:n-1]
	}
	res := make([]any, len(out))
	for i, v := range out {
		res[i] = v.Interface()
	}
	return res, nil
}
