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

// Package site provides the stubbing site variants: immutable, comparable
// values describing why a stub is requested.
//
// Every constructor takes the parent site; a nil parent is replaced by
// Unknown so that chains always end at a parentless site. Sites are plain
// values holding their parent, so two sites are == when they are the same
// variant with the same fields and equal parents.
package site

import (
	"fmt"
	"reflect"
	"strings"

	"dirpx.dev/stubx/apis"
	uref "dirpx.dev/stubx/utils/reflect"
)

// Named is implemented by sites that carry a source-level name, such as a
// field or parameter name. Name returns "" when the name is unknown.
type Named interface {
	apis.Site
	Name() string
}

// UnknownSite is the site of requests made without any context.
type UnknownSite struct{}

// Unknown returns the UnknownSite.
func Unknown() UnknownSite { return UnknownSite{} }

// Parent always reports no parent.
func (UnknownSite) Parent() (apis.Site, bool) { return nil, false }

func (UnknownSite) String() string { return "unknown" }

// RootSite is a named entry point, such as a test or a fixture.
type RootSite struct {
	Label string
}

// Root returns a RootSite labelled name.
func Root(name string) RootSite { return RootSite{Label: name} }

// Parent always reports no parent.
func (RootSite) Parent() (apis.Site, bool) { return nil, false }

// Name returns the label.
func (s RootSite) Name() string { return s.Label }

func (s RootSite) String() string { return "root " + s.Label }

// Callable identifies a function-like producer such as a constructor.
type Callable struct {
	Name string
	Type reflect.Type
}

// ConstructorParameterSite is parameter Index of Constructor.
type ConstructorParameterSite struct {
	parent      apis.Site
	Constructor Callable
	Index       int
	ParamName   string
}

// ConstructorParameter returns the site of parameter index of c.
func ConstructorParameter(parent apis.Site, c apis.Constructor, index int) ConstructorParameterSite {
	return ConstructorParameterSite{
		parent:      orUnknown(parent),
		Constructor: Callable{Name: c.Name, Type: c.Func.Type()},
		Index:       index,
		ParamName:   c.ParamName(index),
	}
}

// Parent returns the site the constructor was invoked for.
func (s ConstructorParameterSite) Parent() (apis.Site, bool) { return s.parent, true }

// Name returns the parameter name, if registered.
func (s ConstructorParameterSite) Name() string { return s.ParamName }

// Type returns the parameter type.
func (s ConstructorParameterSite) Type() reflect.Type { return s.Constructor.Type.In(s.Index) }

func (s ConstructorParameterSite) String() string {
	return fmt.Sprintf("parameter %s of constructor %s", paramLabel(s.Index, s.ParamName), s.Constructor.Name)
}

// Method identifies a method or a free function. Owner is nil for funcs.
type Method struct {
	Owner reflect.Type
	Name  string
	Type  reflect.Type
}

// MethodOf describes m of owner. The receiver is excluded from Type for
// interface owners and included for concrete owners, as reflect does.
func MethodOf(owner reflect.Type, m reflect.Method) Method {
	return Method{Owner: owner, Name: m.Name, Type: m.Type}
}

// receiverOffset is 1 when Type includes the receiver as first parameter.
func (m Method) receiverOffset() int {
	if m.Owner != nil && m.Owner.Kind() != reflect.Interface {
		return 1
	}
	return 0
}

func (m Method) String() string {
	if m.Owner == nil {
		return m.Name
	}
	return uref.TypeName(m.Owner) + "." + m.Name
}

// MethodParameterSite is parameter Index of Method, receiver excluded.
type MethodParameterSite struct {
	parent    apis.Site
	Method    Method
	Index     int
	ParamName string
}

// MethodParameter returns the site of parameter index of m.
func MethodParameter(parent apis.Site, m Method, index int) MethodParameterSite {
	return MethodParameterSite{parent: orUnknown(parent), Method: m, Index: index}
}

// WithName returns a copy of s carrying the parameter name.
func (s MethodParameterSite) WithName(name string) MethodParameterSite {
	s.ParamName = name
	return s
}

// Parent returns the site the method was invoked for.
func (s MethodParameterSite) Parent() (apis.Site, bool) { return s.parent, true }

// Name returns the parameter name, if known.
func (s MethodParameterSite) Name() string { return s.ParamName }

// Type returns the parameter type.
func (s MethodParameterSite) Type() reflect.Type {
	return s.Method.Type.In(s.Index + s.Method.receiverOffset())
}

func (s MethodParameterSite) String() string {
	return fmt.Sprintf("parameter %s of %s", paramLabel(s.Index, s.ParamName), s.Method)
}

// MethodReturnValueSite is result Index of Method.
type MethodReturnValueSite struct {
	parent apis.Site
	Method Method
	Index  int
}

// MethodReturnValue returns the site of result index of m.
func MethodReturnValue(parent apis.Site, m Method, index int) MethodReturnValueSite {
	return MethodReturnValueSite{parent: orUnknown(parent), Method: m, Index: index}
}

// Parent returns the site of the value the method belongs to.
func (s MethodReturnValueSite) Parent() (apis.Site, bool) { return s.parent, true }

// Type returns the result type.
func (s MethodReturnValueSite) Type() reflect.Type { return s.Method.Type.Out(s.Index) }

func (s MethodReturnValueSite) String() string {
	return fmt.Sprintf("result #%d of %s", s.Index, s.Method)
}

// FieldInfo identifies a struct field.
type FieldInfo struct {
	Owner reflect.Type
	Name  string
	Index int
	Type  reflect.Type
	Tag   reflect.StructTag
}

// FieldSite is a struct field being filled.
type FieldSite struct {
	parent apis.Site
	Field  FieldInfo
}

// Field returns the site of f in owner.
func Field(parent apis.Site, owner reflect.Type, f reflect.StructField) FieldSite {
	index := -1
	if len(f.Index) > 0 {
		index = f.Index[len(f.Index)-1]
	}
	return FieldSite{
		parent: orUnknown(parent),
		Field:  FieldInfo{Owner: owner, Name: f.Name, Index: index, Type: f.Type, Tag: f.Tag},
	}
}

// Parent returns the site of the owning struct.
func (s FieldSite) Parent() (apis.Site, bool) { return s.parent, true }

// Name returns the field name.
func (s FieldSite) Name() string { return s.Field.Name }

// Tag returns the value of the struct tag key.
func (s FieldSite) Tag(key string) (string, bool) { return s.Field.Tag.Lookup(key) }

func (s FieldSite) String() string {
	return fmt.Sprintf("field %s.%s", uref.TypeName(s.Field.Owner), s.Field.Name)
}

// PropertySite is a property set through a setter-like method.
type PropertySite struct {
	parent   apis.Site
	Owner    reflect.Type
	Property string
	Type     reflect.Type
}

// Property returns the site of property name of owner.
func Property(parent apis.Site, owner reflect.Type, name string, typ reflect.Type) PropertySite {
	return PropertySite{parent: orUnknown(parent), Owner: owner, Property: name, Type: typ}
}

// Parent returns the site of the owner.
func (s PropertySite) Parent() (apis.Site, bool) { return s.parent, true }

// Name returns the property name.
func (s PropertySite) Name() string { return s.Property }

func (s PropertySite) String() string {
	return fmt.Sprintf("property %s.%s", uref.TypeName(s.Owner), s.Property)
}

// MemoizingSite marks a request made by a memoizing wrapper on behalf of
// the site it wraps.
type MemoizingSite struct {
	parent apis.Site
}

// Memoizing wraps parent.
func Memoizing(parent apis.Site) MemoizingSite {
	return MemoizingSite{parent: orUnknown(parent)}
}

// Parent returns the memoized site.
func (s MemoizingSite) Parent() (apis.Site, bool) { return s.parent, true }

func (s MemoizingSite) String() string { return "memoized " + s.parent.String() }

// TypeArgumentSite is a value standing for type argument Index of a
// container: the element of a slice, chan or pointer, the key (0) or value
// (1) of a map.
type TypeArgumentSite struct {
	parent    apis.Site
	Container reflect.Type
	Index     int
}

// TypeArgument returns the site of argument index of container.
func TypeArgument(parent apis.Site, container reflect.Type, index int) TypeArgumentSite {
	return TypeArgumentSite{parent: orUnknown(parent), Container: container, Index: index}
}

// Parent returns the site of the container.
func (s TypeArgumentSite) Parent() (apis.Site, bool) { return s.parent, true }

func (s TypeArgumentSite) String() string {
	return fmt.Sprintf("type argument #%d of %s", s.Index, uref.TypeName(s.Container))
}

// ArraySite is an element of a fixed-size array.
type ArraySite struct {
	parent    apis.Site
	Component reflect.Type
}

// Array returns the site of elements of type component.
func Array(parent apis.Site, component reflect.Type) ArraySite {
	return ArraySite{parent: orUnknown(parent), Component: component}
}

// Parent returns the site of the array.
func (s ArraySite) Parent() (apis.Site, bool) { return s.parent, true }

func (s ArraySite) String() string {
	return "array element " + uref.TypeName(s.Component)
}

// Walk returns s followed by its ancestors.
func Walk(s apis.Site) []apis.Site {
	var out []apis.Site
	for cur, ok := s, s != nil; ok; cur, ok = cur.Parent() {
		out = append(out, cur)
	}
	return out
}

// Depth returns the number of ancestors of s.
func Depth(s apis.Site) int {
	n := 0
	if s == nil {
		return 0
	}
	for cur, ok := s.Parent(); ok; cur, ok = cur.Parent() {
		n++
	}
	return n
}

// Path renders the chain from the root down to s.
func Path(s apis.Site) string {
	chain := Walk(s)
	parts := make([]string, len(chain))
	for i, c := range chain {
		parts[len(chain)-1-i] = c.String()
	}
	return strings.Join(parts, " > ")
}

// Comparable reports whether s, its parents included, can be compared
// with == and used as a map key without panicking. Sites defined outside
// this package may hold slices or maps.
func Comparable(s apis.Site) bool {
	return s == nil || reflect.ValueOf(s).Comparable()
}

// Equal reports whether a and b are structurally equal. Sites that are
// not comparable are compared deeply.
func Equal(a, b apis.Site) bool {
	if Comparable(a) && Comparable(b) {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}

// NameOf returns the name of s when it is a Named site.
func NameOf(s apis.Site) (string, bool) {
	n, ok := s.(Named)
	if !ok || n.Name() == "" {
		return "", false
	}
	return n.Name(), true
}

func orUnknown(s apis.Site) apis.Site {
	if s == nil {
		return UnknownSite{}
	}
	return s
}

func paramLabel(index int, name string) string {
	if name == "" {
		return fmt.Sprintf("#%d", index)
	}
	return fmt.Sprintf("#%d (%s)", index, name)
}

var (
	_ apis.Site = UnknownSite{}
	_ Named     = RootSite{}
	_ Named     = ConstructorParameterSite{}
	_ Named     = MethodParameterSite{}
	_ apis.Site = MethodReturnValueSite{}
	_ Named     = FieldSite{}
	_ Named     = PropertySite{}
	_ apis.Site = MemoizingSite{}
	_ apis.Site = TypeArgumentSite{}
	_ apis.Site = ArraySite{}
)
