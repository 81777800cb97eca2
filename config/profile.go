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

package config

import (
	"bytes"
	"reflect"
	"sort"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/Laisky/errors/v2"
	"github.com/golobby/cast"
	"gopkg.in/yaml.v3"

	"dirpx.dev/stubx/apis"
	uref "dirpx.dev/stubx/utils/reflect"
)

// ErrUnknownConstantType is returned when a profile declares a constant
// for a type name that is not supported.
var ErrUnknownConstantType = errors.New("stubx(config): unknown constant type")

// constantTypes maps the type names usable in profile constants.
var constantTypes = map[string]reflect.Type{
	"bool":          reflect.TypeFor[bool](),
	"string":        reflect.TypeFor[string](),
	"int":           reflect.TypeFor[int](),
	"int8":          reflect.TypeFor[int8](),
	"int16":         reflect.TypeFor[int16](),
	"int32":         reflect.TypeFor[int32](),
	"rune":          reflect.TypeFor[rune](),
	"int64":         reflect.TypeFor[int64](),
	"uint":          reflect.TypeFor[uint](),
	"uint8":         reflect.TypeFor[uint8](),
	"byte":          reflect.TypeFor[byte](),
	"uint16":        reflect.TypeFor[uint16](),
	"uint32":        reflect.TypeFor[uint32](),
	"uint64":        reflect.TypeFor[uint64](),
	"float32":       reflect.TypeFor[float32](),
	"float64":       reflect.TypeFor[float64](),
	"time.Duration": reflect.TypeFor[time.Duration](),
}

// Profile is a stubbing configuration read from YAML or TOML:
//
//	max_depth: 16
//	collection_size: 3
//	pointer_mode: present
//	seed: 42
//	constants:
//	  string: stub
//	  int: "7"
//	  time.Duration: 1s
//
// Unset knobs keep their defaults.
type Profile struct {
	MaxDepth       *int              `yaml:"max_depth" toml:"max_depth"`
	CollectionSize *int              `yaml:"collection_size" toml:"collection_size"`
	PointerMode    *apis.PointerMode `yaml:"pointer_mode" toml:"pointer_mode"`
	Seed           *uint64           `yaml:"seed" toml:"seed"`
	// Constants maps a type name to the textual value stubbed for it.
	Constants map[string]string `yaml:"constants" toml:"constants"`
}

// FromYAML decodes a Profile from YAML. Unknown keys are rejected.
func FromYAML(data []byte) (Profile, error) {
	var p Profile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		if len(bytes.TrimSpace(data)) == 0 {
			return Profile{}, nil
		}
		return Profile{}, errors.Wrap(err, "decode yaml profile")
	}
	return p, nil
}

// FromTOML decodes a Profile from TOML. Unknown keys are rejected.
func FromTOML(data []byte) (Profile, error) {
	var p Profile
	md, err := toml.Decode(string(data), &p)
	if err != nil {
		return Profile{}, errors.Wrap(err, "decode toml profile")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Profile{}, errors.Errorf("decode toml profile: unknown keys %v", undecoded)
	}
	return p, nil
}

// Options returns the options setting every knob present in p.
func (p Profile) Options() []Option {
	var opts []Option
	if p.MaxDepth != nil {
		opts = append(opts, WithMaxDepth(*p.MaxDepth))
	}
	if p.CollectionSize != nil {
		opts = append(opts, WithCollectionSize(*p.CollectionSize))
	}
	if p.PointerMode != nil {
		opts = append(opts, WithPointerMode(*p.PointerMode))
	}
	if p.Seed != nil {
		opts = append(opts, WithSeed(*p.Seed))
	}
	return opts
}

// Config returns the defaults overridden by p, then by opts.
func (p Profile) Config(opts ...Option) apis.Config {
	return NewConfig(append(p.Options(), opts...)...)
}

// Constant is a typed constant declared by a profile.
type Constant struct {
	Type  reflect.Type
	Value any
}

// ConstantValues converts the textual constants of p into typed values,
// sorted by type name so that resolution order is stable.
func (p Profile) ConstantValues() ([]Constant, error) {
	names := make([]string, 0, len(p.Constants))
	for name := range p.Constants {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]Constant, 0, len(names))
	for _, name := range names {
		t, ok := constantTypes[name]
		if !ok {
			return nil, errors.Wrapf(ErrUnknownConstantType, "%q", name)
		}
		v, err := convert(p.Constants[name], t)
		if err != nil {
			return nil, errors.Wrapf(err, "constant %s", name)
		}
		out = append(out, Constant{Type: t, Value: v})
	}
	return out, nil
}

func convert(raw string, t reflect.Type) (any, error) {
	if t == reflect.TypeFor[time.Duration]() {
		return time.ParseDuration(raw)
	}
	v, err := cast.FromType(raw, t)
	if err != nil {
		return nil, err
	}
	rv, err := uref.Coerce(v, t)
	if err != nil {
		return nil, err
	}
	return rv.Interface(), nil
}
