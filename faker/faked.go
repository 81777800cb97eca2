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

package faker

import (
	"reflect"
	"sync"

	"github.com/Laisky/errors/v2"
	"github.com/brianvoe/gofakeit/v7"

	"dirpx.dev/stubx/apis"
	"dirpx.dev/stubx/site"
	"dirpx.dev/stubx/strategy"
	uref "dirpx.dev/stubx/utils/reflect"
)

// DefaultSeed replaces a zero seed in New, so fakers built from the
// default configuration produce the same data on every run.
const DefaultSeed uint64 = 0x5eed

// New returns a faker seeded with seed. A zero seed means DefaultSeed;
// gofakeit itself would pick a random one.
func New(seed uint64) *gofakeit.Faker {
	if seed == 0 {
		seed = DefaultSeed
	}
	return gofakeit.New(seed)
}

// Faked stubs string-kind types at named sites whose words rule accepts,
// with data from f. Requests at sites without a name are not accepted.
func Faked(rule Rule, f *gofakeit.Faker) apis.Strategy {
	return strategy.Simple(&faked{rule: rule, f: f})
}

// FakedData returns a strategy for every predefined rule, all sharing f.
func FakedData(f *gofakeit.Faker) []apis.Strategy {
	rules := Rules()
	out := make([]apis.Strategy, len(rules))
	for i, r := range rules {
		out[i] = Faked(r, f)
	}
	return out
}

// faked serializes access to f; fakers are not safe for concurrent use.
type faked struct {
	rule Rule
	mu   sync.Mutex
	f    *gofakeit.Faker
}

// Ensure faked implements strategy.RawStrategy and apis.Validator.
var (
	_ strategy.RawStrategy = (*faked)(nil)
	_ apis.Validator       = (*faked)(nil)
)

func (s *faked) Validate() error {
	switch {
	case s.f == nil:
		return errors.Wrap(apis.ErrInvalidArgument, "stubx(faker): nil faker")
	case s.rule.fake == nil:
		return errors.Wrap(apis.ErrInvalidArgument, "stubx(faker): rule without fake function")
	}
	return nil
}

func (s *faked) AcceptsRaw(ctx apis.Context, t reflect.Type) bool {
	if t.Kind() != reflect.String || s.f == nil || s.rule.fake == nil {
		return false
	}
	name, ok := site.NameOf(ctx.Site())
	return ok && s.rule.Accepts(Words(name))
}

func (s *faked) StubRaw(ctx apis.Context, t reflect.Type) (any, error) {
	name, _ := site.NameOf(ctx.Site())
	s.mu.Lock()
	v := s.rule.Fake(s.f, Words(name), ctx)
	s.mu.Unlock()
	rv, err := uref.Coerce(v, t)
	if err != nil {
		return nil, apis.NewStubbingError(ctx.Site(), t, err)
	}
	return rv.Interface(), nil
}
