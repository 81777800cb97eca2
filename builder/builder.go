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

package builder

import (
	"go.uber.org/zap"

	"dirpx.dev/stubx/apis"
	"dirpx.dev/stubx/strategy"
	"dirpx.dev/stubx/stubber"
	"dirpx.dev/stubx/types"
)

// Option configures a builder.
type Option func(*builder)

// WithLogger sets the logger handed to built stubbers.
func WithLogger(l *zap.Logger) Option {
	return func(b *builder) { b.log = l }
}

// New creates and returns a new apis.Builder producing stubbers bound to cfg.
func New(cfg apis.Config, opts ...Option) apis.Builder {
	b := &builder{cfg: cfg}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// builder accumulates strategies in three groups whose concatenation is
// the resolution order. It is not safe for concurrent use; the stubbers it
// builds are.
type builder struct {
	cfg       apis.Config
	log       *zap.Logger
	prepended []apis.Strategy
	included  []apis.Strategy
	appended  []apis.Strategy
}

// Include appends the strategies of s, in their order, to the baseline.
// A nil stubber is ignored.
func (b *builder) Include(s apis.Stubber) apis.Builder {
	if s != nil {
		b.included = append(b.included, s.Strategies()...)
	}
	return b
}

// StubWith appends strategies after everything added so far.
func (b *builder) StubWith(strategies ...apis.Strategy) apis.Builder {
	b.appended = append(b.appended, strategies...)
	return b
}

// StubFirst puts strategies in front of everything added so far.
func (b *builder) StubFirst(strategies ...apis.Strategy) apis.Builder {
	front := make([]apis.Strategy, 0, len(strategies)+len(b.prepended))
	front = append(front, strategies...)
	b.prepended = append(front, b.prepended...)
	return b
}

// StubWhen appends strategies that only apply where m matches.
func (b *builder) StubWhen(m apis.Matcher[types.Type], strategies ...apis.Strategy) apis.Builder {
	for _, s := range strategies {
		if s != nil {
			b.appended = append(b.appended, strategy.When(s, m))
		}
	}
	return b
}

// Build returns an immutable stubber over prepended, included and appended
// strategies, in that order.
func (b *builder) Build() (apis.Stubber, error) {
	all := make([]apis.Strategy, 0, len(b.prepended)+len(b.included)+len(b.appended))
	all = append(all, b.prepended...)
	all = append(all, b.included...)
	all = append(all, b.appended...)
	return stubber.New(b.cfg, all, stubber.WithLogger(b.log))
}
