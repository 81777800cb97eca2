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

package stubber

import (
	"reflect"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"dirpx.dev/stubx/apis"
	"dirpx.dev/stubx/site"
	"dirpx.dev/stubx/types"
)

// Option configures a stubber.
type Option func(*chain)

// WithLogger sets the logger used for debug tracing of resolution.
// A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(c *chain) {
		if l != nil {
			c.log = l
		}
	}
}

// New constructs an apis.Stubber that tries the given strategies in order.
// Nil strategies are ignored. Strategies implementing apis.Validator are
// validated once; all their errors are returned together.
//
// The returned stubber is safe for concurrent use provided strategies
// themselves are safe for concurrent Accepts/Stub calls.
func New(cfg apis.Config, strategies []apis.Strategy, opts ...Option) (apis.Stubber, error) {
	// Filter out nils to avoid nil-interface panics on call sites.
	out := make([]apis.Strategy, 0, len(strategies))
	var err error
	for _, s := range strategies {
		if s == nil {
			continue
		}
		if v, ok := s.(apis.Validator); ok {
			err = multierr.Append(err, v.Validate())
		}
		out = append(out, s)
	}
	if err != nil {
		return nil, err
	}

	c := &chain{strats: out, cfg: cfg, log: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// chain is an immutable, order-preserving stubber over a set of strategies.
type chain struct {
	strats []apis.Strategy
	cfg    apis.Config
	log    *zap.Logger
}

// TryStub runs strategies in order until one accepts the request. Errors
// of the accepting strategy propagate; plain errors are wrapped into a
// *apis.StubbingError for t at s.
func (c *chain) TryStub(t reflect.Type, s apis.Site) (apis.Result, error) {
	out, err := c.try(t, s)
	return out.res, err
}

// Stub is TryStub that reports Failure as a *apis.StubbingError.
func (c *chain) Stub(t reflect.Type, s apis.Site) (any, error) {
	out, err := c.try(t, s)
	if err != nil {
		return nil, err
	}
	if v, ok := out.res.Value(); ok {
		return v, nil
	}
	return nil, apis.NewStubbingError(orUnknown(s), t, out.cause)
}

// Strategies returns a copy of the strategies in resolution order.
func (c *chain) Strategies() []apis.Strategy {
	return append([]apis.Strategy(nil), c.strats...)
}

// outcome is a Result plus, for failures, the sentinel explaining it.
type outcome struct {
	res   apis.Result
	cause error
}

func (c *chain) try(t reflect.Type, s apis.Site) (outcome, error) {
	s = orUnknown(s)
	rt := types.Classify(t)
	if c.cfg.MaxDepth > 0 && site.Depth(s) > c.cfg.MaxDepth {
		c.log.Debug("stub depth guard tripped",
			zap.Stringer("type", rt),
			zap.String("site", site.Path(s)),
			zap.Int("max_depth", c.cfg.MaxDepth))
		return outcome{res: apis.Failure(), cause: apis.ErrMaxDepth}, nil
	}

	ctx := apis.NewContext(c, s)
	for i, st := range c.strats {
		if !st.Accepts(ctx, rt) {
			continue
		}
		c.log.Debug("strategy accepted stub request",
			zap.Stringer("type", rt),
			zap.Stringer("site", s),
			zap.Int("strategy", i))
		v, err := st.Stub(ctx, rt)
		if err != nil {
			if _, ok := apis.AsStubbingError(err); !ok {
				err = apis.NewStubbingError(s, t, err)
			}
			return outcome{res: apis.Failure()}, err
		}
		return outcome{res: apis.Success(v)}, nil
	}

	c.log.Debug("no strategy accepted stub request",
		zap.Stringer("type", rt),
		zap.Stringer("site", s))
	return outcome{res: apis.Failure(), cause: apis.ErrNoStrategy}, nil
}

func orUnknown(s apis.Site) apis.Site {
	if s == nil {
		return site.Unknown()
	}
	return s
}

// Ensure chain implements apis.Stubber.
var _ apis.Stubber = (*chain)(nil)
