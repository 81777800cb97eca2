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
	"sync"

	"dirpx.dev/stubx/apis"
	"dirpx.dev/stubx/site"
	"dirpx.dev/stubx/types"
)

// Memoizing caches the values produced by delegate per (site, type), so
// that repeated requests at structurally equal sites get the same value,
// for instance the same mock. The delegate runs at most once per key, even
// under concurrent requests, and sees a MemoizingSite wrapping the
// original site. Errors are cached too. Sites that are not comparable are
// keyed by their path.
//
// The cache lives as long as the returned strategy; build one per test to
// avoid sharing values between tests.
func Memoizing(delegate apis.Strategy) apis.Strategy {
	if delegate == nil {
		return invalid{err: errNilDelegate}
	}
	return &memoizing{delegate: delegate}
}

type memoizing struct {
	delegate apis.Strategy
	cache    sync.Map // key: memoKey, val: *memoEntry
}

// memoKey holds the site itself when it is comparable, its path otherwise.
type memoKey struct {
	site apis.Site
	path string
	typ  reflect.Type
}

func memoKeyOf(s apis.Site, t reflect.Type) memoKey {
	if site.Comparable(s) {
		return memoKey{site: s, typ: t}
	}
	return memoKey{path: site.Path(s), typ: t}
}

type memoEntry struct {
	once sync.Once
	v    any
	err  error
}

// Ensure memoizing implements apis.Strategy and apis.Validator.
var (
	_ apis.Strategy  = (*memoizing)(nil)
	_ apis.Validator = (*memoizing)(nil)
)

func (m *memoizing) Accepts(ctx apis.Context, t types.Type) bool {
	return m.delegate.Accepts(ctx, t)
}

func (m *memoizing) Stub(ctx apis.Context, t types.Type) (any, error) {
	key := memoKeyOf(ctx.Site(), t.Reflect())
	e, _ := m.cache.LoadOrStore(key, &memoEntry{})
	entry := e.(*memoEntry)
	entry.once.Do(func() {
		entry.v, entry.err = m.delegate.Stub(ctx.Fork(site.Memoizing(ctx.Site())), t)
	})
	return entry.v, entry.err
}

func (m *memoizing) Validate() error { return validate(m.delegate) }
