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

package strategy_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"dirpx.dev/stubx/apis"
	"dirpx.dev/stubx/config"
	"dirpx.dev/stubx/site"
	"dirpx.dev/stubx/stubber"
)

func newStubber(t *testing.T, strategies ...apis.Strategy) apis.Stubber {
	t.Helper()
	s, err := stubber.New(config.DefaultConfig(), strategies)
	require.NoError(t, err)
	return s
}

func stubAt[T any](t *testing.T, s apis.Stubber, at apis.Site) T {
	t.Helper()
	v, err := s.Stub(reflect.TypeFor[T](), at)
	require.NoError(t, err)
	out, _ := v.(T)
	return out
}

func stub[T any](t *testing.T, s apis.Stubber) T {
	t.Helper()
	return stubAt[T](t, s, site.Root(t.Name()))
}

func stubErr[T any](s apis.Stubber) error {
	_, err := s.Stub(reflect.TypeFor[T](), site.Unknown())
	return err
}
