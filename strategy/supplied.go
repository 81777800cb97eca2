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
	"bytes"
	"math/big"
	"reflect"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/Laisky/errors/v2"

	"dirpx.dev/stubx/apis"
	uref "dirpx.dev/stubx/utils/reflect"
)

// SupplierFunc produces the value for the seq-th request, seq starting at 0.
type SupplierFunc func(ctx apis.Context, seq int) (any, error)

// SuppliedValue stubs requests of exactly t with values from fn. Every
// call gets the next sequence number of this strategy instance.
func SuppliedValue(t reflect.Type, fn SupplierFunc) apis.Strategy {
	if t == nil || fn == nil {
		return invalid{err: errors.Wrap(apis.ErrInvalidArgument, "supplied value needs a type and a supplier")}
	}
	return Exact(&supplied{t: t, fn: fn})
}

// Supplied stubs T with fn(seq).
//
//	strategy.Supplied(func(n int) string { return fmt.Sprintf("stub %d", n) })
//	// "stub 0", "stub 1", ...
func Supplied[T any](fn func(seq int) T) apis.Strategy {
	if fn == nil {
		return invalid{err: errors.Wrap(apis.ErrInvalidArgument, "nil supplier")}
	}
	return SuppliedValue(reflect.TypeFor[T](), func(_ apis.Context, seq int) (any, error) {
		return fn(seq), nil
	})
}

// Sequence stubs T with values in rotation.
func Sequence[T any](values ...T) apis.Strategy {
	if len(values) == 0 {
		return invalid{err: errors.Wrap(apis.ErrInvalidArgument, "empty sequence")}
	}
	values = append([]T(nil), values...)
	return Supplied(func(seq int) T { return values[seq%len(values)] })
}

// CommonSuppliedValues returns suppliers for standard types that must not
// be shared between stubs because they are mutable.
func CommonSuppliedValues() []apis.Strategy {
	return []apis.Strategy{
		Supplied(func(int) *sync.Mutex { return new(sync.Mutex) }),
		Supplied(func(int) *sync.RWMutex { return new(sync.RWMutex) }),
		Supplied(func(int) *sync.WaitGroup { return new(sync.WaitGroup) }),
		Supplied(func(int) *bytes.Buffer { return new(bytes.Buffer) }),
		Supplied(func(int) *strings.Builder { return new(strings.Builder) }),
		Supplied(func(int) *atomic.Int64 { return new(atomic.Int64) }),
		Supplied(func(int) *atomic.Bool { return new(atomic.Bool) }),
		Supplied(func(int) *big.Int { return new(big.Int) }),
		Supplied(func(int) *big.Float { return new(big.Float) }),
	}
}

type supplied struct {
	t   reflect.Type
	fn  SupplierFunc
	seq atomic.Int64
}

func (s *supplied) AcceptsRaw(_ apis.Context, t reflect.Type) bool { return t == s.t }

func (s *supplied) StubRaw(ctx apis.Context, t reflect.Type) (any, error) {
	n := int(s.seq.Add(1) - 1)
	v, err := s.fn(ctx, n)
	if err != nil {
		return nil, apis.NewStubbingError(ctx.Site(), t, apis.Invocation(err, "supplier #%d", n))
	}
	rv, err := uref.Coerce(v, t)
	if err != nil {
		return nil, apis.NewStubbingError(ctx.Site(), t, err)
	}
	return rv.Interface(), nil
}
