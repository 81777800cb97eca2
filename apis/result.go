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

package apis

import (
	"fmt"
	"reflect"
)

// Result is the outcome of a stub request: either a produced value
// (possibly nil or zero, which are legitimate stubs) or a failure meaning
// that no strategy accepted the request.
type Result struct {
	value any
	ok    bool
}

// Success wraps a produced value.
func Success(v any) Result { return Result{value: v, ok: true} }

// Failure reports that nothing could be produced.
func Failure() Result { return Result{} }

// IsSuccess reports whether a value was produced.
func (r Result) IsSuccess() bool { return r.ok }

// IsFailure reports whether no value was produced.
func (r Result) IsFailure() bool { return !r.ok }

// Value returns the produced value and whether there is one.
func (r Result) Value() (any, bool) { return r.value, r.ok }

// Map applies f to a successful value. Failures pass through untouched.
func (r Result) Map(f func(any) any) Result {
	if !r.ok {
		return r
	}
	return Success(f(r.value))
}

// ValueOrError returns the produced value, or a *StubbingError for t at
// site when r is a failure.
func (r Result) ValueOrError(t reflect.Type, site Site) (any, error) {
	if r.ok {
		return r.value, nil
	}
	return nil, NewStubbingError(site, t, ErrNoStrategy)
}

func (r Result) String() string {
	if !r.ok {
		return "Failure"
	}
	return fmt.Sprintf("Success(%v)", r.value)
}
