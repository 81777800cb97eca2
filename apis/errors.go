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
	"strings"

	"github.com/Laisky/errors/v2"
	"go.uber.org/multierr"
)

var (
	// ErrNoStrategy is the cause of a StubbingError raised because no
	// strategy accepted a request.
	ErrNoStrategy = errors.New("stubx: no strategy accepted the request")
	// ErrMaxDepth is the cause of a StubbingError raised because the site
	// chain grew past Config.MaxDepth, usually a self-referencing type.
	ErrMaxDepth = errors.New("stubx: maximum stubbing depth exceeded")
	// ErrNoRawType indicates that a strategy accepted a type but could not
	// determine the raw type it needs to produce a value.
	ErrNoRawType = errors.New("stubx: cannot determine raw type")
	// ErrInvocation indicates that a constructor, factory or provider
	// returned an error or panicked while producing a stub.
	ErrInvocation = errors.New("stubx: invocation failed")
	// ErrInvalidArgument is returned eagerly when a strategy or collaborator
	// is configured with arguments it cannot work with.
	ErrInvalidArgument = errors.New("stubx: invalid argument")
)

// StubbingError reports that a value could not be produced for Type at
// Site. The parent chain of Site tells which nested request caused it.
type StubbingError struct {
	// Site is where the failing request was made.
	Site Site
	// Type is the requested type. It may be nil for unresolved types.
	Type reflect.Type
	// Err is the cause, typically one of the sentinels in this package.
	Err error
}

// NewStubbingError returns a *StubbingError for t at site caused by err.
func NewStubbingError(site Site, t reflect.Type, err error) *StubbingError {
	return &StubbingError{Site: site, Type: t, Err: err}
}

func (e *StubbingError) Error() string {
	var b strings.Builder
	b.WriteString("stubx: cannot stub ")
	if e.Type == nil {
		b.WriteString("<unresolved>")
	} else {
		b.WriteString(e.Type.String())
	}
	if e.Site != nil {
		fmt.Fprintf(&b, " at %s", e.Site)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap returns the cause.
func (e *StubbingError) Unwrap() error { return e.Err }

// Path returns the site chain, failing site first.
func (e *StubbingError) Path() []Site {
	var out []Site
	for s, ok := e.Site, e.Site != nil; ok; s, ok = s.Parent() {
		out = append(out, s)
	}
	return out
}

// Invocation returns an error matching both ErrInvocation and cause under
// errors.Is, annotated with the formatted message.
func Invocation(cause error, format string, args ...any) error {
	return errors.Wrapf(multierr.Combine(ErrInvocation, cause), format, args...)
}

// AsStubbingError extracts the outermost *StubbingError from err's chain.
func AsStubbingError(err error) (*StubbingError, bool) {
	var se *StubbingError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}
