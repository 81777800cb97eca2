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

package selector

import "dirpx.dev/stubx/apis"

// Primary picks the constructor registered as primary.
func Primary() Selector[apis.Constructor] {
	return FromMatcher(func(_ apis.Context, c apis.Constructor) bool { return c.Primary })
}

// GreatestArity picks the constructor with the most parameters; the
// earliest registered wins ties.
func GreatestArity() Selector[apis.Constructor] {
	return byArity(func(a, b int) bool { return a > b })
}

// LeastArity picks the constructor with the fewest parameters; the
// earliest registered wins ties.
func LeastArity() Selector[apis.Constructor] {
	return byArity(func(a, b int) bool { return a < b })
}

// Only picks the single candidate and refuses to choose among several.
func Only() Selector[apis.Constructor] {
	return func(_ apis.Context, values []apis.Constructor) (apis.Constructor, bool) {
		if len(values) != 1 {
			return apis.Constructor{}, false
		}
		return values[0], true
	}
}

func byArity(better func(a, b int) bool) Selector[apis.Constructor] {
	return func(_ apis.Context, values []apis.Constructor) (apis.Constructor, bool) {
		if len(values) == 0 {
			return apis.Constructor{}, false
		}
		best := values[0]
		for _, c := range values[1:] {
			if better(c.NumIn(), best.NumIn()) {
				best = c
			}
		}
		return best, true
	}
}
