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

// Site describes where a stub is needed: a constructor parameter, a method
// parameter or return value, a field, a property, or the root of a request.
//
// Sites form an acyclic chain through Parent back to a site without parent.
// Implementations should be comparable values so that sites can be
// compared with == and used as map keys; equality is structural and
// includes the parent chain. Sites holding slices, maps or funcs still
// work: they are compared deeply and memoized by their rendered path.
type Site interface {
	// Parent returns the site whose resolution caused this one, if any.
	Parent() (Site, bool)
	// String renders the site for diagnostics.
	String() string
}
