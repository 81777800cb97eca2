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

// Context is the ambient state handed to every strategy invocation: the
// active Stubber for recursive requests and the Site being stubbed.
//
// Context is an immutable value. Descending into a sub-value means forking
// a new Context with a new Site.
type Context struct {
	stubber Stubber
	site    Site
}

// NewContext returns a Context bound to s and site.
func NewContext(s Stubber, site Site) Context {
	return Context{stubber: s, site: site}
}

// Stubber returns the active stubber.
func (c Context) Stubber() Stubber { return c.stubber }

// Site returns the current stubbing site.
func (c Context) Site() Site { return c.site }

// Fork returns a copy of c positioned at site.
func (c Context) Fork(site Site) Context {
	return Context{stubber: c.stubber, site: site}
}

// WithStubber returns a copy of c that delegates to s.
func (c Context) WithStubber(s Stubber) Context {
	return Context{stubber: s, site: c.site}
}
