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

// Config carries read-only knobs that influence the provided strategies.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// MaxDepth bounds the length of a site chain. Requests nested deeper
	// fail instead of recursing further, which terminates self-referencing
	// types. A value <= 0 disables the guard.
	MaxDepth int

	// CollectionSize is the number of elements put into stubbed slices,
	// maps and channels.
	CollectionSize int

	// PointerMode selects how pointer types are stubbed.
	PointerMode PointerMode

	// Seed feeds the pseudo random sources of random selectors and fakers.
	// Zero means a fixed default seed, so runs stay reproducible.
	// Pass a seed from the clock to vary the data between runs.
	Seed uint64
}
