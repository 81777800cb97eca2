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

package faker

import (
	"slices"
	"strings"
	"unicode"

	"github.com/fatih/camelcase"
)

// WordSequence is a name split into lower-case words: "zipCode",
// "ZipCode", "zip_code" and "zip-code" all give [zip code].
type WordSequence struct {
	words []string
}

// Words splits name into a WordSequence on case changes and on any rune
// that is neither a letter nor a digit.
func Words(name string) WordSequence {
	var out []string
	for _, part := range camelcase.Split(name) {
		for _, w := range strings.FieldsFunc(part, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		}) {
			out = append(out, strings.ToLower(w))
		}
	}
	return WordSequence{words: out}
}

// Words returns a copy of the words.
func (s WordSequence) Words() []string { return slices.Clone(s.words) }

// Len returns the number of words.
func (s WordSequence) Len() int { return len(s.words) }

// Contains reports whether word occurs, ignoring case.
func (s WordSequence) Contains(word string) bool {
	return slices.Contains(s.words, strings.ToLower(word))
}

// ContainsInSequence reports whether words occur consecutively and in
// the given order.
func (s WordSequence) ContainsInSequence(words ...string) bool {
	want := lower(words)
	if len(want) == 0 {
		return true
	}
	for i := 0; i+len(want) <= len(s.words); i++ {
		if slices.Equal(s.words[i:i+len(want)], want) {
			return true
		}
	}
	return false
}

// ContainsInOrder reports whether words all occur in the given order,
// possibly with other words in between.
func (s WordSequence) ContainsInOrder(words ...string) bool {
	rest := s.words
	for _, w := range lower(words) {
		i := slices.Index(rest, w)
		if i < 0 {
			return false
		}
		rest = rest[i+1:]
	}
	return true
}

// ContainsInAnyOrder reports whether all words occur.
func (s WordSequence) ContainsInAnyOrder(words ...string) bool {
	for _, w := range words {
		if !s.Contains(w) {
			return false
		}
	}
	return true
}

func (s WordSequence) String() string { return strings.Join(s.words, " ") }

func lower(words []string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = strings.ToLower(w)
	}
	return out
}
