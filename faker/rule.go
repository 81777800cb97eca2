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

	"github.com/brianvoe/gofakeit/v7"

	"dirpx.dev/stubx/apis"
)

// FakeFunc produces fake data for a site whose name split into words.
type FakeFunc func(f *gofakeit.Faker, words WordSequence, ctx apis.Context) string

// Rule decides from the words of a site name whether it fakes the value
// and how.
type Rule struct {
	accepted [][]string
	fake     FakeFunc
}

// Accepts reports whether one of the accepted word groups occurs in words
// consecutively.
func (r Rule) Accepts(words WordSequence) bool {
	for _, group := range r.accepted {
		if words.ContainsInSequence(group...) {
			return true
		}
	}
	return false
}

// Fake runs the rule's FakeFunc.
func (r Rule) Fake(f *gofakeit.Faker, words WordSequence, ctx apis.Context) string {
	return r.fake(f, words, ctx)
}

// RuleBuilder collects accepted word groups for a Rule.
type RuleBuilder struct {
	accepted [][]string
}

// NewRule starts a Rule.
//
//	faker.NewRule().Accept("zip", "code").Accept("zipcode").Build((*gofakeit.Faker).Zip)
func NewRule() *RuleBuilder { return &RuleBuilder{} }

// Accept adds a group of words that must occur consecutively in a site
// name for the rule to apply.
func (b *RuleBuilder) Accept(words ...string) *RuleBuilder {
	b.accepted = append(b.accepted, lower(words))
	return b
}

// Build finishes the rule with a function of the faker only.
func (b *RuleBuilder) Build(fn func(f *gofakeit.Faker) string) Rule {
	if fn == nil {
		return b.BuildFunc(nil)
	}
	return b.BuildFunc(func(f *gofakeit.Faker, _ WordSequence, _ apis.Context) string { return fn(f) })
}

// BuildFunc finishes the rule with fn.
func (b *RuleBuilder) BuildFunc(fn FakeFunc) Rule {
	accepted := make([][]string, len(b.accepted))
	for i, g := range b.accepted {
		accepted[i] = slices.Clone(g)
	}
	return Rule{accepted: accepted, fake: fn}
}

var (
	firstName   = NewRule().Accept("first", "name").Build((*gofakeit.Faker).FirstName)
	lastName    = NewRule().Accept("last", "name").Accept("surname").Build((*gofakeit.Faker).LastName)
	phoneNumber = NewRule().Accept("phone", "number").Accept("phonenumber").Build((*gofakeit.Faker).PhoneFormatted)
	street      = NewRule().Accept("street").Build((*gofakeit.Faker).StreetName)
	city        = NewRule().Accept("city").Accept("town").Build((*gofakeit.Faker).City)
	zipCode     = NewRule().Accept("zip", "code").Accept("zipcode").Build((*gofakeit.Faker).Zip)
	country     = NewRule().Accept("country").Build((*gofakeit.Faker).Country)
)

// FirstName fakes first names at sites named like "firstName".
func FirstName() Rule { return firstName }

// LastName fakes last names at sites named like "lastName" or "surname".
func LastName() Rule { return lastName }

// PhoneNumber fakes formatted phone numbers.
func PhoneNumber() Rule { return phoneNumber }

// Street fakes street names.
func Street() Rule { return street }

// City fakes city names at sites named like "city" or "town".
func City() Rule { return city }

// ZipCode fakes postal codes.
func ZipCode() Rule { return zipCode }

// Country fakes country names.
func Country() Rule { return country }

// Rules returns all predefined rules.
func Rules() []Rule {
	return []Rule{firstName, lastName, phoneNumber, street, city, zipCode, country}
}
