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

// Package faker stubs strings with realistic fake data chosen from the
// name of the site they are requested at.
//
// A site name is split into words ("homeZipCode" gives home, zip, code)
// and a Rule accepts it when one of its word groups occurs consecutively:
//
//	s, _ := builder.New(config.DefaultConfig()).
//		StubWith(faker.FakedData(faker.New(42))...).
//		StubWith(stubx.DefaultStrategies(cfg, reg)...).
//		Build()
//
// Data comes from github.com/brianvoe/gofakeit/v7; seed the faker to get
// reproducible stubs.
package faker
