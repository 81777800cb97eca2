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

package config

import (
	"dirpx.dev/stubx/apis"
)

const (
	// DefaultMaxDepth represents the default for MaxDepth.
	// Deeper site chains almost always mean a self-referencing type.
	DefaultMaxDepth = 24
	// DefaultCollectionSize represents the default for CollectionSize.
	// One element is enough to exercise code iterating over a collection.
	DefaultCollectionSize = 1
	// DefaultPointerMode represents the default for PointerMode.
	DefaultPointerMode = apis.PresentIfPossible
	// DefaultSeed represents the default for Seed.
	DefaultSeed uint64 = 0
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure CollectionSize is valid.
	if cfg.CollectionSize < 0 {
		cfg.CollectionSize = DefaultCollectionSize
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		MaxDepth:       DefaultMaxDepth,
		CollectionSize: DefaultCollectionSize,
		PointerMode:    DefaultPointerMode,
		Seed:           DefaultSeed,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithMaxDepth sets the MaxDepth option.
// Zero or a negative value disables the depth guard.
func WithMaxDepth(max int) Option {
	return func(c *apis.Config) {
		c.MaxDepth = max
	}
}

// WithCollectionSize sets the CollectionSize option.
// A negative value resets to the default.
func WithCollectionSize(size int) Option {
	return func(c *apis.Config) {
		if size < 0 {
			c.CollectionSize = DefaultCollectionSize
			return
		}
		c.CollectionSize = size
	}
}

// WithPointerMode sets the PointerMode option.
func WithPointerMode(mode apis.PointerMode) Option {
	return func(c *apis.Config) {
		c.PointerMode = mode
	}
}

// WithSeed sets the Seed option.
func WithSeed(seed uint64) Option {
	return func(c *apis.Config) {
		c.Seed = seed
	}
}
