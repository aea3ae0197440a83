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

import "dirpx.dev/renamed/cache/strategy"

// Config carries read-only rendering knobs. It is passed by value and should be
// treated as immutable by implementations.
type Config struct {
	// Open and Close are the default brackets around a rendered name, used
	// for leaves that do not implement Bracketed.
	Open  string `yaml:"open"`
	Close string `yaml:"close"`

	// Indent is one level of pretty-mode indentation.
	Indent string `yaml:"indent"`

	// MaxDepth limits how deep printing and leaf collection descend.
	// Acts as a safety guard against cyclic or pathological nesting.
	MaxDepth int `yaml:"max_depth"`

	// StrictPrefixes turns a prefix claimed by two different leaf types into
	// a panic. Meant for development and tests.
	StrictPrefixes bool `yaml:"strict_prefixes"`

	// PatternCache selects how compiled pretty-mode patterns are retained.
	PatternCache strategy.Strategy `yaml:"pattern_cache"`

	// PatternCacheSize is the capacity of an LRU pattern cache.
	PatternCacheSize int `yaml:"pattern_cache_size"`
}
