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

package strategy

import (
	"fmt"
	"strings"
)

// Strategy controls how compiled substitution patterns are retained between
// renders.
//
// # Values
//
//   - LRU: keep a bounded set of recently used patterns.
//   - None: compile every pattern on every render (pass-through).
//
// The capacity of an LRU cache is configured separately.
type Strategy int

const (
	// LRU selects Least Recently Used eviction.
	//
	// Patterns are derived from identifier debug text, so a process that keeps
	// rendering the same identifiers hits the cache almost every time, while a
	// stream of one-off identifiers is bounded by the capacity.
	LRU Strategy = iota

	// None disables caching.
	//
	// Useful in tests and for short-lived processes where the compile cost is
	// irrelevant.
	None
)

// String returns the canonical token for cs ("LRU", "None"), or a diagnostic
// form for unknown values.
func (cs Strategy) String() string {
	switch cs {
	case LRU:
		return "LRU"
	case None:
		return "None"
	default:
		return fmt.Sprintf("Unknown(%d)", cs)
	}
}

// Parse converts a textual strategy (case-insensitive, surrounding whitespace
// ignored) into a Strategy.
func Parse(s string) (Strategy, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return None, fmt.Errorf("cache: empty strategy")
	}

	switch strings.ToUpper(trimmed) {
	case "LRU":
		return LRU, nil
	case "NONE":
		return None, nil
	default:
		return None, fmt.Errorf("cache: unknown strategy %q", s)
	}
}

// MustParse is like Parse but panics on error. Intended for constants and
// tests.
func MustParse(s string) Strategy {
	strategy, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return strategy
}

// MarshalText implements encoding.TextMarshaler.
func (cs Strategy) MarshalText() ([]byte, error) {
	switch cs {
	case LRU, None:
		return []byte(cs.String()), nil
	default:
		return nil, fmt.Errorf("cache: cannot marshal unknown strategy %d", cs)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler, so configuration formats
// (YAML, JSON) accept "lru" or "none".
func (cs *Strategy) UnmarshalText(text []byte) error {
	value, err := Parse(string(text))
	if err != nil {
		return err
	}
	*cs = value
	return nil
}
