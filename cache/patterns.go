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

// Package cache retains compiled substitution patterns between renders.
package cache

import (
	"errors"
	"fmt"
	"regexp"

	lru "github.com/hashicorp/golang-lru/v2"

	"dirpx.dev/renamed/cache/strategy"
)

// ErrInvalidSize is returned for a non-positive LRU capacity.
var ErrInvalidSize = errors.New("renamed(cache): LRU size must be positive")

// Patterns compiles regular expressions, reusing earlier compilations
// according to its strategy. It is safe for concurrent use.
type Patterns struct {
	strategy strategy.Strategy
	lru      *lru.Cache[string, *regexp.Regexp]
}

// New returns a pattern cache for s. size is ignored unless s is LRU.
func New(s strategy.Strategy, size int) (*Patterns, error) {
	switch s {
	case strategy.None:
		return &Patterns{strategy: s}, nil
	case strategy.LRU:
		if size <= 0 {
			return nil, ErrInvalidSize
		}
		c, err := lru.New[string, *regexp.Regexp](size)
		if err != nil {
			return nil, fmt.Errorf("renamed(cache): %w", err)
		}
		return &Patterns{strategy: s, lru: c}, nil
	default:
		return nil, fmt.Errorf("renamed(cache): unsupported strategy %v", s)
	}
}

// Strategy reports the retention strategy.
func (p *Patterns) Strategy() strategy.Strategy { return p.strategy }

// Compile returns the compiled form of expr. Patterns are built from quoted
// literals, so a compile failure is a bug and panics.
func (p *Patterns) Compile(expr string) *regexp.Regexp {
	if p == nil || p.lru == nil {
		return regexp.MustCompile(expr)
	}
	if re, ok := p.lru.Get(expr); ok {
		return re
	}
	re := regexp.MustCompile(expr)
	p.lru.Add(expr, re)
	return re
}

// Len returns the number of retained patterns.
func (p *Patterns) Len() int {
	if p == nil || p.lru == nil {
		return 0
	}
	return p.lru.Len()
}

// Purge drops all retained patterns.
func (p *Patterns) Purge() {
	if p != nil && p.lru != nil {
		p.lru.Purge()
	}
}
