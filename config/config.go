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
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"dirpx.dev/renamed/apis"
	"dirpx.dev/renamed/cache/strategy"
	"dirpx.dev/renamed/debugfmt"
)

const (
	// DefaultOpen and DefaultClose are the default name brackets.
	DefaultOpen  = "⟪"
	DefaultClose = "⟫"
	// DefaultIndent matches the debug printer's indentation.
	DefaultIndent = debugfmt.DefaultIndent
	// DefaultMaxDepth should be sufficient for all practical purposes.
	DefaultMaxDepth = debugfmt.DefaultMaxDepth
	// DefaultStrictPrefixes leaves prefix collisions unchecked.
	DefaultStrictPrefixes = false
	// DefaultPatternCache keeps recently used pretty-mode patterns.
	DefaultPatternCache = strategy.LRU
	// DefaultPatternCacheSize bounds the pattern cache.
	DefaultPatternCacheSize = 512
)

var (
	// ErrEmptyIndent is returned when a loaded config sets an empty indent.
	ErrEmptyIndent = errors.New("renamed(config): indent must not be empty")
	// ErrInvalidIndent is returned when indent holds anything but spaces and tabs.
	ErrInvalidIndent = errors.New("renamed(config): indent must only contain spaces and tabs")
	// ErrInvalidDepth is returned when max_depth is negative.
	ErrInvalidDepth = errors.New("renamed(config): max_depth must not be negative")
	// ErrInvalidCacheSize is returned when an LRU cache has no capacity.
	ErrInvalidCacheSize = errors.New("renamed(config): pattern_cache_size must be positive for LRU")
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		Open:             DefaultOpen,
		Close:            DefaultClose,
		Indent:           DefaultIndent,
		MaxDepth:         DefaultMaxDepth,
		StrictPrefixes:   DefaultStrictPrefixes,
		PatternCache:     DefaultPatternCache,
		PatternCacheSize: DefaultPatternCacheSize,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithBrackets sets the default name brackets.
func WithBrackets(open, close string) Option {
	return func(c *apis.Config) {
		c.Open = open
		c.Close = close
	}
}

// WithIndent sets the pretty-mode indentation. An empty value resets to the default.
func WithIndent(indent string) Option {
	return func(c *apis.Config) {
		if indent == "" {
			c.Indent = DefaultIndent
			return
		}
		c.Indent = indent
	}
}

// WithMaxDepth sets the MaxDepth option.
// A non-positive value resets to the default.
func WithMaxDepth(max int) Option {
	return func(c *apis.Config) {
		if max <= 0 {
			c.MaxDepth = DefaultMaxDepth
			return
		}
		c.MaxDepth = max
	}
}

// WithStrictPrefixes sets the StrictPrefixes option.
func WithStrictPrefixes(strict bool) Option {
	return func(c *apis.Config) {
		c.StrictPrefixes = strict
	}
}

// WithPatternCache selects the pattern cache strategy and capacity.
// A non-positive size keeps the current capacity.
func WithPatternCache(s strategy.Strategy, size int) Option {
	return func(c *apis.Config) {
		c.PatternCache = s
		if size > 0 {
			c.PatternCacheSize = size
		}
	}
}

// Load reads a YAML configuration file. Keys absent from the file keep their
// default values.
func Load(path string) (apis.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return apis.Config{}, fmt.Errorf("renamed(config): read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML document over DefaultConfig and validates the result.
// An empty document yields the defaults.
func Parse(data []byte) (apis.Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return apis.Config{}, fmt.Errorf("renamed(config): decode: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return apis.Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid field of cfg.
func Validate(cfg apis.Config) error {
	if cfg.Indent == "" {
		return ErrEmptyIndent
	}
	if strings.Trim(cfg.Indent, " \t") != "" {
		return fmt.Errorf("%w: %q", ErrInvalidIndent, cfg.Indent)
	}
	if cfg.MaxDepth < 0 {
		return ErrInvalidDepth
	}
	if cfg.PatternCache == strategy.LRU && cfg.PatternCacheSize <= 0 {
		return ErrInvalidCacheSize
	}
	return nil
}
