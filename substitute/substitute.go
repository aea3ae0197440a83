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

// Package substitute rewrites debug text by replacing the text of each leaf
// with its resolved name.
package substitute

import (
	"fmt"
	"regexp"
	"strings"

	"dirpx.dev/renamed/apis"
	"dirpx.dev/renamed/cache"
	"dirpx.dev/renamed/debugfmt"
	"dirpx.dev/renamed/metrics"
)

// Mode selects compact or pretty rendering.
type Mode int

const (
	// Compact is the single-line form.
	Compact Mode = iota
	// Pretty is the multi-line indented form.
	Pretty
)

func (m Mode) String() string {
	switch m {
	case Compact:
		return metrics.ModeCompact
	case Pretty:
		return metrics.ModePretty
	default:
		return fmt.Sprintf("unknown(%d)", int(m))
	}
}

// Replacement pairs the debug text of a leaf with the text that replaces it.
// In Pretty mode Pattern is a regular expression built by PrettyPattern.
type Replacement struct {
	Pattern string
	Text    string
}

// indentChars are the characters an indentation may be made of.
const indentChars = " \t"

// PrettyPattern turns the pretty debug text of a leaf into a pattern that
// matches it at any indentation of spaces and tabs.
func PrettyPattern(prettyDebug string) string {
	lines := strings.Split(prettyDebug, "\n")
	for i, line := range lines {
		lines[i] = "[" + indentChars + "]*" + regexp.QuoteMeta(line)
	}
	return strings.Join(lines, "\n")
}

// Plan resolves every distinct leaf and returns the replacements to apply
// to text printed in mode. Keys and patterns both come from p. Leaves are
// deduplicated by key, the first one winning, and leaves the resolver does
// not handle are skipped.
func Plan(leaves []apis.AnyNameable, mode Mode, p *debugfmt.Printer, res apis.Resolver, cfg apis.Config) []Replacement {
	if res == nil {
		return nil
	}
	seen := make(map[string]struct{}, len(leaves))
	reps := make([]Replacement, 0, len(leaves))
	for _, leaf := range leaves {
		if leaf.IsZero() {
			continue
		}
		leaf = leaf.WithPrinter(p)
		key := leaf.Key()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		text, ok := res.Resolve(leaf, cfg)
		if !ok {
			continue
		}
		pattern := key
		if mode == Pretty {
			pattern = PrettyPattern(p.Pretty(leaf.Value()))
		}
		reps = append(reps, Replacement{Pattern: pattern, Text: text})
	}
	return reps
}

// Engine applies replacements, caching compiled pretty patterns.
type Engine struct {
	patterns *cache.Patterns
	met      *metrics.Metrics
}

// NewEngine returns an Engine. A nil patterns cache compiles on every use.
func NewEngine(patterns *cache.Patterns, m *metrics.Metrics) *Engine {
	return &Engine{patterns: patterns, met: m}
}

// Apply rewrites text in the given mode.
func (e *Engine) Apply(text string, reps []Replacement, mode Mode) string {
	e.met.Render(mode.String())
	if mode == Pretty {
		return e.pretty(text, reps)
	}
	return CompactText(text, reps)
}

// Pretty rewrites multi-line text. The indentation that precedes a match is
// repeated in front of every line of its replacement.
func (e *Engine) Pretty(text string, reps []Replacement) string {
	e.met.Render(metrics.ModePretty)
	return e.pretty(text, reps)
}

func (e *Engine) pretty(text string, reps []Replacement) string {
	for _, r := range reps {
		if r.Pattern == "" {
			continue
		}
		re := e.patterns.Compile(r.Pattern)
		text = re.ReplaceAllStringFunc(text, func(match string) string {
			spaces := match[:len(match)-len(strings.TrimLeft(match, indentChars))]
			return indent(r.Text, spaces)
		})
	}
	return text
}

// CompactText rewrites single-line text with literal, left-to-right
// replacements applied in order.
func CompactText(text string, reps []Replacement) string {
	for _, r := range reps {
		if r.Pattern == "" {
			continue
		}
		text = strings.ReplaceAll(text, r.Pattern, r.Text)
	}
	return text
}

func indent(text, prefix string) string {
	if prefix == "" {
		return text
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
