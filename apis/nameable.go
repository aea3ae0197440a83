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

import (
	"fmt"

	"dirpx.dev/renamed/debugfmt"
)

// Shortener describes how to abbreviate an identifier: keep the first Length
// characters of its display text and tag them with Prefix.
type Shortener struct {
	Length int
	Prefix string
}

// Nameable is implemented by leaf identifier types.
//
// The display text (String) is what gets shortened; the debug text produced by
// debugfmt is what gets looked up and replaced.
type Nameable interface {
	fmt.Stringer
	// Shortener returns how to shorten the identifier, or nil if it has no
	// short form.
	Shortener() *Shortener
}

// Bracketed lets a leaf choose its own decoration instead of Config.Open/Close.
type Bracketed interface {
	Brackets() (open, close string)
}

// Nameables is implemented by composites that list their leaves by hand.
// The result must follow field order and skip excluded members.
type Nameables interface {
	Nameables() []AnyNameable
}

// NoNameables marks a type that never contains leaves worth renaming. Leaf
// collection stops at such values; they still print normally.
type NoNameables interface {
	NoNameables()
}

// AnyNameable is a type-erased handle to a leaf. Two handles refer to the same
// identifier exactly when their keys are equal.
type AnyNameable struct {
	leaf Nameable
	p    *debugfmt.Printer
}

// Erase wraps a leaf. Its key is printed by the default printer.
func Erase(leaf Nameable) AnyNameable {
	return AnyNameable{leaf: leaf}
}

// EraseWith wraps a leaf whose key is printed by p.
func EraseWith(leaf Nameable, p *debugfmt.Printer) AnyNameable {
	return AnyNameable{leaf: leaf, p: p}
}

// WithPrinter returns a copy of a whose key is printed by p.
func (a AnyNameable) WithPrinter(p *debugfmt.Printer) AnyNameable {
	a.p = p
	return a
}

// Value returns the wrapped leaf.
func (a AnyNameable) Value() Nameable { return a.leaf }

// IsZero reports whether a wraps nothing.
func (a AnyNameable) IsZero() bool { return a.leaf == nil }

// Key returns the compact debug text of the leaf, the registry key. It is the
// same text the bound printer writes for the leaf, so it doubles as the
// compact search pattern.
func (a AnyNameable) Key() string {
	if a.p != nil {
		return a.p.Compact(a.leaf)
	}
	return debugfmt.Sprint(a.leaf)
}

// Shortener returns the leaf's shortener, or nil.
func (a AnyNameable) Shortener() *Shortener {
	if a.leaf == nil {
		return nil
	}
	return a.leaf.Shortener()
}

// Prefix returns the shortener prefix, or "".
func (a AnyNameable) Prefix() string {
	if s := a.Shortener(); s != nil {
		return s.Prefix
	}
	return ""
}

// Brackets returns the leaf's own brackets, or the configured defaults.
func (a AnyNameable) Brackets(cfg Config) (open, close string) {
	if b, ok := a.leaf.(Bracketed); ok {
		return b.Brackets()
	}
	return cfg.Open, cfg.Close
}

// String returns the display text of the leaf.
func (a AnyNameable) String() string {
	if a.leaf == nil {
		return ""
	}
	return a.leaf.String()
}

// DebugValue makes a handle print exactly like the leaf it wraps.
func (a AnyNameable) DebugValue() any { return a.leaf }
