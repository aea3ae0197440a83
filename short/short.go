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

// Package short abbreviates identifiers to prefixed fragments and detects
// fragments shared by distinct identifiers.
package short

import (
	"fmt"
	"reflect"

	"dirpx.dev/renamed/apis"
)

const (
	// Separator joins the prefix and the truncated text.
	Separator = "|"
	// Sentinel replaces Separator when the truncated text is empty.
	Sentinel = "‖"
)

// Shorten truncates original to s.Length characters and tags it with s.Prefix:
// "ID|1234". An empty truncation yields "ID‖". It is a pure function.
func Shorten(s apis.Shortener, original string) string {
	truncated := truncate(original, s.Length)
	switch {
	case s.Prefix == "":
		if truncated == "" {
			return Sentinel
		}
		return truncated
	case truncated == "":
		return s.Prefix + Sentinel
	default:
		return s.Prefix + Separator + truncated
	}
}

// Apply shortens original and records the fragment in cache, which reports a
// collision when a different original already produced the same fragment.
func Apply(cache apis.ShortCache, s apis.Shortener, original string) string {
	fragment := Shorten(s, original)
	if cache != nil {
		cache.Record(fragment, original)
	}
	return fragment
}

// Leaf shortens the display text of leaf with its own shortener. It returns
// false when the leaf has no shortener. With strict set, a prefix already
// claimed by another leaf type panics.
func Leaf(cache apis.ShortCache, leaf apis.AnyNameable, strict bool) (string, bool) {
	s := leaf.Shortener()
	if s == nil {
		return "", false
	}
	if cache != nil && strict {
		if err := cache.Claim(s.Prefix, reflect.TypeOf(leaf.Value())); err != nil {
			panic(fmt.Errorf("%w: %q", err, s.Prefix))
		}
	}
	return Apply(cache, *s, leaf.String()), true
}

// truncate keeps the first n runes of s.
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
