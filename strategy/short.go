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
	"dirpx.dev/renamed/apis"
	"dirpx.dev/renamed/short"
)

// NewShortStrategy creates an apis.Strategy that renders the leaf's shortened
// form. It is the fallback for leaves that were never named.
func NewShortStrategy(shorts apis.ShortCache) apis.Strategy {
	return shortStrategy{shorts: shorts}
}

// shortStrategy brackets the fragment produced by the leaf's own shortener.
// Leaves without a shortener are not handled, so their debug text is left
// untouched.
type shortStrategy struct {
	shorts apis.ShortCache
}

// Ensure shortStrategy implements apis.Strategy.
var _ apis.Strategy = (*shortStrategy)(nil)

// TryResolve shortens the leaf and records the fragment for collision checks.
func (s shortStrategy) TryResolve(leaf apis.AnyNameable, cfg apis.Config) (string, bool) {
	if leaf.IsZero() {
		return "", false
	}
	fragment, ok := short.Leaf(s.shorts, leaf, cfg.StrictPrefixes)
	if !ok {
		return "", false
	}
	open, close := leaf.Brackets(cfg)
	return open + fragment + close, true
}
