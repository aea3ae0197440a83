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

// Package builder assembles the registry, short cache and resolver of a
// namespace from its configuration.
package builder

import (
	"dirpx.dev/renamed/apis"
	"dirpx.dev/renamed/registry"
	"dirpx.dev/renamed/resolver"
	"dirpx.dev/renamed/short"
	"dirpx.dev/renamed/strategy"
)

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildRegistry builds a registry wired to env. Entries of prev, if any, are
// loaded into it so names survive a rebuild. Loading is silent: inherited
// names are neither logged nor counted as sets.
func (b *builder) BuildRegistry(_ apis.Config, prev apis.Registry, env apis.Env) apis.Registry {
	opts := []registry.Option{registry.WithLogger(env.Log), registry.WithMetrics(env.Metrics)}
	if prev != nil {
		opts = append(opts, registry.WithEntries(prev.Entries()))
	}
	return registry.New(opts...)
}

// BuildShortCache builds a short cache wired to env and loads the fragments
// and prefix claims of prev.
func (b *builder) BuildShortCache(_ apis.Config, prev apis.ShortCache, env apis.Env) apis.ShortCache {
	opts := []short.Option{short.WithLogger(env.Log), short.WithMetrics(env.Metrics)}
	if prev != nil {
		opts = append(opts, short.WithEntries(prev.Entries()), short.WithClaims(prev.Claims()))
	}
	return short.NewCache(opts...)
}

// BuildResolver returns the registry lookup chained with the shortened
// fallback.
func (b *builder) BuildResolver(_ apis.Config, reg apis.Registry, shorts apis.ShortCache, _ apis.Env) apis.Resolver {
	return resolver.New(
		strategy.NewRegistryStrategy(reg),
		strategy.NewShortStrategy(shorts),
	)
}
