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
	"go.uber.org/zap"

	"dirpx.dev/renamed/metrics"
)

// Env carries the observability sinks handed to every built component.
type Env struct {
	// Log receives collision and replacement events. Never nil once built.
	Log *zap.Logger
	// Metrics counts events. May be nil.
	Metrics *metrics.Metrics
}

// Builder composes the name registry, short-ID cache and resolver for a Config.
// Implementations may migrate state from previous instances (prev), or ignore them.
type Builder interface {
	// BuildRegistry constructs a Registry for Config. May migrate entries from prev.
	BuildRegistry(cfg Config, prev Registry, env Env) Registry
	// BuildShortCache constructs a ShortCache for Config. May migrate entries from prev.
	BuildShortCache(cfg Config, prev ShortCache, env Env) ShortCache
	// BuildResolver constructs a Resolver over reg and shorts.
	BuildResolver(cfg Config, reg Registry, shorts ShortCache, env Env) Resolver
}
