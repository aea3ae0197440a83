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

// Package registry stores the display name chosen for each identifier, keyed
// by the identifier's compact debug text.
package registry

import (
	"errors"
	"sort"
	"sync"

	"go.uber.org/zap"

	"dirpx.dev/renamed/apis"
	"dirpx.dev/renamed/metrics"
	"dirpx.dev/renamed/name"
)

var (
	// ErrEmptyKey is returned when an empty key is provided.
	ErrEmptyKey = errors.New("renamed(registry): empty key provided")
	// ErrInvalidKind is returned when a name carries an undefined kind.
	ErrInvalidKind = errors.New("renamed(registry): invalid name kind")
)

// Option configures a registry.
type Option func(*registry)

// WithLogger sets the logger that receives set events.
func WithLogger(log *zap.Logger) Option {
	return func(r *registry) {
		if log != nil {
			r.log = log
		}
	}
}

// WithMetrics sets the sink for per-outcome counters.
func WithMetrics(m *metrics.Metrics) Option {
	return func(r *registry) {
		r.met = m
	}
}

// WithEntries preloads entries without logging or counting them, so that a
// rebuilt registry does not report names it only inherited. Entries with an
// empty key or an invalid kind are dropped.
func WithEntries(entries []apis.Entry) Option {
	return func(r *registry) {
		for _, e := range entries {
			if e.Key == "" || !e.Name.Kind.Valid() {
				continue
			}
			if _, loaded := r.m.LoadOrStore(e.Key, e.Name); !loaded {
				r.count++
			}
		}
	}
}

// New constructs a Registry, empty unless WithEntries is given.
func New(opts ...Option) apis.Registry {
	r := &registry{log: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// registry is a Registry implementation backed by sync.Map.
type registry struct {
	log *zap.Logger
	met *metrics.Metrics
	// mu serializes writers and guards count.
	mu sync.Mutex
	// m maps key to name.Name.
	m sync.Map
	// count tracks the number of stored entries.
	count int
}

// Set stores n under key unless a more specific name is already there.
// A name is replaced only when n's kind supersedes the stored kind; a
// NameShort is never replaced.
func (r *registry) Set(key string, n name.Name) (apis.Outcome, error) {
	if key == "" {
		return apis.Kept, ErrEmptyKey
	}
	if !n.Kind.Valid() {
		return apis.Kept, ErrInvalidKind
	}

	r.mu.Lock()
	outcome := r.setLocked(key, n)
	r.mu.Unlock()

	r.met.NameSet(outcome.String())
	return outcome, nil
}

func (r *registry) setLocked(key string, n name.Name) apis.Outcome {
	v, ok := r.m.Load(key)
	if !ok {
		r.m.Store(key, n)
		r.count++
		r.log.Debug("set new name", zap.String("key", key), zap.Stringer("name", n))
		return apis.Inserted
	}
	old := v.(name.Name)
	if old == n {
		return apis.Unchanged
	}
	if n.Kind.Supersedes(old.Kind) {
		r.m.Store(key, n)
		r.log.Warn("replacing existing name",
			zap.String("key", key),
			zap.Stringer("old", old),
			zap.Stringer("new", n),
		)
		return apis.Replaced
	}
	r.log.Debug("name already exists, skipping",
		zap.String("key", key),
		zap.Stringer("existing", old),
		zap.Stringer("rejected", n),
	)
	return apis.Kept
}

// Lookup returns the name stored for key.
func (r *registry) Lookup(key string) (name.Name, bool) {
	if v, ok := r.m.Load(key); ok {
		return v.(name.Name), true
	}
	return name.Name{}, false
}

// Entries returns a snapshot sorted by key.
func (r *registry) Entries() []apis.Entry {
	entries := make([]apis.Entry, 0, r.Count())
	r.m.Range(func(key, value any) bool {
		entries = append(entries, apis.Entry{
			Key:  key.(string),
			Name: value.(name.Name),
		})
		return true
	})
	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })
	return entries
}

// Count returns the number of stored entries.
func (r *registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Reset clears all stored entries.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m.Range(func(key, _ any) bool {
		r.m.Delete(key)
		return true
	})
	r.count = 0
}
