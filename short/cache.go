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

package short

import (
	"errors"
	"reflect"
	"sort"
	"sync"

	"go.uber.org/zap"

	"dirpx.dev/renamed/apis"
	"dirpx.dev/renamed/metrics"
	uref "dirpx.dev/renamed/utils/reflect"
)

var (
	// ErrPrefixTaken indicates that two distinct leaf types use the same prefix.
	ErrPrefixTaken = errors.New("renamed(short): prefix already claimed by another type")
	// ErrEmptyPrefix is returned when claiming an empty prefix.
	ErrEmptyPrefix = errors.New("renamed(short): empty prefix")
)

// Option configures a Cache.
type Option func(*Cache)

// WithLogger sets the logger that receives collision events.
func WithLogger(log *zap.Logger) Option {
	return func(c *Cache) {
		if log != nil {
			c.log = log
		}
	}
}

// WithMetrics sets the collision counter sink.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Cache) {
		c.met = m
	}
}

// WithEntries preloads fragments without reporting collisions.
func WithEntries(entries []apis.ShortEntry) Option {
	return func(c *Cache) {
		for _, e := range entries {
			c.frags[e.Fragment] = e.Original
		}
	}
}

// WithClaims preloads prefix owners. The first owner of a prefix wins.
func WithClaims(claims []apis.PrefixClaim) Option {
	return func(c *Cache) {
		for _, cl := range claims {
			if cl.Prefix == "" || cl.Type == nil {
				continue
			}
			if _, ok := c.prefixes[cl.Prefix]; !ok {
				c.prefixes[cl.Prefix] = cl.Type
			}
		}
	}
}

// NewCache constructs a short-ID cache, empty unless WithEntries or
// WithClaims is given.
func NewCache(opts ...Option) *Cache {
	c := &Cache{
		log:      zap.NewNop(),
		frags:    make(map[string]string),
		prefixes: make(map[string]reflect.Type),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Cache is the process-wide fragment -> original table. It is append-only in
// normal operation; Reset exists for tests.
type Cache struct {
	log *zap.Logger
	met *metrics.Metrics

	// mu guards frags and prefixes.
	mu       sync.Mutex
	frags    map[string]string
	prefixes map[string]reflect.Type
}

// Ensure Cache implements apis.ShortCache.
var _ apis.ShortCache = (*Cache)(nil)

// Record stores fragment -> original. A different original already stored for
// fragment is a collision: it is logged and counted, and the latest original
// wins.
func (c *Cache) Record(fragment, original string) bool {
	c.mu.Lock()
	existing, ok := c.frags[fragment]
	c.frags[fragment] = original
	c.mu.Unlock()

	if !ok || existing == original {
		return false
	}
	c.log.Warn("short ID collision, two values have the same short ID",
		zap.String("fragment", fragment),
		zap.String("old", existing),
		zap.String("new", original),
	)
	c.met.Collision()
	return true
}

// Lookup returns the latest original recorded for fragment.
func (c *Cache) Lookup(fragment string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	original, ok := c.frags[fragment]
	return original, ok
}

// Claim associates prefix with the leaf type t (pointer indirections are
// normalized away, so T and *T are the same owner).
func (c *Cache) Claim(prefix string, t reflect.Type) error {
	if prefix == "" {
		return ErrEmptyPrefix
	}
	if n, err := uref.Normalize(t, 0); err == nil {
		t = n
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	owner, ok := c.prefixes[prefix]
	if !ok {
		c.prefixes[prefix] = t
		return nil
	}
	if owner == t {
		return nil
	}
	c.log.Error("shortener prefix claimed by two types",
		zap.String("prefix", prefix),
		zap.Stringer("owner", owner),
		zap.Stringer("type", t),
	)
	return ErrPrefixTaken
}

// Entries returns a snapshot sorted by fragment.
func (c *Cache) Entries() []apis.ShortEntry {
	c.mu.Lock()
	out := make([]apis.ShortEntry, 0, len(c.frags))
	for f, o := range c.frags {
		out = append(out, apis.ShortEntry{Fragment: f, Original: o})
	}
	c.mu.Unlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Fragment < out[j].Fragment })
	return out
}

// Claims returns the prefix owners sorted by prefix.
func (c *Cache) Claims() []apis.PrefixClaim {
	c.mu.Lock()
	out := make([]apis.PrefixClaim, 0, len(c.prefixes))
	for p, t := range c.prefixes {
		out = append(out, apis.PrefixClaim{Prefix: p, Type: t})
	}
	c.mu.Unlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Prefix < out[j].Prefix })
	return out
}

// Count returns the number of recorded fragments.
func (c *Cache) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.frags)
}

// Reset clears fragments and prefix claims.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.frags = make(map[string]string)
	c.prefixes = make(map[string]reflect.Type)
}
