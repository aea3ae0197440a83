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

package renamed

import (
	"errors"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"dirpx.dev/renamed/apis"
	"dirpx.dev/renamed/builder"
	"dirpx.dev/renamed/cache"
	"dirpx.dev/renamed/collect"
	"dirpx.dev/renamed/config"
	"dirpx.dev/renamed/debugfmt"
	"dirpx.dev/renamed/metrics"
	"dirpx.dev/renamed/substitute"
)

var (
	// ErrNilRegistry is returned when a builder returns a nil registry.
	ErrNilRegistry = errors.New("renamed: builder returned nil registry")
	// ErrNilShortCache is returned when a builder returns a nil short cache.
	ErrNilShortCache = errors.New("renamed: builder returned nil short cache")
	// ErrNilResolver is returned when a builder returns a nil resolver.
	ErrNilResolver = errors.New("renamed: builder returned nil resolver")
)

// state is an immutable snapshot of a namespace. Readers load it once per
// operation; writers build a new one under buildMu and swap it in.
type state struct {
	cfg    apis.Config
	reg    apis.Registry
	shorts apis.ShortCache
	res    apis.Resolver
	bld    apis.Builder

	// preg, pshorts and pres mark components set explicitly by the caller.
	// Pinned components survive rebuilds.
	preg    bool
	pshorts bool
	pres    bool

	printer   *debugfmt.Printer
	collector *collect.Collector
	engine    *substitute.Engine
}

// Namespace owns a name registry, a short-ID cache and the resolver that
// reads them. Names set in one namespace are invisible to others, which makes
// namespaces the unit of isolation for tests. All methods are safe for
// concurrent use.
type Namespace struct {
	st      atomic.Pointer[state]
	buildMu sync.Mutex
	serial  atomic.Uint64
	env     apis.Env
}

// Option configures a Namespace.
type Option func(*options)

type options struct {
	cfg apis.Config
	log *zap.Logger
	met *metrics.Metrics
	bld apis.Builder
}

// WithConfig sets the initial configuration.
func WithConfig(cfg apis.Config) Option {
	return func(o *options) { o.cfg = cfg }
}

// WithLogger sets the logger. The default is zap.L() at construction time.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// WithMetrics sets the metrics sink. The default is an unregistered set of
// counters.
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) { o.met = m }
}

// WithBuilder sets the builder used to construct components.
func WithBuilder(b apis.Builder) Option {
	return func(o *options) {
		if b != nil {
			o.bld = b
		}
	}
}

// New creates a Namespace. It fails only for an invalid configuration.
func New(opts ...Option) (*Namespace, error) {
	o := options{cfg: config.DefaultConfig(), log: zap.L(), bld: builder.New()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.met == nil {
		o.met = metrics.New(nil)
	}

	ns := &Namespace{env: apis.Env{Log: o.log, Metrics: o.met}}
	s, err := ns.derive(&state{bld: o.bld}, o.cfg)
	if err != nil {
		return nil, err
	}
	ns.st.Store(s)
	return ns, nil
}

// MustNew is like New but panics on error.
func MustNew(opts ...Option) *Namespace {
	ns, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return ns
}

// derive builds the next snapshot from old for cfg, rebuilding every
// component that is not pinned.
func (ns *Namespace) derive(old *state, cfg apis.Config) (*state, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	patterns, err := cache.New(cfg.PatternCache, cfg.PatternCacheSize)
	if err != nil {
		return nil, err
	}

	next := *old
	next.cfg = cfg
	if !next.preg {
		next.reg = next.bld.BuildRegistry(cfg, old.reg, ns.env)
	}
	if !next.pshorts {
		next.shorts = next.bld.BuildShortCache(cfg, old.shorts, ns.env)
	}
	if !next.pres {
		next.res = next.bld.BuildResolver(cfg, next.reg, next.shorts, ns.env)
	}

	// Ensure non-nil components.
	if next.reg == nil {
		panic(ErrNilRegistry)
	}
	if next.shorts == nil {
		panic(ErrNilShortCache)
	}
	if next.res == nil {
		panic(ErrNilResolver)
	}

	next.printer = debugfmt.New(debugfmt.WithIndent(cfg.Indent), debugfmt.WithMaxDepth(cfg.MaxDepth))
	next.collector = collect.New(cfg.MaxDepth)
	next.engine = substitute.NewEngine(patterns, ns.env.Metrics)
	return &next, nil
}

// update applies fn to a copy of the current snapshot and rebuilds the
// unpinned components.
func (ns *Namespace) update(fn func(s *state)) {
	ns.buildMu.Lock()
	defer ns.buildMu.Unlock()

	old := ns.st.Load()
	next := *old
	fn(&next)
	s, err := ns.derive(&next, next.cfg)
	if err != nil {
		// The configuration was validated when it was stored.
		panic(err)
	}
	ns.st.Store(s)
}

// Config returns the configuration.
func (ns *Namespace) Config() apis.Config {
	return ns.st.Load().cfg
}

// SetConfig replaces the configuration and rebuilds the unpinned components.
// Registered names and recorded fragments carry over.
func (ns *Namespace) SetConfig(cfg apis.Config) error {
	ns.buildMu.Lock()
	defer ns.buildMu.Unlock()

	s, err := ns.derive(ns.st.Load(), cfg)
	if err != nil {
		return err
	}
	ns.st.Store(s)
	return nil
}

// Registry returns the name registry.
func (ns *Namespace) Registry() apis.Registry {
	return ns.st.Load().reg
}

// SetRegistry pins reg as the name registry and rebuilds the resolver unless
// it is pinned. A nil reg is ignored.
func (ns *Namespace) SetRegistry(reg apis.Registry) {
	if reg == nil {
		return
	}
	ns.update(func(s *state) {
		s.reg = reg
		s.preg = true
	})
}

// ShortCache returns the short-ID cache.
func (ns *Namespace) ShortCache() apis.ShortCache {
	return ns.st.Load().shorts
}

// SetShortCache pins c as the short-ID cache. A nil c is ignored.
func (ns *Namespace) SetShortCache(c apis.ShortCache) {
	if c == nil {
		return
	}
	ns.update(func(s *state) {
		s.shorts = c
		s.pshorts = true
	})
}

// Resolver returns the resolver.
func (ns *Namespace) Resolver() apis.Resolver {
	return ns.st.Load().res
}

// SetResolver pins res as the resolver. A nil res is ignored.
func (ns *Namespace) SetResolver(res apis.Resolver) {
	if res == nil {
		return
	}
	ns.update(func(s *state) {
		s.res = res
		s.pres = true
	})
}

// Builder returns the builder.
func (ns *Namespace) Builder() apis.Builder {
	return ns.st.Load().bld
}

// SetBuilder replaces the builder and rebuilds the unpinned components with
// it. A nil b is ignored.
func (ns *Namespace) SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}
	ns.update(func(s *state) {
		s.bld = b
	})
}

// IsRegistryPinned reports whether the registry survives rebuilds.
func (ns *Namespace) IsRegistryPinned() bool {
	return ns.st.Load().preg
}

// PinRegistry keeps the current registry across rebuilds.
func (ns *Namespace) PinRegistry() {
	ns.pinRegistry(true)
}

// UnpinRegistry lets the builder replace the registry on the next rebuild.
func (ns *Namespace) UnpinRegistry() {
	ns.pinRegistry(false)
}

// IsResolverPinned reports whether the resolver survives rebuilds.
func (ns *Namespace) IsResolverPinned() bool {
	return ns.st.Load().pres
}

// UnpinResolver lets the builder replace the resolver on the next rebuild.
func (ns *Namespace) UnpinResolver() {
	ns.pin(func(s *state) { s.pres = false })
}

func (ns *Namespace) pinRegistry(pinned bool) {
	ns.pin(func(s *state) { s.preg = pinned })
}

// pin changes pin flags without rebuilding anything.
func (ns *Namespace) pin(fn func(s *state)) {
	ns.buildMu.Lock()
	defer ns.buildMu.Unlock()

	next := *ns.st.Load()
	fn(&next)
	ns.st.Store(&next)
}

// Logger returns the namespace logger.
func (ns *Namespace) Logger() *zap.Logger {
	return ns.env.Log
}

// Metrics returns the namespace metrics.
func (ns *Namespace) Metrics() *metrics.Metrics {
	return ns.env.Metrics
}

// Reset forgets all names, fragments and prefix claims, and restarts the
// serial counter. It waits for a rebuild in progress so that the rebuilt
// components do not inherit what Reset clears.
func (ns *Namespace) Reset() {
	ns.buildMu.Lock()
	defer ns.buildMu.Unlock()

	s := ns.st.Load()
	s.reg.Reset()
	s.shorts.Reset()
	ns.serial.Store(0)
}

var (
	defaultOnce sync.Once
	defaultNS   atomic.Pointer[Namespace]
)

// Default returns the process-wide namespace used by the package-level
// helpers. It is created on first use with the default configuration and
// zap.L().
func Default() *Namespace {
	defaultOnce.Do(func() {
		defaultNS.CompareAndSwap(nil, MustNew())
	})
	return defaultNS.Load()
}

// SetDefault replaces the process-wide namespace and returns the previous
// one. A nil ns is ignored.
func SetDefault(ns *Namespace) *Namespace {
	if ns == nil {
		return Default()
	}
	prev := Default()
	defaultNS.Store(ns)
	return prev
}
