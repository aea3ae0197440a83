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

// Package metrics exposes Prometheus counters for naming and rendering events.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "renamed"

// Mode label values.
const (
	ModeCompact = "compact"
	ModePretty  = "pretty"
)

// Metrics groups the counters. A nil *Metrics is valid and records nothing.
type Metrics struct {
	collisions prometheus.Counter
	sets       *prometheus.CounterVec
	renders    *prometheus.CounterVec
}

// New creates the counters and registers them on reg. A nil reg leaves them
// unregistered, which is useful for tests that read counters directly.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		collisions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "short_collisions_total",
			Help:      "Distinct identifiers that shortened to an already used fragment.",
		}),
		sets: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "name_sets_total",
			Help:      "Name registrations by outcome.",
		}, []string{"outcome"}),
		renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "renders_total",
			Help:      "Substitution passes by rendering mode.",
		}, []string{"mode"}),
	}
	if reg != nil {
		reg.MustRegister(m.Collectors()...)
	}
	return m
}

// Collectors returns every collector owned by m.
func (m *Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{m.collisions, m.sets, m.renders}
}

// Collision counts one short ID collision.
func (m *Metrics) Collision() {
	if m == nil {
		return
	}
	m.collisions.Inc()
}

// NameSet counts one registration attempt with the given outcome.
func (m *Metrics) NameSet(outcome string) {
	if m == nil {
		return
	}
	m.sets.WithLabelValues(outcome).Inc()
}

// Render counts one substitution pass in the given mode.
func (m *Metrics) Render(mode string) {
	if m == nil {
		return
	}
	m.renders.WithLabelValues(mode).Inc()
}

// CollisionsCounter exposes the collision counter for inspection.
func (m *Metrics) CollisionsCounter() prometheus.Counter { return m.collisions }

// NameSets exposes the registration counter vector for inspection.
func (m *Metrics) NameSets() *prometheus.CounterVec { return m.sets }

// Renders exposes the render counter vector for inspection.
func (m *Metrics) Renders() *prometheus.CounterVec { return m.renders }
