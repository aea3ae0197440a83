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

package strategy_test

import (
	"runtime"
	"strconv"
	"sync"
	"testing"

	"dirpx.dev/renamed/apis"
	"dirpx.dev/renamed/name"
	"dirpx.dev/renamed/registry"
	"dirpx.dev/renamed/strategy"
)

// Local leaf types.
type ID uint64

func (i ID) String() string { return strconv.FormatUint(uint64(i), 10) }
func (ID) Shortener() *apis.Shortener {
	return &apis.Shortener{Length: 4, Prefix: "ID"}
}

type Slot uint64

func (s Slot) String() string { return strconv.FormatUint(uint64(s), 10) }
func (Slot) Shortener() *apis.Shortener {
	return &apis.Shortener{Length: 4, Prefix: "ID"}
}

type Tag string

func (t Tag) String() string           { return string(t) }
func (Tag) Shortener() *apis.Shortener { return nil }

type Angle uint64

func (a Angle) String() string { return strconv.FormatUint(uint64(a), 10) }
func (Angle) Shortener() *apis.Shortener {
	return &apis.Shortener{Length: 3, Prefix: "A"}
}
func (Angle) Brackets() (string, string) { return "<", ">" }

// cfg returns a convenient baseline Config for tests.
func cfg(opts ...func(*apis.Config)) apis.Config {
	c := apis.Config{Open: "⟪", Close: "⟫"}
	for _, o := range opts {
		o(&c)
	}
	return c
}

func TestRegistryStrategy_WithRealRegistry(t *testing.T) {
	conf := cfg()
	reg := registry.New()

	leaf := apis.Erase(ID(123456))
	if leaf.Key() != "ID(123456)" {
		t.Fatalf("Key() = %q, want ID(123456)", leaf.Key())
	}
	if _, err := reg.Set(leaf.Key(), name.NewTextShort("ID|1234", "foo", conf.Open, conf.Close)); err != nil {
		t.Fatalf("Set: %v", err)
	}

	s := strategy.NewRegistryStrategy(reg)

	got, ok := s.TryResolve(leaf, conf)
	if !ok || got != "⟪ID|1234|foo⟫" {
		t.Fatalf("TryResolve(ID) = (%q,%v), want (⟪ID|1234|foo⟫,true)", got, ok)
	}

	// Same display text, different type: different key, miss.
	if got, ok := s.TryResolve(apis.Erase(Slot(123456)), conf); ok || got != "" {
		t.Fatalf("TryResolve(Slot) = (%q,%v), want ('',false)", got, ok)
	}
	if got, ok := s.TryResolve(apis.AnyNameable{}, conf); ok || got != "" {
		t.Fatalf("TryResolve(zero) = (%q,%v), want ('',false)", got, ok)
	}
	if got, ok := strategy.NewRegistryStrategy(nil).TryResolve(leaf, conf); ok || got != "" {
		t.Fatalf("nil registry: got (%q,%v), want ('',false)", got, ok)
	}
}

// A small concurrency smoke test to ensure the strategy and a real registry
// behave well while names are being set.
func TestRegistryStrategy_WithRealRegistry_Concurrent(t *testing.T) {
	conf := cfg()
	reg := registry.New()
	s := strategy.NewRegistryStrategy(reg)

	leaves := []apis.AnyNameable{apis.Erase(ID(1)), apis.Erase(ID(2)), apis.Erase(Tag("x"))}
	want := []string{"⟪ID|one⟫", "⟪ID|two⟫", "⟪x⟫"}
	names := []name.Name{
		name.NewText("ID", "one", conf.Open, conf.Close),
		name.NewText("ID", "two", conf.Open, conf.Close),
		name.NewText("", "x", conf.Open, conf.Close),
	}
	for i, l := range leaves {
		if _, err := reg.Set(l.Key(), names[i]); err != nil {
			t.Fatalf("Set: %v", err)
		}
	}

	workers := runtime.GOMAXPROCS(0) * 4
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan string, workers)

	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 2000; i++ {
				idx := i % len(leaves)
				// Re-setting a less specific name must never change the result.
				_, _ = reg.Set(leaves[idx].Key(), name.NewSerial("ID", uint64(i), conf.Open, conf.Close))
				got, ok := s.TryResolve(leaves[idx], conf)
				if !ok || got != want[idx] {
					errCh <- got
					return
				}
			}
		}()
	}

	wg.Wait()
	close(errCh)
	for e := range errCh {
		t.Fatalf("concurrent mismatch: got=%q", e)
	}
}
