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
	"testing"

	"dirpx.dev/renamed/cache/strategy"
)

func TestStrategyString(t *testing.T) {
	tests := []struct {
		name     string
		strategy strategy.Strategy
		want     string
	}{
		{"LRU", strategy.LRU, "LRU"},
		{"None", strategy.None, "None"},
		{"Unknown", strategy.Strategy(42), "Unknown(42)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.strategy.String(); got != tt.want {
				t.Fatalf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    strategy.Strategy
		wantErr bool
	}{
		{"LRU upper", "LRU", strategy.LRU, false},
		{"lru lower", "lru", strategy.LRU, false},
		{"none padded", "  none\t", strategy.None, false},
		{"empty", "   ", strategy.None, true},
		{"unknown", "LFU", strategy.None, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := strategy.Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustParse(invalid) did not panic")
		}
	}()
	_ = strategy.MustParse("bogus")
}

func TestTextRoundTrip(t *testing.T) {
	for _, s := range []strategy.Strategy{strategy.LRU, strategy.None} {
		b, err := s.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", s, err)
		}
		var got strategy.Strategy
		if err := got.UnmarshalText(b); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", b, err)
		}
		if got != s {
			t.Fatalf("round trip = %v, want %v", got, s)
		}
	}

	if _, err := strategy.Strategy(7).MarshalText(); err == nil {
		t.Fatal("MarshalText(unknown) should fail")
	}
}
