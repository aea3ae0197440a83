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

package debugfmt_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"dirpx.dev/renamed/debugfmt"
)

type Num uint64

type Label string

type IDs []Num

type Pair[A, B any] struct {
	Left  A
	Right B
}

type Unit struct{}

type Node struct {
	Name string
	Next *Node
}

type Opaque struct{ secret int }

func (o Opaque) DebugString() string { return "Opaque(***)" }

type Box struct{ inner any }

func (b Box) DebugValue() any { return b.inner }

type PtrDebug struct{ n int }

func (p *PtrDebug) DebugString() string { return "PtrDebug!" }

type Holder struct {
	D PtrDebug
}

func TestCompact(t *testing.T) {
	cases := []struct {
		name string
		val  any
		want string
	}{
		{"nil", nil, "nil"},
		{"int", 42, "42"},
		{"negative", -7, "-7"},
		{"float", 1.5, "1.5"},
		{"bool", true, "true"},
		{"string", "a\"b", `"a\"b"`},
		{"named uint", Num(11), "Num(11)"},
		{"named string", Label("x"), `Label("x")`},
		{"slice", []Num{1, 2}, "[Num(1), Num(2)]"},
		{"empty slice", []int{}, "[]"},
		{"nil slice", []int(nil), "[]"},
		{"named slice", IDs{3}, "IDs([Num(3)])"},
		{"array", [2]int{1, 2}, "[1, 2]"},
		{"map sorted", map[int]string{10: "b", 2: "a"}, `{2: "a", 10: "b"}`},
		{"set", map[Num]struct{}{2: {}, 1: {}}, "{Num(1), Num(2)}"},
		{"empty map", map[string]int{}, "{}"},
		{"generic struct", Pair[int, string]{1, "x"}, `Pair { Left: 1, Right: "x" }`},
		{"anonymous struct", struct{ A int }{5}, "{ A: 5 }"},
		{"unit struct", Unit{}, "Unit"},
		{"pointer transparent", &Pair[int, int]{1, 2}, "Pair { Left: 1, Right: 2 }"},
		{"nil pointer", (*Node)(nil), "nil"},
		{"linked", &Node{Name: "a", Next: &Node{Name: "b"}}, `Node { Name: "a", Next: Node { Name: "b", Next: nil } }`},
		{"unexported field", struct{ x int }{3}, "{ x: 3 }"},
		{"debugger", Opaque{1}, "Opaque(***)"},
		{"debugger in slice", []Opaque{{1}}, "[Opaque(***)]"},
		{"unwrapper", Box{inner: Num(9)}, "Num(9)"},
		{"interface slice", []any{1, "a", nil}, `[1, "a", nil]`},
		{"pointer receiver on addressable field", &Holder{}, "Holder { D: PtrDebug! }"},
		{"func", func() {}, "<func>"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := debugfmt.Sprint(tc.val)
			if got != tc.want {
				t.Fatalf("Sprint(%#v) = %q, want %q", tc.val, got, tc.want)
			}
		})
	}
}

func TestPretty(t *testing.T) {
	cases := []struct {
		name string
		val  any
		want string
	}{
		{"scalar", 7, "7"},
		{"named scalar", Num(11), `
Num(
    11,
)`},
		{"slice", []int{1, 2, 3}, `
[
    1,
    2,
    3,
]`},
		{"empty slice", []int{}, "[]"},
		{"unit struct", Unit{}, "Unit"},
		{"struct with nested slice", Pair[[]int, int]{Left: []int{1}, Right: 2}, `
Pair {
    Left: [
        1,
    ],
    Right: 2,
}`},
		{"map of slices", map[int][]int{1: {2, 3}}, `
{
    1: [
        2,
        3,
    ],
}`},
		{"set", map[int]struct{}{2: {}, 1: {}}, `
{
    1,
    2,
}`},
		{"slice of named", []Num{5}, `
[
    Num(
        5,
    ),
]`},
		{"debugger stays single line", []Opaque{{1}}, `
[
    Opaque(***),
]`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			want := strings.TrimPrefix(tc.want, "\n")
			if diff := cmp.Diff(want, debugfmt.Sprintp(tc.val)); diff != "" {
				t.Fatalf("Sprintp mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestOptions(t *testing.T) {
	p := debugfmt.New(debugfmt.WithIndent("\t"))
	if got, want := p.Pretty([]int{1}), "[\n\t1,\n]"; got != want {
		t.Fatalf("Pretty with tab indent = %q, want %q", got, want)
	}

	n := &Node{Name: "loop"}
	n.Next = n
	shallow := debugfmt.New(debugfmt.WithMaxDepth(2))
	got := shallow.Compact(n)
	if !strings.Contains(got, debugfmt.Elided) {
		t.Fatalf("cyclic value should be elided, got %q", got)
	}

	// Invalid options keep the defaults.
	def := debugfmt.New(debugfmt.WithIndent(""), debugfmt.WithMaxDepth(-1))
	if got, want := def.Pretty([]int{1}), "[\n    1,\n]"; got != want {
		t.Fatalf("Pretty with default options = %q, want %q", got, want)
	}
}

func TestDeterministicMaps(t *testing.T) {
	m := map[string]int{}
	for _, k := range []string{"q", "w", "e", "r", "t", "y"} {
		m[k] = len(k)
	}
	first := debugfmt.Sprint(m)
	for i := 0; i < 50; i++ {
		if got := debugfmt.Sprint(m); got != first {
			t.Fatalf("map rendering not deterministic: %q vs %q", got, first)
		}
	}
	if first != `{"e": 1, "q": 1, "r": 1, "t": 1, "w": 1, "y": 1}` {
		t.Fatalf("unexpected map rendering %q", first)
	}
}
