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

package collect_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"dirpx.dev/renamed/apis"
	"dirpx.dev/renamed/collect"
)

type ID uint64

func (i ID) String() string { return strconv.FormatUint(uint64(i), 10) }
func (ID) Shortener() *apis.Shortener {
	return &apis.Shortener{Length: 4, Prefix: "ID"}
}

// Ref implements Nameable on its pointer only.
type Ref struct{ N int }

func (r *Ref) String() string            { return strconv.Itoa(r.N) }
func (*Ref) Shortener() *apis.Shortener { return nil }

type Opaque struct{ Inner ID }

func (Opaque) NoNameables() {}

type Manual struct {
	Shown  ID
	Hidden ID
}

func (m Manual) Nameables() []apis.AnyNameable { return collect.All(m.Shown) }

type Record struct {
	First  ID
	Secret ID `nameables:"skip"`
	hidden ID
	Refs   []Ref
	Nested *Record
}

func keys(leaves []apis.AnyNameable) []string {
	out := make([]string, 0, len(leaves))
	for _, l := range leaves {
		out = append(out, l.Key())
	}
	return out
}

func TestCollect(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want []string
	}{
		{"nil", nil, []string{}},
		{"leaf", ID(1), []string{"ID(1)"}},
		{"pointer to leaf", func() any { v := ID(2); return &v }(), []string{"ID(2)"}},
		{"slice", []ID{3, 1, 2}, []string{"ID(3)", "ID(1)", "ID(2)"}},
		{"array", [2]ID{5, 6}, []string{"ID(5)", "ID(6)"}},
		{"interfaces", []any{ID(1), nil, "text", ID(2)}, []string{"ID(1)", "ID(2)"}},
		{"map values by sorted key", map[string]ID{"b": 2, "a": 1}, []string{"ID(1)", "ID(2)"}},
		{
			"map key before value",
			map[ID]ID{2: 20, 1: 10},
			[]string{"ID(1)", "ID(10)", "ID(2)", "ID(20)"},
		},
		{"set", map[ID]struct{}{9: {}, 7: {}}, []string{"ID(7)", "ID(9)"}},
		{"opaque", Opaque{Inner: 1}, []string{}},
		{"manual", Manual{Shown: 1, Hidden: 2}, []string{"ID(1)"}},
		{"pointer receiver in slice", []Ref{{N: 4}}, []string{"Ref { N: 4 }"}},
		{"scalar", 42, []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, keys(collect.Collect(tc.in)))
		})
	}
}

func TestCollect_StructFields(t *testing.T) {
	r := Record{
		First:  1,
		Secret: 2,
		hidden: 3,
		Refs:   []Ref{{N: 4}},
		Nested: &Record{First: 5, Secret: 6},
	}
	assert.Equal(t, []string{"ID(1)", "Ref { N: 4 }", "ID(5)"}, keys(collect.Collect(r)))
	assert.Equal(t, []string{"ID(1)", "Ref { N: 4 }", "ID(5)"}, keys(collect.Collect(&r)))
}

func TestCollect_DepthLimit(t *testing.T) {
	deep := [][][]ID{{{1}}}
	assert.Equal(t, []string{"ID(1)"}, keys(collect.New(3).Collect(deep)))
	assert.Empty(t, collect.New(2).Collect(deep))
}

func TestAll(t *testing.T) {
	got := collect.All(ID(1), []ID{2, 3}, Opaque{Inner: 4})
	assert.Equal(t, []string{"ID(1)", "ID(2)", "ID(3)"}, keys(got))
}
