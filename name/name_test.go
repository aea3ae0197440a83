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

package name_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/renamed/name"
)

func TestKind_SpecificityOrder(t *testing.T) {
	order := []name.Kind{name.Serial, name.Short, name.Text, name.TextShort}
	for i := 1; i < len(order); i++ {
		assert.Less(t, order[i-1].Specificity(), order[i].Specificity(), "%v < %v", order[i-1], order[i])
	}
}

func TestKind_Supersedes(t *testing.T) {
	kinds := []name.Kind{name.Serial, name.Short, name.Text, name.TextShort}
	for _, old := range kinds {
		for _, incoming := range kinds {
			want := incoming.Specificity() > old.Specificity() && old != name.TextShort
			assert.Equal(t, want, incoming.Supersedes(old), "%v over %v", incoming, old)
		}
	}
	assert.False(t, name.TextShort.Supersedes(name.TextShort))
	assert.True(t, name.Text.Supersedes(name.Short))
	assert.False(t, name.Short.Supersedes(name.Text))
}

func TestKind_TextRoundTrip(t *testing.T) {
	for _, k := range []name.Kind{name.Serial, name.Short, name.Text, name.TextShort} {
		b, err := k.MarshalText()
		require.NoError(t, err)
		var got name.Kind
		require.NoError(t, got.UnmarshalText(b))
		assert.Equal(t, k, got)
	}

	_, err := name.Kind(9).MarshalText()
	assert.Error(t, err)
	assert.Equal(t, "Unknown(9)", name.Kind(9).String())

	var k name.Kind
	assert.Error(t, k.UnmarshalText([]byte("bogus")))
	got, err := name.ParseKind(" name_short ")
	require.NoError(t, err)
	assert.Equal(t, name.TextShort, got)
}

func TestName_String(t *testing.T) {
	cases := []struct {
		name string
		in   name.Name
		want string
	}{
		{"serial with prefix", name.NewSerial("ID", 7, "⟪", "⟫"), "⟪ID|#007⟫"},
		{"serial without prefix", name.NewSerial("", 1234, "⟪", "⟫"), "⟪#1234⟫"},
		{"short", name.NewShort("ID|1111", "⟪", "⟫"), "⟪ID|1111⟫"},
		{"text with prefix", name.NewText("ID", "foo", "⟪", "⟫"), "⟪ID|foo⟫"},
		{"text without prefix", name.NewText("", "foo", "<", ">"), "<foo>"},
		{"text and short", name.NewTextShort("ID|1234", "foo", "⟪", "⟫"), "⟪ID|1234|foo⟫"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.in.String())
		})
	}
}

func TestName_Comparable(t *testing.T) {
	a := name.NewText("ID", "foo", "⟪", "⟫")
	b := name.NewText("ID", "foo", "⟪", "⟫")
	c := name.NewText("ID", "bar", "⟪", "⟫")
	assert.True(t, a == b)
	assert.False(t, a == c)
}
