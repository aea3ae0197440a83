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

// Package name defines the display form registered for an identifier.
package name

import "fmt"

// Name is the display form of an identifier. Its Kind decides which of the
// other fields are rendered.
type Name struct {
	// Prefix is the type tag of the identifier's shortener, if any.
	Prefix string
	// Kind selects the rendering.
	Kind Kind
	// Serial is the sequence number of a Serial name.
	Serial uint64
	// Short is the shortened fragment of a Short or TextShort name. It already
	// carries the prefix.
	Short string
	// Text is the caller-supplied name of a Text or TextShort name.
	Text string
	// Open and Close decorate the rendered name.
	Open, Close string
}

// NewSerial returns a Serial name.
func NewSerial(prefix string, serial uint64, open, close string) Name {
	return Name{Prefix: prefix, Kind: Serial, Serial: serial, Open: open, Close: close}
}

// NewShort returns a Short name for an already shortened fragment.
func NewShort(fragment, open, close string) Name {
	return Name{Kind: Short, Short: fragment, Open: open, Close: close}
}

// NewText returns a Text name.
func NewText(prefix, text, open, close string) Name {
	return Name{Prefix: prefix, Kind: Text, Text: text, Open: open, Close: close}
}

// NewTextShort returns a TextShort name.
func NewTextShort(fragment, text, open, close string) Name {
	return Name{Kind: TextShort, Short: fragment, Text: text, Open: open, Close: close}
}

// Body renders the name without brackets.
func (n Name) Body() string {
	switch n.Kind {
	case Serial:
		return n.prefixed(fmt.Sprintf("#%03d", n.Serial))
	case Short:
		return n.Short
	case Text:
		return n.prefixed(n.Text)
	case TextShort:
		return n.Short + "|" + n.Text
	default:
		return n.Text
	}
}

// String renders the name wrapped in its brackets, e.g. "⟪ID|1234|foo⟫".
func (n Name) String() string {
	return n.Open + n.Body() + n.Close
}

func (n Name) prefixed(s string) string {
	if n.Prefix == "" {
		return s
	}
	return n.Prefix + "|" + s
}
