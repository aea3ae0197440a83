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

package name

import (
	"fmt"
	"strings"
)

// Kind classifies how a Name was derived. Kinds are totally ordered by
// specificity: Serial < Short < Text < TextShort. A registered name may only be
// replaced by a name of strictly higher specificity, and TextShort is never
// replaced.
type Kind int

const (
	// Serial is a sequence number handed out on request.
	Serial Kind = iota
	// Short is the shortened fragment of the identifier.
	Short
	// Text is a caller-supplied name.
	Text
	// TextShort is a caller-supplied name shown together with the fragment.
	TextShort
)

// Specificity returns the rank of k in the specificity order.
func (k Kind) Specificity() int {
	return int(k)
}

// Supersedes reports whether a name of kind k may replace an existing name of
// kind old.
func (k Kind) Supersedes(old Kind) bool {
	if old == TextShort {
		return false
	}
	return k.Specificity() > old.Specificity()
}

// Valid reports whether k is one of the defined kinds.
func (k Kind) Valid() bool {
	return k >= Serial && k <= TextShort
}

func (k Kind) String() string {
	switch k {
	case Serial:
		return "Serial"
	case Short:
		return "Short"
	case Text:
		return "Name"
	case TextShort:
		return "NameShort"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// ParseKind converts a textual kind (case-insensitive) into a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "serial":
		return Serial, nil
	case "short":
		return Short, nil
	case "name":
		return Text, nil
	case "nameshort", "name_short":
		return TextShort, nil
	default:
		return Serial, fmt.Errorf("name: unknown kind %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("name: cannot marshal unknown kind %d", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	v, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}
