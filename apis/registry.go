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

package apis

import (
	"fmt"
	"reflect"

	"dirpx.dev/renamed/name"
)

// Registry maps an identifier's compact debug text to its display Name.
// Implementations must be safe for concurrent use.
type Registry interface {
	// Set stores n under key following the specificity rule: absent keys are
	// inserted; present keys are replaced only by a more specific name.
	Set(key string, n name.Name) (Outcome, error)
	// Lookup returns the name stored under key.
	Lookup(key string) (n name.Name, ok bool)
	// Entries returns a snapshot sorted by key.
	Entries() []Entry
	// Count returns the number of stored names.
	Count() int
	// Reset clears all names.
	Reset()
}

// Entry is a single (key, name) association in a Registry snapshot.
type Entry struct {
	// Key is the compact debug text of the identifier.
	Key string
	// Name is the associated display form.
	Name name.Name
}

// Outcome reports what Registry.Set did.
type Outcome int

const (
	// Inserted means the key was new.
	Inserted Outcome = iota
	// Unchanged means an identical name was already stored.
	Unchanged
	// Replaced means a less specific name was overwritten.
	Replaced
	// Kept means the stored name was at least as specific and stayed.
	Kept
)

func (o Outcome) String() string {
	switch o {
	case Inserted:
		return "inserted"
	case Unchanged:
		return "unchanged"
	case Replaced:
		return "replaced"
	case Kept:
		return "kept"
	default:
		return fmt.Sprintf("unknown(%d)", int(o))
	}
}

// ShortCache remembers which original text produced each short fragment, so
// that two identifiers sharing a fragment can be reported. It also tracks
// which leaf type owns each shortener prefix.
type ShortCache interface {
	// Record stores fragment -> original and reports whether a different
	// original was already stored for fragment.
	Record(fragment, original string) (collided bool)
	// Lookup returns the latest original recorded for fragment.
	Lookup(fragment string) (original string, ok bool)
	// Claim associates prefix with leaf type t. Claiming a prefix already
	// owned by another type fails.
	Claim(prefix string, t reflect.Type) error
	// Claims returns the prefix owners sorted by prefix.
	Claims() []PrefixClaim
	// Entries returns a snapshot sorted by fragment.
	Entries() []ShortEntry
	// Count returns the number of recorded fragments.
	Count() int
	// Reset clears fragments and prefix claims.
	Reset()
}

// ShortEntry is a single (fragment, original) association.
type ShortEntry struct {
	Fragment string
	Original string
}

// PrefixClaim records which leaf type owns a shortener prefix.
type PrefixClaim struct {
	Prefix string
	Type   reflect.Type
}
