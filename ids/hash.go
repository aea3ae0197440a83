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

package ids

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"dirpx.dev/renamed/apis"
)

// ErrHashLength is returned when decoding a hash of the wrong size.
var ErrHashLength = errors.New("renamed(ids): hash must be 32 bytes")

// Hash is a nameable 32-byte digest displayed in hex. It shortens to its
// first six hex digits: "H|deadbe".
type Hash [32]byte

// Sum returns the SHA-256 hash of data.
func Sum(data []byte) Hash { return Hash(sha256.Sum256(data)) }

// ParseHash decodes 64 hex digits.
func ParseHash(s string) (Hash, error) {
	var h Hash
	err := h.UnmarshalText([]byte(s))
	return h, err
}

func (h Hash) String() string { return hex.EncodeToString(h[:]) }

// DebugString renders "Hash(hex)" instead of 32 raw bytes.
func (h Hash) DebugString() string { return "Hash(" + h.String() + ")" }

// Shortener implements apis.Nameable.
func (Hash) Shortener() *apis.Shortener {
	return &apis.Shortener{Length: 6, Prefix: "H"}
}

// MarshalText implements encoding.TextMarshaler.
func (h Hash) MarshalText() ([]byte, error) { return []byte(h.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (h *Hash) UnmarshalText(data []byte) error {
	if hex.DecodedLen(len(data)) != len(h) {
		return fmt.Errorf("%w: got %d hex digits", ErrHashLength, len(data))
	}
	_, err := hex.Decode(h[:], data)
	return err
}
