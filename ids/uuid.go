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

// Package ids provides ready-made nameable identifier types.
package ids

import (
	"github.com/google/uuid"

	"dirpx.dev/renamed/apis"
)

// UUID is a nameable RFC 4122 identifier. It shortens to its first eight
// hex digits: "U|8c1f07a2".
type UUID uuid.UUID

// NewUUID returns a random (version 4) UUID.
func NewUUID() UUID { return UUID(uuid.New()) }

// ParseUUID parses any textual form accepted by uuid.Parse.
func ParseUUID(s string) (UUID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, err
	}
	return UUID(u), nil
}

// MustParseUUID is like ParseUUID but panics on error.
func MustParseUUID(s string) UUID { return UUID(uuid.MustParse(s)) }

func (u UUID) String() string { return uuid.UUID(u).String() }

// DebugString renders "UUID(xxxxxxxx-...)" instead of sixteen raw bytes.
func (u UUID) DebugString() string { return "UUID(" + u.String() + ")" }

// Shortener implements apis.Nameable.
func (UUID) Shortener() *apis.Shortener {
	return &apis.Shortener{Length: 8, Prefix: "U"}
}

// MarshalText implements encoding.TextMarshaler.
func (u UUID) MarshalText() ([]byte, error) { return uuid.UUID(u).MarshalText() }

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *UUID) UnmarshalText(data []byte) error {
	return (*uuid.UUID)(u).UnmarshalText(data)
}
