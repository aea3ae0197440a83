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

// Package renamed gives opaque identifiers human-friendly names in debug
// output.
//
// Identifiers such as UUIDs or hashes make logs and test failures hard to
// read. renamed lets a program register a name for an identifier value
// once, and then renders any value containing that identifier with the name
// in place of the raw text:
//
//	alice := renamed.WithNameAndShort(UserID(uuid.New()), "alice")
//	fmt.Println(renamed.Wrap(order))
//	// Order { Owner: ⟪U|8c1f07a2|alice⟫, Items: [Item(3)] }
//
// # Leaves and composites
//
// A leaf is any type implementing apis.Nameable: it has a display text
// (String) and optionally a shortener that abbreviates that text to a
// prefixed fragment such as "U|8c1f07a2". A leaf is identified by its
// compact debug text, so two leaves of different types with the same
// display text are different identifiers.
//
// Composites are walked by reflection to find their leaves. Types can take
// over with apis.Nameables, opt out with apis.NoNameables, and fields can be
// excluded with the `nameables:"skip"` tag. See package collect.
//
// # Names
//
// Four kinds of names exist, ordered by specificity: Serial ("⟪U|#003⟫"),
// Short ("⟪U|8c1f⟫"), Text ("⟪U|alice⟫") and TextShort ("⟪U|8c1f|alice⟫").
// Registering a name never lowers the specificity of an existing one, and
// a TextShort name is final. A leaf with no registered name renders as its
// bracketed shortened form, or as itself when it has no shortener.
//
// # Rendering
//
// Values are printed with package debugfmt, in compact or pretty mode, and
// then the debug text of every leaf is replaced by its name. In pretty mode
// a leaf may span several lines; its replacement keeps the indentation of
// the text it replaces. Use Wrap to get a value whose fmt verbs render this
// way: %v and %s are compact, %+v and %#v are pretty.
//
// # Namespaces
//
// All state lives in a Namespace: a name registry, a short-ID cache and the
// resolver that reads them, published as an immutable snapshot behind an
// atomic pointer. Reads never lock. Writers (SetConfig, SetRegistry,
// SetResolver, SetBuilder, ...) derive a new snapshot under a build mutex,
// rebuilding every component that was not explicitly set ("pinned"). Names
// and fragments migrate to rebuilt components.
//
// The package-level helpers use Default(). Tests should create their own
// namespace with New and render with WrapIn, or swap it in with SetDefault.
//
// # Observability
//
// Name registrations and short-ID collisions are logged through zap and
// counted in Prometheus counters (package metrics). A collision means two
// distinct identifiers share a fragment; it is reported, never fatal.
package renamed
