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

package renamed

import (
	"go.uber.org/zap"

	"dirpx.dev/renamed/apis"
	"dirpx.dev/renamed/name"
	"dirpx.dev/renamed/short"
)

// SetName registers text as the name of leaf.
func (ns *Namespace) SetName(leaf apis.Nameable, text string) (apis.Outcome, error) {
	s := ns.st.Load()
	id := apis.EraseWith(leaf, s.printer)
	open, close := id.Brackets(s.cfg)
	return ns.set(s, id, name.NewText(id.Prefix(), text, open, close))
}

// SetNameAndShort registers text together with the leaf's shortened form, as
// in "⟪ID|1234|foo⟫". A leaf without a shortener gets a plain text name.
func (ns *Namespace) SetNameAndShort(leaf apis.Nameable, text string) (apis.Outcome, error) {
	s := ns.st.Load()
	id := apis.EraseWith(leaf, s.printer)
	open, close := id.Brackets(s.cfg)
	fragment, ok := short.Leaf(s.shorts, id, s.cfg.StrictPrefixes)
	if !ok {
		return ns.set(s, id, name.NewText("", text, open, close))
	}
	return ns.set(s, id, name.NewTextShort(fragment, text, open, close))
}

// SetShort registers the leaf's shortened form as its name. A leaf without a
// shortener is named by its display text.
func (ns *Namespace) SetShort(leaf apis.Nameable) (apis.Outcome, error) {
	s := ns.st.Load()
	id := apis.EraseWith(leaf, s.printer)
	open, close := id.Brackets(s.cfg)
	fragment, ok := short.Leaf(s.shorts, id, s.cfg.StrictPrefixes)
	if !ok {
		fragment = id.String()
	}
	return ns.set(s, id, name.NewShort(fragment, open, close))
}

// SetSerial registers the next serial number of the namespace as the name of
// leaf. Serials start at zero and are consumed even when the name is not
// stored.
func (ns *Namespace) SetSerial(leaf apis.Nameable) (apis.Outcome, error) {
	s := ns.st.Load()
	id := apis.EraseWith(leaf, s.printer)
	open, close := id.Brackets(s.cfg)
	serial := ns.serial.Add(1) - 1
	return ns.set(s, id, name.NewSerial(id.Prefix(), serial, open, close))
}

func (ns *Namespace) set(s *state, id apis.AnyNameable, n name.Name) (apis.Outcome, error) {
	outcome, err := s.reg.Set(id.Key(), n)
	if err != nil {
		ns.env.Log.Error("cannot set name", zap.Stringer("name", n), zap.Error(err))
	}
	return outcome, err
}

// Name returns the registered name of leaf.
func (ns *Namespace) Name(leaf apis.Nameable) (name.Name, bool) {
	s := ns.st.Load()
	return s.reg.Lookup(apis.EraseWith(leaf, s.printer).Key())
}

// Resolve renders leaf the way it appears in rewritten text: its registered
// name, else its bracketed shortened form, else its compact debug text.
func (ns *Namespace) Resolve(leaf apis.Nameable) string {
	s := ns.st.Load()
	id := apis.EraseWith(leaf, s.printer)
	if text, ok := s.res.Resolve(id, s.cfg); ok {
		return text
	}
	return s.printer.Compact(leaf)
}

// WithName names id in the default namespace and returns it, so that a
// value can be named where it is created:
//
//	user := renamed.WithName(UserID(42), "alice")
func WithName[T apis.Nameable](id T, text string) T {
	_, _ = Default().SetName(id, text)
	return id
}

// WithNameAndShort is WithName with the shortened form kept in the name.
func WithNameAndShort[T apis.Nameable](id T, text string) T {
	_, _ = Default().SetNameAndShort(id, text)
	return id
}

// WithShort names id by its shortened form in the default namespace.
func WithShort[T apis.Nameable](id T) T {
	_, _ = Default().SetShort(id)
	return id
}

// WithSerial names id by the next serial number of the default namespace.
func WithSerial[T apis.Nameable](id T) T {
	_, _ = Default().SetSerial(id)
	return id
}

// Resolve renders leaf with the default namespace.
func Resolve(leaf apis.Nameable) string {
	return Default().Resolve(leaf)
}
