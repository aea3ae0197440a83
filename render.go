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
	"dirpx.dev/renamed/apis"
	"dirpx.dev/renamed/substitute"
)

// Mode selects compact or pretty rendering.
type Mode = substitute.Mode

// Rendering modes.
const (
	Compact = substitute.Compact
	Pretty  = substitute.Pretty
)

// Sprint renders v as compact debug text with every nameable leaf replaced
// by its name.
func (ns *Namespace) Sprint(v any) string {
	return ns.render(v, Compact)
}

// Sprintp is Sprint in pretty mode. Replacements keep the indentation of the
// text they replace.
func (ns *Namespace) Sprintp(v any) string {
	return ns.render(v, Pretty)
}

func (ns *Namespace) render(v any, mode Mode) string {
	s := ns.st.Load()
	var text string
	if mode == Pretty {
		text = s.printer.Pretty(v)
	} else {
		text = s.printer.Compact(v)
	}
	return ns.rewrite(s, text, s.collector.Collect(v), mode)
}

// Render rewrites debug text that was produced elsewhere, replacing the debug
// text of each leaf with its name. Text printed in pretty mode must be
// rendered with Pretty.
func (ns *Namespace) Render(text string, leaves []apis.AnyNameable, mode Mode) string {
	return ns.rewrite(ns.st.Load(), text, leaves, mode)
}

// Collect returns the leaves of v, bounded by the configured depth. Their
// keys are printed the way this namespace prints them.
func (ns *Namespace) Collect(v any) []apis.AnyNameable {
	s := ns.st.Load()
	leaves := s.collector.Collect(v)
	for i := range leaves {
		leaves[i] = leaves[i].WithPrinter(s.printer)
	}
	return leaves
}

func (ns *Namespace) rewrite(s *state, text string, leaves []apis.AnyNameable, mode Mode) string {
	reps := substitute.Plan(leaves, mode, s.printer, s.res, s.cfg)
	return s.engine.Apply(text, reps, mode)
}

// Sprint renders v with the default namespace.
func Sprint(v any) string {
	return Default().Sprint(v)
}

// Sprintp renders v in pretty mode with the default namespace.
func Sprintp(v any) string {
	return Default().Sprintp(v)
}
