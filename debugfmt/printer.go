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

// Package debugfmt renders arbitrary Go values as structural debug text.
//
// Two modes are supported. Compact renders everything on one line:
//
//	Order { ID: OrderID(1234), Items: [Item { SKU: "a" }], Tags: {"x", "y"} }
//
// Pretty renders one element or field per line, indented, with trailing commas:
//
//	Order {
//	    ID: OrderID(
//	        1234,
//	    ),
//	    ...
//	}
//
// The output is deterministic (map keys are sorted) so the same value always
// yields the same text. That text is used as a lookup key and as a search
// pattern, which is why the printer never consults fmt.Stringer: a leaf's
// debug text must stay distinct from its display text.
package debugfmt

import (
	"reflect"
	"strconv"
	"strings"

	uref "dirpx.dev/renamed/utils/reflect"
)

const (
	// DefaultIndent is one level of pretty indentation.
	DefaultIndent = "    "
	// DefaultMaxDepth bounds recursion into nested values (and pointer cycles).
	DefaultMaxDepth = 64
	// Elided replaces values nested deeper than the depth limit.
	Elided = "…"
)

// Debugger lets a type supply its own single-line debug text.
type Debugger interface {
	DebugString() string
}

// Unwrapper lets a wrapper type render as the value it wraps.
type Unwrapper interface {
	DebugValue() any
}

// Printer renders values as debug text. The zero value is not usable; use New
// or the package-level helpers.
type Printer struct {
	indent   string
	maxDepth int
}

// Option configures a Printer.
type Option func(*Printer)

// WithIndent sets the string used for one level of pretty indentation.
func WithIndent(indent string) Option {
	return func(p *Printer) {
		if indent != "" {
			p.indent = indent
		}
	}
}

// WithMaxDepth sets the recursion limit. Non-positive values keep the default.
func WithMaxDepth(depth int) Option {
	return func(p *Printer) {
		if depth > 0 {
			p.maxDepth = depth
		}
	}
}

// New constructs a Printer.
func New(opts ...Option) *Printer {
	p := &Printer{indent: DefaultIndent, maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var std = New()

// Sprint renders v in compact mode with the default printer.
func Sprint(v any) string { return std.Compact(v) }

// Sprintp renders v in pretty mode with the default printer.
func Sprintp(v any) string { return std.Pretty(v) }

// Compact renders v on a single line.
func (p *Printer) Compact(v any) string {
	return p.render(reflect.ValueOf(v), false, 0)
}

// Pretty renders v across multiple indented lines.
func (p *Printer) Pretty(v any) string {
	return p.render(reflect.ValueOf(v), true, 0)
}

func (p *Printer) render(v reflect.Value, pretty bool, depth int) string {
	if !v.IsValid() {
		return "nil"
	}
	if depth > p.maxDepth {
		return Elided
	}
	switch x := hook(v).(type) {
	case Debugger:
		return x.DebugString()
	case Unwrapper:
		return p.render(reflect.ValueOf(x.DebugValue()), pretty, depth+1)
	}

	t := v.Type()
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface:
		if v.IsNil() {
			return "nil"
		}
		return p.render(v.Elem(), pretty, depth+1)
	case reflect.Struct:
		return p.structure(v, pretty, depth)
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		if v.IsNil() {
			return "nil"
		}
		return "<" + v.Kind().String() + ">"
	}

	var body string
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		body = p.list(v, pretty, depth)
	case reflect.Map:
		body = p.dict(v, pretty, depth)
	default:
		body = scalar(v)
	}
	if uref.IsDeclared(t) {
		return p.wrap(uref.TypeName(t)+"(", body, ")", pretty)
	}
	return body
}

func (p *Printer) list(v reflect.Value, pretty bool, depth int) string {
	items := make([]string, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		items = append(items, p.render(v.Index(i), pretty, depth+1))
	}
	return p.group("[", items, "]", pretty)
}

func (p *Printer) dict(v reflect.Value, pretty bool, depth int) string {
	set := uref.IsSet(v.Type())
	keys := uref.SortedKeys(v)
	items := make([]string, 0, len(keys))
	for _, k := range keys {
		ks := p.render(k, pretty, depth+1)
		if set {
			items = append(items, ks)
			continue
		}
		items = append(items, ks+": "+p.render(v.MapIndex(k), pretty, depth+1))
	}
	return p.group("{", items, "}", pretty)
}

func (p *Printer) structure(v reflect.Value, pretty bool, depth int) string {
	t := v.Type()
	name := uref.TypeName(t)
	if t.NumField() == 0 {
		if name == "" {
			return "{}"
		}
		return name
	}

	fields := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		fields = append(fields, t.Field(i).Name+": "+p.render(v.Field(i), pretty, depth+1))
	}
	if !pretty {
		body := "{ " + strings.Join(fields, ", ") + " }"
		if name == "" {
			return body
		}
		return name + " " + body
	}
	open := "{"
	if name != "" {
		open = name + " {"
	}
	return p.block(open, fields, "}")
}

// group renders delimited items; empty groups stay on one line in both modes.
func (p *Printer) group(open string, items []string, close string, pretty bool) string {
	if len(items) == 0 {
		return open + close
	}
	if !pretty {
		return open + strings.Join(items, ", ") + close
	}
	return p.block(open, items, close)
}

// wrap renders a single-item newtype such as Num(11).
func (p *Printer) wrap(open, body, close string, pretty bool) string {
	if !pretty {
		return open + body + close
	}
	return p.block(open, []string{body}, close)
}

// block writes open, then each item indented on its own line followed by a
// comma, then close on its own line.
func (p *Printer) block(open string, items []string, close string) string {
	var b strings.Builder
	b.WriteString(open)
	b.WriteByte('\n')
	for _, item := range items {
		b.WriteString(p.indentLines(item))
		b.WriteString(",\n")
	}
	b.WriteString(close)
	return b.String()
}

// indentLines prefixes every line of s with one indentation level.
func (p *Printer) indentLines(s string) string {
	return p.indent + strings.ReplaceAll(s, "\n", "\n"+p.indent)
}

func scalar(v reflect.Value) string {
	switch v.Kind() {
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'g', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'g', -1, 64)
	case reflect.Complex64, reflect.Complex128:
		return strconv.FormatComplex(v.Complex(), 'g', -1, 128)
	case reflect.String:
		return strconv.Quote(v.String())
	default:
		return "<" + v.Kind().String() + ">"
	}
}

// hook returns the value (or its address, for pointer-receiver methods) when it
// implements Debugger or Unwrapper, and nil otherwise. Nil pointers never hook,
// so a method with a value receiver is not called through a nil pointer.
func hook(v reflect.Value) any {
	if v.Kind() == reflect.Ptr && v.IsNil() {
		return nil
	}
	if v.CanInterface() {
		switch x := v.Interface().(type) {
		case Debugger, Unwrapper:
			return x
		}
	}
	if v.CanAddr() && v.Addr().CanInterface() {
		switch x := v.Addr().Interface().(type) {
		case Debugger, Unwrapper:
			return x
		}
	}
	return nil
}
