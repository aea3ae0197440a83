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

// Package collect walks arbitrary values and gathers the nameable leaves they
// contain, in traversal order.
//
// A value contributes leaves as follows:
//   - apis.NoNameables: none.
//   - apis.Nameables: whatever its Nameables method returns.
//   - apis.Nameable: itself.
//   - pointers and interfaces: their target.
//   - slices and arrays: each element in order.
//   - maps: each entry in sorted key order, key before value.
//   - structs: each exported field in declaration order, except fields tagged
//     `nameables:"skip"`.
//
// Anything else contributes nothing.
package collect

import (
	"reflect"

	"dirpx.dev/renamed/apis"
	"dirpx.dev/renamed/debugfmt"
	uref "dirpx.dev/renamed/utils/reflect"
)

const (
	// TagKey is the struct tag consulted for per-field options.
	TagKey = "nameables"
	// TagSkip excludes a field from collection.
	TagSkip = "skip"
)

// Collector gathers leaves down to a bounded depth.
type Collector struct {
	maxDepth int
}

// New returns a Collector that stops descending below maxDepth. A
// non-positive maxDepth selects debugfmt.DefaultMaxDepth.
func New(maxDepth int) *Collector {
	if maxDepth <= 0 {
		maxDepth = debugfmt.DefaultMaxDepth
	}
	return &Collector{maxDepth: maxDepth}
}

var std = New(0)

// Collect gathers the leaves of v with the default depth limit.
func Collect(v any) []apis.AnyNameable {
	return std.Collect(v)
}

// All concatenates the leaves of each value. It is meant for hand-written
// Nameables implementations that expose a subset of their fields.
func All(values ...any) []apis.AnyNameable {
	var out []apis.AnyNameable
	for _, v := range values {
		out = append(out, std.Collect(v)...)
	}
	return out
}

// Collect gathers the leaves of v.
func (c *Collector) Collect(v any) []apis.AnyNameable {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer {
		// An addressable copy lets pointer-receiver methods of v and of its
		// fields be found.
		cp := reflect.New(rv.Type()).Elem()
		cp.Set(rv)
		rv = cp
	}
	var out []apis.AnyNameable
	c.walk(rv, 0, &out)
	return out
}

func (c *Collector) walk(v reflect.Value, depth int, out *[]apis.AnyNameable) {
	if !v.IsValid() || depth > c.maxDepth {
		return
	}
	if handled := c.hook(v, out); handled {
		return
	}

	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return
		}
		c.walk(v.Elem(), depth+1, out)
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			c.walk(v.Index(i), depth+1, out)
		}
	case reflect.Map:
		for _, k := range uref.SortedKeys(v) {
			c.walk(k, depth+1, out)
			c.walk(v.MapIndex(k), depth+1, out)
		}
	case reflect.Struct:
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() || f.Tag.Get(TagKey) == TagSkip {
				continue
			}
			c.walk(v.Field(i), depth+1, out)
		}
	}
}

// hook applies the collection interfaces to v, or to its address when the
// methods have pointer receivers. It reports whether v was fully handled.
func (c *Collector) hook(v reflect.Value, out *[]apis.AnyNameable) bool {
	for _, x := range candidates(v) {
		switch n := x.(type) {
		case apis.NoNameables:
			return true
		case apis.Nameables:
			*out = append(*out, n.Nameables()...)
			return true
		case apis.Nameable:
			*out = append(*out, apis.Erase(n))
			return true
		}
	}
	return false
}

// candidates returns the interface forms of v worth checking. Nil pointers
// are excluded so that value-receiver methods are never called through them.
func candidates(v reflect.Value) []any {
	if !v.CanInterface() {
		return nil
	}
	if v.Kind() == reflect.Pointer && v.IsNil() {
		return nil
	}
	if v.Kind() == reflect.Interface {
		return nil
	}
	out := []any{v.Interface()}
	if v.Kind() != reflect.Pointer && v.CanAddr() {
		out = append(out, v.Addr().Interface())
	}
	return out
}
