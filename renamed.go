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
	"encoding/json"
	"fmt"
	"io"
	"reflect"

	"gopkg.in/yaml.v3"

	"dirpx.dev/renamed/apis"
)

// Renamed wraps a value so that formatting it prints its debug text with
// every nameable leaf replaced by its name. %v, %s and String render compact
// text; %+v and %#v render pretty text.
//
// Equal compares the wrapped values only. With ==, two wrappers are equal when
// their values are equal and they render through the same namespace; Wrap
// binds the default namespace so that Wrap(v) == WrapIn(Default(), v).
// Serialization sees only the wrapped value.
type Renamed[T any] struct {
	v  T
	ns *Namespace
}

// Wrap wraps v for rendering with the current default namespace.
func Wrap[T any](v T) Renamed[T] {
	return Renamed[T]{v: v, ns: Default()}
}

// WrapIn wraps v for rendering with ns. A nil ns means the default namespace
// at rendering time.
func WrapIn[T any](ns *Namespace, v T) Renamed[T] {
	return Renamed[T]{v: v, ns: ns}
}

// Value returns the wrapped value.
func (r Renamed[T]) Value() T { return r.v }

// Equal reports whether r and o wrap deeply equal values, whatever namespace
// they render through.
func (r Renamed[T]) Equal(o Renamed[T]) bool {
	return reflect.DeepEqual(r.v, o.v)
}

func (r Renamed[T]) namespace() *Namespace {
	if r.ns != nil {
		return r.ns
	}
	return Default()
}

// String renders compact text.
func (r Renamed[T]) String() string {
	return r.namespace().Sprint(r.v)
}

// Pretty renders pretty text.
func (r Renamed[T]) Pretty() string {
	return r.namespace().Sprintp(r.v)
}

// Format implements fmt.Formatter.
func (r Renamed[T]) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v':
		if f.Flag('+') || f.Flag('#') {
			_, _ = io.WriteString(f, r.Pretty())
			return
		}
		_, _ = io.WriteString(f, r.String())
	case 's':
		_, _ = io.WriteString(f, r.String())
	case 'q':
		_, _ = fmt.Fprintf(f, "%q", r.String())
	default:
		_, _ = fmt.Fprintf(f, fmt.FormatString(f, verb), r.v)
	}
}

// DebugValue lets debug printers see through the wrapper.
func (r Renamed[T]) DebugValue() any { return r.v }

// Nameables returns the leaves of the wrapped value.
func (r Renamed[T]) Nameables() []apis.AnyNameable {
	return r.namespace().Collect(r.v)
}

// MarshalJSON encodes the wrapped value.
func (r Renamed[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.v)
}

// UnmarshalJSON decodes into the wrapped value.
func (r *Renamed[T]) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &r.v)
}

// MarshalYAML encodes the wrapped value.
func (r Renamed[T]) MarshalYAML() (any, error) {
	return r.v, nil
}

// UnmarshalYAML decodes into the wrapped value.
func (r *Renamed[T]) UnmarshalYAML(node *yaml.Node) error {
	return node.Decode(&r.v)
}
