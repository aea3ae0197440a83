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

package strategy

import (
	"dirpx.dev/renamed/apis"
)

// NewRegistryStrategy creates an apis.Strategy that renders names stored in reg.
func NewRegistryStrategy(reg apis.Registry) apis.Strategy {
	return &registryStrategy{reg: reg}
}

// registryStrategy consults a name registry keyed by the leaf's debug text.
type registryStrategy struct {
	reg apis.Registry
}

// Ensure registryStrategy implements apis.Strategy.
var _ apis.Strategy = (*registryStrategy)(nil)

// TryResolve looks up the leaf's key in the registry.
func (s *registryStrategy) TryResolve(leaf apis.AnyNameable, _ apis.Config) (string, bool) {
	if leaf.IsZero() || s.reg == nil {
		return "", false
	}
	n, ok := s.reg.Lookup(leaf.Key())
	if !ok {
		return "", false
	}
	return n.String(), true
}
