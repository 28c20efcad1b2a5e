// Copyright (c) 2025, Xiaofeng Zu.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package types

import (
	"fmt"
	"strings"

	"github.com/matthewzu/simple-build-framework/pkg/errors"
)

// Backend identifies the build-script dialect to emit.
type Backend string

// Backend constants for supported generators.
const (
	BackendMake  Backend = "make"
	BackendNinja Backend = "ninja"
)

// String returns the string representation of the backend.
func (b Backend) String() string {
	return string(b)
}

// IsValid reports whether b is a supported backend.
func (b Backend) IsValid() bool {
	return b == BackendMake || b == BackendNinja
}

// ParseBackend converts a string to a Backend.
// Returns an UNSUPPORTED_BACKEND error if the string names no backend.
func ParseBackend(s string) (Backend, error) {
	switch b := Backend(strings.ToLower(strings.TrimSpace(s))); b {
	case BackendMake, BackendNinja:
		return b, nil
	default:
		return "", errors.New(errors.ErrCodeUnsupportedBackend,
			fmt.Sprintf("unsupported generator: %q (supported values: %s)", s, SupportedBackends()))
	}
}

// SupportedBackends returns all supported backends.
func SupportedBackends() []Backend {
	return []Backend{BackendMake, BackendNinja}
}

// SourceKind is the language of a source file.
type SourceKind string

// SourceKind constants, one per compiler flag table.
const (
	SourceC   SourceKind = "c"
	SourceCPP SourceKind = "cpp"
	SourceASM SourceKind = "asm"
)

// String returns the string representation of the source kind.
func (k SourceKind) String() string {
	return string(k)
}

// IsValid reports whether k is a known source kind.
func (k SourceKind) IsValid() bool {
	switch k {
	case SourceC, SourceCPP, SourceASM:
		return true
	default:
		return false
	}
}

// SupportedSourceKinds returns all source kinds in discovery order.
func SupportedSourceKinds() []SourceKind {
	return []SourceKind{SourceC, SourceCPP, SourceASM}
}
