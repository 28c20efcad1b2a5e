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

package source

import (
	"fmt"
	"strings"

	"github.com/matthewzu/simple-build-framework/pkg/errors"
	"github.com/matthewzu/simple-build-framework/pkg/types"
)

// FlagAll is the flag table key applied to every file of a language.
const FlagAll = "all"

// FlagTable maps a file basename, or FlagAll, to compiler flags.
type FlagTable map[string]string

// For returns the flags for basename: the FlagAll entry followed by the
// per-file entry, joined by a single space.
func (t FlagTable) For(basename string) string {
	return JoinFlags(t[FlagAll], t[basename])
}

// ResolveFlags selects the table matching kind and returns the flags for basename.
func ResolveFlags(basename string, kind types.SourceKind, cflags, cppflags, asmflags FlagTable) (string, error) {
	switch kind {
	case types.SourceC:
		return cflags.For(basename), nil
	case types.SourceCPP:
		return cppflags.For(basename), nil
	case types.SourceASM:
		return asmflags.For(basename), nil
	default:
		return "", errors.New(errors.ErrCodeInvalidLanguageKind,
			fmt.Sprintf("unsupported source kind %q for %s", kind, basename))
	}
}

// JoinFlags joins the non-empty parts with a single space.
func JoinFlags(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}
