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

package vars

import (
	"regexp"

	"github.com/matthewzu/simple-build-framework/pkg/types"
)

var identifierGroup = regexp.MustCompile(`\(([A-Za-z_][A-Za-z0-9_]*)\)`)

// FormatForBackend rewrites reference syntax left in text for the build tool.
// Ninja references are written $NAME, so "(NAME)" groups lose their
// parentheses. Make uses $(NAME) natively and text is returned unchanged.
func FormatForBackend(text string, backend types.Backend) string {
	if backend != types.BackendNinja {
		return text
	}
	return identifierGroup.ReplaceAllString(text, "$1")
}
