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

package entity

import (
	"github.com/matthewzu/simple-build-framework/pkg/defaults"
)

// LibrarySpec declares a static library.
type LibrarySpec struct {
	ModuleSpec

	// HeaderDirs are public include directories exported to applications.
	// They are kept verbatim and resolved by the build tool.
	HeaderDirs []string
}

// Library is a module packaged into a static archive.
type Library struct {
	*Module

	HeaderDirs []string
	Archive    string
}

// ArchivePath returns the archive location inside the project tree.
func (l *Library) ArchivePath() string {
	return ProjectRootRef + "/" + defaults.LibraryDir + "/" + l.Archive
}

func archiveName(name string) string {
	return "lib" + name + ".a"
}
