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

package defaults

import "time"

// Source tree files.
const (
	// RootDocument is the entity document loaded from the source root.
	RootDocument = "top.yml"

	// KconfigFile is the root Kconfig file whose presence enables the
	// configuration step.
	KconfigFile = "Kconfig"
)

// Project directory layout.
const (
	// MakeFile is the build script written by the make backend.
	MakeFile = "Makefile"

	// NinjaFile is the build script written by the ninja backend.
	NinjaFile = "build.ninja"

	// ConfigDir holds the Kconfig output of a project.
	ConfigDir = "config"

	// ConfigFile is the resolved feature selection inside ConfigDir.
	ConfigFile = "prj.config"

	// ConfigHeader is the generated C header inside ConfigDir.
	ConfigHeader = "config.h"

	// ObjectDir holds compiled objects, one sub-directory per module.
	ObjectDir = "objs"

	// LibraryDir holds library archives.
	LibraryDir = "libs"

	// ApplicationDir holds linked executables.
	ApplicationDir = "apps"
)

// Kconfig tool timeouts.
const (
	// KconfigTimeout bounds a non-interactive genconfig run.
	KconfigTimeout = 2 * time.Minute
)

// DirMode is the permission used when creating project directories.
const DirMode = 0o755

// FileMode is the permission used when writing build scripts.
const FileMode = 0o644
