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

// ApplicationSpec declares an executable.
type ApplicationSpec struct {
	ModuleSpec

	LinkFlags string

	// Libraries name previously declared libraries, in link order.
	Libraries []string
}

// Application is a module linked into an executable.
type Application struct {
	*Module

	LinkFlags string

	// DepNames is " foo bar" for libraries foo and bar.
	DepNames string
	// LibFlags is " -lfoo -lbar".
	LibFlags string
	// HeaderFlags is " -I<dir>" for every header directory of every library.
	HeaderFlags string

	libraries []*Library
}

// Libraries returns the resolved library dependencies in declaration order.
func (a *Application) Libraries() []*Library {
	out := make([]*Library, len(a.libraries))
	copy(out, a.libraries)
	return out
}

// OutputPath returns the executable location inside the project tree.
func (a *Application) OutputPath() string {
	return ProjectRootRef + "/" + defaults.ApplicationDir + "/" + a.Name
}

func (a *Application) link(lib *Library) {
	a.libraries = append(a.libraries, lib)
	a.DepNames += " " + lib.Name
	a.LibFlags += " -l" + lib.Name
	for _, dir := range lib.HeaderDirs {
		a.HeaderFlags += " -I" + dir
	}
}
