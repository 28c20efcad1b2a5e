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
	"path"
	"strings"

	"github.com/matthewzu/simple-build-framework/pkg/defaults"
	"github.com/matthewzu/simple-build-framework/pkg/types"
)

// Build tree references used in generated paths.
const (
	SourceRootRef  = "$(SRC_PATH)"
	ProjectRootRef = "$(PRJ_PATH)"

	// ConfigIncludeFlag makes the generated Kconfig header visible to every object.
	ConfigIncludeFlag = "-I" + ProjectRootRef + "/" + defaults.ConfigDir
)

// Object is a single compiled source file.
type Object struct {
	Module  string           `json:"module" yaml:"module"`
	Source  string           `json:"source" yaml:"source"`
	Kind    types.SourceKind `json:"kind" yaml:"kind"`
	Flags   string           `json:"flags,omitempty" yaml:"flags,omitempty"`
	Dir     string           `json:"dir" yaml:"dir"`
	Path    string           `json:"path" yaml:"path"`
	DepPath string           `json:"depPath" yaml:"depPath"`
}

func newObject(module, src string, kind types.SourceKind, flags string) *Object {
	dir := objectDir(module)
	stem := strings.TrimSuffix(path.Base(src), path.Ext(src))
	return &Object{
		Module:  module,
		Source:  src,
		Kind:    kind,
		Flags:   flags,
		Dir:     dir,
		Path:    dir + "/" + stem + ".o",
		DepPath: dir + "/" + stem + ".d",
	}
}

// Basename returns the file name of the source.
func (o *Object) Basename() string {
	return path.Base(o.Source)
}

// ObjectBasename returns the file name of the object.
func (o *Object) ObjectBasename() string {
	return path.Base(o.Path)
}

func objectDir(module string) string {
	return ProjectRootRef + "/" + defaults.ObjectDir + "/" + module
}
