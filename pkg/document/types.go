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

package document

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/matthewzu/simple-build-framework/pkg/errors"
	"github.com/matthewzu/simple-build-framework/pkg/source"
)

// EntityType is the value of a declaration's "type" field.
type EntityType string

// Declaration types.
const (
	TypeVariable    EntityType = "var"
	TypeLibrary     EntityType = "lib"
	TypeApplication EntityType = "app"
	TypeTarget      EntityType = "target"
)

// String returns the string representation of the entity type.
func (t EntityType) String() string {
	return string(t)
}

// IsValid reports whether t is a known declaration type.
func (t EntityType) IsValid() bool {
	switch t {
	case TypeVariable, TypeLibrary, TypeApplication, TypeTarget:
		return true
	default:
		return false
	}
}

// SupportedTypes returns all declaration types.
func SupportedTypes() []EntityType {
	return []EntityType{TypeVariable, TypeLibrary, TypeApplication, TypeTarget}
}

// VariableSpec is a "var" declaration.
type VariableSpec struct {
	Desc string `yaml:"desc"`
	Val  string `yaml:"val"`
}

// ModuleSpec holds the fields shared by "lib" and "app" declarations.
type ModuleSpec struct {
	Desc     string    `yaml:"desc"`
	Src      []string  `yaml:"src"`
	CFlags   FlagTable `yaml:"cflags"`
	CPPFlags FlagTable `yaml:"cppflags"`
	ASMFlags FlagTable `yaml:"asmflags"`

	// Opt names a Kconfig feature that must be enabled for the module to be
	// built. Empty means always built.
	Opt string `yaml:"opt"`
}

// LibrarySpec is a "lib" declaration.
type LibrarySpec struct {
	ModuleSpec `yaml:",inline"`
	HdrDirs    []string `yaml:"hdrdirs"`
}

// ApplicationSpec is an "app" declaration.
type ApplicationSpec struct {
	ModuleSpec `yaml:",inline"`
	LinkFlags  string   `yaml:"linkflags"`
	Libs       []string `yaml:"libs"`
}

// TargetSpec is a "target" declaration.
type TargetSpec struct {
	Desc string   `yaml:"desc"`
	Cmd  string   `yaml:"cmd"`
	Deps []string `yaml:"deps"`
}

// allowedKeys lists the fields each declaration type understands.
var allowedKeys = map[EntityType][]string{
	TypeVariable:    {"type", "desc", "val"},
	TypeLibrary:     {"type", "desc", "src", "cflags", "cppflags", "asmflags", "opt", "hdrdirs"},
	TypeApplication: {"type", "desc", "src", "cflags", "cppflags", "asmflags", "opt", "linkflags", "libs"},
	TypeTarget:      {"type", "desc", "cmd", "deps"},
}

// FlagTable is a per-file compiler flag table. It accepts a mapping, or a
// list holding exactly one mapping.
type FlagTable source.FlagTable

// UnmarshalYAML implements yaml.Unmarshaler.
func (f *FlagTable) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.MappingNode:
		// decoded below
	case yaml.SequenceNode:
		if len(n.Content) != 1 || n.Content[0].Kind != yaml.MappingNode {
			return flagSpecError(n, "a flag list must hold exactly one mapping")
		}
		n = n.Content[0]
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			*f = nil
			return nil
		}
		return flagSpecError(n, "flags must be a mapping of file name to flags")
	default:
		return flagSpecError(n, "flags must be a mapping of file name to flags")
	}

	table := make(FlagTable, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if k.Kind != yaml.ScalarNode || v.Kind != yaml.ScalarNode {
			return flagSpecError(v, "flag values must be strings")
		}
		switch v.ShortTag() {
		case "!!null":
			table[k.Value] = ""
		case "!!str":
			table[k.Value] = v.Value
		default:
			return flagSpecError(v, fmt.Sprintf("flags of %q must be a string, got %s", k.Value, v.ShortTag()))
		}
	}
	*f = table
	return nil
}

func flagSpecError(n *yaml.Node, msg string) error {
	return errors.NewWithContext(errors.ErrCodeInvalidFlagSpec, msg,
		map[string]any{"line": n.Line, "column": n.Column})
}
