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
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/matthewzu/simple-build-framework/pkg/errors"
	"github.com/matthewzu/simple-build-framework/pkg/source"
)

// ModuleSpec is the declaration shared by libraries and applications.
type ModuleSpec struct {
	Name        string
	Description string

	// Sources are files or directories, possibly containing $(NAME) references.
	Sources []string

	CFlags   source.FlagTable
	CPPFlags source.FlagTable
	ASMFlags source.FlagTable
}

// Module is a named set of compiled objects.
type Module struct {
	Name        string
	Description string

	objects  []*Object
	byBase   map[string]*Object
	byPath   map[string]*Object
	shadowed []string
	missing  []string
}

// Objects returns the module's objects in discovery order.
func (m *Module) Objects() []*Object {
	out := make([]*Object, len(m.objects))
	copy(out, m.objects)
	return out
}

// Object returns the object compiled from the named source file.
func (m *Module) Object(basename string) (*Object, bool) {
	o, ok := m.byBase[basename]
	return o, ok
}

// ObjectPaths returns the object file paths in discovery order.
func (m *Module) ObjectPaths() []string {
	out := make([]string, len(m.objects))
	for i, o := range m.objects {
		out[i] = o.Path
	}
	return out
}

// ObjectDir returns the directory holding the module's objects.
func (m *Module) ObjectDir() string {
	return objectDir(m.Name)
}

// Shadowed returns source paths ignored because an earlier file already
// produced the same basename or object.
func (m *Module) Shadowed() []string {
	out := make([]string, len(m.shadowed))
	copy(out, m.shadowed)
	return out
}

// MissingSources returns source entries that did not exist on disk.
func (m *Module) MissingSources() []string {
	out := make([]string, len(m.missing))
	copy(out, m.missing)
	return out
}

// buildModule discovers and classifies every source entry of spec.
func (g *Graph) buildModule(spec ModuleSpec) (*Module, error) {
	m := &Module{
		Name:        spec.Name,
		Description: spec.Description,
		byBase:      make(map[string]*Object),
		byPath:      make(map[string]*Object),
	}

	for _, entry := range spec.Sources {
		p, err := g.vars.Dereference(entry)
		if err != nil {
			return nil, errors.WrapEntity(spec.Name, "resolve source path", err)
		}
		if !filepath.IsAbs(p) {
			p = filepath.Join(g.srcRoot, p)
		}

		res, err := source.Discover(p)
		if err != nil {
			return nil, errors.WrapEntity(spec.Name, "discover sources", err)
		}
		if res.Missing {
			slog.Warn("source path does not exist", "entity", spec.Name, "path", p)
			m.missing = append(m.missing, p)
			continue
		}

		for _, file := range res.Paths() {
			kind := res.Files[file]
			base := filepath.Base(file)

			flags, err := source.ResolveFlags(base, kind, spec.CFlags, spec.CPPFlags, spec.ASMFlags)
			if err != nil {
				return nil, errors.WrapEntity(spec.Name, "resolve flags", err)
			}

			obj := newObject(spec.Name, g.sourceRef(file), kind,
				source.JoinFlags(ConfigIncludeFlag, flags))

			if _, dup := m.byBase[base]; dup {
				m.shadowed = append(m.shadowed, file)
				continue
			}
			if _, dup := m.byPath[obj.Path]; dup {
				m.shadowed = append(m.shadowed, file)
				continue
			}

			m.byBase[base] = obj
			m.byPath[obj.Path] = obj
			m.objects = append(m.objects, obj)
		}
	}

	if len(m.shadowed) > 0 {
		slog.Debug("duplicate source names ignored", "entity", spec.Name, "files", m.shadowed)
	}

	return m, nil
}

// sourceRef rewrites file relative to the source root reference when it lies
// inside the source tree.
func (g *Graph) sourceRef(file string) string {
	rel, err := filepath.Rel(g.srcRoot, file)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return filepath.ToSlash(file)
	}
	return SourceRootRef + "/" + filepath.ToSlash(rel)
}
