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
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/matthewzu/simple-build-framework/pkg/errors"
	"github.com/matthewzu/simple-build-framework/pkg/vars"
)

// Kind identifies the entity kind that owns a name.
type Kind string

// Entity kinds sharing the rule namespace of a build script.
const (
	KindLibrary     Kind = "lib"
	KindApplication Kind = "app"
	KindTarget      Kind = "target"
)

// Shadow records a declaration ignored because the name was already taken
// by an entity of the same kind.
type Shadow struct {
	Kind Kind   `json:"kind" yaml:"kind"`
	Name string `json:"name" yaml:"name"`
}

// Graph is the set of resolved build entities of one project.
type Graph struct {
	vars    *vars.Store
	srcRoot string

	kinds map[string]Kind

	libraries    []*Library
	libByName    map[string]*Library
	applications []*Application
	appByName    map[string]*Application
	targets      []*Target
	targetByName map[string]*Target

	shadowed []Shadow
}

// NewGraph returns an empty graph resolving references through store.
// Relative source entries are resolved against srcRoot.
func NewGraph(store *vars.Store, srcRoot string) *Graph {
	return &Graph{
		vars:         store,
		srcRoot:      filepath.Clean(srcRoot),
		kinds:        make(map[string]Kind),
		libByName:    make(map[string]*Library),
		appByName:    make(map[string]*Application),
		targetByName: make(map[string]*Target),
	}
}

// Vars returns the variable store used for resolution.
func (g *Graph) Vars() *vars.Store {
	return g.vars
}

// claim checks name against the registered entities. It reports true when an
// entity of the same kind already owns the name.
func (g *Graph) claim(name string, kind Kind) (bool, error) {
	if strings.TrimSpace(name) == "" {
		return false, errors.New(errors.ErrCodeInvalidConfig, fmt.Sprintf("%s name is empty", kind))
	}
	owner, ok := g.kinds[name]
	if !ok {
		return false, nil
	}
	if owner != kind {
		return false, errors.NewEntity(errors.ErrCodeDuplicateEntity, name,
			fmt.Sprintf("already declared as %s, cannot redeclare as %s", owner, kind))
	}
	g.shadowed = append(g.shadowed, Shadow{Kind: kind, Name: name})
	slog.Debug("duplicate declaration ignored", "kind", kind, "entity", name)
	return true, nil
}

// AddLibrary builds and registers a library. If a library of the same name
// exists it is returned unchanged.
func (g *Graph) AddLibrary(spec LibrarySpec) (*Library, error) {
	taken, err := g.claim(spec.Name, KindLibrary)
	if err != nil {
		return nil, err
	}
	if taken {
		return g.libByName[spec.Name], nil
	}

	m, err := g.buildModule(spec.ModuleSpec)
	if err != nil {
		return nil, err
	}

	lib := &Library{
		Module:     m,
		HeaderDirs: append([]string(nil), spec.HeaderDirs...),
		Archive:    archiveName(spec.Name),
	}

	g.kinds[lib.Name] = KindLibrary
	g.libByName[lib.Name] = lib
	g.libraries = append(g.libraries, lib)
	return lib, nil
}

// AddApplication builds and registers an application. Every library it
// names must already be registered.
func (g *Graph) AddApplication(spec ApplicationSpec) (*Application, error) {
	taken, err := g.claim(spec.Name, KindApplication)
	if err != nil {
		return nil, err
	}
	if taken {
		return g.appByName[spec.Name], nil
	}

	app := &Application{LinkFlags: spec.LinkFlags}
	for _, name := range spec.Libraries {
		lib, ok := g.libByName[name]
		if !ok {
			return nil, errors.NewEntity(errors.ErrCodeUnknownLibrary, spec.Name,
				fmt.Sprintf("library %q is not declared", name))
		}
		app.link(lib)
	}

	m, err := g.buildModule(spec.ModuleSpec)
	if err != nil {
		return nil, err
	}
	app.Module = m

	g.kinds[app.Name] = KindApplication
	g.appByName[app.Name] = app
	g.applications = append(g.applications, app)
	return app, nil
}

// AddTarget validates and registers a target.
func (g *Graph) AddTarget(spec TargetSpec) (*Target, error) {
	taken, err := g.claim(spec.Name, KindTarget)
	if err != nil {
		return nil, err
	}
	if taken {
		return g.targetByName[spec.Name], nil
	}

	cmd := strings.TrimSpace(spec.Command)
	if cmd == "" && len(spec.Deps) == 0 {
		return nil, errors.NewEntity(errors.ErrCodeInvalidTarget, spec.Name,
			"command and dependencies are both empty")
	}

	t := &Target{
		Name:        spec.Name,
		Description: spec.Description,
		Command:     cmd,
		Deps:        append([]string(nil), spec.Deps...),
	}

	g.kinds[t.Name] = KindTarget
	g.targetByName[t.Name] = t
	g.targets = append(g.targets, t)
	return t, nil
}

// Has reports whether any entity owns name.
func (g *Graph) Has(name string) bool {
	_, ok := g.kinds[name]
	return ok
}

// Library returns the named library.
func (g *Graph) Library(name string) (*Library, bool) {
	l, ok := g.libByName[name]
	return l, ok
}

// Application returns the named application.
func (g *Graph) Application(name string) (*Application, bool) {
	a, ok := g.appByName[name]
	return a, ok
}

// Target returns the named target.
func (g *Graph) Target(name string) (*Target, bool) {
	t, ok := g.targetByName[name]
	return t, ok
}

// Libraries returns libraries in registration order.
func (g *Graph) Libraries() []*Library {
	return append([]*Library(nil), g.libraries...)
}

// Applications returns applications in registration order.
func (g *Graph) Applications() []*Application {
	return append([]*Application(nil), g.applications...)
}

// Targets returns targets in registration order.
func (g *Graph) Targets() []*Target {
	return append([]*Target(nil), g.targets...)
}

// Shadowed returns ignored duplicate declarations in the order they occurred.
func (g *Graph) Shadowed() []Shadow {
	return append([]Shadow(nil), g.shadowed...)
}
