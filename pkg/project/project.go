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

package project

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/matthewzu/simple-build-framework/pkg/defaults"
	"github.com/matthewzu/simple-build-framework/pkg/document"
	"github.com/matthewzu/simple-build-framework/pkg/entity"
	"github.com/matthewzu/simple-build-framework/pkg/errors"
	"github.com/matthewzu/simple-build-framework/pkg/generator"
	"github.com/matthewzu/simple-build-framework/pkg/source"
	"github.com/matthewzu/simple-build-framework/pkg/types"
	"github.com/matthewzu/simple-build-framework/pkg/vars"
)

// System variable names defined before any user variable.
const (
	VarSourceRoot    = "SRC_PATH"
	VarProjectRoot   = "PRJ_PATH"
	VarKconfigConfig = "KCONFIG_CONFIG"
)

// System target names.
const (
	TargetConfig = "config"
	TargetAll    = "all"
	TargetClean  = "clean"
)

// Skip records a module left out because its feature is disabled.
type Skip struct {
	Name    string              `json:"name" yaml:"name"`
	Type    document.EntityType `json:"type" yaml:"type"`
	Feature string              `json:"feature" yaml:"feature"`
}

// Project is one generation run: a variable store, an entity graph and the
// settings they were built with.
type Project struct {
	cfg   *Config
	vars  *vars.Store
	graph *entity.Graph

	skipped    []Skip
	duplicates []document.Duplicate
}

// New creates a project and defines the system variables.
func New(opts ...Option) (*Project, error) {
	cfg := NewConfig(opts...)
	if !cfg.backend.IsValid() {
		return nil, errors.New(errors.ErrCodeUnsupportedBackend,
			fmt.Sprintf("unsupported backend %q", cfg.backend))
	}

	var err error
	if cfg.sourceRoot, err = filepath.Abs(cfg.sourceRoot); err != nil {
		return nil, errors.Wrap(errors.ErrCodeFilesystem, "resolve source root", err)
	}
	if cfg.projectRoot, err = filepath.Abs(cfg.projectRoot); err != nil {
		return nil, errors.Wrap(errors.ErrCodeFilesystem, "resolve project root", err)
	}

	store := vars.NewStore()
	system := []struct{ name, value, desc string }{
		{VarSourceRoot, filepath.ToSlash(cfg.sourceRoot), "source code path"},
		{VarProjectRoot, filepath.ToSlash(cfg.projectRoot), "project path"},
		{VarKconfigConfig, filepath.ToSlash(filepath.Join(cfg.projectRoot, defaults.ConfigDir, defaults.ConfigFile)),
			"project configuration file"},
	}
	for _, v := range system {
		if _, err := store.Define(v.name, v.value, v.desc); err != nil {
			return nil, err
		}
	}

	return &Project{
		cfg:   cfg,
		vars:  store,
		graph: entity.NewGraph(store, cfg.sourceRoot),
	}, nil
}

// Config returns the settings of the project.
func (p *Project) Config() *Config { return p.cfg }

// Vars returns the variable store.
func (p *Project) Vars() *vars.Store { return p.vars }

// Graph returns the entity graph.
func (p *Project) Graph() *entity.Graph { return p.graph }

// Skipped returns the modules left out by a disabled feature.
func (p *Project) Skipped() []Skip {
	out := make([]Skip, len(p.skipped))
	copy(out, p.skipped)
	return out
}

// Load adds every declaration of doc in document order.
func (p *Project) Load(doc *document.Document) error {
	for _, e := range doc.Entities() {
		if err := p.add(e); err != nil {
			return fmt.Errorf("%s:%d: %w", e.File, e.Line, err)
		}
	}
	p.duplicates = append(p.duplicates, doc.Duplicates()...)
	return nil
}

func (p *Project) add(e *document.Entity) error {
	switch e.Type {
	case document.TypeVariable:
		_, err := p.vars.Define(e.Name, e.Variable.Val, e.Variable.Desc)
		return err
	case document.TypeLibrary:
		if p.gated(e, e.Library.Opt) {
			return nil
		}
		_, err := p.graph.AddLibrary(entity.LibrarySpec{
			ModuleSpec: moduleSpec(e.Name, e.Library.ModuleSpec),
			HeaderDirs: e.Library.HdrDirs,
		})
		return err
	case document.TypeApplication:
		if p.gated(e, e.Application.Opt) {
			return nil
		}
		_, err := p.graph.AddApplication(entity.ApplicationSpec{
			ModuleSpec: moduleSpec(e.Name, e.Application.ModuleSpec),
			LinkFlags:  e.Application.LinkFlags,
			Libraries:  e.Application.Libs,
		})
		return err
	case document.TypeTarget:
		_, err := p.graph.AddTarget(entity.TargetSpec{
			Name:        e.Name,
			Description: e.Target.Desc,
			Command:     e.Target.Cmd,
			Deps:        e.Target.Deps,
		})
		return err
	default:
		return errors.NewEntity(errors.ErrCodeInvalidConfig, e.Name,
			fmt.Sprintf("unsupported type %q", e.Type))
	}
}

// gated reports whether the module must be skipped because feature is off.
func (p *Project) gated(e *document.Entity, feature string) bool {
	feature = strings.TrimSpace(feature)
	if feature == "" || p.cfg.features.IsEnabled(feature) {
		return false
	}
	slog.Debug("module skipped", "entity", e.Name, "type", e.Type, "feature", feature)
	p.skipped = append(p.skipped, Skip{Name: e.Name, Type: e.Type, Feature: feature})
	return true
}

func moduleSpec(name string, m document.ModuleSpec) entity.ModuleSpec {
	return entity.ModuleSpec{
		Name:        name,
		Description: m.Desc,
		Sources:     m.Src,
		CFlags:      source.FlagTable(m.CFlags),
		CPPFlags:    source.FlagTable(m.CPPFlags),
		ASMFlags:    source.FlagTable(m.ASMFlags),
	}
}

// AddSystemTargets adds the config, all and clean targets. A name already
// taken by a declaration is left alone.
func (p *Project) AddSystemTargets() error {
	var deps []string
	for _, lib := range p.graph.Libraries() {
		deps = append(deps, lib.Name)
	}
	for _, app := range p.graph.Applications() {
		deps = append(deps, app.Name)
	}

	all := entity.TargetSpec{Name: TargetAll, Description: "build all libraries and applications", Deps: deps}
	if len(deps) == 0 {
		all.Command = "true"
	}

	specs := []entity.TargetSpec{
		{
			Name:        TargetConfig,
			Description: "configure project and generate header and mk",
			Command:     p.configCommand(),
		},
		all,
		{
			Name:        TargetClean,
			Description: "remove objects, libraries and applications",
			Command: strings.Join([]string{
				"rm -rf",
				entity.ProjectRootRef + "/" + defaults.ObjectDir,
				entity.ProjectRootRef + "/" + defaults.LibraryDir,
				entity.ProjectRootRef + "/" + defaults.ApplicationDir,
			}, " "),
		},
	}

	for _, spec := range specs {
		if p.graph.Has(spec.Name) {
			slog.Info("system target skipped, name already declared", "target", spec.Name)
			continue
		}
		if _, err := p.graph.AddTarget(spec); err != nil {
			return err
		}
	}
	return nil
}

func (p *Project) configCommand() string {
	parts := []string{p.cfg.executable}
	if p.cfg.verbose {
		parts = append(parts, "-V")
	}
	parts = append(parts, "menuconfig", "--src", entity.SourceRootRef)
	if p.cfg.backend != types.BackendMake {
		parts = append(parts, "-g", p.cfg.backend.String())
	}
	parts = append(parts, entity.ProjectRootRef)
	return strings.Join(parts, " ")
}

// Plan builds the generation plan of the current graph.
func (p *Project) Plan() *generator.Plan {
	return generator.BuildPlan(p.graph, p.cfg.version)
}

// Generate renders the build script for the configured backend to w.
func (p *Project) Generate(w io.Writer) error {
	return generator.Generate(w, p.cfg.backend, p.Plan())
}

// BuildFilePath returns where WriteBuildFile writes the build script.
func (p *Project) BuildFilePath() string {
	name := defaults.MakeFile
	if p.cfg.backend == types.BackendNinja {
		name = defaults.NinjaFile
	}
	return filepath.Join(p.cfg.projectRoot, name)
}

// WriteBuildFile renders the build script and writes it into the project
// directory. Nothing is written when rendering fails.
func (p *Project) WriteBuildFile() (string, error) {
	plan := p.Plan()

	var buf bytes.Buffer
	if err := generator.Generate(&buf, p.cfg.backend, plan); err != nil {
		return "", err
	}

	path := p.BuildFilePath()
	if err := os.MkdirAll(filepath.Dir(path), defaults.DirMode); err != nil {
		return "", errors.WrapWithContext(errors.ErrCodeWriteFailed, "create project directory", err,
			map[string]any{"path": filepath.Dir(path)})
	}
	if err := os.WriteFile(path, buf.Bytes(), defaults.FileMode); err != nil {
		return "", errors.WrapWithContext(errors.ErrCodeWriteFailed, "write build script", err,
			map[string]any{"path": path})
	}

	slog.Info("build script written",
		"path", path,
		"backend", p.cfg.backend,
		"bytes", buf.Len(),
		"objects", plan.Count(generator.ActionCompile),
		"targets", plan.Count(generator.ActionPhony)+plan.Count(generator.ActionCommand))
	return path, nil
}
