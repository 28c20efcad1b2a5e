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
	"github.com/matthewzu/simple-build-framework/pkg/document"
	"github.com/matthewzu/simple-build-framework/pkg/entity"
	"github.com/matthewzu/simple-build-framework/pkg/header"
	"github.com/matthewzu/simple-build-framework/pkg/vars"
)

// Snapshot is a serializable view of a resolved project.
type Snapshot struct {
	header.Header `json:",inline" yaml:",inline"`

	Backend     string `json:"backend" yaml:"backend"`
	SourceRoot  string `json:"sourceRoot" yaml:"sourceRoot"`
	ProjectRoot string `json:"projectRoot" yaml:"projectRoot"`

	Variables    []vars.Variable  `json:"variables" yaml:"variables"`
	Libraries    []ModuleSnapshot `json:"libraries,omitempty" yaml:"libraries,omitempty"`
	Applications []ModuleSnapshot `json:"applications,omitempty" yaml:"applications,omitempty"`
	Targets      []entity.Target  `json:"targets,omitempty" yaml:"targets,omitempty"`

	Skipped           []Skip               `json:"skipped,omitempty" yaml:"skipped,omitempty"`
	ShadowedVariables []string             `json:"shadowedVariables,omitempty" yaml:"shadowedVariables,omitempty"`
	ShadowedEntities  []entity.Shadow      `json:"shadowedEntities,omitempty" yaml:"shadowedEntities,omitempty"`
	Duplicates        []document.Duplicate `json:"duplicates,omitempty" yaml:"duplicates,omitempty"`
}

// ModuleSnapshot describes one library or application.
type ModuleSnapshot struct {
	Name        string          `json:"name" yaml:"name"`
	Description string          `json:"description,omitempty" yaml:"description,omitempty"`
	Output      string          `json:"output" yaml:"output"`
	Objects     []entity.Object `json:"objects" yaml:"objects"`

	HeaderDirs []string `json:"headerDirs,omitempty" yaml:"headerDirs,omitempty"`
	Libraries  []string `json:"libraries,omitempty" yaml:"libraries,omitempty"`
	LinkFlags  string   `json:"linkFlags,omitempty" yaml:"linkFlags,omitempty"`

	ShadowedSources []string `json:"shadowedSources,omitempty" yaml:"shadowedSources,omitempty"`
	MissingSources  []string `json:"missingSources,omitempty" yaml:"missingSources,omitempty"`
}

// Snapshot captures the current state of the project.
func (p *Project) Snapshot() *Snapshot {
	s := &Snapshot{
		Backend:           p.cfg.backend.String(),
		SourceRoot:        p.cfg.sourceRoot,
		ProjectRoot:       p.cfg.projectRoot,
		Skipped:           p.Skipped(),
		ShadowedVariables: p.vars.Shadowed(),
		ShadowedEntities:  p.graph.Shadowed(),
	}
	s.Init(header.KindProjectGraph, header.APIVersion, p.cfg.version)
	if len(p.duplicates) > 0 {
		s.Duplicates = append([]document.Duplicate(nil), p.duplicates...)
	}

	for _, v := range p.vars.Variables() {
		s.Variables = append(s.Variables, *v)
	}
	for _, lib := range p.graph.Libraries() {
		m := moduleSnapshot(lib.Module, lib.ArchivePath())
		m.HeaderDirs = lib.HeaderDirs
		s.Libraries = append(s.Libraries, m)
	}
	for _, app := range p.graph.Applications() {
		m := moduleSnapshot(app.Module, app.OutputPath())
		for _, lib := range app.Libraries() {
			m.Libraries = append(m.Libraries, lib.Name)
		}
		m.LinkFlags = app.LinkFlags
		s.Applications = append(s.Applications, m)
	}
	for _, t := range p.graph.Targets() {
		s.Targets = append(s.Targets, *t)
	}
	return s
}

func moduleSnapshot(m *entity.Module, output string) ModuleSnapshot {
	out := ModuleSnapshot{
		Name:            m.Name,
		Description:     m.Description,
		Output:          output,
		Objects:         []entity.Object{},
		ShadowedSources: m.Shadowed(),
		MissingSources:  m.MissingSources(),
	}
	for _, o := range m.Objects() {
		out.Objects = append(out.Objects, *o)
	}
	return out
}
