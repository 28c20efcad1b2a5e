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

package generator

import (
	"strings"

	"github.com/matthewzu/simple-build-framework/pkg/entity"
	"github.com/matthewzu/simple-build-framework/pkg/source"
)

// ActionKind identifies the type of a planned build action.
type ActionKind string

// Action kinds in the order a plan may contain them.
const (
	ActionSection ActionKind = "section"
	ActionAssign  ActionKind = "assign"
	ActionModule  ActionKind = "module"
	ActionCompile ActionKind = "compile"
	ActionArchive ActionKind = "archive"
	ActionLink    ActionKind = "link"
	ActionPhony   ActionKind = "phony"
	ActionCommand ActionKind = "command"
)

// Action is one unit of build-script output.
type Action interface {
	Kind() ActionKind
}

// Section names a group of actions.
type Section string

// Plan sections, always present and always in this order.
const (
	SectionVariables    Section = "variables"
	SectionLibraries    Section = "libraries"
	SectionApplications Section = "applications"
	SectionTargets      Section = "targets"
)

// SectionAction opens a section.
type SectionAction struct {
	Section Section
}

// AssignAction defines a build-script variable.
type AssignAction struct {
	Name  string
	Value string
}

// ModuleAction opens the actions of one library or application.
type ModuleAction struct {
	Name       string
	ModuleKind entity.Kind
	ObjectDir  string
}

// CompileAction compiles one source file.
type CompileAction struct {
	Module  string
	Source  string
	Object  string
	DepFile string
	Dir     string
	Flags   string
}

// SourceName returns the file name of the source.
func (a *CompileAction) SourceName() string {
	return baseName(a.Source)
}

// ObjectName returns the file name of the object.
func (a *CompileAction) ObjectName() string {
	return baseName(a.Object)
}

// ArchiveAction packages objects into a library archive.
type ArchiveAction struct {
	Module  string
	Output  string
	Objects []string
}

// LinkAction links objects and libraries into an executable.
type LinkAction struct {
	Module    string
	Output    string
	Objects   []string
	LinkFlags string
	// Libraries are library names, used as rule dependencies.
	Libraries []string
	// Archives are the archive paths of Libraries, in the same order.
	Archives []string
	// LibFlags are the -l arguments for Libraries.
	LibFlags string
}

// PhonyAction aliases a set of dependencies.
type PhonyAction struct {
	Name        string
	Description string
	Deps        []string
}

// CommandAction runs a shell command after its dependencies.
type CommandAction struct {
	Name        string
	Description string
	Command     string
	Deps        []string
}

// Kind implements Action.
func (*SectionAction) Kind() ActionKind { return ActionSection }

// Kind implements Action.
func (*AssignAction) Kind() ActionKind { return ActionAssign }

// Kind implements Action.
func (*ModuleAction) Kind() ActionKind { return ActionModule }

// Kind implements Action.
func (*CompileAction) Kind() ActionKind { return ActionCompile }

// Kind implements Action.
func (*ArchiveAction) Kind() ActionKind { return ActionArchive }

// Kind implements Action.
func (*LinkAction) Kind() ActionKind { return ActionLink }

// Kind implements Action.
func (*PhonyAction) Kind() ActionKind { return ActionPhony }

// Kind implements Action.
func (*CommandAction) Kind() ActionKind { return ActionCommand }

// Plan is the ordered list of actions describing a whole project.
type Plan struct {
	// Version is written into the build-script header.
	Version string
	Actions []Action
}

// HasTarget reports whether the plan declares a phony or command target name.
func (p *Plan) HasTarget(name string) bool {
	for _, a := range p.Actions {
		switch t := a.(type) {
		case *PhonyAction:
			if t.Name == name {
				return true
			}
		case *CommandAction:
			if t.Name == name {
				return true
			}
		}
	}
	return false
}

// Count returns the number of actions of the given kind.
func (p *Plan) Count(kind ActionKind) int {
	n := 0
	for _, a := range p.Actions {
		if a.Kind() == kind {
			n++
		}
	}
	return n
}

// BuildPlan walks the graph once and returns its actions: variables, then
// libraries, then applications, then targets, each in registration order.
func BuildPlan(g *entity.Graph, version string) *Plan {
	p := &Plan{Version: version}
	add := func(a Action) { p.Actions = append(p.Actions, a) }

	add(&SectionAction{Section: SectionVariables})
	for _, v := range g.Vars().Variables() {
		add(&AssignAction{Name: v.Name, Value: v.Value})
	}

	add(&SectionAction{Section: SectionLibraries})
	for _, lib := range g.Libraries() {
		add(&ModuleAction{Name: lib.Name, ModuleKind: entity.KindLibrary, ObjectDir: lib.ObjectDir()})
		for _, o := range lib.Objects() {
			add(compileAction(o, ""))
		}
		add(&ArchiveAction{
			Module:  lib.Name,
			Output:  lib.ArchivePath(),
			Objects: lib.ObjectPaths(),
		})
	}

	add(&SectionAction{Section: SectionApplications})
	for _, app := range g.Applications() {
		add(&ModuleAction{Name: app.Name, ModuleKind: entity.KindApplication, ObjectDir: app.ObjectDir()})
		for _, o := range app.Objects() {
			add(compileAction(o, app.HeaderFlags))
		}
		link := &LinkAction{
			Module:    app.Name,
			Output:    app.OutputPath(),
			Objects:   app.ObjectPaths(),
			LinkFlags: strings.TrimSpace(app.LinkFlags),
			LibFlags:  strings.TrimSpace(app.LibFlags),
		}
		for _, lib := range app.Libraries() {
			link.Libraries = append(link.Libraries, lib.Name)
			link.Archives = append(link.Archives, lib.ArchivePath())
		}
		add(link)
	}

	add(&SectionAction{Section: SectionTargets})
	for _, t := range g.Targets() {
		if t.IsPhony() {
			add(&PhonyAction{Name: t.Name, Description: t.Description, Deps: t.Deps})
			continue
		}
		add(&CommandAction{Name: t.Name, Description: t.Description, Command: t.Command, Deps: t.Deps})
	}

	return p
}

func compileAction(o *entity.Object, headerFlags string) *CompileAction {
	return &CompileAction{
		Module:  o.Module,
		Source:  o.Source,
		Object:  o.Path,
		DepFile: o.DepPath,
		Dir:     o.Dir,
		Flags:   source.JoinFlags(headerFlags, o.Flags),
	}
}

func baseName(p string) string {
	if i := strings.LastIndex(p, "/"); i >= 0 {
		return p[i+1:]
	}
	return p
}
