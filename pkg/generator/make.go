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
	"io"
	"path"
	"strings"

	"github.com/matthewzu/simple-build-framework/pkg/errors"
	"github.com/matthewzu/simple-build-framework/pkg/source"
	"github.com/matthewzu/simple-build-framework/pkg/types"
)

func init() {
	MustRegister(types.BackendMake, &MakeRenderer{})
}

// makeVerbosity selects quiet or verbose recipes from the V variable.
var makeVerbosity = []string{
	"ifneq ($(V),)",
	"\tVERBOSE_BUILD = $(V)",
	"else",
	"\tVERBOSE_BUILD = 0",
	"endif",
	"",
	"ifeq ($(VERBOSE_BUILD),1)",
	"\tQUIET =",
	"\tQ =",
	"\tVERBOSE = v",
	"else",
	"\tQUIET = quiet",
	"\tQ = @",
	"\tVERBOSE =",
	"endif",
}

// MakeRenderer renders a plan as a GNU Makefile.
type MakeRenderer struct{}

// Render implements Renderer.
func (r *MakeRenderer) Render(w io.Writer, p *Plan) error {
	lw := newLineWriter(w)

	lw.Comment(header(p.Version))
	lw.Blank()
	if p.HasTarget("all") {
		lw.Line("default: all")
		lw.Blank()
	}

	inVariables := false
	for _, a := range p.Actions {
		switch act := a.(type) {
		case *SectionAction:
			if inVariables {
				lw.Blank()
				for _, l := range makeVerbosity {
					lw.Line(l)
				}
				lw.Blank()
			}
			inVariables = act.Section == SectionVariables
			lw.Comment(string(act.Section))
			lw.Blank()
		case *AssignAction:
			lw.Linef("%s\t= %s", act.Name, act.Value)
		case *ModuleAction:
			lw.Comment(act.Name)
			lw.Blank()
		case *CompileAction:
			r.compile(lw, act)
		case *ArchiveAction:
			lw.Line(rule(act.Module, act.Objects...))
			lw.Linef("\t$(Q)$(if $(QUIET), echo '<%s>': Packaging)", act.Module)
			lw.Linef("\t$(Q)mkdir -p$(VERBOSE) %s", path.Dir(act.Output))
			lw.Linef("\t$(Q)$(AR) crs$(VERBOSE) %s $^", act.Output)
			lw.Blank()
		case *LinkAction:
			lw.Line(rule(act.Module, append(append([]string(nil), act.Objects...), act.Libraries...)...))
			lw.Linef("\t$(Q)$(if $(QUIET), echo '<%s>': Linking)", act.Module)
			lw.Linef("\t$(Q)mkdir -p$(VERBOSE) %s", path.Dir(act.Output))
			libDir := ""
			if len(act.Archives) > 0 {
				libDir = "-L" + path.Dir(act.Archives[0])
			}
			lw.Linef("\t$(Q)%s", source.JoinFlags(
				"$(LD) -o "+act.Output,
				strings.Join(act.Objects, " "),
				act.LinkFlags,
				libDir,
				act.LibFlags,
			))
			lw.Blank()
		case *PhonyAction:
			lw.Linef(".PHONY: %s", act.Name)
			lw.Line(rule(act.Name, act.Deps...))
			if act.Description != "" {
				lw.Linef("\t@echo %s", act.Description)
			}
			lw.Blank()
		case *CommandAction:
			lw.Linef(".PHONY: %s", act.Name)
			lw.Line(rule(act.Name, act.Deps...))
			if act.Description != "" {
				lw.Linef("\t@echo %s", act.Description)
			}
			for _, l := range commandLines(act.Command) {
				lw.Linef("\t$(Q)%s", l)
			}
			lw.Blank()
		default:
			return errors.New(errors.ErrCodeInternal, "unexpected plan action "+string(a.Kind()))
		}
	}

	return lw.Close()
}

func (r *MakeRenderer) compile(lw *lineWriter, act *CompileAction) {
	lw.Linef("%s: %s", act.Object, act.Source)
	lw.Linef("\t$(Q)$(if $(QUIET), echo '<%s>': Compiling %s to %s)", act.Module, act.SourceName(), act.ObjectName())
	lw.Linef("\t$(Q)mkdir -p$(VERBOSE) %s", act.Dir)
	lw.Linef("\t$(Q)%s", source.JoinFlags("$(CC) -MMD -MF "+act.DepFile, act.Flags, "-c $< -o $@"))
	lw.Blank()
	lw.Linef("-include %s", act.DepFile)
	lw.Blank()
}

// rule returns a "target: prerequisites" line.
func rule(target string, prereqs ...string) string {
	if len(prereqs) == 0 {
		return target + ":"
	}
	return target + ": " + strings.Join(prereqs, " ")
}
