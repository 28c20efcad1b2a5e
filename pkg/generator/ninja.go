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
	"github.com/matthewzu/simple-build-framework/pkg/vars"
)

func init() {
	MustRegister(types.BackendNinja, &NinjaRenderer{})
}

const ninjaIndent = "    "

// ninjaRules are declared once, after the variables.
var ninjaRules = []struct {
	name     string
	bindings [][2]string
}{
	{"rule_cmd", [][2]string{
		{"command", "$CMD"},
		{"description", "$DESC"},
	}},
	{"rule_mkdir", [][2]string{
		{"command", "mkdir -p $out"},
		{"description", "Creating $out"},
	}},
	{"rule_cc", [][2]string{
		{"depfile", "$DEP"},
		{"deps", "gcc"},
		{"command", "$CC -MMD -MF $DEP $FLAGS -c $in -o $out"},
		{"description", "<$MOD>: Compiling $SRC to $OBJ"},
	}},
	{"rule_ar", [][2]string{
		{"command", "rm -f $out && $AR crs $out $in"},
		{"description", "<$MOD>: Packaging"},
	}},
	{"rule_ld", [][2]string{
		{"command", "$LD -o $out $in $FLAGS"},
		{"description", "<$MOD>: Linking"},
	}},
}

// NinjaRenderer renders a plan as a Ninja build file.
type NinjaRenderer struct{}

// Render implements Renderer.
func (r *NinjaRenderer) Render(w io.Writer, p *Plan) error {
	nw := &ninjaWriter{lineWriter: newLineWriter(w), dirs: make(map[string]bool)}

	nw.Comment(header(p.Version))
	nw.Blank()

	inVariables := false
	for _, a := range p.Actions {
		switch act := a.(type) {
		case *SectionAction:
			if inVariables {
				nw.Blank()
				nw.rules()
			}
			inVariables = act.Section == SectionVariables
			nw.Comment(string(act.Section))
			nw.Blank()
		case *AssignAction:
			nw.Linef("%s = %s", act.Name, ninjaValue(act.Value))
		case *ModuleAction:
			nw.Comment(act.Name)
			nw.Blank()
			nw.dir(act.ObjectDir)
		case *CompileAction:
			nw.dir(act.Dir)
			nw.build(ninjaPath(act.Object), "rule_cc", []string{ninjaPath(act.Source)}, nil, []string{ninjaPath(act.Dir)})
			nw.bind("DEP", ninjaPath(act.DepFile))
			nw.bind("FLAGS", ninjaValue(act.Flags))
			nw.bind("MOD", act.Module)
			nw.bind("SRC", act.SourceName())
			nw.bind("OBJ", act.ObjectName())
			nw.Blank()
		case *ArchiveAction:
			out := ninjaPath(act.Output)
			dir := path.Dir(act.Output)
			nw.dir(dir)
			nw.build(out, "rule_ar", ninjaPaths(act.Objects), nil, []string{ninjaPath(dir)})
			nw.bind("MOD", act.Module)
			nw.Blank()
			nw.build(act.Module, "phony", []string{out}, nil, nil)
			nw.Blank()
		case *LinkAction:
			out := ninjaPath(act.Output)
			dir := path.Dir(act.Output)
			nw.dir(dir)
			nw.build(out, "rule_ld", ninjaPaths(act.Objects), ninjaPaths(act.Archives), []string{ninjaPath(dir)})
			flags := act.LinkFlags
			if len(act.Archives) > 0 {
				flags = source.JoinFlags(flags, "-L"+path.Dir(act.Archives[0]), act.LibFlags)
			}
			nw.bind("FLAGS", ninjaValue(flags))
			nw.bind("MOD", act.Module)
			nw.Blank()
			nw.build(act.Module, "phony", []string{out}, nil, nil)
			nw.Blank()
		case *PhonyAction:
			nw.build(act.Name, "phony", act.Deps, nil, nil)
			nw.Blank()
		case *CommandAction:
			cmdName := "cmd_" + act.Name
			desc := act.Description
			if desc == "" {
				desc = act.Name
			}
			nw.build(cmdName, "rule_cmd", nil, act.Deps, nil)
			nw.bind("pool", "console")
			nw.bind("CMD", ninjaValue(strings.Join(commandLines(act.Command), " && ")))
			nw.bind("DESC", ninjaValue(desc))
			nw.Blank()
			nw.build(act.Name, "phony", []string{cmdName}, nil, nil)
			nw.Blank()
		default:
			return errors.New(errors.ErrCodeInternal, "unexpected plan action "+string(a.Kind()))
		}
	}

	if p.HasTarget("all") {
		nw.Line("default all")
	}

	return nw.Close()
}

type ninjaWriter struct {
	*lineWriter
	dirs map[string]bool
}

func (nw *ninjaWriter) rules() {
	nw.Comment("rules")
	nw.Blank()
	for _, r := range ninjaRules {
		nw.Linef("rule %s", r.name)
		for _, b := range r.bindings {
			nw.bind(b[0], b[1])
		}
		nw.Blank()
	}
}

// build writes a build edge. Outputs and inputs must already be escaped.
func (nw *ninjaWriter) build(output, rule string, explicit, implicit, orderOnly []string) {
	var b strings.Builder
	b.WriteString("build ")
	b.WriteString(output)
	b.WriteString(": ")
	b.WriteString(rule)
	for _, in := range explicit {
		b.WriteString(" " + in)
	}
	if len(implicit) > 0 {
		b.WriteString(" | " + strings.Join(implicit, " "))
	}
	if len(orderOnly) > 0 {
		b.WriteString(" || " + strings.Join(orderOnly, " "))
	}
	nw.Line(b.String())
}

func (nw *ninjaWriter) bind(name, value string) {
	nw.Linef("%s%s = %s", ninjaIndent, name, value)
}

// dir declares a mkdir edge for dir unless one was already written.
func (nw *ninjaWriter) dir(dir string) {
	if nw.dirs[dir] {
		return
	}
	nw.dirs[dir] = true
	nw.build(ninjaPath(dir), "rule_mkdir", nil, nil, nil)
	nw.Blank()
}

func ninjaValue(text string) string {
	return vars.FormatForBackend(text, types.BackendNinja)
}

// ninjaPath formats p for use in a build line, escaping spaces and colons.
func ninjaPath(p string) string {
	p = ninjaValue(p)
	return strings.NewReplacer(" ", "$ ", ":", "$:").Replace(p)
}

func ninjaPaths(ps []string) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = ninjaPath(p)
	}
	return out
}

func commandLines(cmd string) []string {
	var out []string
	for _, l := range strings.Split(cmd, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}
