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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matthewzu/simple-build-framework/pkg/errors"
)

func writeDoc(t *testing.T, root, name, content string) {
	t.Helper()
	p := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
}

func entityNamed(doc *Document, name string) (*Entity, bool) {
	for _, e := range doc.Entities() {
		if e.Name == name {
			return e, true
		}
	}
	return nil, false
}

const fullDoc = `
ROOT:
  type: var
  desc: source root
  val: $(SRC_PATH)/src

core:
  type: lib
  desc: core library
  src:
    - $(ROOT)/core
  hdrdirs:
    - $(ROOT)/core/include
  cflags:
    all: -O2
    main.c: -DMAIN
  asmflags:
    - all: -D__ASSEMBLY__

app:
  type: app
  src: [$(ROOT)/app]
  libs: [core]
  linkflags: -static
  opt: APP

clean_all:
  type: target
  desc: remove everything
  cmd: rm -rf $(PRJ_PATH)
  deps: [clean]
`

func TestParse_AllTypes(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte(fullDoc), "top.yml")
	require.NoError(t, err)

	ents := doc.Entities()
	require.Len(t, ents, 4)

	var names []string
	for _, e := range ents {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"ROOT", "core", "app", "clean_all"}, names, "declaration order is kept")

	root, ok := entityNamed(doc, "ROOT")
	require.True(t, ok)
	assert.Equal(t, TypeVariable, root.Type)
	assert.Equal(t, &VariableSpec{Desc: "source root", Val: "$(SRC_PATH)/src"}, root.Variable)
	assert.Equal(t, "top.yml", root.File)
	assert.Equal(t, 3, root.Line)

	core, _ := entityNamed(doc, "core")
	require.NotNil(t, core.Library)
	assert.Equal(t, []string{"$(ROOT)/core"}, core.Library.Src)
	assert.Equal(t, []string{"$(ROOT)/core/include"}, core.Library.HdrDirs)
	assert.Equal(t, FlagTable{"all": "-O2", "main.c": "-DMAIN"}, core.Library.CFlags)
	assert.Equal(t, FlagTable{"all": "-D__ASSEMBLY__"}, core.Library.ASMFlags)
	assert.Nil(t, core.Library.CPPFlags)

	app, _ := entityNamed(doc, "app")
	require.NotNil(t, app.Application)
	assert.Equal(t, []string{"core"}, app.Application.Libs)
	assert.Equal(t, "-static", app.Application.LinkFlags)
	assert.Equal(t, "APP", app.Application.Opt)

	tgt, _ := entityNamed(doc, "clean_all")
	require.NotNil(t, tgt.Target)
	assert.Equal(t, &TargetSpec{Desc: "remove everything", Cmd: "rm -rf $(PRJ_PATH)", Deps: []string{"clean"}}, tgt.Target)
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
		code errors.ErrorCode
	}{
		{"empty", "", errors.ErrCodeInvalidConfig},
		{"null", "~\n", errors.ErrCodeInvalidConfig},
		{"not a mapping", "- a\n- b\n", errors.ErrCodeInvalidConfig},
		{"syntax", "a: [\n", errors.ErrCodeInvalidConfig},
		{"missing type", "x:\n  val: 1\n", errors.ErrCodeInvalidConfig},
		{"unknown type", "x:\n  type: dll\n", errors.ErrCodeInvalidConfig},
		{"scalar declaration", "x: 1\n", errors.ErrCodeInvalidConfig},
		{"src not a list", "x:\n  type: lib\n  src: core\n", errors.ErrCodeInvalidConfig},
		{"flags scalar", "x:\n  type: lib\n  cflags: -O2\n", errors.ErrCodeInvalidFlagSpec},
		{"flags two mappings", "x:\n  type: lib\n  cflags:\n    - all: -O2\n    - a.c: -g\n", errors.ErrCodeInvalidFlagSpec},
		{"flags nested", "x:\n  type: app\n  cppflags:\n    all: [a, b]\n", errors.ErrCodeInvalidFlagSpec},
		{"flags bool", "x:\n  type: lib\n  cflags:\n    all: true\n", errors.ErrCodeInvalidFlagSpec},
		{"flags int", "x:\n  type: lib\n  asmflags:\n    - a.S: 3\n", errors.ErrCodeInvalidFlagSpec},
		{"flags float", "x:\n  type: app\n  cppflags: {all: 1.5}\n", errors.ErrCodeInvalidFlagSpec},
		{"includes not a list", "includes: a.yml\n", errors.ErrCodeInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc), "top.yml")
			require.Error(t, err)
			assert.True(t, errors.HasCode(err, tt.code), "got %v", err)
		})
	}
}

func TestParse_EntityNameInError(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("broken:\n  type: lib\n  cflags: 3\n"), "top.yml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}

func TestParse_NullFlagValue(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte("x:\n  type: lib\n  cflags:\n    all:\n    a.c: -g\n"), "top.yml")
	require.NoError(t, err)
	e, _ := entityNamed(doc, "x")
	assert.Equal(t, FlagTable{"all": "", "a.c": "-g"}, e.Library.CFlags)
}

func TestParse_QuotedFlagValue(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte("x:\n  type: lib\n  cflags: {all: \"3\", a.c: 'true'}\n"), "top.yml")
	require.NoError(t, err)
	e, _ := entityNamed(doc, "x")
	assert.Equal(t, FlagTable{"all": "3", "a.c": "true"}, e.Library.CFlags)
}

func TestLoad_Includes(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeDoc(t, root, "top.yml", `
includes:
  - core/core.yml
  - app/app.yml
ROOT:
  type: var
  val: /src
`)
	writeDoc(t, root, "core/core.yml", `
includes: [common.yml]
core:
  type: lib
  src: [$(ROOT)/core]
`)
	writeDoc(t, root, "app/app.yml", `
includes: [common.yml]
app:
  type: app
  libs: [core]
ROOT:
  type: var
  val: /elsewhere
`)
	writeDoc(t, root, "common.yml", `
CC:
  type: var
  val: gcc
`)

	doc, err := Load(root, "top.yml")
	require.NoError(t, err)

	var names []string
	for _, e := range doc.Entities() {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"ROOT", "core", "CC", "app"}, names)

	r, _ := entityNamed(doc, "ROOT")
	assert.Equal(t, "/src", r.Variable.Val, "first declaration wins")

	dups := doc.Duplicates()
	require.Len(t, dups, 1)
	assert.Equal(t, "ROOT", dups[0].Name)
	assert.Equal(t, filepath.Join(root, "app/app.yml"), dups[0].File)
	assert.Equal(t, filepath.Join(root, "top.yml"), dups[0].FirstFile)

	assert.Equal(t, []string{
		filepath.Join(root, "top.yml"),
		filepath.Join(root, "core/core.yml"),
		filepath.Join(root, "common.yml"),
		filepath.Join(root, "app/app.yml"),
	}, doc.Files(), "common.yml is loaded once")
}

func TestLoad_IncludeCycle(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeDoc(t, root, "top.yml", "includes: [a.yml]\nX:\n  type: var\n  val: x\n")
	writeDoc(t, root, "a.yml", "includes: [top.yml]\nY:\n  type: var\n  val: y\n")

	_, err := Load(root, "top.yml")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidConfig))
	assert.Contains(t, err.Error(), "include cycle")
}

func TestLoad_Missing(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	_, err := Load(root, "top.yml")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeNotFound))

	writeDoc(t, root, "top.yml", "includes: [nope.yml]\nX:\n  type: var\n")
	_, err = Load(root, "top.yml")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeNotFound))
}

func TestEntityType(t *testing.T) {
	for _, ty := range SupportedTypes() {
		assert.True(t, ty.IsValid(), ty.String())
	}
	assert.False(t, EntityType("dll").IsValid())
}
