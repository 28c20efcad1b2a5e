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

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/matthewzu/simple-build-framework/pkg/serializer"
)

const testTop = `
core:
  type: lib
  src: [core]

hello:
  type: app
  src: [app]
  libs: [core]

net:
  type: lib
  src: [net]
  opt: NET
`

func writeFile(t *testing.T, root, name, content string) {
	t.Helper()
	p := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
}

func testTree(t *testing.T) string {
	t.Helper()
	src := t.TempDir()
	writeFile(t, src, "top.yml", testTop)
	writeFile(t, src, "core/core.c", "int core;\n")
	writeFile(t, src, "app/main.c", "int main(void) { return 0; }\n")
	writeFile(t, src, "net/net.c", "int net;\n")
	return src
}

func run(t *testing.T, args ...string) error {
	t.Helper()
	return newRootCmd().Run(context.Background(), append([]string{name, "--log-level", "error"}, args...))
}

func TestGenerate_Make(t *testing.T) {
	src := testTree(t)
	prj := t.TempDir()

	require.NoError(t, run(t, "generate", "--src", src, prj))

	b, err := os.ReadFile(filepath.Join(prj, "Makefile"))
	require.NoError(t, err)
	out := string(b)
	assert.Contains(t, out, "all: core hello\n")
	assert.Contains(t, out, "zmake menuconfig --src $(SRC_PATH) $(PRJ_PATH)")
	assert.NotContains(t, out, "net.c")
}

func TestGenerate_NinjaFromEnv(t *testing.T) {
	t.Setenv(envGenerator, "ninja")
	src := testTree(t)
	prj := t.TempDir()

	require.NoError(t, run(t, "-V", "generate", "--src", src, prj))

	b, err := os.ReadFile(filepath.Join(prj, "build.ninja"))
	require.NoError(t, err)
	assert.Contains(t, string(b), "zmake -V menuconfig --src $SRC_PATH -g ninja $PRJ_PATH")
	assert.NoFileExists(t, filepath.Join(prj, "Makefile"))
}

func TestGenerate_MultipleProjects(t *testing.T) {
	src := testTree(t)
	a, b := t.TempDir(), t.TempDir()
	writeFile(t, b, "config/prj.config", "CONFIG_NET=y\n")
	metrics := filepath.Join(t.TempDir(), "zmake.prom")

	require.NoError(t, run(t, "generate", "--src", src, "--metrics-file", metrics, a, b))

	outA, err := os.ReadFile(filepath.Join(a, "Makefile"))
	require.NoError(t, err)
	outB, err := os.ReadFile(filepath.Join(b, "Makefile"))
	require.NoError(t, err)
	assert.NotContains(t, string(outA), "net.c")
	assert.Contains(t, string(outB), "$(SRC_PATH)/net/net.c")

	prom, err := os.ReadFile(metrics)
	require.NoError(t, err)
	assert.Contains(t, string(prom), "zmake_generate_duration_seconds")
}

func TestGenerate_Errors(t *testing.T) {
	src := testTree(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no project", []string{"generate", "--src", src}, "project directory is required"},
		{"bad backend", []string{"generate", "--src", src, "-g", "scons", t.TempDir()}, "UNSUPPORTED_BACKEND"},
		{"missing top.yml", []string{"generate", "--src", t.TempDir(), t.TempDir()}, "NOT_FOUND"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := run(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestGraph_JSON(t *testing.T) {
	src := testTree(t)
	prj := t.TempDir()
	out := filepath.Join(t.TempDir(), "graph.json")

	require.NoError(t, run(t, "graph", "--src", src, "--output", out, prj))

	b, err := os.ReadFile(out)
	require.NoError(t, err)

	var snap struct {
		Kind      string `json:"kind"`
		Backend   string `json:"backend"`
		Libraries []struct {
			Name string `json:"name"`
		} `json:"libraries"`
		Skipped []struct {
			Name string `json:"name"`
		} `json:"skipped"`
	}
	require.NoError(t, json.Unmarshal(b, &snap))
	assert.Equal(t, "ProjectGraph", snap.Kind)
	assert.Equal(t, "make", snap.Backend)
	require.Len(t, snap.Libraries, 1)
	assert.Equal(t, "core", snap.Libraries[0].Name)
	require.Len(t, snap.Skipped, 1)
	assert.Equal(t, "net", snap.Skipped[0].Name)

	assert.NoFileExists(t, filepath.Join(prj, "Makefile"))
}

func TestGraph_TooManyProjects(t *testing.T) {
	err := run(t, "graph", "--src", testTree(t), t.TempDir(), t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at most 1")
}

func TestMenuconfig_RequiresConfiguredProject(t *testing.T) {
	src := testTree(t)
	writeFile(t, src, "Kconfig", "config NET\n\tbool \"net\"\n")

	err := run(t, "menuconfig", "--src", src, t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NOT_FOUND")
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		name       string
		format     string
		output     string
		wantFormat serializer.Format
		wantErr    bool
	}{
		{name: "valid yaml format", format: "yaml", wantFormat: serializer.FormatYAML},
		{name: "valid json format", format: "json", wantFormat: serializer.FormatJSON},
		{name: "valid table format", format: "table", wantFormat: serializer.FormatTable},
		{name: "inferred from output", output: "graph.json", wantFormat: serializer.FormatJSON},
		{name: "default", wantFormat: serializer.FormatYAML},
		{name: "invalid format xml", format: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &cli.Command{
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "format", Value: tt.format},
					&cli.StringFlag{Name: "output", Value: tt.output},
				},
				Action: func(_ context.Context, c *cli.Command) error {
					got, err := parseOutputFormat(c)
					if tt.wantErr {
						assert.Error(t, err)
						return nil
					}
					assert.NoError(t, err)
					assert.Equal(t, tt.wantFormat, got)
					return nil
				},
			}
			require.NoError(t, cmd.Run(context.Background(), []string{"test"}))
		})
	}
}

func TestRootCmd_Version(t *testing.T) {
	var buf bytes.Buffer
	cmd := newRootCmd()
	cmd.Writer = &buf
	require.NoError(t, cmd.Run(context.Background(), []string{name, "--version"}))
	assert.True(t, strings.Contains(buf.String(), versionDefault))
}
