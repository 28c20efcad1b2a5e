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

package serializer

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
	"gopkg.in/yaml.v3"
)

type module struct {
	Name    string   `json:"name" yaml:"name"`
	Objects []string `json:"objects" yaml:"objects"`
}

type graph struct {
	Backend   string            `json:"backend" yaml:"backend"`
	Libraries []module          `json:"libraries" yaml:"libraries"`
	Missing   map[string]string `json:"missing,omitempty" yaml:"missing,omitempty"`
	Next      *module           `json:"next" yaml:"next"`
}

func sample() graph {
	return graph{
		Backend: "ninja",
		Libraries: []module{
			{Name: "core", Objects: []string{"$(PRJ_PATH)/objs/core/a.o"}},
		},
		Missing: map[string]string{"core": "/src/gone"},
	}
}

func TestWriter_SerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter(FormatJSON, &buf).Serialize(context.Background(), sample()))

	var got graph
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sample(), got)
	assert.Contains(t, buf.String(), "\n  \"backend\": \"ninja\"")
}

func TestWriter_SerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter(FormatYAML, &buf).Serialize(context.Background(), sample()))

	var got graph
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sample(), got)
	assert.True(t, strings.HasPrefix(buf.String(), "backend: ninja\n"))
}

func TestWriter_SerializeTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter(FormatTable, &buf).Serialize(context.Background(), sample()))

	out := buf.String()
	assert.Contains(t, out, "FIELD")
	assert.Contains(t, out, "Backend")
	assert.Contains(t, out, "Libraries.[0].Name")
	assert.Contains(t, out, "Libraries.[0].Objects.[0]")
	assert.Contains(t, out, "Missing.core")
	assert.Contains(t, out, "Next")
	assert.Contains(t, out, "<nil>")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	// Rows are sorted by key.
	assert.True(t, strings.HasPrefix(lines[2], "Backend"))
}

func TestWriter_SerializeTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter(FormatTable, &buf).Serialize(context.Background(), struct{}{}))
	assert.Equal(t, "<empty>\n", buf.String())
}

func TestWriter_SerializeTable_Scalar(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter(FormatTable, &buf).Serialize(context.Background(), 42))
	assert.Contains(t, buf.String(), "value")
	assert.Contains(t, buf.String(), "42")
}

func TestWriter_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := NewWriter(FormatJSON, &bytes.Buffer{}).Serialize(ctx, sample())
	require.ErrorIs(t, err, context.Canceled)
}

func TestNewWriter_UnknownFormatDefaultsToJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(Format("xml"), &buf)
	assert.Equal(t, FormatJSON, w.format)
	require.NoError(t, w.Serialize(context.Background(), map[string]int{"a": 1}))
	assert.JSONEq(t, `{"a":1}`, buf.String())
}

func TestNewWriter_NilOutput(t *testing.T) {
	w := NewWriter(FormatJSON, nil)
	assert.Equal(t, os.Stdout, w.output)
}

func TestFormat_IsUnknown(t *testing.T) {
	for _, f := range SupportedFormats() {
		assert.False(t, Format(f).IsUnknown(), f)
	}
	assert.True(t, Format("").IsUnknown())
	assert.True(t, Format("toml").IsUnknown())
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"graph.json", FormatJSON},
		{"graph.YAML", FormatYAML},
		{"graph.yml", FormatYAML},
		{"graph.txt", FormatTable},
		{"graph", FormatTable},
		{"", FormatTable},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFromPath(tt.path, FormatTable))
		})
	}
}

func TestNewFileWriterOrStdout(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		w := NewFileWriterOrStdout(FormatJSON, "  ")
		assert.Equal(t, os.Stdout, w.output)
		assert.NoError(t, w.Close())
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "graph.yaml")
		w := NewFileWriterOrStdout(FormatYAML, path)
		require.NoError(t, w.Serialize(context.Background(), sample()))
		require.NoError(t, w.Close())
		require.NoError(t, w.Close(), "close is idempotent")

		b, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(b), "backend: ninja")
	})

	t.Run("invalid path falls back to stdout", func(t *testing.T) {
		w := NewFileWriterOrStdout(FormatJSON, filepath.Join(t.TempDir(), "missing", "dir", "x.json"))
		assert.Equal(t, os.Stdout, w.output)
	})
}
