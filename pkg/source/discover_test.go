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

package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matthewzu/simple-build-framework/pkg/types"
)

func writeFiles(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, n := range names {
		p := filepath.Join(root, n)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte("/* */\n"), 0o644))
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		want types.SourceKind
		ok   bool
	}{
		{"main.c", types.SourceC, true},
		{"main.cpp", types.SourceCPP, true},
		{"start.S", types.SourceASM, true},
		{"start.s", types.SourceASM, true},
		{"main.h", "", false},
		{"main.cc", "", false},
		{"main.c.orig", "", false},
		{"Makefile", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Classify(tt.name)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDiscover_Directory(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFiles(t, root, "a.c", "sub/b.cpp", "sub/deep/c.S", "sub/readme.md", "inc/a.h")

	res, err := Discover(root)
	require.NoError(t, err)
	assert.False(t, res.Missing)
	assert.Equal(t, map[string]types.SourceKind{
		filepath.Join(root, "a.c"):          types.SourceC,
		filepath.Join(root, "sub/b.cpp"):    types.SourceCPP,
		filepath.Join(root, "sub/deep/c.S"): types.SourceASM,
	}, res.Files)
	assert.Equal(t, []string{
		filepath.Join(root, "a.c"),
		filepath.Join(root, "sub/b.cpp"),
		filepath.Join(root, "sub/deep/c.S"),
	}, res.Paths())
}

func TestDiscover_SingleFile(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFiles(t, root, "main.c", "notes.txt")

	res, err := Discover(filepath.Join(root, "main.c"))
	require.NoError(t, err)
	assert.Equal(t, map[string]types.SourceKind{filepath.Join(root, "main.c"): types.SourceC}, res.Files)

	res, err = Discover(filepath.Join(root, "notes.txt"))
	require.NoError(t, err)
	assert.Empty(t, res.Files)
	assert.False(t, res.Missing)
}

func TestDiscover_Missing(t *testing.T) {
	t.Parallel()

	res, err := Discover(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.True(t, res.Missing)
	assert.Empty(t, res.Files)
}

func TestDiscover_Deterministic(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFiles(t, root, "z.c", "m.c", "a/b.c", "a/a.cpp")

	first, err := Discover(root)
	require.NoError(t, err)
	second, err := Discover(root)
	require.NoError(t, err)
	assert.Equal(t, first.Files, second.Files)
	assert.Equal(t, first.Paths(), second.Paths())
}
