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

package kconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matthewzu/simple-build-framework/pkg/errors"
)

const sampleConfig = `#
# Automatically generated file; DO NOT EDIT.
#
CONFIG_NET=y
CONFIG_USB=m
# CONFIG_DEBUG is not set
CONFIG_LOG_LEVEL=3
CONFIG_APP_MAIN=y
  CONFIG_INDENTED=y
CONFIG_NAME="y"
`

func TestParseFeatures(t *testing.T) {
	s, err := ParseFeatures(strings.NewReader(sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, []string{"APP_MAIN", "NET"}, s.Names())
	assert.True(t, s.IsEnabled("NET"))
	assert.True(t, s.IsEnabled("CONFIG_NET"))
	assert.True(t, s.IsEnabled("APP_MAIN"))
	assert.False(t, s.IsEnabled("USB"), "modules are not y")
	assert.False(t, s.IsEnabled("DEBUG"))
	assert.False(t, s.IsEnabled("LOG_LEVEL"))
	assert.False(t, s.IsEnabled("INDENTED"))
	assert.False(t, s.IsEnabled("NAME"))
}

func TestNewSet(t *testing.T) {
	s := NewSet("CONFIG_A", "B")
	assert.True(t, s.IsEnabled("A"))
	assert.True(t, s.IsEnabled("CONFIG_B"))
	assert.False(t, s.IsEnabled("C"))
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "prj.config")
	require.NoError(t, os.WriteFile(p, []byte("CONFIG_X=y\n"), 0o644))

	s, err := ParseFile(p)
	require.NoError(t, err)
	assert.True(t, s.IsEnabled("X"))

	_, err = ParseFile(filepath.Join(dir, "missing"))
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeNotFound))
}
