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
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matthewzu/simple-build-framework/pkg/types"
)

func TestRegistry_NewRegistry(t *testing.T) {
	reg := NewRegistry()
	require.NotNil(t, reg)
	assert.Empty(t, reg.List())
}

func TestRegistry_RegisterAndGenerate(t *testing.T) {
	reg := NewRegistry()
	called := false
	reg.Register(types.Backend("echo"), RendererFunc(func(w io.Writer, p *Plan) error {
		called = true
		_, err := io.WriteString(w, p.Version)
		return err
	}))

	_, ok := reg.Get(types.Backend("echo"))
	assert.True(t, ok)

	var buf bytes.Buffer
	require.NoError(t, reg.Generate(&buf, types.Backend("echo"), &Plan{Version: "v9"}))
	assert.True(t, called)
	assert.Equal(t, "v9", buf.String())
}

func TestNewFromGlobal(t *testing.T) {
	reg := NewFromGlobal()
	assert.Equal(t, []types.Backend{types.BackendMake, types.BackendNinja}, reg.List())
}

func TestRegister_Duplicate(t *testing.T) {
	err := Register(types.BackendMake, &MakeRenderer{})
	require.Error(t, err)
	assert.Panics(t, func() { MustRegister(types.BackendNinja, &NinjaRenderer{}) })
}
