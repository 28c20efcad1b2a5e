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

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matthewzu/simple-build-framework/pkg/errors"
)

func TestParseBackend(t *testing.T) {
	tests := []struct {
		in      string
		want    Backend
		wantErr bool
	}{
		{"make", BackendMake, false},
		{"ninja", BackendNinja, false},
		{"Ninja", BackendNinja, false},
		{" make ", BackendMake, false},
		{"cmake", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseBackend(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.HasCode(err, errors.ErrCodeUnsupportedBackend))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.IsValid())
		})
	}
}

func TestSupportedBackends(t *testing.T) {
	for _, b := range SupportedBackends() {
		assert.True(t, b.IsValid(), b.String())
	}
	assert.False(t, Backend("bazel").IsValid())
}

func TestSourceKind_IsValid(t *testing.T) {
	for _, k := range SupportedSourceKinds() {
		assert.True(t, k.IsValid(), k.String())
	}
	assert.False(t, SourceKind("fortran").IsValid())
	assert.False(t, SourceKind("").IsValid())
}
