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
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/matthewzu/simple-build-framework/pkg/errors"
	"github.com/matthewzu/simple-build-framework/pkg/types"
)

var patterns = []struct {
	glob string
	kind types.SourceKind
}{
	{"*.c", types.SourceC},
	{"*.cpp", types.SourceCPP},
	{"*.[sS]", types.SourceASM},
}

// Result is the outcome of discovering one path.
type Result struct {
	// Files maps absolute file paths to their language kind.
	Files map[string]types.SourceKind

	// Missing is set when the discovered path does not exist.
	Missing bool
}

// Paths returns the discovered file paths in lexical order.
func (r *Result) Paths() []string {
	paths := make([]string, 0, len(r.Files))
	for p := range r.Files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Classify returns the language kind of a file name, if it is a source file.
func Classify(name string) (types.SourceKind, bool) {
	for _, p := range patterns {
		if ok, _ := filepath.Match(p.glob, name); ok {
			return p.kind, true
		}
	}
	return "", false
}

// Discover collects the source files at path.
func Discover(path string) (*Result, error) {
	res := &Result{Files: make(map[string]types.SourceKind)}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeFilesystem, "resolve source path", err,
			map[string]any{"path": path})
	}

	info, err := os.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			res.Missing = true
			return res, nil
		}
		return nil, errors.WrapWithContext(errors.ErrCodeFilesystem, "stat source path", err,
			map[string]any{"path": abs})
	}

	if !info.IsDir() {
		if kind, ok := Classify(info.Name()); ok {
			res.Files[abs] = kind
		}
		return res, nil
	}

	err = filepath.WalkDir(abs, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if kind, ok := Classify(d.Name()); ok {
			res.Files[p] = kind
		}
		return nil
	})
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeFilesystem, "walk source directory", err,
			map[string]any{"path": abs})
	}

	return res, nil
}
