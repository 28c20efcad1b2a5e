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
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/matthewzu/simple-build-framework/pkg/errors"
)

// IncludesKey is the reserved top-level key listing included documents.
const IncludesKey = "includes"

// Entity is one named declaration.
type Entity struct {
	Name string
	Type EntityType

	// File and Line locate the declaration.
	File string
	Line int

	// Exactly one spec is set, matching Type.
	Variable    *VariableSpec
	Library     *LibrarySpec
	Application *ApplicationSpec
	Target      *TargetSpec
}

// Duplicate records a declaration ignored because its name was taken.
type Duplicate struct {
	Name      string `json:"name" yaml:"name"`
	File      string `json:"file" yaml:"file"`
	Line      int    `json:"line" yaml:"line"`
	FirstFile string `json:"firstFile" yaml:"firstFile"`
}

// Document is the merged content of a root document and its includes.
type Document struct {
	files      []string
	entities   []*Entity
	byName     map[string]*Entity
	duplicates []Duplicate
}

func newDocument() *Document {
	return &Document{byName: make(map[string]*Entity)}
}

// Entities returns all declarations in load order.
func (d *Document) Entities() []*Entity {
	return append([]*Entity(nil), d.entities...)
}

// Files returns the absolute paths of all loaded documents in load order.
func (d *Document) Files() []string {
	return append([]string(nil), d.files...)
}

// Duplicates returns ignored repeated declarations.
func (d *Document) Duplicates() []Duplicate {
	return append([]Duplicate(nil), d.duplicates...)
}

func (d *Document) add(e *Entity) {
	if first, ok := d.byName[e.Name]; ok {
		d.duplicates = append(d.duplicates, Duplicate{
			Name:      e.Name,
			File:      e.File,
			Line:      e.Line,
			FirstFile: first.File,
		})
		slog.Debug("duplicate declaration ignored", "entity", e.Name, "file", e.File, "first", first.File)
		return
	}
	d.byName[e.Name] = e
	d.entities = append(d.entities, e)
}

// Load reads rootFile and every document it includes. Relative paths are
// resolved against srcRoot.
func Load(srcRoot, rootFile string) (*Document, error) {
	l := &loader{
		root:   srcRoot,
		doc:    newDocument(),
		loaded: make(map[string]bool),
	}
	if err := l.load(rootFile); err != nil {
		return nil, err
	}
	return l.doc, nil
}

// Parse decodes a single document without following includes.
func Parse(data []byte, file string) (*Document, error) {
	doc := newDocument()
	if _, err := parseInto(doc, data, file); err != nil {
		return nil, err
	}
	return doc, nil
}

// loader follows includes depth first. stack holds the files currently being
// loaded and detects include cycles.
type loader struct {
	root   string
	doc    *Document
	loaded map[string]bool
	stack  []string
}

func (l *loader) load(name string) error {
	path := name
	if !filepath.IsAbs(path) {
		path = filepath.Join(l.root, path)
	}
	path = filepath.Clean(path)

	if slices.Contains(l.stack, path) {
		return errors.NewWithContext(errors.ErrCodeInvalidConfig,
			"include cycle: "+strings.Join(append(l.stack, path), " -> "),
			map[string]any{"file": path})
	}
	if l.loaded[path] {
		slog.Debug("document already loaded", "file", path)
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.WrapWithContext(errors.ErrCodeNotFound, "document does not exist", err,
				map[string]any{"file": path})
		}
		return errors.WrapWithContext(errors.ErrCodeFilesystem, "read document", err,
			map[string]any{"file": path})
	}

	l.loaded[path] = true
	l.doc.files = append(l.doc.files, path)
	slog.Debug("loading document", "file", path)

	includes, err := parseInto(l.doc, data, path)
	if err != nil {
		return err
	}

	l.stack = append(l.stack, path)
	defer func() { l.stack = l.stack[:len(l.stack)-1] }()

	for _, inc := range includes {
		if err := l.load(inc); err != nil {
			return err
		}
	}
	return nil
}

// parseInto decodes data, adds its declarations to doc and returns its includes.
func parseInto(doc *Document, data []byte, file string) ([]string, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeInvalidConfig, "parse document", err,
			map[string]any{"file": file})
	}
	if root.Kind == 0 || len(root.Content) == 0 || root.Content[0].Tag == "!!null" {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidConfig, file+" is empty",
			map[string]any{"file": file})
	}

	top := root.Content[0]
	if top.Kind != yaml.MappingNode {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidConfig,
			"document must be a mapping of entity names", map[string]any{"file": file, "line": top.Line})
	}

	var includes []string
	for i := 0; i+1 < len(top.Content); i += 2 {
		key, val := top.Content[i], top.Content[i+1]

		if key.Value == IncludesKey {
			if err := val.Decode(&includes); err != nil {
				return nil, errors.WrapWithContext(errors.ErrCodeInvalidConfig,
					"includes must be a list of paths", err, map[string]any{"file": file, "line": val.Line})
			}
			continue
		}

		e, err := decodeEntity(key.Value, val, file)
		if err != nil {
			return nil, err
		}
		doc.add(e)
	}
	return includes, nil
}

func decodeEntity(name string, n *yaml.Node, file string) (*Entity, error) {
	if n.Kind != yaml.MappingNode {
		return nil, entityError(name, file, n, "declaration must be a mapping", nil)
	}

	e := &Entity{Name: name, File: file, Line: n.Line}

	keys := make([]string, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		keys = append(keys, n.Content[i].Value)
		if n.Content[i].Value == "type" {
			e.Type = EntityType(n.Content[i+1].Value)
		}
	}
	if e.Type == "" {
		return nil, entityError(name, file, n, "missing type", nil)
	}
	if !e.Type.IsValid() {
		return nil, entityError(name, file, n,
			fmt.Sprintf("invalid type %q (supported values: %v)", e.Type, SupportedTypes()), nil)
	}
	for _, k := range keys {
		if !slices.Contains(allowedKeys[e.Type], k) {
			slog.Warn("unknown field ignored", "entity", name, "field", k, "file", file)
		}
	}

	var err error
	switch e.Type {
	case TypeVariable:
		e.Variable = &VariableSpec{}
		err = n.Decode(e.Variable)
	case TypeLibrary:
		e.Library = &LibrarySpec{}
		err = n.Decode(e.Library)
	case TypeApplication:
		e.Application = &ApplicationSpec{}
		err = n.Decode(e.Application)
	case TypeTarget:
		e.Target = &TargetSpec{}
		err = n.Decode(e.Target)
	}
	if err != nil {
		return nil, entityError(name, file, n, "decode "+e.Type.String(), err)
	}
	return e, nil
}

// entityError attributes a decode failure to the declaration. Flag table
// errors keep their INVALID_FLAG_SPEC code.
func entityError(name, file string, n *yaml.Node, msg string, cause error) error {
	code := errors.ErrCodeInvalidConfig
	if errors.HasCode(cause, errors.ErrCodeInvalidFlagSpec) {
		code = errors.ErrCodeInvalidFlagSpec
	}
	return &errors.StructuredError{
		Code:    code,
		Message: msg,
		Entity:  name,
		Cause:   cause,
		Context: map[string]any{"file": file, "line": n.Line},
	}
}
