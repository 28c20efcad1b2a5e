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

package vars

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/matthewzu/simple-build-framework/pkg/errors"
)

var referencePattern = regexp.MustCompile(`\$\(([^()]*)\)`)

// Variable is a named value resolved at definition time.
type Variable struct {
	Name        string `json:"name" yaml:"name"`
	Value       string `json:"value" yaml:"value"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Store holds the variables of one project in definition order.
type Store struct {
	mu       sync.RWMutex
	byName   map[string]*Variable
	order    []*Variable
	shadowed []string
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		byName: make(map[string]*Variable),
	}
}

// Define resolves raw and stores it under name. If name is already defined
// the existing variable is returned unchanged and the name is recorded as
// shadowed. Nothing is stored when raw references an undefined variable.
func (s *Store) Define(name, raw, description string) (*Variable, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "variable name is empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.byName[name]; ok {
		s.shadowed = append(s.shadowed, name)
		return existing, nil
	}

	value, err := s.dereference(raw)
	if err != nil {
		return nil, errors.WrapEntity(name, "resolve variable value", err)
	}

	v := &Variable{Name: name, Value: value, Description: description}
	s.byName[name] = v
	s.order = append(s.order, v)
	return v, nil
}

// Lookup returns the variable registered under name.
func (s *Store) Lookup(name string) (*Variable, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.byName[name]
	return v, ok
}

// Dereference replaces every $(NAME) in text with the value of NAME.
func (s *Store) Dereference(text string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dereference(text)
}

func (s *Store) dereference(text string) (string, error) {
	matches := referencePattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text, nil
	}

	var b strings.Builder
	last := 0
	for _, m := range matches {
		name := text[m[2]:m[3]]
		v, ok := s.byName[name]
		if !ok {
			return "", errors.NewWithContext(errors.ErrCodeUndefinedVariable,
				fmt.Sprintf("%q could not be referenced before it is defined", name),
				map[string]any{"variable": name})
		}
		b.WriteString(text[last:m[0]])
		b.WriteString(v.Value)
		last = m[1]
	}
	b.WriteString(text[last:])
	return b.String(), nil
}

// Variables returns all variables in definition order.
func (s *Store) Variables() []*Variable {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Variable, len(s.order))
	copy(out, s.order)
	return out
}

// Shadowed returns the names whose redefinition was ignored, in the order the
// redefinitions happened.
func (s *Store) Shadowed() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.shadowed))
	copy(out, s.shadowed)
	return out
}

// Count returns the number of defined variables.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}
