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
	"bufio"
	"io"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/matthewzu/simple-build-framework/pkg/errors"
)

// Prefix starts every Kconfig symbol in a .config file.
const Prefix = "CONFIG_"

var enabledPattern = regexp.MustCompile(`^CONFIG_(\S+)=y\s*$`)

// Features answers whether a feature is enabled.
type Features interface {
	IsEnabled(name string) bool
}

// Set is the set of enabled Kconfig symbols, stored without the CONFIG_ prefix.
type Set map[string]struct{}

// NewSet returns a set holding names.
func NewSet(names ...string) Set {
	s := make(Set, len(names))
	for _, n := range names {
		s[strings.TrimPrefix(n, Prefix)] = struct{}{}
	}
	return s
}

// IsEnabled reports whether name, with or without the CONFIG_ prefix, is set to y.
func (s Set) IsEnabled(name string) bool {
	_, ok := s[strings.TrimPrefix(name, Prefix)]
	return ok
}

// Names returns the enabled symbols in sorted order.
func (s Set) Names() []string {
	names := make([]string, 0, len(s))
	for n := range s {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ParseFeatures reads .config content from r.
func ParseFeatures(r io.Reader) (Set, error) {
	s := make(Set)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if m := enabledPattern.FindStringSubmatch(sc.Text()); m != nil {
			s[m[1]] = struct{}{}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeFilesystem, "read kconfig output", err)
	}
	return s, nil
}

// ParseFile reads the .config file at path.
func ParseFile(path string) (Set, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithContext(errors.ErrCodeNotFound, "kconfig output does not exist", err,
				map[string]any{"file": path})
		}
		return nil, errors.WrapWithContext(errors.ErrCodeFilesystem, "open kconfig output", err,
			map[string]any{"file": path})
	}
	defer f.Close()
	return ParseFeatures(f)
}
