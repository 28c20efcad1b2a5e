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

package project

import (
	"github.com/matthewzu/simple-build-framework/pkg/kconfig"
	"github.com/matthewzu/simple-build-framework/pkg/types"
)

// Config holds the settings of one project.
type Config struct {
	sourceRoot  string
	projectRoot string
	backend     types.Backend
	verbose     bool
	version     string
	features    kconfig.Features
	executable  string
}

// Option is a functional option for configuring a Project.
type Option func(*Config)

// WithSourceRoot sets the directory holding top.yml and the sources.
func WithSourceRoot(dir string) Option {
	return func(c *Config) {
		c.sourceRoot = dir
	}
}

// WithProjectRoot sets the output directory of the project.
func WithProjectRoot(dir string) Option {
	return func(c *Config) {
		c.projectRoot = dir
	}
}

// WithBackend sets the build-script backend.
func WithBackend(b types.Backend) Option {
	return func(c *Config) {
		c.backend = b
	}
}

// WithVerbose makes the generated config target run zmake verbosely.
func WithVerbose(v bool) Option {
	return func(c *Config) {
		c.verbose = v
	}
}

// WithVersion sets the version written into the build-script header.
func WithVersion(v string) Option {
	return func(c *Config) {
		c.version = v
	}
}

// WithFeatures sets the enabled Kconfig features used to gate modules.
func WithFeatures(f kconfig.Features) Option {
	return func(c *Config) {
		c.features = f
	}
}

// WithExecutable sets the command the config target uses to re-run zmake.
func WithExecutable(exe string) Option {
	return func(c *Config) {
		c.executable = exe
	}
}

// NewConfig returns a Config with defaults applied before opts.
func NewConfig(opts ...Option) *Config {
	c := &Config{
		sourceRoot:  ".",
		projectRoot: ".",
		backend:     types.BackendMake,
		version:     "dev",
		features:    kconfig.NewSet(),
		executable:  "zmake",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SourceRoot returns the source root.
func (c *Config) SourceRoot() string { return c.sourceRoot }

// ProjectRoot returns the project root.
func (c *Config) ProjectRoot() string { return c.projectRoot }

// Backend returns the build-script backend.
func (c *Config) Backend() types.Backend { return c.backend }

// Verbose reports whether the config target runs zmake verbosely.
func (c *Config) Verbose() bool { return c.verbose }

// Version returns the version written into build scripts.
func (c *Config) Version() string { return c.version }

// Features returns the feature set gating modules.
func (c *Config) Features() kconfig.Features { return c.features }

// Executable returns the command used by the config target.
func (c *Config) Executable() string { return c.executable }
