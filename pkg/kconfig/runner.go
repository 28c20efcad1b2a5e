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
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/matthewzu/simple-build-framework/pkg/defaults"
	"github.com/matthewzu/simple-build-framework/pkg/errors"
)

// Default tool names, looked up in PATH.
const (
	DefaultGenConfig  = "genconfig"
	DefaultMenuConfig = "menuconfig"
)

// Runner invokes the Kconfig tools for one project.
type Runner struct {
	// SourceTree is the directory holding the root Kconfig file.
	SourceTree string
	// ConfigDir receives prj.config and config.h.
	ConfigDir string

	GenConfig  string
	MenuConfig string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewRunner returns a runner for the project rooted at projectDir.
func NewRunner(sourceTree, projectDir string) *Runner {
	return &Runner{
		SourceTree: sourceTree,
		ConfigDir:  filepath.Join(projectDir, defaults.ConfigDir),
		GenConfig:  DefaultGenConfig,
		MenuConfig: DefaultMenuConfig,
		Stdin:      os.Stdin,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
	}
}

// ConfigPath returns the path of prj.config.
func (r *Runner) ConfigPath() string {
	return filepath.Join(r.ConfigDir, defaults.ConfigFile)
}

// HeaderPath returns the path of config.h.
func (r *Runner) HeaderPath() string {
	return filepath.Join(r.ConfigDir, defaults.ConfigHeader)
}

// Generate writes prj.config and config.h. A non-empty defconfig seeds the
// selection; otherwise the Kconfig defaults apply.
func (r *Runner) Generate(ctx context.Context, defconfig string) error {
	if err := os.MkdirAll(r.ConfigDir, defaults.DirMode); err != nil {
		return errors.WrapWithContext(errors.ErrCodeFilesystem, "create config directory", err,
			map[string]any{"dir": r.ConfigDir})
	}

	env := map[string]string{"KCONFIG_CONFIG": ""}
	if defconfig != "" {
		abs, err := filepath.Abs(defconfig)
		if err != nil {
			return errors.Wrap(errors.ErrCodeFilesystem, "resolve defconfig path", err)
		}
		if _, err := os.Stat(abs); err != nil {
			return errors.WrapWithContext(errors.ErrCodeNotFound, "defconfig does not exist", err,
				map[string]any{"file": abs})
		}
		env["KCONFIG_CONFIG"] = abs
	}

	ctx, cancel := context.WithTimeout(ctx, defaults.KconfigTimeout)
	defer cancel()

	return r.run(ctx, r.GenConfig, env,
		"--header-path", r.HeaderPath(),
		"--config-out", r.ConfigPath())
}

// Menu runs the interactive configurator on the existing prj.config and then
// regenerates config.h from the result.
func (r *Runner) Menu(ctx context.Context) error {
	if _, err := os.Stat(r.ConfigPath()); err != nil {
		return errors.WrapWithContext(errors.ErrCodeNotFound,
			"project is not configured, run generate first", err,
			map[string]any{"file": r.ConfigPath()})
	}

	env := map[string]string{"KCONFIG_CONFIG": r.ConfigPath()}
	if err := r.run(ctx, r.MenuConfig, env); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaults.KconfigTimeout)
	defer cancel()

	return r.run(ctx, r.GenConfig, env,
		"--header-path", r.HeaderPath(),
		"--config-out", r.ConfigPath())
}

// run executes tool with srctree set. Entries of env with an empty value are
// removed from the inherited environment.
func (r *Runner) run(ctx context.Context, tool string, env map[string]string, args ...string) error {
	cmd := exec.CommandContext(ctx, tool, args...)
	cmd.Dir = r.ConfigDir
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	env["srctree"] = r.SourceTree
	cmd.Env = mergeEnv(os.Environ(), env)

	slog.Debug("running kconfig tool", "tool", tool, "args", args, "srctree", r.SourceTree)
	if err := cmd.Run(); err != nil {
		return errors.WrapWithContext(errors.ErrCodeExternalTool,
			fmt.Sprintf("%s failed", filepath.Base(tool)), err,
			map[string]any{"tool": tool, "args": args})
	}
	return nil
}

func mergeEnv(base []string, env map[string]string) []string {
	out := make([]string, 0, len(base)+len(env))
	for _, kv := range base {
		k, _, _ := strings.Cut(kv, "=")
		if _, ok := env[k]; ok {
			continue
		}
		out = append(out, kv)
	}
	for k, v := range env {
		if v != "" {
			out = append(out, k+"="+v)
		}
	}
	return out
}
