/*
Copyright © 2025 Xiaofeng Zu
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/matthewzu/simple-build-framework/pkg/defaults"
	"github.com/matthewzu/simple-build-framework/pkg/document"
	"github.com/matthewzu/simple-build-framework/pkg/kconfig"
	"github.com/matthewzu/simple-build-framework/pkg/project"
	"github.com/matthewzu/simple-build-framework/pkg/serializer"
	"github.com/matthewzu/simple-build-framework/pkg/types"
)

// envGenerator overrides the default backend.
const envGenerator = "ZMAKE_GENERATOR"

// Shared flag names.
const (
	flagSrc       = "src"
	flagGenerator = "generator"
	flagOutput    = "output"
	flagFormat    = "format"
	flagVerbose   = "verbose"
)

func srcFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    flagSrc,
		Aliases: []string{"s"},
		Value:   ".",
		Usage:   "source tree holding " + defaults.RootDocument,
	}
}

func generatorFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    flagGenerator,
		Aliases: []string{"g"},
		Value:   types.BackendMake.String(),
		Usage:   fmt.Sprintf("build script backend (supported values: %s)", types.SupportedBackends()),
		Sources: cli.EnvVars(envGenerator),
	}
}

func outputFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    flagOutput,
		Aliases: []string{"o"},
		Usage:   "output file path (default: stdout)",
	}
}

func formatFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    flagFormat,
		Aliases: []string{"t"},
		Usage: fmt.Sprintf("output format (supported values: %s, default: inferred from --output, else yaml)",
			serializer.SupportedFormats()),
	}
}

// parseBackend reads the --generator flag.
func parseBackend(cmd *cli.Command) (types.Backend, error) {
	return types.ParseBackend(cmd.String(flagGenerator))
}

// parseOutputFormat reads the --format flag, falling back to the --output
// file extension.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	raw := cmd.String(flagFormat)
	if raw == "" {
		return serializer.FormatFromPath(cmd.String(flagOutput), serializer.FormatYAML), nil
	}
	f := serializer.Format(raw)
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q, supported values: %v", raw, serializer.SupportedFormats())
	}
	return f, nil
}

// projectArgs returns the project directories named on the command line.
func projectArgs(cmd *cli.Command, limit int) ([]string, error) {
	args := cmd.Args().Slice()
	if len(args) == 0 {
		return nil, fmt.Errorf("%s: a project directory is required", cmd.Name)
	}
	if limit > 0 && len(args) > limit {
		return nil, fmt.Errorf("%s: expected at most %d project directory, got %d", cmd.Name, limit, len(args))
	}
	return args, nil
}

// build holds the settings shared by every project of one invocation.
type build struct {
	src     string
	backend types.Backend
	verbose bool
}

func newBuild(cmd *cli.Command) (*build, error) {
	backend, err := parseBackend(cmd)
	if err != nil {
		return nil, err
	}
	src, err := filepath.Abs(cmd.String(flagSrc))
	if err != nil {
		return nil, fmt.Errorf("invalid source tree %q: %w", cmd.String(flagSrc), err)
	}
	return &build{
		src:     src,
		backend: backend,
		verbose: cmd.Bool(flagVerbose),
	}, nil
}

// hasKconfig reports whether the source tree carries a Kconfig file.
func (b *build) hasKconfig() bool {
	_, err := os.Stat(filepath.Join(b.src, defaults.KconfigFile))
	return err == nil
}

// features reads the enabled features of prj. A project that was never
// configured has none.
func (b *build) features(prj string) (kconfig.Set, error) {
	path := filepath.Join(prj, defaults.ConfigDir, defaults.ConfigFile)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return kconfig.NewSet(), nil
	}
	return kconfig.ParseFile(path)
}

// load assembles the project in prj from the source tree.
func (b *build) load(prj string, features kconfig.Features) (*project.Project, error) {
	p, err := project.New(
		project.WithSourceRoot(b.src),
		project.WithProjectRoot(prj),
		project.WithBackend(b.backend),
		project.WithVerbose(b.verbose),
		project.WithVersion(version),
		project.WithFeatures(features),
		project.WithExecutable(name),
	)
	if err != nil {
		return nil, err
	}

	doc, err := document.Load(b.src, defaults.RootDocument)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", defaults.RootDocument, err)
	}
	slog.Debug("description loaded", "project", prj, "files", doc.Files(), "entities", len(doc.Entities()))
	if err := p.Load(doc); err != nil {
		return nil, fmt.Errorf("failed to load project %q: %w", prj, err)
	}
	if err := p.AddSystemTargets(); err != nil {
		return nil, fmt.Errorf("failed to add system targets: %w", err)
	}
	return p, nil
}
