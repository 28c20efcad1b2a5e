/*
Copyright © 2025 Xiaofeng Zu
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/matthewzu/simple-build-framework/pkg/kconfig"
)

func generateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "generate",
		Aliases:               []string{"gen"},
		EnableShellCompletion: true,
		Usage:                 "Generate the build script of one or more projects",
		ArgsUsage:             "PROJECT...",
		Description: `Load top.yml from the source tree and write PROJECT/Makefile or
PROJECT/build.ninja for every project directory given.

When the source tree carries a Kconfig file, PROJECT/config/prj.config and
PROJECT/config/config.h are generated first (from --defconfig when given).
Projects are generated concurrently and share nothing.`,
		Flags: []cli.Flag{
			srcFlag(),
			generatorFlag(),
			&cli.StringFlag{
				Name:    "defconfig",
				Aliases: []string{"d"},
				Usage:   "default configuration used to seed prj.config",
			},
			&cli.BoolFlag{
				Name:  "no-kconfig",
				Usage: "skip the Kconfig step and reuse an existing prj.config",
			},
			&cli.StringFlag{
				Name:  "metrics-file",
				Usage: "write generation metrics in Prometheus text format to this file",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			projects, err := projectArgs(cmd, 0)
			if err != nil {
				return err
			}
			b, err := newBuild(cmd)
			if err != nil {
				return err
			}

			runKconfig := !cmd.Bool("no-kconfig") && b.hasKconfig()
			defconfig := cmd.String("defconfig")
			if defconfig != "" && !runKconfig {
				slog.Warn("defconfig ignored, Kconfig step disabled", "defconfig", defconfig)
			}

			g, gctx := errgroup.WithContext(ctx)
			for _, prj := range projects {
				g.Go(func() error {
					return b.generate(gctx, prj, runKconfig, defconfig)
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			if path := cmd.String("metrics-file"); path != "" {
				if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
					return fmt.Errorf("failed to write metrics to %q: %w", path, err)
				}
			}
			return nil
		},
	}
}

// generate configures and writes one project.
func (b *build) generate(ctx context.Context, prj string, runKconfig bool, defconfig string) error {
	prj, err := filepath.Abs(prj)
	if err != nil {
		return fmt.Errorf("invalid project directory %q: %w", prj, err)
	}

	if runKconfig {
		runner := kconfig.NewRunner(b.src, prj)
		if err := runner.Generate(ctx, defconfig); err != nil {
			return fmt.Errorf("failed to configure project %q: %w", prj, err)
		}
	}

	return b.write(prj)
}

// write loads the project with its current features and writes the build
// script.
func (b *build) write(prj string) error {
	features, err := b.features(prj)
	if err != nil {
		return fmt.Errorf("failed to read features of %q: %w", prj, err)
	}

	p, err := b.load(prj, features)
	if err != nil {
		return err
	}

	path, err := p.WriteBuildFile()
	if err != nil {
		return fmt.Errorf("failed to write build script of %q: %w", prj, err)
	}

	slog.Debug("project generated",
		"project", prj,
		"path", path,
		"libraries", len(p.Graph().Libraries()),
		"applications", len(p.Graph().Applications()),
		"skipped", len(p.Skipped()))
	return nil
}
