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

	"github.com/urfave/cli/v3"

	"github.com/matthewzu/simple-build-framework/pkg/serializer"
)

func graphCmd() *cli.Command {
	return &cli.Command{
		Name:                  "graph",
		EnableShellCompletion: true,
		Usage:                 "Print the resolved entities of a project",
		ArgsUsage:             "PROJECT",
		Description: `Resolve variables, libraries, applications and targets as generate would,
without running Kconfig or writing a build script. Features are read from an
existing PROJECT/config/prj.config.

The dump also lists ignored duplicate declarations, modules skipped by a
disabled feature and source paths that do not exist.`,
		Flags: []cli.Flag{
			srcFlag(),
			generatorFlag(),
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}
			projects, err := projectArgs(cmd, 1)
			if err != nil {
				return err
			}
			b, err := newBuild(cmd)
			if err != nil {
				return err
			}
			prj, err := filepath.Abs(projects[0])
			if err != nil {
				return fmt.Errorf("invalid project directory %q: %w", projects[0], err)
			}

			features, err := b.features(prj)
			if err != nil {
				return fmt.Errorf("failed to read features of %q: %w", prj, err)
			}
			p, err := b.load(prj, features)
			if err != nil {
				return err
			}

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String(flagOutput))
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			return ser.Serialize(ctx, p.Snapshot())
		},
	}
}
