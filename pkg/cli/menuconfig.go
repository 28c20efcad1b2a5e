/*
Copyright © 2025 Xiaofeng Zu
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/matthewzu/simple-build-framework/pkg/kconfig"
)

func menuconfigCmd() *cli.Command {
	return &cli.Command{
		Name:      "menuconfig",
		Usage:     "Edit the configuration of a project and regenerate its build script",
		ArgsUsage: "PROJECT",
		Description: `Run menuconfig against PROJECT/config/prj.config, regenerate config.h and
write the build script again. The project must have been generated once.

The generated "config" target runs this command.`,
		Flags: []cli.Flag{
			srcFlag(),
			generatorFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
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

			runner := kconfig.NewRunner(b.src, prj)
			if err := runner.Menu(ctx); err != nil {
				return fmt.Errorf("failed to configure project %q: %w", prj, err)
			}

			return b.write(prj)
		},
	}
}
