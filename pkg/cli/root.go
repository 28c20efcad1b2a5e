/*
Copyright © 2025 Xiaofeng Zu
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	"github.com/matthewzu/simple-build-framework/pkg/logging"
)

const (
	name           = "zmake"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Execute runs the zmake command line and exits non-zero on failure.
// This is called by main.main().
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM so running Kconfig tools are stopped
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down gracefully...")
		cancel()
	}()

	// Flags override this once parsed, see initLogger
	logging.SetDefaultStructuredLogger(name, version)

	if err := newRootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Usage:                 "generate Makefile or build.ninja from YAML build descriptions",
		Version:               fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		EnableShellCompletion: true,
		Description: `zmake reads top.yml from a source tree, resolves variables, libraries,
applications and targets, and writes a build script into each project directory.

When the source tree carries a Kconfig file, the project configuration is
generated first and its enabled features gate modules declaring "opt".`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "log level (debug, info, warn, error)",
				Sources: cli.EnvVars(logging.EnvLogLevel),
			},
			&cli.BoolFlag{
				Name:    flagVerbose,
				Aliases: []string{"V"},
				Usage:   "debug logging, also passed on by the generated config target",
			},
		},
		Before: initLogger,
		Commands: []*cli.Command{
			generateCmd(),
			menuconfigCmd(),
			graphCmd(),
		},
	}
}

// initLogger configures slog after flags are parsed so --log-level and
// --verbose take effect before any command executes.
func initLogger(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	level := cmd.String("log-level")
	if cmd.Bool(flagVerbose) {
		level = "debug"
	}
	logging.SetDefaultStructuredLoggerWithLevel(name, version, level)
	slog.SetDefault(slog.Default().With("run_id", uuid.NewString()))

	slog.Debug("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
		"logLevel", level)
	return ctx, nil
}
