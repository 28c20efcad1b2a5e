// Package cli implements the command-line interface of zmake.
//
// # Overview
//
// zmake turns the YAML build description of a source tree (top.yml and the
// documents it includes) into a Makefile or build.ninja inside a project
// directory. Several projects can share one source tree, each with its own
// Kconfig configuration.
//
// # Commands
//
// generate - Write build scripts:
//
//	zmake generate [--src DIR] [--generator make|ninja] [--defconfig FILE] [--no-kconfig] PROJECT...
//
// Runs the Kconfig step when the source tree has a Kconfig file, loads the
// description and writes PROJECT/Makefile or PROJECT/build.ninja. Projects are
// generated concurrently.
//
// menuconfig - Reconfigure a project:
//
//	zmake menuconfig [--src DIR] [--generator make|ninja] PROJECT
//
// Runs menuconfig on PROJECT/config/prj.config, regenerates config.h and
// rewrites the build script. The generated "config" target calls this.
//
// graph - Inspect a project:
//
//	zmake graph [--src DIR] [--format yaml|json|table] [--output FILE] PROJECT
//
// Prints the resolved variables, libraries, applications and targets, plus
// ignored duplicates, feature-skipped modules and missing source paths.
//
// # Global Flags
//
//	--log-level    Log level: debug, info, warn, error (default: info)
//	--verbose, -V  Debug logging; also added to the generated config target
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Usage Examples
//
// Generate a Ninja file for two boards from one tree:
//
//	zmake generate --src ~/fw -g ninja --defconfig ~/fw/configs/evk_defconfig out/evk out/sim
//
// Dump the resolved graph as JSON:
//
//	zmake graph --src ~/fw -o graph.json out/evk
//
// # Environment Variables
//
//	LOG_LEVEL        Set logging verbosity (debug, info, warn, error)
//	ZMAKE_GENERATOR  Default backend for --generator
//
// # Exit Codes
//
//	0  Success
//	1  Invalid arguments, description errors or Kconfig failures
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to:
//   - pkg/document - top.yml decoding and includes
//   - pkg/project - variable store, entity graph and build script output
//   - pkg/kconfig - genconfig/menuconfig and feature parsing
//   - pkg/serializer - graph dump formatting
//   - pkg/logging - Structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/matthewzu/simple-build-framework/pkg/cli.version=1.0.0'"
package cli
