// Package logging provides structured logging utilities for zmake.
//
// # Overview
//
// This package wraps the standard library slog package with zmake defaults
// and conventions for consistent logging across all packages. It supports
// environment-based log level configuration, module/version context injection,
// and automatic source location tracking for debug logs.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages, such as a missing source path
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// Setting the default logger from LOG_LEVEL, as cli.Execute does before
// flags are parsed:
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("zmake", "v1.0.0")
//
//	    slog.Info("build script written", "path", "prj/Makefile")
//	    slog.Debug("module skipped", "module", "net", "feature", "NET")
//	}
//
// Creating a custom logger:
//
//	logger := logging.NewStructuredLogger("zmake", "v1.0.0", "debug")
//	logger.Info("generating", "backend", "ninja")
//
// Setting explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("zmake", "v1.0.0", "warn")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug zmake generate prj
//	LOG_LEVEL=error zmake generate -g ninja prj
//
// If LOG_LEVEL is not set, defaults to INFO level.
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "WARN",
//	    "msg": "source path does not exist",
//	    "module": "zmake",
//	    "version": "v1.0.0",
//	    "entity": "core",
//	    "path": "/src/core/missing"
//	}
//
// Debug logs include source location.
//
// # Integration
//
// This package is used by:
//   - pkg/cli - CLI command logging and the per-run id
//   - pkg/entity - missing source path warnings
//   - pkg/project - system target and feature gate decisions
//   - pkg/kconfig - external tool invocations
package logging
