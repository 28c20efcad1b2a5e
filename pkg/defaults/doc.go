// Package defaults provides centralized configuration constants for zmake.
//
// This package defines the file and directory names that make up a project
// layout, and the timeouts applied to external tool invocations. Centralizing
// these values keeps the generators, the Kconfig driver and the CLI in
// agreement about where things live.
//
// # Project Layout
//
// A generated project directory looks like:
//
//	<project>/
//	  Makefile | build.ninja
//	  config/
//	    prj.config
//	    config.h
//	  objs/<module>/*.o *.d
//	  libs/lib<name>.a
//	  apps/<name>
//
// # Usage
//
// Import and use constants directly:
//
//	import "github.com/matthewzu/simple-build-framework/pkg/defaults"
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.KconfigTimeout)
//	defer cancel()
package defaults
