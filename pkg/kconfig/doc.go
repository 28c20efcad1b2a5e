// Package kconfig drives the Kconfig tools and reads their output.
//
// A project keeps its feature selection in <project>/config/prj.config and
// the matching C header in <project>/config/config.h. Runner invokes the
// kconfiglib tools to produce them:
//
//	genconfig --header-path config/config.h --config-out config/prj.config
//	menuconfig
//
// with srctree pointing at the source root so the root Kconfig file is found.
//
// ParseFeatures reads a .config file and collects every CONFIG_<NAME>=y line:
//
//	f, err := kconfig.ParseFile("prj/config/prj.config")
//	if f.IsEnabled("NET") { ... }
package kconfig
