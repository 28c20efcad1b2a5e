// Package project assembles one zmake generation run.
//
// A Project owns the variable store and the entity graph for a single
// project directory. Nothing is shared between projects, so several can be
// generated concurrently.
//
// Typical flow:
//
//	p, err := project.New(project.WithSourceRoot(src), project.WithProjectRoot(prj),
//	    project.WithBackend(types.BackendNinja), project.WithFeatures(features))
//	doc, err := document.Load(src, defaults.RootDocument)
//	err = p.Load(doc)
//	err = p.AddSystemTargets()
//	path, err := p.WriteBuildFile()
//
// New registers the system variables SRC_PATH, PRJ_PATH and KCONFIG_CONFIG.
// Load adds the declarations in document order and skips modules whose opt
// feature is disabled. AddSystemTargets adds config, all and clean unless the
// document already declares those names.
package project
