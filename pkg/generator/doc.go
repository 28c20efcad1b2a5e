// Package generator renders a resolved entity graph as a build script.
//
// Generation happens in two steps. BuildPlan walks the graph once and
// produces an ordered Plan of typed actions:
//
//	SectionAction    opens variables, libraries, applications or targets
//	AssignAction     one build-script variable
//	ModuleAction     opens one library or application
//	CompileAction    one source file to one object
//	ArchiveAction    objects to lib<name>.a
//	LinkAction       objects and libraries to an executable
//	PhonyAction      an alias for its dependencies
//	CommandAction    a shell command run after its dependencies
//
// A Renderer maps each action to text. Two renderers are registered at init
// time:
//
//   - make: a GNU Makefile with V=1 verbose toggling and per-object
//     dependency files
//   - ninja: a build.ninja with the fixed rules rule_cmd, rule_mkdir, rule_cc,
//     rule_ar and rule_ld
//
// Output depends only on the plan. The header carries the zmake version and
// no timestamp, so regenerating an unchanged project yields identical bytes.
//
// Usage:
//
//	plan := generator.BuildPlan(graph, version)
//	if err := generator.Generate(w, types.BackendNinja, plan); err != nil {
//	    return err
//	}
//
// Rendering durations, failures and action counts are exported as Prometheus
// metrics with the zmake_ prefix.
package generator
