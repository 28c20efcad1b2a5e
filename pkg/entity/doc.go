// Package entity holds the resolved build graph of a zmake project.
//
// A Graph owns four kinds of entity:
//
//   - Object: one compiled source file, owned by exactly one module
//   - Library: a module archived into lib<name>.a, with public header
//     directories
//   - Application: a module linked into an executable against libraries
//   - Target: a phony alias (dependencies only) or a command target
//
// Entities are built from typed specs. Every Add method constructs the whole
// entity before registering it, so a failed Add leaves the graph unchanged.
// Paths are expressed relative to the build tree with $(SRC_PATH) and
// $(PRJ_PATH) references, which the generators pass through to the build
// tool.
//
// Registration is first-wins within a kind. A second library named "core"
// is ignored and recorded in Shadowed. Reusing a name across kinds fails
// with DUPLICATE_ENTITY because both entities would emit the same rule.
package entity
