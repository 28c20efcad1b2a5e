// Package vars implements the variable store of a zmake project.
//
// A variable is a named, immutable string. Its value is resolved once, when
// it is defined: every $(NAME) reference in the raw value is replaced by the
// value of an already defined variable. Inserted values are never re-scanned,
// so expansion is a single textual pass and cannot recurse.
//
//	s := vars.NewStore()
//	s.Define("ROOT", "/src", "source root")
//	s.Define("INC", "$(ROOT)/include", "public headers")
//	v, _ := s.Lookup("INC") // v.Value == "/src/include"
//
// Redefinition is not an error. The first definition wins and the later name
// is recorded in Shadowed so callers can report it.
//
// FormatForBackend rewrites reference syntax that is passed through to the
// build tool, for example "$(PRJ_PATH)/libs" becomes "$PRJ_PATH/libs" for
// ninja.
package vars
