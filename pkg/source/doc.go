// Package source discovers compilable files and resolves their compiler flags.
//
// # Discovery
//
// Discover classifies a single path. A regular file yields at most one entry
// and a directory is walked recursively. Files are matched by name:
//
//	*.c     C
//	*.cpp   C++
//	*.[sS]  assembly
//
// A path that does not exist yields an empty Result with Missing set. This
// is advisory and callers decide whether to warn.
//
// # Flags
//
// Each language has a FlagTable keyed by file basename, with the reserved key
// "all" applying to every file of that language:
//
//	source.ResolveFlags("main.c", types.SourceC, cflags, cppflags, asmflags)
//	// cflags["all"] + " " + cflags["main.c"], empty parts dropped
package source
