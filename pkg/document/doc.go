// Package document loads zmake entity documents.
//
// A document is a YAML mapping from entity name to declaration. The reserved
// top-level key "includes" lists further documents, relative to the source
// root, that are loaded after the including file:
//
//	includes:
//	  - core/core.yml
//
//	ROOT:
//	  type: var
//	  val: $(SRC_PATH)/src
//
//	core:
//	  type: lib
//	  desc: core library
//	  src:
//	    - $(ROOT)/core
//	  hdrdirs:
//	    - $(ROOT)/core/include
//	  cflags:
//	    all: -O2
//	    main.c: -DMAIN
//
//	app:
//	  type: app
//	  src: [$(ROOT)/app]
//	  libs: [core]
//	  linkflags: -static
//	  opt: APP
//
//	clean_all:
//	  type: target
//	  desc: remove everything
//	  cmd: rm -rf $(PRJ_PATH)
//
// Declarations keep the order they appear in, across includes. When a name is
// declared twice the first declaration is kept and the repeat is reported by
// Duplicates. Each declaration is decoded into a typed spec so malformed
// fields fail here, before any entity is built.
package document
