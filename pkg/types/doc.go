// Package types defines the enumerations shared by the zmake packages: the
// build-script backend and the source language kind of a compiled object.
package types
