// Package section defines the fixed binary layout of the options block
// header: the byte offset, type and name of every header field, and the
// parse/serialize pair over that layout.
//
// The layout is the single source of truth shared by the option registry
// (which registers option names against header slots) and the block
// encoder (which places resolved values into those slots). It is preserved
// bit-for-bit across versions.
package section
