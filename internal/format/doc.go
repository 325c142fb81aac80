// Package format renders scanned source text either as a readable, indented
// listing (Beautify) or as a compact single-pass rendering with comments and
// redundant whitespace removed (Minify).
//
// Both entry points are pure functions of their input: no shared state, no
// I/O, safe for concurrent use. They never fail; on any internal
// inconsistency the original input is returned unchanged, because corrupting
// user code is worse than not reformatting it. String and pattern literal
// interiors are copied verbatim and never re-indented or collapsed.
//
// Dependencies: internal/scanner, internal/segment.
package format
