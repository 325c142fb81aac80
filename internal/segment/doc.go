// Package segment defines the classified spans produced by the scanner.
// Invariants:
//   - Segment.Text is the exact substring of the input, delimiters included.
//   - Concatenating all segments of a scan in order reproduces the input.
//   - Literal and comment segment interiors are opaque to downstream stages.
package segment
