// Package rope provides a mutable rope data structure for efficient text
// storage and editing.
//
// A rope is a height-balanced binary tree of string fragments: leaves hold
// the actual text, internal nodes cache the byte count of their left
// subtree so indexed access can route left or right without scanning.
// Edits split the tree at the edit point and reassemble it through
// concatenation, which restores the AVL balance invariant with rotations
// as it goes. This avoids the O(n) cost of shifting a flat buffer on every
// edit of a large document.
//
// Key features:
//   - O(log n) insertion, deletion, and byte access
//   - Substring extraction without materializing the whole buffer
//   - Small neighbouring fragments merge back into a single leaf, so
//     heavily edited regions do not fragment without bound
//   - Streaming construction and output via io.Reader / io.Writer
//
// Basic usage:
//
//	r := rope.FromString("hello world")
//	_ = r.Insert(5, ",")    // "hello, world"
//	_ = r.Delete(0, 7)      // "world"
//	text := r.String()      // "world"
//
// Offsets are byte offsets; the rope stores bytes and never interprets
// them, so callers working with UTF-8 text are responsible for splitting
// at rune boundaries.
//
// A Rope is not safe for concurrent use. Callers must serialize all
// access to an instance: one writer at a time, and no readers while a
// mutation is in progress. Note that Slice may restructure the tree even
// though it is logically a read.
package rope
