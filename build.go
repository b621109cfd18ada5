package rope

// build constructs a minimal-height tree for s by bisecting at the byte
// midpoint until each fragment fits in a single leaf. Midpoint bisection
// keeps sibling heights within one of each other at every level, so the
// result is balanced by construction and needs no rotations. Returns nil
// for empty input.
func build(s string) *node {
	if len(s) == 0 {
		return nil
	}
	if len(s) <= maxLeafSize {
		return newLeaf(s)
	}
	mid := len(s) / 2
	n := &node{left: build(s[:mid]), right: build(s[mid:])}
	n.updateMetadata()
	return n
}
