package rope

import (
	"io"
	"strings"
)

// Rope is a mutable balanced tree of string fragments representing one
// logical string. The zero value is an empty rope ready for use.
//
// Mutating methods validate their arguments before touching any node, so
// a failed call leaves the rope exactly as it was. A Rope is not safe for
// concurrent use; see the package documentation.
type Rope struct {
	root *node
}

// New creates an empty rope.
func New() *Rope {
	return &Rope{}
}

// FromString creates a rope containing s.
func FromString(s string) *Rope {
	return &Rope{root: build(s)}
}

// FromReader creates a rope from r's contents.
func FromReader(r io.Reader) (*Rope, error) {
	var b Builder
	if _, err := b.ReadFrom(r); err != nil {
		return nil, err
	}
	return b.Build(), nil
}

// Len returns the total byte count.
func (r *Rope) Len() int {
	if r.root == nil {
		return 0
	}
	return r.root.size
}

// IsEmpty reports whether the rope contains no text.
func (r *Rope) IsEmpty() bool {
	return r.Len() == 0
}

// String returns the full materialized text, "" for an empty rope.
// Use sparingly for large ropes; prefer Slice, Reader, or WriteTo.
func (r *Rope) String() string {
	if r.root == nil {
		return ""
	}
	var sb strings.Builder
	sb.Grow(r.root.size)
	appendTo(&sb, r.root)
	return sb.String()
}

// appendTo appends the subtree's text to sb in left-to-right order.
func appendTo(sb *strings.Builder, n *node) {
	if n.isLeaf() {
		sb.WriteString(n.value)
		return
	}
	appendTo(sb, n.left)
	appendTo(sb, n.right)
}

// Insert splices text in at offset, which must lie in [0, Len()].
// Inserting at 0 prepends, at Len() appends.
func (r *Rope) Insert(offset int, text string) error {
	if offset < 0 || offset > r.Len() {
		return ErrOffsetOutOfRange
	}
	if len(text) == 0 {
		return nil
	}
	if r.root == nil {
		r.root = build(text)
		return nil
	}
	left, right := split(r.root, offset)
	r.root = concat(concat(left, newLeaf(text)), right)
	return nil
}

// Delete removes the bytes in [start, end). Equal bounds are an immediate
// no-op with no validation at all, even when both are out of range;
// otherwise the range must satisfy 0 <= start < end <= Len().
func (r *Rope) Delete(start, end int) error {
	if start == end {
		return nil
	}
	if start < 0 || end > r.Len() || start > end {
		return ErrRangeInvalid
	}
	left, rest := split(r.root, start)
	_, right := split(rest, end-start)
	r.root = concat(left, right)
	return nil
}

// ByteAt returns the byte at offset, which must lie in [0, Len()).
func (r *Rope) ByteAt(offset int) (byte, error) {
	if offset < 0 || offset >= r.Len() {
		return 0, ErrOffsetOutOfRange
	}
	n := r.root
	for n != nil && !n.isLeaf() {
		if offset < n.weight {
			n = n.left
		} else {
			offset -= n.weight
			n = n.right
		}
	}
	if n == nil {
		return 0, ErrInvalidStructure
	}
	return n.value[offset], nil
}

// Slice returns the bytes in [start, end) as a string. The range must
// satisfy 0 <= start <= end <= Len().
//
// Reading a proper sub-range extracts the middle subtree and then
// reassembles the rope through concat, so node identity and tree shape
// may change as a side effect; the content never does. Requesting the
// full range returns the materialized string without restructuring.
func (r *Rope) Slice(start, end int) (string, error) {
	if start < 0 || end > r.Len() || start > end {
		return "", ErrRangeInvalid
	}
	if start == end {
		return "", nil
	}
	if start == 0 && end == r.Len() {
		return r.String(), nil
	}
	left, rest := split(r.root, start)
	mid, right := split(rest, end-start)

	var sb strings.Builder
	sb.Grow(end - start)
	appendTo(&sb, mid)

	r.root = concat(concat(left, mid), right)
	return sb.String(), nil
}

// IsBalanced reports whether every subtree's two children differ in
// height by at most one.
func (r *Rope) IsBalanced() bool {
	return measureHeight(r.root) >= 0
}

// measureHeight computes subtree height from scratch, short-circuiting
// with -1 as soon as any node violates the balance invariant.
func measureHeight(n *node) int {
	if n == nil {
		return 0
	}
	if n.isLeaf() {
		return 1
	}
	lh := measureHeight(n.left)
	if lh < 0 {
		return -1
	}
	rh := measureHeight(n.right)
	if rh < 0 {
		return -1
	}
	if lh-rh > 1 || rh-lh > 1 {
		return -1
	}
	return 1 + max(lh, rh)
}

// Rebalance rebuilds the tree to minimal height from the materialized
// string, a full O(n) reconstruction. Content is unchanged. Useful to
// restore an optimal height distribution after many edits.
func (r *Rope) Rebalance() {
	r.root = build(r.String())
}

// Height returns the current tree height, 0 for an empty rope. Useful
// for balance diagnostics.
func (r *Rope) Height() int {
	return nodeHeight(r.root)
}

// LeafCount returns the number of leaves currently in the tree. Useful
// for fragmentation diagnostics.
func (r *Rope) LeafCount() int {
	return countLeaves(r.root)
}

func countLeaves(n *node) int {
	if n == nil {
		return 0
	}
	if n.isLeaf() {
		return 1
	}
	return countLeaves(n.left) + countLeaves(n.right)
}

// Equal reports whether two ropes hold the same text. Fragments are
// compared in parallel without materializing either side, so trees with
// different shapes but identical content compare equal.
func (r *Rope) Equal(other *Rope) bool {
	if r.Len() != other.Len() {
		return false
	}
	if r.Len() == 0 {
		return true
	}

	a, b := r.Leaves(), other.Leaves()
	var av, bv string
	for {
		if av == "" {
			if !a.Next() {
				return true // equal lengths, both streams exhausted together
			}
			av = a.Value()
		}
		if bv == "" {
			if !b.Next() {
				return false
			}
			bv = b.Value()
		}
		n := min(len(av), len(bv))
		if av[:n] != bv[:n] {
			return false
		}
		av, bv = av[n:], bv[n:]
	}
}
