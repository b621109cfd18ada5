package rope

// maxLeafSize is the largest fragment a single leaf may hold. The builder
// bisects input until fragments fit, and concat merges adjacent leaves
// whose combined length stays at or below it.
const maxLeafSize = 1024

// node is a rope tree node. A node with no children is a leaf and owns a
// text fragment; otherwise it is internal and owns exactly two children.
// weight caches the byte count of the entire left subtree, size the byte
// count of the whole subtree, and height the longest path to a leaf at or
// below this node (leaves have height 1).
type node struct {
	value  string
	left   *node
	right  *node
	weight int
	size   int
	height int
}

// newLeaf creates a leaf holding s with its metadata set.
func newLeaf(s string) *node {
	n := &node{value: s}
	n.updateMetadata()
	return n
}

// isLeaf reports whether n holds text directly.
func (n *node) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// updateMetadata recomputes the cached weight, size, and height from the
// node's immediate children. Subtree byte counts are cached in size, so
// this is O(1); it must be applied bottom-up whenever children change.
func (n *node) updateMetadata() {
	if n.isLeaf() {
		n.weight = len(n.value)
		n.size = len(n.value)
		n.height = 1
		return
	}
	n.weight = n.left.size
	n.size = n.left.size + n.right.size
	n.height = 1 + max(nodeHeight(n.left), nodeHeight(n.right))
}

// nodeHeight returns the cached height, 0 for an absent node.
func nodeHeight(n *node) int {
	if n == nil {
		return 0
	}
	return n.height
}

// split partitions the subtree rooted at n into two subtrees holding
// [0, index) and [index, end). Either result may be nil. Splitting inside
// a leaf discards it and materializes two new leaves; splitting an
// internal node reunites the cut-off remainder with the untouched sibling
// through concat, so a split can itself trigger rebalancing.
func split(n *node, index int) (*node, *node) {
	if n == nil {
		return nil, nil
	}
	if n.isLeaf() {
		switch {
		case index <= 0:
			return nil, n
		case index >= len(n.value):
			return n, nil
		}
		return newLeaf(n.value[:index]), newLeaf(n.value[index:])
	}
	if index < n.weight {
		ll, lr := split(n.left, index)
		return ll, concat(lr, n.right)
	}
	rl, rr := split(n.right, index-n.weight)
	return concat(n.left, rl), rr
}

// concat joins two subtrees into one. A nil operand degenerates to the
// other side. Two leaves that fit in one merge in place by appending
// right's fragment onto left, avoiding an internal node for small
// fragments. Otherwise a new internal node is allocated and passed
// through balance before being returned, so every node concat creates
// satisfies the AVL invariant locally.
func concat(left, right *node) *node {
	if left == nil {
		return right
	}
	if right == nil {
		return left
	}
	if left.isLeaf() && right.isLeaf() && len(left.value)+len(right.value) <= maxLeafSize {
		left.value += right.value
		left.updateMetadata()
		return left
	}
	n := &node{left: left, right: right}
	n.updateMetadata()
	return balance(n)
}
