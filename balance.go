package rope

// balanceFactor returns the left child height minus the right child
// height. Zero for leaves and absent nodes.
func balanceFactor(n *node) int {
	if n == nil || n.isLeaf() {
		return 0
	}
	return nodeHeight(n.left) - nodeHeight(n.right)
}

// balance restores the AVL invariant for the subtree rooted at n and
// returns the new subtree root. Only the node handed in is examined;
// callers apply balancing bottom-up along every path that gained nodes,
// which concat does for each internal node it creates.
func balance(n *node) *node {
	n.updateMetadata()
	switch bf := balanceFactor(n); {
	case bf > 1:
		if balanceFactor(n.left) < 0 {
			// left-right case
			n.left = rotateLeft(n.left)
		}
		return rotateRight(n)
	case bf < -1:
		if balanceFactor(n.right) > 0 {
			// right-left case
			n.right = rotateRight(n.right)
		}
		return rotateLeft(n)
	}
	return n
}

// rotateRight pivots n down to the right, promoting its left child.
// Metadata is refreshed child-then-parent.
func rotateRight(n *node) *node {
	x := n.left
	n.left = x.right
	x.right = n
	n.updateMetadata()
	x.updateMetadata()
	return x
}

// rotateLeft pivots n down to the left, promoting its right child.
func rotateLeft(n *node) *node {
	y := n.right
	n.right = y.left
	y.left = n
	n.updateMetadata()
	y.updateMetadata()
	return y
}
