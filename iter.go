package rope

import (
	"bufio"
	"io"
)

// LeafIterator walks the rope's text fragments in order using an explicit
// stack. The rope must not be mutated while iterating.
type LeafIterator struct {
	stack  []*node
	value  string
	offset int
	next   int
}

// Leaves returns an iterator over the rope's text fragments.
func (r *Rope) Leaves() *LeafIterator {
	it := &LeafIterator{stack: make([]*node, 0, 16)}
	if r.root != nil {
		it.push(r.root)
	}
	return it
}

// push descends along left children, stacking the path.
func (it *LeafIterator) push(n *node) {
	for n != nil {
		it.stack = append(it.stack, n)
		n = n.left
	}
}

// Next advances to the next fragment.
// Returns true if there is a fragment, false when iteration is complete.
func (it *LeafIterator) Next() bool {
	for len(it.stack) > 0 {
		n := it.stack[len(it.stack)-1]
		it.stack = it.stack[:len(it.stack)-1]
		if n.isLeaf() {
			it.value = n.value
			it.offset = it.next
			it.next += len(n.value)
			return true
		}
		it.push(n.right)
	}
	return false
}

// Value returns the current fragment.
func (it *LeafIterator) Value() string {
	return it.value
}

// Offset returns the byte offset of the start of the current fragment.
func (it *LeafIterator) Offset() int {
	return it.offset
}

// RuneIterator iterates over runes in a rope. Fragments are decoded as a
// single UTF-8 stream, so runes split across leaf boundaries come out
// whole.
type RuneIterator struct {
	br      *bufio.Reader
	current rune
	size    int
	offset  int
}

// Runes returns an iterator over all runes in the rope.
func (r *Rope) Runes() *RuneIterator {
	return &RuneIterator{br: bufio.NewReader(r.Reader())}
}

// Next advances to the next rune.
// Returns true if there is a rune, false if iteration is complete.
func (it *RuneIterator) Next() bool {
	it.offset += it.size
	ch, size, err := it.br.ReadRune()
	if err != nil {
		it.size = 0
		return false
	}
	it.current = ch
	it.size = size
	return true
}

// Rune returns the current rune.
func (it *RuneIterator) Rune() rune {
	return it.current
}

// Size returns the byte size of the current rune.
func (it *RuneIterator) Size() int {
	return it.size
}

// Offset returns the byte offset of the current rune.
func (it *RuneIterator) Offset() int {
	return it.offset
}

// Reader returns an io.Reader that streams the rope's content without
// materializing it. The rope must not be mutated while the reader is in
// use.
func (r *Rope) Reader() io.Reader {
	return &reader{leaves: r.Leaves()}
}

type reader struct {
	leaves *LeafIterator
	rest   string
}

func (rd *reader) Read(p []byte) (int, error) {
	for rd.rest == "" {
		if !rd.leaves.Next() {
			return 0, io.EOF
		}
		rd.rest = rd.leaves.Value()
	}
	n := copy(p, rd.rest)
	rd.rest = rd.rest[n:]
	return n, nil
}

// WriteTo writes the rope's content to w, implementing io.WriterTo.
func (r *Rope) WriteTo(w io.Writer) (int64, error) {
	var total int64
	it := r.Leaves()
	for it.Next() {
		n, err := io.WriteString(w, it.Value())
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
