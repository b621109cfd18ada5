package rope

import (
	"io"
	"strings"
)

// Builder provides efficient incremental construction of a rope. It
// accumulates writes and builds the balanced tree once, when Build is
// called. The zero value is ready for use.
type Builder struct {
	buf strings.Builder
}

// NewBuilder creates a new rope builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// WriteString appends a string to the builder.
func (b *Builder) WriteString(s string) {
	b.buf.WriteString(s)
}

// Write implements io.Writer.
func (b *Builder) Write(p []byte) (int, error) {
	return b.buf.Write(p)
}

// WriteByte appends a single byte.
func (b *Builder) WriteByte(c byte) error {
	return b.buf.WriteByte(c)
}

// WriteRune appends a single rune.
func (b *Builder) WriteRune(r rune) (int, error) {
	return b.buf.WriteRune(r)
}

// ReadFrom implements io.ReaderFrom.
func (b *Builder) ReadFrom(r io.Reader) (int64, error) {
	buf := make([]byte, 64*1024) // 64KB read buffer
	var total int64
	for {
		n, err := r.Read(buf)
		if n > 0 {
			b.buf.Write(buf[:n])
			total += int64(n)
		}
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}

// Len returns the total number of bytes written so far.
func (b *Builder) Len() int {
	return b.buf.Len()
}

// Reset clears the builder for reuse.
func (b *Builder) Reset() {
	b.buf.Reset()
}

// Build creates the rope from the accumulated data. After calling Build,
// the builder is reset.
func (b *Builder) Build() *Rope {
	r := FromString(b.buf.String())
	b.buf.Reset()
	return r
}

// FromLines creates a rope from a slice of lines. Each line has a newline
// appended except the last.
func FromLines(lines []string) *Rope {
	if len(lines) == 0 {
		return New()
	}
	var b Builder
	for i, line := range lines {
		b.WriteString(line)
		if i < len(lines)-1 {
			b.WriteByte('\n')
		}
	}
	return b.Build()
}

// Join concatenates multiple ropes with a separator into a new rope.
// The inputs are not modified.
func Join(ropes []*Rope, sep string) *Rope {
	if len(ropes) == 0 {
		return New()
	}
	var b Builder
	for i, r := range ropes {
		if i > 0 && sep != "" {
			b.WriteString(sep)
		}
		_, _ = r.WriteTo(&b) // builder writes cannot fail
	}
	return b.Build()
}

// Repeat creates a rope holding s repeated n times.
func Repeat(s string, n int) *Rope {
	if n <= 0 || len(s) == 0 {
		return New()
	}
	return FromString(strings.Repeat(s, n))
}
