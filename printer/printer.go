// Package printer provides the bounded two-pass output buffer and the
// serialization options shared by the emitters.
package printer

import "fmt"

// SerializeOpts controls the shape of serialized output.
type SerializeOpts struct {
	// Indent is the number of spaces per nesting level. Zero produces
	// compact output with no newlines.
	Indent int

	// SepKV is written between an object key and its value.
	SepKV string

	// SepItem is written between consecutive items or fields.
	SepItem string
}

// DefaultOpts is the human-friendly serialization preset.
var DefaultOpts = SerializeOpts{Indent: 2, SepKV: ": ", SepItem: ","}

// CompactOpts is the preset for very compact JSON output.
var CompactOpts = SerializeOpts{Indent: 0, SepKV: ":", SepItem: ","}

// BufPrinter writes into a fixed-capacity byte buffer and counts every
// byte it is asked to write, including those that did not fit. A nil
// buffer is valid and makes the printer a pure length counter; this
// supports the size-then-allocate-then-write serialization pattern.
type BufPrinter struct {
	buf []byte
	n   int
}

// NewBufPrinter returns a printer writing into buf. Pass nil to count
// output without storing it.
func NewBufPrinter(buf []byte) *BufPrinter {
	return &BufPrinter{buf: buf}
}

// Size returns the total number of bytes written so far, including any
// that were dropped for lack of space.
func (p *BufPrinter) Size() int { return p.n }

// Write implements io.Writer. It never fails; bytes beyond the buffer
// capacity are counted but discarded.
func (p *BufPrinter) Write(b []byte) (int, error) {
	if p.n < len(p.buf) {
		copy(p.buf[p.n:], b)
	}
	p.n += len(b)
	return len(b), nil
}

// WriteString writes s.
func (p *BufPrinter) WriteString(s string) {
	if p.n < len(p.buf) {
		copy(p.buf[p.n:], s)
	}
	p.n += len(s)
}

// Printf formats into the buffer.
func (p *BufPrinter) Printf(format string, args ...interface{}) {
	fmt.Fprintf(p, format, args...)
}

// Indent writes indent*depth spaces, or nothing when indent is zero.
func (p *BufPrinter) Indent(indent, depth int) {
	for i := 0; i < indent*depth; i++ {
		p.WriteString(" ")
	}
}
