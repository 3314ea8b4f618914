package variant

import (
	"github.com/jbialk/jsonstream/escape"
	"github.com/jbialk/jsonstream/printer"
)

// Serialize writes the value into buf and returns the number of bytes
// the full serialization requires, which may exceed len(buf). Passing
// a nil buf performs a pure sizing pass.
func (v *Variant) Serialize(buf []byte, opts printer.SerializeOpts) int {
	p := printer.NewBufPrinter(buf)
	v.serialize(p, opts, 0)
	return p.Size()
}

// Dump serializes the value to a string using the two-pass
// size-then-write pattern.
func (v *Variant) Dump(opts printer.SerializeOpts) string {
	n := v.Serialize(nil, opts)
	buf := make([]byte, n)
	v.Serialize(buf, opts)
	return string(buf)
}

func (v *Variant) serialize(p *printer.BufPrinter, opts printer.SerializeOpts, depth int) {
	switch v.Kind() {
	case LIST:
		if len(v.list) < 1 {
			p.WriteString("[]")
			return
		}
		p.WriteString("[")
		if opts.Indent > 0 {
			p.WriteString("\n")
		}
		for idx, child := range v.list {
			p.Indent(opts.Indent, depth+1)
			child.serialize(p, opts, depth+1)
			if idx+1 < len(v.list) {
				p.WriteString(opts.SepItem)
			}
			if opts.Indent > 0 {
				p.WriteString("\n")
			}
		}
		p.Indent(opts.Indent, depth)
		p.WriteString("]")

	case OBJECT:
		if len(v.object) < 1 {
			p.WriteString("{}")
			return
		}
		p.WriteString("{")
		if opts.Indent > 0 {
			p.WriteString("\n")
		}
		keys := v.Keys()
		for idx, key := range keys {
			p.Indent(opts.Indent, depth+1)
			p.WriteString(`"`)
			p.WriteString(escape.Encode(key))
			p.WriteString(`"`)
			p.WriteString(opts.SepKV)
			v.object[key].serialize(p, opts, depth+1)
			if idx+1 < len(keys) {
				p.WriteString(opts.SepItem)
			}
			if opts.Indent > 0 {
				p.WriteString("\n")
			}
		}
		p.Indent(opts.Indent, depth)
		p.WriteString("}")

	case STRING:
		p.WriteString(`"`)
		p.WriteString(escape.Encode(v.str))
		p.WriteString(`"`)

	case REALNO:
		p.Printf("%f", v.realno)

	case INTEGER:
		p.Printf("%d", v.integer)

	case BOOLEAN:
		if v.boolean {
			p.WriteString("true")
		} else {
			p.WriteString("false")
		}

	case NULL:
		p.WriteString("null")
	}
}
