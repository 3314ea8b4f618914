package stream

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jbialk/jsonstream/escape"
	"github.com/jbialk/jsonstream/printer"
)

// DumpEventKind enumerates the semantic boundaries a dumper is
// notified of while a value is walked.
type DumpEventKind int

const (
	DUMP_OBJECT_BEGIN DumpEventKind = iota
	DUMP_OBJECT_KEY
	DUMP_OBJECT_END
	DUMP_LIST_BEGIN
	DUMP_LIST_END
	DUMP_VALUE
)

// Dumper receives begin/end/key/value notifications and primitive
// payloads as a registered value is walked. StreamDumper is the
// standard implementation; tests and tools may provide their own to
// observe the walk.
type Dumper interface {
	// Registry returns the registry used to resolve nested values.
	Registry() *Registry

	// DumpEvent receives a semantic boundary notification.
	DumpEvent(kind DumpEventKind)

	// DumpPrimitive receives a primitive payload: one of the integer
	// kinds, float32/float64, bool, string, or nil.
	DumpPrimitive(value interface{})
}

// DumpField writes one object field: the key, the key/value
// separator, and the value resolved through the registry.
func DumpField[T any](d Dumper, key string, value *T) int {
	d.DumpEvent(DUMP_OBJECT_KEY)
	d.DumpPrimitive(key)
	d.DumpEvent(DUMP_VALUE)
	return d.Registry().DumpValue(d, value)
}

// DumpArray writes the elements of arr as a JSON list.
func DumpArray[T any](d Dumper, arr []T) int {
	result := 0
	d.DumpEvent(DUMP_LIST_BEGIN)
	for idx := range arr {
		d.DumpEvent(DUMP_VALUE)
		result |= d.Registry().DumpValue(d, &arr[idx])
	}
	d.DumpEvent(DUMP_LIST_END)
	return result
}

// DumpValue resolves value's registry entry and walks it through the
// dumper. A missing registration emits null and returns nonzero so
// the enclosing dump continues.
func (r *Registry) DumpValue(d Dumper, value interface{}) int {
	e, t, ok := r.lookup(value)
	if !ok {
		warnf("no dumper registered for type %v, dumping null", t)
		d.DumpPrimitive(nil)
		return 1
	}
	if e.serializeAs == SCALAR {
		if e.dumpScalar == nil {
			warnf("no scalar dumper registered for type %v, dumping null", t)
			d.DumpPrimitive(nil)
			return 1
		}
		return e.dumpScalar(d, value)
	}

	d.DumpEvent(DUMP_OBJECT_BEGIN)
	result := 0
	if e.dumpFields == nil {
		warnf("no field dumper registered for type %v, dumping an empty object", t)
		result = 1
	} else {
		result = e.dumpFields(value, d)
	}
	d.DumpEvent(DUMP_OBJECT_END)
	return result
}

// stackType tracks what the StreamDumper is inside of.
type stackType int

const (
	stackObject stackType = iota
	stackList
	stackField
)

type stackEntry struct {
	typ        stackType
	count      int
	keyWritten bool
}

// StreamDumper is a Dumper that writes formatted JSON to an io.Writer,
// honoring the indent and separator options.
type StreamDumper struct {
	registry *Registry
	w        io.Writer
	opts     printer.SerializeOpts
	stack    []stackEntry
}

// NewStreamDumper returns a dumper writing to w. A nil registry means
// the global registry.
func NewStreamDumper(w io.Writer, opts printer.SerializeOpts, registry *Registry) *StreamDumper {
	if registry == nil {
		registry = GlobalRegistry()
	}
	return &StreamDumper{registry: registry, w: w, opts: opts}
}

func (d *StreamDumper) Registry() *Registry { return d.registry }

func (d *StreamDumper) top() *stackEntry {
	if len(d.stack) == 0 {
		return nil
	}
	return &d.stack[len(d.stack)-1]
}

func (d *StreamDumper) pop() stackEntry {
	e := d.stack[len(d.stack)-1]
	d.stack = d.stack[:len(d.stack)-1]
	return e
}

// depth returns the number of open groups.
func (d *StreamDumper) depth() int {
	n := 0
	for _, e := range d.stack {
		if e.typ != stackField {
			n++
		}
	}
	return n
}

func (d *StreamDumper) write(s string) {
	io.WriteString(d.w, s)
}

func (d *StreamDumper) newlineIndent(depth int) {
	if d.opts.Indent == 0 {
		return
	}
	d.write("\n")
	for i := 0; i < d.opts.Indent*depth; i++ {
		d.write(" ")
	}
}

// closeField writes the pending key/value separator when a value
// arrives for the field whose key has been written.
func (d *StreamDumper) closeField() {
	if top := d.top(); top != nil && top.typ == stackField && top.keyWritten {
		d.write(d.opts.SepKV)
		d.pop()
	}
}

func (d *StreamDumper) DumpEvent(kind DumpEventKind) {
	switch kind {
	case DUMP_OBJECT_BEGIN, DUMP_LIST_BEGIN, DUMP_VALUE:
		d.closeField()
	}

	switch kind {
	case DUMP_OBJECT_BEGIN:
		d.write("{")
		d.stack = append(d.stack, stackEntry{typ: stackObject})

	case DUMP_OBJECT_END:
		e := d.pop()
		if e.count > 0 {
			d.newlineIndent(d.depth())
		}
		d.write("}")

	case DUMP_LIST_BEGIN:
		d.write("[")
		d.stack = append(d.stack, stackEntry{typ: stackList})

	case DUMP_LIST_END:
		e := d.pop()
		if e.count > 0 {
			d.newlineIndent(d.depth())
		}
		d.write("]")

	case DUMP_OBJECT_KEY:
		if top := d.top(); top != nil {
			if top.count > 0 {
				d.write(d.opts.SepItem)
			}
		}
		d.newlineIndent(d.depth())
		d.stack = append(d.stack, stackEntry{typ: stackField})

	case DUMP_VALUE:
		if top := d.top(); top != nil {
			if top.typ == stackList {
				if top.count > 0 {
					d.write(d.opts.SepItem)
				}
				d.newlineIndent(d.depth())
			}
			top.count++
		}
	}
}

func (d *StreamDumper) DumpPrimitive(value interface{}) {
	// A primitive arriving while a field is pending its key is the
	// key itself.
	if top := d.top(); top != nil && top.typ == stackField && !top.keyWritten {
		if key, ok := value.(string); ok {
			d.write(`"`)
			d.write(escape.Encode(key))
			d.write(`"`)
			top.keyWritten = true
			return
		}
	}

	switch v := value.(type) {
	case nil:
		d.write("null")
	case bool:
		if v {
			d.write("true")
		} else {
			d.write("false")
		}
	case string:
		d.write(`"`)
		d.write(escape.Encode(v))
		d.write(`"`)
	case float32:
		d.write(strconv.FormatFloat(float64(v), 'g', 6, 64))
	case float64:
		d.write(strconv.FormatFloat(v, 'g', 6, 64))
	case int:
		d.write(strconv.FormatInt(int64(v), 10))
	case int8:
		d.write(strconv.FormatInt(int64(v), 10))
	case int16:
		d.write(strconv.FormatInt(int64(v), 10))
	case int32:
		d.write(strconv.FormatInt(int64(v), 10))
	case int64:
		d.write(strconv.FormatInt(v, 10))
	case uint:
		d.write(strconv.FormatUint(uint64(v), 10))
	case uint8:
		d.write(strconv.FormatUint(uint64(v), 10))
	case uint16:
		d.write(strconv.FormatUint(uint64(v), 10))
	case uint32:
		d.write(strconv.FormatUint(uint64(v), 10))
	case uint64:
		d.write(strconv.FormatUint(v, 10))
	default:
		d.write(fmt.Sprintf("%v", v))
	}
}
