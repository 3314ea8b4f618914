package stream

import (
	"reflect"

	"github.com/jbialk/jsonstream/keyhash"
	"github.com/jbialk/jsonstream/parser"
	"github.com/jbialk/jsonstream/token"
)

// SerializeAs tells the registry whether a type binds to a single
// value literal or to an object with fields.
type SerializeAs int

const (
	SCALAR SerializeAs = iota
	OBJECT
)

// FieldParser is the per-type parse function a user registers for an
// object-typed T. It receives the unwrapped key (no surrounding
// quotes) and the event stream positioned just after the key, and
// dispatches to the appropriate field parser, typically by switching
// on keyhash.Hash(key). It returns 0 on success and nonzero to mean
// "unknown key sunk"; the implementation must sink the pending value
// before returning nonzero.
type FieldParser[T any] func(r *Registry, key string, stream *parser.LexerParser, out *T) int

// FieldDumper is the per-type dump function a user registers for an
// object-typed T. For each field f named "n" it calls
// DumpField(d, "n", &value.f).
type FieldDumper[T any] func(value *T, d Dumper) int

// TokenParser converts a single value-literal token into a scalar T.
type TokenParser[T any] func(tok token.Token, out *T)

// ScalarDumper writes a scalar T to the dumper.
type ScalarDumper[T any] func(d Dumper, value *T) int

// entry stores the type-erased parse and dump hooks for one type.
type entry struct {
	serializeAs SerializeAs
	parseScalar func(tok token.Token, out interface{})
	parseField  func(r *Registry, key string, stream *parser.LexerParser, out interface{}) int
	dumpScalar  func(d Dumper, value interface{}) int
	dumpFields  func(value interface{}, d Dumper) int
}

// Registry maps type identities to their serialization entries. The
// identity key is the type's reflect.Type, which is unique and stable
// per type within a process.
type Registry struct {
	entries map[reflect.Type]entry
}

// NewRegistry returns a registry with all built-in scalar types
// registered.
func NewRegistry() *Registry {
	r := &Registry{entries: map[reflect.Type]entry{}}
	registerBuiltins(r)
	return r
}

var globalRegistry = NewRegistry()

// GlobalRegistry returns the process-wide registry that init-time
// registrations target.
func GlobalRegistry() *Registry { return globalRegistry }

func typeFor[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// RegisterObject registers T as an object type with a per-field parse
// function and a field dump function. Registrations are independent
// map inserts, so init order between packages does not matter.
func RegisterObject[T any](r *Registry, parseField FieldParser[T], dumpFields FieldDumper[T]) {
	e := entry{serializeAs: OBJECT}
	if parseField != nil {
		e.parseField = func(r *Registry, key string, stream *parser.LexerParser, out interface{}) int {
			return parseField(r, key, stream, out.(*T))
		}
	}
	if dumpFields != nil {
		e.dumpFields = func(value interface{}, d Dumper) int {
			return dumpFields(value.(*T), d)
		}
	}
	r.entries[typeFor[T]()] = e
}

// RegisterScalar registers T as a scalar type with a token parser and
// a value dumper.
func RegisterScalar[T any](r *Registry, parseToken TokenParser[T], dumpScalar ScalarDumper[T]) {
	e := entry{serializeAs: SCALAR}
	if parseToken != nil {
		e.parseScalar = func(tok token.Token, out interface{}) {
			parseToken(tok, out.(*T))
		}
	}
	if dumpScalar != nil {
		e.dumpScalar = func(d Dumper, value interface{}) int {
			return dumpScalar(d, value.(*T))
		}
	}
	r.entries[typeFor[T]()] = e
}

// lookup resolves the entry for the pointee type of out.
func (r *Registry) lookup(out interface{}) (entry, reflect.Type, bool) {
	t := reflect.TypeOf(out)
	if t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	e, ok := r.entries[t]
	return e, t, ok
}

// ParseValue binds the next complete value on the stream to out, which
// must be a pointer to a registered type. It returns 0 on success and
// nonzero when the value was skipped; skipping is recoverable and the
// stream is left positioned after the offending value.
func (r *Registry) ParseValue(stream *parser.LexerParser, out interface{}) int {
	e, t, ok := r.lookup(out)
	if !ok {
		warnf("no parser registered for type %v, skipping the parse", t)
		SinkValue(stream)
		return 1
	}
	if e.serializeAs == SCALAR {
		return r.parseScalar(e, t, stream, out)
	}
	return r.parseObject(e, t, stream, out)
}

func (r *Registry) parseScalar(e entry, t reflect.Type, stream *parser.LexerParser, out interface{}) int {
	evt, err := stream.GetNextEvent()
	if err != nil {
		warnf("failed to get a scalar event for %v: %v", t, err)
		return 1
	}
	if evt.Kind != parser.VALUE_LITERAL {
		// A LIST_END here is not an error: it is how a caller parsing
		// list elements one at a time discovers the end of the list.
		if evt.Kind != parser.LIST_END {
			warnf("expected a scalar of type %v but got %s at %s",
				t, evt.Kind, evt.Token.Location)
			SinkValueEvent(evt, stream)
		}
		return 1
	}
	if e.parseScalar == nil {
		warnf("no token parser registered for type %v", t)
		return 1
	}
	e.parseScalar(evt.Token, out)
	return 0
}

func (r *Registry) parseObject(e entry, t reflect.Type, stream *parser.LexerParser, out interface{}) int {
	evt, err := stream.GetNextEvent()
	if err != nil {
		warnf("failed to get an object start event for %v: %v", t, err)
		return 1
	}
	if evt.Kind != parser.OBJECT_BEGIN {
		// See parseScalar for why LIST_END is quietly tolerated.
		if evt.Kind != parser.LIST_END {
			warnf("expected an object for %v but got %s at %s",
				t, evt.Kind, evt.Token.Location)
			SinkValueEvent(evt, stream)
		}
		return 1
	}
	if e.parseField == nil {
		warnf("no field parser registered for type %v, sinking the object", t)
		SinkObject(stream)
		return 1
	}

	for {
		evt, err := stream.GetNextEvent()
		if err != nil {
			warnf("object parse for %v terminated early: %v", t, err)
			return 1
		}
		switch evt.Kind {
		case parser.OBJECT_END:
			return 0

		case parser.OBJECT_KEY:
			keyTok := evt.Token
			key := stripQuotes(keyTok.Spelling)
			if e.parseField(r, key, stream, out) != 0 {
				warnf("unrecognized key %s(%d) at %s",
					key, keyhash.Hash(key), keyTok.Location)
			}

		default:
			warnf("unexpected %s event at %s in object for %v",
				evt.Kind, evt.Token.Location, t)
			return 1
		}
	}
}

// ParseArray binds a JSON list to the slots of out, in order. Surplus
// elements are sunk with a warning; a list shorter than out leaves the
// remaining slots untouched.
func ParseArray[T any](r *Registry, stream *parser.LexerParser, out []T) int {
	evt, err := stream.GetNextEvent()
	if err != nil {
		warnf("failed to get a list start event: %v", err)
		return 1
	}
	if evt.Kind != parser.LIST_BEGIN {
		warnf("expected a list of %v but got %s at %s",
			typeFor[T](), evt.Kind, evt.Token.Location)
		SinkValueEvent(evt, stream)
		return 1
	}

	for idx := range out {
		// A closing bracket ends the list early; the remaining slots
		// keep their defaults.
		if next, err := stream.PeekNextEvent(); err == nil && next.Kind == parser.LIST_END {
			stream.GetNextEvent()
			return 0
		}
		r.ParseValue(stream, &out[idx])
	}

	evt, err = stream.GetNextEvent()
	if err != nil {
		warnf("failed to get a list end event: %v", err)
		return 1
	}
	if evt.Kind != parser.LIST_END {
		warnf("skipping list elements after %d", len(out))
	}
	for evt.Kind != parser.LIST_END {
		SinkValueEvent(evt, stream)
		evt, err = stream.GetNextEvent()
		if err != nil {
			warnf("failed to get a list end event: %v", err)
			return 1
		}
	}
	return 0
}

func stripQuotes(spelling string) string {
	if len(spelling) >= 2 && spelling[0] == '"' {
		return spelling[1 : len(spelling)-1]
	}
	return spelling
}
