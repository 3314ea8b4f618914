// Package stream implements the typed binder: a process-wide registry
// of parse and dump functions keyed by type identity, driving the
// structural walk of a JSON event stream into statically-typed user
// records and back out again.
//
// Registrations are expected to happen during package initialization
// (init functions); the registry is effectively read-only afterwards,
// which is what makes concurrent parses over distinct streams safe.
//
// Failures at field boundaries are deliberately soft: unknown keys and
// shape mismatches log a warning, the offending value is sunk from the
// stream (or emitted as null on the dump side), and the enclosing
// parse continues.
package stream

import (
	"bytes"
	"log"

	"github.com/jbialk/jsonstream/parser"
	"github.com/jbialk/jsonstream/printer"
)

// logger receives the binder's recoverable warnings.
var logger = log.Default()

// SetLogger redirects the binder's warnings, returning the previous
// logger. Pass a logger writing to io.Discard to silence them.
func SetLogger(l *log.Logger) *log.Logger {
	prev := logger
	logger = l
	return prev
}

func warnf(format string, args ...interface{}) {
	logger.Printf("WARNING: "+format, args...)
}

// Parse binds the next complete value in content to out using the
// global registry.
func Parse[T any](content string, out *T) error {
	return ParseWith(GlobalRegistry(), content, out)
}

// ParseWith is Parse with an explicit registry.
func ParseWith[T any](r *Registry, content string, out *T) error {
	var stream parser.LexerParser
	if err := stream.Init(); err != nil {
		return err
	}
	stream.Begin(content)
	r.ParseValue(&stream, out)
	return nil
}

// ParseStream binds the next complete value on an existing event
// stream to out.
func ParseStream[T any](r *Registry, stream *parser.LexerParser, out *T) int {
	return r.ParseValue(stream, out)
}

// Dump serializes value through the global registry.
func Dump[T any](value *T, opts printer.SerializeOpts) string {
	return DumpWith(GlobalRegistry(), value, opts)
}

// DumpWith is Dump with an explicit registry.
func DumpWith[T any](r *Registry, value *T, opts printer.SerializeOpts) string {
	var buf bytes.Buffer
	d := NewStreamDumper(&buf, opts, r)
	r.DumpValue(d, value)
	return buf.String()
}
