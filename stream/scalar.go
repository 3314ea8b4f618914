package stream

import (
	"regexp"
	"strconv"

	"github.com/jbialk/jsonstream/escape"
	"github.com/jbialk/jsonstream/token"
)

// Integer constrains the built-in integer scalar kinds.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Real constrains the built-in floating point scalar kinds.
type Real interface {
	~float32 | ~float64
}

// ParseInteger parses a numeric literal token into an integer.
func ParseInteger[T Integer](tok token.Token, out *T) {
	if tok.Kind != token.NUMERIC_LITERAL {
		warnf("cannot parse %s token as an integer", tok.Kind)
		return
	}
	value, err := strconv.ParseInt(tok.Spelling, 10, 64)
	if err != nil {
		warnf("cannot parse token %q as an integer", tok.Spelling)
		return
	}
	*out = T(value)
}

// ParseReal parses a numeric literal token into a real number.
func ParseReal[T Real](tok token.Token, out *T) {
	if tok.Kind != token.NUMERIC_LITERAL {
		warnf("cannot parse %s token as a real number", tok.Kind)
		return
	}
	value, err := strconv.ParseFloat(tok.Spelling, 64)
	if err != nil {
		warnf("cannot parse token %q as a real number", tok.Spelling)
		return
	}
	*out = T(value)
}

var (
	truthyPattern = regexp.MustCompile(`^(?i:y(es)?|t(rue)?|on|1)$`)
	falseyPattern = regexp.MustCompile(`^(?i:no?|f(alse)?|off|0)$`)
)

// ParseBoolean parses a boolean literal token. A string literal is
// coerced through the usual truthy/falsey spellings with a warning.
func ParseBoolean(tok token.Token, out *bool) {
	switch tok.Kind {
	case token.BOOLEAN_LITERAL:
		*out = tok.Spelling == "true"

	case token.STRING_LITERAL:
		warnf("parsing string literal as boolean: %s", tok.Spelling)
		body := stripQuotes(tok.Spelling)
		switch {
		case truthyPattern.MatchString(body):
			*out = true
		case falseyPattern.MatchString(body):
			*out = false
		default:
			warnf("cannot parse %s as a boolean", tok.Spelling)
		}

	default:
		warnf("cannot parse %s (%s) as a boolean", tok.Spelling, tok.Kind)
	}
}

// ParseString parses a string literal token, stripping the quotes and
// decoding escapes.
func ParseString(tok token.Token, out *string) {
	if tok.Kind != token.STRING_LITERAL {
		warnf("cannot parse %s token as a string", tok.Kind)
		return
	}
	*out = escape.Decode(stripQuotes(tok.Spelling))
}

// DumpInteger writes an integer scalar.
func DumpInteger[T Integer](d Dumper, value *T) int {
	d.DumpPrimitive(int64(*value))
	return 0
}

// DumpReal writes a real number scalar.
func DumpReal[T Real](d Dumper, value *T) int {
	d.DumpPrimitive(float64(*value))
	return 0
}

// DumpBoolean writes a boolean scalar.
func DumpBoolean(d Dumper, value *bool) int {
	d.DumpPrimitive(*value)
	return 0
}

// DumpString writes a quoted, escaped string scalar.
func DumpString(d Dumper, value *string) int {
	d.DumpPrimitive(*value)
	return 0
}

// registerBuiltins installs the scalar entries every registry starts
// with.
func registerBuiltins(r *Registry) {
	RegisterScalar(r, ParseInteger[int], DumpInteger[int])
	RegisterScalar(r, ParseInteger[int8], DumpInteger[int8])
	RegisterScalar(r, ParseInteger[int16], DumpInteger[int16])
	RegisterScalar(r, ParseInteger[int32], DumpInteger[int32])
	RegisterScalar(r, ParseInteger[int64], DumpInteger[int64])
	RegisterScalar(r, ParseInteger[uint], DumpInteger[uint])
	RegisterScalar(r, ParseInteger[uint8], DumpInteger[uint8])
	RegisterScalar(r, ParseInteger[uint16], DumpInteger[uint16])
	RegisterScalar(r, ParseInteger[uint32], DumpInteger[uint32])
	RegisterScalar(r, ParseInteger[uint64], DumpInteger[uint64])
	RegisterScalar(r, ParseReal[float32], DumpReal[float32])
	RegisterScalar(r, ParseReal[float64], DumpReal[float64])
	RegisterScalar(r, ParseBoolean, DumpBoolean)
	RegisterScalar(r, ParseString, DumpString)
}
