// Package lexer implements a scanner for JSON source text.
//
// The scanner is regex driven: an ordered list of anchored patterns is
// matched against the head of the remaining input and the
// lowest-indexed pattern that matches wins. Single character
// punctuation is special-cased ahead of the pattern set.
package lexer

import (
	"regexp"

	"github.com/jbialk/jsonstream/jsonerr"
	"github.com/jbialk/jsonstream/token"
)

// spec pairs a pattern with the token kind it produces.
type spec struct {
	pattern string
	kind    token.Kind
}

// scanList is the ordered pattern set. Order is significant: the
// lowest-indexed match wins, so literal keywords must precede any
// pattern that could share a prefix with them.
var scanList = []spec{
	// https://stackoverflow.com/a/37379449/141023
	{`"[^"\\]*(?:\\.[^"\\]*)*"`, token.STRING_LITERAL},
	{`(-?\d+)(\.\d+)?([eE][+-]?\d+)?`, token.NUMERIC_LITERAL},
	{`true`, token.BOOLEAN_LITERAL},
	{`false`, token.BOOLEAN_LITERAL},
	{`null`, token.NULL_LITERAL},
	{`\s+`, token.WHITESPACE},
	{`//[^\n]*\n`, token.COMMENT},
	{`#[^\n]*\n`, token.COMMENT},
}

// Scanner maintains incremental state for tokenization of a JSON text.
// The zero value is uninitialized; call Init before use. A Scanner is
// not safe for concurrent use.
type Scanner struct {
	rest string
	loc  token.SourceLocation

	scanSet   []*regexp.Regexp
	initState int

	// Total bytes required to store the contents of all numeric values
	// assuming that values are 64-bit aligned.
	numericStorage int

	// Total bytes required to store the contents of all string values
	// including terminators.
	stringStorage int
}

// Init compiles the pattern set used to scan for tokens. It is
// idempotent: calling it again after a successful Init is a no-op.
func (s *Scanner) Init() error {
	if s.initState != 0 {
		if s.initState < 0 {
			return jsonerr.Errorf(jsonerr.INTERNAL_ERROR, token.SourceLocation{},
				"scanner pattern set failed to compile")
		}
		return nil
	}

	s.scanSet = make([]*regexp.Regexp, 0, len(scanList))
	for _, sp := range scanList {
		re, err := regexp.Compile(`\A(?:` + sp.pattern + `)`)
		if err != nil {
			s.initState = -1
			return jsonerr.Errorf(jsonerr.INTERNAL_ERROR, token.SourceLocation{},
				"failed to compile scan pattern %q: %v", sp.pattern, err)
		}
		s.scanSet = append(s.scanSet, re)
	}
	s.initState = 1
	return nil
}

// Begin binds the scanner to a new input and resets the location to
// the start of the text.
func (s *Scanner) Begin(src string) {
	s.rest = src
	s.loc = token.SourceLocation{}
	s.numericStorage = 0
	s.stringStorage = 0
}

// Pump matches the next token and advances the input cursor and
// location past it.
func (s *Scanner) Pump() (token.Token, error) {
	return s.pump(false)
}

// Peek matches the next token but does not advance. It is equivalent
// to Pump followed by a rewind.
func (s *Scanner) Peek() (token.Token, error) {
	return s.pump(true)
}

func (s *Scanner) pump(peek bool) (token.Token, error) {
	var tok token.Token
	if len(s.rest) < 1 {
		return tok, jsonerr.Errorf(jsonerr.LEX_INPUT_FINISHED, s.loc,
			"the input stream is empty; either parsing is finished or the data is truncated")
	}

	switch s.rest[0] {
	case ':', ',', '{', '}', '[', ']':
		tok.Kind = token.PUNCTUATION
		tok.Spelling = s.rest[:1]
		tok.Location = s.loc
		if peek {
			return tok, nil
		}
		s.rest = s.rest[1:]
		s.loc.Advance(tok.Spelling)
		return tok, nil
	}

	matchIdx := -1
	var spelling string
	for idx, re := range s.scanSet {
		if m := re.FindString(s.rest); m != "" {
			matchIdx = idx
			spelling = m
			break
		}
	}
	if matchIdx < 0 {
		return tok, jsonerr.Errorf(jsonerr.LEX_INVALID_TOKEN, s.loc,
			"invalid input token at %s; source is not valid json", s.loc)
	}

	tok.Kind = scanList[matchIdx].kind
	tok.Spelling = spelling
	tok.Location = s.loc

	if peek {
		return tok, nil
	}

	s.rest = s.rest[len(spelling):]
	s.loc.Advance(tok.Spelling)

	switch tok.Kind {
	case token.NUMERIC_LITERAL:
		s.numericStorage += 8
	case token.STRING_LITERAL:
		s.stringStorage += len(tok.Spelling) + 1
	}

	return tok, nil
}

// Location returns the scanner's current position in the input.
func (s *Scanner) Location() token.SourceLocation { return s.loc }

// Rest returns the unconsumed input, mostly for debugging purposes.
func (s *Scanner) Rest() string { return s.rest }

// NumericStorage returns an advisory count of the bytes needed to hold
// all numeric tokens pumped so far, assuming 64-bit alignment.
func (s *Scanner) NumericStorage() int { return s.numericStorage }

// StringStorage returns an advisory count of the bytes needed to hold
// all string tokens pumped so far, including terminators.
func (s *Scanner) StringStorage() int { return s.stringStorage }

// Lex tokenizes source until completion, storing tokens in buf. It
// returns the number of tokens lexed, which may be greater than
// len(buf); surplus tokens are counted but discarded.
func Lex(source string, buf []token.Token) (int, error) {
	var scanner Scanner
	if err := scanner.Init(); err != nil {
		return -1, err
	}
	scanner.Begin(source)

	n := 0
	for {
		tok, err := scanner.Pump()
		if err != nil {
			if jsonerr.IsInputFinished(err) {
				return n, nil
			}
			return -1, err
		}
		if n < len(buf) {
			buf[n] = tok
		}
		n++
	}
}

// VerifyLex scans the entire source and returns nil if no invalid
// tokens are encountered.
func VerifyLex(source string) error {
	_, err := Lex(source, nil)
	return err
}
