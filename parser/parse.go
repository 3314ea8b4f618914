package parser

import (
	"github.com/jbialk/jsonstream/jsonerr"
	"github.com/jbialk/jsonstream/lexer"
	"github.com/jbialk/jsonstream/token"
)

// LexerParser is a combined scanner/parser. It manages the incremental
// state of both simultaneously and exposes the event stream one event
// at a time.
type LexerParser struct {
	scanner lexer.Scanner
	parser  Parser
}

// Init prepares the underlying scanner. It is idempotent.
func (lp *LexerParser) Init() error {
	return lp.scanner.Init()
}

// Begin binds the stream to a new input and resets the parse state.
func (lp *LexerParser) Begin(src string) {
	lp.parser.Reset()
	lp.scanner.Begin(src)
}

// GetNextEvent consumes tokens until the next semantic event and
// returns that event. The token stream is advanced past the token that
// emitted the event.
func (lp *LexerParser) GetNextEvent() (Event, error) {
	var evt Event
	for {
		tok, err := lp.scanner.Pump()
		if err != nil {
			return evt, err
		}
		produced, err := lp.parser.HandleToken(tok, &evt, false)
		if err != nil {
			return evt, err
		}
		if produced {
			return evt, nil
		}
		// The token did not instigate an event; keep pumping.
	}
}

// PeekNextEvent consumes tokens up to but not past the token that
// generates the next semantic event, and returns that event. The next
// call to GetNextEvent will return the same event. Intermediate
// non-event tokens are consumed; this is what preserves the peek
// property for the next actionable token.
func (lp *LexerParser) PeekNextEvent() (Event, error) {
	var evt Event
	for {
		tok, err := lp.scanner.Peek()
		if err != nil {
			return evt, err
		}
		produced, err := lp.parser.HandleToken(tok, &evt, true)
		if err != nil {
			return evt, err
		}
		if produced {
			return evt, nil
		}

		// Non-event-producing token: advance the stream for real.
		if _, err := lp.scanner.Pump(); err != nil {
			return evt, err
		}
		if _, err := lp.parser.HandleToken(tok, &evt, false); err != nil {
			return evt, err
		}
	}
}

// Location returns the stream's current position in the input.
func (lp *LexerParser) Location() token.SourceLocation {
	return lp.scanner.Location()
}

// Parse scans and parses source until completion, storing events in
// buf. It returns the number of events parsed, which may be greater
// than len(buf); surplus events are counted but discarded.
func Parse(source string, buf []Event) (int, error) {
	var lp LexerParser
	if err := lp.Init(); err != nil {
		return -1, err
	}
	lp.Begin(source)

	n := 0
	for {
		evt, err := lp.GetNextEvent()
		if err != nil {
			if jsonerr.IsInputFinished(err) {
				return n, nil
			}
			return -1, err
		}
		if n < len(buf) {
			buf[n] = evt
		}
		n++
	}
}

// Verify scans and parses the entire source and returns nil if no
// errors are encountered.
func Verify(source string) error {
	_, err := Parse(source, nil)
	return err
}
