// Package parser implements the structural state machine that turns
// JSON tokens into semantic events, and the fused LexerParser that
// drives a scanner through it.
package parser

import (
	"github.com/jbialk/jsonstream/jsonerr"
	"github.com/jbialk/jsonstream/token"
)

// EventKind enumerates the parse events of interest. An actionable
// event is something like an object key, a value literal, or the start
// of an object/list value. Non-actionable tokens like whitespace or
// colon/comma punctuation are absorbed without producing an event.
type EventKind int

const (
	OBJECT_BEGIN EventKind = iota
	OBJECT_KEY
	OBJECT_END
	LIST_BEGIN
	LIST_END
	VALUE_LITERAL
	INVALID
)

var eventKindStrings = [...]string{
	OBJECT_BEGIN:  "OBJECT_BEGIN",
	OBJECT_KEY:    "OBJECT_KEY",
	OBJECT_END:    "OBJECT_END",
	LIST_BEGIN:    "LIST_BEGIN",
	LIST_END:      "LIST_END",
	VALUE_LITERAL: "VALUE_LITERAL",
	INVALID:       "INVALID",
}

func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventKindStrings) {
		return "<invalid>"
	}
	return eventKindStrings[k]
}

// Event is filled for each actionable event discovered by the parser.
type Event struct {
	Kind  EventKind
	Token token.Token
}

// state enumerates what the parser expects next.
type state int

const (
	parsingValue      state = iota // expect '{', '[' or a value literal
	parsingListOpen                // expect a value or a closure
	parsingObjectOpen              // expect a key or a closure
	parsingKey                     // expect a string literal
	parsingColon                   // expect a ':'
	parsingClosure                 // expect ']', '}', or ','
	parsingError
)

// Parser manages the state machine for parsing JSON structure from a
// stream of tokens. The zero value is ready to parse a value. A Parser
// is not safe for concurrent use.
type Parser struct {
	state      state
	groupStack []EventKind
}

// Reset returns the parser to its initial state.
func (p *Parser) Reset() {
	p.state = parsingValue
	p.groupStack = p.groupStack[:0]
}

// Depth returns the number of unclosed object/list groups.
func (p *Parser) Depth() int { return len(p.groupStack) }

// Done reports whether the parser holds no unclosed group and is not
// inside a value: either no token has been consumed yet or a complete
// top-level value has been.
func (p *Parser) Done() bool {
	return len(p.groupStack) == 0 && (p.state == parsingValue || p.state == parsingClosure)
}

// HandleToken advances the parse state with the given token. It
// returns true if the token instigated an actionable event, in which
// case evt is filled. In dry-run mode the event is filled but no state
// mutation occurs; this supports event peeking.
func (p *Parser) HandleToken(tok token.Token, evt *Event, dryRun bool) (bool, error) {
	evt.Token = tok
	if tok.Kind.IsTransparent() {
		return false, nil
	}

	switch p.state {
	case parsingListOpen:
		// A ']' immediately after '[' closes the empty list; anything
		// else is handled as a value.
		if tok.Kind == token.PUNCTUATION && tok.Spelling == "]" {
			if len(p.groupStack) == 0 || p.groupStack[len(p.groupStack)-1] != LIST_BEGIN {
				return false, p.fail(jsonerr.INTERNAL_ERROR, tok,
					"group stack does not hold an open list", dryRun)
			}
			evt.Kind = LIST_END
			if dryRun {
				return true, nil
			}
			p.popGroup()
			p.state = parsingClosure
			return true, nil
		}
		return p.handleValue(tok, evt, dryRun)

	case parsingValue:
		return p.handleValue(tok, evt, dryRun)

	case parsingObjectOpen:
		// A '}' immediately after '{' closes the empty object;
		// anything else is handled as a key.
		if tok.Kind == token.PUNCTUATION && tok.Spelling == "}" {
			if len(p.groupStack) == 0 || p.groupStack[len(p.groupStack)-1] != OBJECT_BEGIN {
				return false, p.fail(jsonerr.INTERNAL_ERROR, tok,
					"group stack does not hold an open object", dryRun)
			}
			evt.Kind = OBJECT_END
			if dryRun {
				return true, nil
			}
			p.popGroup()
			p.state = parsingClosure
			return true, nil
		}
		return p.handleKey(tok, evt, dryRun)

	case parsingKey:
		return p.handleKey(tok, evt, dryRun)

	case parsingColon:
		if tok.Kind != token.PUNCTUATION || tok.Spelling != ":" {
			return false, p.fail(jsonerr.PARSE_UNEXPECTED_TOKEN, tok,
				"expected a colon (':') but got "+tok.Spelling, dryRun)
		}
		if dryRun {
			return false, nil
		}
		p.state = parsingValue
		return false, nil

	case parsingClosure:
		return p.handleClosure(tok, evt, dryRun)

	case parsingError:
		return false, jsonerr.Errorf(jsonerr.PARSE_BAD_STATE, tok.Location,
			"parser is in an error state")
	}

	return false, p.fail(jsonerr.INTERNAL_ERROR, tok, "unknown parser state", dryRun)
}

func (p *Parser) handleValue(tok token.Token, evt *Event, dryRun bool) (bool, error) {
	if tok.Kind == token.PUNCTUATION {
		switch tok.Spelling {
		case "{":
			evt.Kind = OBJECT_BEGIN
			if dryRun {
				return true, nil
			}
			p.groupStack = append(p.groupStack, OBJECT_BEGIN)
			p.state = parsingObjectOpen
			return true, nil
		case "[":
			evt.Kind = LIST_BEGIN
			if dryRun {
				return true, nil
			}
			p.groupStack = append(p.groupStack, LIST_BEGIN)
			p.state = parsingListOpen
			return true, nil
		}
		return false, p.fail(jsonerr.PARSE_UNEXPECTED_TOKEN, tok,
			"expected '{' or '[' but got "+tok.Spelling, dryRun)
	}

	evt.Kind = VALUE_LITERAL
	if dryRun {
		return true, nil
	}
	p.state = parsingClosure
	return true, nil
}

func (p *Parser) handleKey(tok token.Token, evt *Event, dryRun bool) (bool, error) {
	if tok.Kind != token.STRING_LITERAL {
		return false, p.fail(jsonerr.PARSE_UNEXPECTED_TOKEN, tok,
			"expected a string literal (key) but got "+tok.Spelling, dryRun)
	}
	if len(p.groupStack) == 0 {
		return false, p.fail(jsonerr.INTERNAL_ERROR, tok, "group stack is empty", dryRun)
	}
	if p.groupStack[len(p.groupStack)-1] != OBJECT_BEGIN {
		return false, p.fail(jsonerr.INTERNAL_ERROR, tok, "group stack top is not an object", dryRun)
	}

	evt.Kind = OBJECT_KEY
	if dryRun {
		return true, nil
	}
	p.state = parsingColon
	return true, nil
}

func (p *Parser) handleClosure(tok token.Token, evt *Event, dryRun bool) (bool, error) {
	if tok.Kind != token.PUNCTUATION {
		return false, p.fail(jsonerr.PARSE_UNEXPECTED_TOKEN, tok,
			"expected ']', '}', or ',' but got "+tok.Spelling, dryRun)
	}
	if len(p.groupStack) == 0 {
		return false, p.fail(jsonerr.INTERNAL_ERROR, tok, "group stack is empty", dryRun)
	}
	top := p.groupStack[len(p.groupStack)-1]

	switch tok.Spelling {
	case ",":
		if dryRun {
			return false, nil
		}
		switch top {
		case LIST_BEGIN:
			p.state = parsingValue
		case OBJECT_BEGIN:
			p.state = parsingKey
		default:
			return false, p.fail(jsonerr.INTERNAL_ERROR, tok,
				"group stack top is not a list or object", dryRun)
		}
		return false, nil

	case "]":
		if top != LIST_BEGIN {
			return false, p.fail(jsonerr.PARSE_UNEXPECTED_TOKEN, tok,
				"expected '}' but got "+tok.Spelling, dryRun)
		}
		evt.Kind = LIST_END
		if dryRun {
			return true, nil
		}
		p.popGroup()
		p.state = parsingClosure
		return true, nil

	case "}":
		if top != OBJECT_BEGIN {
			return false, p.fail(jsonerr.PARSE_UNEXPECTED_TOKEN, tok,
				"expected ']' but got "+tok.Spelling, dryRun)
		}
		evt.Kind = OBJECT_END
		if dryRun {
			return true, nil
		}
		p.popGroup()
		p.state = parsingClosure
		return true, nil
	}

	return false, p.fail(jsonerr.PARSE_UNEXPECTED_TOKEN, tok,
		"expected ']', '}', or ',' but got "+tok.Spelling, dryRun)
}

func (p *Parser) popGroup() {
	p.groupStack = p.groupStack[:len(p.groupStack)-1]
}

// fail reports a parse error and, outside dry-run, poisons the parser
// so that subsequent tokens report PARSE_BAD_STATE. INTERNAL_ERROR
// does not poison the parser.
func (p *Parser) fail(code jsonerr.Code, tok token.Token, msg string, dryRun bool) error {
	if !dryRun && code != jsonerr.INTERNAL_ERROR {
		p.state = parsingError
	}
	return jsonerr.Errorf(code, tok.Location, "%s", msg)
}
