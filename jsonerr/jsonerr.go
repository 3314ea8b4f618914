// Package jsonerr defines the error taxonomy shared by the scanner,
// parser, and tree builders.
package jsonerr

import (
	"errors"
	"fmt"

	"github.com/jbialk/jsonstream/token"
)

// Code is the numeric identifier for an error.
type Code int

const (
	NOERROR Code = iota
	// INTERNAL_ERROR marks a bug in this library. It should be
	// impossible to observe in a released build.
	INTERNAL_ERROR
	// LEX_INPUT_FINISHED means the scanner has no more input to read
	// from. This is the normal terminal condition for streaming
	// consumers.
	LEX_INPUT_FINISHED
	// LEX_INVALID_TOKEN means the scanner encountered text that is not
	// valid json.
	LEX_INVALID_TOKEN
	// PARSE_UNEXPECTED_TOKEN means a valid token arrived in the wrong
	// place.
	PARSE_UNEXPECTED_TOKEN
	// PARSE_OOM means the item parser ran out of item storage.
	PARSE_OOM
	// PARSE_BAD_STATE means a previous parse failure poisoned the
	// parser.
	PARSE_BAD_STATE
)

var codeStrings = [...]string{
	NOERROR:                "NOERROR",
	INTERNAL_ERROR:         "INTERNAL_ERROR",
	LEX_INPUT_FINISHED:     "LEX_INPUT_FINISHED",
	LEX_INVALID_TOKEN:      "LEX_INVALID_TOKEN",
	PARSE_UNEXPECTED_TOKEN: "PARSE_UNEXPECTED_TOKEN",
	PARSE_OOM:              "PARSE_OOM",
	PARSE_BAD_STATE:        "PARSE_BAD_STATE",
}

func (c Code) String() string {
	if c < 0 || int(c) >= len(codeStrings) {
		return "<invalid>"
	}
	return codeStrings[c]
}

// Error carries an error code, the source location the error was
// observed at, and a human readable message.
type Error struct {
	Code Code
	Loc  token.SourceLocation
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %s: %s", e.Code, e.Loc, e.Msg)
}

// Errorf constructs an *Error with a formatted message.
func Errorf(code Code, loc token.SourceLocation, format string, args ...interface{}) *Error {
	return &Error{Code: code, Loc: loc, Msg: fmt.Sprintf(format, args...)}
}

// CodeOf extracts the Code from err. A nil error maps to NOERROR; an
// error that is not an *Error maps to INTERNAL_ERROR.
func CodeOf(err error) Code {
	if err == nil {
		return NOERROR
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return INTERNAL_ERROR
}

// IsInputFinished reports whether err is the scanner's normal
// end-of-input condition.
func IsInputFinished(err error) bool {
	return CodeOf(err) == LEX_INPUT_FINISHED
}
