package variant

import (
	"regexp"
	"strconv"

	"github.com/jbialk/jsonstream/escape"
	"github.com/jbialk/jsonstream/jsonerr"
	"github.com/jbialk/jsonstream/parser"
	"github.com/jbialk/jsonstream/token"
)

// integerPattern decides whether a numeric literal is stored as an
// integer or as a real number.
var integerPattern = regexp.MustCompile(`^-?\d+$`)

// Parse builds a Variant tree from source.
func Parse(source string) (*Variant, error) {
	var lp parser.LexerParser
	if err := lp.Init(); err != nil {
		return nil, err
	}
	lp.Begin(source)
	return ParseStream(&lp)
}

// ParseStream builds a Variant from the next complete value on the
// event stream.
func ParseStream(lp *parser.LexerParser) (*Variant, error) {
	evt, err := lp.GetNextEvent()
	if err != nil {
		return nil, err
	}
	return build(lp, evt)
}

func build(lp *parser.LexerParser, evt parser.Event) (*Variant, error) {
	switch evt.Kind {
	case parser.VALUE_LITERAL:
		return fromToken(evt.Token)

	case parser.OBJECT_BEGIN:
		obj := NewObject()
		for {
			evt, err := lp.GetNextEvent()
			if err != nil {
				return nil, err
			}
			if evt.Kind == parser.OBJECT_END {
				return obj, nil
			}
			if evt.Kind != parser.OBJECT_KEY {
				return nil, jsonerr.Errorf(jsonerr.INTERNAL_ERROR, evt.Token.Location,
					"expected an object key but got %s", evt.Kind)
			}
			key := escape.Decode(stripQuotes(evt.Token.Spelling))

			valueEvt, err := lp.GetNextEvent()
			if err != nil {
				return nil, err
			}
			child, err := build(lp, valueEvt)
			if err != nil {
				return nil, err
			}
			obj.object[key] = child
		}

	case parser.LIST_BEGIN:
		list := NewList()
		for {
			evt, err := lp.GetNextEvent()
			if err != nil {
				return nil, err
			}
			if evt.Kind == parser.LIST_END {
				return list, nil
			}
			child, err := build(lp, evt)
			if err != nil {
				return nil, err
			}
			list.list = append(list.list, child)
		}
	}

	return nil, jsonerr.Errorf(jsonerr.INTERNAL_ERROR, evt.Token.Location,
		"unexpected %s event", evt.Kind)
}

func fromToken(tok token.Token) (*Variant, error) {
	switch tok.Kind {
	case token.STRING_LITERAL:
		return NewString(escape.Decode(stripQuotes(tok.Spelling))), nil

	case token.NUMERIC_LITERAL:
		if integerPattern.MatchString(tok.Spelling) {
			i, err := strconv.ParseInt(tok.Spelling, 10, 64)
			if err == nil {
				return NewInteger(i), nil
			}
		}
		f, err := strconv.ParseFloat(tok.Spelling, 64)
		if err != nil {
			return nil, jsonerr.Errorf(jsonerr.LEX_INVALID_TOKEN, tok.Location,
				"cannot parse %q as a number", tok.Spelling)
		}
		return NewReal(f), nil

	case token.BOOLEAN_LITERAL:
		return NewBoolean(tok.Spelling == "true"), nil

	case token.NULL_LITERAL:
		return NewNull(), nil
	}

	return nil, jsonerr.Errorf(jsonerr.PARSE_UNEXPECTED_TOKEN, tok.Location,
		"token %s is not a value literal", tok)
}

func stripQuotes(spelling string) string {
	if len(spelling) >= 2 && spelling[0] == '"' {
		return spelling[1 : len(spelling)-1]
	}
	return spelling
}
