package item

import (
	"regexp"
	"strconv"

	"github.com/jbialk/jsonstream/jsonerr"
	"github.com/jbialk/jsonstream/lexer"
	"github.com/jbialk/jsonstream/parser"
	"github.com/jbialk/jsonstream/token"
)

// integerPattern decides whether a numeric literal becomes an integer
// or a float item.
var integerPattern = regexp.MustCompile(`^-?\d+$`)

func parseNumeric(spelling string, it *Item) bool {
	if integerPattern.MatchString(spelling) {
		intval, err := strconv.ParseInt(spelling, 10, 64)
		if err == nil {
			it.Kind = JSON_INTEGER
			it.Integer = intval
			return true
		}
	}

	floatval, err := strconv.ParseFloat(spelling, 64)
	if err == nil {
		it.Kind = JSON_FLOAT
		it.Floatval = floatval
		return true
	}
	return false
}

// ItemParser builds a document tree out of a fixed arena of items,
// consuming one token at a time. It embeds the structural parser so
// the caller only feeds tokens.
type ItemParser struct {
	parser.Parser

	arena []Item
	write int

	itemStack []*Item
}

// NewItemParser returns a parser allocating from arena. The arena is
// owned by the caller; items written into it remain valid for the
// arena's lifetime.
func NewItemParser(arena []Item) *ItemParser {
	return &ItemParser{arena: arena}
}

// Root returns the first item allocated from the arena, which after a
// successful parse is the root of the document.
func (ip *ItemParser) Root() *Item {
	if ip.write == 0 {
		return invalidItem
	}
	return &ip.arena[0]
}

// allocItem carves the next item out of the arena.
func (ip *ItemParser) allocItem(loc token.SourceLocation) (*Item, error) {
	if ip.write < len(ip.arena) {
		it := &ip.arena[ip.write]
		ip.write++
		*it = Item{}
		return it, nil
	}
	return nil, jsonerr.Errorf(jsonerr.PARSE_OOM, loc, "exceeded available item storage")
}

// Consume advances the structural parser with tok and materializes any
// resulting event into the tree.
func (ip *ItemParser) Consume(tok token.Token) error {
	var evt parser.Event
	produced, err := ip.HandleToken(tok, &evt, false)
	if err != nil {
		return err
	}
	if !produced {
		return nil
	}

	switch evt.Kind {
	case parser.OBJECT_BEGIN:
		it, err := ip.allocItem(tok.Location)
		if err != nil {
			return err
		}
		it.Kind = JSON_OBJECT
		ip.push(it)
		return nil

	case parser.LIST_BEGIN:
		it, err := ip.allocItem(tok.Location)
		if err != nil {
			return err
		}
		it.Kind = JSON_LIST
		ip.push(it)
		return nil

	case parser.VALUE_LITERAL:
		it, err := ip.allocItem(tok.Location)
		if err != nil {
			return err
		}
		if !parseToken(tok, it) {
			return jsonerr.Errorf(jsonerr.LEX_INVALID_TOKEN, tok.Location,
				"cannot parse %q as a value", tok.Spelling)
		}
		if len(ip.itemStack) == 0 {
			return jsonerr.Errorf(jsonerr.PARSE_UNEXPECTED_TOKEN, tok.Location,
				"expected initial object ({}) or list ([]) but got %s", tok.Spelling)
		}
		ip.top().AsGroup().Append(it)
		return nil

	case parser.OBJECT_KEY:
		if tok.Kind != token.STRING_LITERAL {
			return jsonerr.Errorf(jsonerr.PARSE_UNEXPECTED_TOKEN, tok.Location,
				"expected a string literal (key) but got %s", tok.Spelling)
		}
		it, err := ip.allocItem(tok.Location)
		if err != nil {
			return err
		}
		it.AssignKey(tok.Spelling)

		if len(ip.itemStack) == 0 {
			return jsonerr.Errorf(jsonerr.INTERNAL_ERROR, tok.Location, "item stack is empty")
		}
		if ip.top().Kind != JSON_OBJECT {
			return jsonerr.Errorf(jsonerr.INTERNAL_ERROR, tok.Location, "item stack top is not an object")
		}
		ip.top().AsGroup().Append(it)
		return nil

	case parser.OBJECT_END, parser.LIST_END:
		ip.itemStack = ip.itemStack[:len(ip.itemStack)-1]
		return nil
	}

	return jsonerr.Errorf(jsonerr.INTERNAL_ERROR, tok.Location, "unhandled parse event %s", evt.Kind)
}

// push appends the freshly opened group to the current top (if any) and
// makes it the new top.
func (ip *ItemParser) push(it *Item) {
	if len(ip.itemStack) > 0 {
		ip.top().AsGroup().Append(it)
	}
	ip.itemStack = append(ip.itemStack, it)
}

func (ip *ItemParser) top() *Item {
	return ip.itemStack[len(ip.itemStack)-1]
}

// ParseTree tokenizes source and builds a document tree in arena,
// returning the root item. Items already written remain valid for
// inspection even when an error is returned.
func ParseTree(source string, arena []Item) (*Item, error) {
	var scanner lexer.Scanner
	if err := scanner.Init(); err != nil {
		return invalidItem, err
	}
	scanner.Begin(source)

	ip := NewItemParser(arena)
	for {
		tok, err := scanner.Pump()
		if err != nil {
			if jsonerr.IsInputFinished(err) {
				return ip.Root(), nil
			}
			return ip.Root(), err
		}
		if err := ip.Consume(tok); err != nil {
			return ip.Root(), err
		}
	}
}
