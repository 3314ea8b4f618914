// Package item implements an arena-backed JSON document tree.
//
// Items are allocated in order from a caller-supplied arena, so
// parsing a document performs no heap allocation beyond that arena.
// Objects and lists thread their children through intrusive
// next-sibling links; within an object, key and value items alternate
// as siblings.
package item

import "github.com/jbialk/jsonstream/token"

// Kind enumerates json tree node types.
type Kind int

const (
	JSON_INVALID Kind = iota
	JSON_OBJECT
	JSON_KEY
	JSON_LIST
	JSON_INTEGER
	JSON_FLOAT
	JSON_BOOLEAN
	JSON_NULL
	JSON_STRING
)

var kindStrings = [...]string{
	JSON_INVALID: "JSON_INVALID",
	JSON_OBJECT:  "JSON_OBJECT",
	JSON_KEY:     "JSON_KEY",
	JSON_LIST:    "JSON_LIST",
	JSON_INTEGER: "JSON_INTEGER",
	JSON_FLOAT:   "JSON_FLOAT",
	JSON_BOOLEAN: "JSON_BOOLEAN",
	JSON_NULL:    "JSON_NULL",
	JSON_STRING:  "JSON_STRING",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindStrings) {
		return "<invalid>"
	}
	return kindStrings[k]
}

// Group links the children of an object or list.
type Group struct {
	Head *Item
	Tail *Item
}

// Append adds an item to the end of the group.
func (g *Group) Append(item *Item) {
	if g.Tail != nil {
		g.Tail.Next = item
		g.Tail = item
	} else {
		g.Head = item
		g.Tail = item
	}
}

// Item is one node of the document tree. String payloads are subslices
// of the source buffer and share its lifetime.
type Item struct {
	Kind Kind
	Next *Item // next item in the enclosing list/object

	Group    Group
	Str      string
	Floatval float64
	Integer  int64
	Boolean  bool
}

// invalidItem is the shared sentinel returned by accessors on a miss.
// It is shared between all callers and must never be mutated.
var invalidItem = &Item{}

// AssignKey stores a key payload, stripping the literal quotes from
// the spelling.
func (it *Item) AssignKey(spelling string) {
	it.Kind = JSON_KEY
	it.Str = stripQuotes(spelling)
}

// AsGroup returns the item's group links, or nil if the item is not an
// object or list.
func (it *Item) AsGroup() *Group {
	if it.Kind == JSON_OBJECT || it.Kind == JSON_LIST {
		return &it.Group
	}
	return nil
}

func next(it *Item) *Item {
	if it == nil {
		return nil
	}
	return it.Next
}

// Get assumes the item is an object and selects the value stored under
// key, walking the alternating key/value sibling chain. A miss returns
// the shared invalid sentinel.
func (it *Item) Get(queryKey string) *Item {
	if it.Kind != JSON_OBJECT {
		return invalidItem
	}

	key := it.Group.Head
	value := next(key)
	for key != nil && value != nil {
		if key.Str == queryKey {
			return value
		}
		key = next(value)
		value = next(key)
	}
	return invalidItem
}

// At assumes the item is a list and selects the element at idx. An
// out-of-range index returns the shared invalid sentinel.
func (it *Item) At(queryIdx int) *Item {
	if it.Kind != JSON_LIST {
		return invalidItem
	}

	child := it.Group.Head
	for idx := 0; idx < queryIdx && child != nil; idx++ {
		child = child.Next
	}
	if child != nil {
		return child
	}
	return invalidItem
}

func stripQuotes(spelling string) string {
	if len(spelling) >= 2 && spelling[0] == '"' {
		return spelling[1 : len(spelling)-1]
	}
	return spelling
}

// parseToken fills an item from a value literal token.
func parseToken(tok token.Token, it *Item) bool {
	*it = Item{}

	switch tok.Kind {
	case token.STRING_LITERAL:
		it.Kind = JSON_STRING
		it.Str = stripQuotes(tok.Spelling)
		return true

	case token.BOOLEAN_LITERAL:
		it.Kind = JSON_BOOLEAN
		it.Boolean = tok.Spelling == "true"
		return true

	case token.NULL_LITERAL:
		it.Kind = JSON_NULL
		return true

	case token.NUMERIC_LITERAL:
		if parseNumeric(tok.Spelling, it) {
			return true
		}
	}
	return false
}
