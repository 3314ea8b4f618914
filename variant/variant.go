// Package variant implements a dynamic tagged JSON value.
//
// A Variant owns all of its storage: assignment and construction from
// another Variant deep-copy, and children live exactly as long as their
// parent. The read accessors return a shared invalid sentinel on a
// miss; callers must treat that sentinel as immutable.
package variant

import "sort"

// Kind is the type of a JSON value.
type Kind int

// Possible JSON values.
const (
	INVALID Kind = iota
	OBJECT
	LIST
	STRING
	REALNO
	INTEGER
	BOOLEAN
	NULL
)

var kindStrings = [...]string{
	INVALID: "<invalid>",
	OBJECT:  "<object>",
	LIST:    "<list>",
	STRING:  "<string>",
	REALNO:  "<real>",
	INTEGER: "<integer>",
	BOOLEAN: "<boolean>",
	NULL:    "<null>",
}

// String returns a string representation of a value kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindStrings) {
		return "<unknown>"
	}
	return kindStrings[k]
}

// Variant is a value which may be any of the JSON primitives, an
// object, or a list. The zero value is invalid.
type Variant struct {
	kind    Kind
	object  map[string]*Variant
	list    []*Variant
	str     string
	realno  float64
	integer int64
	boolean bool
}

// invalid is the shared sentinel returned by read accessors on a miss.
// It is shared between all callers and must never be mutated.
var invalid = &Variant{}

// Kind returns the kind of the current value.
func (v *Variant) Kind() Kind {
	if v == nil {
		return INVALID
	}
	return v.kind
}

// Valid reports whether the variant holds a value.
func (v *Variant) Valid() bool { return v.Kind() != INVALID }

// Constructors.

// NewObject returns an empty object value.
func NewObject() *Variant {
	return &Variant{kind: OBJECT, object: map[string]*Variant{}}
}

// NewList returns an empty list value.
func NewList() *Variant {
	return &Variant{kind: LIST}
}

// NewString returns a string value.
func NewString(s string) *Variant { return &Variant{kind: STRING, str: s} }

// NewReal returns a real number value.
func NewReal(f float64) *Variant { return &Variant{kind: REALNO, realno: f} }

// NewInteger returns an integer value.
func NewInteger(i int64) *Variant { return &Variant{kind: INTEGER, integer: i} }

// NewBoolean returns a boolean value.
func NewBoolean(b bool) *Variant { return &Variant{kind: BOOLEAN, boolean: b} }

// NewNull returns a null value.
func NewNull() *Variant { return &Variant{kind: NULL} }

// Assign replaces v's payload with a deep copy of other, destroying
// whatever v held before.
func (v *Variant) Assign(other *Variant) {
	v.clear()
	if other == nil {
		return
	}
	v.kind = other.kind
	v.str = other.str
	v.realno = other.realno
	v.integer = other.integer
	v.boolean = other.boolean
	switch other.kind {
	case OBJECT:
		v.object = make(map[string]*Variant, len(other.object))
		for key, child := range other.object {
			v.object[key] = child.Copy()
		}
	case LIST:
		v.list = make([]*Variant, len(other.list))
		for idx, child := range other.list {
			v.list[idx] = child.Copy()
		}
	}
}

// Copy returns a deep copy of v.
func (v *Variant) Copy() *Variant {
	out := &Variant{}
	out.Assign(v)
	return out
}

// clear resets v to the invalid state, dropping its payload.
func (v *Variant) clear() {
	*v = Variant{}
}

// Scalar accessors. Each returns the payload if the kind matches and
// the zero value otherwise.

func (v *Variant) Str() string {
	if v.Kind() != STRING {
		return ""
	}
	return v.str
}

func (v *Variant) Real() float64 {
	if v.Kind() != REALNO {
		return 0
	}
	return v.realno
}

func (v *Variant) Integer() int64 {
	if v.Kind() != INTEGER {
		return 0
	}
	return v.integer
}

func (v *Variant) Boolean() bool {
	if v.Kind() != BOOLEAN {
		return false
	}
	return v.boolean
}

// Len returns the number of children of an object or list, and zero
// for every other kind.
func (v *Variant) Len() int {
	switch v.Kind() {
	case OBJECT:
		return len(v.object)
	case LIST:
		return len(v.list)
	}
	return 0
}

// Get is the read path object accessor. A miss, or a call on a
// non-object, returns the shared invalid sentinel.
func (v *Variant) Get(key string) *Variant {
	if v.Kind() != OBJECT {
		return invalid
	}
	if child, ok := v.object[key]; ok {
		return child
	}
	return invalid
}

// Put is the write path object accessor: absent keys are inserted with
// a default-constructed invalid entry, and the entry is returned for
// mutation. A call on a non-object returns the sentinel.
func (v *Variant) Put(key string) *Variant {
	if v.Kind() != OBJECT {
		return invalid
	}
	if child, ok := v.object[key]; ok {
		return child
	}
	child := &Variant{}
	v.object[key] = child
	return child
}

// Set inserts a deep copy of val under key.
func (v *Variant) Set(key string, val *Variant) {
	v.Put(key).Assign(val)
}

// At is the read path list accessor. Out-of-range indices, or a call
// on a non-list, return the shared invalid sentinel.
func (v *Variant) At(idx int) *Variant {
	if v.Kind() != LIST || idx < 0 || idx >= len(v.list) {
		return invalid
	}
	return v.list[idx]
}

// Slot is the write path list accessor: the list grows up to the
// requested index, missing slots becoming invalid entries. A call on a
// non-list returns the sentinel.
func (v *Variant) Slot(idx int) *Variant {
	if v.Kind() != LIST || idx < 0 {
		return invalid
	}
	for len(v.list) <= idx {
		v.list = append(v.list, &Variant{})
	}
	return v.list[idx]
}

// Append adds a deep copy of val to the end of a list.
func (v *Variant) Append(val *Variant) {
	if v.Kind() != LIST {
		return
	}
	v.list = append(v.list, val.Copy())
}

// Keys returns the object's keys in sorted order.
func (v *Variant) Keys() []string {
	if v.Kind() != OBJECT {
		return nil
	}
	keys := make([]string, 0, len(v.object))
	for key := range v.object {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Equal reports whether two variants hold the same value. Objects
// compare by key set and per-key equality; lists compare element-wise.
func (v *Variant) Equal(other *Variant) bool {
	if v.Kind() != other.Kind() {
		return false
	}
	switch v.Kind() {
	case OBJECT:
		if len(v.object) != len(other.object) {
			return false
		}
		for key, child := range v.object {
			oc, ok := other.object[key]
			if !ok || !child.Equal(oc) {
				return false
			}
		}
		return true
	case LIST:
		if len(v.list) != len(other.list) {
			return false
		}
		for idx, child := range v.list {
			if !child.Equal(other.list[idx]) {
				return false
			}
		}
		return true
	case STRING:
		return v.str == other.str
	case REALNO:
		return v.realno == other.realno
	case INTEGER:
		return v.integer == other.integer
	case BOOLEAN:
		return v.boolean == other.boolean
	}
	return true
}
