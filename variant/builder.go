package variant

// O builds an object variant from an alternating key, value argument
// list:
//
//	v := variant.O("hello", 123, "world", variant.O("foo", nil))
//
// Values may be string, int, int64, float64, bool, nil, or *Variant.
// A trailing key with no value, or a non-string key, is dropped.
func O(pairs ...interface{}) *Variant {
	v := NewObject()
	for i := 0; i+1 < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			continue
		}
		v.object[key] = fromGo(pairs[i+1])
	}
	return v
}

// L builds a list variant from its arguments, accepting the same value
// types as O.
func L(items ...interface{}) *Variant {
	v := NewList()
	for _, item := range items {
		v.list = append(v.list, fromGo(item))
	}
	return v
}

func fromGo(val interface{}) *Variant {
	switch x := val.(type) {
	case nil:
		return NewNull()
	case *Variant:
		return x.Copy()
	case string:
		return NewString(x)
	case int:
		return NewInteger(int64(x))
	case int64:
		return NewInteger(x)
	case float64:
		return NewReal(x)
	case bool:
		return NewBoolean(x)
	}
	return &Variant{}
}
