package ir

import (
	"slices"
)

// Get returns the child of a Map at the literal key k.
func (v *Value) Get(k string) (*Value, bool) {
	if v.typ != MapType {
		return nil, false
	}
	child, ok := v.cell.m[k]
	return child, ok
}

// Exists reports whether v is a Map with key k.
func (v *Value) Exists(k string) bool {
	_, ok := v.Get(k)
	return ok
}

// Len returns the number of entries of a collection, the number of
// bytes of a String or runes of a WString, and 0 for Null.
func (v *Value) Len() (int, error) {
	switch v.typ {
	case NullType:
		return 0, nil
	case StringType:
		return len(v.cell.str), nil
	case WStringType:
		return len(v.cell.wstr), nil
	case MapType:
		return len(v.cell.m), nil
	case ArrayType:
		return len(v.cell.a), nil
	}
	return 0, Errorf(ErrTypeMismatchRead, v, "length of %s", v.typ)
}

// Remove deletes k from a Map and reports whether it was present.
func (v *Value) Remove(k string) (bool, error) {
	switch v.typ {
	case NullType:
		return false, nil
	case MapType:
	default:
		return false, Errorf(ErrNonMapAsMap, v, "remove %q", k)
	}
	child, ok := v.cell.m[k]
	if !ok {
		return false, nil
	}
	delete(v.cell.m, k)
	child.Release()
	v.dirty = true
	return true, nil
}

// Keys returns the keys of a Map in ascending order.
func (v *Value) Keys() []string {
	if v.typ != MapType {
		return nil
	}
	keys := make([]string, 0, len(v.cell.m))
	for k := range v.cell.m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Elems returns the slots of an Array in order. The slice is a copy;
// the slots are not.
func (v *Value) Elems() []*Value {
	if v.typ != ArrayType {
		return nil
	}
	return slices.Clone(v.cell.a)
}

// InitMap makes a Null v an empty Map. It is a no-op on a Map.
func (v *Value) InitMap() error {
	switch v.typ {
	case NullType:
		v.vivify(MapType)
		return nil
	case MapType:
		return nil
	}
	return Errorf(ErrTypeMismatchWrite, v, "cannot make %s a map", v.typ)
}

// InitArray makes a Null v an empty Array. It is a no-op on an Array.
func (v *Value) InitArray() error {
	switch v.typ {
	case NullType:
		v.vivify(ArrayType)
		return nil
	case ArrayType:
		return nil
	}
	return Errorf(ErrTypeMismatchWrite, v, "cannot make %s an array", v.typ)
}

// Put stores child under the literal key k of a Map, taking ownership
// of child. A Null v becomes a Map and any previous value at k is
// released.
func (v *Value) Put(k string, child *Value) error {
	if v.typ == NullType {
		v.vivify(MapType)
	}
	if v.typ != MapType {
		return Errorf(ErrNonMapAsMap, v, "put %q on %s", k, v.typ)
	}
	if old, ok := v.cell.m[k]; ok && old != child {
		old.Release()
	}
	v.cell.m[k] = child
	v.dirty = true
	return nil
}

// Push appends child to an Array, taking ownership of child. A Null v
// becomes an Array.
func (v *Value) Push(child *Value) error {
	if v.typ == NullType {
		v.vivify(ArrayType)
	}
	if v.typ != ArrayType {
		return Errorf(ErrNonArrayAsArray, v, "push on %s", v.typ)
	}
	v.cell.a = append(v.cell.a, child)
	v.dirty = true
	return nil
}
