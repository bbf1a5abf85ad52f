package ir

import (
	"strconv"
	"strings"

	"github.com/signadot/univcont/debug"
)

// Append is the index which addresses a new slot at the end of an
// Array.
const Append = -1

// Segment is one dot separated component of a path. A segment which
// parses as a base 10 integer is Numeric and addresses an Array slot,
// unless the value it is applied to is already a Map.
type Segment struct {
	Key     string
	Index   int
	Numeric bool
}

func (s Segment) String() string {
	return s.Key
}

// ParsePath splits p on every '.'.
func ParsePath(p string) []Segment {
	parts := strings.Split(p, ".")
	res := make([]Segment, len(parts))
	for i, part := range parts {
		res[i].Key = part
		if n, err := strconv.Atoi(part); err == nil {
			res[i].Index = n
			res[i].Numeric = true
		}
	}
	return res
}

// At resolves the dotted path p from v, turning Null values on the way
// into Maps or Arrays and adding missing slots. If any step fails v is
// left unchanged.
func (v *Value) At(p string) (*Value, error) {
	return v.Walk(ParsePath(p))
}

// Walk is At over a parsed path.
func (v *Value) Walk(segs []Segment) (*Value, error) {
	cur := v
	for _, seg := range segs {
		next, err := cur.step(seg, false)
		if err != nil {
			return nil, err
		}
		if next == nil {
			next = Null()
		}
		cur = next
	}
	cur = v
	for _, seg := range segs {
		next, err := cur.step(seg, true)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

// step resolves one segment. Without create nothing is modified and a
// slot which would be added is returned as nil.
func (v *Value) step(seg Segment, create bool) (*Value, error) {
	if create && debug.Path() {
		debug.Logf("step %q on %s", seg.Key, v.typ)
	}
	if seg.Numeric && v.typ != MapType {
		return v.index(seg.Index, create)
	}
	return v.field(seg.Key, create)
}

// Lookup resolves p from v without modifying anything. It reports
// false if any step is missing or addresses the wrong kind of value.
func (v *Value) Lookup(p string) (*Value, bool) {
	cur := v
	for _, seg := range ParsePath(p) {
		switch {
		case cur.typ == MapType:
			next, ok := cur.cell.m[seg.Key]
			if !ok {
				return nil, false
			}
			cur = next
		case cur.typ == ArrayType && seg.Numeric:
			if seg.Index < 0 || seg.Index >= len(cur.cell.a) {
				return nil, false
			}
			cur = cur.cell.a[seg.Index]
		default:
			return nil, false
		}
	}
	return cur, true
}

// Field returns the slot for the literal key k in a Map, creating it
// if absent. A Null v becomes a Map.
func (v *Value) Field(k string) (*Value, error) {
	return v.field(k, true)
}

func (v *Value) field(k string, create bool) (*Value, error) {
	switch v.typ {
	case NullType:
		if !create {
			return nil, nil
		}
		v.vivify(MapType)
	case MapType:
	case ArrayType:
		return nil, Errorf(ErrNonMapAsMap, v, "key %q on array", k)
	default:
		return nil, Errorf(ErrScalarAsCollection, v, "key %q on %s", k, v.typ)
	}
	if child, ok := v.cell.m[k]; ok {
		return child, nil
	}
	if !create {
		return nil, nil
	}
	child := Null()
	v.cell.m[k] = child
	v.dirty = true
	return child, nil
}

// Index returns the slot at i in an Array. i may be an existing
// index, the current length, or Append; the latter two add a Null
// slot. A Null v becomes an Array unless i is out of bounds.
func (v *Value) Index(i int) (*Value, error) {
	return v.index(i, true)
}

func (v *Value) index(i int, create bool) (*Value, error) {
	n := 0
	switch v.typ {
	case NullType:
	case ArrayType:
		n = len(v.cell.a)
	case MapType:
		return nil, Errorf(ErrNonArrayAsArray, v, "index %d on map", i)
	default:
		return nil, Errorf(ErrScalarAsCollection, v, "index %d on %s", i, v.typ)
	}
	switch {
	case i == Append || i == n:
		if !create {
			return nil, nil
		}
		if v.typ == NullType {
			v.vivify(ArrayType)
		}
		child := Null()
		v.cell.a = append(v.cell.a, child)
		v.dirty = true
		return child, nil
	case i >= 0 && i < n:
		return v.cell.a[i], nil
	}
	return nil, Errorf(ErrIndexOutOfBounds, v, "index %d, length %d", i, n)
}

// Append adds a Null slot to the end of an Array and returns it.
func (v *Value) Append() (*Value, error) {
	return v.Index(Append)
}

func (v *Value) vivify(t Type) {
	if debug.Path() {
		debug.Logf("vivify %s", t)
	}
	v.typ = t
	v.cell = &cell{refs: 1}
	if t == MapType {
		v.cell.m = map[string]*Value{}
	}
	v.dirty = true
}
