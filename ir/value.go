package ir

import (
	"fmt"
	"math"
	"strings"

	"github.com/signadot/univcont/debug"
)

// BoolKey is the reserved map key which supplies the truth value of a
// Map read as a Boolean.
const BoolKey = "#boolean_value"

// IsMetaKey reports whether k is a reserved metadata key. The text
// codecs skip such keys.
func IsMetaKey(k string) bool {
	return strings.HasPrefix(k, "#")
}

// cell is the shared storage behind String, WString, Map and Array
// values. Only the field matching the holder's type is used.
type cell struct {
	refs int
	str  string
	wstr []rune
	m    map[string]*Value
	a    []*Value
}

// Value is a dynamically typed container. Scalars are held inline.
// String, WString, Map and Array payloads live in a reference counted
// cell shared between every holder made with Share or Assign.
//
// A Value is not safe for concurrent mutation. Values sharing a cell
// must be serialized by the caller as one.
type Value struct {
	typ   Type
	dirty bool

	i int64
	f float64
	b bool
	c byte

	cell *cell
}

func Null() *Value {
	return &Value{}
}

func FromInt(i int64) *Value {
	return &Value{typ: IntegerType, i: i}
}

func FromFloat(f float64) *Value {
	return &Value{typ: RealType, f: f}
}

func FromBool(b bool) *Value {
	return &Value{typ: BooleanType, b: b}
}

func FromChar(c byte) *Value {
	return &Value{typ: CharacterType, c: c}
}

func FromString(s string) *Value {
	return &Value{typ: StringType, cell: &cell{refs: 1, str: s}}
}

func FromWString(w []rune) *Value {
	return &Value{typ: WStringType, cell: &cell{refs: 1, wstr: append([]rune(nil), w...)}}
}

// NewMap returns an empty Map.
func NewMap() *Value {
	return &Value{typ: MapType, cell: &cell{refs: 1, m: map[string]*Value{}}}
}

// NewArray returns an empty Array.
func NewArray() *Value {
	return &Value{typ: ArrayType, cell: &cell{refs: 1}}
}

func (v *Value) Type() Type {
	return v.typ
}

// Refs reports the number of holders of v's shared payload, or 0 when
// v holds an inline scalar.
func (v *Value) Refs() int {
	if v.cell == nil {
		return 0
	}
	return v.cell.refs
}

// Share returns a new holder of v's payload. Collections reached
// through the result are the same collections reached through v.
func (v *Value) Share() *Value {
	res := *v
	if res.cell != nil {
		res.cell.refs++
	}
	return &res
}

// Assign makes v a holder of src's payload, releasing whatever v held.
// A Null v accepts any src and a Null src resets v. Otherwise src must
// be of v's category.
func (v *Value) Assign(src *Value) error {
	if src == v {
		return nil
	}
	if src.typ == NullType {
		v.Release()
		v.dirty = true
		return nil
	}
	if v.typ != NullType && v.typ.category() != src.typ.category() {
		return Errorf(ErrTypeMismatchWrite, v, "cannot assign %s to %s", src.typ, v.typ)
	}
	// src may live under v and be reset by v.release.
	held := *src
	if held.cell != nil {
		held.cell.refs++
	}
	v.release()
	v.typ = held.typ
	v.i, v.f, v.b, v.c = held.i, held.f, held.b, held.c
	v.cell = held.cell
	v.dirty = true
	return nil
}

// Release drops v's hold on its payload and resets v to Null. When the
// last holder of a collection lets go, its children are released too.
func (v *Value) Release() {
	v.release()
	v.typ = NullType
	v.i, v.f, v.b, v.c = 0, 0, false, 0
}

func (v *Value) release() {
	c := v.cell
	if c == nil {
		return
	}
	v.cell = nil
	c.refs--
	if c.refs > 0 {
		return
	}
	if debug.COW() {
		debug.Logf("release %s cell", v.typ)
	}
	for _, child := range c.m {
		child.Release()
	}
	for _, child := range c.a {
		child.Release()
	}
	c.m, c.a, c.wstr, c.str = nil, nil, nil, ""
}

// Clear resets v to Null.
func (v *Value) Clear() {
	v.Release()
	v.dirty = true
}

// Set writes a Go value into v. Integers other than uint8 become
// Integer, uint8 becomes Character, and a *Value is assigned with
// Assign. nil resets v to Null.
func (v *Value) Set(x any) error {
	switch x := x.(type) {
	case nil:
		v.Clear()
		return nil
	case *Value:
		return v.Assign(x)
	case bool:
		return v.SetBool(x)
	case uint8:
		return v.SetChar(x)
	case int:
		return v.SetInt(int64(x))
	case int8:
		return v.SetInt(int64(x))
	case int16:
		return v.SetInt(int64(x))
	case int32:
		return v.SetInt(int64(x))
	case int64:
		return v.SetInt(x)
	case uint:
		return v.setUint(uint64(x))
	case uint16:
		return v.SetInt(int64(x))
	case uint32:
		return v.SetInt(int64(x))
	case uint64:
		return v.setUint(x)
	case float32:
		return v.SetFloat(float64(x))
	case float64:
		return v.SetFloat(x)
	case string:
		return v.SetString(x)
	case []rune:
		return v.SetWString(x)
	default:
		return Errorf(ErrTypeMismatchWrite, v, "unsupported Go type %T", x)
	}
}

func (v *Value) setUint(u uint64) error {
	if u > math.MaxInt64 {
		return Errorf(ErrTypeMismatchWrite, v, "%d overflows Integer", u)
	}
	return v.SetInt(int64(u))
}

// GoString renders v for debugging.
func (v *Value) GoString() string {
	switch v.typ {
	case MapType:
		return fmt.Sprintf("Map(%d)", len(v.cell.m))
	case ArrayType:
		return fmt.Sprintf("Array(%d)", len(v.cell.a))
	case NullType:
		return "Null"
	}
	s, _ := v.Str()
	return fmt.Sprintf("%s(%q)", v.typ, s)
}

// FromMap returns a Map holding the given children. The children are
// owned by the result.
func FromMap(m map[string]*Value) *Value {
	res := NewMap()
	for k, child := range m {
		res.cell.m[k] = child
	}
	return res
}

// FromSlice returns an Array holding the given elements, which are
// owned by the result.
func FromSlice(a []*Value) *Value {
	res := NewArray()
	res.cell.a = append(res.cell.a, a...)
	return res
}
