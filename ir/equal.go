package ir

// Equal reports whether v and o hold the same variant and equal
// content, comparing collections recursively. Neither side is
// modified.
func (v *Value) Equal(o *Value) bool {
	if v == o {
		return true
	}
	if v == nil || o == nil || v.typ != o.typ {
		return false
	}
	if v.cell != nil && v.cell == o.cell {
		return true
	}
	switch v.typ {
	case NullType:
		return true
	case IntegerType:
		return v.i == o.i
	case RealType:
		return v.f == o.f
	case BooleanType:
		return v.b == o.b
	case CharacterType:
		return v.c == o.c
	case StringType:
		return v.cell.str == o.cell.str
	case WStringType:
		return string(v.cell.wstr) == string(o.cell.wstr)
	case MapType:
		if len(v.cell.m) != len(o.cell.m) {
			return false
		}
		for k, child := range v.cell.m {
			other, ok := o.cell.m[k]
			if !ok || !child.Equal(other) {
				return false
			}
		}
		return true
	case ArrayType:
		if len(v.cell.a) != len(o.cell.a) {
			return false
		}
		for i, child := range v.cell.a {
			if !child.Equal(o.cell.a[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// EqualInt reports whether v reads as i. A failed read is unequal.
func (v *Value) EqualInt(i int64) bool {
	x, err := v.Int()
	return err == nil && x == i
}

func (v *Value) EqualFloat(f float64) bool {
	x, err := v.Float()
	return err == nil && x == f
}

func (v *Value) EqualBool(b bool) bool {
	x, err := v.Bool()
	return err == nil && x == b
}

func (v *Value) EqualChar(c byte) bool {
	x, err := v.Char()
	return err == nil && x == c
}

func (v *Value) EqualString(s string) bool {
	x, err := v.Str()
	return err == nil && x == s
}
