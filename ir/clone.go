package ir

// Clone returns a deep copy of v which shares no storage with it.
func (v *Value) Clone() *Value {
	res := &Value{
		typ:   v.typ,
		dirty: v.dirty,
		i:     v.i,
		f:     v.f,
		b:     v.b,
		c:     v.c,
	}
	switch v.typ {
	case StringType:
		res.cell = &cell{refs: 1, str: v.cell.str}
	case WStringType:
		res.cell = &cell{refs: 1, wstr: append([]rune(nil), v.cell.wstr...)}
	case MapType:
		m := make(map[string]*Value, len(v.cell.m))
		for k, child := range v.cell.m {
			m[k] = child.Clone()
		}
		res.cell = &cell{refs: 1, m: m}
	case ArrayType:
		a := make([]*Value, len(v.cell.a))
		for i, child := range v.cell.a {
			a[i] = child.Clone()
		}
		res.cell = &cell{refs: 1, a: a}
	}
	return res
}

// IsDirty reports whether v or anything below it was written since
// creation or the last Clean.
func (v *Value) IsDirty() bool {
	if v.dirty {
		return true
	}
	switch v.typ {
	case MapType:
		for _, child := range v.cell.m {
			if child.IsDirty() {
				return true
			}
		}
	case ArrayType:
		for _, child := range v.cell.a {
			if child.IsDirty() {
				return true
			}
		}
	}
	return false
}

// Clean clears the dirty flag of v and everything below it.
func (v *Value) Clean() {
	v.dirty = false
	switch v.typ {
	case MapType:
		for _, child := range v.cell.m {
			child.Clean()
		}
	case ArrayType:
		for _, child := range v.cell.a {
			child.Clean()
		}
	}
}
