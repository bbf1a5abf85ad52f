package ir

import "github.com/signadot/univcont/debug"

// checkWrite verifies that a scalar of type t may be written into v.
func (v *Value) checkWrite(t Type) error {
	if v.typ == NullType || v.typ.category() == t.category() {
		return nil
	}
	return Errorf(ErrTypeMismatchWrite, v, "cannot write %s into %s", t, v.typ)
}

func (v *Value) SetInt(i int64) error {
	if err := v.checkWrite(IntegerType); err != nil {
		return err
	}
	v.typ = IntegerType
	v.i, v.f = i, 0
	v.dirty = true
	return nil
}

func (v *Value) SetFloat(f float64) error {
	if err := v.checkWrite(RealType); err != nil {
		return err
	}
	v.typ = RealType
	v.i, v.f = 0, f
	v.dirty = true
	return nil
}

func (v *Value) SetBool(b bool) error {
	if err := v.checkWrite(BooleanType); err != nil {
		return err
	}
	v.typ = BooleanType
	v.b = b
	v.dirty = true
	return nil
}

func (v *Value) SetChar(c byte) error {
	if err := v.checkWrite(CharacterType); err != nil {
		return err
	}
	v.typ = CharacterType
	v.c = c
	v.dirty = true
	return nil
}

// SetString writes s into v. If v's string storage is shared with
// other holders, v first detaches onto a private cell so the other
// holders keep their content.
func (v *Value) SetString(s string) error {
	if err := v.checkWrite(StringType); err != nil {
		return err
	}
	v.privateCell(StringType)
	v.cell.str = s
	v.dirty = true
	return nil
}

// SetWString is SetString for wide strings.
func (v *Value) SetWString(w []rune) error {
	if err := v.checkWrite(WStringType); err != nil {
		return err
	}
	v.privateCell(WStringType)
	v.cell.wstr = append([]rune(nil), w...)
	v.dirty = true
	return nil
}

func (v *Value) privateCell(t Type) {
	switch {
	case v.cell == nil:
		v.cell = &cell{refs: 1}
	case v.cell.refs > 1:
		if debug.COW() {
			debug.Logf("cow detach %s refs=%d", v.typ, v.cell.refs)
		}
		v.cell.refs--
		v.cell = &cell{refs: 1}
	}
	v.typ = t
}
