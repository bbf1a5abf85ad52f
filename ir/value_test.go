package ir

import (
	"errors"
	"testing"
)

func TestShareCollections(t *testing.T) {
	a := NewMap()
	b := a.Share()
	if a.Refs() != 2 {
		t.Fatalf("Refs() = %d, want 2", a.Refs())
	}
	x, err := b.At("x")
	if err != nil {
		t.Fatal(err)
	}
	if err := x.SetInt(1); err != nil {
		t.Fatal(err)
	}
	got, ok := a.Get("x")
	if !ok || !got.EqualInt(1) {
		t.Errorf("a.x = %#v, want Integer 1 seen through the other holder", got)
	}
	b.Release()
	if a.Refs() != 1 {
		t.Errorf("Refs() after Release = %d, want 1", a.Refs())
	}
	if !a.Exists("x") {
		t.Errorf("release of one holder dropped shared content")
	}
}

func TestStringCopyOnWrite(t *testing.T) {
	a := FromString("one")
	b := a.Share()
	if err := b.SetString("two"); err != nil {
		t.Fatal(err)
	}
	if s, _ := a.Str(); s != "one" {
		t.Errorf("a = %q, want %q", s, "one")
	}
	if s, _ := b.Str(); s != "two" {
		t.Errorf("b = %q, want %q", s, "two")
	}
	if a.Refs() != 1 || b.Refs() != 1 {
		t.Errorf("Refs() = %d, %d, want 1, 1", a.Refs(), b.Refs())
	}

	w := FromWString([]rune("wide"))
	w2 := w.Share()
	if err := w2.SetWString([]rune("other")); err != nil {
		t.Fatal(err)
	}
	if s, _ := w.Str(); s != "wide" {
		t.Errorf("w = %q, want %q", s, "wide")
	}
}

func TestAssign(t *testing.T) {
	tests := []struct {
		name    string
		dst     *Value
		src     *Value
		wantErr bool
	}{
		{"null takes map", Null(), NewMap(), false},
		{"int takes real", FromInt(1), FromFloat(2.5), false},
		{"real takes int", FromFloat(1), FromInt(2), false},
		{"int rejects map", FromInt(1), NewMap(), true},
		{"string rejects wstring", FromString("a"), FromWString([]rune("b")), true},
		{"bool rejects char", FromBool(true), FromChar('c'), true},
		{"anything takes null", FromString("a"), Null(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.dst.Type()
			err := tt.dst.Assign(tt.src)
			if tt.wantErr {
				if !errors.Is(err, ErrTypeMismatchWrite) {
					t.Fatalf("Assign() error = %v, want %v", err, ErrTypeMismatchWrite)
				}
				if tt.dst.Type() != before {
					t.Errorf("failed Assign changed type to %s", tt.dst.Type())
				}
				return
			}
			if err != nil {
				t.Fatalf("Assign() error = %v", err)
			}
			if !tt.dst.Equal(tt.src) {
				t.Errorf("Assign() = %#v, want %#v", tt.dst, tt.src)
			}
		})
	}
}

func TestAssignSharesCell(t *testing.T) {
	src := NewArray()
	dst := Null()
	if err := dst.Assign(src); err != nil {
		t.Fatal(err)
	}
	if _, err := dst.Append(); err != nil {
		t.Fatal(err)
	}
	if n, _ := src.Len(); n != 1 {
		t.Errorf("src length = %d, want 1", n)
	}
}

func TestAssignDescendant(t *testing.T) {
	tests := []struct {
		name  string
		build func() (parent, child *Value)
		want  *Value
	}{
		{"array element", func() (*Value, *Value) {
			a := NewArray()
			inner, _ := a.Index(0)
			inner.Push(FromInt(1))
			return a, inner
		}, FromSlice([]*Value{FromInt(1)})},
		{"map member", func() (*Value, *Value) {
			m := FromMap(map[string]*Value{
				"x": FromMap(map[string]*Value{"y": FromString("kept")}),
				"z": FromInt(2),
			})
			x, _ := m.Get("x")
			return m, x
		}, FromMap(map[string]*Value{"y": FromString("kept")})},
		{"deep member", func() (*Value, *Value) {
			m := Null()
			leaf, _ := m.At("a.0.b")
			leaf.SetInt(3)
			b, _ := m.At("a.0")
			return m, b
		}, FromMap(map[string]*Value{"b": FromInt(3)})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parent, child := tt.build()
			if err := parent.Assign(child); err != nil {
				t.Fatal(err)
			}
			if !parent.Equal(tt.want) {
				t.Errorf("Assign() = %s %#v, want %#v", parent.Type(), parent, tt.want)
			}
			if parent.Refs() != 1 {
				t.Errorf("Refs() = %d, want 1", parent.Refs())
			}
		})
	}
}

func TestReleaseNested(t *testing.T) {
	inner := NewArray()
	innerAlias := inner.Share()
	outer := FromMap(map[string]*Value{"in": inner})
	outer.Release()
	if outer.Type() != NullType {
		t.Errorf("Type() = %s, want Null", outer.Type())
	}
	if innerAlias.Refs() != 1 {
		t.Errorf("inner Refs() = %d, want 1", innerAlias.Refs())
	}
}

func TestWriteCategory(t *testing.T) {
	v := FromInt(3)
	if err := v.SetFloat(1.5); err != nil {
		t.Fatalf("SetFloat on Integer: %v", err)
	}
	if v.Type() != RealType {
		t.Errorf("Type() = %s, want Real", v.Type())
	}
	err := v.SetString("x")
	if !errors.Is(err, ErrTypeMismatchWrite) {
		t.Fatalf("SetString on Real error = %v", err)
	}
	if f, _ := v.Float(); f != 1.5 {
		t.Errorf("failed write changed value to %v", f)
	}
	c := FromChar('a')
	if err := c.SetBool(true); !errors.Is(err, ErrTypeMismatchWrite) {
		t.Errorf("SetBool on Character error = %v", err)
	}
}

func TestSet(t *testing.T) {
	tests := []struct {
		in   any
		want *Value
	}{
		{42, FromInt(42)},
		{int32(7), FromInt(7)},
		{uint8('z'), FromChar('z')},
		{2.5, FromFloat(2.5)},
		{true, FromBool(true)},
		{"s", FromString("s")},
		{[]rune("w"), FromWString([]rune("w"))},
		{FromString("v"), FromString("v")},
		{nil, Null()},
	}
	for _, tt := range tests {
		v := Null()
		if err := v.Set(tt.in); err != nil {
			t.Fatalf("Set(%v) error = %v", tt.in, err)
		}
		if !v.Equal(tt.want) {
			t.Errorf("Set(%v) = %#v, want %#v", tt.in, v, tt.want)
		}
	}
	if err := Null().Set(struct{}{}); !errors.Is(err, ErrTypeMismatchWrite) {
		t.Errorf("Set(struct{}{}) error = %v", err)
	}
	if err := Null().Set(uint64(1 << 63)); !errors.Is(err, ErrTypeMismatchWrite) {
		t.Errorf("Set(1<<63) error = %v", err)
	}
}

func TestCloneSharesNothing(t *testing.T) {
	src := FromMap(map[string]*Value{
		"s": FromString("str"),
		"a": FromSlice([]*Value{FromInt(1), NewMap()}),
	})
	cp := src.Clone()
	if !cp.Equal(src) {
		t.Fatalf("Clone() not equal to source")
	}
	elem, err := cp.At("a.1.k")
	if err != nil {
		t.Fatal(err)
	}
	elem.SetBool(true)
	if _, ok := src.Lookup("a.1.k"); ok {
		t.Errorf("write through clone reached source")
	}
	for _, v := range []*Value{FromInt(1), FromFloat(2), FromBool(true), FromChar('c'), Null()} {
		c := v.Clone()
		if !c.Equal(v) || c == v {
			t.Errorf("Clone(%#v) = %#v", v, c)
		}
	}
}

func TestDirty(t *testing.T) {
	v := FromMap(map[string]*Value{"a": FromInt(1)})
	if v.IsDirty() {
		t.Fatalf("new value is dirty")
	}
	a, _ := v.Get("a")
	a.SetInt(2)
	if !v.IsDirty() {
		t.Errorf("IsDirty() = false after child write")
	}
	v.Clean()
	if v.IsDirty() || a.IsDirty() {
		t.Errorf("IsDirty() = true after Clean")
	}
	if _, err := v.Remove("a"); err != nil {
		t.Fatal(err)
	}
	if !v.IsDirty() {
		t.Errorf("IsDirty() = false after Remove")
	}
}
