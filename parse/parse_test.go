package parse

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/signadot/univcont/encode"
	"github.com/signadot/univcont/format"
	"github.com/signadot/univcont/ir"
)

func mixed() *ir.Value {
	return ir.FromMap(map[string]*ir.Value{
		"null":  ir.Null(),
		"int":   ir.FromInt(-42),
		"big":   ir.FromInt(math.MaxInt64),
		"real":  ir.FromFloat(3.25),
		"bool":  ir.FromBool(true),
		"char":  ir.FromChar('Z'),
		"str":   ir.FromString("hello world"),
		"wide":  ir.FromWString([]rune("héllo ✓")),
		"#meta": ir.FromBool(false),
		"list": ir.FromSlice([]*ir.Value{
			ir.FromMap(map[string]*ir.Value{"k": ir.FromString("v")}),
			ir.NewArray(),
			ir.NewMap(),
		}),
		"with.dot": ir.FromInt(1),
	})
}

func TestBinaryRoundTrip(t *testing.T) {
	for _, order := range []binary.ByteOrder{binary.LittleEndian, binary.BigEndian, binary.NativeEndian} {
		v := mixed()
		d, err := encode.Binary(v, encode.ByteOrder(order))
		if err != nil {
			t.Fatal(err)
		}
		got, err := Binary(d, ByteOrder(order))
		if err != nil {
			t.Fatalf("%s: Binary() error = %v", order, err)
		}
		if !got.Equal(v) {
			t.Errorf("%s: round trip = %s, want %s", order, encode.MustString(got), encode.MustString(v))
		}
		if got.IsDirty() {
			t.Errorf("%s: decoded value is dirty", order)
		}
		if _, ok := got.Get("with.dot"); !ok {
			t.Errorf("%s: dotted key was split", order)
		}
	}
}

func TestBinaryScalars(t *testing.T) {
	for _, v := range []*ir.Value{
		ir.Null(), ir.FromInt(0), ir.FromFloat(math.Inf(-1)), ir.FromBool(false),
		ir.FromChar(0), ir.FromString(""), ir.FromWString(nil),
	} {
		d, err := encode.Binary(v)
		if err != nil {
			t.Fatal(err)
		}
		got, err := Binary(d)
		if err != nil || !got.Equal(v) {
			t.Errorf("round trip of %#v = %#v, %v", v, got, err)
		}
	}
}

func TestBinaryErrors(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
	}{
		{"empty", nil},
		{"unknown tag", []byte{7}},
		{"short integer", []byte{1, 0, 0}},
		{"short string", []byte{4, 5, 'a'}},
		{"short wide", []byte{5, 1, 0, 0}},
		{"trailing", []byte{0, 0}},
		{"truncated map", []byte{10, 1, 1, 'a'}},
		{"bad size header", []byte{11, 140}},
		{"huge count", []byte{4, 132, 0xff, 0xff, 0xff, 0xff}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Binary(tt.in)
			if !errors.Is(err, ir.ErrDeserialization) {
				t.Errorf("Binary(%v) error = %v, want %v", tt.in, err, ir.ErrDeserialization)
			}
		})
	}
}

func scalarTree() *ir.Value {
	return ir.FromMap(map[string]*ir.Value{
		"name": ir.FromString("Sue Smith"),
		"age":  ir.FromInt(30),
		"rate": ir.FromFloat(2),
		"ok":   ir.FromBool(false),
		"c":    ir.FromChar('x'),
		"n":    ir.Null(),
		"tags": ir.FromSlice([]*ir.Value{
			ir.FromString("a&b=c"),
			ir.FromString("50% off"),
			ir.FromMap(map[string]*ir.Value{"deep": ir.FromFloat(-0.5)}),
		}),
	})
}

func TestTextRoundTrip(t *testing.T) {
	for _, f := range []format.Format{format.INIFormat, format.FormFormat} {
		v := scalarTree()
		d, err := encode.EncodeMIME(v, f.MIMEType())
		if err != nil {
			t.Fatal(err)
		}
		got, err := Parse(d, ParseFormat(f))
		if err != nil {
			t.Fatalf("%s: Parse() error = %v", f, err)
		}
		if !got.Equal(v) {
			t.Errorf("%s: round trip of %q = %s", f, d, encode.MustString(got))
		}
	}
}

func TestINI(t *testing.T) {
	got, err := INI("a.0 = 1\r\n\na.1=two words\nb.c=TRUE\nb.d=null\n")
	if err != nil {
		t.Fatal(err)
	}
	want := ir.FromMap(map[string]*ir.Value{
		"a": ir.FromSlice([]*ir.Value{ir.FromInt(1), ir.FromString("two words")}),
		"b": ir.FromMap(map[string]*ir.Value{"c": ir.FromBool(true), "d": ir.Null()}),
	})
	if !got.Equal(want) {
		t.Errorf("INI() = %s, want %s", encode.MustString(got), encode.MustString(want))
	}
}

func TestTextBare(t *testing.T) {
	got, err := INI("  42 \n")
	if err != nil || !got.EqualInt(42) || got.Type() != ir.IntegerType {
		t.Errorf("INI(bare) = %#v, %v", got, err)
	}
	got, err = Form("a%3Db")
	if err != nil || !got.Equal(ir.FromString("a=b")) {
		t.Errorf("Form(bare) = %#v, %v", got, err)
	}
	if _, err := INI("a=1\n7\n"); !errors.Is(err, ir.ErrTypeMismatchWrite) {
		t.Errorf("bare record after keys error = %v", err)
	}
}

func TestTextLastWins(t *testing.T) {
	got, err := Form("a=1&a=x")
	if err != nil {
		t.Fatal(err)
	}
	a, _ := got.Get("a")
	if !a.Equal(ir.FromChar('x')) {
		t.Errorf("a = %#v, want Character x", a)
	}
}

func TestTextIndexOutOfBounds(t *testing.T) {
	if _, err := INI("list.5=1\n"); !errors.Is(err, ir.ErrIndexOutOfBounds) {
		t.Errorf("INI(list.5) error = %v", err)
	}
}

func TestJSON(t *testing.T) {
	got, err := Parse([]byte(`{"a": [1, 2.5, "s", null, true], "b": {}}`), ParseJSON())
	if err != nil {
		t.Fatal(err)
	}
	want := ir.FromMap(map[string]*ir.Value{
		"a": ir.FromSlice([]*ir.Value{
			ir.FromInt(1), ir.FromFloat(2.5), ir.FromString("s"), ir.Null(), ir.FromBool(true),
		}),
		"b": ir.NewMap(),
	})
	if !got.Equal(want) {
		t.Errorf("JSON = %s", encode.MustString(got))
	}
	for _, in := range []string{`{`, `1 2`, ``} {
		if _, err := Parse([]byte(in), ParseJSON()); !errors.Is(err, ir.ErrDeserialization) {
			t.Errorf("Parse(%q) error = %v", in, err)
		}
	}
}

func TestJSONRoundTrip(t *testing.T) {
	v := ir.FromMap(map[string]*ir.Value{
		"i": ir.FromInt(-3),
		"r": ir.FromFloat(0.125),
		"s": ir.FromSlice([]*ir.Value{ir.FromString("x"), ir.Null()}),
	})
	d, err := encode.EncodeMIME(v, "application/json")
	if err != nil {
		t.Fatal(err)
	}
	got, err := ParseMIME("application/json; charset=utf-8", d)
	if err != nil || !got.Equal(v) {
		t.Errorf("round trip of %s = %#v, %v", d, got, err)
	}
}

func TestYAML(t *testing.T) {
	got, err := Parse([]byte("a: 1\nb:\n  - x\n  - -2\n  - 1.5\nc: true\nd: null\n"), ParseYAML())
	if err != nil {
		t.Fatal(err)
	}
	want := ir.FromMap(map[string]*ir.Value{
		"a": ir.FromInt(1),
		"b": ir.FromSlice([]*ir.Value{ir.FromString("x"), ir.FromInt(-2), ir.FromFloat(1.5)}),
		"c": ir.FromBool(true),
		"d": ir.Null(),
	})
	if !got.Equal(want) {
		t.Errorf("YAML = %s", encode.MustString(got))
	}
}

func TestParseMIMEUnknown(t *testing.T) {
	got, err := ParseMIME("image/png", []byte("\x89PNG"))
	if err != nil {
		t.Fatal(err)
	}
	if b, _ := got.Bool(); b {
		t.Errorf("unknown content reads as true")
	}
	mt, _ := got.Get("mime-type")
	if !mt.EqualString("image/png") {
		t.Errorf("mime-type = %#v", mt)
	}
	c, _ := got.Get("contents")
	if !c.EqualString("\x89PNG") {
		t.Errorf("contents = %#v", c)
	}
}
