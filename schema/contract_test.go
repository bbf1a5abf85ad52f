package schema

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/univcont/ir"
	"github.com/signadot/univcont/parse"
)

func mustContract(t *testing.T, ini string) *Contract {
	t.Helper()
	v, err := parse.INI(ini)
	if err != nil {
		t.Fatal(err)
	}
	c, err := New(v)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return c
}

const person = `type=map
required_members.name.type=string
required_members.age.type=integer
required_members.age.lower_bound=0
required_members.age.upper_bound=150
optional_members.email.type=string
optional_members.email.regex=^[^@]+@[^@]+$
`

func TestPerson(t *testing.T) {
	c := mustContract(t, person)
	tests := []struct {
		name string
		v    *ir.Value
		want Violation
	}{
		{"ok", ir.FromMap(map[string]*ir.Value{
			"name": ir.FromString("Sue"), "age": ir.FromInt(30),
		}), 0},
		{"too old", ir.FromMap(map[string]*ir.Value{
			"name": ir.FromString("Sue"), "age": ir.FromInt(200),
		}), ConstraintViolation},
		{"no name", ir.FromMap(map[string]*ir.Value{
			"age": ir.FromInt(30),
		}), MissingRequiredMapElement},
		{"extra", ir.FromMap(map[string]*ir.Value{
			"name": ir.FromString("Sue"), "age": ir.FromInt(30), "x": ir.Null(),
		}), ExtraMapElement},
		{"bad email", ir.FromMap(map[string]*ir.Value{
			"name": ir.FromString("Sue"), "age": ir.FromInt(30), "email": ir.FromString("nope"),
		}), StringDoesNotMatch},
		{"good email", ir.FromMap(map[string]*ir.Value{
			"name": ir.FromString("Sue"), "age": ir.FromInt(30), "email": ir.FromString("sue@example.com"),
		}), 0},
		{"wrong types", ir.FromMap(map[string]*ir.Value{
			"name": ir.FromInt(1), "age": ir.FromFloat(30),
		}), ImproperType},
		{"not a map", ir.NewArray(), ImproperType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Compare(tt.v); got != tt.want {
				t.Errorf("Compare() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScalars(t *testing.T) {
	tests := []struct {
		name   string
		schema string
		v      *ir.Value
		want   Violation
	}{
		{"char in range", "type=character\nlower_bound=97\nupper_bound=122\n", ir.FromChar('m'), 0},
		{"char above", "type=character\nlower_bound=97\nupper_bound=122\n", ir.FromChar('~'), ConstraintViolation},
		{"char below", "type=character\nlower_bound=97\n", ir.FromChar('A'), ConstraintViolation},
		{"real in range", "type=real\nlower_bound=0.5\nupper_bound=1.5\n", ir.FromFloat(1.5), 0},
		{"real above", "type=real\nupper_bound=1.5\n", ir.FromFloat(1.75), ConstraintViolation},
		{"real int bound", "type=real\nlower_bound=1\n", ir.FromFloat(0.5), ConstraintViolation},
		{"boolean", "type=boolean\n", ir.FromBool(false), 0},
		{"boolean type", "type=boolean\n", ir.FromInt(0), ImproperType},
		{"string unanchored", "type=string\nregex=b+\n", ir.FromString("abbbc"), 0},
		{"string alternation", "type=string\nregex=^(cat|dog)$\n", ir.FromString("bird"), StringDoesNotMatch},
		{"integer no bounds", "type=integer\n", ir.FromInt(-1 << 62), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := mustContract(t, tt.schema)
			if got := c.Compare(tt.v); got != tt.want {
				t.Errorf("Compare() = %v, want %v", got, tt.want)
			}
		})
	}
}

const list = `type=array
size.type=integer
size.lower_bound=1
size.upper_bound=3
forall.type=integer
forall.lower_bound=0
exists.0.type=integer
exists.0.lower_bound=10
`

func ints(xs ...int64) *ir.Value {
	res := ir.NewArray()
	for _, x := range xs {
		res.Push(ir.FromInt(x))
	}
	return res
}

func TestArray(t *testing.T) {
	c := mustContract(t, list)
	tests := []struct {
		name string
		v    *ir.Value
		want Violation
	}{
		{"ok", ints(1, 10), 0},
		{"empty", ints(), ConstraintViolation | MissingRequiredArrayElement},
		{"too long", ints(10, 1, 2, 3), ConstraintViolation},
		{"negative", ints(-1, 10), ConstraintViolation},
		{"no big one", ints(1, 2), MissingRequiredArrayElement},
		{"mixed", ir.FromSlice([]*ir.Value{ir.FromInt(10), ir.FromString("x")}), ImproperType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Compare(tt.v); got != tt.want {
				t.Errorf("Compare() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMapWithoutRequired(t *testing.T) {
	c := mustContract(t, "type=map\noptional_members.a.type=boolean\n")
	if got := c.Compare(ir.NewMap()); got != 0 {
		t.Errorf("Compare(empty) = %v, want 0", got)
	}
	if got := c.Compare(ir.FromMap(map[string]*ir.Value{"b": ir.Null()})); got != ExtraMapElement {
		t.Errorf("Compare(extra) = %v", got)
	}
}

func TestNewErrors(t *testing.T) {
	tests := []struct {
		name   string
		schema *ir.Value
	}{
		{"not a map", ir.FromString("map")},
		{"no type", ir.NewMap()},
		{"unknown type", ir.FromMap(map[string]*ir.Value{"type": ir.FromString("date")})},
		{"bad regex", ir.FromMap(map[string]*ir.Value{
			"type": ir.FromString("string"), "regex": ir.FromString("(")})},
		{"bad bound", ir.FromMap(map[string]*ir.Value{
			"type": ir.FromString("integer"), "lower_bound": ir.FromString("low")})},
		{"bad member", ir.FromMap(map[string]*ir.Value{
			"type":             ir.FromString("map"),
			"required_members": ir.FromMap(map[string]*ir.Value{"a": ir.NewMap()}),
		})},
		{"members not a map", ir.FromMap(map[string]*ir.Value{
			"type": ir.FromString("map"), "optional_members": ir.FromInt(1)})},
		{"exists not an array", ir.FromMap(map[string]*ir.Value{
			"type": ir.FromString("array"), "exists": ir.NewMap()})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.schema)
			if !errors.Is(err, ir.ErrContractViolation) {
				t.Errorf("New() error = %v, want %v", err, ir.ErrContractViolation)
			}
		})
	}
}

func TestCheck(t *testing.T) {
	c := mustContract(t, person)
	v := ir.FromMap(map[string]*ir.Value{"age": ir.FromInt(200), "x": ir.Null()})
	err := c.Check(v)
	var e *ir.Error
	if !errors.As(err, &e) || e.Code != ir.ErrContractViolation {
		t.Fatalf("Check() error = %v", err)
	}
	want := ConstraintViolation | ExtraMapElement | MissingRequiredMapElement
	if Violation(e.Mask) != want {
		t.Errorf("Mask = %v, want %v", Violation(e.Mask), want)
	}
	if diff := cmp.Diff(want.Messages(), e.Violations); diff != "" {
		t.Errorf("Violations mismatch (-want +got):\n%s", diff)
	}
	if !e.Container.Equal(v) {
		t.Errorf("error does not carry the checked value")
	}

	if err := c.CheckMask(v, ImproperType|StringDoesNotMatch); err != nil {
		t.Errorf("CheckMask() = %v, want nil", err)
	}
	err = c.CheckMask(v, ExtraMapElement)
	if !errors.As(err, &e) || Violation(e.Mask) != ExtraMapElement {
		t.Errorf("CheckMask(extra) = %v", err)
	}
}

func TestMessages(t *testing.T) {
	if got := len(AllViolations.Messages()); got != 6 {
		t.Errorf("len(AllViolations.Messages()) = %d, want 6", got)
	}
	got := (StringDoesNotMatch | ImproperType).Messages()
	want := []string{"element has wrong type", "a string does not match its regular expression"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Messages() mismatch (-want +got):\n%s", diff)
	}
	if Violation(0).String() != "ok" {
		t.Errorf("String() of 0 = %q", Violation(0).String())
	}
}
