package ir

import "fmt"

// Type is the variant held by a Value. The numeric values are the
// type tags of the binary wire format.
type Type byte

const (
	NullType      Type = 0
	IntegerType   Type = 1
	BooleanType   Type = 2
	CharacterType Type = 3
	StringType    Type = 4
	WStringType   Type = 5
	RealType      Type = 6
	MapType       Type = 10
	ArrayType     Type = 11
)

func (t Type) String() string {
	s, ok := map[Type]string{
		NullType:      "Null",
		IntegerType:   "Integer",
		BooleanType:   "Boolean",
		CharacterType: "Character",
		StringType:    "String",
		WStringType:   "WString",
		RealType:      "Real",
		MapType:       "Map",
		ArrayType:     "Array",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Null":      NullType,
		"Integer":   IntegerType,
		"Boolean":   BooleanType,
		"Character": CharacterType,
		"String":    StringType,
		"WString":   WStringType,
		"Real":      RealType,
		"Map":       MapType,
		"Array":     ArrayType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		NullType,
		IntegerType,
		BooleanType,
		CharacterType,
		StringType,
		WStringType,
		RealType,
		MapType,
		ArrayType,
	}
}

// Valid reports whether t is one of the nine variants.
func (t Type) Valid() bool {
	switch t {
	case NullType, IntegerType, BooleanType, CharacterType, StringType,
		WStringType, RealType, MapType, ArrayType:
		return true
	}
	return false
}

func (t Type) IsLeaf() bool {
	switch t {
	case MapType, ArrayType:
		return false
	default:
		return true
	}
}

// IsCollection reports whether t is a Map or an Array.
func (t Type) IsCollection() bool {
	return !t.IsLeaf()
}

// category groups types which may be written over one another.
// Integer and Real form one category.
func (t Type) category() Type {
	if t == RealType {
		return IntegerType
	}
	return t
}
