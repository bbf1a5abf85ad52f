package ir

import (
	"strconv"
	"strings"
)

// StringInterpret stores text in a Null v as the narrowest type that
// reads it: the empty string, then Integer, Real, a one byte
// Character, Boolean, and finally String. "null" in any case leaves v
// Null.
func (v *Value) StringInterpret(text string) error {
	if v.typ != NullType {
		return Errorf(ErrTypeMismatchWrite, v, "interpret %q into %s", text, v.typ)
	}
	if text == "" {
		return v.SetString("")
	}
	if i, err := strconv.ParseInt(text, 10, 64); err == nil {
		return v.SetInt(i)
	}
	if f, err := strconv.ParseFloat(text, 64); err == nil {
		return v.SetFloat(f)
	}
	if len(text) == 1 {
		return v.SetChar(text[0])
	}
	switch {
	case strings.EqualFold(text, "true"):
		return v.SetBool(true)
	case strings.EqualFold(text, "false"):
		return v.SetBool(false)
	case strings.EqualFold(text, "null"):
		return nil
	}
	return v.SetString(text)
}

// Interpret returns a new Value holding text as StringInterpret would
// store it.
func Interpret(text string) *Value {
	v := Null()
	_ = v.StringInterpret(text)
	return v
}
