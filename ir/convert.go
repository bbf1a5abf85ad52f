package ir

import (
	"math"
	"strconv"
	"strings"
)

func (v *Value) Int() (int64, error) {
	switch v.typ {
	case NullType:
		return 0, nil
	case IntegerType:
		return v.i, nil
	case RealType:
		return int64(v.f), nil
	case BooleanType:
		if v.b {
			return 1, nil
		}
		return 0, nil
	case CharacterType:
		return int64(v.c), nil
	case StringType, WStringType:
		s, _ := v.Str()
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, Errorf(ErrTypeMismatchRead, v, "%q is not an integer", s)
		}
		return i, nil
	default:
		return 0, v.collectionAsScalar()
	}
}

func (v *Value) Float() (float64, error) {
	switch v.typ {
	case NullType:
		return 0, nil
	case IntegerType:
		return float64(v.i), nil
	case RealType:
		return v.f, nil
	case BooleanType:
		if v.b {
			return 1, nil
		}
		return 0, nil
	case CharacterType:
		return float64(v.c), nil
	case StringType, WStringType:
		s, _ := v.Str()
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, Errorf(ErrTypeMismatchRead, v, "%q is not a real", s)
		}
		return f, nil
	default:
		return 0, v.collectionAsScalar()
	}
}

// Char reads v as a single byte. Numbers must lie in [0, 255]. A
// String yields its first byte, or 0 when empty.
func (v *Value) Char() (byte, error) {
	switch v.typ {
	case NullType:
		return 0, nil
	case IntegerType:
		if v.i < 0 || v.i > math.MaxUint8 {
			return 0, Errorf(ErrTypeMismatchRead, v, "%d is not a character", v.i)
		}
		return byte(v.i), nil
	case RealType:
		if v.f < 0 || v.f >= math.MaxUint8+1 || math.IsNaN(v.f) {
			return 0, Errorf(ErrTypeMismatchRead, v, "%g is not a character", v.f)
		}
		return byte(v.f), nil
	case BooleanType:
		if v.b {
			return 1, nil
		}
		return 0, nil
	case CharacterType:
		return v.c, nil
	case StringType:
		if v.cell.str == "" {
			return 0, nil
		}
		return v.cell.str[0], nil
	case WStringType:
		return 0, Errorf(ErrTypeMismatchRead, v, "wide string read as character")
	default:
		return 0, v.collectionAsScalar()
	}
}

func (v *Value) Bool() (bool, error) {
	switch v.typ {
	case NullType:
		return false, nil
	case IntegerType:
		return v.i != 0, nil
	case RealType:
		return v.f != 0, nil
	case BooleanType:
		return v.b, nil
	case CharacterType:
		return v.c != 0, nil
	case StringType, WStringType:
		s, _ := v.Str()
		switch {
		case strings.EqualFold(s, "true"):
			return true, nil
		case strings.EqualFold(s, "false"):
			return false, nil
		}
		return false, Errorf(ErrTypeMismatchRead, v, "%q is not a boolean", s)
	case MapType:
		if flag, ok := v.cell.m[BoolKey]; ok {
			return flag.Bool()
		}
		return true, nil
	default:
		return true, nil
	}
}

// Str reads v as a byte string. Null reads as "null". Reals always
// carry a '.' or an exponent.
func (v *Value) Str() (string, error) {
	switch v.typ {
	case NullType:
		return "null", nil
	case IntegerType:
		return strconv.FormatInt(v.i, 10), nil
	case RealType:
		return formatReal(v.f), nil
	case BooleanType:
		return strconv.FormatBool(v.b), nil
	case CharacterType:
		return string([]byte{v.c}), nil
	case StringType:
		return v.cell.str, nil
	case WStringType:
		return string(v.cell.wstr), nil
	default:
		return "", v.collectionAsScalar()
	}
}

func (v *Value) WStr() ([]rune, error) {
	if v.typ == WStringType {
		return append([]rune(nil), v.cell.wstr...), nil
	}
	s, err := v.Str()
	if err != nil {
		return nil, err
	}
	return []rune(s), nil
}

func formatReal(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if math.IsInf(f, 0) || math.IsNaN(f) || strings.ContainsAny(s, ".e") {
		return s
	}
	return s + ".0"
}

func (v *Value) collectionAsScalar() error {
	return Errorf(ErrCollectionAsScalar, v, "%s read as scalar", v.typ)
}
