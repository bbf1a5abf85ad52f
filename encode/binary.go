package encode

import (
	"math"

	"github.com/signadot/univcont/buffer"
	"github.com/signadot/univcont/ir"
	"github.com/signadot/univcont/token"
)

func encodeBinary(v *ir.Value, es *EncState) ([]byte, error) {
	buf := &buffer.Buffer{Order: es.order}
	if err := appendItem(buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func appendSize(buf *buffer.Buffer, n int) error {
	var tmp [5]byte
	d, err := token.AppendSize(tmp[:0], uint64(n))
	if err != nil {
		return err
	}
	buf.AppendBytes(d)
	return nil
}

func appendItem(buf *buffer.Buffer, v *ir.Value) error {
	buf.AppendByte(byte(v.Type()))
	switch v.Type() {
	case ir.NullType:
		return nil
	case ir.IntegerType:
		i, _ := v.Int()
		buf.AppendUint64(uint64(i))
	case ir.RealType:
		f, _ := v.Float()
		buf.AppendUint64(math.Float64bits(f))
	case ir.BooleanType:
		b, _ := v.Bool()
		if b {
			buf.AppendByte(1)
		} else {
			buf.AppendByte(0)
		}
	case ir.CharacterType:
		c, _ := v.Char()
		buf.AppendByte(c)
	case ir.StringType:
		s, _ := v.Str()
		if err := appendSize(buf, len(s)); err != nil {
			return err
		}
		buf.AppendBytes([]byte(s))
	case ir.WStringType:
		w, _ := v.WStr()
		d, err := token.WideEncoding(buf.Order).NewEncoder().Bytes([]byte(string(w)))
		if err != nil {
			return ir.Errorf(ir.ErrSerialization, v, "wide string: %v", err)
		}
		if err := appendSize(buf, len(d)/4); err != nil {
			return err
		}
		buf.AppendBytes(d)
	case ir.MapType:
		keys := v.Keys()
		if err := appendSize(buf, len(keys)); err != nil {
			return err
		}
		for _, k := range keys {
			if err := appendSize(buf, len(k)); err != nil {
				return err
			}
			buf.AppendBytes([]byte(k))
			child, _ := v.Get(k)
			if err := appendItem(buf, child); err != nil {
				return err
			}
		}
	case ir.ArrayType:
		elems := v.Elems()
		if err := appendSize(buf, len(elems)); err != nil {
			return err
		}
		for _, child := range elems {
			if err := appendItem(buf, child); err != nil {
				return err
			}
		}
	default:
		return ir.Errorf(ir.ErrSerialization, v, "type tag %d", v.Type())
	}
	return nil
}
