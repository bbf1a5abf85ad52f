package parse

import (
	"math"

	"github.com/signadot/univcont/buffer"
	"github.com/signadot/univcont/ir"
	"github.com/signadot/univcont/token"
)

func parseBinary(d []byte, o *parseOpts) (*ir.Value, error) {
	src := buffer.New(d)
	src.Order = o.order
	res, err := readItem(src)
	if err != nil {
		return nil, err
	}
	if !src.AtEnd() {
		return nil, malformed(src.Offset(), "%d trailing bytes", src.Len())
	}
	return res, nil
}

func readItem(src *buffer.Buffer) (*ir.Value, error) {
	off := src.Offset()
	tag, err := src.NextByte()
	if err != nil {
		return nil, truncated(off, "type tag", err)
	}
	switch t := ir.Type(tag); t {
	case ir.NullType:
		return ir.Null(), nil
	case ir.IntegerType:
		u, err := src.NextUint64()
		if err != nil {
			return nil, truncated(off, "integer", err)
		}
		return ir.FromInt(int64(u)), nil
	case ir.RealType:
		u, err := src.NextUint64()
		if err != nil {
			return nil, truncated(off, "real", err)
		}
		return ir.FromFloat(math.Float64frombits(u)), nil
	case ir.BooleanType:
		c, err := src.NextByte()
		if err != nil {
			return nil, truncated(off, "boolean", err)
		}
		return ir.FromBool(c != 0), nil
	case ir.CharacterType:
		c, err := src.NextByte()
		if err != nil {
			return nil, truncated(off, "character", err)
		}
		return ir.FromChar(c), nil
	case ir.StringType:
		d, err := readRun(src, 1)
		if err != nil {
			return nil, err
		}
		return ir.FromString(string(d)), nil
	case ir.WStringType:
		d, err := readRun(src, 4)
		if err != nil {
			return nil, err
		}
		u, err := token.WideEncoding(src.Order).NewDecoder().Bytes(d)
		if err != nil {
			return nil, malformed(off, "wide string: %v", err)
		}
		return ir.FromWString([]rune(string(u))), nil
	case ir.MapType:
		n, err := token.ReadSize(src)
		if err != nil {
			return nil, err
		}
		res := ir.NewMap()
		for i := uint64(0); i < n; i++ {
			k, err := readRun(src, 1)
			if err != nil {
				return nil, err
			}
			child, err := readItem(src)
			if err != nil {
				return nil, err
			}
			res.Put(string(k), child)
		}
		return res, nil
	case ir.ArrayType:
		n, err := token.ReadSize(src)
		if err != nil {
			return nil, err
		}
		res := ir.NewArray()
		for i := uint64(0); i < n; i++ {
			child, err := readItem(src)
			if err != nil {
				return nil, err
			}
			res.Push(child)
		}
		return res, nil
	default:
		return nil, malformed(off, "unknown type tag %d", tag)
	}
}

// readRun reads a size field counting units of width bytes followed by
// the units.
func readRun(src *buffer.Buffer, width int) ([]byte, error) {
	off := src.Offset()
	n, err := token.ReadSize(src)
	if err != nil {
		return nil, err
	}
	if n > uint64(src.Len()/width) {
		return nil, truncated(off, "string", buffer.ErrShort)
	}
	d, err := src.NextBytes(int(n) * width)
	if err != nil {
		return nil, truncated(off, "string", err)
	}
	return d, nil
}
