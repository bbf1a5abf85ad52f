package encode

import (
	"math"
	"strings"

	"github.com/segmentio/encoding/json"
	"github.com/signadot/univcont/ir"
)

func encodeJSON(v *ir.Value, es *EncState) ([]byte, error) {
	x, err := toJSON(v)
	if err != nil {
		return nil, err
	}
	var d []byte
	if es.indent > 0 {
		d, err = json.MarshalIndent(x, "", strings.Repeat(" ", es.indent))
	} else {
		d, err = json.Marshal(x)
	}
	if err != nil {
		return nil, ir.Errorf(ir.ErrSerialization, v, "json: %v", err)
	}
	return append(d, '\n'), nil
}

// toJSON converts v to the values encoding/json understands. Characters
// and wide strings become strings.
func toJSON(v *ir.Value) (any, error) {
	switch v.Type() {
	case ir.NullType:
		return nil, nil
	case ir.IntegerType:
		return v.Int()
	case ir.RealType:
		f, _ := v.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, ir.Errorf(ir.ErrSerialization, v, "json cannot represent %v", f)
		}
		return f, nil
	case ir.BooleanType:
		return v.Bool()
	case ir.CharacterType, ir.StringType, ir.WStringType:
		return v.Str()
	case ir.MapType:
		res := map[string]any{}
		for _, k := range v.Keys() {
			child, _ := v.Get(k)
			x, err := toJSON(child)
			if err != nil {
				return nil, err
			}
			res[k] = x
		}
		return res, nil
	case ir.ArrayType:
		elems := v.Elems()
		res := make([]any, len(elems))
		for i, child := range elems {
			x, err := toJSON(child)
			if err != nil {
				return nil, err
			}
			res[i] = x
		}
		return res, nil
	}
	return nil, ir.Errorf(ir.ErrSerialization, v, "type tag %d", v.Type())
}
