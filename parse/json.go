package parse

import (
	"bytes"
	"errors"
	"io"

	"github.com/segmentio/encoding/json"
	"github.com/signadot/univcont/ir"
)

func parseJSON(d []byte) (*ir.Value, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var x any
	if err := dec.Decode(&x); err != nil {
		return nil, ir.Errorf(ir.ErrDeserialization, nil, "json: %v", err)
	}
	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, ir.Errorf(ir.ErrDeserialization, nil, "json: trailing data")
	}
	return fromJSON(x)
}

func fromJSON(x any) (*ir.Value, error) {
	switch x := x.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(x), nil
	case string:
		return ir.FromString(x), nil
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return ir.FromInt(i), nil
		}
		f, err := x.Float64()
		if err != nil {
			return nil, ir.Errorf(ir.ErrDeserialization, nil, "json number %s: %v", x, err)
		}
		return ir.FromFloat(f), nil
	case float64:
		return ir.FromFloat(x), nil
	case []any:
		res := ir.NewArray()
		for _, e := range x {
			child, err := fromJSON(e)
			if err != nil {
				return nil, err
			}
			res.Push(child)
		}
		return res, nil
	case map[string]any:
		res := ir.NewMap()
		for k, e := range x {
			child, err := fromJSON(e)
			if err != nil {
				return nil, err
			}
			res.Put(k, child)
		}
		return res, nil
	}
	return nil, ir.Errorf(ir.ErrDeserialization, nil, "json value of type %T", x)
}
