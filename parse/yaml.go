package parse

import (
	"fmt"
	"math"

	"github.com/goccy/go-yaml"
	"github.com/signadot/univcont/ir"
)

func parseYAML(d []byte) (*ir.Value, error) {
	var x any
	if err := yaml.Unmarshal(d, &x); err != nil {
		return nil, ir.Errorf(ir.ErrDeserialization, nil, "yaml: %v", err)
	}
	return fromYAML(x)
}

func fromYAML(x any) (*ir.Value, error) {
	switch x := x.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(x), nil
	case string:
		return ir.FromString(x), nil
	case int:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case uint64:
		if x > math.MaxInt64 {
			return nil, ir.Errorf(ir.ErrDeserialization, nil, "yaml integer %d overflows", x)
		}
		return ir.FromInt(int64(x)), nil
	case float64:
		return ir.FromFloat(x), nil
	case []any:
		res := ir.NewArray()
		for _, e := range x {
			child, err := fromYAML(e)
			if err != nil {
				return nil, err
			}
			res.Push(child)
		}
		return res, nil
	case map[string]any:
		res := ir.NewMap()
		for k, e := range x {
			if err := putYAML(res, k, e); err != nil {
				return nil, err
			}
		}
		return res, nil
	case map[any]any:
		res := ir.NewMap()
		for k, e := range x {
			if err := putYAML(res, fmt.Sprint(k), e); err != nil {
				return nil, err
			}
		}
		return res, nil
	case yaml.MapSlice:
		res := ir.NewMap()
		for _, item := range x {
			if err := putYAML(res, fmt.Sprint(item.Key), item.Value); err != nil {
				return nil, err
			}
		}
		return res, nil
	}
	return ir.FromString(fmt.Sprint(x)), nil
}

func putYAML(m *ir.Value, k string, x any) error {
	child, err := fromYAML(x)
	if err != nil {
		return err
	}
	return m.Put(k, child)
}
