package encode

import (
	"github.com/goccy/go-yaml"
	"github.com/signadot/univcont/ir"
)

func encodeYAML(v *ir.Value) ([]byte, error) {
	x, err := toYAML(v)
	if err != nil {
		return nil, err
	}
	d, err := yaml.Marshal(x)
	if err != nil {
		return nil, ir.Errorf(ir.ErrSerialization, v, "yaml: %v", err)
	}
	return d, nil
}

// toYAML is toJSON with maps as ordered yaml.MapSlice.
func toYAML(v *ir.Value) (any, error) {
	switch v.Type() {
	case ir.MapType:
		keys := v.Keys()
		res := make(yaml.MapSlice, 0, len(keys))
		for _, k := range keys {
			child, _ := v.Get(k)
			x, err := toYAML(child)
			if err != nil {
				return nil, err
			}
			res = append(res, yaml.MapItem{Key: k, Value: x})
		}
		return res, nil
	case ir.ArrayType:
		elems := v.Elems()
		res := make([]any, len(elems))
		for i, child := range elems {
			x, err := toYAML(child)
			if err != nil {
				return nil, err
			}
			res[i] = x
		}
		return res, nil
	case ir.RealType:
		return v.Float()
	}
	return toJSON(v)
}
