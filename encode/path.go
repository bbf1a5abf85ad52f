package encode

import (
	"strconv"

	"github.com/signadot/univcont/ir"
	"github.com/signadot/univcont/token"
)

// appendText flattens v into path=value records. Escaped records are
// URL escaped and terminated by '&', plain ones by a newline. Map keys
// starting with '#' are skipped.
func appendText(dst []byte, v *ir.Value, path string, escaped bool, es *EncState) []byte {
	switch v.Type() {
	case ir.MapType:
		for _, k := range v.Keys() {
			if ir.IsMetaKey(k) {
				continue
			}
			child, _ := v.Get(k)
			dst = appendText(dst, child, join(path, k), escaped, es)
		}
		return dst
	case ir.ArrayType:
		for i, child := range v.Elems() {
			dst = appendText(dst, child, join(path, strconv.Itoa(i)), escaped, es)
		}
		return dst
	}
	val, _ := v.Str()
	if escaped {
		path = token.URLEscape(path)
		val = token.URLEscape(val)
	} else if es.Color != nil {
		if path != "" {
			path = es.Color(ir.MapType, FieldColor, path)
		}
		val = es.Color(v.Type(), ValueColor, val)
	}
	if path != "" {
		dst = append(dst, path...)
		if escaped || es.Color == nil {
			dst = append(dst, '=')
		} else {
			dst = append(dst, es.Color(ir.MapType, SepColor, "=")...)
		}
	}
	dst = append(dst, val...)
	if escaped {
		return append(dst, '&')
	}
	return append(dst, '\n')
}

func join(path, seg string) string {
	if path == "" {
		return seg
	}
	return path + "." + seg
}
