package parse

import (
	"github.com/signadot/univcont/ir"
	"github.com/signadot/univcont/token"
)

// parseText decodes path=value records separated by newlines, or by
// '&' and URL escaped when escaped is set. A record without '=' is a
// bare value for the root.
func parseText(d []byte, escaped bool) (*ir.Value, error) {
	sep := byte('\n')
	if escaped {
		sep = '&'
	}
	root := ir.Null()
	for _, rec := range token.Records(string(d), sep) {
		key, val, ok := token.SplitPair(rec)
		if !ok {
			text := token.Chomp(rec)
			if text == "" {
				continue
			}
			if escaped {
				text = token.URLUnescape(text)
			}
			if err := root.StringInterpret(text); err != nil {
				return nil, err
			}
			continue
		}
		key, val = token.Chomp(key), token.Chomp(val)
		if escaped {
			key, val = token.URLUnescape(key), token.URLUnescape(val)
		}
		slot, err := root.At(key)
		if err != nil {
			return nil, err
		}
		slot.Release()
		if err := slot.StringInterpret(val); err != nil {
			return nil, err
		}
	}
	return root, nil
}
