package parse

import (
	"github.com/signadot/univcont/format"
	"github.com/signadot/univcont/ir"
)

// ParseMIME decodes d by its MIME type. Content of an unknown type is
// returned as a Map holding the type and the raw bytes, which reads as
// false.
func ParseMIME(mimeType string, d []byte, opts ...ParseOption) (*ir.Value, error) {
	f, err := format.FromMIMEType(mimeType)
	if err != nil {
		return ir.FromMap(map[string]*ir.Value{
			ir.BoolKey:  ir.FromBool(false),
			"mime-type": ir.FromString(mimeType),
			"contents":  ir.FromString(string(d)),
		}), nil
	}
	return Parse(d, append(opts, ParseFormat(f))...)
}
