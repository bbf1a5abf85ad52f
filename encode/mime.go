package encode

import (
	"github.com/signadot/univcont/format"
	"github.com/signadot/univcont/ir"
)

// EncodeMIME encodes v in the format named by a MIME type.
func EncodeMIME(v *ir.Value, mimeType string, opts ...EncodeOption) ([]byte, error) {
	f, err := format.FromMIMEType(mimeType)
	if err != nil {
		return nil, ir.Errorf(ir.ErrUnknownMIMEType, nil, "%q", mimeType)
	}
	return encodeBytes(v, append(opts, EncodeFormat(f))...)
}
