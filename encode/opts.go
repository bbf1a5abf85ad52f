package encode

import (
	"encoding/binary"

	"github.com/signadot/univcont/format"
)

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

// ByteOrder sets the order of fixed width scalars in the binary
// format. binary.NativeEndian reproduces the legacy host layout.
func ByteOrder(o binary.ByteOrder) EncodeOption {
	return func(es *EncState) { es.order = o }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}

// EncodeIndent indents JSON output by n spaces per level.
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}
