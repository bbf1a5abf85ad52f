package encode

import (
	"strings"

	"github.com/signadot/univcont/format"
	"github.com/signadot/univcont/ir"
)

// MustString returns the ini rendering of v, or of the format given in
// opts, and panics on error.
func MustString(v *ir.Value, opts ...EncodeOption) string {
	d, err := encodeBytes(v, append([]EncodeOption{EncodeFormat(format.INIFormat)}, opts...)...)
	if err != nil {
		panic(err)
	}
	return strings.TrimSpace(string(d))
}
