package token

import (
	"encoding/binary"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode/utf32"
)

// WideEncoding returns the UTF-32 encoding used for wide strings in the
// byte order o, without a byte order mark.
func WideEncoding(o binary.ByteOrder) encoding.Encoding {
	if o == nil {
		o = binary.LittleEndian
	}
	var probe [4]byte
	o.PutUint32(probe[:], 1)
	if probe[0] == 1 {
		return utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM)
	}
	return utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM)
}
