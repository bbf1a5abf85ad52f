package token

import (
	"github.com/signadot/univcont/buffer"
	"github.com/signadot/univcont/ir"
)

// MaxSize is the largest value a size field holds.
const MaxSize = 1<<32 - 1

// sizeBytes returns the number of big endian bytes following the
// header for n >= 128.
func sizeBytes(n uint64) int {
	switch {
	case n < 255:
		return 1
	case n < 255*255-1:
		return 2
	case n < 255*255*255-1:
		return 3
	}
	return 4
}

// SizeLen returns the encoded length of the size field for n.
func SizeLen(n uint64) int {
	if n < 128 {
		return 1
	}
	return 1 + sizeBytes(n)
}

// AppendSize appends the size field for n to dst. Values below 128 are
// one byte. Larger values are a header byte 128+k followed by k big
// endian bytes.
func AppendSize(dst []byte, n uint64) ([]byte, error) {
	if n > MaxSize {
		return dst, ir.Errorf(ir.ErrSerialization, nil, "size %d exceeds %d", n, uint64(MaxSize))
	}
	if n < 128 {
		return append(dst, byte(n)), nil
	}
	k := sizeBytes(n)
	dst = append(dst, byte(128+k))
	for i := k - 1; i >= 0; i-- {
		dst = append(dst, byte(n>>(8*i)))
	}
	return dst, nil
}

// ReadSize reads a size field from src.
func ReadSize(src buffer.Source) (uint64, error) {
	off := src.Offset()
	h, err := src.NextByte()
	if err != nil {
		return 0, ir.Errorf(ir.ErrDeserialization, nil, "size field at offset %d: %v", off, err)
	}
	if h < 128 {
		return uint64(h), nil
	}
	k := int(h - 128)
	if k > 4 {
		return 0, ir.Errorf(ir.ErrDeserialization, nil, "size field at offset %d: %d bytes", off, k)
	}
	d, err := src.NextBytes(k)
	if err != nil {
		return 0, ir.Errorf(ir.ErrDeserialization, nil, "size field at offset %d: %v", off, err)
	}
	var n uint64
	for _, c := range d {
		n = n<<8 | uint64(c)
	}
	return n, nil
}
