// Package buffer provides the byte sink and source used by the binary
// codec.
package buffer

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrShort is returned when fewer bytes remain than a read needs.
var ErrShort = errors.New("short buffer")

type Sink interface {
	AppendBytes(d []byte)
	AppendByte(c byte)
	AppendUint64(u uint64)
}

type Source interface {
	NextByte() (byte, error)
	NextUint64() (uint64, error)
	NextBytes(n int) ([]byte, error)
	AtEnd() bool
	Offset() int
}

// Buffer is a growable byte slice with a read cursor. Fixed width
// scalars are written and read in Order.
type Buffer struct {
	Order binary.ByteOrder

	data []byte
	off  int
}

// New returns a Buffer reading from data in little endian order.
func New(data []byte) *Buffer {
	return &Buffer{Order: binary.LittleEndian, data: data}
}

func (b *Buffer) order() binary.ByteOrder {
	if b.Order == nil {
		return binary.LittleEndian
	}
	return b.Order
}

func (b *Buffer) AppendBytes(d []byte) {
	b.data = append(b.data, d...)
}

func (b *Buffer) AppendByte(c byte) {
	b.data = append(b.data, c)
}

func (b *Buffer) AppendUint64(u uint64) {
	var tmp [8]byte
	b.order().PutUint64(tmp[:], u)
	b.data = append(b.data, tmp[:]...)
}

// AppendUint32 is used for wide string code units.
func (b *Buffer) AppendUint32(u uint32) {
	var tmp [4]byte
	b.order().PutUint32(tmp[:], u)
	b.data = append(b.data, tmp[:]...)
}

func (b *Buffer) NextByte() (byte, error) {
	if b.off >= len(b.data) {
		return 0, b.short(1)
	}
	c := b.data[b.off]
	b.off++
	return c, nil
}

func (b *Buffer) NextUint64() (uint64, error) {
	d, err := b.NextBytes(8)
	if err != nil {
		return 0, err
	}
	return b.order().Uint64(d), nil
}

// NextBytes returns the next n bytes. The result aliases the buffer.
func (b *Buffer) NextBytes(n int) ([]byte, error) {
	if n < 0 || len(b.data)-b.off < n {
		return nil, b.short(n)
	}
	d := b.data[b.off : b.off+n]
	b.off += n
	return d, nil
}

func (b *Buffer) AtEnd() bool {
	return b.off >= len(b.data)
}

// Offset is the position of the read cursor.
func (b *Buffer) Offset() int {
	return b.off
}

// Bytes returns the written content.
func (b *Buffer) Bytes() []byte {
	return b.data
}

func (b *Buffer) Len() int {
	return len(b.data) - b.off
}

func (b *Buffer) short(n int) error {
	return fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrShort, n, b.off, len(b.data)-b.off)
}
