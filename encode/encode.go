package encode

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/signadot/univcont/debug"
	"github.com/signadot/univcont/format"
	"github.com/signadot/univcont/ir"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	format format.Format
	order  binary.ByteOrder
	indent int

	Color func(ir.Type, ColorAttr, string) string
}

func Encode(v *ir.Value, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{order: binary.LittleEndian}
	for _, opt := range opts {
		opt(es)
	}
	if debug.Codec() {
		debug.Logf("encode %s as %s", v.Type(), es.format)
	}
	var (
		d   []byte
		err error
	)
	switch es.format {
	case format.BinaryFormat:
		d, err = encodeBinary(v, es)
	case format.INIFormat:
		d = appendText(nil, v, "", false, es)
	case format.FormFormat:
		d = appendText(nil, v, "", true, es)
		d = bytes.TrimSuffix(d, []byte{'&'})
	case format.JSONFormat:
		d, err = encodeJSON(v, es)
	case format.YAMLFormat:
		d, err = encodeYAML(v)
	default:
		return fmt.Errorf("%w: %s", format.ErrBadFormat, es.format)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

func encodeBytes(v *ir.Value, opts ...EncodeOption) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(v, buf, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Binary returns the binary encoding of v.
func Binary(v *ir.Value, opts ...EncodeOption) ([]byte, error) {
	return encodeBytes(v, append(opts, EncodeFormat(format.BinaryFormat))...)
}

// INI returns v as newline terminated path=value records.
func INI(v *ir.Value) (string, error) {
	d, err := encodeBytes(v, EncodeFormat(format.INIFormat))
	return string(d), err
}

// Form returns v as '&' separated, URL escaped path=value records.
func Form(v *ir.Value) (string, error) {
	d, err := encodeBytes(v, EncodeFormat(format.FormFormat))
	return string(d), err
}
