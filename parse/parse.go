package parse

import (
	"encoding/binary"
	"fmt"

	"github.com/signadot/univcont/debug"
	"github.com/signadot/univcont/format"
	"github.com/signadot/univcont/ir"
)

// Parse decodes a complete value from d. The input format defaults to
// binary. The result is clean unless KeepDirty is given.
func Parse(d []byte, opts ...ParseOption) (*ir.Value, error) {
	pOpts := &parseOpts{order: binary.LittleEndian}
	for _, f := range opts {
		f(pOpts)
	}
	if debug.Codec() {
		debug.Logf("parse %d bytes as %s", len(d), pOpts.format)
	}
	var (
		res *ir.Value
		err error
	)
	switch pOpts.format {
	case format.BinaryFormat:
		res, err = parseBinary(d, pOpts)
	case format.INIFormat:
		res, err = parseText(d, false)
	case format.FormFormat:
		res, err = parseText(d, true)
	case format.JSONFormat:
		res, err = parseJSON(d)
	case format.YAMLFormat:
		res, err = parseYAML(d)
	default:
		return nil, fmt.Errorf("%w: %s", format.ErrBadFormat, pOpts.format)
	}
	if err != nil {
		return nil, err
	}
	if !pOpts.dirty {
		res.Clean()
	}
	return res, nil
}

func Binary(d []byte, opts ...ParseOption) (*ir.Value, error) {
	return Parse(d, append(opts, ParseFormat(format.BinaryFormat))...)
}

func INI(s string) (*ir.Value, error) {
	return Parse([]byte(s), ParseINI())
}

func Form(s string) (*ir.Value, error) {
	return Parse([]byte(s), ParseForm())
}
