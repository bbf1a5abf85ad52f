package parse

import (
	"encoding/binary"

	"github.com/signadot/univcont/format"
)

type parseOpts struct {
	format format.Format
	order  binary.ByteOrder
	dirty  bool
}

type ParseOption func(*parseOpts)

func ParseINI() ParseOption {
	return ParseFormat(format.INIFormat)
}
func ParseForm() ParseOption {
	return ParseFormat(format.FormFormat)
}
func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}
func ParseYAML() ParseOption {
	return ParseFormat(format.YAMLFormat)
}
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}

// ByteOrder sets the order of fixed width scalars in binary input.
func ByteOrder(o binary.ByteOrder) ParseOption {
	return func(po *parseOpts) { po.order = o }
}

// KeepDirty leaves the decoded value marked dirty instead of clean.
func KeepDirty() ParseOption {
	return func(o *parseOpts) { o.dirty = true }
}
