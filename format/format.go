package format

import (
	"errors"
	"fmt"
	"mime"
	"path/filepath"
	"strings"
)

type Format int

const (
	BinaryFormat Format = iota
	INIFormat
	FormFormat
	JSONFormat
	YAMLFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"b":      BinaryFormat,
		"bin":    BinaryFormat,
		"binary": BinaryFormat,
		"i":      INIFormat,
		"ini":    INIFormat,
		"f":      FormFormat,
		"form":   FormFormat,
		"j":      JSONFormat,
		"json":   JSONFormat,
		"y":      YAMLFormat,
		"yaml":   YAMLFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case BinaryFormat:
		return []byte("binary"), nil
	case INIFormat:
		return []byte("ini"), nil
	case FormFormat:
		return []byte("form"), nil
	case JSONFormat:
		return []byte("json"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsBinary() bool { return f == BinaryFormat }
func (f Format) IsText() bool   { return f == INIFormat || f == FormFormat }

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case BinaryFormat:
		return ".uc"
	case INIFormat:
		return ".ini"
	case FormFormat:
		return ".form"
	case JSONFormat:
		return ".json"
	case YAMLFormat:
		return ".yaml"
	default:
		return ""
	}
}

// FromSuffix returns the format whose Suffix matches the extension of
// path.
func FromSuffix(path string) (Format, bool) {
	ext := filepath.Ext(path)
	if ext == ".yml" {
		return YAMLFormat, true
	}
	for _, f := range AllFormats() {
		if f.Suffix() == ext {
			return f, true
		}
	}
	return 0, false
}

// AllFormats returns all supported formats.
func AllFormats() []Format {
	return []Format{BinaryFormat, INIFormat, FormFormat, JSONFormat, YAMLFormat}
}

// MIMEType returns the media type used for f on the wire.
func (f Format) MIMEType() string {
	switch f {
	case BinaryFormat:
		return "application/octet-stream"
	case INIFormat:
		return "text/plain"
	case FormFormat:
		return "application/x-www-form-urlencoded"
	case JSONFormat:
		return "application/json"
	case YAMLFormat:
		return "application/yaml"
	default:
		return ""
	}
}

// FromMIMEType returns the format for a media type. Parameters such as
// charset are ignored.
func FromMIMEType(v string) (Format, error) {
	mt, _, err := mime.ParseMediaType(v)
	if err != nil {
		mt = strings.ToLower(strings.TrimSpace(v))
	}
	switch mt {
	case "application/yaml", "application/x-yaml", "text/yaml":
		return YAMLFormat, nil
	}
	for _, f := range AllFormats() {
		if f.MIMEType() == mt {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: mime type %q", ErrBadFormat, v)
}

// CanDecodeMIMEType reports whether FromMIMEType accepts v.
func CanDecodeMIMEType(v string) bool {
	_, err := FromMIMEType(v)
	return err == nil
}
