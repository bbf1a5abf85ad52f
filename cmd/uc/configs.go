package main

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/signadot/univcont/encode"
	"github.com/signadot/univcont/format"
	"github.com/signadot/univcont/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color     bool `cli:"name=color desc='encode with color'"`
	BigEndian bool `cli:"name=be desc='binary i/o in big endian order'"`
	Native    bool `cli:"name=native desc='binary i/o in host byte order'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) byteOrder() binary.ByteOrder {
	switch {
	case cfg.Native:
		return binary.NativeEndian
	case cfg.BigEndian:
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// inFormat picks the format for reading file: -I, then the file
// suffix, then ini.
func (cfg *MainConfig) inFormat(file string) format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	if f, ok := format.FromSuffix(file); ok {
		return f
	}
	return format.INIFormat
}

func (cfg *MainConfig) parseOpts(file string) []parse.ParseOption {
	return []parse.ParseOption{
		parse.ParseFormat(cfg.inFormat(file)),
		parse.ByteOrder(cfg.byteOrder()),
	}
}

func (cfg *MainConfig) outFormat() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	if cfg.Out != "" && cfg.Out != "-" {
		if f, ok := format.FromSuffix(cfg.Out); ok {
			return f
		}
	}
	return format.INIFormat
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	f := cfg.outFormat()
	res := []encode.EncodeOption{
		encode.EncodeFormat(f),
		encode.ByteOrder(cfg.byteOrder()),
	}
	if !f.IsText() {
		return res
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	fd, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(fd.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ConvConfig struct {
	*MainConfig
	Conv *cli.Command
}

type GetConfig struct {
	*MainConfig
	Get *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q desc='only set the exit status'"`

	Check *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Patch *cli.Command
}

type EnvConfig struct {
	*MainConfig
	Env *cli.Command
}

type CallConfig struct {
	*MainConfig
	MIME string `cli:"name=mime desc='mime type of the request'"`

	Call *cli.Command
}
