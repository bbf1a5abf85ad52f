package main

import (
	"bytes"
	"fmt"

	"github.com/signadot/univcont/encode"
	"github.com/signadot/univcont/ir"

	"github.com/scott-cotton/cli"
)

func conv(cfg *ConvConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Conv.Parse(cc, args)
	if err != nil {
		cfg.Conv.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return eachFile(cfg.MainConfig, cc, args, func(_ string, v *ir.Value) error {
		return output(cfg.MainConfig, cc, v)
	})
}

// output encodes v to cc.Out, newline terminating text.
func output(cfg *MainConfig, cc *cli.Context, v *ir.Value) error {
	opts := cfg.encOpts(cc.Out)
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(v, buf, opts...); err != nil {
		return fmt.Errorf("error encoding: %w", err)
	}
	d := buf.Bytes()
	if !encode.FormatFromOpts(opts...).IsBinary() && len(d) > 0 && d[len(d)-1] != '\n' {
		d = append(d, '\n')
	}
	_, err := cc.Out.Write(d)
	return err
}
