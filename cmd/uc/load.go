package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/univcont/ir"
	"github.com/signadot/univcont/parse"

	"github.com/scott-cotton/cli"
)

// getFile decodes file, "-" meaning stdin.
func getFile(cfg *MainConfig, cc *cli.Context, file string) (*ir.Value, error) {
	var r io.Reader
	if file == "-" {
		r = cc.In
	} else {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", file, err)
	}
	v, err := parse.Parse(d, cfg.parseOpts(file)...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", file, err)
	}
	return v, nil
}

// eachFile calls fn on each decoded file of args, or on stdin when
// args is empty.
func eachFile(cfg *MainConfig, cc *cli.Context, args []string, fn func(string, *ir.Value) error) error {
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		v, err := getFile(cfg, cc, file)
		if err != nil {
			return err
		}
		if err := fn(file, v); err != nil {
			return err
		}
	}
	return nil
}
