package main

import (
	"fmt"
	"os"

	"github.com/signadot/univcont/ir"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a dotted path", cli.ErrUsage)
	}
	path := args[0]
	missing := 0
	err = eachFile(cfg.MainConfig, cc, args[1:], func(file string, v *ir.Value) error {
		res := v
		if path != "" && path != "." {
			var ok bool
			res, ok = v.Lookup(path)
			if !ok {
				fmt.Fprintf(os.Stderr, "%s: no value at %q\n", file, path)
				missing++
				return nil
			}
		}
		return output(cfg.MainConfig, cc, res)
	})
	if err != nil {
		return err
	}
	if missing != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
