package main

import (
	"fmt"

	"github.com/signadot/univcont/ir"
	"github.com/signadot/univcont/schema"

	"github.com/scott-cotton/cli"
	"go.uber.org/multierr"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: check requires a contract file", cli.ErrUsage)
	}
	sv, err := getFile(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	contract, err := schema.New(sv)
	if err != nil {
		return fmt.Errorf("error building contract from %s: %w", args[0], err)
	}
	var violations error
	err = eachFile(cfg.MainConfig, cc, args[1:], func(file string, v *ir.Value) error {
		if err := contract.Check(v); err != nil {
			violations = multierr.Append(violations, fmt.Errorf("%s: %w", file, err))
		}
		return nil
	})
	if err != nil {
		return err
	}
	if violations == nil {
		return nil
	}
	if !cfg.Quiet {
		for _, err := range multierr.Errors(violations) {
			fmt.Fprintln(cc.Out, err)
		}
	}
	return cli.ExitCodeErr(1)
}
