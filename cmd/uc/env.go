package main

import (
	"os"

	"github.com/signadot/univcont/web"

	"github.com/scott-cotton/cli"
)

func env(cfg *EnvConfig, cc *cli.Context, args []string) error {
	_, err := cfg.Env.Parse(cc, args)
	if err != nil {
		cfg.Env.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return output(cfg.MainConfig, cc, web.FromEnviron(os.Environ()))
}
