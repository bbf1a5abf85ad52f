package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/signadot/univcont/ir"
	"github.com/signadot/univcont/web"

	"github.com/scott-cotton/cli"
)

func call(cfg *CallConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Call.Parse(cc, args)
	if err != nil {
		cfg.Call.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 || len(args) > 2 {
		return fmt.Errorf("%w: call requires a url and at most one file", cli.ErrUsage)
	}
	req := ir.NewMap()
	if len(args) == 2 {
		req, err = getFile(cfg.MainConfig, cc, args[1])
		if err != nil {
			return err
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	resp, err := web.Call(ctx, &http.Client{}, args[0], req, cfg.MIME)
	if err != nil {
		return err
	}
	return output(cfg.MainConfig, cc, resp)
}
