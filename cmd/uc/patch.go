package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/signadot/univcont/encode"
	"github.com/signadot/univcont/format"
	"github.com/signadot/univcont/ir"
	"github.com/signadot/univcont/parse"

	"github.com/scott-cotton/cli"

	jsonpatch "github.com/evanphx/json-patch"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch requires 2 arguments, a json patch and a file to which to apply it", cli.ErrUsage)
	}
	p, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	target, err := getFile(cfg.MainConfig, cc, args[1])
	if err != nil {
		return err
	}
	res, err := applyPatch(target, p)
	if err != nil {
		return fmt.Errorf("error patching %s: %w", args[1], err)
	}
	return output(cfg.MainConfig, cc, res)
}

// applyPatch applies p to v through json. A p holding an array is an
// RFC 6902 patch, anything else a merge patch.
func applyPatch(v *ir.Value, p []byte) (*ir.Value, error) {
	doc, err := encode.EncodeMIME(v, format.JSONFormat.MIMEType())
	if err != nil {
		return nil, err
	}
	var out []byte
	if t := bytes.TrimSpace(p); len(t) > 0 && t[0] == '[' {
		ops, err := jsonpatch.DecodePatch(t)
		if err != nil {
			return nil, err
		}
		out, err = ops.Apply(doc)
		if err != nil {
			return nil, err
		}
	} else {
		out, err = jsonpatch.MergePatch(doc, p)
		if err != nil {
			return nil, err
		}
	}
	return parse.Parse(out, parse.ParseJSON())
}
