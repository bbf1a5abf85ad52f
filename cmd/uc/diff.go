package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/univcont/encode"
	"github.com/signadot/univcont/ir"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := getFile(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	b, err := getFile(cfg.MainConfig, cc, args[1])
	if err != nil {
		return err
	}
	if cfg.Reverse {
		a, b = b, a
	}
	differs, err := diffValues(cc.Out, a, b, cfg.Color)
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// diffValues writes the ini records of a and b which differ, prefixed
// by '-' and '+'.
func diffValues(w io.Writer, a, b *ir.Value, colored bool) (bool, error) {
	if a.Equal(b) {
		return false, nil
	}
	from, err := encode.INI(a)
	if err != nil {
		return false, err
	}
	to, err := encode.INI(b)
	if err != nil {
		return false, err
	}
	dmp := diffpatch.New()
	c1, c2, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(c1, c2, false), lines)

	del, ins := fmt.Sprint, fmt.Sprint
	if colored {
		del = color.New(color.FgRed).Sprint
		ins = color.New(color.FgGreen).Sprint
	}
	for _, d := range diffs {
		var pre string
		var paint func(...any) string
		switch d.Type {
		case diffpatch.DiffDelete:
			pre, paint = "-", del
		case diffpatch.DiffInsert:
			pre, paint = "+", ins
		default:
			continue
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			if !strings.HasSuffix(line, "\n") {
				line += "\n"
			}
			if _, err := io.WriteString(w, paint(pre+line)); err != nil {
				return true, err
			}
		}
	}
	return true, nil
}
