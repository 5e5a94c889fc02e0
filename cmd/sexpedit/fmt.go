package main

import (
	"fmt"
	"io"

	"github.com/yyjjl/simple-lispy/normalize"

	"github.com/scott-cotton/cli"
)

func fmtRun(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		cfg.Fmt.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	dcfg, err := cfg.config()
	if err != nil {
		return err
	}
	nOpts := []normalize.NormOption{normalize.NormDialect(dcfg)}
	if cfg.Oneline {
		nOpts = append(nOpts, normalize.Oneline())
	}
	return eachInput(cc, args, func(name, text string) error {
		var (
			out string
			err error
		)
		if cfg.Pos >= 0 {
			out, err = normalize.NormalizeAt(text, cfg.Pos, nOpts...)
		} else {
			out, err = normalize.Normalize(text, nOpts...)
		}
		if err != nil {
			return fmt.Errorf("error formatting %s: %w", displayName(name), err)
		}
		if cfg.Write && name != "" {
			if out == text {
				return nil
			}
			return writeBack(cc, name, out)
		}
		_, err = io.WriteString(cc.Out, out)
		return err
	})
}

func displayName(name string) string {
	if name == "" {
		return "stdin"
	}
	return name
}
