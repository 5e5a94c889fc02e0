package main

import (
	"fmt"

	"github.com/yyjjl/simple-lispy/encode"
	"github.com/yyjjl/simple-lispy/parse"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	dcfg, err := cfg.config()
	if err != nil {
		return err
	}
	opts := cfg.encOpts(cc.Out)
	return eachInput(cc, args, func(name, text string) error {
		node, err := parse.ParseString(text, parse.ParseDialect(dcfg))
		if err != nil {
			return fmt.Errorf("error parsing %s: %w", displayName(name), err)
		}
		if err := encode.Encode(node, cc.Out, opts...); err != nil {
			return fmt.Errorf("error encoding %s: %w", displayName(name), err)
		}
		return nil
	})
}
