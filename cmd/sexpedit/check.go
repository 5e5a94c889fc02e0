package main

import (
	"fmt"

	"github.com/yyjjl/simple-lispy/token"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	dcfg, err := cfg.config()
	if err != nil {
		return err
	}
	bad := false
	err = eachInput(cc, args, func(name, text string) error {
		d := []byte(text)
		unmatched, outcome := token.FindUnmatched(d, token.Span{Start: 0, End: len(d)}, dcfg)
		if outcome == token.ScanUnknown {
			bad = true
			if !cfg.Quiet {
				fmt.Fprintf(cc.Out, "%s: too large to scan (limit %d)\n",
					displayName(name), dcfg.SafeScanLimit)
			}
			return nil
		}
		if len(unmatched) == 0 {
			return nil
		}
		bad = true
		if cfg.Quiet {
			return nil
		}
		doc := token.NewPosDoc(d)
		for _, off := range unmatched {
			line, col := doc.LineCol(off)
			fmt.Fprintf(cc.Out, "%s:%d:%d: unmatched %q\n",
				displayName(name), line+1, col+1, string(d[off]))
		}
		return nil
	})
	if err != nil {
		return err
	}
	if bad {
		return cli.ExitCodeErr(1)
	}
	return nil
}
