package main

import (
	"github.com/yyjjl/simple-lispy/token"

	"github.com/scott-cotton/cli"
)

func balance(cfg *BalanceConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Balance.Parse(cc, args)
	if err != nil {
		return err
	}
	dcfg, err := cfg.config()
	if err != nil {
		return err
	}
	return eachInput(cc, args, func(_, text string) error {
		_, err := cc.Out.Write(token.Balance([]byte(text), dcfg))
		return err
	})
}
