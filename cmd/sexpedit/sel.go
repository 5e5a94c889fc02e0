package main

import (
	"fmt"

	"github.com/yyjjl/simple-lispy/ir"
	"github.com/yyjjl/simple-lispy/parse"
	"github.com/yyjjl/simple-lispy/token"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/scott-cotton/cli"
)

const selUsage = `select expressions matching a predicate

The predicate is an expression over these variables:
  head   leading symbol of a list, "" otherwise
  type   node type name: atom, list, string, comment, char, raw, prefix
  depth  nesting depth, 0 for top level
  size   number of child expressions
  text   one-line rendering of the node

Matches print as offset ranges with the rendering, one per line.

Examples:
  sexpedit sel 'head == "defun"' init.el
  sexpedit sel -all 'type == "string" && len(text) > 40' init.el`

func sel(cfg *SelConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Sel.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 1 {
		return fmt.Errorf("%w: sel requires a predicate", cli.ErrUsage)
	}
	pred, args := args[0], args[1:]
	dcfg, err := cfg.config()
	if err != nil {
		return err
	}
	prg, err := expr.Compile(pred)
	if err != nil {
		return fmt.Errorf("%w: bad predicate: %w", cli.ErrUsage, err)
	}
	return eachInput(cc, args, func(name, text string) error {
		spans := map[*ir.Node]token.Span{}
		root, err := parse.ParseString(text, parse.ParseDialect(dcfg), parse.ParseSpans(spans))
		if err != nil {
			return fmt.Errorf("error parsing %s: %w", displayName(name), err)
		}
		return selNode(cc, cfg, prg, root, spans, 0)
	})
}

func selNode(cc *cli.Context, cfg *SelConfig, prg *vm.Program, n *ir.Node, spans map[*ir.Node]token.Span, depth int) error {
	for _, e := range n.Exprs() {
		match, err := evalPred(prg, e, depth)
		if err != nil {
			return err
		}
		if match {
			sp := spans[e]
			fmt.Fprintf(cc.Out, "%d:%d\t%s\n", sp.Start, sp.End, e.Summary())
		}
		if cfg.All {
			target := e
			if target.Type == ir.PrefixType && len(target.Values) == 1 {
				target = target.Values[0]
			}
			if target.Type == ir.ListType {
				if err := selNode(cc, cfg, prg, target, spans, depth+1); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func evalPred(prg *vm.Program, n *ir.Node, depth int) (bool, error) {
	env := map[string]any{
		"head":  n.Head(),
		"type":  n.Type.String(),
		"depth": depth,
		"size":  len(n.Exprs()),
		"text":  n.Summary(),
	}
	res, err := expr.Run(prg, env)
	if err != nil {
		return false, fmt.Errorf("predicate: %w", err)
	}
	b, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("predicate returned %T, want bool", res)
	}
	return b, nil
}
