package main

import (
	"fmt"
	"io"

	"github.com/yyjjl/simple-lispy/dialect"
	"github.com/yyjjl/simple-lispy/edit"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

const applyUsage = `apply a structural transform at -pos and print the result

Operations:
  slurp       pull the sibling next to the delimiter into the list
  barf        push the child next to the delimiter out of the list
  raise       replace the enclosing list with the expression at point
  convolute   swap the two enclosing lists around the cursor
  splice      remove the delimiters of the list at point
  join        join the two expressions around point
  split       split the list or string at point in two
  move-up     swap the expression at point with its previous sibling
  move-down   swap the expression at point with its next sibling
  teleport    move the expression at point into the list at -to

Slurp and barf act forward at a close delimiter and backward at an open
delimiter.  A transform that cannot apply leaves the text unchanged and
reports why.`

func apply(cfg *ApplyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Apply.Parse(cc, args)
	if err != nil {
		cfg.Apply.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 1 {
		return fmt.Errorf("%w: apply requires an operation name", cli.ErrUsage)
	}
	op, args := args[0], args[1:]
	dcfg, err := cfg.config()
	if err != nil {
		return err
	}
	text, name, err := readInput(cc, args)
	if err != nil {
		return err
	}
	sel := edit.Caret(cfg.Pos)
	if cfg.End > cfg.Pos {
		sel = edit.Sel{Start: cfg.Pos, End: cfg.End}
	}
	res, err := applyOp(op, text, sel, cfg, dcfg)
	if err != nil {
		if edit.IsRefused(err) {
			fmt.Fprintf(cc.Out, "%s\n", err)
			return cli.ExitCodeErr(1)
		}
		return err
	}
	if cfg.Diff {
		return writeDiff(cc.Out, text, res.Text, cfg.useColor(cc.Out))
	}
	if cfg.Write && name != "" {
		return writeBack(cc, name, res.Text)
	}
	if _, err := io.WriteString(cc.Out, res.Text); err != nil {
		return err
	}
	fmt.Fprintf(cc.Out, "\n-- cursor %d:%d\n", res.Sel.Start, res.Sel.End)
	return nil
}

func applyOp(op, text string, sel edit.Sel, cfg *ApplyConfig, dcfg *dialect.Config) (*edit.Result, error) {
	switch op {
	case "slurp":
		return edit.Slurp(text, sel, cfg.Count, dcfg)
	case "barf":
		return edit.Barf(text, sel, cfg.Count, dcfg)
	case "raise":
		return edit.Raise(text, sel, cfg.Count, dcfg)
	case "convolute":
		return edit.Convolute(text, sel, cfg.Count, dcfg)
	case "splice":
		return edit.Splice(text, sel, cfg.Count, dcfg)
	case "join":
		return edit.Join(text, sel, dcfg)
	case "split":
		return edit.Split(text, sel, dcfg)
	case "move-up":
		return edit.MoveUp(text, sel, cfg.Count, dcfg)
	case "move-down":
		return edit.MoveDown(text, sel, cfg.Count, dcfg)
	case "teleport":
		return edit.Teleport(text, sel, cfg.To, dcfg)
	}
	return nil, fmt.Errorf("%w: unknown operation %q", cli.ErrUsage, op)
}

func writeDiff(w io.Writer, from, to string, colorize bool) error {
	ins := func(s string) string { return "{+" + s + "+}" }
	del := func(s string) string { return "[-" + s + "-]" }
	if colorize {
		green := color.New(color.FgGreen).SprintFunc()
		red := color.New(color.FgRed, color.CrossedOut).SprintFunc()
		ins = func(s string) string { return green(s) }
		del = func(s string) string { return red(s) }
	}
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(from, to, true)
	for _, d := range diffs {
		var err error
		switch d.Type {
		case diffpatch.DiffInsert:
			_, err = io.WriteString(w, ins(d.Text))
		case diffpatch.DiffDelete:
			_, err = io.WriteString(w, del(d.Text))
		case diffpatch.DiffEqual:
			_, err = io.WriteString(w, d.Text)
		}
		if err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}
