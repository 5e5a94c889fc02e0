package edit

import (
	"github.com/yyjjl/simple-lispy/dialect"
	"github.com/yyjjl/simple-lispy/ir"
)

// Slurp extends the list at the cursor to include the next sibling when
// the cursor sits at the close delimiter, or the previous sibling at the
// open delimiter. Comments travelling with the sibling move inside too.
func Slurp(text string, sel Sel, count int, cfg *dialect.Config) (*Result, error) {
	return repeat(text, sel, count, func(t string, s Sel) (*Result, error) {
		return slurpOnce(t, s, cfg)
	})
}

func slurpOnce(text string, sel Sel, cfg *dialect.Config) (*Result, error) {
	ed, err := newEditor(text, cfg)
	if err != nil {
		return nil, err
	}
	list, side := ed.currentList(sel.Start)
	if list == nil {
		return nil, refuse("slurp", "no list at cursor")
	}
	parent := list.Parent
	li := indexOf(parent, list)
	if side == sideRight {
		ni := nextExpr(parent, li)
		if ni < 0 {
			return nil, refuse("slurp", "nothing after the list to slurp")
		}
		// the sibling and anything between it and the list move inside
		moved := parent.Values[li+1 : ni+1]
		vals := append(list.Values, moved...)
		setValues(list, vals)
		setValues(parent, append(parent.Values[:li+1], parent.Values[ni+1:]...))
	} else {
		pi := prevExpr(parent, li)
		if pi < 0 {
			return nil, refuse("slurp", "nothing before the list to slurp")
		}
		moved := parent.Values[pi:li]
		list.Gap, moved[0].Gap = moved[0].Gap, ""
		vals := make([]*ir.Node, 0, len(moved)+len(list.Values))
		vals = append(vals, moved...)
		vals = append(vals, list.Values...)
		setValues(list, vals)
		setValues(parent, append(parent.Values[:pi], parent.Values[li:]...))
	}
	return ed.finish(list, side, list)
}

// nextExpr finds the first expression child after index i, or -1.
func nextExpr(parent *ir.Node, i int) int {
	for j := i + 1; j < len(parent.Values); j++ {
		if parent.Values[j].IsExpr() {
			return j
		}
	}
	return -1
}

// prevExpr finds the last expression child before index i, or -1.
func prevExpr(parent *ir.Node, i int) int {
	for j := i - 1; j >= 0; j-- {
		if parent.Values[j].IsExpr() {
			return j
		}
	}
	return -1
}
