package edit

import (
	"github.com/yyjjl/simple-lispy/dialect"
	"github.com/yyjjl/simple-lispy/ir"
)

// Convolute swaps the nesting order of the list at the cursor and its
// parent: the part of the inner list before the cursor comes to wrap
// what used to wrap it. With the cursor before 3 in
//
//	(+ 1 (* 2 3 4))
//
// the result is (* 2 (+ 1 3 4)).
func Convolute(text string, sel Sel, count int, cfg *dialect.Config) (*Result, error) {
	return repeat(text, sel, count, func(t string, s Sel) (*Result, error) {
		return convoluteOnce(t, s, cfg)
	})
}

func convoluteOnce(text string, sel Sel, cfg *dialect.Config) (*Result, error) {
	ed, err := newEditor(text, cfg)
	if err != nil {
		return nil, err
	}
	inner := ed.listAt(sel.Start)
	if inner == nil {
		return nil, refuse("convolute", "cursor is not inside a list")
	}
	outer := enclosingList(inner)
	if outer == nil {
		return nil, refuse("convolute", "need two enclosing lists")
	}
	cut := ed.cutIndex(inner, sel.Start)
	if cut == 0 {
		return nil, refuse("convolute", "nothing before cursor to hoist")
	}
	front := append([]*ir.Node{}, inner.Values[:cut]...)
	back := trimEdgeLayout(inner.Values[cut:])

	// the inner list dissolves: its tail stays where the list was
	pp := outer.Parent
	oi := indexOf(pp, outer)
	ii := indexOf(outer, inner)
	repl := make([]*ir.Node, 0, len(outer.Values)+len(back))
	repl = append(repl, outer.Values[:ii]...)
	if len(back) > 0 {
		back[0].Gap = inner.Gap
		repl = append(repl, back...)
		repl = append(repl, outer.Values[ii+1:]...)
	} else {
		repl = append(repl, trimEdgeLayout(outer.Values[ii+1:])...)
	}
	setValues(outer, repl)

	// the inner head wraps the outer list
	wrap := &ir.Node{Type: ir.ListType, Delim: inner.Delim, Gap: outer.Gap}
	front[0].Gap = ""
	outer.Gap = " "
	setValues(wrap, append(front, outer))
	pp.Values[oi] = wrap
	pp.Renumber()

	anchor := outer
	if len(back) > 0 {
		anchor = back[0]
	}
	return ed.finish(anchor, sideLeft, wrap)
}

// cutIndex counts the children of list that end at or before pos.
func (ed *editor) cutIndex(list *ir.Node, pos int) int {
	cut := 0
	for i, v := range list.Values {
		sp, ok := ed.spans[v]
		if !ok || sp.End > pos {
			break
		}
		cut = i + 1
	}
	return cut
}
