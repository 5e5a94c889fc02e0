package edit

import (
	"github.com/yyjjl/simple-lispy/dialect"
	"github.com/yyjjl/simple-lispy/ir"
)

// Raise replaces the immediately enclosing list with the expression at
// the cursor, or with the selected expressions when a selection is
// active. Repeating raises one level each time.
func Raise(text string, sel Sel, count int, cfg *dialect.Config) (*Result, error) {
	return repeat(text, sel, count, func(t string, s Sel) (*Result, error) {
		return raiseOnce(t, s, cfg)
	})
}

func raiseOnce(text string, sel Sel, cfg *dialect.Config) (*Result, error) {
	ed, err := newEditor(text, cfg)
	if err != nil {
		return nil, err
	}
	var lifted []*ir.Node
	if sel.Empty() {
		e := ed.exprAt(sel.Start)
		if e == nil {
			e = ed.exprStartingAfter(sel.Start)
		}
		if e == nil {
			return nil, refuse("raise", "no expression at cursor")
		}
		lifted = []*ir.Node{e}
	} else {
		lifted = ed.exprsIn(sel)
		if len(lifted) == 0 {
			return nil, refuse("raise", "no expression in selection")
		}
	}
	list := enclosingList(lifted[0])
	if list == nil {
		return nil, refuse("raise", "already at top level")
	}
	parent := list.Parent
	li := indexOf(parent, list)
	lifted[0].Gap = list.Gap
	out := make([]*ir.Node, 0, len(parent.Values)+len(lifted))
	out = append(out, parent.Values[:li]...)
	out = append(out, lifted...)
	out = append(out, parent.Values[li+1:]...)
	setValues(parent, out)
	return ed.finish(lifted[0], sideLeft, parent)
}

// exprStartingAfter picks the first expression whose span begins at or
// after pos, so raising just before an open delimiter works.
func (ed *editor) exprStartingAfter(pos int) *ir.Node {
	var best *ir.Node
	bestStart := -1
	ed.root.Visit(func(n *ir.Node, isPost bool) (bool, error) {
		if isPost || n == ed.root || !n.IsExpr() {
			return true, nil
		}
		sp, ok := ed.spans[n]
		if !ok || sp.Start < pos {
			return true, nil
		}
		if best == nil || sp.Start < bestStart {
			best, bestStart = n, sp.Start
		}
		return false, nil
	})
	return best
}

// exprsIn returns the top-most expressions wholly inside sel.
func (ed *editor) exprsIn(sel Sel) []*ir.Node {
	var out []*ir.Node
	ed.root.Visit(func(n *ir.Node, isPost bool) (bool, error) {
		if isPost || n == ed.root || !n.IsExpr() {
			return true, nil
		}
		sp, ok := ed.spans[n]
		if !ok {
			return true, nil
		}
		if sp.Start >= sel.Start && sp.End <= sel.End {
			out = append(out, n)
			return false, nil
		}
		return true, nil
	})
	return out
}
