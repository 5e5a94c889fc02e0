package edit

import (
	"github.com/yyjjl/simple-lispy/dialect"
	"github.com/yyjjl/simple-lispy/ir"
)

// MoveUp swaps the expression at the cursor with its previous sibling.
// A non-empty selection moves its expressions as one unit.  It stops at
// the parent boundary.
func MoveUp(text string, sel Sel, count int, cfg *dialect.Config) (*Result, error) {
	return repeat(text, sel, count, func(t string, s Sel) (*Result, error) {
		return moveOnce(t, s, cfg, -1)
	})
}

// MoveDown swaps the expression at the cursor with its next sibling.
// A non-empty selection moves its expressions as one unit.
func MoveDown(text string, sel Sel, count int, cfg *dialect.Config) (*Result, error) {
	return repeat(text, sel, count, func(t string, s Sel) (*Result, error) {
		return moveOnce(t, s, cfg, 1)
	})
}

func moveOnce(text string, sel Sel, cfg *dialect.Config, dir int) (*Result, error) {
	ed, err := newEditor(text, cfg)
	if err != nil {
		return nil, err
	}
	var run []*ir.Node
	if sel.Empty() {
		e := ed.exprAt(sel.Start)
		if e == nil {
			return nil, refuse("move", "no expression at cursor")
		}
		run = []*ir.Node{e}
	} else {
		run = ed.exprsIn(sel)
		if len(run) == 0 {
			return nil, refuse("move", "no expression in selection")
		}
	}
	parent := run[0].Parent
	for _, e := range run[1:] {
		if e.Parent != parent {
			return nil, refuse("move", "selection crosses lists")
		}
	}
	first := indexOf(parent, run[0])
	last := indexOf(parent, run[len(run)-1])
	var oi int
	if dir < 0 {
		oi = prevExpr(parent, first)
	} else {
		oi = nextExpr(parent, last)
	}
	if oi < 0 {
		return nil, refuse("move", "no sibling to swap with")
	}
	seg := append([]*ir.Node(nil), parent.Values[first:last+1]...)
	out := make([]*ir.Node, 0, len(parent.Values))
	if dir < 0 {
		// the run moves before the previous sibling
		rest := append([]*ir.Node(nil), parent.Values[oi:first]...)
		out = append(out, parent.Values[:oi]...)
		out = append(out, seg...)
		out = append(out, rest...)
		out = append(out, parent.Values[last+1:]...)
		seg[0].Gap, rest[0].Gap = rest[0].Gap, seg[0].Gap
	} else {
		rest := append([]*ir.Node(nil), parent.Values[last+1:oi+1]...)
		out = append(out, parent.Values[:first]...)
		out = append(out, rest...)
		out = append(out, seg...)
		out = append(out, parent.Values[oi+1:]...)
		rest[0].Gap, seg[0].Gap = seg[0].Gap, rest[0].Gap
	}
	setValues(parent, out)
	return ed.finish(run[0], sideLeft, parent)
}
