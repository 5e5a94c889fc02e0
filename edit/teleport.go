package edit

import (
	"github.com/yyjjl/simple-lispy/dialect"
	"github.com/yyjjl/simple-lispy/ir"
)

// Teleport relocates the expression at the cursor to just inside the
// list whose open delimiter sits at target. It refuses when the target
// lies inside the expression being moved.
func Teleport(text string, sel Sel, target int, cfg *dialect.Config) (*Result, error) {
	ed, err := newEditor(text, cfg)
	if err != nil {
		return nil, err
	}
	e := ed.exprAt(sel.Start)
	if e == nil {
		return nil, refuse("teleport", "no expression at cursor")
	}
	eSpan := ed.spans[e]
	if eSpan.Contains(target) {
		return nil, refuse("teleport", "target is inside the moved expression")
	}
	dest := ed.listAt(target)
	if dest == nil {
		return nil, refuse("teleport", "no list at target")
	}
	if within(dest, e) {
		return nil, refuse("teleport", "target is inside the moved expression")
	}
	parent := e.Parent
	ei := indexOf(parent, e)
	setValues(parent, append(parent.Values[:ei], parent.Values[ei+1:]...))
	e.Gap = ""
	kids := append([]*ir.Node{e}, dest.Values...)
	setValues(dest, kids)
	return ed.finish(e, sideLeft, dest)
}

// within reports whether n sits in sub's subtree.
func within(n, sub *ir.Node) bool {
	for ; n != nil; n = n.Parent {
		if n == sub {
			return true
		}
	}
	return false
}
