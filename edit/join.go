package edit

import (
	"github.com/yyjjl/simple-lispy/dialect"
	"github.com/yyjjl/simple-lispy/ir"
)

// Join merges the two sibling expressions around the cursor into one:
// list with list, string with string. Anything but whitespace between
// them leaves the text unchanged.
func Join(text string, sel Sel, cfg *dialect.Config) (*Result, error) {
	ed, err := newEditor(text, cfg)
	if err != nil {
		return nil, err
	}
	pos := sel.Start
	a, b, parent := ed.around(pos)
	if a == nil || b == nil {
		return nil, refuse("join", "need an expression on each side")
	}
	if a.Type != b.Type || (a.Type == ir.ListType && a.Delim != b.Delim) {
		return nil, refuse("join", "cannot join %s with %s", a.Type, b.Type)
	}
	ai, bi := indexOf(parent, a), indexOf(parent, b)
	for _, v := range parent.Values[ai+1 : bi] {
		if v.Type != ir.NewlineType {
			return nil, refuse("join", "non-whitespace between the two")
		}
	}
	switch a.Type {
	case ir.StringType:
		a.Text += b.Text
	case ir.ListType:
		kids := trimEdgeLayout(b.Values)
		if len(kids) > 0 {
			kids[0].Gap = " "
		}
		merged := append(append([]*ir.Node{}, a.Values...), kids...)
		setValues(a, merged)
	default:
		return nil, refuse("join", "cannot join %s", a.Type)
	}
	setValues(parent, append(parent.Values[:ai+1], parent.Values[bi+1:]...))
	return ed.finish(a, sideRight, a)
}

// around finds the expression ending at or before pos and the one
// starting at or after it, sharing one parent.
func (ed *editor) around(pos int) (a, b, parent *ir.Node) {
	p := ed.listAt(pos)
	if p == nil {
		p = ed.root
	}
	for _, v := range p.Values {
		if !v.IsExpr() {
			continue
		}
		sp, ok := ed.spans[v]
		if !ok {
			continue
		}
		if sp.End <= pos {
			a = v
		}
		if sp.Start >= pos && b == nil {
			b = v
		}
	}
	return a, b, p
}
