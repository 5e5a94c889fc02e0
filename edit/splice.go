package edit

import (
	"strings"

	"github.com/yyjjl/simple-lispy/dialect"
	"github.com/yyjjl/simple-lispy/ir"
)

// Splice removes the delimiter pair of the list at the cursor, leaving
// its children in place one level up. Splicing a binding form into an
// enclosing binding form merges the two binding lists, renaming the
// survivor to its sequential variant when a name is bound twice.
func Splice(text string, sel Sel, count int, cfg *dialect.Config) (*Result, error) {
	return repeat(text, sel, count, func(t string, s Sel) (*Result, error) {
		return spliceOnce(t, s, cfg)
	})
}

func spliceOnce(text string, sel Sel, cfg *dialect.Config) (*Result, error) {
	ed, err := newEditor(text, cfg)
	if err != nil {
		return nil, err
	}
	list, _ := ed.currentList(sel.Start)
	if list == nil {
		return nil, refuse("splice", "no list at cursor")
	}
	if outer := enclosingList(list); outer != nil &&
		ed.cfg.BindingForms[list.Head()] && ed.cfg.BindingForms[outer.Head()] {
		return ed.spliceLet(list, outer)
	}
	parent := list.Parent
	li := indexOf(parent, list)
	kids := trimEdgeLayout(list.Values)
	out := make([]*ir.Node, 0, len(parent.Values)+len(kids))
	out = append(out, parent.Values[:li]...)
	var anchor *ir.Node
	if len(kids) > 0 {
		kids[0].Gap = list.Gap
		anchor = kids[0]
		out = append(out, kids...)
	}
	out = append(out, parent.Values[li+1:]...)
	setValues(parent, out)
	if anchor == nil {
		if parent == ed.root {
			return &Result{Text: encodeRoot(ed), Sel: Caret(0)}, nil
		}
		anchor = parent
	}
	return ed.finish(anchor, sideLeft, parent)
}

// spliceLet dissolves an inner binding form into its enclosing one:
// binding pairs are appended to the outer binding list and the body
// replaces the inner form. Duplicate names turn the outer head into its
// starred, sequential variant.
func (ed *editor) spliceLet(inner, outer *ir.Node) (*Result, error) {
	innerBind := bindingList(inner)
	outerBind := bindingList(outer)
	if innerBind == nil || outerBind == nil {
		return nil, refuse("splice", "binding form without a binding list")
	}
	if !strings.HasSuffix(outer.Head(), "*") && hasDuplicateBinding(outerBind, innerBind) {
		head := outer.Exprs()[0]
		head.Text += "*"
	}
	merged := append([]*ir.Node{}, outerBind.Values...)
	for _, v := range trimEdgeLayout(innerBind.Values) {
		merged = append(merged, v)
	}
	setValues(outerBind, merged)

	// body of the inner form replaces it in the outer body
	parent := inner.Parent
	li := indexOf(parent, inner)
	body := trimEdgeLayout(bodyValues(inner))
	out := make([]*ir.Node, 0, len(parent.Values)+len(body))
	out = append(out, parent.Values[:li]...)
	anchor := parent
	if len(body) > 0 {
		body[0].Gap = inner.Gap
		anchor = body[0]
		out = append(out, body...)
	}
	out = append(out, parent.Values[li+1:]...)
	setValues(parent, out)
	return ed.finish(anchor, sideLeft, outer)
}

// bindingList is the list right after a binding form's head.
func bindingList(form *ir.Node) *ir.Node {
	es := form.Exprs()
	if len(es) < 2 || es[1].Type != ir.ListType {
		return nil
	}
	return es[1]
}

// bodyValues is everything after the binding list.
func bodyValues(form *ir.Node) []*ir.Node {
	bind := bindingList(form)
	bi := indexOf(form, bind)
	return form.Values[bi+1:]
}

func hasDuplicateBinding(a, b *ir.Node) bool {
	names := map[string]bool{}
	for _, v := range a.Exprs() {
		names[bindingName(v)] = true
	}
	for _, v := range b.Exprs() {
		if names[bindingName(v)] {
			return true
		}
	}
	return false
}

// bindingName handles both bare symbols and (name value) pairs.
func bindingName(v *ir.Node) string {
	switch v.Type {
	case ir.AtomType:
		return v.Text
	case ir.ListType:
		if es := v.Exprs(); len(es) > 0 && es[0].Type == ir.AtomType {
			return es[0].Text
		}
	}
	return ""
}

func encodeRoot(ed *editor) string {
	res, _ := ed.finish(ed.root, sideLeft, nil)
	return res.Text
}
