package edit

import (
	"github.com/yyjjl/simple-lispy/dialect"
	"github.com/yyjjl/simple-lispy/ir"
)

// Split breaks the expression at the cursor in two. Inside a string it
// inserts a closing and an opening quote; inside a list it duplicates
// the delimiter pair, children before the cursor staying in the first
// half. A comment right after the cursor goes with the second half.
func Split(text string, sel Sel, cfg *dialect.Config) (*Result, error) {
	ed, err := newEditor(text, cfg)
	if err != nil {
		return nil, err
	}
	pos := sel.Start
	if s := ed.innermost(pos, isString); s != nil {
		return ed.splitString(s, pos)
	}
	list := ed.listAt(pos)
	if list == nil {
		return nil, refuse("split", "cursor is not inside a list or string")
	}
	return ed.splitList(list, pos)
}

func (ed *editor) splitString(s *ir.Node, pos int) (*Result, error) {
	sp := ed.spans[s]
	k := pos - sp.Start - 1
	if k < 0 {
		k = 0
	}
	if k > len(s.Text) {
		k = len(s.Text)
	}
	// never cut an escape sequence in half
	for k > 0 && trailingBackslashes(s.Text[:k])%2 == 1 {
		k--
	}
	parent := s.Parent
	si := indexOf(parent, s)
	first := ir.String(s.Text[:k])
	second := ir.String(s.Text[k:])
	first.Gap = s.Gap
	second.Gap = " "
	out := make([]*ir.Node, 0, len(parent.Values)+1)
	out = append(out, parent.Values[:si]...)
	out = append(out, first, second)
	out = append(out, parent.Values[si+1:]...)
	setValues(parent, out)
	return ed.finish(second, sideLeft, parent)
}

func (ed *editor) splitList(list *ir.Node, pos int) (*Result, error) {
	cut := ed.cutIndex(list, pos)
	first := &ir.Node{Type: ir.ListType, Delim: list.Delim, Gap: list.Gap}
	second := &ir.Node{Type: ir.ListType, Delim: list.Delim, Gap: " "}
	setValues(first, trimEdgeLayout(list.Values[:cut]))
	rest := trimEdgeLayout(list.Values[cut:])
	if len(rest) > 0 {
		rest[0].Gap = ""
	}
	setValues(second, rest)
	parent := list.Parent
	li := indexOf(parent, list)
	out := make([]*ir.Node, 0, len(parent.Values)+1)
	out = append(out, parent.Values[:li]...)
	out = append(out, first, second)
	out = append(out, parent.Values[li+1:]...)
	setValues(parent, out)
	return ed.finish(second, sideLeft, parent)
}

func trailingBackslashes(s string) int {
	n := 0
	for i := len(s) - 1; i >= 0 && s[i] == '\\'; i-- {
		n++
	}
	return n
}
