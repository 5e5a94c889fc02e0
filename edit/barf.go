package edit

import (
	"github.com/yyjjl/simple-lispy/dialect"
	"github.com/yyjjl/simple-lispy/ir"
)

// Barf shrinks the list at the cursor, pushing its last child out past
// the close delimiter, or its first child out past the open delimiter.
// It refuses rather than leave an empty list behind.
func Barf(text string, sel Sel, count int, cfg *dialect.Config) (*Result, error) {
	return repeat(text, sel, count, func(t string, s Sel) (*Result, error) {
		return barfOnce(t, s, cfg)
	})
}

func barfOnce(text string, sel Sel, cfg *dialect.Config) (*Result, error) {
	ed, err := newEditor(text, cfg)
	if err != nil {
		return nil, err
	}
	list, side := ed.currentList(sel.Start)
	if list == nil {
		return nil, refuse("barf", "no list at cursor")
	}
	exprs := list.Exprs()
	if len(exprs) == 0 {
		return nil, refuse("barf", "list is empty")
	}
	if len(exprs) == 1 {
		return nil, refuse("barf", "would create an empty list")
	}
	parent := list.Parent
	li := indexOf(parent, list)
	if side == sideRight {
		ci := indexOf(list, exprs[len(exprs)-1])
		// trailing comments leave together with the child
		moved := list.Values[ci:]
		out := make([]*ir.Node, 0, len(parent.Values)+len(moved))
		out = append(out, parent.Values[:li+1]...)
		out = append(out, moved...)
		out = append(out, parent.Values[li+1:]...)
		setValues(list, trimEdgeLayout(list.Values[:ci]))
		moved[0].Gap = " "
		setValues(parent, out)
	} else {
		ci := indexOf(list, exprs[0])
		moved := list.Values[:ci+1]
		rest := trimEdgeLayout(list.Values[ci+1:])
		out := make([]*ir.Node, 0, len(parent.Values)+len(moved))
		out = append(out, parent.Values[:li]...)
		out = append(out, moved...)
		out = append(out, parent.Values[li:]...)
		moved[0].Gap, list.Gap = list.Gap, " "
		if len(rest) > 0 {
			rest[0].Gap = ""
		}
		setValues(list, rest)
		setValues(parent, out)
	}
	return ed.finish(list, side, list.Parent)
}

// trimEdgeLayout drops leading and trailing newline markers left over
// after children moved out.
func trimEdgeLayout(vals []*ir.Node) []*ir.Node {
	out := append([]*ir.Node{}, vals...)
	for len(out) > 0 && out[0].Type == ir.NewlineType {
		out = out[1:]
	}
	for len(out) > 0 && out[len(out)-1].Type == ir.NewlineType {
		out = out[:len(out)-1]
	}
	return out
}
