package normalize

import "github.com/yyjjl/simple-lispy/ir"

// onelineRoot collapses root onto a single line. Comments are hoisted
// ahead of the code they annotate, one per line, never dropped.
func onelineRoot(root *ir.Node) {
	comments := collectComments(root)
	stripComments(root)
	vals := make([]*ir.Node, 0, len(root.Values)+2*len(comments))
	for _, c := range comments {
		c.Gap = ""
		vals = append(vals, c, ir.Newline())
	}
	k := 0
	for _, v := range root.Values {
		if v.Type == ir.NewlineType {
			continue
		}
		if k == 0 {
			v.Gap = ""
		} else {
			v.Gap = " "
		}
		flatten(v)
		vals = append(vals, v)
		k++
	}
	root.Values = vals
	root.Text = ""
	root.Renumber()
}

// collectComments returns n's comments in document order without
// removing them.
func collectComments(n *ir.Node) []*ir.Node {
	var out []*ir.Node
	n.Visit(func(v *ir.Node, isPost bool) (bool, error) {
		if !isPost && v.Type == ir.CommentType {
			out = append(out, v)
		}
		return true, nil
	})
	return out
}

func commentTexts(n *ir.Node) []string {
	var out []string
	for _, c := range collectComments(n) {
		out = append(out, c.Text)
	}
	return out
}

// stripComments removes every comment node under n, in place.
func stripComments(n *ir.Node) *ir.Node {
	vals := n.Values[:0]
	for _, v := range n.Values {
		if v.Type == ir.CommentType {
			continue
		}
		stripComments(v)
		vals = append(vals, v)
	}
	n.Values = vals
	n.Renumber()
	return n
}
