package ir

import "strings"

// Node is one node of the lossless tree.  The printer reproduces the
// original text byte for byte from Gap, Text, Prefix and Delim, so none of
// these fields may be normalized during reading.
type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int

	// Gap is the run of horizontal whitespace that preceded this node in
	// source.  Newlines are their own nodes and never appear in Gap.
	Gap string

	// Text is the literal payload: atom/number spelling, string body,
	// comment text, char literal spelling, or raw span.  For ListType it
	// holds the whitespace between the last child and the closing
	// delimiter, so empty trailing runs survive the round trip.
	Text string

	// Prefix is the reader-macro marker for PrefixType nodes, and the
	// list prefix (e.g. "#" of a Clojure set) for ListType nodes.
	Prefix string

	// Delim is the delimiter kind of a ListType node.
	Delim Delim

	// Values are the children of ListType and PrefixType nodes, in
	// source order, including newline and comment markers.
	Values []*Node
}

func Atom(text string) *Node {
	return &Node{Type: AtomType, Text: text}
}

func String(body string) *Node {
	return &Node{Type: StringType, Text: body}
}

func Comment(text string) *Node {
	return &Node{Type: CommentType, Text: text}
}

func Newline() *Node {
	return &Node{Type: NewlineType}
}

func List(delim Delim, values ...*Node) *Node {
	res := &Node{Type: ListType, Delim: delim}
	for _, v := range values {
		res.Append(v)
	}
	return res
}

// Append adds child to the end of n's values, fixing parent links.
func (n *Node) Append(child *Node) {
	child.Parent = n
	child.ParentIndex = len(n.Values)
	n.Values = append(n.Values, child)
}

// Renumber restores ParentIndex on all children after splicing Values.
func (n *Node) Renumber() {
	for i, v := range n.Values {
		v.Parent = n
		v.ParentIndex = i
	}
}

func (n *Node) Clone() *Node {
	res := &Node{}
	return n.CloneTo(res)
}

func (n *Node) CloneTo(dst *Node) *Node {
	dst.Type = n.Type
	dst.Parent = n.Parent
	dst.ParentIndex = n.ParentIndex
	dst.Gap = n.Gap
	dst.Text = n.Text
	dst.Prefix = n.Prefix
	dst.Delim = n.Delim
	dst.Values = make([]*Node, len(n.Values))
	for i, v := range n.Values {
		c := &Node{}
		v.CloneTo(c)
		c.Parent = dst
		c.ParentIndex = i
		dst.Values[i] = c
	}
	return dst
}

// Visit walks the tree depth first, calling f before and after each node's
// children.  Returning dive=false from the pre call skips the children.
// Escape subtrees (anything not a list or prefix) have no children, so the
// "skip already-escaped subtrees" rule is structural here.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, v := range n.Values {
			if err := v.Visit(f); err != nil {
				return err
			}
		}
	}
	_, err = f(n, true)
	return err
}

func (n *Node) Root() *Node {
	res := n
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}

// IsExpr reports whether n is an expression rather than a layout or
// comment marker.
func (n *Node) IsExpr() bool {
	switch n.Type {
	case NewlineType, CommentType:
		return false
	}
	return true
}

// Exprs returns n's expression children, skipping layout markers and
// comments.
func (n *Node) Exprs() []*Node {
	res := make([]*Node, 0, len(n.Values))
	for _, v := range n.Values {
		if v.IsExpr() {
			res = append(res, v)
		}
	}
	return res
}

// Head returns the leading atom of a list, or "" if the first expression
// is not an atom.
func (n *Node) Head() string {
	if n.Type != ListType {
		return ""
	}
	exprs := n.Exprs()
	if len(exprs) == 0 || exprs[0].Type != AtomType {
		return ""
	}
	return exprs[0].Text
}

// Equal compares two trees ignoring layout: gaps and newline markers do
// not participate.  Comments do: a transform may move them but must not
// lose them.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Type != b.Type || a.Prefix != b.Prefix || a.Delim != b.Delim {
		return false
	}
	// for lists Text is layout whitespace, not payload
	if a.Type != ListType && a.Text != b.Text {
		return false
	}
	av, bv := withoutNewlines(a.Values), withoutNewlines(b.Values)
	if len(av) != len(bv) {
		return false
	}
	for i := range av {
		if !Equal(av[i], bv[i]) {
			return false
		}
	}
	return true
}

func withoutNewlines(vs []*Node) []*Node {
	res := make([]*Node, 0, len(vs))
	for _, v := range vs {
		if v.Type == NewlineType {
			continue
		}
		res = append(res, v)
	}
	return res
}

// Summary renders a short single-line description of n for debug output
// and selection predicates.
func (n *Node) Summary() string {
	switch n.Type {
	case AtomType:
		return n.Text
	case StringType:
		return "\"" + n.Text + "\""
	case CommentType:
		return n.Text
	case NewlineType:
		return "\\n"
	case CharType, RawType:
		return n.Text
	case PrefixType:
		if len(n.Values) == 1 {
			return n.Prefix + n.Values[0].Summary()
		}
		return n.Prefix
	case ListType:
		parts := make([]string, 0, len(n.Values))
		for _, v := range n.Exprs() {
			parts = append(parts, v.Summary())
		}
		return n.Prefix + string(n.Delim.Open()) + strings.Join(parts, " ") + string(n.Delim.Close())
	}
	return "<invalid>"
}
