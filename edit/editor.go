package edit

import (
	"github.com/yyjjl/simple-lispy/debug"
	"github.com/yyjjl/simple-lispy/dialect"
	"github.com/yyjjl/simple-lispy/encode"
	"github.com/yyjjl/simple-lispy/ir"
	"github.com/yyjjl/simple-lispy/normalize"
	"github.com/yyjjl/simple-lispy/parse"
	"github.com/yyjjl/simple-lispy/token"
)

type side int

const (
	sideLeft side = iota
	sideRight
)

// editor is the call-scoped state of one transform: the parsed tree and
// the node spans of the input text. Nothing survives the call.
type editor struct {
	text  string
	cfg   *dialect.Config
	root  *ir.Node
	spans map[*ir.Node]token.Span
}

func newEditor(text string, cfg *dialect.Config) (*editor, error) {
	if cfg == nil {
		cfg = dialect.New(dialect.Elisp)
	}
	spans := map[*ir.Node]token.Span{}
	root, err := parse.Parse([]byte(text), parse.ParseDialect(cfg), parse.ParseSpans(spans))
	if err != nil {
		return nil, err
	}
	return &editor{text: text, cfg: cfg, root: root, spans: spans}, nil
}

func reparse(text string, cfg *dialect.Config) (*ir.Node, map[*ir.Node]token.Span, error) {
	spans := map[*ir.Node]token.Span{}
	root, err := parse.Parse([]byte(text), parse.ParseDialect(cfg), parse.ParseSpans(spans))
	return root, spans, err
}

// listAt returns the innermost delimited list whose span contains pos.
func (ed *editor) listAt(pos int) *ir.Node {
	return ed.innermost(pos, func(n *ir.Node) bool {
		return n.Type == ir.ListType && n.Delim != ir.DelimNone
	})
}

// exprAt returns the innermost expression whose span contains pos.
func (ed *editor) exprAt(pos int) *ir.Node {
	return ed.innermost(pos, func(n *ir.Node) bool {
		return n != ed.root && n.IsExpr()
	})
}

func (ed *editor) innermost(pos int, want func(*ir.Node) bool) *ir.Node {
	var best *ir.Node
	ed.root.Visit(func(n *ir.Node, isPost bool) (bool, error) {
		if isPost || n == ed.root {
			return true, nil
		}
		sp, ok := ed.spans[n]
		if !ok || !sp.Contains(pos) {
			return false, nil
		}
		if want(n) {
			best = n
		}
		return true, nil
	})
	return best
}

// currentList resolves the list a delimiter-anchored transform operates
// on. A special position selects its list exactly; anywhere else drifts
// to the innermost enclosing list, entering at its open delimiter.
func (ed *editor) currentList(pos int) (*ir.Node, side) {
	switch token.Classify([]byte(ed.text), pos, ed.cfg) {
	case token.AtOpen:
		if l := ed.listAt(pos); l != nil {
			return l, sideLeft
		}
	case token.AtClose:
		if l := ed.listEndingAt(pos); l != nil {
			return l, sideRight
		}
	}
	l := ed.listAt(pos)
	if l == nil {
		return nil, sideLeft
	}
	// not on a special position: drift to the nearer end of the list
	if sp := ed.spans[l]; sp.End-pos < pos-sp.Start {
		return l, sideRight
	}
	return l, sideLeft
}

func (ed *editor) listEndingAt(pos int) *ir.Node {
	if pos == 0 {
		return nil
	}
	l := ed.listAt(pos - 1)
	for l != nil {
		if sp, ok := ed.spans[l]; ok && sp.End == pos {
			return l
		}
		l = enclosingList(l)
	}
	return nil
}

func enclosingList(n *ir.Node) *ir.Node {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type == ir.ListType && p.Delim != ir.DelimNone {
			return p
		}
	}
	return nil
}

// exprPath is n's position as indices among expression children, root
// down. Layout reflow never reorders expressions, so the path survives
// the normalize step.
func exprPath(n *ir.Node) []int {
	var path []int
	for n.Parent != nil {
		idx := -1
		for i, e := range n.Parent.Exprs() {
			if e == n {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil
		}
		path = append(path, 0)
		copy(path[1:], path)
		path[0] = idx
		n = n.Parent
	}
	return path
}

func atPath(root *ir.Node, path []int) *ir.Node {
	n := root
	for _, i := range path {
		es := n.Exprs()
		if i < 0 || i >= len(es) {
			return nil
		}
		n = es[i]
	}
	return n
}

// setValues replaces parent's children, fixing parent links and filling
// in missing separator gaps so adjacent atoms cannot fuse on encode.
func setValues(parent *ir.Node, vals []*ir.Node) {
	parent.Values = vals
	parent.Renumber()
	for i, v := range vals {
		if i == 0 {
			if parent.Type == ir.ListType && parent.Delim != ir.DelimNone {
				v.Gap = ""
			}
			continue
		}
		if v.Gap != "" || vals[i-1].Type == ir.NewlineType {
			continue
		}
		v.Gap = " "
	}
}

func indexOf(parent, child *ir.Node) int {
	for i, v := range parent.Values {
		if v == child {
			return i
		}
	}
	return -1
}

// finish encodes the mutated tree, re-normalizes the affected list, and
// places the cursor back on the side of anchor it started on.
func (ed *editor) finish(anchor *ir.Node, s side, normTarget *ir.Node) (*Result, error) {
	anchorPath := exprPath(anchor)
	out := encode.MustString(ed.root)
	if debug.Edit() {
		debug.Logf("edit: raw result %q\n", out)
	}
	if normTarget != nil && normTarget != ed.root {
		normPath := exprPath(normTarget)
		if root2, spans2, err := reparse(out, ed.cfg); err == nil {
			if n2 := atPath(root2, normPath); n2 != nil {
				if sp, ok := spans2[n2]; ok {
					if o2, err := normalize.NormalizeAt(out, sp.Start, normalize.NormDialect(ed.cfg)); err == nil {
						out = o2
					}
				}
			}
		}
	} else {
		if o2, err := normalize.Normalize(out, normalize.NormDialect(ed.cfg)); err == nil {
			out = o2
		}
	}
	pos := 0
	if root3, spans3, err := reparse(out, ed.cfg); err == nil {
		if n3 := atPath(root3, anchorPath); n3 != nil {
			if sp, ok := spans3[n3]; ok {
				if s == sideLeft {
					pos = sp.Start
				} else {
					pos = sp.End
				}
			}
		}
	}
	return &Result{Text: out, Sel: Caret(pos)}, nil
}

// repeat runs one step count times, stopping quietly at the first
// refusal after a success. Failure on the first step is reported.
func repeat(text string, sel Sel, count int, step func(string, Sel) (*Result, error)) (*Result, error) {
	if count < 1 {
		count = 1
	}
	res := &Result{Text: text, Sel: sel}
	for i := 0; i < count; i++ {
		next, err := step(res.Text, res.Sel)
		if err != nil {
			if i == 0 {
				return res, err
			}
			return res, nil
		}
		res = next
	}
	return res, nil
}
