package normalize

import (
	"strings"

	"github.com/yyjjl/simple-lispy/debug"
	"github.com/yyjjl/simple-lispy/dialect"
	"github.com/yyjjl/simple-lispy/encode"
	"github.com/yyjjl/simple-lispy/ir"
	"github.com/yyjjl/simple-lispy/parse"
	"github.com/yyjjl/simple-lispy/token"
)

// Normalize reflows text per the dialect's leading-symbol layout table.
// Forms that fit within the pretty width stay on one line; everything
// else gets one element per line past the head's same-line budget, with
// binding forms laid out one pair per line.
//
// A parse failure returns the original text along with the error. If the
// reflowed text does not parse back to the same meaning, the original
// text is returned untouched.
func Normalize(text string, opts ...NormOption) (string, error) {
	return normalizeCol(text, 0, opts...)
}

// NormalizeAt reflows only the innermost list containing pos, splicing
// the result back into text. With no containing list the whole text is
// normalized.
func NormalizeAt(text string, pos int, opts ...NormOption) (string, error) {
	no := newNormOpts(opts)
	spans := map[*ir.Node]token.Span{}
	root, err := parse.Parse([]byte(text), parse.ParseDialect(no.cfg), parse.ParseSpans(spans))
	if err != nil {
		return text, err
	}
	var best *ir.Node
	var bestSpan token.Span
	root.Visit(func(n *ir.Node, isPost bool) (bool, error) {
		if isPost || n == root || n.Type != ir.ListType {
			return true, nil
		}
		sp, ok := spans[n]
		if !ok || !sp.Contains(pos) {
			return false, nil
		}
		best, bestSpan = n, sp
		return true, nil
	})
	if best == nil {
		return Normalize(text, opts...)
	}
	lineStart := strings.LastIndexByte(text[:bestSpan.Start], '\n') + 1
	col := bestSpan.Start - lineStart
	out, err := normalizeCol(text[bestSpan.Start:bestSpan.End], col, opts...)
	if err != nil {
		return text, err
	}
	return text[:bestSpan.Start] + out + text[bestSpan.End:], nil
}

func normalizeCol(text string, col int, opts ...NormOption) (string, error) {
	no := newNormOpts(opts)
	root, err := parse.ParseString(text, parse.ParseDialect(no.cfg))
	if err != nil {
		return text, err
	}
	want := root.Clone()
	if no.oneline {
		onelineRoot(root)
	} else {
		reflowRoot(root, no.cfg, col)
	}
	out := encode.MustString(root)
	got, err := parse.ParseString(out, parse.ParseDialect(no.cfg))
	if err != nil || !sameMeaning(want, got, no.oneline) {
		if debug.Normalize() {
			debug.Logf("normalize: round-trip mismatch, keeping input %q\n", text)
		}
		return text, nil
	}
	return out, nil
}

// sameMeaning is the round-trip guard: the reflowed tree must carry the
// same expressions, and in one-line mode the same comments in the same
// order, as the original.
func sameMeaning(want, got *ir.Node, oneline bool) bool {
	if !oneline {
		return ir.Equal(want, got)
	}
	return ir.Equal(stripComments(want.Clone()), stripComments(got.Clone())) &&
		strings.Join(commentTexts(want), "\x00") == strings.Join(commentTexts(got), "\x00")
}

func reflowRoot(root *ir.Node, cfg *dialect.Config, col int) {
	trimRootNewlines(root)
	r := &reflower{cfg: cfg}
	atLineStart := true
	first := true
	for _, v := range root.Values {
		if v.Type == ir.NewlineType {
			atLineStart = true
			continue
		}
		c := 0
		switch {
		case first:
			c = col + len(v.Gap)
		case atLineStart:
			c = len(v.Gap)
		}
		r.node(v, c)
		atLineStart = false
		first = false
	}
}

func trimRootNewlines(root *ir.Node) {
	vs := root.Values
	for len(vs) > 0 && vs[0].Type == ir.NewlineType {
		vs = vs[1:]
	}
	for len(vs) > 0 && vs[len(vs)-1].Type == ir.NewlineType {
		vs = vs[:len(vs)-1]
	}
	root.Values = vs
	root.Text = ""
	root.Renumber()
}

type reflower struct {
	cfg *dialect.Config
}

// node lays out n starting at column col, the column of n's first byte.
func (r *reflower) node(n *ir.Node, col int) {
	switch n.Type {
	case ir.PrefixType:
		c := col + len(n.Prefix)
		for _, v := range n.Values {
			v.Gap = ""
			r.node(v, c)
		}
	case ir.ListType:
		r.list(n, col)
	}
}

func (r *reflower) list(n *ir.Node, col int) {
	if containsType(n, ir.RawType) {
		// unreadable syntax is too risky to move
		return
	}
	if !containsType(n, ir.CommentType) && col+width(n) <= r.cfg.PrettyWidth {
		flatten(n)
		return
	}
	r.spread(n, col)
}

// spread puts rule.SameLine elements on the head's line and every later
// element on its own line.
func (r *reflower) spread(n *ir.Node, col int) {
	var head *ir.Node
	if es := n.Exprs(); len(es) > 0 {
		head = es[0]
	}
	var rule dialect.LayoutRule
	hasRule := false
	same := 0
	indent := col + 1
	binding := false
	if head != nil && head.Type == ir.AtomType {
		rule, hasRule = r.cfg.Layout[head.Text]
		if hasRule {
			same = rule.SameLine
			indent = col + 2
		} else {
			same = 1
			indent = col + 1 + width(head) + 1
		}
		binding = r.cfg.BindingForms[head.Text]
	}

	vals := make([]*ir.Node, 0, len(n.Values))
	cur := col + 1
	exprIdx := 0
	sawNL, pendingNL := false, false
	for _, v := range n.Values {
		if v.Type == ir.NewlineType {
			sawNL = true
			continue
		}
		if v.Type == ir.CommentType {
			if len(vals) == 0 {
				v.Gap = ""
			} else if sawNL || pendingNL {
				vals = append(vals, ir.Newline())
				v.Gap = spaces(indent)
			} else {
				v.Gap = " "
			}
			vals = append(vals, v)
			pendingNL = true
			sawNL = false
			continue
		}
		start := cur
		switch {
		case len(vals) == 0:
			v.Gap = ""
		case exprIdx <= same && !pendingNL:
			v.Gap = " "
			cur++
			start = cur
		default:
			vals = append(vals, ir.Newline())
			v.Gap = spaces(indent)
			cur = indent
			start = cur
			pendingNL = false
		}
		w := width(v)
		cur = start + w
		if v == head && !hasRule && head.Type == ir.AtomType {
			indent = start + w + 1
		}
		skip := hasRule && rule.NoRecurse && exprIdx >= 1 && exprIdx <= same
		if !skip {
			if binding && exprIdx == 1 && v.Type == ir.ListType {
				r.bindings(v, start)
			} else {
				r.node(v, start)
			}
		}
		vals = append(vals, v)
		exprIdx++
		sawNL = false
	}
	if len(vals) > 0 && vals[len(vals)-1].Type == ir.CommentType {
		vals = append(vals, ir.Newline())
		n.Text = spaces(col)
	} else {
		n.Text = ""
	}
	n.Values = vals
	n.Renumber()
}

// bindings lays out a let-style binding list one pair per line.
func (r *reflower) bindings(b *ir.Node, col int) {
	vals := make([]*ir.Node, 0, len(b.Values))
	sawNL := false
	for _, v := range b.Values {
		if v.Type == ir.NewlineType {
			sawNL = true
			continue
		}
		if v.Type == ir.CommentType && !sawNL && len(vals) > 0 {
			v.Gap = " "
			vals = append(vals, v)
			continue
		}
		if len(vals) == 0 {
			v.Gap = ""
		} else {
			vals = append(vals, ir.Newline())
			v.Gap = spaces(col + 1)
		}
		if v.IsExpr() {
			r.node(v, col+1)
		}
		vals = append(vals, v)
		sawNL = false
	}
	if len(vals) > 0 && vals[len(vals)-1].Type == ir.CommentType {
		vals = append(vals, ir.Newline())
		b.Text = spaces(col)
	} else {
		b.Text = ""
	}
	b.Values = vals
	b.Renumber()
}

// flatten collapses n onto one line with single spaces. Callers must
// ensure n holds no comments.
func flatten(n *ir.Node) {
	switch n.Type {
	case ir.PrefixType:
		for _, v := range n.Values {
			v.Gap = ""
			flatten(v)
		}
	case ir.ListType:
		vals := make([]*ir.Node, 0, len(n.Values))
		for _, v := range n.Values {
			if v.Type == ir.NewlineType {
				continue
			}
			if len(vals) == 0 {
				v.Gap = ""
			} else {
				v.Gap = " "
			}
			flatten(v)
			vals = append(vals, v)
		}
		n.Values = vals
		n.Text = ""
		n.Renumber()
	}
}

// width is the single-line width of n, gaps normalized to one space.
func width(n *ir.Node) int {
	switch n.Type {
	case ir.AtomType, ir.CharType, ir.RawType, ir.CommentType:
		return len(n.Text)
	case ir.StringType:
		return len(n.Text) + 2
	case ir.PrefixType:
		w := len(n.Prefix)
		for _, v := range n.Values {
			w += width(v)
		}
		return w
	case ir.ListType:
		w := 0
		if n.Delim != ir.DelimNone {
			w = 2
		}
		k := 0
		for _, v := range n.Values {
			if v.Type == ir.NewlineType {
				continue
			}
			if k > 0 {
				w++
			}
			w += width(v)
			k++
		}
		return w
	}
	return 0
}

func containsType(n *ir.Node, t ir.Type) bool {
	for _, v := range n.Values {
		if v.Type == t || containsType(v, t) {
			return true
		}
	}
	return false
}

func spaces(n int) string {
	if n < 0 {
		n = 0
	}
	return strings.Repeat(" ", n)
}
