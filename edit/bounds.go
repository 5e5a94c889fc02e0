package edit

import (
	"github.com/yyjjl/simple-lispy/dialect"
	"github.com/yyjjl/simple-lispy/ir"
	"github.com/yyjjl/simple-lispy/token"
)

// The bounds functions are total: absence of a containing structure is
// an ordinary false return, never an error. Unparseable text has no
// structure, so it too reports false.

// BoundsOfThing finds the span most natural to operate on at pos:
// a string whose edge or interior holds pos, then a list adjacent to
// pos, then a comment at pos, then the innermost expression at pos.
func BoundsOfThing(text string, pos int, cfg *dialect.Config) (token.Span, bool) {
	ed, err := newEditor(text, cfg)
	if err != nil {
		return token.Span{}, false
	}
	if s := ed.innermost(pos, isString); s != nil {
		return ed.spans[s], true
	}
	if s, ok := ed.stringAtEdge(pos); ok {
		return s, true
	}
	if l := ed.listAt(pos); l != nil {
		if sp := ed.spans[l]; sp.Start == pos || sp.End == pos+1 {
			return sp, true
		}
	}
	if l := ed.listEndingAt(pos); l != nil {
		return ed.spans[l], true
	}
	if c := ed.innermost(pos, func(n *ir.Node) bool { return n.Type == ir.CommentType }); c != nil {
		return ed.spans[c], true
	}
	if e := ed.exprAt(pos); e != nil {
		return ed.spans[e], true
	}
	return token.Span{}, false
}

// BoundsOfList is the span of the innermost list containing pos. Fails
// at top level.
func BoundsOfList(text string, pos int, cfg *dialect.Config) (token.Span, bool) {
	ed, err := newEditor(text, cfg)
	if err != nil {
		return token.Span{}, false
	}
	if l := ed.listAt(pos); l != nil {
		return ed.spans[l], true
	}
	return token.Span{}, false
}

// BoundsOfString is the span, quotes included, of the string containing
// pos or touching it at either edge.
func BoundsOfString(text string, pos int, cfg *dialect.Config) (token.Span, bool) {
	ed, err := newEditor(text, cfg)
	if err != nil {
		return token.Span{}, false
	}
	if s := ed.innermost(pos, isString); s != nil {
		return ed.spans[s], true
	}
	return ed.stringAtEdge(pos)
}

// BoundsOfComment is the span of the comment at pos.
func BoundsOfComment(text string, pos int, cfg *dialect.Config) (token.Span, bool) {
	ed, err := newEditor(text, cfg)
	if err != nil {
		return token.Span{}, false
	}
	if c := ed.innermost(pos, func(n *ir.Node) bool { return n.Type == ir.CommentType }); c != nil {
		return ed.spans[c], true
	}
	return token.Span{}, false
}

func isString(n *ir.Node) bool {
	return n.Type == ir.StringType
}

// stringAtEdge finds a string whose closing quote just precedes pos.
func (ed *editor) stringAtEdge(pos int) (token.Span, bool) {
	var found token.Span
	ok := false
	ed.root.Visit(func(n *ir.Node, isPost bool) (bool, error) {
		if isPost || n.Type != ir.StringType {
			return true, nil
		}
		if sp, have := ed.spans[n]; have && sp.End == pos {
			found, ok = sp, true
		}
		return true, nil
	})
	return found, ok
}
