// Package parse provides the reader for Lisp-family source spans.
package parse

import (
	"fmt"

	"github.com/yyjjl/simple-lispy/ir"
	"github.com/yyjjl/simple-lispy/token"
)

// Parse reads a span of source text into a lossless tree.  The returned
// root is a synthetic DelimNone list holding the span's top-level forms
// together with their newline and comment markers.  Parse fails only on
// genuinely unbalanced input; it never silently truncates.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := newParseOpts(opts)
	p := &parser{d: d, opts: pOpts}
	var err error
	p.toks, err = token.Scan(d, pOpts.cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ir.ErrParse, err)
	}
	root := &ir.Node{Type: ir.ListType, Delim: ir.DelimNone}
	if err := p.parseInto(root, nil); err != nil {
		return nil, err
	}
	return root, nil
}

// ParseString is Parse on a string.
func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

type parser struct {
	d    []byte
	toks []token.Token
	i    int
	opts *parseOpts
}

func (p *parser) next() *token.Token {
	if p.i >= len(p.toks) {
		return nil
	}
	t := &p.toks[p.i]
	p.i++
	return t
}

func (p *parser) peek() *token.Token {
	if p.i >= len(p.toks) {
		return nil
	}
	return &p.toks[p.i]
}

// parseInto fills list with values until the matching close delimiter.
// open is nil for the top-level synthetic list.
func (p *parser) parseInto(list *ir.Node, open *token.Token) error {
	gap := ""
	takeGap := func() string {
		g := gap
		gap = ""
		return g
	}
	for {
		t := p.next()
		if t == nil {
			if open != nil {
				return fmt.Errorf("%w: %w: unterminated list %s",
					ir.ErrParse, token.ErrUnbalanced, open.Pos)
			}
			list.Text = takeGap()
			return nil
		}
		switch t.Type {
		case token.TSpace:
			gap += string(t.Bytes(p.d))
		case token.TClose:
			if open == nil {
				return fmt.Errorf("%w: %w: unopened %q %s",
					ir.ErrParse, token.ErrUnbalanced, t.Bytes(p.d), t.Pos)
			}
			if p.d[t.Span.Start] != list.Delim.Close() {
				return fmt.Errorf("%w: %w: mismatched %q for %q %s",
					ir.ErrParse, token.ErrUnbalanced, t.Bytes(p.d),
					string(list.Delim.Open()), t.Pos)
			}
			list.Text = takeGap()
			return nil
		default:
			node, err := p.parseOne(t)
			if err != nil {
				return err
			}
			node.Gap = takeGap()
			list.Append(node)
		}
	}
}

// parseOne turns the token at t into a node, consuming more tokens for
// lists and prefixes.
func (p *parser) parseOne(t *token.Token) (*ir.Node, error) {
	b := t.Bytes(p.d)
	switch t.Type {
	case token.TNewline:
		return p.track(ir.Newline(), t), nil
	case token.TComment:
		return p.track(ir.Comment(string(b)), t), nil
	case token.TString:
		return p.track(ir.String(string(b[1:len(b)-1])), t), nil
	case token.TAtom:
		return p.track(ir.Atom(string(b)), t), nil
	case token.TChar:
		return p.track(&ir.Node{Type: ir.CharType, Text: string(b)}, t), nil
	case token.TRaw:
		return p.track(&ir.Node{Type: ir.RawType, Text: string(b)}, t), nil
	case token.TOpen:
		list := &ir.Node{Type: ir.ListType, Delim: ir.DelimFor(p.d[t.Span.Start])}
		if err := p.parseInto(list, t); err != nil {
			return nil, err
		}
		return p.track(list, t), nil
	case token.TPrefix:
		nxt := p.peek()
		if nxt == nil || nxt.Type.IsLayout() || nxt.Type == token.TComment ||
			nxt.Type == token.TClose {
			// a marker with nothing to attach to reads as a bare atom
			return p.track(ir.Atom(string(b)), t), nil
		}
		payload, err := p.parseOne(p.next())
		if err != nil {
			return nil, err
		}
		node := &ir.Node{Type: ir.PrefixType, Prefix: string(b)}
		node.Append(payload)
		return p.track(node, t), nil
	default:
		return nil, fmt.Errorf("%w: unexpected token %s", ir.ErrParse, t.Info(p.d))
	}
}

func (p *parser) track(n *ir.Node, t *token.Token) *ir.Node {
	if p.opts.positions != nil {
		p.opts.positions[n] = t.Pos
	}
	if p.opts.spans != nil {
		p.opts.spans[n] = p.spanOf(n, t)
	}
	return n
}

// spanOf computes the full source span of n given its first token.  For
// lists and prefixes the scanner has already advanced past the children,
// so the previous token's end is the node's end.
func (p *parser) spanOf(n *ir.Node, t *token.Token) token.Span {
	switch n.Type {
	case ir.ListType:
		return token.Span{Start: t.Span.Start, End: p.toks[p.i-1].Span.End}
	case ir.PrefixType:
		return token.Span{Start: t.Span.Start, End: p.toks[p.i-1].Span.End}
	default:
		return t.Span
	}
}
