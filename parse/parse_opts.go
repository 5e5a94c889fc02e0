package parse

import (
	"github.com/yyjjl/simple-lispy/dialect"
	"github.com/yyjjl/simple-lispy/ir"
	"github.com/yyjjl/simple-lispy/token"
)

type parseOpts struct {
	cfg       *dialect.Config
	positions map[*ir.Node]*token.Pos
	spans     map[*ir.Node]token.Span
}

func newParseOpts(opts []ParseOption) *parseOpts {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	if pOpts.cfg == nil {
		pOpts.cfg = dialect.New(dialect.Elisp)
	}
	return pOpts
}

type ParseOption func(*parseOpts)

func ParseDialect(cfg *dialect.Config) ParseOption {
	return func(o *parseOpts) { o.cfg = cfg }
}

// ParsePositions collects the source position of each node into m.
func ParsePositions(m map[*ir.Node]*token.Pos) ParseOption {
	return func(o *parseOpts) { o.positions = m }
}

// ParseSpans collects the full source span of each node into m, the basis
// for the boundary finder.
func ParseSpans(m map[*ir.Node]token.Span) ParseOption {
	return func(o *parseOpts) { o.spans = m }
}
