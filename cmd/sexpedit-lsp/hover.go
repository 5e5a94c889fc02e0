package main

import (
	"context"
	"fmt"

	"github.com/yyjjl/simple-lispy/ir"
	"github.com/yyjjl/simple-lispy/token"

	"go.lsp.dev/protocol"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.root == nil {
		return nil, nil
	}
	off := doc.positionToOffset(params.Position)
	node := nodeAt(doc.root, doc.spans, off)
	if node == nil {
		return nil, nil
	}
	sp := doc.spans[node]
	text := fmt.Sprintf("**%s** `%s`\n\n%d bytes at offset %d",
		node.Type, node.Summary(), sp.Len(), sp.Start)
	if node.Type == ir.ListType {
		text += fmt.Sprintf(", %d expressions", len(node.Exprs()))
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: text,
		},
	}, nil
}

// nodeAt finds the innermost expression whose span contains off.
func nodeAt(root *ir.Node, spans map[*ir.Node]token.Span, off int) *ir.Node {
	var best *ir.Node
	root.Visit(func(n *ir.Node, isPost bool) (bool, error) {
		if isPost {
			return true, nil
		}
		sp, ok := spans[n]
		if !ok || !sp.Contains(off) {
			return false, nil
		}
		if n.IsExpr() {
			best = n
		}
		return true, nil
	})
	return best
}
