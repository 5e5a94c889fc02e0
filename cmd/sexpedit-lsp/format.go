package main

import (
	"context"
	"strings"

	"github.com/yyjjl/simple-lispy/normalize"

	"go.lsp.dev/protocol"
)

func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	formatted, err := normalize.Normalize(doc.content, normalize.NormDialect(doc.cfg))
	if err != nil {
		return nil, nil
	}
	if formatted == doc.content {
		return []protocol.TextEdit{}, nil
	}
	return []protocol.TextEdit{wholeDocumentEdit(doc.content, formatted)}, nil
}

// wholeDocumentEdit replaces the full document in one edit.
func wholeDocumentEdit(content, newText string) protocol.TextEdit {
	lines := strings.Count(content, "\n")
	if len(content) > 0 && content[len(content)-1] != '\n' {
		lines++
	}
	return protocol.TextEdit{
		Range: protocol.Range{
			Start: protocol.Position{Line: 0, Character: 0},
			End:   protocol.Position{Line: uint32(lines), Character: 0},
		},
		NewText: newText,
	}
}
