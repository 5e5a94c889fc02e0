package main

import (
	"context"

	"github.com/yyjjl/simple-lispy/token"

	"go.lsp.dev/protocol"
)

func (s *Server) publishDiagnostics(ctx context.Context, uri string) {
	doc := s.docs.get(uri)
	if doc == nil {
		return
	}
	diagnostics := validateDocument(doc)
	if s.conn != nil {
		s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         protocol.DocumentURI(uri),
			Diagnostics: diagnostics,
		})
	}
}

func validateDocument(doc *document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	d := []byte(doc.content)
	unmatched, outcome := token.FindUnmatched(d, token.Span{Start: 0, End: len(d)}, doc.cfg)
	if outcome == token.ScanKnown {
		for _, off := range unmatched {
			diagnostics = append(diagnostics, protocol.Diagnostic{
				Range: protocol.Range{
					Start: doc.offsetToPosition(off),
					End:   doc.offsetToPosition(off + 1),
				},
				Severity: protocol.DiagnosticSeverityError,
				Message:  "unmatched " + string(d[off]),
				Source:   lsName,
			})
		}
	}
	if doc.parseErr != nil && len(unmatched) == 0 {
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End:   protocol.Position{Line: 0, Character: 0},
			},
			Severity: protocol.DiagnosticSeverityError,
			Message:  doc.parseErr.Error(),
			Source:   lsName,
		})
	}
	return diagnostics
}
