package main

import (
	"context"
	"strings"
	"sync"

	"github.com/yyjjl/simple-lispy/dialect"
	"github.com/yyjjl/simple-lispy/ir"
	"github.com/yyjjl/simple-lispy/parse"
	"github.com/yyjjl/simple-lispy/token"

	"go.lsp.dev/protocol"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	uri      string
	content  string
	version  int32
	cfg      *dialect.Config
	root     *ir.Node
	spans    map[*ir.Node]token.Span
	pos      *token.PosDoc
	parseErr error
}

// dialectForURI picks the dialect from the file extension, defaulting to
// elisp.
func dialectForURI(uri string) *dialect.Config {
	d := dialect.Elisp
	switch {
	case strings.HasSuffix(uri, ".scm"), strings.HasSuffix(uri, ".ss"),
		strings.HasSuffix(uri, ".rkt"):
		d = dialect.Scheme
	case strings.HasSuffix(uri, ".clj"), strings.HasSuffix(uri, ".cljs"),
		strings.HasSuffix(uri, ".cljc"), strings.HasSuffix(uri, ".edn"):
		d = dialect.Clojure
	}
	return dialect.New(d)
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	cfg := dialectForURI(uri)
	spans := make(map[*ir.Node]token.Span)
	root, err := parse.ParseString(content,
		parse.ParseDialect(cfg), parse.ParseSpans(spans))
	ds.docs[uri] = &document{
		uri:      uri,
		content:  content,
		version:  version,
		cfg:      cfg,
		root:     root,
		spans:    spans,
		pos:      token.NewPosDoc([]byte(content)),
		parseErr: err,
	}
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil
	}
	content := doc.content
	for _, change := range params.ContentChanges {
		r := change.Range
		if r.Start.Line == 0 && r.Start.Character == 0 && r.End.Line == 0 && r.End.Character == 0 {
			content = change.Text
			continue
		}
		start := lineColToOffset(content, int(r.Start.Line), int(r.Start.Character))
		end := lineColToOffset(content, int(r.End.Line), int(r.End.Character))
		if start <= end && end <= len(content) {
			content = content[:start] + change.Text + content[end:]
		}
	}
	s.docs.put(string(params.TextDocument.URI), content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}

func lineColToOffset(content string, line, col int) int {
	currentLine := 0
	currentCol := 0
	for i := range content {
		if currentLine == line && currentCol == col {
			return i
		}
		if content[i] == '\n' {
			currentLine++
			currentCol = 0
		} else {
			currentCol++
		}
	}
	return len(content)
}

// offsetToPosition converts a byte offset into an LSP position using the
// document's newline index.
func (doc *document) offsetToPosition(off int) protocol.Position {
	line, col := doc.pos.LineCol(off)
	return protocol.Position{Line: uint32(line), Character: uint32(col)}
}

// positionToOffset converts an LSP position into a byte offset.
func (doc *document) positionToOffset(pos protocol.Position) int {
	return lineColToOffset(doc.content, int(pos.Line), int(pos.Character))
}
