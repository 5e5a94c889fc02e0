package main

import (
	"context"

	"github.com/yyjjl/simple-lispy/dialect"
	"github.com/yyjjl/simple-lispy/edit"

	"go.lsp.dev/protocol"
)

type transform struct {
	title string
	apply func(text string, sel edit.Sel, cfg *dialect.Config) (*edit.Result, error)
}

var transforms = []transform{
	{"Slurp into list", func(t string, s edit.Sel, c *dialect.Config) (*edit.Result, error) {
		return edit.Slurp(t, s, 1, c)
	}},
	{"Barf out of list", func(t string, s edit.Sel, c *dialect.Config) (*edit.Result, error) {
		return edit.Barf(t, s, 1, c)
	}},
	{"Raise expression", func(t string, s edit.Sel, c *dialect.Config) (*edit.Result, error) {
		return edit.Raise(t, s, 1, c)
	}},
	{"Splice list", func(t string, s edit.Sel, c *dialect.Config) (*edit.Result, error) {
		return edit.Splice(t, s, 1, c)
	}},
	{"Convolute lists", func(t string, s edit.Sel, c *dialect.Config) (*edit.Result, error) {
		return edit.Convolute(t, s, 1, c)
	}},
	{"Join expressions", edit.Join},
	{"Split at point", edit.Split},
}

func (s *Server) CodeAction(ctx context.Context, params *protocol.CodeActionParams) ([]protocol.CodeAction, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	sel := edit.Caret(doc.positionToOffset(params.Range.Start))
	if params.Range.Start != params.Range.End {
		sel.End = doc.positionToOffset(params.Range.End)
	}

	var actions []protocol.CodeAction
	for _, tr := range transforms {
		res, err := tr.apply(doc.content, sel, doc.cfg)
		if err != nil {
			// refusals just mean the transform does not apply here
			continue
		}
		if res.Text == doc.content {
			continue
		}
		te := wholeDocumentEdit(doc.content, res.Text)
		actions = append(actions, protocol.CodeAction{
			Title: tr.title,
			Kind:  protocol.RefactorRewrite,
			Edit: &protocol.WorkspaceEdit{
				Changes: map[protocol.DocumentURI][]protocol.TextEdit{
					params.TextDocument.URI: {te},
				},
			},
		})
	}
	return actions, nil
}
