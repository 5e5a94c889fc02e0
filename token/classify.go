package token

import (
	"io"

	"github.com/yyjjl/simple-lispy/dialect"
)

// Class is the lexical classification of a source position.
type Class int

const (
	Bare Class = iota
	AtOpen
	AtClose
	InString
	InComment
)

func (c Class) String() string {
	return map[Class]string{
		Bare:      "Bare",
		AtOpen:    "AtOpen",
		AtClose:   "AtClose",
		InString:  "InString",
		InComment: "InComment",
	}[c]
}

// Classify decides whether pos sits at a structural boundary or inside a
// string or comment.  It is a pure function: the lexical state is
// recomputed from the start of d, the known synchronization point.  An
// escaped quote inside a string does not close it, and a semicolon inside
// a string does not open a comment, because classification rides on the
// scanner rather than on single-character tests.
func Classify(d []byte, pos int, cfg *dialect.Config) Class {
	if pos < 0 || pos > len(d) {
		return Bare
	}
	s := NewScanner(d, cfg)
	var covering, prev *Token
	for {
		tok, err := s.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			// an unterminated string or raw form swallows the rest
			if pos > s.Offset() && d[s.Offset()] == '"' {
				return InString
			}
			break
		}
		if tok.Span.End > pos {
			covering = tok
			break
		}
		prev = tok
	}
	if covering != nil {
		switch covering.Type {
		case TString:
			if pos > covering.Span.Start {
				return InString
			}
		case TComment:
			if pos > covering.Span.Start {
				return InComment
			}
		}
	}
	if covering != nil && covering.Type == TOpen && covering.Span.Start == pos {
		return AtOpen
	}
	if prev != nil && prev.Type == TClose && prev.Span.End == pos {
		return AtClose
	}
	return Bare
}
