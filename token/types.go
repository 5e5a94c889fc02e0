package token

import "fmt"

type TokenType int

const (
	TAtom TokenType = iota
	TOpen
	TClose
	TString
	TComment
	TNewline
	TSpace
	TPrefix
	TChar
	TRaw
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TAtom:    "TAtom",
		TOpen:    "TOpen",
		TClose:   "TClose",
		TString:  "TString",
		TComment: "TComment",
		TNewline: "TNewline",
		TSpace:   "TSpace",
		TPrefix:  "TPrefix",
		TChar:    "TChar",
		TRaw:     "TRaw",
	}[t]
}

// IsLayout reports whether the token carries no expression content.
func (t TokenType) IsLayout() bool {
	return t == TNewline || t == TSpace
}

type Token struct {
	Type TokenType
	Span Span
	Pos  *Pos
}

// Bytes slices the source to the token's span.
func (t *Token) Bytes(d []byte) []byte {
	return t.Span.Text(d)
}

func (t *Token) Info(d []byte) string {
	return fmt.Sprintf("%s %q %s", t.Type, t.Bytes(d), t.Pos)
}

type TokenizeErr struct {
	Err error
	Pos Pos
}

func (e *TokenizeErr) Unwrap() error {
	return e.Err
}

func NewTokenizeErr(err error, p *Pos) *TokenizeErr {
	return &TokenizeErr{Err: err, Pos: *p}
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}
