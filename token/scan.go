package token

import (
	"bytes"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/yyjjl/simple-lispy/dialect"
)

// Scanner walks a byte span emitting one token per lexical form.  It is
// call-scoped: a fresh Scanner is made from the live text on every
// command.
type Scanner struct {
	d      []byte
	pos    int
	cfg    *dialect.Config
	posDoc *PosDoc
}

func NewScanner(d []byte, cfg *dialect.Config) *Scanner {
	return &Scanner{
		d:      d,
		cfg:    cfg,
		posDoc: NewPosDoc(d),
	}
}

// Offset returns the scanner's current position.
func (s *Scanner) Offset() int {
	return s.pos
}

// SetOffset repositions the scanner.  The offset must be a token boundary;
// repositioning into the middle of a string or comment yields garbage.
func (s *Scanner) SetOffset(off int) {
	s.pos = off
}

// Next returns the next token, or io.EOF at end of span.
func (s *Scanner) Next() (*Token, error) {
	if s.pos >= len(s.d) {
		return nil, io.EOF
	}
	tok, err := s.scanOne(s.pos)
	if err != nil {
		return nil, err
	}
	s.pos = tok.Span.End
	return tok, nil
}

func (s *Scanner) tok(t TokenType, start, end int) *Token {
	return &Token{
		Type: t,
		Span: Span{Start: start, End: end},
		Pos:  s.posDoc.Pos(start),
	}
}

func (s *Scanner) scanOne(pos int) (*Token, error) {
	d := s.d
	c := d[pos]

	if c == '\n' {
		return s.tok(TNewline, pos, pos+1), nil
	}

	switch c {
	case ' ', '\t', '\r', '\v', '\f':
		end := pos + 1
		for end < len(d) && isSpace(d[end]) {
			end++
		}
		return s.tok(TSpace, pos, end), nil

	case ';':
		end := pos
		for end < len(d) && d[end] != '\n' {
			end++
		}
		return s.tok(TComment, pos, end), nil

	case '"':
		end, err := scanString(d, pos)
		if err != nil {
			return nil, NewTokenizeErr(err, s.posDoc.Pos(pos))
		}
		return s.tok(TString, pos, end), nil
	}

	// printed-object syntax like #<buffer foo> is opaque
	if c == '#' && pos+1 < len(d) && d[pos+1] == '<' {
		end, err := scanAngle(d, pos)
		if err != nil {
			return nil, NewTokenizeErr(err, s.posDoc.Pos(pos))
		}
		return s.tok(TRaw, pos, end), nil
	}

	if cp := s.cfg.CharPrefix; cp != "" && hasAt(d, pos, cp) {
		if end, ok := s.scanChar(pos + len(cp)); ok {
			return s.tok(TChar, pos, end), nil
		}
	}

	for _, p := range s.cfg.Prefixes {
		if !hasAt(d, pos, p) {
			continue
		}
		nxt := pos + len(p)
		if nxt >= len(d) {
			break
		}
		if isSpace(d[nxt]) || d[nxt] == '\n' || s.cfg.IsClose(d[nxt]) {
			break
		}
		return s.tok(TPrefix, pos, nxt), nil
	}

	if s.cfg.IsOpen(c) {
		return s.tok(TOpen, pos, pos+1), nil
	}
	if s.cfg.IsClose(c) {
		return s.tok(TClose, pos, pos+1), nil
	}

	end := pos
	for end < len(d) {
		b := d[end]
		if isSpace(b) || b == '\n' || b == '"' || b == ';' ||
			s.cfg.IsOpen(b) || s.cfg.IsClose(b) {
			break
		}
		end++
	}
	if end == pos {
		// lone prefix character or similar; take it as a one-byte atom
		end++
	}
	return s.tok(TAtom, pos, end), nil
}

// scanChar consumes a character literal body starting just after the
// dialect's char prefix.  Returns ok=false when nothing readable follows.
func (s *Scanner) scanChar(i int) (int, bool) {
	d := s.d
	if i >= len(d) || d[i] == '\n' || isSpace(d[i]) {
		return 0, false
	}
	if s.cfg.Dialect.IsElisp() {
		// modifier chains like ?\C-\M-x
		for i+2 < len(d) && d[i] == '\\' && d[i+2] == '-' &&
			strings.IndexByte("CMSHsA", d[i+1]) >= 0 {
			i += 3
		}
		if i < len(d) && d[i] == '\\' {
			i++
		}
		if i >= len(d) {
			return 0, false
		}
		_, sz := utf8.DecodeRune(d[i:])
		return i + sz, true
	}
	r, sz := utf8.DecodeRune(d[i:])
	i += sz
	if isNameRune(r) {
		// named literals: newline, space, u03BB
		for i < len(d) {
			nr, nsz := utf8.DecodeRune(d[i:])
			if !isNameRune(nr) && !(nr >= '0' && nr <= '9') {
				break
			}
			i += nsz
		}
	}
	return i, true
}

func scanString(d []byte, pos int) (int, error) {
	i := pos + 1
	for i < len(d) {
		switch d[i] {
		case '\\':
			i += 2
		case '"':
			return i + 1, nil
		default:
			i++
		}
	}
	return 0, ErrUnterminated
}

func scanAngle(d []byte, pos int) (int, error) {
	depth := 0
	i := pos + 1
	for i < len(d) {
		switch d[i] {
		case '<':
			depth++
		case '>':
			depth--
			if depth == 0 {
				return i + 1, nil
			}
		case '\n':
			return 0, ErrUnterminated
		}
		i++
	}
	return 0, ErrUnterminated
}

func hasAt(d []byte, pos int, p string) bool {
	return bytes.HasPrefix(d[pos:], []byte(p))
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\v', '\f':
		return true
	}
	return false
}

func isNameRune(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r > 127
}

// Scan tokenizes the whole span.
func Scan(d []byte, cfg *dialect.Config) ([]Token, error) {
	s := NewScanner(d, cfg)
	var toks []Token
	for {
		tok, err := s.Next()
		if err == io.EOF {
			return toks, nil
		}
		if err != nil {
			return nil, err
		}
		toks = append(toks, *tok)
	}
}
