package token

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/yyjjl/simple-lispy/dialect"
)

type scanTest struct {
	in    string
	types []TokenType
}

func types(toks []Token) []TokenType {
	res := make([]TokenType, 0, len(toks))
	for _, t := range toks {
		res = append(res, t.Type)
	}
	return res
}

func TestScanElisp(t *testing.T) {
	cfg := dialect.New(dialect.Elisp)
	sts := []scanTest{
		{
			in:    `foo`,
			types: []TokenType{TAtom},
		},
		{
			in:    `(foo bar)`,
			types: []TokenType{TOpen, TAtom, TSpace, TAtom, TClose},
		},
		{
			in:    `[1 2]`,
			types: []TokenType{TOpen, TAtom, TSpace, TAtom, TClose},
		},
		{
			in:    `"a b"`,
			types: []TokenType{TString},
		},
		{
			in:    `"a \" b"`,
			types: []TokenType{TString},
		},
		{
			in:    "; a (comment\nx",
			types: []TokenType{TComment, TNewline, TAtom},
		},
		{
			in:    `'foo`,
			types: []TokenType{TPrefix, TAtom},
		},
		{
			in:    `#'foo`,
			types: []TokenType{TPrefix, TAtom},
		},
		{
			in:    "`(a ,b)",
			types: []TokenType{TPrefix, TOpen, TAtom, TSpace, TPrefix, TAtom, TClose},
		},
		{
			in:    `,@rest`,
			types: []TokenType{TPrefix, TAtom},
		},
		{
			in:    `?a`,
			types: []TokenType{TChar},
		},
		{
			in:    `?\C-x`,
			types: []TokenType{TChar},
		},
		{
			in:    `?\C-\M-a`,
			types: []TokenType{TChar},
		},
		{
			in:    `#<buffer foo.el>`,
			types: []TokenType{TRaw},
		},
		{
			in:    `1.0e10`,
			types: []TokenType{TAtom},
		},
		{
			// a quote with nothing to attach to scans as an atom
			in:    `(quote . ')`,
			types: []TokenType{TOpen, TAtom, TSpace, TAtom, TSpace, TAtom, TClose},
		},
	}
	for _, st := range sts {
		toks, err := Scan([]byte(st.in), cfg)
		if err != nil {
			t.Errorf("# doc\n%s\n# error %v", st.in, err)
			continue
		}
		if d := cmp.Diff(st.types, types(toks)); d != "" {
			t.Errorf("# doc\n%s\n# diff\n%s", st.in, d)
		}
	}
}

func TestScanDialectChars(t *testing.T) {
	sts := []struct {
		d     dialect.Dialect
		in    string
		types []TokenType
	}{
		{d: dialect.Scheme, in: `#\a`, types: []TokenType{TChar}},
		{d: dialect.Scheme, in: `#\newline`, types: []TokenType{TChar}},
		{d: dialect.Clojure, in: `\a`, types: []TokenType{TChar}},
		{d: dialect.Clojure, in: `\newline`, types: []TokenType{TChar}},
		{d: dialect.Clojure, in: `~@xs`, types: []TokenType{TPrefix, TAtom}},
		{d: dialect.Clojure, in: `#_(a b)`, types: []TokenType{TPrefix, TOpen, TAtom, TSpace, TAtom, TClose}},
		{d: dialect.Clojure, in: `{a 1}`, types: []TokenType{TOpen, TAtom, TSpace, TAtom, TClose}},
	}
	for _, st := range sts {
		toks, err := Scan([]byte(st.in), dialect.New(st.d))
		if err != nil {
			t.Errorf("# doc\n%s\n# error %v", st.in, err)
			continue
		}
		if d := cmp.Diff(st.types, types(toks)); d != "" {
			t.Errorf("# doc\n%s (%s)\n# diff\n%s", st.in, st.d, d)
		}
	}
}

func TestScanSpans(t *testing.T) {
	cfg := dialect.New(dialect.Elisp)
	in := `(a "bc")`
	toks, err := Scan([]byte(in), cfg)
	if err != nil {
		t.Fatal(err)
	}
	end := 0
	for _, tok := range toks {
		if tok.Span.Start != end {
			t.Errorf("token %s does not start at %d", tok.Info([]byte(in)), end)
		}
		end = tok.Span.End
	}
	if end != len(in) {
		t.Errorf("tokens end at %d, want %d", end, len(in))
	}
}

func TestScanUnterminated(t *testing.T) {
	cfg := dialect.New(dialect.Elisp)
	for _, in := range []string{`"abc`, `"a\"`, "#<buffer foo", "#<a\nb>"} {
		if _, err := Scan([]byte(in), cfg); !errors.Is(err, ErrUnterminated) {
			t.Errorf("# doc\n%s\n# got %v, want ErrUnterminated", in, err)
		}
	}
}
