package normalize

import (
	"strings"
	"testing"

	"github.com/yyjjl/simple-lispy/dialect"
)

func elisp() NormOption {
	return NormDialect(dialect.New(dialect.Elisp))
}

func TestNormalizeFlattensShortForms(t *testing.T) {
	nts := []struct {
		in, want string
	}{
		{in: `(foo  bar)`, want: `(foo bar)`},
		{in: "(foo\n bar)", want: `(foo bar)`},
		{in: "(a (b\n c) d)", want: `(a (b c) d)`},
		{in: "(let ((x 1))\n  x)", want: `(let ((x 1)) x)`},
		{in: `( )`, want: `()`},
	}
	for _, nt := range nts {
		got, err := Normalize(nt.in, elisp())
		if err != nil {
			t.Errorf("# doc\n%s\n# error %v", nt.in, err)
			continue
		}
		if got != nt.want {
			t.Errorf("# doc\n%s\n# got\n%s\n# want\n%s", nt.in, got, nt.want)
		}
	}
}

func TestNormalizeKeepsCommentPlacement(t *testing.T) {
	in := "(defun foo (a b) ; add\n  (+ a b))"
	got, err := Normalize(in, elisp())
	if err != nil {
		t.Fatal(err)
	}
	if got != in {
		t.Errorf("# got\n%s\n# want\n%s", got, in)
	}
}

func TestNormalizeBindingPairsPerLine(t *testing.T) {
	in := `(let ((alpha 1) (beta 2)) (frobnicate alpha beta gamma delta epsilon zeta))`
	want := "(let ((alpha 1)\n" +
		"      (beta 2))\n" +
		"  (frobnicate alpha beta gamma delta epsilon zeta))"
	got, err := Normalize(in, elisp())
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("# got\n%s\n# want\n%s", got, want)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	ins := []string{
		`(foo  bar)`,
		`(let ((alpha 1) (beta 2)) (frobnicate alpha beta gamma delta epsilon zeta))`,
		"(defun foo (a b) ; add\n  (+ a b))",
		"(cond ((= x 1) (frob one thing)) ((= x 2) (frob another thing)) (t (give up entirely)))",
	}
	for _, in := range ins {
		once, err := Normalize(in, elisp())
		if err != nil {
			t.Fatalf("# doc\n%s\n# error %v", in, err)
		}
		twice, err := Normalize(once, elisp())
		if err != nil {
			t.Fatalf("# doc\n%s\n# error %v", once, err)
		}
		if once != twice {
			t.Errorf("# doc\n%s\n# once\n%s\n# twice\n%s", in, once, twice)
		}
	}
}

func TestNormalizeRiskySyntaxUntouched(t *testing.T) {
	in := `(foo #<buffer x>    bar)`
	got, err := Normalize(in, elisp())
	if err != nil {
		t.Fatal(err)
	}
	if got != in {
		t.Errorf("# got\n%s\n# want unchanged\n%s", got, in)
	}
}

func TestNormalizeBadInputReturnsOriginal(t *testing.T) {
	in := `(foo`
	got, err := Normalize(in, elisp())
	if err == nil {
		t.Fatal("want parse error")
	}
	if got != in {
		t.Errorf("text changed on error: %q", got)
	}
}

func TestNormalizeOneline(t *testing.T) {
	in := "(foo ; one\n  (bar) ; two\n  baz)"
	got, err := Normalize(in, elisp(), Oneline())
	if err != nil {
		t.Fatal(err)
	}
	want := "; one\n; two\n(foo (bar) baz)"
	if got != want {
		t.Errorf("# got\n%s\n# want\n%s", got, want)
	}
	if strings.Count(got, "\n") != 2 {
		t.Errorf("comments not hoisted: %q", got)
	}
}

func TestNormalizeAt(t *testing.T) {
	in := `(a (b    c))`
	got, err := NormalizeAt(in, strings.Index(in, "b"), elisp())
	if err != nil {
		t.Fatal(err)
	}
	if want := `(a (b c))`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestNormalizeAtOutside(t *testing.T) {
	in := `x  y`
	got, err := NormalizeAt(in, 0, elisp())
	if err != nil {
		t.Fatal(err)
	}
	if got != `x  y` {
		t.Errorf("got %q", got)
	}
}
