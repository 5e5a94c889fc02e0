package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/yyjjl/simple-lispy/dialect"
	"github.com/yyjjl/simple-lispy/encode"
	"github.com/yyjjl/simple-lispy/ir"
	"github.com/yyjjl/simple-lispy/token"
)

type parseTest struct {
	in string
}

func TestParseRoundTrip(t *testing.T) {
	pts := []parseTest{
		{in: `foo`},
		{in: `1.0e10`},
		{in: `(foo bar)`},
		{in: `(foo  bar)`},
		{in: `()`},
		{in: `( )`},
		{in: `(a (b (c)))`},
		{in: `[a {b c} d]`},
		{in: `"hello \"there\""`},
		{in: `'(1 2 3)`},
		{in: `#'fn`},
		{in: "`(a ,b ,@c)"},
		{in: `?a`},
		{in: `?\C-\M-x`},
		{in: `#<buffer foo.el>`},
		{in: "(foo ; trailing\n bar)"},
		{in: ";; leading\n(foo)"},
		{in: "(defun foo (a b)\n  \"doc\"\n  (+ a b))"},
		{in: "(let ((x 1)\n      (y 2))\n  (* x y))\n"},
		{in: "  (leading gap)"},
		{in: "(a)\n\n(b)\n"},
		{in: `(quote . ')`},
	}
	for _, pt := range pts {
		node, err := ParseString(pt.in)
		if err != nil {
			t.Errorf("# doc\n%s\n# error %v", pt.in, err)
			continue
		}
		if out := encode.MustString(node); out != pt.in {
			t.Errorf("# doc\n%s\n# round trip\n%s", pt.in, out)
		}
	}
}

func TestParseRoundTripDialects(t *testing.T) {
	pts := []struct {
		d  dialect.Dialect
		in string
	}{
		{d: dialect.Scheme, in: `(define (f x) (if #t x #\a))`},
		{d: dialect.Scheme, in: `(display #\newline)`},
		{d: dialect.Clojure, in: `(defn f [x] {:a 1 :b 2})`},
		{d: dialect.Clojure, in: `(f @ref ~@xs #_(dead code))`},
		{d: dialect.Clojure, in: `[\a \newline]`},
	}
	for _, pt := range pts {
		node, err := ParseString(pt.in, ParseDialect(dialect.New(pt.d)))
		if err != nil {
			t.Errorf("# doc\n%s\n# error %v", pt.in, err)
			continue
		}
		if out := encode.MustString(node); out != pt.in {
			t.Errorf("# doc\n%s\n# round trip\n%s", pt.in, out)
		}
	}
}

func TestBadParse(t *testing.T) {
	for _, in := range []string{`(foo`, `foo)`, `(a]`, `"abc`, `(a (b)`} {
		if _, err := ParseString(in); !errors.Is(err, ir.ErrParse) {
			t.Errorf("# doc\n%s\n# got %v, want ErrParse", in, err)
		}
	}
}

func TestParseUnbalanced(t *testing.T) {
	_, err := ParseString(`(a]`)
	if !errors.Is(err, token.ErrUnbalanced) {
		t.Errorf("got %v, want ErrUnbalanced", err)
	}
}

func TestParseTree(t *testing.T) {
	node, err := ParseString(`(foo (bar) "s" ; c
 baz)`)
	if err != nil {
		t.Fatal(err)
	}
	exprs := node.Exprs()
	if len(exprs) != 1 {
		t.Fatalf("want 1 top-level form, got %d", len(exprs))
	}
	list := exprs[0]
	if list.Head() != "foo" {
		t.Errorf("head = %q", list.Head())
	}
	kids := list.Exprs()
	if len(kids) != 4 {
		t.Fatalf("want 4 expressions, got %d", len(kids))
	}
	if kids[1].Type != ir.ListType || kids[2].Type != ir.StringType {
		t.Errorf("kid types %s %s", kids[1].Type, kids[2].Type)
	}
	if kids[2].Text != "s" {
		t.Errorf("string body %q", kids[2].Text)
	}
}

func TestParseSpansNested(t *testing.T) {
	in := `(foo (bar baz))`
	spans := map[*ir.Node]token.Span{}
	node, err := Parse([]byte(in), ParseSpans(spans))
	if err != nil {
		t.Fatal(err)
	}
	outer := node.Exprs()[0]
	inner := outer.Exprs()[1]
	osp, isp := spans[outer], spans[inner]
	if osp.Start != 0 || osp.End != len(in) {
		t.Errorf("outer span %s", osp)
	}
	if want := strings.Index(in, "(bar"); isp.Start != want {
		t.Errorf("inner start %d, want %d", isp.Start, want)
	}
	if !isp.Within(osp) {
		t.Errorf("inner %s not within outer %s", isp, osp)
	}
}

func TestParsePrefixAttachment(t *testing.T) {
	node, err := ParseString(`'(a b)`)
	if err != nil {
		t.Fatal(err)
	}
	q := node.Exprs()[0]
	if q.Type != ir.PrefixType || q.Prefix != "'" {
		t.Fatalf("got %s %q", q.Type, q.Prefix)
	}
	if len(q.Values) != 1 || q.Values[0].Type != ir.ListType {
		t.Fatalf("payload not a list")
	}
}
