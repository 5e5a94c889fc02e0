package encode

import (
	"strings"
	"testing"

	"github.com/yyjjl/simple-lispy/ir"
)

func TestEncodeNodes(t *testing.T) {
	ets := []struct {
		node *ir.Node
		want string
	}{
		{node: ir.Atom("foo"), want: `foo`},
		{node: ir.String(`a \"b`), want: `"a \"b"`},
		{node: ir.Comment("; hm"), want: `; hm`},
		{node: ir.Newline(), want: "\n"},
		{
			node: ir.List(ir.DelimParen, ir.Atom("a"), withGap(ir.Atom("b"), " ")),
			want: `(a b)`,
		},
		{
			node: ir.List(ir.DelimBracket, ir.Atom("x")),
			want: `[x]`,
		},
		{
			node: prefix("'", ir.List(ir.DelimParen, ir.Atom("q"))),
			want: `'(q)`,
		},
	}
	for _, et := range ets {
		if got := MustString(et.node); got != et.want {
			t.Errorf("got %q, want %q", got, et.want)
		}
	}
}

func TestEncodeListPrefix(t *testing.T) {
	// a Clojure set carries its marker on the list itself
	l := ir.List(ir.DelimBrace, ir.Atom("a"), withGap(ir.Atom("b"), " "))
	l.Prefix = "#"
	if got := MustString(l); got != `#{a b}` {
		t.Errorf("got %q", got)
	}
}

func TestEncodeGapAndText(t *testing.T) {
	l := ir.List(ir.DelimParen, ir.Atom("a"))
	l.Gap = "  "
	l.Text = " "
	if got := MustString(l); got != `  (a )` {
		t.Errorf("got %q", got)
	}
}

func TestEncodeColors(t *testing.T) {
	l := ir.List(ir.DelimParen, ir.Atom("a"), withGap(ir.String("s"), " "))
	out := MustString(l, EncodeColors(NewColors()))
	if !strings.Contains(out, "a") || !strings.Contains(out, "s") {
		t.Errorf("colored output lost content: %q", out)
	}
}

func withGap(n *ir.Node, gap string) *ir.Node {
	n.Gap = gap
	return n
}

func prefix(p string, payload *ir.Node) *ir.Node {
	n := &ir.Node{Type: ir.PrefixType, Prefix: p}
	n.Append(payload)
	return n
}
