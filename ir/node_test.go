package ir

import "testing"

func list(vals ...*Node) *Node {
	return List(DelimParen, vals...)
}

func TestEqualIgnoresLayout(t *testing.T) {
	a := list(Atom("foo"), Atom("bar"))
	b := list(Atom("foo"), Newline(), Atom("bar"))
	b.Values[2].Gap = "   "
	b.Text = "  "
	if !Equal(a, b) {
		t.Error("layout should not participate in equality")
	}
}

func TestEqualComments(t *testing.T) {
	a := list(Atom("foo"))
	b := list(Atom("foo"), Comment("; hm"))
	if Equal(a, b) {
		t.Error("comments must participate in equality")
	}
}

func TestEqualDelims(t *testing.T) {
	a := List(DelimParen, Atom("x"))
	b := List(DelimBracket, Atom("x"))
	if Equal(a, b) {
		t.Error("delimiter kind must participate in equality")
	}
}

func TestCloneDetached(t *testing.T) {
	a := list(Atom("foo"), list(Atom("bar")))
	c := a.Clone()
	c.Values[1].Values[0].Text = "mutated"
	if a.Values[1].Values[0].Text != "bar" {
		t.Error("clone shares children with original")
	}
	if !Equal(a.Clone(), a) {
		t.Error("clone not equal to original")
	}
}

func TestVisitOrder(t *testing.T) {
	tree := list(Atom("a"), list(Atom("b")), Atom("c"))
	var pre, post []string
	tree.Visit(func(n *Node, isPost bool) (bool, error) {
		if n.Type != AtomType {
			return true, nil
		}
		if isPost {
			post = append(post, n.Text)
		} else {
			pre = append(pre, n.Text)
		}
		return true, nil
	})
	want := "abc"
	got := ""
	for _, s := range pre {
		got += s
	}
	if got != want {
		t.Errorf("pre-order %q, want %q", got, want)
	}
	if len(post) != 3 {
		t.Errorf("post visits %d, want 3", len(post))
	}
}

func TestVisitSkip(t *testing.T) {
	tree := list(list(Atom("hidden")), Atom("seen"))
	var got []string
	tree.Visit(func(n *Node, isPost bool) (bool, error) {
		if isPost {
			return true, nil
		}
		if n.Type == AtomType {
			got = append(got, n.Text)
		}
		// skip nested lists entirely
		return n.Type != ListType || n == tree, nil
	})
	if len(got) != 1 || got[0] != "seen" {
		t.Errorf("got %v, want [seen]", got)
	}
}

func TestHeadAndExprs(t *testing.T) {
	tree := list(Atom("foo"), Newline(), Comment("; x"), Atom("bar"))
	if tree.Head() != "foo" {
		t.Errorf("head %q", tree.Head())
	}
	if es := tree.Exprs(); len(es) != 2 {
		t.Errorf("exprs %d, want 2", len(es))
	}
	if tree.Values[2].IsExpr() {
		t.Error("comment counted as expression")
	}
}
