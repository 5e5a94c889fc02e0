package token

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/yyjjl/simple-lispy/dialect"
)

func wholeSpan(in string) Span {
	return Span{Start: 0, End: len(in)}
}

func TestFindUnmatched(t *testing.T) {
	cfg := dialect.New(dialect.Elisp)
	fts := []struct {
		in   string
		want []int
	}{
		{in: `(a (b) c)`, want: nil},
		{in: `(foo `, want: []int{0}},
		{in: `foo)`, want: []int{3}},
		{in: `a) (b`, want: []int{1, 3}},
		{in: `(a ")" b)`, want: nil},           // strings ignored
		{in: "(a ;; )\n b)", want: nil},        // comments ignored
		{in: `"` + `)` + `"`, want: nil},       // close inside string
		// a close of the wrong kind orphans both delimiters
		{in: `(]`, want: []int{0, 1}},
		{in: `(a] b)`, want: []int{0, 2, 5}},
		{in: `([a])`, want: nil},
	}
	for _, ft := range fts {
		got, outcome := FindUnmatched([]byte(ft.in), wholeSpan(ft.in), cfg)
		if outcome != ScanKnown {
			t.Errorf("# doc\n%s\n# outcome %v, want ScanKnown", ft.in, outcome)
			continue
		}
		if d := cmp.Diff(ft.want, got); d != "" {
			t.Errorf("# doc\n%s\n# diff\n%s", ft.in, d)
		}
	}
}

func TestFindUnmatchedInsideStrings(t *testing.T) {
	cfg := dialect.New(dialect.Elisp)
	cfg.IgnoreStrings = false
	got, outcome := FindUnmatched([]byte(`"a)"`), Span{Start: 0, End: 4}, cfg)
	if outcome != ScanKnown {
		t.Fatalf("outcome %v", outcome)
	}
	if d := cmp.Diff([]int{2}, got); d != "" {
		t.Error(d)
	}
}

func TestFindUnmatchedSizeGuard(t *testing.T) {
	cfg := dialect.New(dialect.Elisp)
	cfg.SafeScanLimit = 4
	in := `((((((`
	got, outcome := FindUnmatched([]byte(in), wholeSpan(in), cfg)
	if outcome != ScanUnknown {
		t.Fatalf("outcome %v, want ScanUnknown", outcome)
	}
	if got != nil {
		t.Fatalf("got %v, want nil on unknown", got)
	}
}

func TestPartitionSafe(t *testing.T) {
	cfg := dialect.New(dialect.Elisp)
	// one stray open paren: the partition excludes only its byte, in
	// reverse order for sequential deletion
	in := `(foo `
	got := PartitionSafe([]byte(in), wholeSpan(in), cfg)
	want := []Span{{Start: 1, End: 5}}
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}
}

func TestPartitionSafeReverse(t *testing.T) {
	cfg := dialect.New(dialect.Elisp)
	in := `a) b) c`
	got := PartitionSafe([]byte(in), wholeSpan(in), cfg)
	want := []Span{
		{Start: 5, End: 7},
		{Start: 2, End: 4},
		{Start: 0, End: 1},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}
}

func TestPartitionSafeCommentCut(t *testing.T) {
	cfg := dialect.New(dialect.Elisp)
	in := "( ;; c\nx"
	got := PartitionSafe([]byte(in), wholeSpan(in), cfg)
	// region after the stray open splits at the comment's edges
	want := []Span{
		{Start: 6, End: 8},
		{Start: 2, End: 6},
		{Start: 1, End: 2},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}
}

func TestPartitionSafeBalancedWhole(t *testing.T) {
	cfg := dialect.New(dialect.Elisp)
	in := `(a b)`
	got := PartitionSafe([]byte(in), wholeSpan(in), cfg)
	want := []Span{wholeSpan(in)}
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}
}

func TestBalance(t *testing.T) {
	cfg := dialect.New(dialect.Elisp)
	bts := []struct {
		in, want string
	}{
		{in: `foo)`, want: `(foo)`},
		{in: `(foo`, want: `(foo)`},
		{in: `a)]`, want: `[(a)]`},
		{in: `[(a`, want: `[(a)]`},
		{in: `(a b)`, want: `(a b)`},
		{in: `")"`, want: `")"`},
		{in: ``, want: ``},
		// a kind mismatch is not repairable by edge insertion
		{in: `(]`, want: `(]`},
		{in: `([a) b]`, want: `([a) b]`},
	}
	for _, bt := range bts {
		if got := string(Balance([]byte(bt.in), cfg)); got != bt.want {
			t.Errorf("Balance(%q) = %q, want %q", bt.in, got, bt.want)
		}
	}
}
