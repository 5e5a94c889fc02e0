package edit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yyjjl/simple-lispy/dialect"
	"github.com/yyjjl/simple-lispy/parse"
	"github.com/yyjjl/simple-lispy/token"
)

func elisp() *dialect.Config {
	return dialect.New(dialect.Elisp)
}

// balanced verifies a transform result still parses.
func balanced(t *testing.T, text string) {
	t.Helper()
	_, err := parse.ParseString(text, parse.ParseDialect(elisp()))
	require.NoError(t, err, "result not well formed: %q", text)
}

func TestSlurpForward(t *testing.T) {
	in := `(foo (bar) baz)`
	// cursor just after (bar)'s close paren
	res, err := Slurp(in, Caret(10), 1, elisp())
	require.NoError(t, err)
	require.Equal(t, `(foo (bar baz))`, res.Text)
	require.Equal(t, 14, res.Sel.Start) // after the inner close
	balanced(t, res.Text)
}

func TestSlurpBackward(t *testing.T) {
	in := `(foo bar (baz))`
	res, err := Slurp(in, Caret(9), 1, elisp())
	require.NoError(t, err)
	require.Equal(t, `(foo (bar baz))`, res.Text)
	require.Equal(t, 5, res.Sel.Start) // at the inner open
	balanced(t, res.Text)
}

func TestSlurpDriftsToNearerEnd(t *testing.T) {
	in := `(foo (bar) baz)`
	// cursor on (bar)'s close paren is not a special position; the
	// close end of the inner list is nearer than its open
	res, err := Slurp(in, Caret(9), 1, elisp())
	require.NoError(t, err)
	require.Equal(t, `(foo (bar baz))`, res.Text)
	balanced(t, res.Text)
}

func TestSlurpNothing(t *testing.T) {
	in := `(foo (bar))`
	res, err := Slurp(in, Caret(10), 1, elisp())
	require.Error(t, err)
	require.True(t, IsRefused(err))
	require.Equal(t, in, res.Text)
}

func TestBarfUndoesSlurp(t *testing.T) {
	in := `(foo (bar) baz)`
	s, err := Slurp(in, Caret(10), 1, elisp())
	require.NoError(t, err)
	b, err := Barf(s.Text, s.Sel, 1, elisp())
	require.NoError(t, err)
	require.Equal(t, in, b.Text)
	require.Equal(t, 10, b.Sel.Start)
}

func TestBarfRefusesEmptying(t *testing.T) {
	in := `(foo (bar))`
	_, err := Barf(in, Caret(10), 1, elisp())
	require.True(t, IsRefused(err))
}

func TestRaiseExpr(t *testing.T) {
	in := `(foo (bar) baz)`
	res, err := Raise(in, Caret(strings.Index(in, "bar")), 1, elisp())
	require.NoError(t, err)
	require.Equal(t, `(foo bar baz)`, res.Text)
	balanced(t, res.Text)
}

func TestRaiseList(t *testing.T) {
	in := `(a (b c))`
	// cursor at the open paren of (b c): raise it over (a ...)
	res, err := Raise(in, Caret(3), 1, elisp())
	require.NoError(t, err)
	require.Equal(t, `(b c)`, res.Text)
}

func TestRaiseTopLevel(t *testing.T) {
	in := `foo`
	_, err := Raise(in, Caret(0), 1, elisp())
	require.True(t, IsRefused(err))
}

func TestConvolute(t *testing.T) {
	in := `(+ 1 (* 2 3 4))`
	res, err := Convolute(in, Caret(strings.Index(in, "3")), 1, elisp())
	require.NoError(t, err)
	require.Equal(t, `(* 2 (+ 1 3 4))`, res.Text)
	require.Equal(t, strings.Index(res.Text, "3"), res.Sel.Start)
	balanced(t, res.Text)
}

func TestConvoluteNeedsTwoLevels(t *testing.T) {
	in := `(foo bar)`
	_, err := Convolute(in, Caret(5), 1, elisp())
	require.True(t, IsRefused(err))
}

func TestSplice(t *testing.T) {
	in := `(foo (bar baz) qux)`
	res, err := Splice(in, Caret(5), 1, elisp())
	require.NoError(t, err)
	require.Equal(t, `(foo bar baz qux)`, res.Text)
	balanced(t, res.Text)
}

func TestSpliceLetMergesBindings(t *testing.T) {
	in := `(let ((a 1)) (let ((b 2)) (+ a b)))`
	res, err := Splice(in, Caret(strings.Index(in, "(let ((b")), 1, elisp())
	require.NoError(t, err)
	require.Equal(t, `(let ((a 1) (b 2)) (+ a b))`, res.Text)
	balanced(t, res.Text)
}

func TestSpliceLetRenamesOnShadow(t *testing.T) {
	in := `(let ((a 1)) (let ((a 2)) (+ a a)))`
	res, err := Splice(in, Caret(strings.Index(in, "(let ((a 2")), 1, elisp())
	require.NoError(t, err)
	require.Equal(t, `(let* ((a 1) (a 2)) (+ a a))`, res.Text)
	balanced(t, res.Text)
}

func TestJoinLists(t *testing.T) {
	in := `(foo) (bar)`
	res, err := Join(in, Caret(5), elisp())
	require.NoError(t, err)
	require.Equal(t, `(foo bar)`, res.Text)
	balanced(t, res.Text)
}

func TestJoinStrings(t *testing.T) {
	in := `"ab" "cd"`
	res, err := Join(in, Caret(4), elisp())
	require.NoError(t, err)
	require.Equal(t, `"abcd"`, res.Text)
}

func TestJoinRefusesComment(t *testing.T) {
	in := "(foo) ; x\n(bar)"
	_, err := Join(in, Caret(5), elisp())
	require.True(t, IsRefused(err))
}

func TestSplitList(t *testing.T) {
	in := `(foo bar baz)`
	res, err := Split(in, Caret(strings.Index(in, "bar")), elisp())
	require.NoError(t, err)
	require.Equal(t, `(foo) (bar baz)`, res.Text)
	balanced(t, res.Text)
}

func TestSplitString(t *testing.T) {
	in := `(concat "ab cd")`
	res, err := Split(in, Caret(strings.Index(in, " cd")), elisp())
	require.NoError(t, err)
	require.Equal(t, `(concat "ab" " cd")`, res.Text)
	balanced(t, res.Text)
}

func TestMoveDown(t *testing.T) {
	in := `(a b c)`
	res, err := MoveDown(in, Caret(3), 1, elisp())
	require.NoError(t, err)
	require.Equal(t, `(a c b)`, res.Text)
	require.Equal(t, 5, res.Sel.Start) // follows b
}

func TestMoveDownSelection(t *testing.T) {
	in := `(a b c d)`
	// the selected run "a b" moves past c as one unit
	res, err := MoveDown(in, Sel{Start: 1, End: 4}, 1, elisp())
	require.NoError(t, err)
	require.Equal(t, `(c a b d)`, res.Text)
	balanced(t, res.Text)
}

func TestMoveUpSelection(t *testing.T) {
	in := `(a b c d)`
	res, err := MoveUp(in, Sel{Start: 3, End: 6}, 1, elisp())
	require.NoError(t, err)
	require.Equal(t, `(b c a d)`, res.Text)
	balanced(t, res.Text)
}

func TestMoveUpStopsAtBoundary(t *testing.T) {
	in := `(a b c)`
	_, err := MoveUp(in, Caret(1), 1, elisp())
	require.True(t, IsRefused(err))
}

func TestTeleport(t *testing.T) {
	in := `((a) (b c))`
	res, err := Teleport(in, Caret(1), 5, elisp())
	require.NoError(t, err)
	require.Equal(t, `(((a) b c))`, res.Text)
	balanced(t, res.Text)
}

func TestTeleportRefusesIntoSelf(t *testing.T) {
	in := `((a (b)))`
	_, err := Teleport(in, Caret(1), 4, elisp())
	require.True(t, IsRefused(err))
}

func TestRepeatCount(t *testing.T) {
	in := `(a (b (c x)))`
	res, err := Raise(in, Caret(strings.Index(in, "x")), 2, elisp())
	require.NoError(t, err)
	require.Equal(t, `(a x)`, res.Text)
}

func TestBoundsOfThing(t *testing.T) {
	in := `(foo "bar" baz)`
	sp, ok := BoundsOfThing(in, strings.Index(in, "bar"), elisp())
	require.True(t, ok)
	require.Equal(t, token.Span{Start: 5, End: 10}, sp)

	sp, ok = BoundsOfThing(in, 0, elisp())
	require.True(t, ok)
	require.Equal(t, token.Span{Start: 0, End: len(in)}, sp)
}

func TestBoundsOfList(t *testing.T) {
	in := `(a (b) c)`
	sp, ok := BoundsOfList(in, 4, elisp())
	require.True(t, ok)
	require.Equal(t, token.Span{Start: 3, End: 6}, sp)

	_, ok = BoundsOfList(`foo`, 1, elisp())
	require.False(t, ok)
}

func TestBoundsOfComment(t *testing.T) {
	in := "x ;; hey\ny"
	sp, ok := BoundsOfComment(in, 4, elisp())
	require.True(t, ok)
	require.Equal(t, token.Span{Start: 2, End: 8}, sp)

	_, ok = BoundsOfComment(in, 0, elisp())
	require.False(t, ok)
}

func TestBoundsTotalOnBadInput(t *testing.T) {
	_, ok := BoundsOfThing(`(foo`, 1, elisp())
	require.False(t, ok)
}
