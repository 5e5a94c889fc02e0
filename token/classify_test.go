package token

import (
	"strings"
	"testing"

	"github.com/yyjjl/simple-lispy/dialect"
)

func TestClassify(t *testing.T) {
	cfg := dialect.New(dialect.Elisp)
	in := "(a \"b\\\"c\" ;; d\ne)"
	// offsets: 0 ( 1 a 2 sp 3 " 4 b 5 \ 6 " 7 c 8 " 9 sp 10 ; ... 14 \n 15 e 16 )
	cts := []struct {
		pos  int
		want Class
	}{
		{pos: 0, want: AtOpen},
		{pos: 1, want: Bare},
		{pos: 3, want: Bare},
		{pos: 4, want: InString},
		{pos: 6, want: InString}, // escaped quote does not close
		{pos: 8, want: InString},
		{pos: 9, want: Bare},
		{pos: 11, want: InComment},
		{pos: 13, want: InComment},
		{pos: 14, want: Bare}, // on the newline, past the comment's end
		{pos: 15, want: Bare},
		{pos: 17, want: AtClose},
	}
	for _, ct := range cts {
		if got := Classify([]byte(in), ct.pos, cfg); got != ct.want {
			t.Errorf("Classify(%q, %d) = %s, want %s", in, ct.pos, got, ct.want)
		}
	}
}

func TestClassifyNested(t *testing.T) {
	cfg := dialect.New(dialect.Elisp)
	in := `(foo (bar))`
	if got := Classify([]byte(in), 5, cfg); got != AtOpen {
		t.Errorf("pos 5 = %s, want AtOpen", got)
	}
	if got := Classify([]byte(in), 10, cfg); got != AtClose {
		t.Errorf("pos 10 = %s, want AtClose", got)
	}
	if got := Classify([]byte(in), 11, cfg); got != AtClose {
		t.Errorf("pos 11 = %s, want AtClose", got)
	}
}

func TestClassifyUnterminatedString(t *testing.T) {
	cfg := dialect.New(dialect.Elisp)
	in := `(a "bc`
	if got := Classify([]byte(in), strings.Index(in, "b")+1, cfg); got != InString {
		t.Errorf("got %s, want InString", got)
	}
}
