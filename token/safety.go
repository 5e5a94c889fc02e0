package token

import (
	"io"
	"sort"

	"github.com/yyjjl/simple-lispy/debug"
	"github.com/yyjjl/simple-lispy/dialect"
)

// ScanOutcome distinguishes "scanned and found nothing" from "did not
// scan".  The size guard makes very large spans Unknown rather than
// silently treating them as balanced.
type ScanOutcome int

const (
	ScanKnown ScanOutcome = iota
	ScanUnknown
)

// FindUnmatched returns the offsets (relative to d) of delimiters inside
// span that have no match within the span, in ascending order.  Delimiters
// inside strings and comments are excluded from the count when the
// corresponding ignore flag is set on cfg.  When the span exceeds
// cfg.SafeScanLimit no scan is performed and the outcome is ScanUnknown;
// callers must treat that as "unknown", not "balanced".
func FindUnmatched(d []byte, span Span, cfg *dialect.Config) ([]int, ScanOutcome) {
	if span.Len() > cfg.SafeScanLimit {
		if debug.Scan() {
			debug.Logf("scan: span %s over limit %d, outcome unknown\n", span, cfg.SafeScanLimit)
		}
		return nil, ScanUnknown
	}
	type open struct {
		b   byte
		off int
	}
	var (
		stack     []open
		unmatched []int
	)
	count := func(c byte, off int) {
		if cfg.IsOpen(c) {
			stack = append(stack, open{b: c, off: off})
			return
		}
		if cfg.IsClose(c) {
			if len(stack) == 0 {
				unmatched = append(unmatched, off)
				return
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if dp, ok := cfg.OpenFor(top.b); !ok || dp.Close != c {
				// a kind mismatch orphans both delimiters
				unmatched = append(unmatched, top.off, off)
			}
		}
	}
	s := NewScanner(d[span.Start:span.End], cfg)
	for {
		tok, err := s.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			// an unterminated string is itself unmatched territory;
			// treat its opening quote position onward as opaque
			break
		}
		start := span.Start + tok.Span.Start
		switch tok.Type {
		case TOpen:
			count(d[start], start)
		case TClose:
			count(d[start], start)
		case TString:
			if !cfg.IgnoreStrings {
				countInside(d, span.Start+tok.Span.Start+1, span.Start+tok.Span.End-1, count)
			}
		case TComment:
			if !cfg.IgnoreComments {
				countInside(d, start, span.Start+tok.Span.End, count)
			}
		}
	}
	for _, o := range stack {
		unmatched = append(unmatched, o.off)
	}
	sort.Ints(unmatched)
	return unmatched, ScanKnown
}

func countInside(d []byte, start, end int, count func(byte, int)) {
	for i := start; i < end; i++ {
		if d[i] == '\\' {
			i++
			continue
		}
		count(d[i], i)
	}
}

// PartitionSafe splits span into sub-spans free of unmatched delimiters,
// in reverse order so sequential deletion never invalidates earlier
// offsets.  When cfg.SplitAtComments is set and the span holds unmatched
// delimiters, regions are additionally cut at comment boundaries so a
// deletion cannot pull a stray delimiter into a comment.  On ScanUnknown
// the whole span is returned as a single region.
func PartitionSafe(d []byte, span Span, cfg *dialect.Config) []Span {
	unmatched, outcome := FindUnmatched(d, span, cfg)
	if outcome == ScanUnknown || len(unmatched) == 0 {
		return []Span{span}
	}
	// carve out the unmatched delimiter bytes
	var regions []Span
	cur := span.Start
	for _, off := range unmatched {
		if off > cur {
			regions = append(regions, Span{Start: cur, End: off})
		}
		cur = off + 1
	}
	if cur < span.End {
		regions = append(regions, Span{Start: cur, End: span.End})
	}
	if cfg.SplitAtComments {
		var cuts []int
		s := NewScanner(d[span.Start:span.End], cfg)
		for {
			tok, err := s.Next()
			if err != nil {
				break
			}
			if tok.Type != TComment {
				continue
			}
			cuts = append(cuts,
				span.Start+tok.Span.Start,
				span.Start+tok.Span.End)
		}
		regions = splitAt(regions, cuts)
	}
	// reverse order for safe sequential deletion
	for i, j := 0, len(regions)-1; i < j; i, j = i+1, j-1 {
		regions[i], regions[j] = regions[j], regions[i]
	}
	return regions
}

// splitAt cuts regions at the given offsets without removing any bytes.
func splitAt(regions []Span, cuts []int) []Span {
	sort.Ints(cuts)
	var res []Span
	for _, r := range regions {
		cur := r.Start
		for _, c := range cuts {
			if c <= cur || c >= r.End {
				continue
			}
			res = append(res, Span{Start: cur, End: c})
			cur = c
		}
		res = append(res, Span{Start: cur, End: r.End})
	}
	return res
}

// Balance prepends and appends the minimal matching delimiters needed to
// make d well-formed, for use by safe paste on text from arbitrary
// sources.  A close that pairs with an open of a different kind cannot be
// repaired by edge insertion; such input is returned unchanged.
func Balance(d []byte, cfg *dialect.Config) []byte {
	var (
		stack   []byte // open delimiters awaiting a close
		prepend []byte
	)
	s := NewScanner(d, cfg)
	for {
		tok, err := s.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			break
		}
		switch tok.Type {
		case TOpen:
			stack = append(stack, d[tok.Span.Start])
		case TClose:
			c := d[tok.Span.Start]
			if len(stack) > 0 {
				if dp, _ := cfg.OpenFor(stack[len(stack)-1]); dp.Close != c {
					return d
				}
				stack = stack[:len(stack)-1]
				continue
			}
			dp, _ := cfg.CloseFor(c)
			// innermost unmatched close needs the nearest open
			prepend = append([]byte{dp.Open}, prepend...)
		}
	}
	res := make([]byte, 0, len(prepend)+len(d)+len(stack))
	res = append(res, prepend...)
	res = append(res, d...)
	for i := len(stack) - 1; i >= 0; i-- {
		dp, _ := cfg.OpenFor(stack[i])
		res = append(res, dp.Close)
	}
	return res
}
