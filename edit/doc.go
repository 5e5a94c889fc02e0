// Package edit implements structural transforms over balanced
// expressions: slurp, barf, raise, convolute, splice, join, split,
// move, and teleport, plus the boundary queries they are built on.
//
// Every transform takes the live text and a cursor or selection,
// parses the relevant span, performs the rewrite on the tree, reflows
// the affected list, and reports the new text with the cursor restored
// to the side of the expression it started on. A transform whose
// precondition does not hold returns a RefusedErr and leaves the text
// unchanged; refusals are ordinary outcomes of exploratory editing,
// not faults.
//
// # Usage
//
//	cfg := dialect.New(dialect.Elisp)
//	res, err := edit.Slurp(text, edit.Caret(pos), 1, cfg)
//	if edit.IsRefused(err) {
//	    // report err to the user, text is unchanged
//	}
//
// # Related Packages
//
//   - github.com/yyjjl/simple-lispy/parse - Parse text to IR
//   - github.com/yyjjl/simple-lispy/normalize - Reflow after edits
//   - github.com/yyjjl/simple-lispy/token - Spans and classification
package edit
