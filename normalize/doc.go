// Package normalize reflows parsed source into the dialect's preferred
// layout.
//
// Placement of newlines is re-derived from the dialect's leading-symbol
// layout table: the table says how many elements follow a list's head on
// the same line, and binding forms put each binding pair on its own
// line. Forms that fit within the dialect's pretty width stay on one
// line. The pass is idempotent, and a reflow whose output would not
// parse back to the same meaning is abandoned, returning the input
// unchanged.
//
// # Usage
//
//	cfg := dialect.New(dialect.Elisp)
//	out, err := normalize.Normalize(src, normalize.NormDialect(cfg))
//
//	// Collapse to one line, comments hoisted in front
//	out, err = normalize.Normalize(src, normalize.NormDialect(cfg), normalize.Oneline())
//
// # Related Packages
//
//   - github.com/yyjjl/simple-lispy/parse - Parse text to IR
//   - github.com/yyjjl/simple-lispy/encode - Print IR to text
package normalize
