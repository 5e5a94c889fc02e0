// Package token provides the lexical layer: spans, positions, a scanner
// for Lisp-family source text, position classification, and the
// safe-region balance scanner.
//
// # Usage
//
//	cfg := dialect.New(dialect.Elisp)
//	toks, err := token.Scan([]byte("(foo \"bar\") ; c"), cfg)
//
//	cls := token.Classify(d, pos, cfg)            // AtOpen, InString, ...
//	offs, outcome := token.FindUnmatched(d, span, cfg)
//	regions := token.PartitionSafe(d, span, cfg)  // reverse order
//	fixed := token.Balance([]byte("foo)"), cfg)   // "(foo)"
//
// # Related Packages
//
//   - github.com/yyjjl/simple-lispy/parse - Read tokens into a tree
//   - github.com/yyjjl/simple-lispy/edit - Structural transforms
package token
