// Package parse reads Lisp source text into lossless trees.
//
// # Usage
//
//	node, err := parse.Parse([]byte("(defun f (x)\n  (1+ x))"))
//	if err != nil {
//	    return err
//	}
//
//	// Parse with a specific dialect and span tracking
//	spans := map[*ir.Node]token.Span{}
//	node, err = parse.Parse(d,
//	    parse.ParseDialect(dialect.New(dialect.Clojure)),
//	    parse.ParseSpans(spans))
//
// Printing a freshly parsed tree with the encode package reproduces the
// input byte for byte.
//
// # Related Packages
//
//   - github.com/yyjjl/simple-lispy/ir - Tree representation
//   - github.com/yyjjl/simple-lispy/encode - Print trees back to text
//   - github.com/yyjjl/simple-lispy/token - Tokenization
package parse
