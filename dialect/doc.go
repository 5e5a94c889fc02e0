// Package dialect describes the Lisp dialect being edited.
//
// # Usage
//
//	cfg := dialect.New(dialect.Elisp)
//
//	// Or load overrides from a YAML file
//	cfg, err := dialect.Load("dialect.yaml")
//
// A Config value is passed explicitly to every reader, printer, normalizer
// and transform call; there is no implicit current dialect.
//
// # Related Packages
//
//   - github.com/yyjjl/simple-lispy/parse - Read text into a tree
//   - github.com/yyjjl/simple-lispy/encode - Print a tree back to text
//   - github.com/yyjjl/simple-lispy/normalize - Reflow layout
package dialect
