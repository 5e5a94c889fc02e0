// Package ir provides the lossless tree representation of Lisp source
// spans.
//
// # Overview
//
// A Node is either an atom (symbol, keyword, number, stored as its
// literal spelling), a list (tagged with its delimiter kind), or an escape
// node wrapping lexical forms the reader cannot decompose without loss:
// strings, comments, newline markers, quote-family prefixes, character
// literals and a catch-all raw kind.
//
// Trees are transient: they are read fresh from the live text on every
// command and printed back after each transform.  Printing a freshly read
// tree reproduces the input byte for byte.
//
// # Node Structure
//
// Each node records the exact horizontal whitespace that preceded it
// (Gap); newlines are explicit NewlineType markers among a list's values.
// This is what makes print-after-read the identity on well-formed input.
//
// # Related Packages
//
//   - github.com/yyjjl/simple-lispy/parse - Read text into a tree
//   - github.com/yyjjl/simple-lispy/encode - Print a tree back to text
//   - github.com/yyjjl/simple-lispy/token - Lexical layer and spans
package ir
