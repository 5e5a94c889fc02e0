// Package encode prints IR nodes back to source text.
//
// Encoding is the exact inverse of parsing: every gap, newline, and
// comment the reader stored is emitted verbatim, so a parse followed
// by an encode reproduces the input byte for byte.
//
// # Usage
//
//	node, err := parse.ParseString(src)
//	if err != nil { ... }
//	out := encode.MustString(node)
//	// out == src
//
//	// With terminal colors
//	err = encode.Encode(node, os.Stdout, encode.EncodeColors(encode.NewColors()))
//
// # Related Packages
//
//   - github.com/yyjjl/simple-lispy/ir - IR representation
//   - github.com/yyjjl/simple-lispy/parse - Parse text to IR
package encode
