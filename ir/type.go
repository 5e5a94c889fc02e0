package ir

type Type int

const (
	// AtomType is a symbol, keyword or number kept as its literal
	// spelling.
	AtomType Type = iota
	// ListType is a delimited sequence of nodes, including newline and
	// comment markers.
	ListType
	// StringType wraps a string literal; Text holds the body between the
	// quotes exactly as it appears in source, escapes intact.
	StringType
	// CommentType wraps one line comment; Text holds the exact comment
	// text including the leading semicolons, without the newline.
	CommentType
	// NewlineType is a zero-payload layout marker for one "\n".
	NewlineType
	// PrefixType wraps quote/quasiquote/unquote/splice and other
	// reader-macro prefixes; Prefix holds the marker, Values[0] the
	// payload.
	PrefixType
	// CharType is a character literal kept as its exact spelling.
	CharType
	// RawType is the catch-all wrapper for otherwise-unreadable spans
	// that must be reproduced verbatim and never re-interpreted.
	RawType
)

func (t Type) String() string {
	switch t {
	case AtomType:
		return "atom"
	case ListType:
		return "list"
	case StringType:
		return "string"
	case CommentType:
		return "comment"
	case NewlineType:
		return "newline"
	case PrefixType:
		return "prefix"
	case CharType:
		return "char"
	case RawType:
		return "raw"
	default:
		return "<invalid>"
	}
}

func Types() []Type {
	return []Type{
		AtomType, ListType, StringType, CommentType,
		NewlineType, PrefixType, CharType, RawType,
	}
}

// Delim identifies the delimiter kind of a list node.
type Delim int

const (
	// DelimNone marks the synthetic top-level list returned by the
	// reader for a whole span.
	DelimNone Delim = iota
	DelimParen
	DelimBracket
	DelimBrace
)

func (d Delim) Open() byte {
	switch d {
	case DelimParen:
		return '('
	case DelimBracket:
		return '['
	case DelimBrace:
		return '{'
	}
	return 0
}

func (d Delim) Close() byte {
	switch d {
	case DelimParen:
		return ')'
	case DelimBracket:
		return ']'
	case DelimBrace:
		return '}'
	}
	return 0
}

// DelimFor maps an open delimiter byte to its kind.
func DelimFor(open byte) Delim {
	switch open {
	case '(':
		return DelimParen
	case '[':
		return DelimBracket
	case '{':
		return DelimBrace
	}
	return DelimNone
}
