package encode

import (
	"fmt"
	"io"

	"github.com/yyjjl/simple-lispy/ir"
)

// EncState carries the encoder's per-call state. The zero value
// encodes without color.
type EncState struct {
	colorType ir.Type
	colorAttr ColorAttr
	Color     func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w, byte for byte as it was read. It does not
// re-validate the tree; a malformed tree is a caller bug.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return encode(node, w, es)
}

func encode(n *ir.Node, w io.Writer, es *EncState) error {
	if err := writeString(w, n.Gap, es); err != nil {
		return err
	}
	switch n.Type {
	case ir.AtomType, ir.CharType, ir.RawType:
		es.colorType, es.colorAttr = n.Type, ValueColor
		return writeString(w, n.Text, es)
	case ir.StringType:
		es.colorType, es.colorAttr = ir.StringType, ValueColor
		return writeString(w, `"`+n.Text+`"`, es)
	case ir.CommentType:
		es.colorType, es.colorAttr = ir.CommentType, ValueColor
		return writeString(w, n.Text, es)
	case ir.NewlineType:
		return writeString(w, "\n", es)
	case ir.PrefixType:
		es.colorType, es.colorAttr = ir.PrefixType, SepColor
		if err := writeString(w, n.Prefix, es); err != nil {
			return err
		}
		for _, kid := range n.Values {
			if err := encode(kid, w, es); err != nil {
				return err
			}
		}
		return nil
	case ir.ListType:
		if n.Prefix != "" {
			es.colorType, es.colorAttr = ir.ListType, SepColor
			if err := writeString(w, n.Prefix, es); err != nil {
				return err
			}
		}
		if n.Delim != ir.DelimNone {
			es.colorType, es.colorAttr = ir.ListType, DelimColor
			if err := writeString(w, string(n.Delim.Open()), es); err != nil {
				return err
			}
		}
		for _, kid := range n.Values {
			if err := encode(kid, w, es); err != nil {
				return err
			}
		}
		if err := writeString(w, n.Text, es); err != nil {
			return err
		}
		if n.Delim != ir.DelimNone {
			es.colorType, es.colorAttr = ir.ListType, DelimColor
			return writeString(w, string(n.Delim.Close()), es)
		}
		return nil
	default:
		return fmt.Errorf("encode: unexpected node type %s", n.Type)
	}
}

func writeString(w io.Writer, s string, es *EncState) error {
	if s == "" {
		return nil
	}
	if es.Color != nil {
		s = es.Color(es.colorType, es.colorAttr, s)
	}
	_, err := io.WriteString(w, s)
	return err
}
