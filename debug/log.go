package debug

import (
	"bytes"
	"fmt"
	"os"

	"github.com/yyjjl/simple-lispy/encode"
	"github.com/yyjjl/simple-lispy/ir"
)

// Sexp renders a node for log output.
type Sexp struct{ *ir.Node }

func (s Sexp) String() string {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(s.Node, buf); err != nil {
		return fmt.Sprintf("[raw node] %v", s.Node)
	}
	return buf.String()
}

func Logf(msg string, args ...any) {
	for i := range args {
		if x, ok := args[i].(*ir.Node); ok {
			args[i] = Sexp{x}.String()
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
