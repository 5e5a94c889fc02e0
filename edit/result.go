package edit

import (
	"errors"
	"fmt"
)

// Sel is a cursor (Start == End) or an active selection over the text
// the host editor handed in.
type Sel struct {
	Start, End int
}

// Caret returns a collapsed selection at pos.
func Caret(pos int) Sel {
	return Sel{Start: pos, End: pos}
}

func (s Sel) Empty() bool {
	return s.Start >= s.End
}

// Result is a transform's outcome: the new text and where the cursor or
// selection lands in it.
type Result struct {
	Text string
	Sel  Sel
}

// RefusedErr reports a transform whose precondition did not hold. The
// text is unchanged; the reason is for the user, not for recovery.
type RefusedErr struct {
	Op     string
	Reason string
}

func (e *RefusedErr) Error() string {
	return fmt.Sprintf("%s refused: %s", e.Op, e.Reason)
}

// IsRefused reports whether err is a transform refusal rather than a
// read failure.
func IsRefused(err error) bool {
	var re *RefusedErr
	return errors.As(err, &re)
}

func refuse(op, format string, args ...any) error {
	return &RefusedErr{Op: op, Reason: fmt.Sprintf(format, args...)}
}
