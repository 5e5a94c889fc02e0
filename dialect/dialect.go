package dialect

import (
	"errors"
	"fmt"
)

type Dialect int

const (
	Elisp Dialect = iota
	Scheme
	Clojure
)

var ErrBadDialect = errors.New("bad dialect")

func ParseDialect(v string) (Dialect, error) {
	d, ok := map[string]Dialect{
		"el":      Elisp,
		"elisp":   Elisp,
		"scm":     Scheme,
		"scheme":  Scheme,
		"clj":     Clojure,
		"clojure": Clojure,
	}[v]
	if ok {
		return d, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadDialect, v)
}

func (d Dialect) String() string {
	v, err := d.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(v)
}

func (d Dialect) MarshalText() ([]byte, error) {
	switch d {
	case Elisp:
		return []byte("elisp"), nil
	case Scheme:
		return []byte("scheme"), nil
	case Clojure:
		return []byte("clojure"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a dialect>", d)
	}
}

func (d *Dialect) UnmarshalText(v []byte) error {
	pd, err := ParseDialect(string(v))
	if err != nil {
		return err
	}
	*d = pd
	return nil
}

func (d Dialect) IsElisp() bool   { return d == Elisp }
func (d Dialect) IsScheme() bool  { return d == Scheme }
func (d Dialect) IsClojure() bool { return d == Clojure }

// Suffix returns the usual file extension for this dialect (including the dot).
func (d Dialect) Suffix() string {
	switch d {
	case Elisp:
		return ".el"
	case Scheme:
		return ".scm"
	case Clojure:
		return ".clj"
	default:
		return ""
	}
}

// AllDialects returns the supported dialects in preference order.
func AllDialects() []Dialect {
	return []Dialect{Elisp, Scheme, Clojure}
}
