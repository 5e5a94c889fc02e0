package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse     bool
	Normalize bool
	Edit      bool
	Scan      bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("SEXP_DEBUG_PARSE")
	d.Normalize = boolEnv("SEXP_DEBUG_NORMALIZE")
	d.Edit = boolEnv("SEXP_DEBUG_EDIT")
	d.Scan = boolEnv("SEXP_DEBUG_SCAN")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Normalize() bool {
	return d.Normalize
}
func Edit() bool {
	return d.Edit
}
func Scan() bool {
	return d.Scan
}
