package normalize

import "github.com/yyjjl/simple-lispy/dialect"

type normOpts struct {
	cfg     *dialect.Config
	oneline bool
}

func newNormOpts(opts []NormOption) *normOpts {
	no := &normOpts{}
	for _, opt := range opts {
		opt(no)
	}
	if no.cfg == nil {
		no.cfg = dialect.New(dialect.Elisp)
	}
	return no
}

type NormOption func(*normOpts)

func NormDialect(cfg *dialect.Config) NormOption {
	return func(no *normOpts) { no.cfg = cfg }
}

// Oneline collapses the form onto a single line, hoisting comments
// ahead of it instead of dropping them.
func Oneline() NormOption {
	return func(no *normOpts) { no.oneline = true }
}
