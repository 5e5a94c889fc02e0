package dialect

import "sort"

// DelimPair is an open/close delimiter pair recognized as list syntax.
type DelimPair struct {
	Open  byte `yaml:"open"`
	Close byte `yaml:"close"`
}

// LayoutRule controls how the normalizer reflows a list whose first atom
// matches the rule's symbol.  SameLine is the number of elements that stay
// on the head's line after the head itself; the rest each get their own
// line.  NoRecurse marks the SameLine elements as opaque (argument lists
// are not themselves reformatted).
type LayoutRule struct {
	SameLine  int  `yaml:"sameLine"`
	NoRecurse bool `yaml:"noRecurse"`
}

// Config carries everything dialect-specific, threaded explicitly through
// every call.  There is no process-wide current dialect.
type Config struct {
	Dialect Dialect

	// Delims are the list delimiter pairs, e.g. () [] {}.
	Delims []DelimPair

	// Prefixes are the reader-macro prefixes that attach to the next
	// expression: quote, quasiquote, unquote, splice and friends.
	// Matched longest-first.
	Prefixes []string

	// CharPrefix starts a character literal: "?" in elisp, "#\\" in scheme,
	// "\\" in clojure.  Empty disables character literals.
	CharPrefix string

	// Layout is the leading-symbol layout table used by the normalizer.
	Layout map[string]LayoutRule

	// BindingForms are the let-likes: their binding list gets one pair
	// per line, and splicing one into another merges binding lists.
	BindingForms map[string]bool

	// IgnoreStrings and IgnoreComments exclude delimiters occurring
	// inside strings/comments from the safe-region balance count.
	IgnoreStrings  bool
	IgnoreComments bool

	// SplitAtComments forbids a deletion from pulling an unmatched
	// delimiter into a comment: when a span holds unmatched delimiters,
	// safe regions are additionally cut at comment boundaries.
	SplitAtComments bool

	// SafeScanLimit is the span-length ceiling above which the safe-region
	// scanner reports "unknown" instead of scanning.
	SafeScanLimit int

	// PrettyWidth is the column budget under which the normalizer keeps a
	// form on one line.
	PrettyWidth int
}

const (
	DefaultSafeScanLimit = 10000
	DefaultPrettyWidth   = 72
)

// New returns the built-in configuration for d.
func New(d Dialect) *Config {
	cfg := &Config{
		Dialect:         d,
		Delims:          []DelimPair{{'(', ')'}, {'[', ']'}, {'{', '}'}},
		IgnoreStrings:   true,
		IgnoreComments:  true,
		SplitAtComments: true,
		SafeScanLimit:   DefaultSafeScanLimit,
		PrettyWidth:     DefaultPrettyWidth,
	}
	switch d {
	case Elisp:
		cfg.Prefixes = []string{"#'", "'", "`", ",@", ",", "#"}
		cfg.CharPrefix = "?"
		cfg.Layout = map[string]LayoutRule{
			"defun":          {SameLine: 2, NoRecurse: true},
			"defmacro":       {SameLine: 2, NoRecurse: true},
			"defvar":         {SameLine: 1},
			"defcustom":      {SameLine: 1},
			"lambda":         {SameLine: 1, NoRecurse: true},
			"if":             {SameLine: 1},
			"when":           {SameLine: 1},
			"unless":         {SameLine: 1},
			"while":          {SameLine: 1},
			"dolist":         {SameLine: 1, NoRecurse: true},
			"dotimes":        {SameLine: 1, NoRecurse: true},
			"let":            {SameLine: 1},
			"let*":           {SameLine: 1},
			"cond":           {SameLine: 0},
			"progn":          {SameLine: 0},
			"save-excursion": {SameLine: 0},
			"condition-case": {SameLine: 2},
			"setq":           {SameLine: 1},
		}
		cfg.BindingForms = map[string]bool{
			"let": true, "let*": true,
		}
	case Scheme:
		cfg.Prefixes = []string{"'", "`", ",@", ",", "#"}
		cfg.CharPrefix = "#\\"
		cfg.Layout = map[string]LayoutRule{
			"define": {SameLine: 1, NoRecurse: true},
			"lambda": {SameLine: 1, NoRecurse: true},
			"if":     {SameLine: 1},
			"when":   {SameLine: 1},
			"unless": {SameLine: 1},
			"cond":   {SameLine: 0},
			"begin":  {SameLine: 0},
			"let":    {SameLine: 1},
			"let*":   {SameLine: 1},
			"letrec": {SameLine: 1},
		}
		cfg.BindingForms = map[string]bool{
			"let": true, "let*": true, "letrec": true,
		}
	case Clojure:
		cfg.Prefixes = []string{"#'", "'", "`", "~@", "~", "@", "#_", "^", "#"}
		cfg.CharPrefix = "\\"
		cfg.Layout = map[string]LayoutRule{
			"defn":  {SameLine: 2, NoRecurse: true},
			"defn-": {SameLine: 2, NoRecurse: true},
			"def":   {SameLine: 1},
			"fn":    {SameLine: 1, NoRecurse: true},
			"if":    {SameLine: 1},
			"when":  {SameLine: 1},
			"doseq": {SameLine: 1, NoRecurse: true},
			"let":   {SameLine: 1},
			"loop":  {SameLine: 1},
			"do":    {SameLine: 0},
			"cond":  {SameLine: 0},
		}
		cfg.BindingForms = map[string]bool{
			"let": true, "loop": true, "binding": true,
		}
	}
	sortPrefixes(cfg.Prefixes)
	return cfg
}

// sortPrefixes orders prefixes longest first so matching is greedy.
func sortPrefixes(ps []string) {
	sort.SliceStable(ps, func(i, j int) bool {
		return len(ps[i]) > len(ps[j])
	})
}

// OpenFor reports whether c opens a list and returns its pair.
func (cfg *Config) OpenFor(c byte) (DelimPair, bool) {
	for _, dp := range cfg.Delims {
		if dp.Open == c {
			return dp, true
		}
	}
	return DelimPair{}, false
}

// CloseFor reports whether c closes a list and returns its pair.
func (cfg *Config) CloseFor(c byte) (DelimPair, bool) {
	for _, dp := range cfg.Delims {
		if dp.Close == c {
			return dp, true
		}
	}
	return DelimPair{}, false
}

func (cfg *Config) IsOpen(c byte) bool {
	_, ok := cfg.OpenFor(c)
	return ok
}

func (cfg *Config) IsClose(c byte) bool {
	_, ok := cfg.CloseFor(c)
	return ok
}
