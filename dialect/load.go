package dialect

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// fileConfig is the YAML override shape.  Only the fields present in the
// file are applied over the built-in dialect config.
type fileConfig struct {
	Dialect       string                `yaml:"dialect"`
	Prefixes      []string              `yaml:"prefixes"`
	CharPrefix    *string               `yaml:"charPrefix"`
	Layout        map[string]LayoutRule `yaml:"layout"`
	BindingForms  []string              `yaml:"bindingForms"`
	IgnoreStrings *bool                 `yaml:"ignoreStrings"`
	IgnoreComment *bool                 `yaml:"ignoreComments"`
	SafeScanLimit *int                  `yaml:"safeScanLimit"`
	PrettyWidth   *int                  `yaml:"prettyWidth"`
}

// Load reads a YAML dialect config file and applies it over the built-in
// config for the dialect it names (default elisp).
func Load(path string) (*Config, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return LoadBytes(d)
}

func LoadBytes(d []byte) (*Config, error) {
	fc := &fileConfig{}
	if err := yaml.Unmarshal(d, fc); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBadDialect, err)
	}
	dia := Elisp
	if fc.Dialect != "" {
		var err error
		dia, err = ParseDialect(fc.Dialect)
		if err != nil {
			return nil, err
		}
	}
	cfg := New(dia)
	if len(fc.Prefixes) > 0 {
		cfg.Prefixes = fc.Prefixes
		sortPrefixes(cfg.Prefixes)
	}
	if fc.CharPrefix != nil {
		cfg.CharPrefix = *fc.CharPrefix
	}
	for sym, rule := range fc.Layout {
		cfg.Layout[sym] = rule
	}
	if len(fc.BindingForms) > 0 {
		cfg.BindingForms = map[string]bool{}
		for _, sym := range fc.BindingForms {
			cfg.BindingForms[sym] = true
		}
	}
	if fc.IgnoreStrings != nil {
		cfg.IgnoreStrings = *fc.IgnoreStrings
	}
	if fc.IgnoreComment != nil {
		cfg.IgnoreComments = *fc.IgnoreComment
	}
	if fc.SafeScanLimit != nil {
		cfg.SafeScanLimit = *fc.SafeScanLimit
	}
	if fc.PrettyWidth != nil {
		cfg.PrettyWidth = *fc.PrettyWidth
	}
	return cfg, nil
}
