package main

import (
	"fmt"
	"io"
	"os"

	"github.com/yyjjl/simple-lispy/dialect"
	"github.com/yyjjl/simple-lispy/encode"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Dialect     string `cli:"name=dialect aliases=d desc='dialect: elisp, scheme or clojure'"`
	DialectFile string `cli:"name=dialect-file desc='yaml file with dialect overrides'"`
	Color       bool   `cli:"name=color desc='colorize output'"`

	Main *cli.Command
}

func (cfg *MainConfig) config() (*dialect.Config, error) {
	if cfg.DialectFile != "" {
		dc, err := dialect.Load(cfg.DialectFile)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		return dc, nil
	}
	d := dialect.Elisp
	if cfg.Dialect != "" {
		var err error
		d, err = dialect.ParseDialect(cfg.Dialect)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	return dialect.New(d), nil
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	if cfg.Color {
		return []encode.EncodeOption{encode.EncodeColors(encode.NewColors())}
	}
	colorSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorSet = opt.Value != nil
		break
	}
	if colorSet {
		return nil
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return []encode.EncodeOption{encode.EncodeColors(encode.NewColors())}
	}
	return nil
}

func (cfg *MainConfig) useColor(w io.Writer) bool {
	return len(cfg.encOpts(w)) > 0
}

type FmtConfig struct {
	*MainConfig
	Write   bool `cli:"name=w desc='write result back to the file'"`
	Oneline bool `cli:"name=oneline desc='collapse to one line, comments hoisted'"`
	Pos     int  `cli:"name=pos desc='normalize only the list around this offset'"`

	Fmt *cli.Command
}

type ViewConfig struct {
	*MainConfig
	View *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q aliases=quiet desc='suppress output, exit status only'"`

	Check *cli.Command
}

type BalanceConfig struct {
	*MainConfig
	Balance *cli.Command
}

type ApplyConfig struct {
	*MainConfig
	Pos   int  `cli:"name=pos desc='cursor byte offset'"`
	End   int  `cli:"name=end desc='selection end offset (with -pos as start)'"`
	Count int  `cli:"name=n aliases=count desc='repeat the transform n times'"`
	To    int  `cli:"name=to desc='destination offset for teleport'"`
	Diff  bool `cli:"name=diff desc='show a character diff instead of the result'"`
	Write bool `cli:"name=w desc='write result back to the file'"`

	Apply *cli.Command
}

type SelConfig struct {
	*MainConfig
	All bool `cli:"name=all aliases=a desc='match every expression, not only top level'"`

	Sel *cli.Command
}
