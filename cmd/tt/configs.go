package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/signadot/truthtable/encode"
	"github.com/signadot/truthtable/reduce"
	"github.com/signadot/truthtable/table"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool   `cli:"name=color desc='output with color'"`
	Verbose bool   `cli:"name=v aliases=verbose desc='log reduction steps to stderr'"`
	MaxVars int    `cli:"name=max-vars desc='maximum number of variables, default 16'"`
	Vars    string `cli:"name=vars desc='comma separated variables, replacing those found in the formula'"`

	T bool `cli:"name=t aliases=text desc='output text'"`
	J bool `cli:"name=j aliases=json desc='output json'"`
	Y bool `cli:"name=y aliases=yaml desc='output yaml'"`

	OutFormat *encode.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**encode.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := encode.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// outFormat returns the output format given by the flags, or def.
func (cfg *MainConfig) outFormat(def encode.Format) encode.Format {
	fmat := def
	switch {
	case cfg.T:
		fmat = encode.Text
	case cfg.Y:
		fmat = encode.YAML
	case cfg.J:
		fmat = encode.JSON
	}
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	return fmat
}

func (cfg *MainConfig) solveOpts() []reduce.Option {
	res := []reduce.Option{
		reduce.WithLogger(theLog),
		reduce.WithMaxVariables(cfg.MaxVars),
	}
	if cfg.Vars == "" {
		return res
	}
	var vars []string
	for _, v := range strings.Split(cfg.Vars, ",") {
		v = strings.TrimSpace(v)
		if v != "" {
			vars = append(vars, v)
		}
	}
	return append(res, reduce.WithVariables(vars...))
}

func (cfg *MainConfig) colors(w io.Writer) *table.Colors {
	if cfg.Color {
		return table.NewColors()
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return nil
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return table.NewColors()
	}
	return nil
}

func (cfg *MainConfig) encOpts(w io.Writer, def encode.Format) []encode.EncodeOption {
	fmat := cfg.outFormat(def)
	res := []encode.EncodeOption{encode.EncodeFormat(fmat)}
	if fmat.IsText() {
		res = append(res, encode.EncodeColors(cfg.colors(w)))
	}
	return res
}

type SolveConfig struct {
	*MainConfig
	Steps   bool `cli:"name=s aliases=steps desc='also print the steps'"`
	Columns bool `cli:"name=c aliases=columns desc='print one line per column, result first'"`

	Solve *cli.Command
}

type StepsConfig struct {
	*MainConfig
	Raw bool `cli:"name=raw desc='print steps without substituting earlier steps'"`

	Steps *cli.Command
}

type ExportConfig struct {
	*MainConfig
	Classify bool `cli:"name=classify desc='include the classification'"`

	Export *cli.Command
}

type WhereConfig struct {
	*MainConfig
	Count bool `cli:"name=n aliases=count desc='print only the number of matching rows'"`

	Where *cli.Command
}

type ClassifyConfig struct {
	*MainConfig

	Classify *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Patch bool `cli:"name=patch desc='print a json merge patch between the column exports'"`

	Diff *cli.Command
}
