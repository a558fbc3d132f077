package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	"github.com/signadot/runtype/encode"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='report with color'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

// colors returns the colors to write to w with, or nil for none. Without
// -color, colors are used when w is a terminal.
func (cfg *MainConfig) colors(w io.Writer) *encode.Colors {
	if cfg.Color {
		return encode.NewColors()
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name == "color" && opt.Value != nil {
			return nil
		}
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return encode.NewColors()
	}
	return nil
}

type SchemaConfig struct {
	*MainConfig
	Y bool `cli:"name=y aliases=yaml desc='output yaml instead of json'"`

	Schema *cli.Command
}

type GenConfig struct {
	*MainConfig
	Package string `cli:"name=pkg desc='package name of generated code'"`
	Check   string `cli:"name=check desc='compare generated code with file, failing on a difference'"`

	Gen *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Types string `cli:"name=types desc='type declarations or schema document'"`
	Type  string `cli:"name=t desc='name of the type to check against'"`
	Patch string `cli:"name=patch desc='json patch applied to each document before checking'"`
	Quiet bool   `cli:"name=q desc='report only failures'"`

	Check *cli.Command
}
