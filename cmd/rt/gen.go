package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/scott-cotton/cli"
	"github.com/signadot/runtype/codegen"
)

func gen(cfg *GenConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Gen.Parse(cc, args)
	if err != nil {
		cfg.Gen.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Check != "" && cfg.Out != "" && cfg.Out != "-" {
		return fmt.Errorf("%w: -check and -o are exclusive", cli.ErrUsage)
	}
	decls, err := loadDecls(cc, args)
	if err != nil {
		return err
	}
	name := "types.go"
	switch {
	case cfg.Check != "":
		name = filepath.Base(cfg.Check)
	case cfg.Out != "" && cfg.Out != "-":
		name = filepath.Base(cfg.Out)
	}
	src, err := codegen.Generate(decls, codegen.Package(cfg.Package), codegen.FileName(name))
	if err != nil {
		return err
	}
	if cfg.Check == "" {
		_, err = cc.Out.Write(src)
		return err
	}
	old, err := os.ReadFile(cfg.Check)
	if err != nil {
		return err
	}
	diff := codegen.Diff
	if cfg.colors(cc.Out) != nil {
		diff = codegen.ColorDiff
	}
	if d := diff(old, src); d != "" {
		fmt.Fprintf(cc.Out, "%s is out of date:\n%s", cfg.Check, d)
		return cli.ExitCodeErr(1)
	}
	return nil
}
