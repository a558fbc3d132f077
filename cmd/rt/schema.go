package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/signadot/runtype/schema"
)

func schemaMain(cfg *SchemaConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Schema.Parse(cc, args)
	if err != nil {
		cfg.Schema.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	decls, err := loadDecls(cc, args)
	if err != nil {
		return err
	}
	marshal := schema.Marshal
	if cfg.Y {
		marshal = schema.MarshalYAML
	}
	d, err := marshal(decls)
	if err != nil {
		return fmt.Errorf("error encoding schema: %w", err)
	}
	_, err = cc.Out.Write(d)
	return err
}
