package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/scott-cotton/cli"
	"github.com/signadot/runtype/parse"
	"github.com/signadot/runtype/schema"
)

func rtMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// isSchemaDoc reports whether path names a JSON or YAML schema document
// rather than type declarations.
func isSchemaDoc(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}

// decls reads declarations from d. Schema documents are decoded, anything
// else is parsed as type declarations.
func decls(path string, d []byte) ([]schema.Decl, error) {
	if isSchemaDoc(path) {
		res, err := schema.Unmarshal(d)
		if err != nil {
			return nil, fmt.Errorf("error decoding %s: %w", path, err)
		}
		return res, nil
	}
	prog, err := parse.Parse(d)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}
	res, err := schema.FromTypes(prog)
	if err != nil {
		return nil, fmt.Errorf("error in %s: %w", path, err)
	}
	return res, nil
}

// loadDecls reads declarations from the files in args in order, or from
// cc.In without args.
func loadDecls(cc *cli.Context, args []string) ([]schema.Decl, error) {
	if len(args) == 0 {
		d, err := io.ReadAll(cc.In)
		if err != nil {
			return nil, err
		}
		return decls("-", d)
	}
	var res []schema.Decl
	for _, arg := range args {
		d, err := os.ReadFile(arg)
		if err != nil {
			return nil, err
		}
		ds, err := decls(arg, d)
		if err != nil {
			return nil, err
		}
		res = append(res, ds...)
	}
	return res, nil
}
