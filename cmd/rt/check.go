package main

import (
	"fmt"
	"io"
	"os"
	"runtime"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"
	"github.com/signadot/runtype"
	"github.com/signadot/runtype/ir"
	"github.com/signadot/runtype/reporter"
	"github.com/signadot/runtype/schema"
	"golang.org/x/sync/errgroup"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Types == "" || cfg.Type == "" {
		return fmt.Errorf("%w: check requires -types and -t", cli.ErrUsage)
	}
	t, err := lookupType(cfg.Types, cfg.Type)
	if err != nil {
		return err
	}
	var patch jsonpatch.Patch
	if cfg.Patch != "" {
		if patch, err = readPatch(cfg.Patch); err != nil {
			return err
		}
	}

	docs := args
	if len(docs) == 0 {
		docs = []string{"-"}
	}
	rep := reporter.PathReporter{Colors: cfg.colors(cc.Out)}
	results := make([]runtype.Validation, len(docs))
	reports := make([][]string, len(docs))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, doc := range docs {
		g.Go(func() error {
			v, err := readDoc(cc, doc, patch)
			if err != nil {
				return err
			}
			results[i] = runtype.Validate(v, t)
			reports[i] = rep.Report(results[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	failed := false
	for i, doc := range docs {
		if results[i].IsSuccess() {
			if !cfg.Quiet {
				fmt.Fprintf(cc.Out, "%s: %s\n", doc, reports[i][0])
			}
			continue
		}
		failed = true
		for _, line := range reports[i] {
			fmt.Fprintf(cc.Out, "%s: %s\n", doc, line)
		}
	}
	if failed {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func lookupType(path, name string) (runtype.Type, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	ds, err := decls(path, d)
	if err != nil {
		return nil, err
	}
	types, err := schema.Build(ds, nil)
	if err != nil {
		return nil, err
	}
	t, ok := types[name]
	if !ok {
		return nil, fmt.Errorf("%w: no type %q in %s", cli.ErrUsage, name, path)
	}
	return t, nil
}

// readPatch reads a JSON patch, which may be written in YAML.
func readPatch(path string) (jsonpatch.Patch, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	n, err := ir.Decode(d)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", path, err)
	}
	patch, err := jsonpatch.DecodePatch([]byte(ir.ToJSON(n)))
	if err != nil {
		return nil, fmt.Errorf("error decoding patch %s: %w", path, err)
	}
	return patch, nil
}

// readDoc decodes the document at path, "-" meaning cc.In, and applies
// patch to it if not nil.
func readDoc(cc *cli.Context, path string, patch jsonpatch.Patch) (*ir.Node, error) {
	var (
		d   []byte
		err error
	)
	if path == "-" {
		d, err = io.ReadAll(cc.In)
	} else {
		d, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	v, err := ir.Decode(d)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", path, err)
	}
	if patch == nil {
		return v, nil
	}
	out, err := patch.Apply([]byte(ir.ToJSON(v)))
	if err != nil {
		return nil, fmt.Errorf("error patching %s: %w", path, err)
	}
	v, err = ir.Decode(out)
	if err != nil {
		return nil, fmt.Errorf("error decoding patched %s: %w", path, err)
	}
	return v, nil
}
