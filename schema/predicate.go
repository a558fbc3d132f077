package schema

import (
	"fmt"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/signadot/runtype"
	"github.com/signadot/runtype/debug"
	"github.com/signadot/runtype/ir"
)

// predicates caches compiled predicate programs by source.
var predicates sync.Map

func compilePredicate(src string) (*vm.Program, error) {
	if p, ok := predicates.Load(src); ok {
		return p.(*vm.Program), nil
	}
	prg, err := expr.Compile(src, expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrPredicate, src, err)
	}
	predicates.Store(src, prg)
	return prg, nil
}

// Predicate compiles an expression over value into a refinement
// predicate. value is the validated value as plain Go data: nil, bool,
// float64, string, []any or map[string]any. A predicate which fails to
// evaluate rejects the value.
func Predicate(src string) (runtype.Predicate, error) {
	prg, err := compilePredicate(src)
	if err != nil {
		return nil, err
	}
	return func(v *ir.Node) bool {
		env := map[string]any{"value": ir.ToAny(v)}
		res, err := expr.Run(prg, env)
		if err != nil {
			if debug.Validate() {
				debug.Logf("predicate %q: %v\n", src, err)
			}
			return false
		}
		b, _ := res.(bool)
		return b
	}, nil
}

// MustPredicate is like Predicate but panics on error, for use in
// generated code.
func MustPredicate(src string) runtype.Predicate {
	p, err := Predicate(src)
	if err != nil {
		panic(err)
	}
	return p
}

// Refine narrows t with the predicate expression src. Without a name the
// refinement is named after t and src, as in "(number | value > 0)".
// Refine panics if src does not compile.
func Refine(t runtype.Type, src string, name ...string) *runtype.RefinementType {
	n := runtype.DefaultRefinementName(t, src)
	if len(name) > 0 && name[0] != "" {
		n = name[0]
	}
	return runtype.Refinement(t, MustPredicate(src), n)
}
