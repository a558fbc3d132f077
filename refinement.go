package runtype

import (
	"reflect"
	"regexp"
	"runtime"
	"strconv"
	"strings"

	"github.com/signadot/runtype/either"
	"github.com/signadot/runtype/ir"
)

// Predicate is a check over an already validated value.
type Predicate func(v *ir.Node) bool

// RefinementType narrows the values accepted by a type with a predicate.
// A value the predicate rejects is reported as the raw input at the
// refinement's own context.
type RefinementType struct {
	name      string
	inner     Type
	predicate Predicate
}

func Refinement(t Type, pred Predicate, name ...string) *RefinementType {
	mustType("refinement", t)
	if pred == nil {
		panic(constructionErr("refinement: nil predicate"))
	}
	return &RefinementType{
		name:      pickName(name, func() string { return DefaultRefinementName(t, FuncName(pred, 1)) }),
		inner:     t,
		predicate: pred,
	}
}

func (t *RefinementType) Name() string         { return t.name }
func (t *RefinementType) Kind() Kind           { return KindRefinement }
func (t *RefinementType) Type() Type           { return t.inner }
func (t *RefinementType) Predicate() Predicate { return t.predicate }

func (t *RefinementType) Validate(v *ir.Node, c Context) Validation {
	return either.Chain(t.inner.Validate(v, c), func(w *ir.Node) Validation {
		if t.predicate(w) {
			return success(w)
		}
		return failure(v, c)
	})
}

var anonFunc = regexp.MustCompile(`^(func|glob)\d*$|^\d+$`)

// FuncName is the name of the function f for use in type names, or
// <function{arity}> when f is a closure or has no symbol.
func FuncName(f any, arity int) string {
	anon := "<function" + strconv.Itoa(arity) + ">"
	if f == nil {
		return anon
	}
	rv := reflect.ValueOf(f)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		return anon
	}
	fn := runtime.FuncForPC(rv.Pointer())
	if fn == nil {
		return anon
	}
	name := fn.Name()
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	name = strings.TrimSuffix(name, "-fm")
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}
	parts := strings.Split(name, ".")
	if len(parts) < 2 {
		return anon
	}
	for _, p := range parts[1:] {
		if anonFunc.MatchString(p) {
			return anon
		}
	}
	return parts[len(parts)-1]
}
