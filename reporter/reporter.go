// Package reporter formats validation results for people.
package reporter

import (
	"strings"

	"github.com/signadot/runtype"
	"github.com/signadot/runtype/encode"
	"github.com/signadot/runtype/ir"
)

// NoErrors is reported for a successful validation.
const NoErrors = "No errors!"

type Reporter[T any] interface {
	Report(r runtype.Validation) T
}

// PathReporter reports one description per error.
type PathReporter struct {
	// Colors, when set, highlights the offending value and the type
	// names along the path.
	Colors *encode.Colors
}

func (p PathReporter) Report(r runtype.Validation) []string {
	if r.IsSuccess() {
		return []string{NoErrors}
	}
	errs := runtype.ErrorsOf(r)
	if p.Colors == nil {
		return errs.Descriptions()
	}
	res := make([]string, len(errs))
	for i, e := range errs {
		res[i] = p.describe(e)
	}
	return res
}

func (p PathReporter) describe(e *runtype.ValidationError) string {
	t := ir.UndefinedType
	if e.Value != nil {
		t = e.Value.Type
	}
	parts := make([]string, len(e.Context))
	for i, ce := range e.Context {
		name := p.Colors.Color(t, encode.PathColor, ce.Type.Name())
		if ce.Key == "" {
			parts[i] = name
			continue
		}
		parts[i] = p.Colors.Color(ir.ObjectType, encode.FieldColor, ce.Key) + ": " + name
	}
	return "Invalid value " +
		p.Colors.Color(t, encode.ErrorColor, runtype.Stringify(e.Value)) +
		" supplied to " + strings.Join(parts, "/")
}

// ThrowReporter turns a failed validation into an error.
type ThrowReporter struct{}

// Report returns nil on success and the *runtype.Failure otherwise.
func (ThrowReporter) Report(r runtype.Validation) error {
	if r.IsSuccess() {
		return nil
	}
	return &runtype.Failure{Errors: runtype.ErrorsOf(r)}
}

var (
	_ Reporter[[]string] = PathReporter{}
	_ Reporter[error]    = ThrowReporter{}
)
