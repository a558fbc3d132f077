package reporter

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/runtype"
	"github.com/signadot/runtype/encode"
	"github.com/signadot/runtype/ir"
)

var point = runtype.Object(runtype.Props{
	{Key: "x", Type: runtype.Number},
	{Key: "y", Type: runtype.Number},
}, "Point")

func TestPathReporter(t *testing.T) {
	ok := runtype.Validate(ir.FromKeyVals([]ir.KeyVal{
		{Key: "x", Val: ir.FromInt(1)},
		{Key: "y", Val: ir.FromInt(2)},
	}), point)
	if diff := cmp.Diff([]string{NoErrors}, PathReporter{}.Report(ok)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	bad := runtype.Validate(ir.FromKeyVals([]ir.KeyVal{
		{Key: "x", Val: ir.FromString("1")},
	}), point)
	want := []string{
		`Invalid value "1" supplied to Point/x: number`,
		"Invalid value undefined supplied to Point/y: number",
	}
	if diff := cmp.Diff(want, PathReporter{}.Report(bad)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestPathReporterColors(t *testing.T) {
	colors := &encode.Colors{
		Default: func(s string, _ ...any) string { return s },
		Map: map[encode.Colorable]func(string, ...any) string{
			{Type: ir.StringType, Attr: encode.ErrorColor}: func(s string, _ ...any) string { return "!" + s + "!" },
			{Type: ir.ObjectType, Attr: encode.FieldColor}: func(s string, _ ...any) string { return "_" + s },
		},
	}
	bad := runtype.Validate(ir.FromKeyVals([]ir.KeyVal{
		{Key: "x", Val: ir.FromString("1")},
		{Key: "y", Val: ir.FromInt(1)},
	}), point)
	want := []string{`Invalid value !"1"! supplied to Point/_x: number`}
	if diff := cmp.Diff(want, PathReporter{Colors: colors}.Report(bad)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestThrowReporter(t *testing.T) {
	if err := (ThrowReporter{}).Report(runtype.Validate(ir.FromInt(1), runtype.Number)); err != nil {
		t.Errorf("unexpected error %v", err)
	}
	err := ThrowReporter{}.Report(runtype.Validate(ir.FromString("s"), runtype.Number))
	if !errors.Is(err, runtype.ErrCheck) {
		t.Fatalf("expected ErrCheck, got %v", err)
	}
	if got, want := err.Error(), "[runtype failure]\nInvalid value \"s\" supplied to number"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}
