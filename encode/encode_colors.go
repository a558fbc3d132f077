package encode

import (
	"strings"

	"github.com/fatih/color"
	"github.com/signadot/runtype/ir"
)

// Colorable selects a color by the type of node being written and the
// role of the text.
type Colorable struct {
	Type ir.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	FieldColor ColorAttr = iota
	ValueColor
	SepColor
	// ErrorColor highlights offending values in reports.
	ErrorColor
	// PathColor highlights type names in validation paths.
	PathColor
)

// Colors maps Colorables to formatting functions, falling back to Default.
type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

var (
	sepColor   = color.RGB(255, 0, 196)
	errorColor = color.New(color.FgRed, color.Bold)
	pathColor  = color.RGB(74, 92, 138)

	valueColors = map[ir.Type]*color.Color{
		ir.NumberType:    color.RGB(128, 216, 236),
		ir.NullType:      color.RGB(168, 0, 196),
		ir.UndefinedType: color.RGB(168, 0, 196),
		ir.BoolType:      color.New(color.FgCyan),
		ir.FuncType:      color.RGB(198, 198, 46),
		ir.StringType:    color.RGB(8, 196, 16),
	}
	fieldColor     = color.RGB(128, 168, 196)
	objectSepColor = color.RGB(196, 128, 128)
)

func NewColors() *Colors {
	colors := &Colors{Default: colorDefault, Map: map[Colorable]func(string, ...any) string{}}
	set := func(t ir.Type, a ColorAttr, c *color.Color) {
		colors.Map[Colorable{Type: t, Attr: a}] = literally(c)
	}
	for _, t := range ir.Types() {
		set(t, SepColor, sepColor)
		set(t, ErrorColor, errorColor)
		set(t, PathColor, pathColor)
	}
	for t, c := range valueColors {
		set(t, ValueColor, c)
	}
	set(ir.ObjectType, FieldColor, fieldColor)
	set(ir.ObjectType, SepColor, objectSepColor)
	return colors
}

// literally formats its argument as is, escaping verbs.
func literally(c *color.Color) func(string, ...any) string {
	f := c.SprintfFunc()
	return func(v string, _ ...any) string {
		return f(strings.ReplaceAll(v, "%", "%%"))
	}
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(t ir.Type, a ColorAttr, s string) string {
	return c.Get(t, a)(s)
}

func (c *Colors) Get(t ir.Type, a ColorAttr) func(string, ...any) string {
	if f := c.Map[Colorable{Type: t, Attr: a}]; f != nil {
		return f
	}
	if c.Default == nil {
		return colorDefault
	}
	return c.Default
}
