package runtype

import (
	"reflect"

	"github.com/signadot/runtype/ir"
)

type LiteralKind string

const (
	StringLiteral  LiteralKind = "string"
	NumberLiteral  LiteralKind = "number"
	BooleanLiteral LiteralKind = "boolean"
)

// LiteralValue is the set of Go types a literal type can be built from.
type LiteralValue interface {
	~string | ~bool |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// LiteralType accepts exactly one string, number or boolean value.
type LiteralType struct {
	name  string
	value *ir.Node
	kind  LiteralKind
}

func Literal[V LiteralValue](v V, name ...string) *LiteralType {
	rv := reflect.ValueOf(v)
	var n *ir.Node
	switch rv.Kind() {
	case reflect.String:
		n = ir.FromString(rv.String())
	case reflect.Bool:
		n = ir.FromBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n = ir.FromInt(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n = ir.FromFloat(float64(rv.Uint()))
	default:
		n = ir.FromFloat(rv.Float())
	}
	return LiteralOf(n, name...)
}

// LiteralOf builds a literal type from a string, number or boolean node.
func LiteralOf(v *ir.Node, name ...string) *LiteralType {
	var kind LiteralKind
	switch typeOf(v) {
	case ir.StringType:
		kind = StringLiteral
	case ir.NumberType:
		kind = NumberLiteral
	case ir.BoolType:
		kind = BooleanLiteral
	default:
		panic(constructionErr("literal: invalid literal kind %s", typeOf(v)))
	}
	return &LiteralType{
		name:  pickName(name, func() string { return ir.ToJSON(v) }),
		value: v,
		kind:  kind,
	}
}

func (t *LiteralType) Name() string { return t.name }
func (t *LiteralType) Kind() Kind   { return KindLiteral }

// Value is the accepted value. It must not be modified.
func (t *LiteralType) Value() *ir.Node          { return t.value }
func (t *LiteralType) LiteralKind() LiteralKind { return t.kind }

func (t *LiteralType) Validate(v *ir.Node, c Context) Validation {
	if v != nil && v.Type == t.value.Type {
		switch v.Type {
		case ir.StringType:
			if v.String == t.value.String {
				return success(v)
			}
		case ir.NumberType:
			if v.Number == t.value.Number {
				return success(v)
			}
		case ir.BoolType:
			if v.Bool == t.value.Bool {
				return success(v)
			}
		}
	}
	return failure(v, c)
}
