package ir

import "fmt"

// Type is the variant of a Node.
type Type int

const (
	UndefinedType Type = iota
	NullType
	BoolType
	NumberType
	StringType
	ArrayType
	ObjectType
	FuncType

	numTypes
)

var typeNames = [numTypes]string{
	UndefinedType: "Undefined",
	NullType:      "Null",
	BoolType:      "Bool",
	NumberType:    "Number",
	StringType:    "String",
	ArrayType:     "Array",
	ObjectType:    "Object",
	FuncType:      "Func",
}

func (t Type) String() string {
	if t < 0 || t >= numTypes {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	for i, name := range typeNames {
		if name == string(d) {
			*t = Type(i)
			return nil
		}
	}
	return fmt.Errorf("unrecognized type %q", d)
}

// Types returns every Type in declaration order.
func Types() []Type {
	res := make([]Type, numTypes)
	for i := range res {
		res[i] = Type(i)
	}
	return res
}

// IsNil reports whether t is null or undefined.
func (t Type) IsNil() bool {
	return t == NullType || t == UndefinedType
}
