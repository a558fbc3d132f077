package ir

import (
	"maps"
	"math"
	"slices"
	"strconv"
)

// Node is a dynamic value. Fields and Values are parallel for objects, Values
// holds the elements of arrays. Composite nodes are compared by pointer
// identity when a validator needs to know whether anything changed.
type Node struct {
	Type   Type
	Fields []string
	Values []*Node

	String string
	Bool   bool
	Number float64

	// Func is set for FuncType nodes.
	Func *Func
	// Class is set for ObjectType nodes which are instances of a class.
	Class *Class
}

// Func describes a callable value. A Func with a Class is a constructor.
type Func struct {
	Name  string
	Arity int
	Class *Class
}

// DisplayName is the function name, or <function{arity}> when anonymous.
func (f *Func) DisplayName() string {
	if f.Name != "" {
		return f.Name
	}
	if f.Class != nil && f.Class.Name != "" {
		return f.Class.Name
	}
	return "<function" + strconv.Itoa(f.Arity) + ">"
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromInt(v int64) *Node {
	return &Node{Type: NumberType, Number: float64(v)}
}

func FromFloat(f float64) *Node {
	return &Node{Type: NumberType, Number: f}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func Null() *Node {
	return &Node{Type: NullType}
}

func Undefined() *Node {
	return &Node{Type: UndefinedType}
}

func FromFunc(name string, arity int) *Node {
	return &Node{Type: FuncType, Func: &Func{Name: name, Arity: arity}}
}

// FromClass returns the constructor value of c.
func FromClass(c *Class) *Node {
	return &Node{Type: FuncType, Func: &Func{Name: c.Name, Class: c}}
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{Type: ArrayType}
	res.Values = make([]*Node, len(ySlice))
	copy(res.Values, ySlice)
	return res
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals builds an object keeping the order of kvs. A repeated key
// replaces the earlier value in place.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{Type: ObjectType}
	res.Fields = make([]string, 0, len(kvs))
	res.Values = make([]*Node, 0, len(kvs))
	for _, kv := range kvs {
		res.Set(kv.Key, kv.Val)
	}
	return res
}

// FromMap builds an object with sorted keys.
func FromMap(yMap map[string]*Node) *Node {
	res := &Node{Type: ObjectType}
	keys := slices.Sorted(maps.Keys(yMap))
	res.Fields = keys
	res.Values = make([]*Node, len(keys))
	for i, key := range keys {
		res.Values[i] = yMap[key]
	}
	return res
}

// NewInstance builds an object which is an instance of c.
func NewInstance(c *Class, kvs ...KeyVal) *Node {
	res := FromKeyVals(kvs)
	res.Class = c
	return res
}

// Index returns the position of field in y, or -1.
func (y *Node) Index(field string) int {
	if y.Type != ObjectType {
		return -1
	}
	return slices.Index(y.Fields, field)
}

func Get(y *Node, field string) *Node {
	i := y.Index(field)
	if i < 0 {
		return nil
	}
	return y.Values[i]
}

func Has(y *Node, field string) bool {
	return y.Index(field) >= 0
}

// Set assigns field in an object node, appending it if absent.
func (y *Node) Set(field string, v *Node) {
	if i := y.Index(field); i >= 0 {
		y.Values[i] = v
		return
	}
	y.Fields = append(y.Fields, field)
	y.Values = append(y.Values, v)
}

// ShallowCopy copies y and its Fields/Values slices but shares children.
func (y *Node) ShallowCopy() *Node {
	res := *y
	res.Fields = slices.Clone(y.Fields)
	res.Values = slices.Clone(y.Values)
	return &res
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	*dst = *y
	dst.Fields = slices.Clone(y.Fields)
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
		for i, yv := range y.Values {
			dst.Values[i] = yv.Clone()
		}
	}
	if y.Func != nil {
		f := *y.Func
		dst.Func = &f
	}
	return dst
}

// IsFinite reports whether y is a number which is neither infinite nor NaN.
func (y *Node) IsFinite() bool {
	return y.Type == NumberType && !math.IsInf(y.Number, 0) && !math.IsNaN(y.Number)
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}
