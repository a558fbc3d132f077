// Package ir provides the dynamic value representation checked by runtype
// validators.
//
// # Overview
//
// A Node represents a single value from an untrusted source: a decoded JSON
// or YAML document, or a value built programmatically. The IR is a closed
// tagged union, values are placed in fields depending on the node type.
//
// # Node Types
//
//   - UndefinedType: an absent value
//   - NullType: null
//   - BoolType: boolean, in Bool
//   - NumberType: IEEE double, in Number
//   - StringType: string, in String
//   - ArrayType: ordered list of nodes in Values
//   - ObjectType: keys in Fields, values at the same index in Values
//   - FuncType: a callable reference described by Func
//
// Objects may additionally carry a Class, making them instances. A FuncType
// whose Func has a Class is a constructor. Classes link to their super class,
// which is how instance and subclass checks are answered without any host
// language reflection.
//
// # Identity
//
// Validators return the very same *Node they were given when nothing needed
// to change. Callers may rely on pointer equality to detect that.
//
// # Creating Nodes
//
//	obj := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "name", Val: ir.FromString("ada")},
//	    {Key: "age", Val: ir.FromInt(36)},
//	})
//	arr := ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})
//	doc, err := ir.Decode([]byte(`{"a": [1, 2]}`))
package ir
