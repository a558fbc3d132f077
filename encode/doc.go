// Package encode renders IR nodes as JSON or YAML text.
//
// # Usage
//
//	node := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "name", Val: ir.FromString("alice")},
//	    {Key: "age", Val: ir.FromInt(30)},
//	})
//	err := encode.Encode(node, os.Stdout)
//
//	// YAML with terminal colors
//	err = encode.Encode(node, os.Stdout,
//	    encode.EncodeFormat(encode.YAMLFormat),
//	    encode.EncodeColors(encode.NewColors()))
//
// Undefined values and functions are left out of objects and render as
// null inside arrays, as a JSON serializer of the dynamic value space
// would do.
package encode
