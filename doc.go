// Package runtype validates dynamic values against runtime types.
//
// A runtime type is built from constructor functions, from leaves such as
// [String] and [Number] up through combinators such as [Array], [Union],
// [Object] and [Recursion]:
//
//	person := runtype.Object(runtype.Props{
//		{Key: "name", Type: runtype.String},
//		{Key: "age", Type: runtype.Maybe(runtype.Number)},
//	}, "Person")
//
//	r := runtype.Validate(v, person)
//
// Validation walks the value and the type together, recording the path
// taken in a [Context]. A Validation is either the accepted value, which
// is the input node itself unless some type transformed part of it, or
// the list of every [ValidationError] found. Errors from sibling values
// are all collected; only a [Union] stops at its first accepting member.
//
// Every type has a name. Constructors derive one from the names of their
// children, and accept an explicit name as an optional last argument.
// Names label the path in error descriptions:
//
//	Invalid value "x" supplied to Person/age: ?number
//
// Types are immutable and safe for concurrent use.
package runtype
