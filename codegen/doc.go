// Package codegen generates Go source declaring runtime types from schema
// declarations.
//
// For
//
//	export type Point = {| x: number, y: number |}
//
// Generate produces
//
//	var Point = runtype.Exact(runtype.Props{{Key: "x", Type: runtype.Number}, {Key: "y", Type: runtype.Number}}, "Point")
//
// Recursive aliases become runtype.Recursion calls. Refinements call
// schema.Refine so their predicates are compiled when the package is
// initialized.
package codegen
