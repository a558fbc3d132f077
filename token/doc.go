// Package token tokenizes type annotation source: sequences of
//
//	// recursive
//	export type Tree = { value: number, children: Array<Tree> };
//
// declarations. Comments are kept as tokens so that a parser can attach
// them to the declaration which follows.
//
// [Tokenize] is a function for tokenizing bytes.
package token
