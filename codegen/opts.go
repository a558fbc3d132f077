package codegen

const DefaultHeader = "// Code generated by rt gen. DO NOT EDIT.\n"

type genState struct {
	pkg      string
	header   string
	filename string
}

type GenOption func(*genState)

// Package sets the package clause, "types" by default.
func Package(name string) GenOption {
	return func(gs *genState) { gs.pkg = name }
}

// Header replaces the leading comment of the file. An empty header
// omits it.
func Header(h string) GenOption {
	return func(gs *genState) { gs.header = h }
}

// FileName is the name of the file being generated, used when resolving
// imports.
func FileName(name string) GenOption {
	return func(gs *genState) { gs.filename = name }
}
