package parse

type parseState struct {
	noComments bool
}

type ParseOption func(*parseState)

// NoComments drops comments instead of attaching them to statements.
func NoComments() ParseOption {
	return func(ps *parseState) { ps.noComments = true }
}
