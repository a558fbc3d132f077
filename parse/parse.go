// Package parse parses type alias declarations into an [ast.Program].
//
// The accepted language is the declaration subset of Flow:
//
//	// recursive
//	export type T = {| a: number, b?: ?T, [k: string]: Array<string> |};
//
// Within annotations, | binds loosest, then &, then prefix ?, then
// postfix [].
package parse

import (
	"fmt"
	"strconv"

	"github.com/signadot/runtype/ast"
	"github.com/signadot/runtype/debug"
	"github.com/signadot/runtype/token"
)

// Parse parses src.
func Parse(src []byte, opts ...ParseOption) (*ast.Program, error) {
	ps := &parseState{}
	for _, o := range opts {
		o(ps)
	}
	toks, err := token.Tokenize(nil, src)
	if err != nil {
		return nil, err
	}
	prog := &ast.Program{}
	i := 0
	for {
		comments := leadingComments(toks, &i, ps)
		if i == len(toks) {
			break
		}
		stmt, err := parseStatement(toks, &i, comments)
		if err != nil {
			return nil, err
		}
		prog.Body = append(prog.Body, stmt)
	}
	if debug.Parse() {
		for _, s := range prog.Body {
			a := ast.Alias(s)
			debug.Logf("parsed %s = %s\n", a.ID.Name, ast.String(a.Right))
		}
	}
	return prog, nil
}

// ParseAnnotation parses a single annotation, such as `?Array<T>`.
func ParseAnnotation(src []byte) (ast.Annotation, error) {
	toks, err := token.Tokenize(nil, src)
	if err != nil {
		return nil, err
	}
	toks = dropComments(toks)
	i := 0
	a, err := parseUnion(toks, &i)
	if err != nil {
		return nil, err
	}
	if i != len(toks) {
		return nil, unexpected(&toks[i], "end of input")
	}
	return a, nil
}

func leadingComments(toks []token.Token, pi *int, ps *parseState) []*ast.Comment {
	var res []*ast.Comment
	i := *pi
	for i < len(toks) {
		switch toks[i].Type {
		case token.TComment:
			if !ps.noComments {
				res = append(res, comment(&toks[i]))
			}
		case token.TSemi:
		default:
			*pi = i
			return res
		}
		i++
	}
	*pi = i
	return res
}

func comment(tok *token.Token) *ast.Comment {
	return &ast.Comment{
		At:    ast.At{P: tok.Pos},
		Value: tok.String(),
		Block: tok.Bytes[1] == '*',
	}
}

// dropComments removes comments, which are only meaningful between
// statements.
func dropComments(toks []token.Token) []token.Token {
	res := toks[:0:0]
	for i := range toks {
		if toks[i].Type != token.TComment {
			res = append(res, toks[i])
		}
	}
	return res
}

func parseStatement(toks []token.Token, pi *int, comments []*ast.Comment) (ast.Statement, error) {
	tok := &toks[*pi]
	switch tok.Type {
	case token.TExport:
		*pi++
		skipComments(toks, pi)
		alias, err := parseAlias(toks, pi, nil)
		if err != nil {
			return nil, err
		}
		return &ast.ExportNamedDeclaration{
			At:              ast.At{P: tok.Pos},
			Declaration:     alias,
			LeadingComments: comments,
		}, nil
	case token.TType:
		return parseAlias(toks, pi, comments)
	default:
		return nil, unexpected(tok, "type or export")
	}
}

// skipComments advances past comments, such as those between export
// and type.
func skipComments(toks []token.Token, pi *int) {
	for *pi < len(toks) && toks[*pi].Type == token.TComment {
		*pi++
	}
}

func parseAlias(toks []token.Token, pi *int, comments []*ast.Comment) (*ast.TypeAlias, error) {
	kw, err := expect(toks, pi, token.TType, "type")
	if err != nil {
		return nil, err
	}
	id, err := parseIdent(toks, pi)
	if err != nil {
		return nil, err
	}
	alias := &ast.TypeAlias{
		At:              ast.At{P: kw.Pos},
		ID:              id,
		LeadingComments: comments,
	}
	if peek(toks, *pi) == token.TLAngle {
		*pi++
		for {
			p, err := parseIdent(toks, pi)
			if err != nil {
				return nil, err
			}
			alias.TypeParameters = append(alias.TypeParameters, p)
			if peek(toks, *pi) != token.TComma {
				break
			}
			*pi++
		}
		if _, err := expect(toks, pi, token.TRAngle, ">"); err != nil {
			return nil, err
		}
	}
	if _, err := expect(toks, pi, token.TEq, "="); err != nil {
		return nil, err
	}
	// comments inside the annotation are dropped; those after it lead
	// the next statement.
	end := statementEnd(toks, *pi)
	body := dropComments(toks[*pi:end])
	j := 0
	right, err := parseUnion(body, &j)
	if err != nil {
		return nil, err
	}
	if j != len(body) {
		return nil, unexpected(&body[j], "end of declaration")
	}
	alias.Right = right
	*pi = end
	if peek(toks, *pi) == token.TSemi {
		*pi++
	}
	return alias, nil
}

// statementEnd finds the index of the token ending the declaration
// starting at i: a top level semicolon, or a type or export keyword
// outside any brackets.
func statementEnd(toks []token.Token, i int) int {
	depth := 0
	for ; i < len(toks); i++ {
		switch toks[i].Type {
		case token.TLCurl, token.TLExact, token.TLSquare, token.TLParen, token.TLAngle:
			depth++
		case token.TRCurl, token.TRExact, token.TRSquare, token.TRParen, token.TRAngle:
			depth--
		case token.TSemi:
			if depth <= 0 {
				return i
			}
		case token.TType, token.TExport:
			if depth <= 0 {
				return lastCode(toks, i)
			}
		}
	}
	return i
}

// lastCode backs up over the comments preceding index i, which lead the
// next statement.
func lastCode(toks []token.Token, i int) int {
	for i > 0 && toks[i-1].Type == token.TComment {
		i--
	}
	return i
}

func parseUnion(toks []token.Token, pi *int) (ast.Annotation, error) {
	pos := posAt(toks, *pi)
	// a leading | is permitted
	if peek(toks, *pi) == token.TPipe {
		*pi++
	}
	first, err := parseIntersection(toks, pi)
	if err != nil {
		return nil, err
	}
	if peek(toks, *pi) != token.TPipe {
		return first, nil
	}
	u := &ast.UnionTypeAnnotation{At: ast.At{P: pos}, Types: []ast.Annotation{first}}
	for peek(toks, *pi) == token.TPipe {
		*pi++
		next, err := parseIntersection(toks, pi)
		if err != nil {
			return nil, err
		}
		u.Types = append(u.Types, next)
	}
	return u, nil
}

func parseIntersection(toks []token.Token, pi *int) (ast.Annotation, error) {
	pos := posAt(toks, *pi)
	if peek(toks, *pi) == token.TAmp {
		*pi++
	}
	first, err := parsePrefix(toks, pi)
	if err != nil {
		return nil, err
	}
	if peek(toks, *pi) != token.TAmp {
		return first, nil
	}
	x := &ast.IntersectionTypeAnnotation{At: ast.At{P: pos}, Types: []ast.Annotation{first}}
	for peek(toks, *pi) == token.TAmp {
		*pi++
		next, err := parsePrefix(toks, pi)
		if err != nil {
			return nil, err
		}
		x.Types = append(x.Types, next)
	}
	return x, nil
}

func parsePrefix(toks []token.Token, pi *int) (ast.Annotation, error) {
	if peek(toks, *pi) != token.TQuestion {
		return parsePostfix(toks, pi)
	}
	pos := toks[*pi].Pos
	*pi++
	inner, err := parsePrefix(toks, pi)
	if err != nil {
		return nil, err
	}
	return &ast.NullableTypeAnnotation{At: ast.At{P: pos}, TypeAnnotation: inner}, nil
}

func parsePostfix(toks []token.Token, pi *int) (ast.Annotation, error) {
	pos := posAt(toks, *pi)
	a, err := parsePrimary(toks, pi)
	if err != nil {
		return nil, err
	}
	for peek(toks, *pi) == token.TLSquare && peek(toks, *pi+1) == token.TRSquare {
		*pi += 2
		a = &ast.ArrayTypeAnnotation{At: ast.At{P: pos}, ElementType: a}
	}
	return a, nil
}

func parsePrimary(toks []token.Token, pi *int) (ast.Annotation, error) {
	if *pi >= len(toks) {
		return nil, ErrEOF
	}
	tok := &toks[*pi]
	at := ast.At{P: tok.Pos}
	switch tok.Type {
	case token.TIdent:
		return parseGeneric(toks, pi)
	case token.TString:
		*pi++
		s, err := token.Unquote(string(tok.Bytes))
		if err != nil {
			return nil, &ParseErr{Err: fmt.Errorf("%w: %w", ErrParse, err), Pos: tok.Pos}
		}
		return &ast.StringLiteralTypeAnnotation{At: at, Value: s}, nil
	case token.TNumber:
		*pi++
		f, err := strconv.ParseFloat(string(tok.Bytes), 64)
		if err != nil {
			return nil, &ParseErr{Err: fmt.Errorf("%w: %w", ErrParse, err), Pos: tok.Pos}
		}
		return &ast.NumberLiteralTypeAnnotation{At: at, Value: f, Raw: string(tok.Bytes)}, nil
	case token.TTrue, token.TFalse:
		*pi++
		return &ast.BooleanLiteralTypeAnnotation{At: at, Value: tok.Type == token.TTrue}, nil
	case token.TLCurl, token.TLExact:
		return parseObject(toks, pi)
	case token.TLSquare:
		return parseTuple(toks, pi)
	case token.TLParen:
		*pi++
		inner, err := parseUnion(toks, pi)
		if err != nil {
			return nil, err
		}
		if _, err := expect(toks, pi, token.TRParen, ")"); err != nil {
			return nil, err
		}
		return inner, nil
	default:
		return nil, unexpected(tok, "type annotation")
	}
}

// builtins maps the names which denote a leaf annotation when used
// without type parameters.
var builtins = map[string]func(ast.At) ast.Annotation{
	"string":  func(a ast.At) ast.Annotation { return &ast.StringTypeAnnotation{At: a} },
	"number":  func(a ast.At) ast.Annotation { return &ast.NumberTypeAnnotation{At: a} },
	"boolean": func(a ast.At) ast.Annotation { return &ast.BooleanTypeAnnotation{At: a} },
	"any":     func(a ast.At) ast.Annotation { return &ast.AnyTypeAnnotation{At: a} },
	"mixed":   func(a ast.At) ast.Annotation { return &ast.MixedTypeAnnotation{At: a} },
	"void":    func(a ast.At) ast.Annotation { return &ast.VoidTypeAnnotation{At: a} },
	"null":    func(a ast.At) ast.Annotation { return &ast.NullLiteralTypeAnnotation{At: a} },
}

func parseGeneric(toks []token.Token, pi *int) (ast.Annotation, error) {
	id, err := parseIdent(toks, pi)
	if err != nil {
		return nil, err
	}
	if peek(toks, *pi) != token.TLAngle {
		if f, ok := builtins[id.Name]; ok {
			return f(id.At), nil
		}
		return &ast.GenericTypeAnnotation{At: id.At, ID: id}, nil
	}
	*pi++
	g := &ast.GenericTypeAnnotation{At: id.At, ID: id}
	for {
		p, err := parseUnion(toks, pi)
		if err != nil {
			return nil, err
		}
		g.TypeParameters = append(g.TypeParameters, p)
		if peek(toks, *pi) != token.TComma {
			break
		}
		*pi++
	}
	if _, err := expect(toks, pi, token.TRAngle, ">"); err != nil {
		return nil, err
	}
	return g, nil
}

func parseTuple(toks []token.Token, pi *int) (ast.Annotation, error) {
	open := &toks[*pi]
	*pi++
	tup := &ast.TupleTypeAnnotation{At: ast.At{P: open.Pos}, Types: []ast.Annotation{}}
	for peek(toks, *pi) != token.TRSquare {
		t, err := parseUnion(toks, pi)
		if err != nil {
			return nil, err
		}
		tup.Types = append(tup.Types, t)
		if peek(toks, *pi) != token.TComma {
			break
		}
		*pi++
	}
	if _, err := expect(toks, pi, token.TRSquare, "]"); err != nil {
		return nil, err
	}
	return tup, nil
}

func parseObject(toks []token.Token, pi *int) (ast.Annotation, error) {
	open := &toks[*pi]
	*pi++
	obj := &ast.ObjectTypeAnnotation{
		At:    ast.At{P: open.Pos},
		Exact: open.Type == token.TLExact,
	}
	closer, closeText := token.TRCurl, "}"
	if obj.Exact {
		closer, closeText = token.TRExact, "|}"
	}
	seen := map[string]bool{}
	for peek(toks, *pi) != closer {
		if *pi >= len(toks) {
			return nil, ErrEOF
		}
		if toks[*pi].Type == token.TLSquare {
			ix, err := parseIndexer(toks, pi)
			if err != nil {
				return nil, err
			}
			obj.Indexers = append(obj.Indexers, ix)
		} else {
			prop, err := parseProperty(toks, pi)
			if err != nil {
				return nil, err
			}
			if seen[prop.Key.Name] {
				return nil, &ParseErr{Err: fmt.Errorf("%w %q", ErrDupKey, prop.Key.Name), Pos: prop.Pos()}
			}
			seen[prop.Key.Name] = true
			obj.Properties = append(obj.Properties, prop)
		}
		switch peek(toks, *pi) {
		case token.TComma, token.TSemi:
			*pi++
			continue
		}
		break
	}
	if _, err := expect(toks, pi, closer, closeText); err != nil {
		return nil, err
	}
	return obj, nil
}

func parseProperty(toks []token.Token, pi *int) (*ast.ObjectTypeProperty, error) {
	tok := &toks[*pi]
	var key *ast.Identifier
	switch tok.Type {
	case token.TIdent, token.TType, token.TExport, token.TTrue, token.TFalse, token.TString:
		key = &ast.Identifier{At: ast.At{P: tok.Pos}, Name: tok.String()}
		*pi++
	default:
		return nil, unexpected(tok, "property key")
	}
	prop := &ast.ObjectTypeProperty{At: key.At, Key: key}
	if peek(toks, *pi) == token.TQuestion {
		prop.Optional = true
		*pi++
	}
	if _, err := expect(toks, pi, token.TColon, ":"); err != nil {
		return nil, err
	}
	v, err := parseUnion(toks, pi)
	if err != nil {
		return nil, err
	}
	prop.Value = v
	return prop, nil
}

// parseIndexer parses [k: K]: V or [K]: V.
func parseIndexer(toks []token.Token, pi *int) (*ast.ObjectTypeIndexer, error) {
	open := &toks[*pi]
	*pi++
	ix := &ast.ObjectTypeIndexer{At: ast.At{P: open.Pos}}
	if peek(toks, *pi) == token.TIdent && peek(toks, *pi+1) == token.TColon {
		id, err := parseIdent(toks, pi)
		if err != nil {
			return nil, err
		}
		ix.ID = id
		*pi++
	}
	k, err := parseUnion(toks, pi)
	if err != nil {
		return nil, err
	}
	ix.Key = k
	if _, err := expect(toks, pi, token.TRSquare, "]"); err != nil {
		return nil, err
	}
	if _, err := expect(toks, pi, token.TColon, ":"); err != nil {
		return nil, err
	}
	v, err := parseUnion(toks, pi)
	if err != nil {
		return nil, err
	}
	ix.Value = v
	return ix, nil
}

func parseIdent(toks []token.Token, pi *int) (*ast.Identifier, error) {
	tok, err := expect(toks, pi, token.TIdent, "identifier")
	if err != nil {
		return nil, err
	}
	return &ast.Identifier{At: ast.At{P: tok.Pos}, Name: string(tok.Bytes)}, nil
}

func expect(toks []token.Token, pi *int, tt token.TokenType, what string) (*token.Token, error) {
	if *pi >= len(toks) {
		return nil, fmt.Errorf("%w, expected %s", ErrEOF, what)
	}
	tok := &toks[*pi]
	if tok.Type != tt {
		return nil, unexpected(tok, what)
	}
	*pi++
	return tok, nil
}

// peek returns the type of the token at i, or -1 past the end.
func peek(toks []token.Token, i int) token.TokenType {
	if i < 0 || i >= len(toks) {
		return -1
	}
	return toks[i].Type
}

func posAt(toks []token.Token, i int) *token.Pos {
	if i >= len(toks) {
		return nil
	}
	return toks[i].Pos
}
