package codegen

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/format"
	"go/token"
	"strconv"
	"strings"
	"unicode"

	"github.com/signadot/runtype/debug"
	"github.com/signadot/runtype/schema"
	"golang.org/x/tools/imports"
)

const (
	runtypePath = "github.com/signadot/runtype"
	schemaPath  = "github.com/signadot/runtype/schema"
)

var (
	ErrGen       = errors.New("codegen error")
	ErrIdent     = fmt.Errorf("%w: identifier", ErrGen)
	ErrNoBuiltin = fmt.Errorf("%w: no Go builtin", ErrGen)
)

// irreducibles maps irreducible names to the package level variables of
// package runtype.
var irreducibles = map[string]string{
	"string":   "String",
	"number":   "Number",
	"boolean":  "Boolean",
	"any":      "Any",
	"null":     "Null",
	"void":     "Void",
	"nil":      "Nil",
	"Object":   "Obj",
	"Array":    "Arr",
	"Function": "Function",
}

// Generate renders decls as a Go source file declaring one runtime type
// variable per alias. Exported declarations yield exported variables.
//
// The generated types are named as schema.Build names them.
func Generate(decls []schema.Decl, opts ...GenOption) ([]byte, error) {
	gs := &genState{pkg: "types", header: DefaultHeader, filename: "types.go"}
	for _, o := range opts {
		o(gs)
	}
	if _, err := schema.Build(decls, nil); err != nil {
		return nil, err
	}
	g := &generator{
		aliases: make(map[string]*schema.TypeAlias, len(decls)),
		idents:  make(map[string]string, len(decls)),
	}
	owners := map[string]string{}
	for _, d := range decls {
		a := d.Alias()
		id, err := goIdent(a.Name, schema.Exported(d))
		if err != nil {
			return nil, err
		}
		if prev, dup := owners[id]; dup {
			return nil, fmt.Errorf("%w %s: used by %s and %s", ErrIdent, id, prev, a.Name)
		}
		owners[id] = a.Name
		g.aliases[a.Name] = a
		g.idents[a.Name] = id
	}
	g.graph = buildDependencyGraph(g.aliases)

	file := &ast.File{Name: ast.NewIdent(gs.pkg)}
	var vars []ast.Decl
	for _, d := range decls {
		a := d.Alias()
		e, err := g.expr(a.Type, a.Name)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", a.Name, err)
		}
		if debug.Gen() {
			debug.Logf("generated %s as %s\n", a.Name, g.idents[a.Name])
		}
		vars = append(vars, &ast.GenDecl{
			Tok: token.VAR,
			Specs: []ast.Spec{&ast.ValueSpec{
				Names:  []*ast.Ident{ast.NewIdent(g.idents[a.Name])},
				Values: []ast.Expr{e},
			}},
		})
	}
	if len(vars) != 0 {
		file.Decls = append(file.Decls, g.importDecl())
	}
	file.Decls = append(file.Decls, vars...)

	buf := bytes.NewBufferString(gs.header)
	if gs.header != "" {
		buf.WriteString("\n")
	}
	if err := format.Node(buf, token.NewFileSet(), file); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGen, err)
	}
	src, err := imports.Process(gs.filename, buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGen, err)
	}
	return src, nil
}

type selfScope struct {
	name  string
	param string
}

type generator struct {
	aliases    map[string]*schema.TypeAlias
	idents     map[string]string
	graph      *dependencyGraph
	scopes     []selfScope
	usesSchema bool
}

func (g *generator) importDecl() *ast.GenDecl {
	d := &ast.GenDecl{Tok: token.IMPORT}
	d.Specs = append(d.Specs, &ast.ImportSpec{Path: str(runtypePath)})
	if g.usesSchema {
		d.Specs = append(d.Specs, &ast.ImportSpec{Path: str(schemaPath)})
	}
	return d
}

// expr returns the expression constructing t. name, if not empty, is
// given to t when it is named.
func (g *generator) expr(t schema.Type, name string) (ast.Expr, error) {
	var names []ast.Expr
	if name != "" && schema.Named(t) {
		names = []ast.Expr{str(name)}
	}
	switch x := t.(type) {
	case *schema.LiteralType:
		return literal(x)
	case *schema.IrreducibleType:
		id, ok := irreducibles[x.Name]
		if !ok {
			return nil, fmt.Errorf("%w for irreducible %q", ErrNoBuiltin, x.Name)
		}
		return rt(id), nil
	case *schema.GenericType:
		return g.ref(x.Name)
	case *schema.ObjectType:
		ps, err := g.props(x.Props)
		if err != nil {
			return nil, err
		}
		return call(rt("Object"), append([]ast.Expr{ps}, names...)...), nil
	case *schema.ExactType:
		ps, err := g.props(x.Props)
		if err != nil {
			return nil, err
		}
		return call(rt("Exact"), append([]ast.Expr{ps}, names...)...), nil
	case *schema.ShapeType:
		return g.unary("Shape", x.Type, names)
	case *schema.KeysType:
		return g.unary("Keys", x.Type, names)
	case *schema.ArrayType:
		return g.unary("Array", x.Type, names)
	case *schema.MaybeType:
		return g.unary("Maybe", x.Type, names)
	case *schema.UnionType:
		return g.nary("Union", x.Types, names)
	case *schema.IntersectionType:
		return g.nary("Intersection", x.Types, names)
	case *schema.TupleType:
		return g.nary("Tuple", x.Types, names)
	case *schema.MappingType:
		d, err := g.expr(x.Domain, "")
		if err != nil {
			return nil, err
		}
		c, err := g.expr(x.Codomain, "")
		if err != nil {
			return nil, err
		}
		return call(rt("Mapping"), append([]ast.Expr{d, c}, names...)...), nil
	case *schema.RefinementType:
		inner, err := g.expr(x.Type, "")
		if err != nil {
			return nil, err
		}
		g.usesSchema = true
		args := []ast.Expr{inner, str(x.Predicate)}
		if n := schema.RefinementName(x, name); n != "" {
			args = append(args, str(n))
		}
		return call(sel("schema", "Refine"), args...), nil
	case *schema.RecursionType:
		return g.recursion(x)
	}
	return nil, fmt.Errorf("%w: unsupported type %T", ErrGen, t)
}

func (g *generator) unary(fn string, t schema.Type, names []ast.Expr) (ast.Expr, error) {
	e, err := g.expr(t, "")
	if err != nil {
		return nil, err
	}
	return call(rt(fn), append([]ast.Expr{e}, names...)...), nil
}

func (g *generator) nary(fn string, ts []schema.Type, names []ast.Expr) (ast.Expr, error) {
	elts := make([]ast.Expr, len(ts))
	for i, t := range ts {
		e, err := g.expr(t, "")
		if err != nil {
			return nil, err
		}
		elts[i] = e
	}
	list := &ast.CompositeLit{Type: &ast.ArrayType{Elt: rt("Type")}, Elts: elts}
	return call(rt(fn), append([]ast.Expr{list}, names...)...), nil
}

func (g *generator) props(ps []schema.Prop) (ast.Expr, error) {
	elts := make([]ast.Expr, len(ps))
	for i, p := range ps {
		e, err := g.expr(p.Type, "")
		if err != nil {
			return nil, fmt.Errorf("prop %s: %w", p.Key, err)
		}
		elts[i] = &ast.CompositeLit{Elts: []ast.Expr{
			&ast.KeyValueExpr{Key: ast.NewIdent("Key"), Value: str(p.Key)},
			&ast.KeyValueExpr{Key: ast.NewIdent("Type"), Value: e},
		}}
	}
	return &ast.CompositeLit{Type: rt("Props"), Elts: elts}, nil
}

// ref resolves a reference by name like schema.Build does. A reference to
// an alias which leads back to an enclosing recursion is inlined, as the
// variable would otherwise depend on itself during initialization.
func (g *generator) ref(name string) (ast.Expr, error) {
	for i := len(g.scopes) - 1; i >= 0; i-- {
		if g.scopes[i].name == name {
			return ast.NewIdent(g.scopes[i].param), nil
		}
	}
	if a, ok := g.aliases[name]; ok {
		for _, s := range g.scopes {
			if g.graph.reaches(name, s.name) {
				return g.expr(a.Type, a.Name)
			}
		}
		return ast.NewIdent(g.idents[name]), nil
	}
	if id, ok := irreducibles[name]; ok {
		return rt(id), nil
	}
	return nil, fmt.Errorf("%w: %w %q", ErrGen, schema.ErrUnknownType, name)
}

func (g *generator) recursion(x *schema.RecursionType) (ast.Expr, error) {
	param, err := goIdent(x.Self.Name, false)
	if err != nil {
		return nil, err
	}
	for alias, id := range g.idents {
		if id == param && alias != x.Self.Name {
			param += "Self"
			break
		}
	}
	g.scopes = append(g.scopes, selfScope{name: x.Self.Name, param: param})
	def, err := g.expr(x.Type, "")
	g.scopes = g.scopes[:len(g.scopes)-1]
	if err != nil {
		return nil, err
	}
	fn := &ast.FuncLit{
		Type: &ast.FuncType{
			Params: &ast.FieldList{List: []*ast.Field{{
				Names: []*ast.Ident{ast.NewIdent(param)},
				Type:  rt("Type"),
			}}},
			Results: &ast.FieldList{List: []*ast.Field{{Type: rt("Type")}}},
		},
		Body: &ast.BlockStmt{List: []ast.Stmt{&ast.ReturnStmt{Results: []ast.Expr{def}}}},
	}
	return call(rt("Recursion"), str(x.Self.Name), fn), nil
}

func literal(x *schema.LiteralType) (ast.Expr, error) {
	var e ast.Expr
	switch v := x.Value.(type) {
	case string:
		e = str(v)
	case bool:
		e = ast.NewIdent(strconv.FormatBool(v))
	case float64:
		s := strconv.FormatFloat(v, 'g', -1, 64)
		neg := strings.HasPrefix(s, "-")
		s = strings.TrimPrefix(s, "-")
		// float literals keep the value a float64 as schema.Build has it
		if !strings.ContainsAny(s, ".e") {
			s += ".0"
		}
		e = &ast.BasicLit{Kind: token.FLOAT, Value: s}
		if neg {
			e = &ast.UnaryExpr{Op: token.SUB, X: e}
		}
	default:
		return nil, fmt.Errorf("%w: literal %v", ErrGen, x.Value)
	}
	return call(rt("Literal"), e), nil
}

// goIdent maps an alias name to a Go identifier, exported or not.
func goIdent(name string, exported bool) (string, error) {
	var sb strings.Builder
	for i, r := range name {
		switch {
		case unicode.IsLetter(r) || r == '_':
			if i == 0 {
				if exported {
					r = unicode.ToUpper(r)
				} else {
					r = unicode.ToLower(r)
				}
			}
		case unicode.IsDigit(r) && i != 0:
		default:
			r = '_'
		}
		sb.WriteRune(r)
	}
	id := sb.String()
	if id == "" || id == "_" {
		return "", fmt.Errorf("%w %q", ErrIdent, name)
	}
	if exported && !token.IsExported(id) {
		id = "X" + id
	}
	if token.IsKeyword(id) || id == "runtype" || id == "schema" {
		id += "_"
	}
	return id, nil
}

func str(s string) *ast.BasicLit {
	return &ast.BasicLit{Kind: token.STRING, Value: strconv.Quote(s)}
}

func sel(pkg, name string) *ast.SelectorExpr {
	return &ast.SelectorExpr{X: ast.NewIdent(pkg), Sel: ast.NewIdent(name)}
}

func rt(name string) *ast.SelectorExpr { return sel("runtype", name) }

func call(fn ast.Expr, args ...ast.Expr) *ast.CallExpr {
	return &ast.CallExpr{Fun: fn, Args: args}
}
