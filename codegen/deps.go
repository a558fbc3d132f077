package codegen

import "github.com/signadot/runtype/schema"

// dependencyGraph has an edge A -> B when the type of alias A refers to
// alias B by name.
type dependencyGraph struct {
	edges map[string][]string
}

func buildDependencyGraph(aliases map[string]*schema.TypeAlias) *dependencyGraph {
	g := &dependencyGraph{edges: make(map[string][]string, len(aliases))}
	for name, a := range aliases {
		seen := map[string]bool{}
		findReferences(a.Type, func(ref string) {
			if _, ok := aliases[ref]; ok && !seen[ref] {
				seen[ref] = true
				g.edges[name] = append(g.edges[name], ref)
			}
		})
	}
	return g
}

// findReferences calls f with every GenericType name in t.
func findReferences(t schema.Type, f func(string)) {
	switch x := t.(type) {
	case *schema.GenericType:
		f(x.Name)
	case *schema.ObjectType:
		for _, p := range x.Props {
			findReferences(p.Type, f)
		}
	case *schema.ExactType:
		for _, p := range x.Props {
			findReferences(p.Type, f)
		}
	case *schema.UnionType:
		for _, e := range x.Types {
			findReferences(e, f)
		}
	case *schema.IntersectionType:
		for _, e := range x.Types {
			findReferences(e, f)
		}
	case *schema.TupleType:
		for _, e := range x.Types {
			findReferences(e, f)
		}
	case *schema.MappingType:
		findReferences(x.Domain, f)
		findReferences(x.Codomain, f)
	case *schema.ArrayType:
		findReferences(x.Type, f)
	case *schema.MaybeType:
		findReferences(x.Type, f)
	case *schema.ShapeType:
		findReferences(x.Type, f)
	case *schema.KeysType:
		findReferences(x.Type, f)
	case *schema.RefinementType:
		findReferences(x.Type, f)
	case *schema.RecursionType:
		findReferences(x.Type, f)
	}
}

// reaches reports whether target is reachable from the alias from.
func (g *dependencyGraph) reaches(from, target string) bool {
	visited := map[string]bool{}
	var dfs func(string) bool
	dfs = func(n string) bool {
		if visited[n] {
			return false
		}
		visited[n] = true
		for _, dep := range g.edges[n] {
			if dep == target || dfs(dep) {
				return true
			}
		}
		return false
	}
	return dfs(from)
}
