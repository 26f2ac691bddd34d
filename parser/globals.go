package parser

import "github.com/m-cat/over/value"

// globalTable is a file's flat `@name` namespace, kept in declaration
// order so the root object can carry it forward for the writer (see
// value.Obj.SetGlobals). It is never shared across files: every run()
// call — top-level or an Obj-kind include — starts with a fresh one, per
// §4.5 step 4 and §8's "globals defined in one included file are not
// visible in another".
type globalTable struct {
	order []string
	vals  map[string]value.Value
}

func newGlobalTable() *globalTable {
	return &globalTable{vals: make(map[string]value.Value)}
}

func (g *globalTable) has(name string) bool {
	_, ok := g.vals[name]

	return ok
}

func (g *globalTable) set(name string, v value.Value) {
	g.order = append(g.order, name)
	g.vals[name] = v
}

func (g *globalTable) get(name string) (value.Value, bool) {
	v, ok := g.vals[name]

	return v, ok
}

func (g *globalTable) entries() []value.Global {
	out := make([]value.Global, len(g.order))
	for i, name := range g.order {
		out[i] = value.Global{Name: name, Val: g.vals[name]}
	}

	return out
}
