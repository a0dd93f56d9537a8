package analyzer

import "github.com/viant/contractflow/inspector/graph"

// Table is an immutable name index of every scanned function with its raw calls.
// The first declaration of a name wins; files are visited in their sorted order.
type Table struct {
	functions map[string]*graph.Function
	calls     map[string][]string
	order     []*graph.Function
}

// NewTable builds the known-function table from scanned files
func NewTable(files ...*graph.File) *Table {
	t := &Table{
		functions: make(map[string]*graph.Function),
		calls:     make(map[string][]string),
	}
	for _, file := range files {
		for _, function := range file.Functions {
			if _, ok := t.functions[function.Name]; ok {
				continue
			}
			t.functions[function.Name] = function
			t.calls[function.Name] = file.RawCalls[function.Name]
			t.order = append(t.order, function)
		}
	}
	return t
}

// Lookup returns the function declared under name
func (t *Table) Lookup(name string) (*graph.Function, bool) {
	function, ok := t.functions[name]
	return function, ok
}

// Calls returns the raw call names of the function declared under name
func (t *Table) Calls(name string) []string {
	return t.calls[name]
}

// Functions returns table entries in declaration order
func (t *Table) Functions() []*graph.Function {
	return t.order
}

// Len returns the number of known names
func (t *Table) Len() int {
	return len(t.order)
}
