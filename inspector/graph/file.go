package graph

// File represents a scanned source file with its classified functions and raw calls
type File struct {
	Name      string              `yaml:"name"`
	Path      string              `yaml:"path"`
	Hash      uint64              `yaml:"hash,omitempty"` // Content hash of the source
	Functions []*Function         `yaml:"functions,omitempty"`
	RawCalls  map[string][]string `yaml:"rawCalls,omitempty"` // Unresolved call names keyed by function name

	functionMap map[string]int // Map of functions for quick lookup
}

// AddFunction adds a function together with its raw call names.
// The first declaration of a name owns the raw call entry.
func (f *File) AddFunction(function *Function, calls []string) {
	if f.RawCalls == nil {
		f.RawCalls = make(map[string][]string)
	}
	declared := f.HasFunction(function.Name)
	f.Functions = append(f.Functions, function)
	if declared {
		return
	}
	f.functionMap[function.Name] = len(f.Functions) - 1
	f.RawCalls[function.Name] = calls
}

// LookupFunction retrieves a function by name from the file
func (f *File) LookupFunction(name string) *Function {
	if len(f.functionMap) == 0 {
		f.IndexFunctions()
	}
	if idx, ok := f.functionMap[name]; ok && idx < len(f.Functions) {
		return f.Functions[idx]
	}
	return nil
}

// HasFunction checks if a function with the given name exists in the file
func (f *File) HasFunction(name string) bool {
	return f.LookupFunction(name) != nil
}

// Calls returns raw call names recorded for the function
func (f *File) Calls(name string) []string {
	return f.RawCalls[name]
}

func (f *File) IndexFunctions() {
	f.functionMap = make(map[string]int)
	for i, function := range f.Functions {
		if function == nil {
			continue
		}
		if _, ok := f.functionMap[function.Name]; !ok {
			f.functionMap[function.Name] = i
		}
	}
}
