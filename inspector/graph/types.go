package graph

// Function represents a classified function or method declaration
type Function struct {
	Name               string      `yaml:"name"`
	Receiver           string      `yaml:"receiver,omitempty"` // Type named by the enclosing impl block
	Trait              string      `yaml:"trait,omitempty"`    // Trait implemented by the enclosing impl block
	IsPublic           bool        `yaml:"isPublic,omitempty"`
	IsTraitImpl        bool        `yaml:"isTraitImpl,omitempty"`
	IsInit             bool        `yaml:"isInit,omitempty"`
	IsPayable          bool        `yaml:"isPayable,omitempty"`
	IsView             bool        `yaml:"isView,omitempty"`
	IsMutable          bool        `yaml:"isMutable,omitempty"`
	IsProcess          bool        `yaml:"isProcess,omitempty"`
	IsPrivateCrossCall bool        `yaml:"isPrivateCrossCall,omitempty"`
	IsOutOfScope       bool        `yaml:"isOutOfScope,omitempty"`
	IsEvent            bool        `yaml:"isEvent,omitempty"`
	InnerCalls         []*Function `yaml:"innerCalls,omitempty"` // Resolved callees, owned copies
	Location           *Location   `yaml:"location,omitempty"`
}

// IsEntryPoint reports whether the function belongs on the contract surface
func (f *Function) IsEntryPoint() bool {
	return f.IsPublic && !f.IsOutOfScope && !f.IsEvent
}

// IsCallable reports whether the function may appear as a resolved callee.
// Value-accepting and initializer functions are only reachable from outside.
func (f *Function) IsCallable() bool {
	return !f.IsPayable && !f.IsInit
}

// Clone returns a copy of the function without its resolved inner calls
func (f *Function) Clone() *Function {
	clone := *f
	clone.InnerCalls = nil
	if f.Location != nil {
		location := *f.Location
		clone.Location = &location
	}
	return &clone
}

// Location represents a declaration position in the source code
type Location struct {
	Path  string `yaml:"path,omitempty"`
	Line  int    `yaml:"line"`
	Start int    `yaml:"start"`
	End   int    `yaml:"end"`
}
