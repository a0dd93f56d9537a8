package graph

import (
	"path/filepath"
)

// Project represents a scanned crate with all of its source files
type Project struct {
	Name     string  `yaml:"name"`
	Version  string  `yaml:"version,omitempty"`
	Edition  string  `yaml:"edition,omitempty"` // Rust edition declared in Cargo.toml
	RootPath string  `yaml:"rootPath"`
	Files    []*File `yaml:"files,omitempty"`
}

// Functions returns every scanned function in file then declaration order
func (p *Project) Functions() []*Function {
	var result []*Function
	for _, file := range p.Files {
		result = append(result, file.Functions...)
	}
	return result
}

// Init updates file paths to be relative to project root
func (p *Project) Init() {
	if p.RootPath == "" {
		return
	}
	for _, file := range p.Files {
		if file.Path == "" {
			continue
		}
		relPath, err := filepath.Rel(p.RootPath, file.Path)
		if err != nil {
			continue
		}
		file.Name = filepath.Base(file.Path)
		file.Path = filepath.ToSlash(relPath)
		for _, function := range file.Functions {
			if function.Location != nil {
				function.Location.Path = file.Path
			}
		}
	}
}
