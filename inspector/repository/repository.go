package repository

import "path/filepath"

// Crate represents information about a detected Rust crate
type Crate struct {
	RootPath     string // Absolute path to the directory holding Cargo.toml
	Name         string // Package name from Cargo.toml, directory name as fallback
	Version      string // Package version when it is a valid semantic version
	Edition      string
}

// SourcePath returns the directory scanning starts from: src when present, else the crate root
func (c *Crate) SourcePath() string {
	src := filepath.Join(c.RootPath, "src")
	if isDir(src) {
		return src
	}
	return c.RootPath
}

// cargoManifest holds the Cargo.toml fields used for crate detection
type cargoManifest struct {
	Package *struct {
		Name    string `toml:"name"`
		Version string `toml:"version"`
		Edition string `toml:"edition"`
	} `toml:"package"`
}
