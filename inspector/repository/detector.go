package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/viant/afs"
	"golang.org/x/mod/semver"
)

// ErrNoCrate is returned when no Cargo.toml is found above a location
var ErrNoCrate = errors.New("no Cargo.toml found")

// Detector identifies crate root folders and reads their manifest
type Detector struct {
	// Crate root marker files
	markers []string
	fs      afs.Service
}

// New creates a new crate detector instance
func New() *Detector {
	return &Detector{
		markers: []string{"Cargo.toml"},
		fs:      afs.New(),
	}
}

// DetectCrate identifies the crate root for the given path and returns crate info
func (d *Detector) DetectCrate(ctx context.Context, location string) (*Crate, error) {
	absPath, err := filepath.Abs(location)
	if err != nil {
		return nil, err
	}

	// If the path is a file, start from its parent directory
	startDir := absPath
	fileInfo, err := os.Stat(absPath)
	if err != nil {
		return nil, err
	}
	if !fileInfo.IsDir() {
		startDir = filepath.Dir(absPath)
	}

	rootPath, marker := d.findCrateRoot(startDir)
	if rootPath == "" {
		return nil, fmt.Errorf("%w: %s", ErrNoCrate, location)
	}
	crate := &Crate{
		RootPath: rootPath,
		Name:     filepath.Base(rootPath),
	}
	if err = d.readManifest(ctx, filepath.Join(rootPath, marker), crate); err != nil {
		return nil, err
	}
	return crate, nil
}

// findCrateRoot searches up from the start directory for crate markers
func (d *Detector) findCrateRoot(startDir string) (string, string) {
	dir := startDir
	for {
		for _, marker := range d.markers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, marker
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			// We've reached the filesystem root with no match
			break
		}
		dir = parent
	}
	return "", ""
}

// readManifest fills crate name, version and edition from Cargo.toml
func (d *Detector) readManifest(ctx context.Context, manifestPath string, crate *Crate) error {
	content, err := d.fs.DownloadWithURL(ctx, manifestPath)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", manifestPath, err)
	}
	manifest := &cargoManifest{}
	if err = toml.Unmarshal(content, manifest); err != nil {
		return fmt.Errorf("failed to decode manifest %s: %w", manifestPath, err)
	}
	if manifest.Package == nil {
		return nil
	}
	if manifest.Package.Name != "" {
		crate.Name = manifest.Package.Name
	}
	crate.Edition = manifest.Package.Edition
	if version := manifest.Package.Version; semver.IsValid("v" + version) {
		crate.Version = version
	}
	return nil
}
