package inspector

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/viant/contractflow/inspector/graph"
	"github.com/viant/contractflow/inspector/rust"
)

// Inspector provides an interface for inspecting contract source code
type Inspector interface {
	// InspectSource parses source code from a byte slice and classifies its functions
	InspectSource(src []byte) (*graph.File, error)

	// InspectFile parses a source file and classifies its functions
	InspectFile(ctx context.Context, filename string) (*graph.File, error)

	// InspectProject detects the project holding location and inspects all of its sources
	InspectProject(ctx context.Context, location string) (*graph.Project, error)
}

// Factory creates appropriate inspectors based on language
type Factory struct {
	config *graph.Config
}

// NewFactory creates a new inspector factory with the given config
func NewFactory(config *graph.Config) *Factory {
	if config == nil {
		config = graph.DefaultConfig()
	}
	config.Init()
	return &Factory{
		config: config,
	}
}

// GetInspector returns an appropriate inspector based on file extension
func (f *Factory) GetInspector(filename string) (Inspector, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".rs":
		return rust.NewInspector(f.config), nil
	default:
		return nil, fmt.Errorf("unsupported file type: %s", ext)
	}
}

// InspectFile is a convenience method that gets the appropriate inspector and inspects the file
func (f *Factory) InspectFile(ctx context.Context, filename string) (*graph.File, error) {
	inspector, err := f.GetInspector(filename)
	if err != nil {
		return nil, err
	}
	return inspector.InspectFile(ctx, filename)
}

// InspectProject inspects the crate holding location
func (f *Factory) InspectProject(ctx context.Context, location string) (*graph.Project, error) {
	return rust.NewInspector(f.config).InspectProject(ctx, location)
}
