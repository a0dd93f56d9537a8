package rust

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/rust"
	"github.com/viant/afs"
	"github.com/viant/contractflow/inspector/graph"
	"github.com/viant/contractflow/inspector/repository"
	"golang.org/x/sync/errgroup"
)

const defaultFilename = "source.rs"

// Inspector provides functionality to inspect Rust contract code and classify its functions
type Inspector struct {
	config *graph.Config
	fs     afs.Service
}

// NewInspector creates a new Rust Inspector with the provided configuration
func NewInspector(config *graph.Config) *Inspector {
	if config == nil {
		config = graph.DefaultConfig()
	}
	config.Init()
	return &Inspector{
		config: config,
		fs:     afs.New(),
	}
}

// ParseError reports a source file the grammar could not fully parse
type ParseError struct {
	Path   string
	Line   int
	Column int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse file %s: syntax error at %d:%d", e.Path, e.Line, e.Column)
}

// InspectSource parses Rust source code from a byte slice and classifies its functions
func (i *Inspector) InspectSource(src []byte) (*graph.File, error) {
	return i.inspect(context.Background(), defaultFilename, src)
}

// InspectFile parses a Rust source file and classifies its functions
func (i *Inspector) InspectFile(ctx context.Context, filename string) (*graph.File, error) {
	src, err := i.fs.DownloadWithURL(ctx, filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return i.inspect(ctx, filename, src)
}

// InspectProject detects the crate holding location and inspects all of its source files
func (i *Inspector) InspectProject(ctx context.Context, location string) (*graph.Project, error) {
	crate, err := repository.New().DetectCrate(ctx, location)
	if err != nil {
		return nil, err
	}
	paths, err := repository.SourceFiles(crate.SourcePath(), i.config.SkipTests)
	if err != nil {
		return nil, err
	}
	files := make([]*graph.File, len(paths))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(i.config.Workers)
	for idx, path := range paths {
		idx, path := idx, path
		group.Go(func() error {
			file, err := i.InspectFile(groupCtx, path)
			if err != nil {
				return err
			}
			files[idx] = file
			return nil
		})
	}
	if err = group.Wait(); err != nil {
		return nil, err
	}
	project := &graph.Project{
		Name:     crate.Name,
		Version:  crate.Version,
		Edition:  crate.Edition,
		RootPath: crate.RootPath,
		Files:    files,
	}
	project.Init()
	return project, nil
}

func (i *Inspector) inspect(ctx context.Context, filename string, src []byte) (*graph.File, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(rust.GetLanguage())
	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse file %s: %w", filename, err)
	}
	defer tree.Close()
	root := tree.RootNode()
	if root.HasError() {
		parseErr := &ParseError{Path: filename}
		if errNode := findErrorNode(root); errNode != nil {
			parseErr.Line = int(errNode.StartPoint().Row) + 1
			parseErr.Column = int(errNode.StartPoint().Column) + 1
		}
		return nil, parseErr
	}
	hash, err := graph.Hash(src)
	if err != nil {
		return nil, fmt.Errorf("failed to hash file %s: %w", filename, err)
	}
	file := &graph.File{Path: filename, Hash: hash}
	i.inspectItems(root, src, file)
	i.config.Logger.Debug("scan.file", "path", filename, "functions", len(file.Functions))
	return file, nil
}

// inspectItems visits the items of a source file or module body
func (i *Inspector) inspectItems(container *sitter.Node, source []byte, file *graph.File) {
	var attrs Attributes
	for j := 0; j < int(container.NamedChildCount()); j++ {
		child := container.NamedChild(j)
		switch child.Type() {
		case "attribute_item":
			if attr, ok := parseAttribute(child, source); ok {
				attrs = append(attrs, attr)
			}
			continue
		case "line_comment", "block_comment", "comment":
			continue
		case "function_item":
			if !i.skipped(attrs) {
				i.addFunction(file, i.classifyFunction(child, source), child, source)
			}
		case "impl_item":
			if !i.skipped(attrs) {
				i.inspectImpl(child, source, attrs, file)
			}
		case "mod_item":
			if body := child.ChildByFieldName("body"); body != nil && !i.skipped(attrs) {
				i.inspectItems(body, source, file)
			}
		}
		attrs = nil
	}
}

// inspectImpl classifies every method of an impl block
func (i *Inspector) inspectImpl(node *sitter.Node, source []byte, attrs Attributes, file *graph.File) {
	impl := &implBlock{
		typeName: typeName(node.ChildByFieldName("type"), source),
		exposed:  attrs.Has(i.config.Markers.ExposedBlock),
	}
	if trait := node.ChildByFieldName("trait"); trait != nil {
		impl.trait = typeName(trait, source)
	}
	body := node.ChildByFieldName("body")
	if body == nil {
		return
	}
	var methodAttrs Attributes
	for j := 0; j < int(body.NamedChildCount()); j++ {
		child := body.NamedChild(j)
		switch child.Type() {
		case "attribute_item":
			if attr, ok := parseAttribute(child, source); ok {
				methodAttrs = append(methodAttrs, attr)
			}
			continue
		case "line_comment", "block_comment", "comment":
			continue
		case "function_item":
			if !i.skipped(methodAttrs) {
				i.addFunction(file, i.classifyMethod(child, source, methodAttrs, impl), child, source)
			}
		}
		methodAttrs = nil
	}
}

func (i *Inspector) addFunction(file *graph.File, function *graph.Function, node *sitter.Node, source []byte) {
	if function.Location != nil {
		function.Location.Path = file.Path
	}
	var calls []string
	if body := node.ChildByFieldName("body"); body != nil {
		calls = collectCalls(body, source)
	}
	file.AddFunction(function, calls)
}

func (i *Inspector) skipped(attrs Attributes) bool {
	return i.config.SkipTests && attrs.IsTestOnly()
}

// findErrorNode returns the first ERROR or MISSING node in document order
func findErrorNode(node *sitter.Node) *sitter.Node {
	if node.IsError() || node.IsMissing() {
		return node
	}
	for j := 0; j < int(node.ChildCount()); j++ {
		child := node.Child(j)
		if !child.HasError() && !child.IsMissing() {
			continue
		}
		if found := findErrorNode(child); found != nil {
			return found
		}
	}
	return nil
}
