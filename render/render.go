package render

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"path/filepath"
	"strings"
)

// DefaultBinary is the Mermaid command line renderer
const DefaultBinary = "mmdc"

// Options controls the external renderer invocation
type Options struct {
	Binary          string
	Input           string // markup file
	Output          string // svg, png or pdf; defaults to Input with .svg
	Scale           string
	Height          string
	Width           string
	BackgroundColor string
	Quiet           bool
}

// OutputPath returns the rendered file location
func (o *Options) OutputPath() string {
	if o.Output != "" {
		return o.Output
	}
	return strings.TrimSuffix(o.Input, filepath.Ext(o.Input)) + ".svg"
}

// Args returns renderer arguments in a fixed order
func (o *Options) Args() []string {
	args := []string{"-i", o.Input, "-o", o.OutputPath()}
	if o.Scale != "" {
		args = append(args, "-s", o.Scale)
	}
	if o.Height != "" {
		args = append(args, "-H", o.Height)
	}
	if o.Width != "" {
		args = append(args, "-w", o.Width)
	}
	if o.BackgroundColor != "" {
		args = append(args, "-b", o.BackgroundColor)
	}
	if o.Quiet {
		args = append(args, "-q")
	}
	return args
}

// Command builds the renderer process
func Command(ctx context.Context, options *Options) *exec.Cmd {
	binary := options.Binary
	if binary == "" {
		binary = DefaultBinary
	}
	return exec.CommandContext(ctx, binary, options.Args()...)
}

// Run invokes the renderer and returns the output path
func Run(ctx context.Context, options *Options, logger *slog.Logger) (string, error) {
	if options.Input == "" {
		return "", fmt.Errorf("failed to render: input file is required")
	}
	cmd := Command(ctx, options)
	logger.Info("render.start", "command", cmd.String())
	if output, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("failed to run %s: %w: %s", cmd.Path, err, strings.TrimSpace(string(output)))
	}
	logger.Info("render.done", "output", options.OutputPath())
	return options.OutputPath(), nil
}
