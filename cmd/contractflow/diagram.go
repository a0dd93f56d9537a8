package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/viant/contractflow/mermaid"
	"github.com/viant/contractflow/pipeline"
	"github.com/viant/contractflow/render"
)

// diagramCmd represents the diagram command
var diagramCmd = &cobra.Command{
	Use:   "diagram [path]",
	Short: "Write the contract call hierarchy as Mermaid markup",
	Long: `Scans the crate holding path and writes <output>.mmd, or <output>.md with --markdown.
With --render the markup is passed to the Mermaid CLI (mmdc) to produce an image.`,
	Args: cobra.MaximumNArgs(1),
	RunE: Diagram,
}

func init() {
	rootCmd.AddCommand(diagramCmd)
	diagramCmd.Flags().StringP("output", "o", "contract", "output file path without extension")
	diagramCmd.Flags().StringP("direction", "d", "TD", "flow direction: TB, TD, BT, RL or LR")
	diagramCmd.Flags().Bool("markdown", false, "wrap the markup in a fenced mermaid block")
	diagramCmd.Flags().Bool("render", false, "render the markup with mmdc")
	diagramCmd.Flags().String("image", "", "rendered image path; svg, png or pdf (default is <output>.svg)")
	diagramCmd.Flags().StringP("scale", "s", "", "renderer scale factor")
	diagramCmd.Flags().String("height", "", "renderer page height")
	diagramCmd.Flags().StringP("width", "w", "", "renderer page width")
	diagramCmd.Flags().StringP("background-color", "b", "", "renderer background color, e.g. transparent, red, '#F0F0F0'")
	diagramCmd.Flags().String("mmdc", render.DefaultBinary, "Mermaid CLI binary")
}

func Diagram(cmd *cobra.Command, args []string) error {
	v, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(v)
	config, err := newConfig(v, logger)
	if err != nil {
		return err
	}
	direction, err := mermaid.ParseFlowDirection(v.GetString("direction"))
	if err != nil {
		return err
	}
	result, err := pipeline.New(
		pipeline.WithConfig(config),
		pipeline.WithLogger(logger),
		pipeline.WithDirection(direction),
	).Run(cmd.Context(), targetPath(args))
	if err != nil {
		return err
	}

	content, ext := result.Markup, ".mmd"
	if v.GetBool("markdown") {
		content, ext = mermaid.Fence(result.Markup), ".md"
	}
	outputPath := v.GetString("output") + ext
	if dir := filepath.Dir(outputPath); dir != "." {
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	if err = os.WriteFile(outputPath, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", outputPath, err)
	}
	logger.Info("diagram.written", "path", outputPath, "fingerprint", fmt.Sprintf("%016x", result.Fingerprint))
	if !v.GetBool("render") {
		return nil
	}
	image, err := render.Run(cmd.Context(), &render.Options{
		Binary:          v.GetString("mmdc"),
		Input:           outputPath,
		Output:          v.GetString("image"),
		Scale:           v.GetString("scale"),
		Height:          v.GetString("height"),
		Width:           v.GetString("width"),
		BackgroundColor: v.GetString("background-color"),
		Quiet:           v.GetBool("quiet"),
	}, logger)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), image)
	return nil
}
