package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/viant/contractflow/exporter/neo4j"
	"github.com/viant/contractflow/pipeline"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export [path]",
	Short: "Load the resolved call graph into Neo4j",
	Args:  cobra.MaximumNArgs(1),
	RunE:  Export,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().String("neo4j-uri", "bolt://localhost:7687", "Neo4j bolt URI")
	exportCmd.Flags().String("neo4j-user", "neo4j", "Neo4j username")
	exportCmd.Flags().String("neo4j-pass", "", "Neo4j password")
	exportCmd.Flags().Bool("clean", false, "remove previously exported functions first")
}

func Export(cmd *cobra.Command, args []string) error {
	v, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if v.GetString("neo4j-pass") == "" {
		return fmt.Errorf("--neo4j-pass is required")
	}
	logger := newLogger(v)
	config, err := newConfig(v, logger)
	if err != nil {
		return err
	}
	exporter, err := neo4j.New(v.GetString("neo4j-uri"), v.GetString("neo4j-user"), v.GetString("neo4j-pass"),
		neo4j.WithClean(v.GetBool("clean")), neo4j.WithLogger(logger))
	if err != nil {
		return err
	}
	defer exporter.Close(cmd.Context())
	if err = exporter.Verify(cmd.Context()); err != nil {
		return fmt.Errorf("failed to connect to neo4j: %w", err)
	}
	result, err := pipeline.New(
		pipeline.WithConfig(config),
		pipeline.WithLogger(logger),
		pipeline.WithGraphExporter(exporter),
	).Run(cmd.Context(), targetPath(args))
	if err != nil {
		return err
	}
	logger.Info("export.done", "crate", result.Project.Name)
	return nil
}
