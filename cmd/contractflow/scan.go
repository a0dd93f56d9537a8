package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/viant/contractflow/pipeline"
	"gopkg.in/yaml.v3"
)

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan [path]",
	Short: "Print classified functions and raw calls as yaml",
	Args:  cobra.MaximumNArgs(1),
	RunE:  Scan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

func Scan(cmd *cobra.Command, args []string) error {
	v, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(v)
	config, err := newConfig(v, logger)
	if err != nil {
		return err
	}
	project, err := pipeline.New(pipeline.WithConfig(config), pipeline.WithLogger(logger)).Scan(cmd.Context(), targetPath(args))
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(project)
	if err != nil {
		return fmt.Errorf("failed to encode scan result: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
