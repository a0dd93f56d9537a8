package main

import (
	"errors"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/viant/contractflow/inspector/graph"
)

const envPrefix = "CONTRACTFLOW"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:           "contractflow",
	Short:         "Draw call-graph diagrams of NEAR smart contracts",
	Long:          `contractflow scans a Rust contract crate, classifies its exposed functions and renders their call hierarchy as a Mermaid flowchart.`,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default is ./.contractflow.yaml)")
	rootCmd.PersistentFlags().Int("workers", 0, "number of files scanned in parallel (default 1)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress log output")
	rootCmd.PersistentFlags().Bool("verbose", false, "log resolution details")
	rootCmd.PersistentFlags().Bool("include-tests", false, "scan test modules and test directories")
}

// loadSettings binds command flags, CONTRACTFLOW_ environment variables and the optional config file
func loadSettings(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	var bindErr error
	cmd.Flags().VisitAll(func(flag *pflag.Flag) {
		if err := v.BindPFlag(flag.Name, flag); err != nil && bindErr == nil {
			bindErr = err
		}
	})
	if bindErr != nil {
		return nil, bindErr
	}
	if configFile := v.GetString("config"); configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(".contractflow")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}
	return v, nil
}

// newLogger builds a stderr text logger honoring quiet and verbose
func newLogger(v *viper.Viper) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case v.GetBool("quiet"):
		level = slog.LevelWarn
	case v.GetBool("verbose"):
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// newConfig builds the scan configuration from settings
func newConfig(v *viper.Viper, logger *slog.Logger) (*graph.Config, error) {
	config := graph.DefaultConfig()
	if v.IsSet("markers") {
		if err := v.UnmarshalKey("markers", &config.Markers); err != nil {
			return nil, err
		}
	}
	if workers := v.GetInt("workers"); workers > 0 {
		config.Workers = workers
	}
	config.SkipTests = !v.GetBool("include-tests")
	config.Logger = logger
	config.Init()
	return config, nil
}

func targetPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}
