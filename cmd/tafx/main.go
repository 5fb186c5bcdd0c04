package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/raykavin/tafx"
	"github.com/raykavin/tafx/internal/config"
	"github.com/raykavin/tafx/pkg/core"
	"github.com/raykavin/tafx/pkg/logger"
	"github.com/raykavin/tafx/pkg/logger/zerolog"
	"github.com/raykavin/tafx/pkg/plugin"
)

const version = "1.0.0"

var (
	configFile string
	settings   *core.Settings
	log        logger.Logger = logger.Nop()
)

func main() {
	err := newRootCmd().Execute()
	if closeErr := tafx.Close(); err == nil && closeErr != nil {
		err = closeErr
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "tafx",
		Short:             "TA-Lib functions over candle files",
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
	}
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Config file (default ./tafx.yaml when present)")

	rootCmd.AddCommand(
		buildVersionCmd(),
		buildListCmd(),
		buildInfoCmd(),
		buildComputeCmd(),
		buildStudyCmd(),
		buildDescribeCmd(),
		buildDownloadCmd(),
		buildResultsCmd(),
	)
	return rootCmd
}

// setup loads the settings and replaces the default logger with one
// built from them
func setup(cmd *cobra.Command, _ []string) error {
	var err error
	settings, err = config.Load(config.New(), configFile)
	if err != nil {
		return err
	}

	adapter, err := zerolog.New(zerolog.Options{
		Level:   settings.Log.Level,
		Layout:  settings.Log.Layout,
		Colored: settings.Log.Colored,
		JSON:    settings.Log.JSON,
		Out:     cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("invalid log settings: %w", err)
	}
	log = adapter
	plugin.Default().SetLogger(log)
	return nil
}

func buildVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print tafx and TA-Lib versions",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tafx %s\nTA-Lib %s\n", version, tafx.TALibVersion())
		},
	}
}
