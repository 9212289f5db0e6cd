package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/OpenTraceLab/vinst/internal/config"
	"github.com/OpenTraceLab/vinst/pkg/verilog"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose    bool
	configPath string

	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "vinst",
	Short: "Verilog instantiation template generator",
	Long: `vinst reads Verilog/SystemVerilog sources, finds every module declaration
and prints a ready-to-paste instantiation with parameter and port bindings.

Examples:
  vinst extract rtl/fifo.v                 # Template for every module in a file
  cat top.sv | vinst extract               # Read from stdin
  vinst watch rtl/                         # Re-emit templates on every save
  vinst index rtl/ && vinst show fifo      # Look modules up by name`,
	Version:           "0.3.0",
	PersistentPreRunE: setup,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (parse trace on stderr)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $"+config.EnvPath+" or user config dir)")
}

// setup installs the stderr logger and loads the configuration.
func setup(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	c, err := config.Load(configPath)
	if err != nil {
		return err
	}
	cfg = c
	return nil
}

func newExtractor() *verilog.Extractor {
	return verilog.NewExtractor(verilog.WithLogger(logger))
}
