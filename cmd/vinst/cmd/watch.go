package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/OpenTraceLab/vinst/internal/watch"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch <file-or-dir>",
	Short: "Re-emit templates whenever a Verilog source changes",
	Long: `Watch a file or a directory tree and print the templates of every changed
source file, preceded by a "// <path>" line. Runs until interrupted.

Examples:
  vinst watch rtl/
  vinst watch --indent "  " top.sv`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVar(&indentFlag, "indent", "", "indentation of binding lines (default from config, tab)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w, err := watch.New(cfg.IsSource, logger)
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer w.Stop()

	ex := newExtractor()
	r := renderer(cmd)
	out := cmd.OutOrStdout()

	onChange := func(path string) {
		mods, err := ex.ExtractFile(path)
		if err != nil {
			logger.Warn("skipping file", "path", path, "err", err)
			return
		}
		fmt.Fprintf(out, "// %s\n%s", path, r.Render(mods))
	}

	if err := w.Watch(ctx, args[0], onChange); err != nil {
		return fmt.Errorf("failed to watch %s: %w", args[0], err)
	}
	logger.Info("watching", "path", args[0])

	<-ctx.Done()
	return nil
}
