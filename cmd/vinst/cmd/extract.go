package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/OpenTraceLab/vinst/pkg/index"
	"github.com/OpenTraceLab/vinst/pkg/verilog"
	"github.com/spf13/cobra"
)

var (
	outputPath  string
	indentFlag  string
	recordIndex bool
)

var extractCmd = &cobra.Command{
	Use:   "extract [file...]",
	Short: "Print instantiation templates for the modules in Verilog sources",
	Long: `Extract every module declaration from the given files (stdin when no file
or "-" is given) and print one instantiation template per module.

Input without any module prints nothing.

Examples:
  vinst extract fifo.v
  vinst extract -o inst.txt rtl/a.v rtl/b.sv
  vinst extract --indent "    " --index core.v`,
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringVarP(&outputPath, "output", "o", "", "write templates to a file instead of stdout")
	extractCmd.Flags().StringVar(&indentFlag, "indent", "", "indentation of binding lines (default from config, tab)")
	extractCmd.Flags().BoolVar(&recordIndex, "index", false, "also record extracted modules in the index")
	extractCmd.Flags().StringVar(&dbPath, "db", "", "index database path (default from config)")
}

func renderer(cmd *cobra.Command) *verilog.Renderer {
	opts := cfg.RenderOptions()
	if cmd.Flags().Changed("indent") {
		opts.Indent = indentFlag
	}
	return verilog.NewRenderer(opts)
}

func runExtract(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		args = []string{"-"}
	}

	var store *index.Store
	if recordIndex {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()
		store = s
	}

	ex := newExtractor()
	r := renderer(cmd)

	var out strings.Builder
	for _, name := range args {
		var (
			mods []*verilog.Module
			err  error
		)
		if name == "-" {
			mods, err = ex.Extract(cmd.InOrStdin())
		} else {
			mods, err = ex.ExtractFile(name)
		}
		if errors.Is(err, verilog.ErrNoModules) {
			logger.Warn("no modules found", "input", name)
			continue
		}
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		out.WriteString(r.Render(mods))

		if store != nil {
			if name == "-" {
				logger.Warn("standard input has no path, not indexing", "modules", len(mods))
				continue
			}
			abs, err := filepath.Abs(name)
			if err != nil {
				return err
			}
			if err := store.PutFile(abs, mods); err != nil {
				return err
			}
		}
	}

	if out.Len() == 0 {
		return nil
	}
	if outputPath != "" {
		if err := os.WriteFile(outputPath, []byte(out.String()), 0o644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	_, err := fmt.Fprint(cmd.OutOrStdout(), out.String())
	return err
}
