package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/OpenTraceLab/vinst/pkg/index"
	"github.com/OpenTraceLab/vinst/pkg/verilog"
	"github.com/spf13/cobra"
)

var dbPath string

var indexCmd = &cobra.Command{
	Use:   "index <dir>...",
	Short: "Record the modules of every Verilog source under a directory",
	Long: `Walk the given directories, extract every source file with a configured
extension, and store its modules in the index. Re-indexing a file replaces
the modules it previously declared.

Examples:
  vinst index rtl/
  vinst index --db build/vinst.db rtl/ ip/`,
	Args: cobra.MinimumNArgs(1),
	RunE: runIndex,
}

var showCmd = &cobra.Command{
	Use:   "show <module>...",
	Short: "Print the template of indexed modules",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runShow,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List indexed modules and their source files",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(indexCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(listCmd)

	for _, c := range []*cobra.Command{indexCmd, showCmd, listCmd} {
		c.Flags().StringVar(&dbPath, "db", "", "index database path (default from config)")
	}
	showCmd.Flags().StringVar(&indentFlag, "indent", "", "indentation of binding lines (default from config, tab)")
}

func openStore() (*index.Store, error) {
	path := dbPath
	if path == "" {
		path = cfg.IndexPath
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create index directory: %w", err)
	}
	return index.Open(path)
}

func runIndex(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	ex := newExtractor()
	files, modules := 0, 0
	for _, root := range args {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !cfg.IsSource(path) {
				return nil
			}
			abs, err := filepath.Abs(path)
			if err != nil {
				return err
			}

			mods, err := ex.ExtractFile(path)
			if errors.Is(err, verilog.ErrNoModules) {
				logger.Debug("no modules", "path", path)
				return store.RemoveFile(abs)
			}
			if err != nil {
				return err
			}
			if err := store.PutFile(abs, mods); err != nil {
				return err
			}
			files++
			modules += len(mods)
			return nil
		})
		if err != nil {
			return fmt.Errorf("failed to index %s: %w", root, err)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Indexed %d module(s) from %d file(s)\n", modules, files)
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	r := renderer(cmd)
	for _, name := range args {
		rec, err := store.Get(name)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), r.RenderModule(rec.Module))
	}
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	recs, err := store.List()
	if err != nil {
		return err
	}
	for _, rec := range recs {
		fmt.Fprintf(cmd.OutOrStdout(), "%-24s %s\n", rec.Module.Name, rec.File)
	}
	return nil
}
