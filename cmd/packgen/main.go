// Packgen renders printable recipe pack PDFs.
//
// Usage:
//
//	packgen [generate] [--config packgen.yaml] [--only starter,kids] [--verbose|--quiet] [--plain]
//	packgen packs
//	packgen import --from data/recipes.json --to data/recipes.db
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/recipepacks/internal/config"
	"github.com/hammamikhairi/recipepacks/internal/logger"
)

var (
	// Global flags
	configPath string
	verbose    bool
	quiet      bool

	// generate flags
	only  []string
	plain bool
)

var rootCmd = &cobra.Command{
	Use:   "packgen",
	Short: "Render recipe packs into print-ready PDFs",
	Long: `packgen reads recipes from a catalog and renders each configured pack
into one PDF: cover, contents, a page per recipe, a combined shopping
list, tips and a closing page.

Run without a subcommand to generate every pack.`,
	SilenceUsage: true,
	RunE:         runGenerate,
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render packs to the output directory",
	RunE:  runGenerate,
}

var packsCmd = &cobra.Command{
	Use:   "packs",
	Short: "List configured packs and whether their recipes resolve",
	RunE:  runPacks,
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Copy a JSON recipe catalog into a SQLite database",
	RunE:  runImport,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: ./packgen.yaml if present)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "disable all logging")

	for _, c := range []*cobra.Command{rootCmd, generateCmd} {
		c.Flags().StringSliceVar(&only, "only", nil, "comma-separated pack keys to build")
		c.Flags().BoolVar(&plain, "plain", false, "print plain lines instead of the live progress view")
	}

	importCmd.Flags().String("from", "data/recipes.json", "JSON catalog to read")
	importCmd.Flags().String("to", "data/recipes.db", "SQLite database to write")

	rootCmd.AddCommand(generateCmd, packsCmd, importCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// setup loads the config and builds the logger for a command. The returned
// func closes the log file, if any.
func setup() (*config.Config, *logger.Logger, func(), error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, nil, err
	}

	level := logger.ParseLevel(cfg.Log.Level)
	if verbose {
		level = logger.LevelVerbose
	}
	if quiet {
		level = logger.LevelOff
	}

	var out io.Writer = os.Stderr
	closeFn := func() {}
	if cfg.Log.File != "" && cfg.Log.File != "stderr" {
		f, err := openLogFile(cfg.Log.File)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not open log file %s: %v (falling back to stderr)\n", cfg.Log.File, err)
		} else {
			out = f
			closeFn = func() { f.Close() }
		}
	}

	log := logger.New(level, out)
	return cfg, log, func() {
		_ = log.Sync()
		closeFn()
	}, nil
}

// openLogFile opens path for appending, creating its directory first.
func openLogFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating log directory: %w", err)
		}
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}
