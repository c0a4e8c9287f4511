// Package cmd wires up the billtab command tree.
package cmd

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/theirongolddev/billtab/internal/config"
	"github.com/theirongolddev/billtab/internal/store"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

var (
	flagDataDir string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "billtab",
	Short: "Bill ledger and affordability calculator",
	Long:  "Track recurring bills, check what a purchase leaves you with, and split income 50/30/20.",
	RunE:  runTUI,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Data directory (default XDG data home)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
}

// newLogger builds the tinted stderr logger shared by all commands.
func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if flagVerbose {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: level}))
}

// dbPath resolves the bills database path from the flag, config, then
// the XDG default, in that order.
func dbPath(cfg config.Config) string {
	if flagDataDir != "" {
		return filepath.Join(flagDataDir, "bills.db")
	}
	if cfg.General.DataDir != "" {
		return filepath.Join(cfg.General.DataDir, "bills.db")
	}
	return store.DefaultPath()
}

// openStore is the shared store opening path used by all commands.
func openStore(logger *slog.Logger) (*store.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		logger.Warn("config unreadable, using defaults", "err", err)
		cfg = config.DefaultConfig()
	}

	backend, err := store.OpenSQLite(dbPath(cfg))
	if err != nil {
		return nil, err
	}

	return store.Open(backend, logger, cfg.Debounce()), nil
}
