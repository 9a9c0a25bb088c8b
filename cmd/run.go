package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/priyal/worklens/internal/app"
	"github.com/priyal/worklens/internal/catalog"
	"github.com/priyal/worklens/internal/config"
	"github.com/priyal/worklens/internal/store"
	"github.com/spf13/cobra"
)

// runApp loads config, opens the store, seeds the catalog on first run,
// and launches the TUI.
func runApp(cmd *cobra.Command) error {
	loader := config.NewLoader(slog.Default())
	if err := loader.EnsureUserConfig(); err != nil {
		slog.Warn("could not create default user config", "error", err)
	}
	cfg, err := loader.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	dbPath, err := resolveDBPath(cmd, cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	questions, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	if err := st.SeedQuestions(cmd.Context(), questions); err != nil {
		return fmt.Errorf("seed questions: %w", err)
	}

	logger.Info("starting", slog.String("db", dbPath))
	return app.Run(app.Options{Store: st, Logger: logger})
}

// loadCatalog returns the configured catalog file, or the embedded
// default when none is configured.
func loadCatalog(cfg *config.Config) ([]catalog.Question, error) {
	if cfg.Catalog.Path != "" {
		questions, err := catalog.Load(cfg.Catalog.Path)
		if err != nil {
			return nil, fmt.Errorf("load catalog %s: %w", cfg.Catalog.Path, err)
		}
		return questions, nil
	}
	questions, err := catalog.Default()
	if err != nil {
		return nil, fmt.Errorf("load embedded catalog: %w", err)
	}
	return questions, nil
}

// newLogger builds the configured logger. The TUI owns the terminal, so
// without a configured log file everything is discarded.
func newLogger(cfg *config.Config) (*slog.Logger, func(), error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, nil, err
	}

	var w io.Writer = io.Discard
	closeLog := func() {}
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeLog = func() { f.Close() }
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	return logger, closeLog, nil
}
