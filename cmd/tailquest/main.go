package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/tailquest/internal/catalog"
	"github.com/alexanderramin/tailquest/internal/chat"
	"github.com/alexanderramin/tailquest/internal/cli"
	"github.com/alexanderramin/tailquest/internal/config"
	"github.com/alexanderramin/tailquest/internal/db"
	"github.com/alexanderramin/tailquest/internal/progress"
	"github.com/alexanderramin/tailquest/internal/repository"
	"github.com/alexanderramin/tailquest/internal/utilities"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so logs go to TAILQUEST_LOG_FILE or nowhere.
	logger, closeLog, err := cfg.NewLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	serveLogger := logger
	if cfg.Log.File == "" {
		serveLogger, _, err = cfg.NewLogger(os.Stderr)
		if err != nil {
			return err
		}
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return err
	}

	sheet, err := utilities.Default()
	if err != nil {
		return fmt.Errorf("loading utility sheet: %w", err)
	}

	kv := repository.NewSQLiteKVStore(database)
	store := progress.Load(context.Background(), kv, cat, logger)

	app := &cli.App{
		Catalog:     cat,
		Progress:    store,
		Sheet:       sheet,
		Logger:      logger,
		ServeLogger: serveLogger,
		Addr:        cfg.Addr,
		Chat:        chat.NewBridge(cfg.Chat, chat.NewLogObserver(logger)),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
