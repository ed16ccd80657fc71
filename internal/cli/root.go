package cli

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/alexanderramin/tailquest/internal/catalog"
	"github.com/alexanderramin/tailquest/internal/chat"
	"github.com/alexanderramin/tailquest/internal/progress"
	"github.com/alexanderramin/tailquest/internal/session"
	"github.com/alexanderramin/tailquest/internal/utilities"
	"github.com/spf13/cobra"
)

// App holds the collaborators used by CLI commands and TUI views.
type App struct {
	Catalog  *catalog.Catalog
	Progress *progress.Store
	Chat     chat.Asker
	Sheet    *utilities.Sheet
	Logger   *slog.Logger

	// ServeLogger is used by serve in place of Logger when set, so the
	// server can log to stderr while the TUI stays quiet.
	ServeLogger *slog.Logger

	// Addr is the default listen address for serve.
	Addr string

	// IsInteractive reports whether stdin is a terminal. Nil means false.
	IsInteractive func() bool

	// RunTUI launches the full-screen interface. Nil uses runProgram.
	RunTUI func(app *App) error

	// ListenAndServe runs the HTTP server until ctx is done. Nil uses
	// listenAndServe.
	ListenAndServe func(ctx context.Context, addr string, h http.Handler) error
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) logger() *slog.Logger {
	if a.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return a.Logger
}

// asker returns Chat, or a Bridge with no endpoint when unset so every
// surface answers with chat.FallbackReply.
func (a *App) asker() chat.Asker {
	if a.Chat == nil {
		return chat.NewBridge(chat.Config{}, nil)
	}
	return a.Chat
}

// recorder returns Progress as a session.Recorder, or nil when unset so
// sessions skip recording instead of calling a nil store.
func (a *App) recorder() session.Recorder {
	if a.Progress == nil {
		return nil
	}
	return a.Progress
}

// NewRootCmd creates the top-level "tailquest" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "tailquest",
		Short:         "Learn utility-first CSS one challenge at a time",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return cmd.Help()
			}
			run := app.RunTUI
			if run == nil {
				run = runProgram
			}
			return run(app)
		},
	}

	root.AddCommand(
		newTopicsCmd(app),
		newProgressCmd(app),
		newPlayCmd(app),
		newAskCmd(app),
		newResetCmd(app),
		newServeCmd(app),
	)

	return root
}
