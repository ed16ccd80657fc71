package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexanderramin/tailquest/internal/api"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const defaultAddr = ":8080"

func newServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Catalog == nil {
				return errNoCatalog
			}
			logger := app.ServeLogger
			if logger == nil {
				logger = app.logger()
			}
			srv := api.NewServer(app.Catalog, app.Progress, app.asker(), logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			run := app.ListenAndServe
			if run == nil {
				run = listenAndServe
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Listening on %s\n", addr)
			return run(ctx, addr, srv.Router())
		},
	}

	addServeFlags(cmd.Flags(), &addr, app.Addr)

	return cmd
}

func addServeFlags(fs *pflag.FlagSet, addr *string, def string) {
	if def == "" {
		def = defaultAddr
	}
	fs.StringVar(addr, "addr", def, "Listen address")
}

// listenAndServe runs an http.Server until ctx is cancelled, then shuts it
// down with a short grace period.
func listenAndServe(ctx context.Context, addr string, h http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
