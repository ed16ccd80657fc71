package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/tailquest/internal/cli/formatter"
	"github.com/alexanderramin/tailquest/internal/domain"
	"github.com/spf13/cobra"
)

var errNoCatalog = errors.New("no catalog loaded")

func newTopicsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "topics",
		Short: "List topics with progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Catalog == nil {
				return errNoCatalog
			}
			records := make(map[string]domain.ProgressRecord)
			if app.Progress != nil {
				for _, rec := range app.Progress.Records() {
					records[rec.Topic] = rec
				}
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTopics(app.Catalog.Topics(), records))
			return nil
		},
	}
}
