package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/tailquest/internal/cli/formatter"
	"github.com/spf13/cobra"
)

var errNoProgress = errors.New("progress store unavailable")

func newProgressCmd(app *App) *cobra.Command {
	var topic string

	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Show completed challenges per topic",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Progress == nil {
				return errNoProgress
			}
			out := cmd.OutOrStdout()
			if topic == "" {
				fmt.Fprint(out, formatter.FormatProgress(app.Progress.Records(), app.Progress.OverallPercent()))
				return nil
			}
			if app.Catalog == nil {
				return errNoCatalog
			}
			t, err := app.Catalog.Resolve(topic)
			if err != nil {
				return err
			}
			fmt.Fprint(out, formatter.FormatTopicProgress(app.Progress.TopicProgress(t.Name)))
			return nil
		},
	}

	cmd.Flags().StringVar(&topic, "topic", "", "Show a single topic (name or slug)")

	return cmd
}
