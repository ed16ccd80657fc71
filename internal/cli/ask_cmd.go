package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/tailquest/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newAskCmd(app *App) *cobra.Command {
	var topic string

	cmd := &cobra.Command{
		Use:   "ask <message...>",
		Short: "Ask the tutor about utility classes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if topic != "" && app.Catalog != nil {
				if t, err := app.Catalog.Resolve(topic); err == nil {
					topic = t.Name
				}
			}

			stop := func() {}
			if app.interactive() {
				stop = formatter.StartSpinner(cmd.ErrOrStderr(), "Thinking...")
			}
			reply := app.asker().Ask(cmd.Context(), strings.Join(args, " "), topic)
			stop()

			if reply == "" {
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderMarkdown(reply, 80))
			return nil
		},
	}

	cmd.Flags().StringVar(&topic, "topic", "", "Topic for context")

	return cmd
}
