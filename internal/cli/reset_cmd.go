package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/tailquest/internal/cli/formatter"
	"github.com/spf13/cobra"
)

var errConfirmRequired = errors.New("refusing to reset without --yes outside a terminal")

func newResetCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset progress for every topic",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Progress == nil {
				return errNoProgress
			}
			if !yes {
				if !app.interactive() {
					return errConfirmRequired
				}
				if err := confirmResetForm(&yes).Run(); err != nil {
					return err
				}
				if !yes {
					fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Cancelled."))
					return nil
				}
			}
			if err := app.Progress.Reset(cmd.Context()); err != nil {
				return fmt.Errorf("resetting progress: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleGreen.Render("Progress reset."))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
