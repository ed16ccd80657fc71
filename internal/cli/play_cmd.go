package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alexanderramin/tailquest/internal/cli/formatter"
	"github.com/alexanderramin/tailquest/internal/domain"
	"github.com/alexanderramin/tailquest/internal/session"
	"github.com/spf13/cobra"
)

var errTopicRequired = errors.New("topic required when not running in a terminal")

func newPlayCmd(app *App) *cobra.Command {
	var start int

	cmd := &cobra.Command{
		Use:   "play [topic]",
		Short: "Answer a topic's challenges line by line",
		Long: `Play a topic in line mode. Each line is an answer; ":hint" shows the
current hint and ":quit" stops. Topics match by name or slug.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Catalog == nil {
				return errNoCatalog
			}

			var name string
			if len(args) == 1 {
				name = args[0]
			} else {
				if !app.interactive() {
					return errTopicRequired
				}
				form := selectTopicForm(app, &name)
				if form == nil {
					return errNoCatalog
				}
				if err := form.Run(); err != nil {
					return err
				}
			}

			t, err := app.Catalog.Resolve(name)
			if err != nil {
				return err
			}

			sess := session.New(app.Catalog, app.recorder())
			if err := sess.Start(t.Name, start); err != nil {
				return err
			}
			return playLines(cmd.Context(), sess, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().IntVar(&start, "start", 0, "Challenge index to start from")

	return cmd
}

// playLines drives sess from line input until the topic completes, the
// input ends or the player quits.
func playLines(ctx context.Context, sess *session.Session, in io.Reader, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	scanner := bufio.NewScanner(in)

	for {
		if sess.Phase() == domain.PhaseTopicComplete {
			snap := sess.Snapshot()
			fmt.Fprintln(out, formatter.FormatCompletion(snap.Topic, snap.Score, snap.Completed, sess.AccuracyPercent()))
			return nil
		}

		ch, err := sess.Current()
		if err != nil {
			return err
		}
		snap := sess.Snapshot()
		fmt.Fprint(out, "\n"+formatter.FormatChallenge(ch, snap.Index, snap.Total))
		fmt.Fprint(out, formatter.StylePurple.Render("❯ "))

		if !scanner.Scan() {
			fmt.Fprintln(out)
			fmt.Fprintln(out, formatter.Dim(fmt.Sprintf("Stopped at %d/%d, score %d.", snap.Index, snap.Total, snap.Score)))
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())

		switch line {
		case "":
			continue
		case ":quit", ":q":
			fmt.Fprintln(out, formatter.Dim(fmt.Sprintf("Stopped at %d/%d, score %d.", snap.Index, snap.Total, snap.Score)))
			return nil
		case ":hint", ":h":
			hint, err := sess.Hint()
			if err != nil {
				return err
			}
			if hint == "" {
				fmt.Fprintln(out, formatter.Dim("No hints for this one."))
			} else {
				fmt.Fprintln(out, formatter.StyleYellow.Render("Hint: ")+hint)
			}
			continue
		}

		res, err := sess.Submit(ctx, line)
		if err != nil {
			return err
		}
		if !res.Correct {
			fmt.Fprintln(out, formatter.FormatWrong(res.Hint))
			continue
		}
		fmt.Fprintln(out, formatter.FormatCorrect(res.Explanation, res.Score))
		if _, err := sess.Advance(); err != nil {
			return err
		}
	}
}
