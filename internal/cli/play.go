package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordscramble/internal/game"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Starts a game in the terminal. Type a word and press enter to submit it.

Commands:
  :new    start a new game
  :words  list the words found so far
  :quit   exit (or press Ctrl-D)`,
	Args: cobra.NoArgs,
	RunE: runPlayCmd,
}

func init() {
	rootCmd.AddCommand(playCmd)
}

func runPlayCmd(cmd *cobra.Command, args []string) error {
	useConsoleLog()
	a, err := newApp(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer a.Close()
	return play(cmd.Context(), a.ctrl, cmd.InOrStdin(), cmd.OutOrStdout())
}

// play runs the read-submit-print loop until EOF or :quit.
func play(ctx context.Context, ctrl *game.Controller, in io.Reader, out io.Writer) error {
	ctrl.Subscribe(func(s game.Snapshot) {
		if len(s.Guesses) == 0 {
			fmt.Fprintf(out, "Root word: %s\n", strings.ToUpper(s.Root))
			return
		}
		fmt.Fprintf(out, "  %s (%d found)\n", s.Guesses[0], len(s.Guesses))
	})

	sess, err := ctrl.StartGame(ctx)
	if err != nil {
		return err
	}

	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !sc.Scan() {
			fmt.Fprintln(out)
			return sc.Err()
		}
		line := strings.TrimSpace(sc.Text())

		switch line {
		case ":quit", ":q":
			return nil
		case ":new":
			if sess, err = ctrl.StartGame(ctx); err != nil {
				return err
			}
			continue
		case ":words":
			for _, w := range sess.Guesses() {
				fmt.Fprintf(out, "  %s\n", w)
			}
			continue
		}

		o, err := ctrl.Submit(ctx, sess, line)
		if err != nil {
			return err
		}
		if o.Rejection != nil {
			fmt.Fprintf(out, "%s\n  %s\n", o.Rejection.Title, o.Rejection.Message)
		}
	}
}
