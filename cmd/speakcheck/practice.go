package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/baditaflorin/go_pronunciation_similarity/internal/adapters/logger"
	"github.com/baditaflorin/go_pronunciation_similarity/internal/render"
	"github.com/baditaflorin/go_pronunciation_similarity/internal/session"
	"github.com/spf13/cobra"
)

// interimPrefix marks an input line as a provisional recognizer result.
const interimPrefix = "~"

func newPracticeCmd(root *rootOptions) *cobra.Command {
	var (
		target  string
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "practice",
		Short: "Feed recognizer results line by line and watch the score update",
		Long: `Reads recognizer results from stdin, one per line. A line starting with "~"
is an interim result that replaces the previous interim text; any other line is
a final result appended to the transcript. End of input stops the recording.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := root.newEngine()
			if err != nil {
				return fmt.Errorf("create engine: %w", err)
			}
			defer engine.Close()

			lg, err := logger.NewDiscardLogger()
			if err != nil {
				return fmt.Errorf("create logger: %w", err)
			}
			defer lg.Close()

			out := cmd.OutOrStdout()
			term := render.NewTerminal(!noColor)
			s := session.New(engine, lg, session.WithListener(func(u session.Update) {
				label := "update"
				if u.Final {
					label = "final"
				}
				fmt.Fprintf(out, "[%s] %s\n%s\n", label, u.Transcript, term.Evaluation(u.Evaluation))
			}))

			if err := s.Start(target); err != nil {
				if errors.Is(err, session.ErrNoTarget) {
					return errors.New("--target is required")
				}
				return err
			}

			// separator joins results onto the settled transcript
			separator := ""
			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				line := scanner.Text()
				if text, ok := strings.CutPrefix(line, interimPrefix); ok {
					_, _, err = s.AddResult(separator+text, false)
				} else {
					_, _, err = s.AddResult(separator+line, true)
					separator = " "
				}
				if err != nil {
					return err
				}
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			if _, ok, err := s.Stop(); err != nil {
				return err
			} else if !ok {
				fmt.Fprintln(out, "No speech recognized.")
			}
			fmt.Fprintf(out, "Time: %s\n", session.FormatElapsed(s.Elapsed()))
			return nil
		},
	}

	cmd.Flags().StringVar(&target, "target", "", "Target sentence")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	return cmd
}
