package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/baditaflorin/go_pronunciation_similarity/internal/render"
	"github.com/spf13/cobra"
)

func newScoreCmd(root *rootOptions) *cobra.Command {
	var (
		target     string
		spoken     string
		spokenFile string
		output     string
		noColor    bool
	)

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score a transcription against a target sentence",
		Example: `  speakcheck score --target "The early bird catches the worm." --spoken "the early bird catch a worm"
  speakcheck score --target "Hello world" --spoken-file transcript.txt --output json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(target) == "" {
				return errors.New("--target is required")
			}
			if spokenFile != "" {
				data, err := os.ReadFile(spokenFile)
				if err != nil {
					return fmt.Errorf("read spoken file: %w", err)
				}
				spoken = string(data)
			}

			engine, err := root.newEngine()
			if err != nil {
				return fmt.Errorf("create engine: %w", err)
			}
			defer engine.Close()

			ev := engine.Evaluate(target, spoken)
			out := cmd.OutOrStdout()
			switch output {
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(ev)
			case "html":
				fmt.Fprintf(out, "<p class=\"score\">%s</p>\n<p>%s</p>\n", render.ScoreText(ev.Score), render.HTML(ev.Words))
				return nil
			case "text":
				fmt.Fprintln(out, render.NewTerminal(!noColor).Evaluation(ev))
				return nil
			default:
				return fmt.Errorf("invalid output format %q: must be text, json or html", output)
			}
		},
	}

	cmd.Flags().StringVar(&target, "target", "", "Target sentence")
	cmd.Flags().StringVar(&spoken, "spoken", "", "Transcribed speech")
	cmd.Flags().StringVar(&spokenFile, "spoken-file", "", "Read the transcription from a file")
	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format: text, json or html")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	return cmd
}
