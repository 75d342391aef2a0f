package main

import (
	"io"
	"os"

	pronunciation "github.com/baditaflorin/go_pronunciation_similarity"
	"github.com/baditaflorin/l"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	verbose     bool
	foldAccents bool
}

// newRootCmd creates the root command for speakcheck.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:           "speakcheck",
		Short:         "Score spoken transcriptions against a target sentence",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log computation steps to stderr")
	rootCmd.PersistentFlags().BoolVar(&opts.foldAccents, "fold-accents", false, "Treat accented letters as their base letter")

	rootCmd.AddCommand(newScoreCmd(opts))
	rootCmd.AddCommand(newPracticeCmd(opts))
	rootCmd.AddCommand(newPromptCmd())

	return rootCmd
}

// newEngine builds an engine whose logs go to stderr when verbose, nowhere otherwise.
func (o *rootOptions) newEngine() (*pronunciation.Engine, error) {
	var output io.Writer = io.Discard
	if o.verbose {
		output = os.Stderr
	}
	logger, err := l.NewStandardFactory().CreateLogger(l.Config{
		Output:     output,
		JsonFormat: false,
		AsyncWrite: false,
	})
	if err != nil {
		return nil, err
	}
	return pronunciation.New(
		pronunciation.WithLogger(logger),
		pronunciation.WithAccentFolding(o.foldAccents),
	)
}
