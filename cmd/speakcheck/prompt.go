package main

import (
	"fmt"
	"strings"

	"github.com/baditaflorin/go_pronunciation_similarity/pkg/prompt"
	"github.com/spf13/cobra"
)

func newPromptCmd() *cobra.Command {
	var catalogFile string

	kinds := make([]string, 0, len(prompt.Kinds()))
	for _, k := range prompt.Kinds() {
		kinds = append(kinds, string(k))
	}

	cmd := &cobra.Command{
		Use:       "prompt <kind> [text]",
		Short:     "Suggest a target sentence",
		Long:      "Suggest a target sentence. Kinds: " + strings.Join(kinds, ", ") + ". The polish kind tidies the given text.",
		Args:      cobra.RangeArgs(1, 2),
		ValidArgs: kinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := prompt.ParseKind(args[0])
			if err != nil {
				return err
			}

			catalog := prompt.DefaultCatalog()
			if catalogFile != "" {
				catalog, err = prompt.LoadCatalogFile(catalogFile)
				if err != nil {
					return err
				}
			}

			var current string
			if len(args) == 2 {
				current = args[1]
			}
			text, err := catalog.Suggest(kind, current)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogFile, "catalog", "", "YAML prompt catalog")

	return cmd
}
