package main

import (
	"fmt"

	"github.com/hupe1980/lootsort"
	"github.com/spf13/cobra"
)

func newComparatorsCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "comparators",
		Short: "List the comparator names usable in the sort order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			provider, err := root.settings(nil)
			if err != nil {
				return err
			}

			ls := lootsort.New()
			out := cmd.OutOrStdout()
			for _, name := range ls.Comparators() {
				fmt.Fprintln(out, name)
			}

			if order := provider.Settings().SortOrder; len(order) > 0 {
				if _, err := ls.Engine().Registry().ResolveChain(order); err != nil {
					return fmt.Errorf("configured sort order: %w", err)
				}
			}
			return nil
		},
	}
}
