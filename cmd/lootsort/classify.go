package main

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/hupe1980/lootsort/category"
	"github.com/hupe1980/lootsort/core"
	"github.com/hupe1980/lootsort/world"
	"github.com/spf13/cobra"
)

func newClassifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <fixture.yaml>",
		Short: "Print the category of every form in a fixture",
		Long: `Print the form type, category code, icon label and base priority of every
base form reachable from a fixture. Destroyed ground references are skipped.`,
		Args: exactlyOneFixture,
		RunE: func(cmd *cobra.Command, args []string) error {
			fx, err := world.LoadYAML(args[0])
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "FORM\tTYPE\tCODE\tLABEL\tPRIORITY")
			for _, d := range fixtureForms(fx) {
				code := category.Classify(d)
				info := category.Lookup(code)
				fmt.Fprintf(tw, "0x%06x\t%s\t%d\t%s\t%s\n", uint32(d.FormID()), d.FormType(), code, info.Label, info.Priority)
			}
			return tw.Flush()
		},
	}
}

// fixtureForms returns the distinct base forms of a fixture ordered by
// identifier.
func fixtureForms(fx *world.Fixture) []core.Descriptor {
	seen := map[core.FormID]core.Descriptor{}
	add := func(d core.Descriptor) {
		if d != nil {
			seen[d.FormID()] = d
		}
	}

	for _, slot := range fx.Inventory {
		add(slot.Object.Base())
	}
	for _, st := range fx.Ground {
		for _, h := range st.Handles {
			if ref, ok := fx.World.Resolve(h); ok {
				add(ref.Base())
			}
		}
	}

	forms := make([]core.Descriptor, 0, len(seen))
	for _, d := range seen {
		forms = append(forms, d)
	}
	sort.Slice(forms, func(i, j int) bool { return forms[i].FormID() < forms[j].FormID() })
	return forms
}
