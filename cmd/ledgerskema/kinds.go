package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reoring/ledgerskema/internal/catalog"
)

func newKindsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the schema object kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, n := range catalog.Names() {
				k, _ := catalog.Lookup(n)
				fmt.Fprintf(a.out, "%-22s %s\n", k.Name, k.Description)
			}
			return nil
		},
	}
}
