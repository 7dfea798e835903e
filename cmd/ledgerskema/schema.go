package main

import (
	"fmt"

	j "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/reoring/ledgerskema/internal/catalog"
)

func newSchemaCmd(a *app) *cobra.Command {
	var kindName string
	cmd := &cobra.Command{
		Use:   "schema --kind <kind>",
		Short: "Print the JSON Schema of a kind",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			k, err := catalog.Lookup(kindName)
			if err != nil {
				return err
			}
			s, err := k.Schema()
			if err != nil {
				return fmt.Errorf("export %s: %w", k.Name, err)
			}
			b, err := j.MarshalIndent(s, "", "  ")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(a.out, string(b))
			return err
		},
	}
	cmd.Flags().StringVarP(&kindName, "kind", "k", "", "schema object kind")
	_ = cmd.MarkFlagRequired("kind")
	return cmd
}
