package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reoring/ledgerskema/hooks"
	"github.com/reoring/ledgerskema/transactions"
)

func newHookOnCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "hookon <TransactionType>...",
		Short: "Print the HookOn value of a hook firing on the given transaction types",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			types := make([]transactions.TransactionType, len(args))
			for i, s := range args {
				types[i] = transactions.TransactionType(s)
			}
			v, err := hooks.CalculateHookOn(types)
			if err != nil {
				return err
			}
			a.log.Debug().Strs("types", args).Str("hook_on", v).Msg("computed HookOn")
			_, err = fmt.Fprintln(a.out, v)
			return err
		},
	}
}
