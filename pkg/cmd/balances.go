package cmd

import (
	"context"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/c9s/fcoin/pkg/exchange/fcoin/fcoinapi"
	"github.com/c9s/fcoin/pkg/style"
)

func init() {
	balancesCmd.Flags().Bool("all", false, "include the zero balances")
	balancesCmd.Flags().Bool("raw", false, "print the raw response")
	RootCmd.AddCommand(balancesCmd)
}

// go run ./cmd/fcoin balances
var balancesCmd = &cobra.Command{
	Use:   "balances [--all]",
	Short: "Show user account balances",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		all, err := cmd.Flags().GetBool("all")
		if err != nil {
			return err
		}

		raw, err := cmd.Flags().GetBool("raw")
		if err != nil {
			return err
		}

		client, conf, err := newRestClient(true)
		if err != nil {
			return err
		}

		body, err := client.GetBalance(ctx)
		if err != nil {
			return err
		}

		if raw {
			return printRaw(cmd.OutOrStdout(), body)
		}

		var balances []fcoinapi.Balance
		if err := fcoinapi.DecodeResponseData(body, &balances); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), style.Headline(fmt.Sprintf("BALANCES (%s)", conf.Mode)))

		f := style.DefaultNumberFormatter()
		t := style.NewTable(cmd.OutOrStdout(), "Currency", "Available", "Frozen", "Balance")
		for _, b := range balances {
			if !all && !style.NonZero(b.Available, b.Frozen, b.Balance) {
				continue
			}

			t.AppendRow(table.Row{b.Currency, f.Amount(b.Available), f.Amount(b.Frozen), f.Amount(b.Balance)})
		}
		t.Render()
		return nil
	},
}
