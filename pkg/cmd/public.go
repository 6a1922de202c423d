package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/c9s/fcoin/pkg/exchange/fcoin/fcoinapi"
	"github.com/c9s/fcoin/pkg/style"
)

func init() {
	symbolsCmd.Flags().Bool("raw", false, "print the raw response")

	RootCmd.AddCommand(serverTimeCmd)
	RootCmd.AddCommand(symbolsCmd)
	RootCmd.AddCommand(currenciesCmd)
}

// go run ./cmd/fcoin server-time
var serverTimeCmd = &cobra.Command{
	Use:   "server-time",
	Short: "Show the server time",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		client, _, err := newRestClient(false)
		if err != nil {
			return err
		}

		body, err := client.GetServerTime(ctx)
		if err != nil {
			return err
		}

		ms, err := fcoinapi.ParseServerTime(body)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%d %s\n", ms, time.UnixMilli(ms).UTC().Format(time.RFC3339Nano))
		return nil
	},
}

// go run ./cmd/fcoin symbols
var symbolsCmd = &cobra.Command{
	Use:   "symbols",
	Short: "List the trading pairs",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		raw, err := cmd.Flags().GetBool("raw")
		if err != nil {
			return err
		}

		client, _, err := newRestClient(false)
		if err != nil {
			return err
		}

		body, err := client.GetSymbols(ctx)
		if err != nil {
			return err
		}

		if raw {
			return printRaw(cmd.OutOrStdout(), body)
		}

		var symbols []fcoinapi.Symbol
		if err := fcoinapi.DecodeResponseData(body, &symbols); err != nil {
			return err
		}

		t := style.NewTable(cmd.OutOrStdout(), "Symbol", "Base", "Quote", "Price Decimal", "Amount Decimal")
		for _, s := range symbols {
			t.AppendRow(table.Row{s.Name, s.BaseCurrency, s.QuoteCurrency, s.PriceDecimal, s.AmountDecimal})
		}
		t.Render()
		return nil
	},
}

// go run ./cmd/fcoin currencies
var currenciesCmd = &cobra.Command{
	Use:   "currencies",
	Short: "List the currencies",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		client, _, err := newRestClient(false)
		if err != nil {
			return err
		}

		body, err := client.GetCurrencies(ctx)
		if err != nil {
			return err
		}

		var currencies []string
		if err := fcoinapi.DecodeResponseData(body, &currencies); err != nil {
			return err
		}

		for _, c := range currencies {
			fmt.Fprintln(cmd.OutOrStdout(), c)
		}
		return nil
	},
}
