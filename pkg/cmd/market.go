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
	depthCmd.Flags().String("level", string(fcoinapi.DepthLevelL20), "depth level: L20, L100 or full")
	depthCmd.Flags().Int("rows", 10, "number of levels to print per side")

	tradesCmd.Flags().String("before-id", "", "return the trades before the trade id")
	tradesCmd.Flags().Int("limit", 20, "number of trades")

	RootCmd.AddCommand(tickerCmd)
	RootCmd.AddCommand(depthCmd)
	RootCmd.AddCommand(tradesCmd)
}

// go run ./cmd/fcoin ticker btcusdt
var tickerCmd = &cobra.Command{
	Use:   "ticker SYMBOL",
	Short: "Show the ticker of a symbol",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		client, _, err := newRestClient(false)
		if err != nil {
			return err
		}

		body, err := client.GetTicker(ctx, args[0])
		if err != nil {
			return err
		}

		ticker, err := fcoinapi.ParseTicker(body)
		if err != nil {
			return err
		}

		f := loadSymbolFormatters(ctx, client).Get(args[0])

		t := style.NewTable(cmd.OutOrStdout(), "Field", "Value")
		t.SetTitle(ticker.Type)
		t.AppendRows([]table.Row{
			{"Last", f.Price(ticker.LastPrice)},
			{"Last Volume", f.Amount(ticker.LastVolume)},
			{"Bid", fmt.Sprintf("%s x %s", f.Price(ticker.BestBidPrice), f.Amount(ticker.BestBidVolume))},
			{"Ask", fmt.Sprintf("%s x %s", f.Price(ticker.BestAskPrice), f.Amount(ticker.BestAskVolume))},
			{"Open 24h", f.Price(ticker.Open24h)},
			{"High 24h", f.Price(ticker.High24h)},
			{"Low 24h", f.Price(ticker.Low24h)},
			{"Base Volume 24h", f.Amount(ticker.BaseVolume24h)},
			{"Quote Volume 24h", ticker.QuoteVolume24h.StringFixed(2)},
		})
		t.Render()
		return nil
	},
}

// go run ./cmd/fcoin depth btcusdt --level L20
var depthCmd = &cobra.Command{
	Use:   "depth SYMBOL",
	Short: "Show the order book of a symbol",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		level, err := cmd.Flags().GetString("level")
		if err != nil {
			return err
		}

		rows, err := cmd.Flags().GetInt("rows")
		if err != nil {
			return err
		}

		client, _, err := newRestClient(false)
		if err != nil {
			return err
		}

		body, err := client.GetDepth(ctx, fcoinapi.DepthLevel(level), args[0])
		if err != nil {
			return err
		}

		depth, err := fcoinapi.ParseDepth(body)
		if err != nil {
			return err
		}

		f := loadSymbolFormatters(ctx, client).Get(args[0])

		t := style.NewTable(cmd.OutOrStdout(), "Bid Volume", "Bid", "Ask", "Ask Volume")
		t.SetTitle(fmt.Sprintf("%s seq %d", depth.Type, depth.Seq))

		for i := 0; i < rows && (i < len(depth.Bids) || i < len(depth.Asks)); i++ {
			row := table.Row{"", "", "", ""}
			if i < len(depth.Bids) {
				row[0] = f.Amount(depth.Bids[i].Volume)
				row[1] = f.Price(depth.Bids[i].Price)
			}
			if i < len(depth.Asks) {
				row[2] = f.Price(depth.Asks[i].Price)
				row[3] = f.Amount(depth.Asks[i].Volume)
			}
			t.AppendRow(row)
		}
		t.Render()
		return nil
	},
}

// go run ./cmd/fcoin trades btcusdt --limit 20
var tradesCmd = &cobra.Command{
	Use:   "trades SYMBOL",
	Short: "Show the latest public trades of a symbol",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		beforeID, err := cmd.Flags().GetString("before-id")
		if err != nil {
			return err
		}

		limit, err := cmd.Flags().GetInt("limit")
		if err != nil {
			return err
		}

		client, _, err := newRestClient(false)
		if err != nil {
			return err
		}

		body, err := client.GetTrades(ctx, fcoinapi.TradeQuery{
			Symbol:   args[0],
			BeforeID: beforeID,
			Limit:    limit,
		})
		if err != nil {
			return err
		}

		var trades []fcoinapi.MarketTrade
		if err := fcoinapi.DecodeResponseData(body, &trades); err != nil {
			return err
		}

		f := loadSymbolFormatters(ctx, client).Get(args[0])

		t := style.NewTable(cmd.OutOrStdout(), "ID", "Time", "Side", "Price", "Amount")
		for _, trade := range trades {
			t.AppendRow(table.Row{
				trade.ID,
				time.UnixMilli(trade.TS).Format(time.RFC3339),
				style.SideColor(trade.Side),
				f.Price(trade.Price),
				f.Amount(trade.Amount),
			})
		}
		t.Render()
		return nil
	},
}
