package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/c9s/fcoin/pkg/exchange/fcoin/fcoinapi"
	"github.com/c9s/fcoin/pkg/style"
)

func init() {
	listOrdersCmd.Flags().String("symbol", "", "the trading pair, like btcusdt")
	listOrdersCmd.Flags().StringSlice("states", nil, "order states, like submitted,filled")
	listOrdersCmd.Flags().String("before", "", "page cursor")
	listOrdersCmd.Flags().String("after", "", "page cursor")
	listOrdersCmd.Flags().Int("limit", 0, "number of orders")

	submitOrderCmd.Flags().String("symbol", "", "the trading pair, like btcusdt")
	submitOrderCmd.Flags().String("side", "", "buy or sell")
	submitOrderCmd.Flags().String("type", string(fcoinapi.OrderTypeLimit), "limit or market")
	submitOrderCmd.Flags().String("price", "", "order price, required for limit orders")
	submitOrderCmd.Flags().String("amount", "", "order amount")

	ordersCmd.AddCommand(listOrdersCmd)
	ordersCmd.AddCommand(getOrderCmd)
	ordersCmd.AddCommand(submitOrderCmd)
	ordersCmd.AddCommand(cancelOrderCmd)
	ordersCmd.AddCommand(orderTradesCmd)
	RootCmd.AddCommand(ordersCmd)
}

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Query and manage orders",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// go run ./cmd/fcoin orders list --symbol btcusdt --states submitted,partial_filled
var listOrdersCmd = &cobra.Command{
	Use:   "list",
	Short: "List orders, the symbol and states default to the orders section of the config",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		client, conf, err := newRestClient(true)
		if err != nil {
			return err
		}

		query := fcoinapi.OrderQuery{
			Symbol: conf.Orders.Symbol,
			Limit:  conf.Orders.Limit,
		}

		if symbol, _ := cmd.Flags().GetString("symbol"); symbol != "" {
			query.Symbol = symbol
		}

		states := []string(conf.Orders.States)
		if flagStates, _ := cmd.Flags().GetStringSlice("states"); len(flagStates) > 0 {
			states = flagStates
		}
		for _, s := range states {
			query.States = append(query.States, fcoinapi.OrderState(s))
		}

		query.Before, _ = cmd.Flags().GetString("before")
		query.After, _ = cmd.Flags().GetString("after")
		if limit, _ := cmd.Flags().GetInt("limit"); limit > 0 {
			query.Limit = limit
		}

		body, err := client.ListOrders(ctx, query)
		if err != nil {
			return err
		}

		var orders []fcoinapi.Order
		if err := fcoinapi.DecodeResponseData(body, &orders); err != nil {
			return err
		}

		renderOrders(cmd, loadSymbolFormatters(ctx, client), orders)
		return nil
	},
}

// go run ./cmd/fcoin orders get ORDER_ID
var getOrderCmd = &cobra.Command{
	Use:   "get ORDER_ID",
	Short: "Show an order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		client, _, err := newRestClient(true)
		if err != nil {
			return err
		}

		body, err := client.GetOrder(ctx, args[0])
		if err != nil {
			return err
		}

		var order fcoinapi.Order
		if err := fcoinapi.DecodeResponseData(body, &order); err != nil {
			return err
		}

		renderOrders(cmd, loadSymbolFormatters(ctx, client), []fcoinapi.Order{order})
		return nil
	},
}

// go run ./cmd/fcoin orders submit --symbol btcusdt --side buy --price 100 --amount 0.01
var submitOrderCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit an order",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		symbol, _ := cmd.Flags().GetString("symbol")
		side, _ := cmd.Flags().GetString("side")
		orderType, _ := cmd.Flags().GetString("type")
		priceStr, _ := cmd.Flags().GetString("price")
		amountStr, _ := cmd.Flags().GetString("amount")

		client, conf, err := newRestClient(true)
		if err != nil {
			return err
		}

		if symbol == "" {
			symbol = conf.Orders.Symbol
		}

		order := fcoinapi.SubmitOrderRequest{
			Symbol: symbol,
			Side:   fcoinapi.SideType(side),
			Type:   fcoinapi.OrderType(orderType),
		}

		if priceStr != "" {
			if order.Price, err = decimal.NewFromString(priceStr); err != nil {
				return errors.Wrapf(err, "invalid price %q", priceStr)
			}
		}

		if order.Amount, err = decimal.NewFromString(amountStr); err != nil {
			return errors.Wrapf(err, "invalid amount %q", amountStr)
		}

		body, err := client.CreateOrder(ctx, order)
		if err != nil {
			return err
		}

		orderID, err := fcoinapi.ParseOrderID(body)
		if err != nil {
			return err
		}

		log.Infof("order submitted: %s %s %s %s @ %s", orderID, order.Side, order.Amount, order.Symbol, order.Price)
		fmt.Fprintln(cmd.OutOrStdout(), orderID)
		return nil
	},
}

// go run ./cmd/fcoin orders cancel ORDER_ID
var cancelOrderCmd = &cobra.Command{
	Use:   "cancel ORDER_ID",
	Short: "Request the cancellation of an order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		client, _, err := newRestClient(true)
		if err != nil {
			return err
		}

		body, err := client.CancelOrder(ctx, args[0])
		if err != nil {
			return err
		}

		resp, err := fcoinapi.ParseResponse(body)
		if err != nil {
			return err
		}

		if err := resp.Validate(); err != nil {
			return err
		}

		log.Infof("cancel requested: %s", args[0])
		return nil
	},
}

// go run ./cmd/fcoin orders trades ORDER_ID
var orderTradesCmd = &cobra.Command{
	Use:   "trades ORDER_ID",
	Short: "Show the match results of an order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		client, _, err := newRestClient(true)
		if err != nil {
			return err
		}

		body, err := client.GetOrderMatchResults(ctx, args[0])
		if err != nil {
			return err
		}

		var results []fcoinapi.MatchResult
		if err := fcoinapi.DecodeResponseData(body, &results); err != nil {
			return err
		}

		// match results do not carry the symbol
		f := style.DefaultNumberFormatter()
		t := style.NewTable(cmd.OutOrStdout(), "Time", "Side", "Type", "Price", "Filled", "Fees")
		for _, r := range results {
			t.AppendRow(table.Row{
				time.UnixMilli(r.CreatedAt).Format(time.RFC3339),
				style.SideColor(r.Side),
				r.Type,
				f.Price(r.Price),
				f.Amount(r.FilledAmount),
				r.FillFees.String(),
			})
		}
		t.Render()
		return nil
	},
}

func renderOrders(cmd *cobra.Command, formatters style.SymbolFormatters, orders []fcoinapi.Order) {
	t := style.NewTable(cmd.OutOrStdout(), "ID", "Symbol", "Side", "Type", "Price", "Amount", "Filled", "State", "Created")
	for _, o := range orders {
		f := formatters.Get(o.Symbol)
		t.AppendRow(table.Row{
			o.ID,
			o.Symbol,
			style.SideColor(o.Side),
			o.Type,
			f.Price(o.Price),
			f.Amount(o.Amount),
			f.Amount(o.FilledAmount),
			o.State,
			time.UnixMilli(o.CreatedAt).Format(time.RFC3339),
		})
	}
	t.Render()
}
