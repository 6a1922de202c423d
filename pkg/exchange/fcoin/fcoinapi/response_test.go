package fcoinapi

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResponse(t *testing.T) {
	resp, err := ParseResponse([]byte(`{"status":0,"msg":"string","data":true}`))
	require.NoError(t, err)
	assert.NoError(t, resp.Validate())
	assert.Equal(t, "string", resp.Message)

	var ok bool
	require.NoError(t, resp.DecodeData(&ok))
	assert.True(t, ok)

	resp, err = ParseResponse([]byte(`{"status":1016,"msg":"account balance insufficient"}`))
	require.NoError(t, err)

	var apiErr *APIError
	if assert.True(t, errors.As(resp.Validate(), &apiErr)) {
		assert.Equal(t, 1016, apiErr.Status)
		assert.Equal(t, "account balance insufficient", apiErr.Message)
	}
	assert.Error(t, resp.DecodeData(&ok))

	_, err = ParseResponse([]byte(`<html>502</html>`))
	assert.Error(t, err)
}

func TestDecodeResponseData(t *testing.T) {
	body := []byte(`{
		"status":0,
		"data":[{
			"id":"9d17a03b852e48c0b3920c7412867623",
			"symbol":"btcusdt",
			"type":"limit",
			"side":"buy",
			"price":"300.00",
			"amount":"0.0100",
			"state":"partial_filled",
			"executed_value":"1.50",
			"fill_fees":"0.000005",
			"filled_amount":"0.0050",
			"created_at":1523419946174,
			"source":"api"
		}]
	}`)

	var orders []Order
	require.NoError(t, DecodeResponseData(body, &orders))
	require.Len(t, orders, 1)

	order := orders[0]
	assert.Equal(t, "9d17a03b852e48c0b3920c7412867623", order.ID)
	assert.Equal(t, SideTypeBuy, order.Side)
	assert.Equal(t, OrderTypeLimit, order.Type)
	assert.Equal(t, OrderStatePartialFilled, order.State)
	assert.True(t, decimal.RequireFromString("300").Equal(order.Price))
	assert.True(t, decimal.RequireFromString("0.005").Equal(order.FilledAmount))
	assert.Equal(t, int64(1523419946174), order.CreatedAt)

	err := DecodeResponseData([]byte(`{"status":6005,"msg":"api key check fail"}`), &orders)
	var apiErr *APIError
	assert.True(t, errors.As(err, &apiErr))
}

func TestDecodeMarketTrades(t *testing.T) {
	body := []byte(`{"status":0,"data":[
		{"amount":1.000000000,"ts":1523419946174,"id":76000,"side":"sell","price":4.000000000},
		{"amount":1.000000000,"ts":1523419114272,"id":74000,"side":"buy","price":3.500000000}
	]}`)

	var trades []MarketTrade
	require.NoError(t, DecodeResponseData(body, &trades))
	require.Len(t, trades, 2)
	assert.Equal(t, int64(76000), trades[0].ID)
	assert.Equal(t, SideTypeSell, trades[0].Side)
	assert.True(t, decimal.RequireFromString("3.5").Equal(trades[1].Price))
}

func TestParseTicker(t *testing.T) {
	body := []byte(`{"status":0,"data":{"type":"ticker.btcusdt","seq":680035,"ticker":[7140.890000000000000000,1.000000000000000000,7131.330000000,233.524600000,7140.890000000,225.495049866,7140.890000000,7150.000000000,7100.000000000,1.000000000,7140.890000000000000000]}}`)

	ticker, err := ParseTicker(body)
	require.NoError(t, err)
	assert.Equal(t, "ticker.btcusdt", ticker.Type)
	assert.Equal(t, int64(680035), ticker.Seq)
	assert.Equal(t, "7140.89", ticker.LastPrice.String())
	assert.Equal(t, "7131.33", ticker.BestBidPrice.String())
	assert.Equal(t, "233.5246", ticker.BestBidVolume.String())
	assert.Equal(t, "225.495049866", ticker.BestAskVolume.String())
	assert.Equal(t, "7150", ticker.High24h.String())
	assert.Equal(t, "7100", ticker.Low24h.String())

	_, err = ParseTicker([]byte(`{"status":0,"data":{"type":"ticker.btcusdt","ticker":[1,2,3]}}`))
	assert.Error(t, err)

	_, err = ParseTicker([]byte(`{"status":40003,"msg":"symbol not found"}`))
	var apiErr *APIError
	if assert.True(t, errors.As(err, &apiErr)) {
		assert.Equal(t, 40003, apiErr.Status)
	}
}

func TestParseDepth(t *testing.T) {
	body := []byte(`{"status":0,"data":{"type":"depth.L20.btcusdt","ts":1523693400329,"seq":1,"bids":[7000.5,1.25,6999,"0.5"],"asks":[7001,2]}}`)

	depth, err := ParseDepth(body)
	require.NoError(t, err)
	assert.Equal(t, "depth.L20.btcusdt", depth.Type)
	assert.Equal(t, int64(1523693400329), depth.TS)
	require.Len(t, depth.Bids, 2)
	require.Len(t, depth.Asks, 1)
	assert.Equal(t, "7000.5", depth.Bids[0].Price.String())
	assert.Equal(t, "1.25", depth.Bids[0].Volume.String())
	assert.Equal(t, "0.5", depth.Bids[1].Volume.String())
	assert.Equal(t, "7001", depth.Asks[0].Price.String())

	_, err = ParseDepth([]byte(`{"status":0,"data":{"bids":[7000.5],"asks":[]}}`))
	assert.Error(t, err)
}

func TestParseOrderID(t *testing.T) {
	id, err := ParseOrderID([]byte(`{"status":0,"data":"9d17a03b852e48c0b3920c7412867623"}`))
	require.NoError(t, err)
	assert.Equal(t, "9d17a03b852e48c0b3920c7412867623", id)

	_, err = ParseOrderID([]byte(`{"status":0,"data":null}`))
	assert.Error(t, err)

	_, err = ParseOrderID([]byte(`not json`))
	assert.Error(t, err)
}
