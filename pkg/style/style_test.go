package style

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/c9s/fcoin/pkg/exchange/fcoin/fcoinapi"
)

func TestSideColor(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = noColor })

	assert.Equal(t, "buy", SideColor(fcoinapi.SideTypeBuy))
	assert.Equal(t, "sell", SideColor(fcoinapi.SideTypeSell))
	assert.Equal(t, "hold", SideColor("hold"))
}

func TestNonZero(t *testing.T) {
	assert.False(t, NonZero())
	assert.False(t, NonZero(decimal.Zero, decimal.Zero))
	assert.True(t, NonZero(decimal.Zero, decimal.RequireFromString("0.0001")))
}

func TestNewTable(t *testing.T) {
	var buf bytes.Buffer
	tbl := NewTable(&buf, "Currency", "Balance")
	tbl.AppendRow([]interface{}{"btc", "1.5"})
	tbl.Render()

	out := buf.String()
	assert.Contains(t, out, "CURRENCY")
	assert.Contains(t, out, "btc")
	assert.Contains(t, out, "1.5")
}

func TestNumberFormatter(t *testing.T) {
	f := NewSymbolFormatter(fcoinapi.Symbol{Name: "btcusdt", PriceDecimal: 2, AmountDecimal: 4})
	assert.Equal(t, "6,543.21", f.Price(decimal.RequireFromString("6543.2100")))
	assert.Equal(t, "0.0150", f.Amount(decimal.RequireFromString("0.015")))

	formatters := NewSymbolFormatters([]fcoinapi.Symbol{{Name: "ethusdt", PriceDecimal: 1, AmountDecimal: 3}})
	assert.Equal(t, "300.5", formatters.Get("ethusdt").Price(decimal.RequireFromString("300.5")))
	assert.Equal(t, "1.50000000", formatters.Get("unknown").Amount(decimal.RequireFromString("1.5")))
}
