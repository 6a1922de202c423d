package style

import (
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"

	"github.com/c9s/fcoin/pkg/exchange/fcoin/fcoinapi"
)

// DefaultPrecision is used when the precision of a symbol is unknown.
const DefaultPrecision = 8

// NumberFormatter renders the prices and amounts of a symbol with the precision
// published in public/symbols.
type NumberFormatter struct {
	price  *accounting.Accounting
	amount *accounting.Accounting
}

func NewNumberFormatter(pricePrecision, amountPrecision int) *NumberFormatter {
	return &NumberFormatter{
		price:  newAccounting(pricePrecision),
		amount: newAccounting(amountPrecision),
	}
}

func NewSymbolFormatter(symbol fcoinapi.Symbol) *NumberFormatter {
	return NewNumberFormatter(symbol.PriceDecimal, symbol.AmountDecimal)
}

func DefaultNumberFormatter() *NumberFormatter {
	return NewNumberFormatter(DefaultPrecision, DefaultPrecision)
}

func newAccounting(precision int) *accounting.Accounting {
	if precision < 0 {
		precision = DefaultPrecision
	}

	a := accounting.DefaultAccounting("", precision)
	a.Format = "%v"
	return a
}

func (f *NumberFormatter) Price(v decimal.Decimal) string {
	return f.price.FormatMoney(v)
}

func (f *NumberFormatter) Amount(v decimal.Decimal) string {
	return f.amount.FormatMoney(v)
}

// SymbolFormatters indexes the formatters by symbol name.
type SymbolFormatters map[string]*NumberFormatter

func NewSymbolFormatters(symbols []fcoinapi.Symbol) SymbolFormatters {
	formatters := make(SymbolFormatters, len(symbols))
	for _, s := range symbols {
		formatters[s.Name] = NewSymbolFormatter(s)
	}

	return formatters
}

// Get falls back to DefaultPrecision for unknown symbols.
func (m SymbolFormatters) Get(symbol string) *NumberFormatter {
	if f, ok := m[symbol]; ok {
		return f
	}

	return DefaultNumberFormatter()
}
