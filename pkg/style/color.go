package style

import (
	"github.com/fatih/color"
	"github.com/shopspring/decimal"

	"github.com/c9s/fcoin/pkg/exchange/fcoin/fcoinapi"
)

var (
	buyColor  = color.New(color.FgGreen).SprintFunc()
	sellColor = color.New(color.FgRed).SprintFunc()
	headline  = color.New(color.FgHiCyan, color.Bold).SprintFunc()
)

// SideColor renders buy in green and sell in red.
func SideColor(side fcoinapi.SideType) string {
	switch side {
	case fcoinapi.SideTypeBuy:
		return buyColor(string(side))
	case fcoinapi.SideTypeSell:
		return sellColor(string(side))
	}

	return string(side)
}

func Headline(s string) string {
	return headline(s)
}

// NonZero reports whether any of the amounts is not zero, balance tables skip the empty rows.
func NonZero(values ...decimal.Decimal) bool {
	for _, v := range values {
		if !v.IsZero() {
			return true
		}
	}

	return false
}
