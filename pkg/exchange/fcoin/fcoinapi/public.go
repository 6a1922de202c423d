package fcoinapi

import (
	"context"
	"net/http"
)

// GetServerTime
// GET public/server-time
func (c *RestClient) GetServerTime(ctx context.Context) ([]byte, error) {
	return c.Do(ctx, Request{
		Method: http.MethodGet,
		Path:   "public/server-time",
	})
}

// GetSymbols returns the supported trading pairs.
// GET public/symbols
func (c *RestClient) GetSymbols(ctx context.Context) ([]byte, error) {
	return c.Do(ctx, Request{
		Method: http.MethodGet,
		Path:   "public/symbols",
	})
}

// GetCurrencies
// GET public/currencies
func (c *RestClient) GetCurrencies(ctx context.Context) ([]byte, error) {
	return c.Do(ctx, Request{
		Method: http.MethodGet,
		Path:   "public/currencies",
	})
}
