package fcoinapi

import (
	"context"
	"net/http"
)

// GetBalance
// GET accounts/balance
func (c *RestClient) GetBalance(ctx context.Context) ([]byte, error) {
	return c.Do(ctx, Request{
		Method:        http.MethodGet,
		Path:          "accounts/balance",
		Authenticated: true,
	})
}
