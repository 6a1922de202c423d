package fcoinapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type DepthLevel string

const (
	DepthLevelL20  DepthLevel = "L20"
	DepthLevelL100 DepthLevel = "L100"
	DepthLevelFull DepthLevel = "full"
)

func (l DepthLevel) Validate() error {
	switch l {
	case DepthLevelL20, DepthLevelL100, DepthLevelFull:
		return nil
	}

	return errors.Errorf("fcoin: invalid depth level %q, valid levels: L20, L100, full", string(l))
}

// TradeQuery selects the latest public trades of a symbol.
type TradeQuery struct {
	Symbol string

	// BeforeID returns the trades before the given trade id
	BeforeID string

	Limit int
}

func (q TradeQuery) params() map[string]string {
	params := map[string]string{}
	if q.BeforeID != "" {
		params["before_id"] = q.BeforeID
	}

	if q.Limit > 0 {
		params["limit"] = strconv.Itoa(q.Limit)
	}

	return params
}

// GetTicker
// GET market/ticker/{symbol}
func (c *RestClient) GetTicker(ctx context.Context, symbol string) ([]byte, error) {
	if err := validatePathSegment("symbol", symbol); err != nil {
		return nil, err
	}

	return c.Do(ctx, Request{
		Method:   http.MethodGet,
		Path:     "market/ticker/" + symbol,
		Endpoint: "market/ticker/{symbol}",
	})
}

// GetDepth
// GET market/depth/{level}/{symbol}
func (c *RestClient) GetDepth(ctx context.Context, level DepthLevel, symbol string) ([]byte, error) {
	if err := level.Validate(); err != nil {
		return nil, err
	}

	if err := validatePathSegment("symbol", symbol); err != nil {
		return nil, err
	}

	return c.Do(ctx, Request{
		Method:   http.MethodGet,
		Path:     "market/depth/" + string(level) + "/" + symbol,
		Endpoint: "market/depth/{level}/{symbol}",
	})
}

// GetTrades
// GET market/trades/{symbol}?before_id=&limit=
func (c *RestClient) GetTrades(ctx context.Context, query TradeQuery) ([]byte, error) {
	if err := validatePathSegment("symbol", query.Symbol); err != nil {
		return nil, err
	}

	return c.Do(ctx, Request{
		Method:   http.MethodGet,
		Path:     "market/trades/" + query.Symbol,
		Params:   query.params(),
		Endpoint: "market/trades/{symbol}",
	})
}

// validatePathSegment rejects values that would change the requested route. The
// segment is signed as is, so it must also reach the wire unchanged: values that
// need path escaping are rejected.
func validatePathSegment(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.Errorf("fcoin: %s is required", name)
	}

	if strings.ContainsAny(value, "/?#") {
		return errors.Errorf("fcoin: %s %q contains reserved characters", name, value)
	}

	if url.PathEscape(value) != value {
		return errors.Errorf("fcoin: %s %q must not need url escaping", name, value)
	}

	return nil
}
