package fcoinapi

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type SideType string

const (
	SideTypeBuy  SideType = "buy"
	SideTypeSell SideType = "sell"
)

type OrderType string

const (
	OrderTypeLimit  OrderType = "limit"
	OrderTypeMarket OrderType = "market"
)

type OrderState string

const (
	OrderStateSubmitted       OrderState = "submitted"
	OrderStatePartialFilled   OrderState = "partial_filled"
	OrderStatePartialCanceled OrderState = "partial_canceled"
	OrderStateFilled          OrderState = "filled"
	OrderStateCanceled        OrderState = "canceled"
	OrderStatePendingCancel   OrderState = "pending_cancel"
)

// SubmitOrderRequest is the body of POST orders.
type SubmitOrderRequest struct {
	Symbol string
	Side   SideType
	Type   OrderType

	// Price is required for limit orders
	Price  decimal.Decimal
	Amount decimal.Decimal
}

func (r SubmitOrderRequest) Validate() error {
	if strings.TrimSpace(r.Symbol) == "" {
		return errors.New("fcoin: order symbol is required")
	}

	switch r.Side {
	case SideTypeBuy, SideTypeSell:
	default:
		return errors.Errorf("fcoin: invalid order side %q", string(r.Side))
	}

	switch r.Type {
	case OrderTypeLimit:
		if !r.Price.IsPositive() {
			return errors.Errorf("fcoin: limit order price must be positive, given %s", r.Price.String())
		}
	case OrderTypeMarket:
	default:
		return errors.Errorf("fcoin: invalid order type %q", string(r.Type))
	}

	if !r.Amount.IsPositive() {
		return errors.Errorf("fcoin: order amount must be positive, given %s", r.Amount.String())
	}

	return nil
}

func (r SubmitOrderRequest) params() map[string]string {
	params := map[string]string{
		"symbol": r.Symbol,
		"side":   string(r.Side),
		"type":   string(r.Type),
		"amount": r.Amount.String(),
	}

	if !r.Price.IsZero() {
		params["price"] = r.Price.String()
	}

	return params
}

// OrderQuery is the criteria of GET orders.
type OrderQuery struct {
	Symbol string
	States []OrderState

	// Before and After are the page cursors
	Before string
	After  string

	// Limit defaults to 20 on the server side
	Limit int
}

func (q OrderQuery) Validate() error {
	if strings.TrimSpace(q.Symbol) == "" {
		return errors.New("fcoin: order query symbol is required")
	}

	if len(q.States) == 0 {
		return errors.New("fcoin: order query states is required")
	}

	return nil
}

func (q OrderQuery) params() map[string]string {
	states := make([]string, 0, len(q.States))
	for _, s := range q.States {
		states = append(states, string(s))
	}

	params := map[string]string{
		"symbol": q.Symbol,
		"states": strings.Join(states, ","),
	}

	if q.Before != "" {
		params["before"] = q.Before
	}

	if q.After != "" {
		params["after"] = q.After
	}

	if q.Limit > 0 {
		params["limit"] = strconv.Itoa(q.Limit)
	}

	return params
}

// CreateOrder submits a new order, the response data is the order id.
// POST orders
func (c *RestClient) CreateOrder(ctx context.Context, order SubmitOrderRequest) ([]byte, error) {
	if err := order.Validate(); err != nil {
		return nil, err
	}

	return c.Do(ctx, Request{
		Method:        http.MethodPost,
		Path:          "orders",
		Params:        order.params(),
		Authenticated: true,
	})
}

// ListOrders
// GET orders?symbol=&states=&before=&after=&limit=
func (c *RestClient) ListOrders(ctx context.Context, query OrderQuery) ([]byte, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return c.Do(ctx, Request{
		Method:        http.MethodGet,
		Path:          "orders",
		Params:        query.params(),
		Authenticated: true,
	})
}

// GetOrder
// GET orders/{order_id}
func (c *RestClient) GetOrder(ctx context.Context, orderID string) ([]byte, error) {
	if err := validatePathSegment("order id", orderID); err != nil {
		return nil, err
	}

	return c.Do(ctx, Request{
		Method:        http.MethodGet,
		Path:          "orders/" + orderID,
		Authenticated: true,
		Endpoint:      "orders/{id}",
	})
}

// CancelOrder requests the cancellation, the order state turns into pending_cancel.
// POST orders/{order_id}/submit-cancel
func (c *RestClient) CancelOrder(ctx context.Context, orderID string) ([]byte, error) {
	if err := validatePathSegment("order id", orderID); err != nil {
		return nil, err
	}

	return c.Do(ctx, Request{
		Method:        http.MethodPost,
		Path:          "orders/" + orderID + "/submit-cancel",
		Authenticated: true,
		Endpoint:      "orders/{id}/submit-cancel",
	})
}

// GetOrderMatchResults returns the fills of the order.
// GET orders/{order_id}/match-results
func (c *RestClient) GetOrderMatchResults(ctx context.Context, orderID string) ([]byte, error) {
	if err := validatePathSegment("order id", orderID); err != nil {
		return nil, err
	}

	return c.Do(ctx, Request{
		Method:        http.MethodGet,
		Path:          "orders/" + orderID + "/match-results",
		Authenticated: true,
		Endpoint:      "orders/{id}/match-results",
	})
}
