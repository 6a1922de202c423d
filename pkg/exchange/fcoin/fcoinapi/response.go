package fcoinapi

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/valyala/fastjson"
)

// APIResponse is the envelope of every response body:
//
//	{"status": 0, "data": ...}
//	{"status": 0, "msg": "string", "data": ...}
//
// The client returns raw bodies, this is for the caller side.
type APIResponse struct {
	Status  int             `json:"status"`
	Message string          `json:"msg,omitempty"`
	Data    json.RawMessage `json:"data"`
}

func ParseResponse(body []byte) (*APIResponse, error) {
	var resp APIResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, errors.Wrapf(err, "fcoin: unable to parse response: %s", string(body))
	}

	return &resp, nil
}

// Validate returns *APIError when the status is not 0.
func (r *APIResponse) Validate() error {
	if r.Status != 0 {
		return &APIError{Status: r.Status, Message: r.Message}
	}

	return nil
}

func (r *APIResponse) DecodeData(o interface{}) error {
	if len(r.Data) == 0 {
		return errors.New("fcoin: response data is empty")
	}

	return json.Unmarshal(r.Data, o)
}

// DecodeResponseData parses the envelope, validates the status and decodes data into o.
func DecodeResponseData(body []byte, o interface{}) error {
	resp, err := ParseResponse(body)
	if err != nil {
		return err
	}

	if err := resp.Validate(); err != nil {
		return err
	}

	return resp.DecodeData(o)
}

type Symbol struct {
	Name          string `json:"name"`
	BaseCurrency  string `json:"base_currency"`
	QuoteCurrency string `json:"quote_currency"`
	PriceDecimal  int    `json:"price_decimal"`
	AmountDecimal int    `json:"amount_decimal"`
}

type Balance struct {
	Currency  string          `json:"currency"`
	Category  string          `json:"category,omitempty"`
	Available decimal.Decimal `json:"available"`
	Frozen    decimal.Decimal `json:"frozen"`
	Balance   decimal.Decimal `json:"balance"`
}

type Order struct {
	ID            string          `json:"id"`
	Symbol        string          `json:"symbol"`
	Type          OrderType       `json:"type"`
	Side          SideType        `json:"side"`
	Price         decimal.Decimal `json:"price"`
	Amount        decimal.Decimal `json:"amount"`
	State         OrderState      `json:"state"`
	ExecutedValue decimal.Decimal `json:"executed_value"`
	FillFees      decimal.Decimal `json:"fill_fees"`
	FilledAmount  decimal.Decimal `json:"filled_amount"`
	CreatedAt     int64           `json:"created_at"`
	Source        string          `json:"source"`
}

type MatchResult struct {
	Price        decimal.Decimal `json:"price"`
	FillFees     decimal.Decimal `json:"fill_fees"`
	FilledAmount decimal.Decimal `json:"filled_amount"`
	Side         SideType        `json:"side"`
	Type         OrderType       `json:"type"`
	CreatedAt    int64           `json:"created_at"`
}

type MarketTrade struct {
	ID     int64           `json:"id"`
	TS     int64           `json:"ts"`
	Side   SideType        `json:"side"`
	Price  decimal.Decimal `json:"price"`
	Amount decimal.Decimal `json:"amount"`
}

// Ticker is the decoded positional ticker array.
type Ticker struct {
	Type string
	Seq  int64

	LastPrice      decimal.Decimal
	LastVolume     decimal.Decimal
	BestBidPrice   decimal.Decimal
	BestBidVolume  decimal.Decimal
	BestAskPrice   decimal.Decimal
	BestAskVolume  decimal.Decimal
	Open24h        decimal.Decimal
	High24h        decimal.Decimal
	Low24h         decimal.Decimal
	BaseVolume24h  decimal.Decimal
	QuoteVolume24h decimal.Decimal
}

const tickerFieldCount = 11

// PriceVolume is one level of a depth snapshot.
type PriceVolume struct {
	Price  decimal.Decimal
	Volume decimal.Decimal
}

type Depth struct {
	Type string
	Seq  int64
	TS   int64
	Bids []PriceVolume
	Asks []PriceVolume
}

// ParseOrderID extracts the order id from the response of CreateOrder.
func ParseOrderID(body []byte) (string, error) {
	val, err := parseEnvelope(body)
	if err != nil {
		return "", err
	}

	id := string(val.GetStringBytes("data"))
	if id == "" {
		return "", errors.Errorf("fcoin: order id not found in response: %s", string(body))
	}

	return id, nil
}

// ParseServerTime returns the server time in milliseconds.
func ParseServerTime(body []byte) (int64, error) {
	val, err := parseEnvelope(body)
	if err != nil {
		return 0, err
	}

	data := val.Get("data")
	if data == nil {
		return 0, errors.Errorf("fcoin: server time not found in response: %s", string(body))
	}

	return data.Int64()
}

// ParseTicker parses the response of GetTicker:
//
//	{"status":0,"data":{"type":"ticker.btcusdt","seq":680035,"ticker":[7140.89, 1.0, ...]}}
func ParseTicker(body []byte) (*Ticker, error) {
	val, err := parseEnvelope(body)
	if err != nil {
		return nil, err
	}

	data := val.Get("data")
	if data == nil {
		return nil, errors.Errorf("fcoin: ticker data not found in response: %s", string(body))
	}

	values := data.GetArray("ticker")
	if len(values) < tickerFieldCount {
		return nil, errors.Errorf("fcoin: incorrect ticker length %d, expecting %d", len(values), tickerFieldCount)
	}

	fields := make([]decimal.Decimal, tickerFieldCount)
	for i := 0; i < tickerFieldCount; i++ {
		d, err := decimalFromValue(values[i])
		if err != nil {
			return nil, errors.Wrapf(err, "fcoin: invalid ticker field #%d", i)
		}

		fields[i] = d
	}

	return &Ticker{
		Type:           string(data.GetStringBytes("type")),
		Seq:            data.GetInt64("seq"),
		LastPrice:      fields[0],
		LastVolume:     fields[1],
		BestBidPrice:   fields[2],
		BestBidVolume:  fields[3],
		BestAskPrice:   fields[4],
		BestAskVolume:  fields[5],
		Open24h:        fields[6],
		High24h:        fields[7],
		Low24h:         fields[8],
		BaseVolume24h:  fields[9],
		QuoteVolume24h: fields[10],
	}, nil
}

// ParseDepth parses the response of GetDepth, bids and asks are flat [price, volume, price, volume...] arrays.
func ParseDepth(body []byte) (*Depth, error) {
	val, err := parseEnvelope(body)
	if err != nil {
		return nil, err
	}

	data := val.Get("data")
	if data == nil {
		return nil, errors.Errorf("fcoin: depth data not found in response: %s", string(body))
	}

	bids, err := parsePriceVolumes(data.GetArray("bids"))
	if err != nil {
		return nil, errors.Wrap(err, "fcoin: invalid bids")
	}

	asks, err := parsePriceVolumes(data.GetArray("asks"))
	if err != nil {
		return nil, errors.Wrap(err, "fcoin: invalid asks")
	}

	return &Depth{
		Type: string(data.GetStringBytes("type")),
		Seq:  data.GetInt64("seq"),
		TS:   data.GetInt64("ts"),
		Bids: bids,
		Asks: asks,
	}, nil
}

func parsePriceVolumes(values []*fastjson.Value) ([]PriceVolume, error) {
	if len(values)%2 != 0 {
		return nil, errors.Errorf("incorrect book entry element length %d", len(values))
	}

	entries := make([]PriceVolume, 0, len(values)/2)
	for i := 0; i < len(values); i += 2 {
		price, err := decimalFromValue(values[i])
		if err != nil {
			return nil, err
		}

		volume, err := decimalFromValue(values[i+1])
		if err != nil {
			return nil, err
		}

		entries = append(entries, PriceVolume{Price: price, Volume: volume})
	}

	return entries, nil
}

// parseEnvelope parses the body and checks the status field.
func parseEnvelope(body []byte) (*fastjson.Value, error) {
	parser := fastjson.Parser{}
	val, err := parser.ParseBytes(body)
	if err != nil {
		return nil, errors.Wrap(err, "fcoin: failed to parse payload: "+string(body))
	}

	if status := val.GetInt("status"); status != 0 {
		return nil, &APIError{Status: status, Message: string(val.GetStringBytes("msg"))}
	}

	return val, nil
}

func decimalFromValue(v *fastjson.Value) (decimal.Decimal, error) {
	switch v.Type() {
	case fastjson.TypeNumber:
		return decimal.NewFromString(v.String())
	case fastjson.TypeString:
		return decimal.NewFromString(string(v.GetStringBytes()))
	}

	return decimal.Zero, errors.Errorf("unexpected value type %s", v.Type())
}
