package cmd

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/fcoin/pkg/exchange/fcoin/fcoinapi"
)

func newTestServer(t *testing.T) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/v2/public/server-time", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":0,"data":1523069544359}`))
	})
	mux.HandleFunc("/v2/public/currencies", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":0,"data":["btc","eth","usdt"]}`))
	})
	mux.HandleFunc("/v2/accounts/balance", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(fcoinapi.HeaderAccessKey) != "cmd-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		_, _ = w.Write([]byte(`{"status":0,"data":[
			{"currency":"btc","available":"1.5","frozen":"0.5","balance":"2.0"},
			{"currency":"doge","available":"0","frozen":"0","balance":"0"}
		]}`))
	})
	mux.HandleFunc("/v2/public/symbols", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":0,"data":[
			{"name":"btcusdt","base_currency":"btc","quote_currency":"usdt","price_decimal":2,"amount_decimal":4}
		]}`))
	})
	mux.HandleFunc("/v2/orders", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			_, _ = w.Write([]byte(`{"status":0,"data":"9d17a03b852e48c0b3920c7412867623"}`))
		case http.MethodGet:
			if r.URL.Query().Get("symbol") != "btcusdt" || r.URL.Query().Get("states") != "submitted,filled" {
				w.WriteHeader(http.StatusBadRequest)
				return
			}

			_, _ = w.Write([]byte(`{"status":0,"data":[
				{"id":"o-1","symbol":"btcusdt","type":"limit","side":"buy","price":"6543.2","amount":"1.5",
				 "state":"submitted","executed_value":"0","fill_fees":"0","filled_amount":"0","created_at":1523069544359}
			]}`))
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func executeCommand(t *testing.T, server *httptest.Server, args ...string) (string, error) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("dotenv", "testdata/missing.env")
	viper.Set("fcoin-api-uri", server.URL+"/v2/")
	viper.Set("fcoin-api-key", "cmd-key")
	viper.Set("fcoin-api-secret", "cmd-secret")

	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&out)
	RootCmd.SetArgs(args)
	t.Cleanup(func() {
		RootCmd.SetOut(nil)
		RootCmd.SetErr(nil)
		RootCmd.SetArgs(nil)
	})

	err := RootCmd.Execute()
	return out.String(), err
}

func TestServerTimeCmd(t *testing.T) {
	server := newTestServer(t)

	out, err := executeCommand(t, server, "server-time")
	require.NoError(t, err)
	assert.Contains(t, out, "1523069544359")
	assert.Contains(t, out, "2018-04-07T")
}

func TestCurrenciesCmd(t *testing.T) {
	server := newTestServer(t)

	out, err := executeCommand(t, server, "currencies")
	require.NoError(t, err)
	assert.Equal(t, "btc\neth\nusdt\n", out)
}

func TestBalancesCmd(t *testing.T) {
	server := newTestServer(t)

	out, err := executeCommand(t, server, "balances")
	require.NoError(t, err)
	assert.Contains(t, out, "btc")
	assert.Contains(t, out, "1.5")
	assert.NotContains(t, out, "doge")

	out, err = executeCommand(t, server, "balances", "--raw")
	require.NoError(t, err)
	assert.Contains(t, out, `"currency": "doge"`)
}

func TestSubmitOrderCmd(t *testing.T) {
	server := newTestServer(t)

	out, err := executeCommand(t, server, "orders", "submit", "--symbol", "btcusdt", "--side", "buy", "--price", "100", "--amount", "0.01")
	require.NoError(t, err)
	assert.Contains(t, out, "9d17a03b852e48c0b3920c7412867623")

	_, err = executeCommand(t, server, "orders", "submit", "--symbol", "btcusdt", "--side", "buy", "--amount", "abc")
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), `invalid amount "abc"`)
		assert.NotNil(t, errors.Cause(err))
	}

	_, err = executeCommand(t, server, "orders", "submit", "--symbol", "btcusdt", "--side", "buy", "--price", "1..2", "--amount", "1")
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), `invalid price "1..2"`)
	}
}

func TestListOrdersCmd_SymbolPrecision(t *testing.T) {
	server := newTestServer(t)

	out, err := executeCommand(t, server, "orders", "list", "--symbol", "btcusdt", "--states", "submitted,filled")
	require.NoError(t, err)
	assert.Contains(t, out, "o-1")
	assert.Contains(t, out, "6,543.20")
	assert.Contains(t, out, "1.5000")
}

func TestPrintRaw(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printRaw(&buf, []byte(`{"status":0}`)))
	assert.Equal(t, "{\n  \"status\": 0\n}\n", buf.String())

	buf.Reset()
	require.NoError(t, printRaw(&buf, []byte(`not json`)))
	assert.Equal(t, "not json\n", buf.String())
}
