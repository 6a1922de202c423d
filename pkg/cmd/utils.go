package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/c9s/fcoin/pkg/cmd/cmdutil"
	"github.com/c9s/fcoin/pkg/config"
	"github.com/c9s/fcoin/pkg/exchange/fcoin/fcoinapi"
	"github.com/c9s/fcoin/pkg/style"
)

func newRestClient(withCredentials bool) (*fcoinapi.RestClient, *config.Config, error) {
	conf, err := cmdutil.LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	client, err := cmdutil.NewRestClient(conf, withCredentials)
	if err != nil {
		return nil, nil, err
	}

	return client, conf, nil
}

// printRaw writes the response body as indented json, falls back to the raw bytes
// when the body is not json.
func printRaw(w io.Writer, body []byte) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, body, "", "  "); err != nil {
		_, err = fmt.Fprintln(w, string(body))
		return err
	}

	_, err := fmt.Fprintln(w, buf.String())
	return err
}

// loadSymbolFormatters queries public/symbols for the price and amount precisions.
// The tables still render with the default precision when the query fails.
func loadSymbolFormatters(ctx context.Context, client *fcoinapi.RestClient) style.SymbolFormatters {
	body, err := client.GetSymbols(ctx)
	if err != nil {
		log.WithError(err).Warn("unable to query symbols, using the default precision")
		return style.SymbolFormatters{}
	}

	var symbols []fcoinapi.Symbol
	if err := fcoinapi.DecodeResponseData(body, &symbols); err != nil {
		log.WithError(err).Warn("unable to decode symbols, using the default precision")
		return style.SymbolFormatters{}
	}

	return style.NewSymbolFormatters(symbols)
}
