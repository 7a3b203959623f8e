package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/nickbar86/derive/models"
)

// RPCError is an application-level error envelope returned by the orderbook
// with a 2xx status.
type RPCError struct {
	Code    int
	Message string
	Data    string
}

func (e *RPCError) Error() string {
	if e.Data != "" {
		return fmt.Sprintf("rpc error [%d]: %s (data: %s)", e.Code, e.Message, e.Data)
	}
	return fmt.Sprintf("rpc error [%d]: %s", e.Code, e.Message)
}

type rpcErrorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    string `json:"data,omitempty"`
}

// A response carries either result or error, never both.
type rpcEnvelope struct {
	ID     json.RawMessage `json:"id"`
	Result json.RawMessage `json:"result"`
	Error  *rpcErrorBody   `json:"error"`
}

// Orderbook is a client for the Derive orderbook JSON-RPC-over-HTTP API.
// The protocol is agnostic to HTTP method; POST is used for JSON param
// packaging on every endpoint.
type Orderbook struct {
	baseURL string
	client  *http.Client
	log     zerolog.Logger
}

func NewOrderbook(baseURL string, log zerolog.Logger) *Orderbook {
	return &Orderbook{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
		log:     log.With().Str("client", "orderbook").Logger(),
	}
}

func (o *Orderbook) call(ctx context.Context, endpoint string, params, result any) error {
	body, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("orderbook %s: encode params: %w", endpoint, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL+endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("orderbook %s: build request: %w", endpoint, err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := o.client.Do(req)
	if err != nil {
		return fmt.Errorf("orderbook %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("orderbook %s: status %d: %s", endpoint, resp.StatusCode, string(text))
	}

	var envelope rpcEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("orderbook %s: decode response: %w", endpoint, err)
	}
	if envelope.Error != nil {
		return &RPCError{
			Code:    envelope.Error.Code,
			Message: envelope.Error.Message,
			Data:    envelope.Error.Data,
		}
	}

	if result != nil {
		if err := json.Unmarshal(envelope.Result, result); err != nil {
			return fmt.Errorf("orderbook %s: decode result: %w", endpoint, err)
		}
	}

	o.log.Debug().Str("endpoint", endpoint).Dur("elapsed", time.Since(start)).Msg("rpc call completed")
	return nil
}

// AllCurrencies fetches the full tradable asset list with spot prices.
func (o *Orderbook) AllCurrencies(ctx context.Context) ([]models.Asset, error) {
	var assets []models.Asset
	if err := o.call(ctx, "/public/get_all_currencies", struct{}{}, &assets); err != nil {
		return nil, err
	}
	return assets, nil
}

type instrumentsParams struct {
	Currency       string `json:"currency"`
	Expired        bool   `json:"expired"`
	InstrumentType string `json:"instrument_type"`
}

// Instruments fetches the live option contract list for one currency.
func (o *Orderbook) Instruments(ctx context.Context, currency string) ([]models.Contract, error) {
	params := instrumentsParams{
		Currency:       currency,
		Expired:        false,
		InstrumentType: "option",
	}
	var contracts []models.Contract
	if err := o.call(ctx, "/public/get_instruments", params, &contracts); err != nil {
		return nil, err
	}
	return contracts, nil
}

// Ticker fetches the live quote for one instrument by its exact stored name.
func (o *Orderbook) Ticker(ctx context.Context, instrumentName string) (*models.Quote, error) {
	params := map[string]string{"instrument_name": instrumentName}
	var quote models.Quote
	if err := o.call(ctx, "/public/get_ticker", params, &quote); err != nil {
		return nil, err
	}
	return &quote, nil
}
