package models

import "github.com/shopspring/decimal"

// DefaultCurrency is the selection before the user has picked anything.
const DefaultCurrency = "BTC"

// SupportedCurrencies is the allow-list applied at ingestion. Anything else
// returned by the orderbook is dropped and never enters state.
var SupportedCurrencies = []string{"BTC", "ETH"}

func IsSupportedCurrency(currency string) bool {
	for _, c := range SupportedCurrencies {
		if c == currency {
			return true
		}
	}
	return false
}

// Asset is one tradable underlying as returned by /public/get_all_currencies.
// Prices arrive as decimal strings and are kept exact.
type Asset struct {
	Currency     string          `json:"currency"`
	SpotPrice    decimal.Decimal `json:"spot_price"`
	SpotPrice24h decimal.Decimal `json:"spot_price_24h"`
}
