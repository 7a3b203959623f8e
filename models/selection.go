package models

import "github.com/shopspring/decimal"

// SelectionState is the user-facing selection. Expiry is the decimal string
// of an epoch-seconds expiry; Strike is a canonical decimal string. Empty
// means no selection at that level.
type SelectionState struct {
	Currency string `json:"currency"`
	Expiry   string `json:"expiry"`
	Strike   string `json:"strike"`
}

// WizardSnapshot is one consistent view of the whole selection pipeline,
// with independent loading flags per stage so callers can render partial
// progress.
type WizardSnapshot struct {
	Currencies         []Asset          `json:"currencies"`
	Selection          SelectionState   `json:"selection"`
	SpotPrice          *decimal.Decimal `json:"spot_price,omitempty"`
	Catalog            Catalog          `json:"catalog"`
	InstrumentName     string           `json:"instrument_name,omitempty"`
	Quote              *Quote           `json:"quote,omitempty"`
	CurrenciesLoading  bool             `json:"currencies_loading"`
	InstrumentsLoading bool             `json:"instruments_loading"`
	TickerLoading      bool             `json:"ticker_loading"`
}
