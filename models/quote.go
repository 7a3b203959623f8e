package models

import "github.com/shopspring/decimal"

// OptionPricing is the pricing block of a ticker response.
type OptionPricing struct {
	BidIV     decimal.Decimal `json:"bid_iv"`
	AskIV     decimal.Decimal `json:"ask_iv"`
	IV        decimal.Decimal `json:"iv"`
	MarkPrice decimal.Decimal `json:"mark_price"`
	Delta     decimal.Decimal `json:"delta"`
	Gamma     decimal.Decimal `json:"gamma"`
	Theta     decimal.Decimal `json:"theta"`
	Vega      decimal.Decimal `json:"vega"`
	Rho       decimal.Decimal `json:"rho"`
}

// Quote is a live ticker for one instrument. It is replaced atomically or
// cleared to absent, never partially updated.
type Quote struct {
	InstrumentName string          `json:"instrument_name"`
	BestBidPrice   decimal.Decimal `json:"best_bid_price"`
	BestAskPrice   decimal.Decimal `json:"best_ask_price"`
	BestBidAmount  decimal.Decimal `json:"best_bid_amount"`
	BestAskAmount  decimal.Decimal `json:"best_ask_amount"`
	OptionPricing  *OptionPricing  `json:"option_pricing,omitempty"`
}
