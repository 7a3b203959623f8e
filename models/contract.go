package models

import "github.com/shopspring/decimal"

// OptionDetails carries the option-specific fields of an instrument.
// Expiry is epoch seconds at UTC calendar-day granularity.
type OptionDetails struct {
	Expiry     int64           `json:"expiry"`
	Strike     decimal.Decimal `json:"strike"`
	OptionType string          `json:"option_type,omitempty"`
	Index      string          `json:"index,omitempty"`
}

// Contract is one listed option instrument. InstrumentName is globally unique
// and is the join key for quotes.
type Contract struct {
	InstrumentName string        `json:"instrument_name"`
	IsActive       bool          `json:"is_active"`
	OptionDetails  OptionDetails `json:"option_details"`
}

// Catalog is the indexed form of a flat contract list. It is always replaced
// wholesale, never mutated in place.
//
// Expiries is strictly ascending with no duplicates. StrikesByExpiry is keyed
// by the decimal string of each expiry in Expiries; each strike list is
// strictly ascending by numeric value, stored as canonical decimal strings.
type Catalog struct {
	ByName          map[string]Contract `json:"by_name"`
	Expiries        []int64             `json:"expiries"`
	StrikesByExpiry map[string][]string `json:"strikes_by_expiry"`
}

// EmptyCatalog returns a catalog with no contracts. Empty is a valid state,
// not an error.
func EmptyCatalog() Catalog {
	return Catalog{
		ByName:          map[string]Contract{},
		Expiries:        []int64{},
		StrikesByExpiry: map[string][]string{},
	}
}
