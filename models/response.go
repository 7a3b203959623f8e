package models

type Response[T any] struct {
	Data T    `json:"data"`
	Meta Meta `json:"meta"`
}

type Meta struct {
	Currency       string `json:"currency,omitempty"`
	Expiry         string `json:"expiry,omitempty"`
	Strike         string `json:"strike,omitempty"`
	InstrumentName string `json:"instrument_name,omitempty"`
	Loading        bool   `json:"loading,omitempty"`
}
