package controllers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/nickbar86/derive/models"
)

type currencyView struct {
	Currency     string          `json:"currency"`
	SpotPrice    decimal.Decimal `json:"spot_price"`
	SpotPrice24h decimal.Decimal `json:"spot_price_24h"`
	Change24h    decimal.Decimal `json:"change_24h"`
	Change24hPct decimal.Decimal `json:"change_24h_pct"`
}

// GetCurrencies lists the supported currencies with 24h spot movement.
func (c *WizardController) GetCurrencies(w http.ResponseWriter, r *http.Request) {
	snap := c.wizard.Snapshot()

	out := make([]currencyView, 0, len(snap.Currencies))
	for _, a := range snap.Currencies {
		change := a.SpotPrice.Sub(a.SpotPrice24h)
		pct := decimal.Zero
		if !a.SpotPrice24h.IsZero() {
			pct = change.Div(a.SpotPrice24h).Mul(decimal.NewFromInt(100))
		}
		out = append(out, currencyView{
			Currency:     a.Currency,
			SpotPrice:    a.SpotPrice,
			SpotPrice24h: a.SpotPrice24h,
			Change24h:    change,
			Change24hPct: pct,
		})
	}

	writeJSON(w, models.Response[[]currencyView]{
		Data: out,
		Meta: models.Meta{
			Currency: snap.Selection.Currency,
			Loading:  snap.CurrenciesLoading,
		},
	})
}
