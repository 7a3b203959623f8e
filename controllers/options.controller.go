package controllers

import (
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/nickbar86/derive/components"
	"github.com/nickbar86/derive/models"
)

type expiryView struct {
	Expiry int64  `json:"expiry"`
	Label  string `json:"label"`
}

// GetExpiries lists the catalog's expiries with display labels.
func (c *WizardController) GetExpiries(w http.ResponseWriter, r *http.Request) {
	snap := c.wizard.Snapshot()

	out := make([]expiryView, 0, len(snap.Catalog.Expiries))
	for _, e := range snap.Catalog.Expiries {
		out = append(out, expiryView{Expiry: e, Label: components.FormatExpiryLabel(e)})
	}

	writeJSON(w, models.Response[[]expiryView]{
		Data: out,
		Meta: models.Meta{
			Currency: snap.Selection.Currency,
			Expiry:   snap.Selection.Expiry,
			Loading:  snap.InstrumentsLoading,
		},
	})
}

// GetStrikes lists the strikes for ?expiry=..., defaulting to the selected
// expiry.
func (c *WizardController) GetStrikes(w http.ResponseWriter, r *http.Request) {
	snap := c.wizard.Snapshot()

	expiry := r.URL.Query().Get("expiry")
	if expiry == "" {
		expiry = snap.Selection.Expiry
	}
	if expiry == "" {
		http.Error(w, "missing expiry", http.StatusBadRequest)
		return
	}
	if _, err := strconv.ParseInt(expiry, 10, 64); err != nil {
		http.Error(w, "invalid expiry", http.StatusBadRequest)
		return
	}

	strikes := snap.Catalog.StrikesByExpiry[expiry]
	if strikes == nil {
		strikes = []string{}
	}

	writeJSON(w, models.Response[[]string]{
		Data: strikes,
		Meta: models.Meta{
			Currency: snap.Selection.Currency,
			Expiry:   expiry,
			Strike:   snap.Selection.Strike,
			Loading:  snap.InstrumentsLoading,
		},
	})
}

// GetQuote returns the live quote for the resolved contract, absent when the
// selection is incomplete or unmatched.
func (c *WizardController) GetQuote(w http.ResponseWriter, r *http.Request) {
	snap := c.wizard.Snapshot()

	writeJSON(w, models.Response[*models.Quote]{
		Data: snap.Quote,
		Meta: models.Meta{
			Currency:       snap.Selection.Currency,
			Expiry:         snap.Selection.Expiry,
			Strike:         snap.Selection.Strike,
			InstrumentName: snap.InstrumentName,
			Loading:        snap.TickerLoading,
		},
	})
}

// GetPayoff returns the payoff-at-expiry curve for the current selection.
// Incomplete selections yield an empty curve, not an error.
func (c *WizardController) GetPayoff(w http.ResponseWriter, r *http.Request) {
	snap := c.wizard.Snapshot()

	points := []components.PayoffPoint{}
	if snap.SpotPrice != nil && snap.Selection.Strike != "" && snap.Selection.Expiry != "" &&
		snap.Quote != nil && snap.Quote.OptionPricing != nil {
		if strike, err := decimal.NewFromString(snap.Selection.Strike); err == nil {
			isCall := strike.GreaterThan(*snap.SpotPrice)
			points = components.PayoffCurve(*snap.SpotPrice, strike, isCall)
		}
	}

	writeJSON(w, models.Response[[]components.PayoffPoint]{
		Data: points,
		Meta: models.Meta{
			Currency:       snap.Selection.Currency,
			Expiry:         snap.Selection.Expiry,
			Strike:         snap.Selection.Strike,
			InstrumentName: snap.InstrumentName,
			Loading:        snap.TickerLoading,
		},
	})
}
