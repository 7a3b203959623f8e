package wizard

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/nickbar86/derive/components"
	"github.com/nickbar86/derive/models"
)

// refreshInstrumentsLocked re-fetches the contract catalog for the current
// currency. Callers must hold w.mu. Bumping the generation first makes any
// in-flight fetch stale regardless of whether a new one is dispatched.
// No fetch is issued without a reference price.
func (w *Wizard) refreshInstrumentsLocked() {
	w.instrumentsGen++

	spot, ok := w.spotPriceLocked()
	if w.selectedCurrency == "" || !ok {
		w.instrumentsLoading = false
		return
	}

	w.instrumentsLoading = true
	go w.fetchInstruments(w.ctx, w.instrumentsGen, w.selectedCurrency, spot)
}

func (w *Wizard) fetchInstruments(ctx context.Context, gen uint64, currency string, spot decimal.Decimal) {
	contracts, err := w.api.Instruments(ctx, currency)

	w.mu.Lock()
	defer w.mu.Unlock()

	if gen != w.instrumentsGen {
		w.log.Debug().Str("currency", currency).Msg("discarding stale instruments response")
		return
	}
	w.instrumentsLoading = false

	if err != nil {
		// "no data available", not a crash: reset and move on
		w.log.Warn().Err(err).Str("currency", currency).Msg("instruments fetch failed")
		w.catalog = models.EmptyCatalog()
		w.selectedExpiry = ""
		w.selectedStrike = ""
		w.refreshTickerLocked()
		return
	}

	w.catalog = components.BuildCatalog(contracts)
	w.selectedExpiry, w.selectedStrike = components.DefaultSelection(w.catalog, spot, w.now())
	w.log.Info().
		Str("currency", currency).
		Int("contracts", len(contracts)).
		Int("expiries", len(w.catalog.Expiries)).
		Str("default_expiry", w.selectedExpiry).
		Str("default_strike", w.selectedStrike).
		Msg("catalog loaded")

	w.refreshTickerLocked()
}

// SelectExpiry sets the expiry and re-resolves the strike within the new
// expiry's strike set: nearest to the previously selected strike when one
// exists, else nearest to the reference price. This differs from the
// initial-load default, which always measures from the reference price.
func (w *Wizard) SelectExpiry(expiry string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if expiry == w.selectedExpiry {
		return
	}
	w.selectedExpiry = expiry

	target := decimal.Decimal{}
	if w.selectedStrike != "" {
		if d, err := decimal.NewFromString(w.selectedStrike); err == nil {
			target = d
		}
	} else if spot, ok := w.spotPriceLocked(); ok {
		target = spot
	}
	w.selectedStrike = components.ClosestStrike(w.catalog.StrikesByExpiry[expiry], target)

	w.refreshTickerLocked()
}

// SelectStrike sets the strike and re-resolves the quote.
func (w *Wizard) SelectStrike(strike string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if strike == w.selectedStrike {
		return
	}
	w.selectedStrike = strike
	w.refreshTickerLocked()
}
