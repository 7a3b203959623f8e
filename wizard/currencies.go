package wizard

import (
	"context"

	"github.com/nickbar86/derive/models"
)

// Start issues the one-time currency list fetch. The context bounds every
// fetch the wizard ever makes; it should live as long as the process.
func (w *Wizard) Start(ctx context.Context) {
	w.mu.Lock()
	w.ctx = ctx
	w.currenciesLoading = true
	w.currenciesGen++
	gen := w.currenciesGen
	w.mu.Unlock()

	go w.fetchCurrencies(ctx, gen)
}

func (w *Wizard) fetchCurrencies(ctx context.Context, gen uint64) {
	assets, err := w.api.AllCurrencies(ctx)

	w.mu.Lock()
	defer w.mu.Unlock()

	if gen != w.currenciesGen {
		w.log.Debug().Msg("discarding stale currency response")
		return
	}
	w.currenciesLoading = false

	if err != nil {
		// no retry: surfaces as an empty list
		w.log.Warn().Err(err).Msg("currency list fetch failed")
		w.currencies = nil
		return
	}

	filtered := make([]models.Asset, 0, len(assets))
	for _, a := range assets {
		if models.IsSupportedCurrency(a.Currency) {
			filtered = append(filtered, a)
		}
	}
	w.currencies = filtered
	w.log.Info().Int("supported", len(filtered)).Int("total", len(assets)).Msg("currencies loaded")

	// the reference price may have just become available
	w.refreshInstrumentsLocked()
}

// SelectCurrency updates the selected currency and invalidates everything
// downstream. The selection is updated even when no catalog will exist for
// it; downstream stages react on their own.
func (w *Wizard) SelectCurrency(currency string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if currency == w.selectedCurrency {
		return
	}
	w.selectedCurrency = currency
	w.selectedExpiry = ""
	w.selectedStrike = ""
	w.refreshInstrumentsLocked()
	w.refreshTickerLocked()
}
