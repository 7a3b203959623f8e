package wizard

import (
	"context"

	"github.com/nickbar86/derive/components"
)

// refreshTickerLocked re-derives the contract identifier from the current
// selection and re-issues the quote fetch. Callers must hold w.mu.
//
// An incomplete selection, or a derived identifier with no catalog entry,
// clears the quote without touching the network. Otherwise the fetch is
// keyed by the exact stored contract name — the catalog entry is
// authoritative, the derived string is only the lookup key.
func (w *Wizard) refreshTickerLocked() {
	w.tickerGen++ // any in-flight result is now stale

	name := ""
	if spot, ok := w.spotPriceLocked(); ok {
		name = components.InstrumentName(w.selectedCurrency, w.selectedExpiry, w.selectedStrike, spot)
	}
	if name == "" {
		w.resolvedInstrument = ""
		w.quote = nil
		w.tickerLoading = false
		return
	}

	contract, found := w.catalog.ByName[name]
	if !found {
		// intentionally absent, not an error
		w.log.Debug().Str("instrument", name).Msg("derived instrument not in catalog")
		w.resolvedInstrument = ""
		w.quote = nil
		w.tickerLoading = false
		return
	}

	w.resolvedInstrument = contract.InstrumentName
	w.tickerLoading = true
	go w.fetchTicker(w.ctx, w.tickerGen, contract.InstrumentName)
}

func (w *Wizard) fetchTicker(ctx context.Context, gen uint64, instrument string) {
	quote, err := w.api.Ticker(ctx, instrument)

	w.mu.Lock()
	defer w.mu.Unlock()

	if gen != w.tickerGen {
		w.log.Debug().Str("instrument", instrument).Msg("discarding stale ticker response")
		return
	}
	w.tickerLoading = false

	if err != nil {
		w.log.Warn().Err(err).Str("instrument", instrument).Msg("ticker fetch failed")
		w.quote = nil
		return
	}
	w.quote = quote
}
