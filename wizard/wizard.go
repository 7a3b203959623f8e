// Package wizard implements the options selection engine: it resolves a
// currency, an expiry and a strike into one concrete option contract with a
// live quote, keeping three cascading asynchronous fetches consistent under
// re-entrant input.
//
// All state lives behind a single mutex. Fetches run in goroutines and
// re-enter through the mutex; each stage carries a generation counter
// captured at dispatch and compared at completion, so only the most recently
// initiated fetch may mutate state. A superseded response is computed and
// then discarded — the in-flight request itself is never aborted.
package wizard

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/nickbar86/derive/models"
)

// OrderbookAPI is the slice of the orderbook client the wizard depends on.
type OrderbookAPI interface {
	AllCurrencies(ctx context.Context) ([]models.Asset, error)
	Instruments(ctx context.Context, currency string) ([]models.Contract, error)
	Ticker(ctx context.Context, instrumentName string) (*models.Quote, error)
}

// Wizard owns the selection pipeline: currency list, contract catalog and
// live quote, plus the current selection. Data flows strictly downstream;
// a change at any level invalidates and re-derives everything below it.
type Wizard struct {
	api OrderbookAPI
	log zerolog.Logger
	now func() time.Time

	mu  sync.Mutex
	ctx context.Context

	currencies        []models.Asset
	selectedCurrency  string
	currenciesLoading bool
	currenciesGen     uint64

	catalog            models.Catalog
	selectedExpiry     string
	selectedStrike     string
	instrumentsLoading bool
	instrumentsGen     uint64

	quote              *models.Quote
	resolvedInstrument string
	tickerLoading      bool
	tickerGen          uint64
}

func New(api OrderbookAPI, log zerolog.Logger) *Wizard {
	return &Wizard{
		api:              api,
		log:              log.With().Str("component", "wizard").Logger(),
		now:              time.Now,
		ctx:              context.Background(),
		selectedCurrency: models.DefaultCurrency,
		catalog:          models.EmptyCatalog(),
	}
}

// Snapshot returns one consistent view of the pipeline. The catalog is
// shared, not copied: it is replaced wholesale on every reload and never
// mutated in place.
func (w *Wizard) Snapshot() models.WizardSnapshot {
	w.mu.Lock()
	defer w.mu.Unlock()

	snap := models.WizardSnapshot{
		Currencies: append([]models.Asset(nil), w.currencies...),
		Selection: models.SelectionState{
			Currency: w.selectedCurrency,
			Expiry:   w.selectedExpiry,
			Strike:   w.selectedStrike,
		},
		Catalog:            w.catalog,
		InstrumentName:     w.resolvedInstrument,
		CurrenciesLoading:  w.currenciesLoading,
		InstrumentsLoading: w.instrumentsLoading,
		TickerLoading:      w.tickerLoading,
	}
	if spot, ok := w.spotPriceLocked(); ok {
		snap.SpotPrice = &spot
	}
	if w.quote != nil {
		quote := *w.quote
		snap.Quote = &quote
	}
	return snap
}

// spotPriceLocked resolves the reference price: the spot price of the
// selected currency. A zero or missing spot counts as absent.
func (w *Wizard) spotPriceLocked() (decimal.Decimal, bool) {
	for _, a := range w.currencies {
		if a.Currency == w.selectedCurrency {
			if !a.SpotPrice.IsPositive() {
				return decimal.Decimal{}, false
			}
			return a.SpotPrice, true
		}
	}
	return decimal.Decimal{}, false
}
