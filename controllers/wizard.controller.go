package controllers

import (
	"net/http"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/nickbar86/derive/models"
	"github.com/nickbar86/derive/wizard"
)

// WizardController exposes the selection engine over HTTP. It owns no logic
// beyond parameter validation and response shaping.
type WizardController struct {
	wizard *wizard.Wizard
	log    zerolog.Logger
}

func NewWizardController(wz *wizard.Wizard, log zerolog.Logger) *WizardController {
	return &WizardController{
		wizard: wz,
		log:    log.With().Str("component", "wizard_controller").Logger(),
	}
}

// GetWizard returns the full pipeline snapshot.
func (c *WizardController) GetWizard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, c.wizard.Snapshot())
}

func (c *WizardController) SelectCurrency(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Currency string `json:"currency"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	if body.Currency == "" {
		http.Error(w, "missing currency", http.StatusBadRequest)
		return
	}
	if !models.IsSupportedCurrency(body.Currency) {
		http.Error(w, "unsupported currency", http.StatusBadRequest)
		return
	}

	c.wizard.SelectCurrency(body.Currency)
	writeJSON(w, c.wizard.Snapshot())
}

func (c *WizardController) SelectExpiry(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Expiry string `json:"expiry"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	if _, err := strconv.ParseInt(body.Expiry, 10, 64); err != nil {
		http.Error(w, "invalid expiry", http.StatusBadRequest)
		return
	}

	c.wizard.SelectExpiry(body.Expiry)
	writeJSON(w, c.wizard.Snapshot())
}

func (c *WizardController) SelectStrike(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Strike string `json:"strike"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	if _, err := decimal.NewFromString(body.Strike); err != nil {
		http.Error(w, "invalid strike", http.StatusBadRequest)
		return
	}

	c.wizard.SelectStrike(body.Strike)
	writeJSON(w, c.wizard.Snapshot())
}
