package routes

import (
	"net/http"

	"github.com/nickbar86/derive/controllers"
)

type apiRoute struct {
	Path    string
	Method  string
	Handler http.HandlerFunc
}

func RegisterRoutes(wizard *controllers.WizardController) []apiRoute {
	return []apiRoute{

		// ---------- selection state ----------
		{
			Path:    "/wizard",
			Method:  "GET",
			Handler: wizard.GetWizard,
		},
		{
			Path:    "/wizard/currency",
			Method:  "POST",
			Handler: wizard.SelectCurrency,
		},
		{
			Path:    "/wizard/expiry",
			Method:  "POST",
			Handler: wizard.SelectExpiry,
		},
		{
			Path:    "/wizard/strike",
			Method:  "POST",
			Handler: wizard.SelectStrike,
		},

		// ---------- read views ----------
		{
			Path:    "/currencies",
			Method:  "GET",
			Handler: wizard.GetCurrencies,
		},
		{
			Path:    "/options/expiries",
			Method:  "GET",
			Handler: wizard.GetExpiries,
		},
		{
			Path:    "/options/strikes",
			Method:  "GET",
			Handler: wizard.GetStrikes,
		},
		{
			Path:    "/options/quote",
			Method:  "GET",
			Handler: wizard.GetQuote,
		},
		{
			Path:    "/options/payoff",
			Method:  "GET",
			Handler: wizard.GetPayoff,
		},
	}
}
