package routes

import (
	"github.com/gorilla/mux"

	"github.com/nickbar86/derive/controllers"
)

func ServeRoutes(router *mux.Router, wizard *controllers.WizardController) {
	api := router.PathPrefix("/api/v1").Subrouter()
	for _, r := range RegisterRoutes(wizard) {
		api.HandleFunc(r.Path, r.Handler).Methods(r.Method)
	}
}
