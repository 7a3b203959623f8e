package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/nickbar86/derive/config"
	"github.com/nickbar86/derive/controllers"
	"github.com/nickbar86/derive/routes"
	"github.com/nickbar86/derive/services"
	"github.com/nickbar86/derive/wizard"
)

func main() {
	cfg := config.Load()

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	orderbook := services.NewOrderbook(cfg.OrderbookAPIURL, log)

	wz := wizard.New(orderbook, log)
	wz.Start(ctx)

	r := mux.NewRouter()
	routes.ServeRoutes(r, controllers.NewWizardController(wz, log))

	handler := services.RequestLogger(log)(services.ZstdMiddleware(r))

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler: handler,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info().Int("port", cfg.HTTPPort).Str("orderbook", cfg.OrderbookAPIURL).Msg("options wizard API listening")

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server failed")
	}
}
