package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	router "relaybot/internal/adapters/http"
	"relaybot/internal/adapters/telegram"
	"relaybot/internal/app"
	"relaybot/internal/config"
	"relaybot/internal/core"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Initialize zerolog global logger early so config.Load can use it.
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	// Human-friendly output for terminal; in production you may want JSON only.
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	registry := core.NewRegistry(cfg.CodeLength)
	orch := &app.Orchestrator{
		Registry: registry,
		Router:   &app.Router{Registry: registry},
	}
	client := telegram.NewClient(cfg.APIBase, cfg.BotToken, cfg.SendTimeout)
	disp := &telegram.Dispatcher{Orch: orch, Sender: client}

	r := router.SetupRouter(cfg, disp)
	addr := fmt.Sprintf(":%d", cfg.Port)

	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("relay bot started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("server error")
		}
	}()

	// Best effort: a failed registration is logged and the server keeps
	// serving so a redeploy can retry.
	if err := client.SetWebhook(ctx, cfg.WebhookURL); err != nil {
		log.Error().Err(err).Str("url", cfg.WebhookURL).Msg("failed to set webhook")
	} else {
		log.Info().Str("url", cfg.WebhookURL).Msg("webhook set")
	}

	<-ctx.Done()
	log.Info().Msg("Shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited gracefully")
}
