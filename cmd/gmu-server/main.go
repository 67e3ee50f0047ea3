package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Joe-Bitz/goodmorninguganda/internal/adapters/httpapi"
	"github.com/Joe-Bitz/goodmorninguganda/internal/adapters/jsonstore"
	"github.com/Joe-Bitz/goodmorninguganda/internal/app"
	"github.com/Joe-Bitz/goodmorninguganda/internal/buildinfo"
	"github.com/Joe-Bitz/goodmorninguganda/internal/config"
	"github.com/Joe-Bitz/goodmorninguganda/internal/ports"
)

func main() {
	cfg := config.Load()
	addr := flag.String("addr", cfg.Addr, "listen address (e.g. 127.0.0.1:8080)")
	dataDir := flag.String("data", cfg.DataDir, "data directory for the release ledger and watch state")
	flag.Parse()

	logger := zerolog.New(os.Stdout).With().Timestamp().Str("app", "gmu-server").Logger()
	log.Logger = logger

	logger.Info().
		Interface("build", buildinfo.Current()).
		Str("data_dir", *dataDir).
		Str("show_id", cfg.SpotifyShowID).
		Bool("official_api", cfg.SpotifyConfigured()).
		Bool("public_watch", cfg.PublicWatch).
		Msg("starting")

	releases := jsonstore.NewReleaseLedger(filepath.Join(*dataDir, "podcast_releases.json"))
	state := jsonstore.NewWatchStateStore(filepath.Join(*dataDir, "spotify_watch_state.json"))

	var official, public ports.EpisodeSource
	if cfg.SpotifyConfigured() {
		official = app.NewSpotifyClient(cfg.SpotifyClientID, cfg.SpotifyClientSecret)
	}
	if cfg.PublicWatch {
		public = app.NewPublicPageClient()
	}
	if official == nil && public == nil {
		logger.Warn().Msg("no watcher source configured; crash mode only changes via manual trigger")
	}

	watcher := app.NewWatcher(logger.With().Str("component", "watcher").Logger(), official, public, releases, state, cfg.SpotifyShowID)
	terminal := app.NewTerminalService(watcher, releases)

	srv := httpapi.NewServer(logger, terminal, watcher, releases, state, cfg.ManualTriggerToken)
	httpServer := &http.Server{
		Addr:              *addr,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info().Str("addr", *addr).Msg("listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("http server crashed")
			stop()
		}
	}()

	<-shutdownCtx.Done()
	logger.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = httpServer.Shutdown(ctx)
	logger.Info().Msg("bye")
}
