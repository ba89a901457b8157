package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	libraryserver "video-library/apps/library-server"
	"video-library/shared/ai"
	"video-library/shared/config"
	"video-library/shared/logging"
	"video-library/shared/metrics"
	"video-library/shared/monitoring"
	"video-library/shared/scheduler"
	"video-library/shared/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		l := logging.Base()
		l.Fatal().Err(err).Msg("failed to load configuration")
	}

	logging.Configure(logging.Config{Level: cfg.Logging.Level, Service: cfg.Logging.Service})
	log := logging.WithComponent("main")

	// Create context that responds to signals
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	store := storage.NewVideoStore()
	if err := store.LoadSeed(cfg.Library.VideosFile); err != nil {
		log.Warn().Err(err).Str("file", cfg.Library.VideosFile).Msg("failed to initialize video store, starting empty")
	} else {
		log.Info().Int("videos", store.Count()).Msg("video store initialized")
	}
	metrics.SetVideoCount(store.Count())

	ideas := ai.NewIdeaGenerator(&cfg.AI)
	if !ideas.Configured() {
		log.Warn().Msg("GEMINI_API_KEY is not set; idea generation will fail")
	}

	monitor := monitoring.NewMonitor()
	srv, err := libraryserver.New(&cfg.Server, store, ideas, monitor)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create server")
	}

	if len(os.Args) > 1 && os.Args[1] == "--stats" {
		s := scheduler.New(cfg.Schedule.Stats, monitor, libraryserver.NewStatsJob(store))
		if err := s.RunOnce(ctx); err != nil {
			log.Fatal().Err(err).Msg("stats run failed")
		}
		return
	}

	go func() {
		s := scheduler.New(cfg.Schedule.Stats, monitor, libraryserver.NewStatsJob(store))
		if err := s.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error().Err(err).Msg("scheduler failed")
		}
	}()

	httpServer := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", httpServer.Addr).Msgf("server listening at http://localhost:%d", cfg.Server.Port)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("listen failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		_ = httpServer.Close()
	}
	log.Info().Msg("server stopped")
}
