package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/xsukax/rss-search/app/api"
	"github.com/xsukax/rss-search/app/cfg"
	"github.com/xsukax/rss-search/app/config"
	"github.com/xsukax/rss-search/app/database"
	"github.com/xsukax/rss-search/app/feed"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	setupLogger(appCfg.Debug)

	slog.Info("Starting RSS Search server", "version", appCfg.Version)

	// Database connection
	db, err := database.NewConnection(appCfg.DBFile)
	if err != nil {
		slog.Error("Failed to open database", "file", appCfg.DBFile, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	version, dirty, err := database.RunMigrations(db)
	if err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database ready", "file", appCfg.DBFile, "schema_version", version, "dirty", dirty)

	feedRepo := database.NewFeedRepository(db)

	registerSeedFeeds(appCfg.FeedsDir, feedRepo)

	// Core search components share one HTTP client; each fetch carries its
	// own timeout
	httpClient := &http.Client{}
	fetcher := feed.NewFetcher(httpClient, appCfg.UserAgent, time.Duration(appCfg.FetchTimeout)*time.Second)
	parser := feed.NewParser()
	searcher := feed.NewSearcher(fetcher, parser, appCfg.SearchWorkers)
	validator := feed.NewValidator(fetcher, parser)

	// HTTP server
	handler := api.NewHandler(feedRepo, searcher, validator)
	server := api.NewServer(handler)

	httpServer := &http.Server{
		Addr:        ":" + appCfg.Port,
		Handler:     server,
		ReadTimeout: 30 * time.Second,
		// A search over many feeds runs fetches in batches of SearchWorkers,
		// each capped at FetchTimeout; allow slow multi-batch searches
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "port", appCfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	} else {
		slog.Info("HTTP server stopped")
	}

	slog.Info("Shutdown complete")
}

func setupLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}

// registerSeedFeeds loads YAML seed files and registers any URLs not
// already in the database. Seed problems never prevent startup.
func registerSeedFeeds(feedsDir string, store database.FeedStore) {
	loader := config.NewLoader(feedsDir)
	seeds, err := loader.LoadAll()
	if err != nil {
		slog.Warn("Failed to load seed feeds", "dir", feedsDir, "error", err)
		return
	}
	if len(seeds) == 0 {
		return
	}

	registered := 0
	for _, seed := range seeds {
		if _, err := store.AddFeed(seed.URL); err != nil {
			if errors.Is(err, database.ErrDuplicateFeed) {
				slog.Debug("Seed feed already registered", "url", seed.URL)
				continue
			}
			slog.Warn("Failed to register seed feed", "url", seed.URL, "error", err)
			continue
		}
		registered++
		slog.Info("Registered seed feed", "url", seed.URL)
	}
	slog.Info("Seed feeds processed", "total", len(seeds), "new", registered)
}
