package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fortuna/pitchside/internal/api/rest"
	"github.com/fortuna/pitchside/internal/cache"
	"github.com/fortuna/pitchside/internal/config"
	"github.com/fortuna/pitchside/internal/narrative"
	"github.com/fortuna/pitchside/internal/service"
	"github.com/fortuna/pitchside/internal/statsbomb"
)

const (
	serviceName    = "pitchside"
	serviceVersion = "1.0.0"
)

func main() {
	log.Printf("Starting %s v%s - Match Statistics Service", serviceName, serviceVersion)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	store, err := openCache(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize cache: %v", err)
	}
	defer store.Close()

	log.Printf("✓ Response cache ready (%s backend)", cfg.CacheBackend)

	feed := statsbomb.New(cfg.StatsBombBaseURL, store)
	matches := service.NewMatchService(feed, cfg.CompetitionName, cfg.SeasonName)

	// Resolve the configured competition up front: its absence is fatal,
	// nothing is browsable without the index.
	resolveCtx, resolveCancel := context.WithTimeout(context.Background(), 30*time.Second)
	comp, err := matches.ResolveCompetition(resolveCtx)
	resolveCancel()
	if err != nil {
		log.Fatalf("Failed to resolve %s %s: %v", cfg.CompetitionName, cfg.SeasonName, err)
	}

	log.Printf("✓ Resolved %s %s (competition %d, season %d)",
		comp.CompetitionName, comp.SeasonName, comp.CompetitionID, comp.SeasonID)

	if cfg.OpenAIAPIKey == "" {
		log.Printf("⚠️  No OpenAI API key configured; narrative requests will return inline errors")
	}
	narrator := narrative.NewClient(cfg.Narrative())

	restServer := rest.NewServer(cfg.Addr, matches, narrator)
	go func() {
		log.Printf("Starting REST API server on %s", cfg.Addr)
		if err := restServer.Start(); err != nil {
			log.Printf("REST server error: %v", err)
		}
	}()

	log.Printf("✓ %s v%s started successfully", serviceName, serviceVersion)
	log.Printf("  REST API: http://0.0.0.0%s", cfg.Addr)

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Printf("Shutting down %s gracefully...", serviceName)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := restServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("REST API server shutdown error: %v", err)
	}

	log.Printf("%s stopped", serviceName)
}

// openCache builds the configured cache backend. Redis gets a bounded retry
// loop: in shared deployments the cache container may come up after us.
func openCache(cfg *config.Config) (cache.Store, error) {
	if cfg.CacheBackend != config.CacheRedis {
		return cache.NewMemory(), nil
	}

	const maxRetries = 10
	retryDelay := 2 * time.Second

	var (
		store *cache.Redis
		err   error
	)
	for i := 0; i < maxRetries; i++ {
		store, err = cache.NewRedis(cfg.RedisURL)
		if err == nil {
			return store, nil
		}
		if i < maxRetries-1 {
			log.Printf("Redis connection attempt %d/%d failed: %v (retrying in %v)", i+1, maxRetries, err, retryDelay)
			time.Sleep(retryDelay)
		}
	}
	return nil, err
}
