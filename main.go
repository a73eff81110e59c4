package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"loan-calculator/config"
	httpLayer "loan-calculator/http"
	"loan-calculator/logger"
	"loan-calculator/repository"
	"loan-calculator/service"
)

func main() {
	configPath := flag.String("config", "configs", "config file or directory holding config.yml")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}
	log := logger.Get(cfg.Log.Level)
	defer func() { _ = log.Sync() }()

	loanRepo := repository.NewLoanRepositoryMemory()
	cache := newCache(cfg, log)

	loanService := service.NewLoanService(loanRepo, cache, log).WithCacheTTL(cfg.Cache.TTL)
	loanHandler := httpLayer.NewLoanHandler(loanService, log)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit.Capacity, cfg.RateLimit.Refill)
	defer rateLimiter.Stop()

	mux := http.NewServeMux()
	loanHandler.Routes(mux, rateLimiter)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      mux,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Infow("API listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Errorw("error starting server", "err", err)
		return
	case <-quit:
		log.Infow("shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Errorw("error during server shutdown", "err", err)
	}

	log.Infow("server exited")
}

// newCache uses redis when an address is configured and reachable, and an
// in-memory cache otherwise.
func newCache(cfg config.Config, log *logger.Logger) repository.CacheRepository {
	if cfg.Redis.Addr == "" {
		return repository.NewMemoryCache()
	}
	rc := repository.NewRedisCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ReadTimeout)
	defer cancel()
	if err := rc.Ping(ctx); err != nil {
		log.Warnw("redis unavailable, using in-memory cache", "addr", cfg.Redis.Addr, "err", err)
		_ = rc.Close()
		return repository.NewMemoryCache()
	}
	log.Infow("using redis schedule cache", "addr", cfg.Redis.Addr)
	return rc
}
