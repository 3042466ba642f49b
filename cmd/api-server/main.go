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

	"exlibris/database"
	"exlibris/internal/config"
	"exlibris/internal/microservices/http-api/middleware"
	"exlibris/internal/microservices/http-api/server"
	"exlibris/pkg/cache"
	"exlibris/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load config
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger.Init(cfg.GoEnv, cfg.LogLevel, cfg.LogFormat)
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	// Connect to the database and bring the schema up to date
	db, err := database.Open(ctx, cfg.DatabaseURL, cfg.DatabaseDebug)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	defer database.Close(db)
	if err := database.Migrate(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate failed")
	}

	// Redis is optional; without it the shared context is rebuilt per request
	var c cache.Cache = cache.Noop{}
	if cfg.CacheEnabled() {
		rc, err := cache.NewRedisCache(cfg.RedisURL, cfg.RedisPassword, cache.KeyPrefix)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid redis configuration")
		}
		if err := rc.Ping(ctx); err != nil {
			log.Warn().Err(err).Msg("redis unreachable, continuing without cache")
			rc.Close()
		} else {
			defer rc.Close()
			c = rc
		}
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	done := make(chan struct{})
	defer close(done)
	go limiter.Run(10*time.Minute, done)

	router := server.NewRouter(server.NewServices(db, c, cfg), server.Options{
		MediaURL:    cfg.MediaURL,
		CORSOrigins: cfg.CORSOrigins,
		Limiter:     limiter,
		Health:      database.Health(db),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Str("env", cfg.GoEnv).Msg("HTTP server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}
	log.Info().Msg("server exited")
}
