package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/resellhub/pricing-engine/internal/api"
	"github.com/resellhub/pricing-engine/internal/api/middleware"
	"github.com/resellhub/pricing-engine/internal/cache"
	"github.com/resellhub/pricing-engine/internal/repository"
	"github.com/resellhub/pricing-engine/internal/service"
	"github.com/resellhub/pricing-engine/pkg/db"
)

type serverConfig struct {
	Addr         string        `env:"HTTP_ADDR" envDefault:":8080"`
	ReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"15s"`
	IdleTimeout  time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"60s"`
}

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	var srvCfg serverConfig
	if err := env.Parse(&srvCfg); err != nil {
		logger.Fatal("parse server config", zap.Error(err))
	}

	pgCfg, err := db.LoadPostgresConfig()
	if err != nil {
		logger.Fatal("load db config", zap.Error(err))
	}

	conn, err := db.NewPostgresConnection(pgCfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer conn.Close()

	// Load the reference-data snapshot once at startup; the engine is pure
	// computation over it from here on.
	refCache := cache.NewRefDataCache()
	svc := service.NewQuoteService(refCache)

	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 30*time.Second)
	if err := svc.Reload(loadCtx, repository.NewRefDataRepo(conn)); err != nil {
		cancelLoad()
		logger.Fatal("load reference data", zap.Error(err))
	}
	cancelLoad()

	handler := api.NewRouter(svc)

	r := chi.NewRouter()
	r.Use(middleware.RequestLogger(logger))
	r.Mount("/", handler)

	srv := &http.Server{
		Addr:         srvCfg.Addr,
		Handler:      r,
		ReadTimeout:  srvCfg.ReadTimeout,
		WriteTimeout: srvCfg.WriteTimeout,
		IdleTimeout:  srvCfg.IdleTimeout,
	}

	// graceful shutdown
	idleConnsClosed := make(chan struct{})
	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt)
		<-c
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("HTTP server shutdown", zap.Error(err))
		}
		close(idleConnsClosed)
	}()

	logger.Info("starting pricing-service", zap.String("addr", srvCfg.Addr))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("listen", zap.Error(err))
	}

	<-idleConnsClosed
	logger.Info("server stopped")
}
