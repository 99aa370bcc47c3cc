package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-messease/config"
	"go-messease/database"
	"go-messease/routes"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, envFileLoaded := config.Load()

	logger := newLogger(cfg)
	defer logger.Sync()

	if !envFileLoaded {
		logger.Info(".env file not found, using process environment")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Database.Timeout)
	db, mongoStore := database.Open(ctx, database.Config{
		URL:      cfg.Database.URL,
		Database: cfg.Database.Name,
		Timeout:  cfg.Database.Timeout,
	}, logger)
	cancel()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := routes.NewRouter(db, cfg, logger)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		WriteTimeout: 30 * time.Second,
		ReadTimeout:  10 * time.Second,
		IdleTimeout:  time.Minute,
	}

	shutdown := make(chan error)
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		logger.Infow("signal caught", "signal", s.String())

		err := srv.Shutdown(ctx)
		if mongoStore != nil {
			if err := mongoStore.Close(ctx); err != nil {
				logger.Errorw("error closing MongoDB", "error", err)
			} else {
				logger.Info("MongoDB connection closed")
			}
		}
		shutdown <- err
	}()

	logger.Infow("server has started", "addr", srv.Addr, "env", cfg.Env, "database", db.Available())

	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Fatalw("server failed", "error", err)
	}
	if err := <-shutdown; err != nil {
		logger.Fatalw("shutdown failed", "error", err)
	}
	logger.Infow("server has stopped", "addr", srv.Addr)
}

func newLogger(cfg *config.Config) *zap.SugaredLogger {
	if cfg.IsProduction() {
		return zap.Must(zap.NewProduction()).Sugar()
	}
	return zap.Must(zap.NewDevelopment()).Sugar()
}
