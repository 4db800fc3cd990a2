package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/EYOB-A19/Astu-compliant-system/internal/config"
	"github.com/EYOB-A19/Astu-compliant-system/internal/router"
	"github.com/EYOB-A19/Astu-compliant-system/internal/store"
	"github.com/EYOB-A19/Astu-compliant-system/pkg/logger"
)

func main() {
	// config + logger
	cfg := config.Load()
	l := logger.New(cfg.Env)

	// store
	st, err := store.Open(cfg.StorePath)
	if err != nil {
		l.Fatal().Err(err).Msg("store open failed")
	}
	defer st.Close()

	if cfg.SeedDemo {
		if err := st.Seed(); err != nil {
			l.Fatal().Err(err).Msg("seed failed")
		}
	}

	// http
	r := router.New(l, st, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		l.Info().Str("addr", srv.Addr).Msg("api listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			l.Fatal().Err(err).Msg("server error")
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	l.Info().Msg("shutdown complete")
}
