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

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	router "github.com/dkeye/Rendezvous/internal/adapters/http"
	signaling "github.com/dkeye/Rendezvous/internal/adapters/signal"
	"github.com/dkeye/Rendezvous/internal/app"
	"github.com/dkeye/Rendezvous/internal/app/orch"
	"github.com/dkeye/Rendezvous/internal/config"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Initialize zerolog global logger early so config.Load can use it.
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	cfg, v, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}
	config.WatchLogLevel(v)

	reg := app.NewRegistry()
	dispatcher := app.NewDispatcher(1024)
	o := &orch.Orchestrator{
		Registry: reg,
		Rooms:    app.NewRoomManager(app.WithIDGenerator(app.UUIDPrefix(cfg.RoomIDLength))),
		Groups:   app.NewGroupHub(),
		Policy:   app.TwoPartyPolicy{},
		Emitter:  signaling.NewEmitter(reg),
		Now:      time.Now,
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router.SetupRouter(ctx, cfg, o, dispatcher),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// The dispatcher outlives the HTTP server so the final teardown can run on it.
	dctx, stopDispatcher := context.WithCancel(context.Background())
	defer stopDispatcher()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return dispatcher.Run(dctx)
	})
	g.Go(func() error {
		log.Info().Str("addr", addr).Msg("signaling server started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("Shutting down")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		defer stopDispatcher()
		err := srv.Shutdown(shutdownCtx)
		if derr := dispatcher.Do(shutdownCtx, o.Shutdown); derr != nil {
			log.Warn().Err(derr).Msg("teardown skipped")
		}
		return err
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("server error")
		os.Exit(1)
	}
	log.Info().Msg("Server exited gracefully")
}
