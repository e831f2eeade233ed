package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/taskboard-hq/taskboard-api/internal/adapters/httpapi"
	memcommandstore "github.com/taskboard-hq/taskboard-api/internal/adapters/memory/commandstore"
	memuserrepo "github.com/taskboard-hq/taskboard-api/internal/adapters/memory/userrepo"
	postgres "github.com/taskboard-hq/taskboard-api/internal/adapters/postgres"
	pgcommandstore "github.com/taskboard-hq/taskboard-api/internal/adapters/postgres/commandstore"
	pguserrepo "github.com/taskboard-hq/taskboard-api/internal/adapters/postgres/userrepo"
	appauth "github.com/taskboard-hq/taskboard-api/internal/app/auth"
	apptasks "github.com/taskboard-hq/taskboard-api/internal/app/tasks"
	"github.com/taskboard-hq/taskboard-api/internal/platform/auth/tokens"
	platformclock "github.com/taskboard-hq/taskboard-api/internal/platform/clock"
	"github.com/taskboard-hq/taskboard-api/internal/platform/config"
	"github.com/taskboard-hq/taskboard-api/internal/platform/logging"
	commandstoreport "github.com/taskboard-hq/taskboard-api/internal/ports/out/commandstore"
	userrepoport "github.com/taskboard-hq/taskboard-api/internal/ports/out/userrepo"
	"github.com/taskboard-hq/taskboard-api/internal/realtime"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.SetupLogger(logging.ParseLevel("info")).Error("invalid configuration", logging.Err(err))
		os.Exit(1)
	}

	log := logging.SetupLogger(logging.ParseLevel(cfg.LogLevel))
	clk := platformclock.NewSystemClock()

	var (
		store   commandstoreport.Store
		users   userrepoport.Repository
		cleanup func()
	)

	switch cfg.StorageBackend {
	case "postgres":
		pool, err := postgres.NewPool(context.Background(), cfg.DatabaseURL)
		if err != nil {
			log.Error("postgres connection failed", logging.Err(err))
			os.Exit(1)
		}
		cleanup = pool.Close
		store = pgcommandstore.NewStore(pool)
		users = pguserrepo.NewRepo(pool)
	default:
		memStore := memcommandstore.NewStore(clk)
		store = memStore
		users = memuserrepo.NewRepo(memStore)
	}

	if cleanup != nil {
		defer cleanup()
	}

	tokenSvc := tokens.NewService(cfg.TokenSecret, cfg.TokenTTL, clk)
	hub := realtime.NewHub(log)

	authSvc := appauth.NewService(users, tokenSvc, log)
	taskSvc := apptasks.NewService(store, hub)

	api := httpapi.NewServer(log, authSvc, taskSvc, store, hub, cfg.UploadDir)
	authMW := httpapi.NewAuthMiddleware(tokenSvc, authSvc)
	handler := httpapi.NewRouter(api, authMW)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("api listening", "addr", srv.Addr, "backend", cfg.StorageBackend)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("listen failed", logging.Err(err))
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
