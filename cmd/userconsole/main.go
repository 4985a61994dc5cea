package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MannavaSravanthi/user-management-ui/frontend/shared/forms"
	"github.com/MannavaSravanthi/user-management-ui/infrastructure/apiclient"
	"github.com/MannavaSravanthi/user-management-ui/infrastructure/audit"
	"github.com/MannavaSravanthi/user-management-ui/infrastructure/cache"
	"github.com/MannavaSravanthi/user-management-ui/infrastructure/config"
	"github.com/MannavaSravanthi/user-management-ui/infrastructure/directory"
	httpserver "github.com/MannavaSravanthi/user-management-ui/infrastructure/http"
	"github.com/MannavaSravanthi/user-management-ui/infrastructure/logging"
	"github.com/MannavaSravanthi/user-management-ui/infrastructure/session"
	"github.com/MannavaSravanthi/user-management-ui/infrastructure/sqlite"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		bootLog := logging.New("info", false, os.Stderr)
		bootLog.Fatal().Err(err).Msg("load config")
	}

	log := logging.New(cfg.LogLevel, cfg.LogPretty, os.Stderr)

	db, err := sqlite.OpenDB(cfg.SQLitePath)
	if err != nil {
		log.Fatal().Err(err).Msg("open db")
	}
	defer db.Close()

	if err := sqlite.ApplyMigrations(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("apply migrations")
	}

	sessions := session.NewStore(db, cache.NewProfileCache())
	api := apiclient.New(cfg.APIBaseURL, session.ContextCredentials{}, log)
	directories := directory.NewRegistry(func() *directory.Directory {
		return directory.New(api)
	})
	auditSvc := audit.NewService(db, log)
	fv := forms.NewValidator(cfg.DisableValidation)

	server := httpserver.NewServer(cfg.Addr, api, sessions, directories, auditSvc, fv, log)
	if err := server.Start(); err != nil {
		log.Fatal().Err(err).Msg("start server")
	}
	log.Info().Str("addr", cfg.Addr).Str("api", cfg.APIBaseURL).Msg("console listening")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	if err := server.Stop(); err != nil {
		log.Error().Err(err).Msg("graceful shutdown error")
	}
}
