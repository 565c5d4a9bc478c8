package main

import (
	"context"
	"fmt"

	httphandler "github.com/veilvault/veilvault/internal/handler/http"
	"github.com/veilvault/veilvault/internal/config"
	"github.com/veilvault/veilvault/internal/logger"
	"github.com/veilvault/veilvault/internal/server"
	"github.com/veilvault/veilvault/internal/service"
	"github.com/veilvault/veilvault/internal/store"
	"github.com/veilvault/veilvault/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("veilvault-gateway")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to anchor registry database")
	}

	if err = migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	blobs, err := store.NewFileBlobStore(cfg.Storage.Blobs.Dir, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating blob store")
	}

	anchors := store.NewAnchorRegistry(db, log)
	owners := store.NewOwnerRegistry(db, log)

	auth := service.NewAuthService(owners, service.AuthServiceConfig{
		TokenSignKey:  cfg.App.TokenSignKey,
		TokenIssuer:   cfg.App.TokenIssuer,
		TokenDuration: cfg.App.TokenDuration,
	}, log)

	handler := httphandler.NewHandler(auth, anchors, blobs, cfg.App.Version, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
