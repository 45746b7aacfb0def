package main

import (
	"context"
	"fmt"

	"github.com/akarpenko/fashion-gateway/internal/adapter"
	"github.com/akarpenko/fashion-gateway/internal/config"
	"github.com/akarpenko/fashion-gateway/internal/crypto"
	myHTTP "github.com/akarpenko/fashion-gateway/internal/handler/http"
	"github.com/akarpenko/fashion-gateway/internal/logger"
	"github.com/akarpenko/fashion-gateway/internal/server"
	"github.com/akarpenko/fashion-gateway/internal/service"
	"github.com/akarpenko/fashion-gateway/internal/store"
	"github.com/akarpenko/fashion-gateway/migrations"
	"golang.org/x/crypto/bcrypt"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("fashion-gateway")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err := migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	accessKeys, err := crypto.KeyPairFromPEM([]byte(cfg.Auth.AccessPrivateKey), []byte(cfg.Auth.AccessPublicKey))
	if err != nil {
		log.Fatal().Err(err).Msg("error loading access token keys")
	}

	refreshKeys, err := crypto.KeyPairFromPEM([]byte(cfg.Auth.RefreshPrivateKey), []byte(cfg.Auth.RefreshPublicKey))
	if err != nil {
		log.Fatal().Err(err).Msg("error loading refresh token keys")
	}

	codec, err := crypto.NewTokenCodec(accessKeys, refreshKeys, cfg.Auth.TokenIssuer)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating token codec")
	}

	hasher := crypto.NewBcryptHasher(bcrypt.DefaultCost)

	storages := store.NewStorages(db, log)
	catalog := adapter.NewHTTPCatalogAdapter(cfg.Catalog)
	services := service.NewServices(storages, hasher, codec, catalog, cfg, log)
	handler := myHTTP.NewHandler(services, codec, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
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
