package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/codebook-vault/internal/app"
	"github.com/MKhiriev/codebook-vault/internal/config"
	"github.com/MKhiriev/codebook-vault/internal/logger"
	"github.com/MKhiriev/codebook-vault/internal/service"
	"github.com/MKhiriev/codebook-vault/internal/store"
	"github.com/MKhiriev/codebook-vault/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewVaultLogger("codebook-vault")

	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log = logger.NewVaultLogger(cfg.App.LogRole)

	db, err := store.NewConnectSQLite(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("apply migrations")
	}

	repos := store.NewRepositories(db, log)
	services := service.NewServices(repos, log)

	version := cfg.App.Version
	if version == "" {
		version = buildVersion
	}

	ui, err := tui.New(services, log, version, cfg.Generator)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	vaultApp, err := app.NewApp(ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init app error")
	}

	if err = vaultApp.Run(); err != nil {
		log.Fatal().Err(err).Msg("run error")
	}
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
