package main

import (
	"log/slog"
	"math/rand"
	"os"
	"time"

	"storefront/internal/auth"
	"storefront/internal/cli"
	"storefront/internal/config"
	"storefront/internal/fakedata"
	"storefront/internal/logger"
	"storefront/internal/repository"
	"storefront/internal/usecase"
)

func main() {
	logger.SetupDefault(os.Stderr)

	cfg, err := config.NewConfig()
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	seed := time.Now().UnixNano()
	svc := usecase.NewService(
		repository.NewMemory(),
		fakedata.NewWords(seed),
		auth.NewHasher(),
		rand.New(rand.NewSource(seed)),
	)

	if err := svc.GenerateCatalog(cfg.CatalogSize); err != nil {
		slog.Error("failed to generate catalog", "err", err)
		os.Exit(1)
	}
	if _, err := svc.RegisterUser(cfg.SeedUsername, cfg.SeedPassword); err != nil {
		slog.Error("failed to seed user", "err", err)
		os.Exit(1)
	}

	menu := cli.NewMenu(svc, os.Stdin, os.Stdout, slog.Default())
	menu.Run()
}
