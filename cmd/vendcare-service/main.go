package main

import (
	"fmt"
	"os"
	"time"

	"github.com/emrebkr/vendcare/internal/auth"
	"github.com/emrebkr/vendcare/internal/config"
	"github.com/emrebkr/vendcare/internal/db"
	"github.com/emrebkr/vendcare/internal/excel"
	"github.com/emrebkr/vendcare/internal/export"
	httphandler "github.com/emrebkr/vendcare/internal/http"
	"github.com/emrebkr/vendcare/internal/http/middleware"
	"github.com/emrebkr/vendcare/internal/logger"
	"github.com/emrebkr/vendcare/internal/pdf"
	"github.com/emrebkr/vendcare/internal/repository"
	"github.com/emrebkr/vendcare/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	tokenTTL, err := time.ParseDuration(cfg.Auth.TokenTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid JWT_TOKEN_TTL")
	}

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	reportRepo := repository.NewReportRepository(database)
	userRepo := repository.NewUserRepository(database)
	commodityRepo := repository.NewCommodityRepository(database)

	tokenIssuer := auth.NewIssuer(cfg.Auth.AccessSecret, tokenTTL)
	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)

	reportService := service.NewReportService(
		reportRepo,
		export.NewCSVGenerator(),
		excel.NewGenerator(),
		pdf.NewGenerator(),
		cfg,
	)
	userService := service.NewUserService(userRepo, tokenIssuer)
	commodityService := service.NewCommodityService(commodityRepo)

	handler := httphandler.NewHandler(reportService, userService, commodityService, log)
	authMiddleware := middleware.Auth(tokenParser)
	router := httphandler.NewRouter(handler, authMiddleware, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting vendcare service")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
