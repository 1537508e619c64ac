package main

import (
	"fmt"
	"os"

	"github.com/baladia/fuel-service/internal/auth"
	"github.com/baladia/fuel-service/internal/config"
	"github.com/baladia/fuel-service/internal/constants"
	"github.com/baladia/fuel-service/internal/db"
	"github.com/baladia/fuel-service/internal/excel"
	httphandler "github.com/baladia/fuel-service/internal/http"
	"github.com/baladia/fuel-service/internal/http/middleware"
	"github.com/baladia/fuel-service/internal/logger"
	"github.com/baladia/fuel-service/internal/pdf"
	"github.com/baladia/fuel-service/internal/repository"
	"github.com/baladia/fuel-service/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	resolver := constants.NewResolver(database)
	lookups := repository.NewLookupRepository(database)

	vehicleRepo := repository.NewVehicleRepository(database)
	generatorRepo := repository.NewGeneratorRepository(database)
	fuelLogRepo := repository.NewFuelLogRepository(database)
	gasBillRepo := repository.NewGasBillRepository(database)
	inventoryRepo := repository.NewInventoryRepository(database)
	constantRepo := repository.NewConstantRepository(database)
	stationRepo := repository.NewStationRepository(database)
	userRepo := repository.NewUserRepository(database)
	maintenanceRepo := repository.NewMaintenanceRepository(database)
	dashboardRepo := repository.NewDashboardRepository(database)

	tokens := auth.NewManager(cfg.Auth.AccessSecret, cfg.Auth.AccessTTL)

	pdfGenerator, err := pdf.NewGenerator()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init pdf generator")
	}

	svcs := httphandler.Services{
		Auth:        service.NewAuthService(userRepo, tokens),
		Dashboard:   service.NewDashboardService(dashboardRepo),
		Vehicles:    service.NewVehicleService(vehicleRepo, resolver, lookups),
		Generators:  service.NewGeneratorService(generatorRepo, resolver, lookups),
		FuelLogs:    service.NewFuelLogService(fuelLogRepo, resolver, lookups),
		GasBills:    service.NewGasBillService(gasBillRepo, resolver, lookups),
		Inventory:   service.NewInventoryService(inventoryRepo),
		Constants:   service.NewConstantService(constantRepo, resolver),
		Stations:    service.NewStationService(stationRepo),
		Users:       service.NewUserService(userRepo),
		Maintenance: service.NewMaintenanceService(maintenanceRepo, resolver, lookups),
		Excel:       excel.NewGenerator(),
		PDF:         pdfGenerator,
	}

	handler := httphandler.NewHandler(svcs, log, cfg.ExposeErrors)
	authMiddleware := middleware.Auth(tokens)
	router := httphandler.NewRouter(handler, authMiddleware, cfg.Environment, log)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting fuel service")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
