package http

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/baladia/fuel-service/internal/excel"
	"github.com/baladia/fuel-service/internal/pdf"
	"github.com/baladia/fuel-service/internal/service"
)

type Handler struct {
	auth        *service.AuthService
	dashboard   *service.DashboardService
	vehicles    *service.VehicleService
	generators  *service.GeneratorService
	fuelLogs    *service.FuelLogService
	gasBills    *service.GasBillService
	inventory   *service.InventoryService
	constants   *service.ConstantService
	stations    *service.StationService
	users       *service.UserService
	maintenance *service.MaintenanceService

	excel *excel.Generator
	pdf   *pdf.Generator

	log          zerolog.Logger
	exposeErrors bool
}

type Services struct {
	Auth        *service.AuthService
	Dashboard   *service.DashboardService
	Vehicles    *service.VehicleService
	Generators  *service.GeneratorService
	FuelLogs    *service.FuelLogService
	GasBills    *service.GasBillService
	Inventory   *service.InventoryService
	Constants   *service.ConstantService
	Stations    *service.StationService
	Users       *service.UserService
	Maintenance *service.MaintenanceService

	Excel *excel.Generator
	PDF   *pdf.Generator
}

func NewHandler(svcs Services, log zerolog.Logger, exposeErrors bool) *Handler {
	return &Handler{
		auth:         svcs.Auth,
		dashboard:    svcs.Dashboard,
		vehicles:     svcs.Vehicles,
		generators:   svcs.Generators,
		fuelLogs:     svcs.FuelLogs,
		gasBills:     svcs.GasBills,
		inventory:    svcs.Inventory,
		constants:    svcs.Constants,
		stations:     svcs.Stations,
		users:        svcs.Users,
		maintenance:  svcs.Maintenance,
		excel:        svcs.Excel,
		pdf:          svcs.PDF,
		log:          log,
		exposeErrors: exposeErrors,
	}
}

func (h *Handler) Register(router *gin.Engine, authMiddleware gin.HandlerFunc) {
	api := router.Group("/api")

	api.POST("/auth/login", h.login)

	protected := api.Group("/")
	protected.Use(authMiddleware)

	protected.POST("/auth/logout", h.logout)
	protected.GET("/auth/verify", h.verify)
	protected.GET("/auth/user", h.currentUser)

	protected.GET("/dashboard/stats", h.dashboardStats)

	protected.GET("/vehicles", h.listVehicles)
	protected.GET("/vehicles/export/excel", h.exportVehiclesExcel)
	protected.GET("/vehicles/export/pdf", h.exportVehiclesPDF)
	protected.GET("/vehicles/:id", h.getVehicle)
	protected.GET("/vehicles/:id/fuel-logs", h.vehicleFuelLogs)
	protected.GET("/vehicles/:id/stats", h.vehicleFuelStats)
	protected.POST("/vehicles", h.createVehicle)
	protected.PUT("/vehicles/:id", h.updateVehicle)
	protected.DELETE("/vehicles/:id", h.deleteVehicle)

	protected.GET("/generators", h.listGenerators)
	protected.GET("/generators/options", h.generatorOptions)
	protected.GET("/generators/:id", h.getGenerator)
	protected.GET("/generators/:id/fuel-logs", h.generatorFuelLogs)
	protected.POST("/generators", h.createGenerator)
	protected.PUT("/generators/:id", h.updateGenerator)
	protected.DELETE("/generators/:id", h.deleteGenerator)

	protected.GET("/fuel-logs", h.listFuelLogs)
	protected.GET("/fuel-logs/:id", h.getFuelLog)
	protected.POST("/fuel-logs", h.createFuelLog)
	protected.PUT("/fuel-logs/:id", h.updateFuelLog)
	protected.DELETE("/fuel-logs/:id", h.deleteFuelLog)

	protected.GET("/invoices", h.listGasBills)
	protected.GET("/invoices/stats", h.gasBillStats)
	protected.GET("/invoices/:id", h.getGasBill)
	protected.POST("/invoices", h.createGasBill)
	protected.PUT("/invoices/:id", h.updateGasBill)
	protected.DELETE("/invoices/:id", h.deleteGasBill)

	protected.GET("/inventory", h.listInventory)
	protected.GET("/inventory/current", h.currentInventory)
	protected.GET("/inventory/history", h.inventoryHistory)
	protected.GET("/inventory/stats", h.inventoryStats)
	protected.POST("/inventory/update", h.topUpInventory)
	protected.GET("/inventory/:id", h.getInventory)
	protected.POST("/inventory", h.createInventory)
	protected.PUT("/inventory/:id", h.updateInventory)
	protected.DELETE("/inventory/:id", h.deleteInventory)

	protected.GET("/constants", h.listConstants)
	protected.GET("/constants/types", h.constantTypes)
	protected.GET("/constants/type/:type", h.constantsByType)
	protected.GET("/constants/options/:type", h.constantOptions)
	protected.GET("/constants/:id", h.getConstant)
	protected.POST("/constants", h.createConstant)
	protected.PUT("/constants/:id", h.updateConstant)
	protected.DELETE("/constants/:id", h.deleteConstant)

	protected.GET("/stations", h.listStations)
	protected.GET("/stations/options", h.stationOptions)
	protected.GET("/stations/:id", h.getStation)
	protected.POST("/stations", h.createStation)
	protected.PUT("/stations/:id", h.updateStation)
	protected.DELETE("/stations/:id", h.deleteStation)

	protected.GET("/users", h.listUsers)
	protected.GET("/users/:id", h.getUser)
	protected.POST("/users", h.createUser)
	protected.PUT("/users/:id", h.updateUser)
	protected.DELETE("/users/:id", h.deleteUser)

	protected.GET("/maintenance", h.listMaintenance)
	protected.GET("/maintenance/:id", h.getMaintenance)
	protected.POST("/maintenance", h.createMaintenance)
	protected.PUT("/maintenance/:id", h.updateMaintenance)
	protected.DELETE("/maintenance/:id", h.deleteMaintenance)
}
