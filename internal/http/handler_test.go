package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/baladia/fuel-service/internal/auth"
	"github.com/baladia/fuel-service/internal/constants"
	"github.com/baladia/fuel-service/internal/excel"
	"github.com/baladia/fuel-service/internal/http/middleware"
	"github.com/baladia/fuel-service/internal/model"
	"github.com/baladia/fuel-service/internal/pdf"
	"github.com/baladia/fuel-service/internal/repository"
	"github.com/baladia/fuel-service/internal/service"
)

func setupAPI(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:api_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.Constant{},
		&model.Station{},
		&model.User{},
		&model.Vehicle{},
		&model.Generator{},
		&model.FuelLog{},
		&model.GasBill{},
		&model.InventorySnapshot{},
		&model.MaintenanceRecord{},
	))

	resolver := constants.NewResolver(db)
	lookups := repository.NewLookupRepository(db)
	userRepo := repository.NewUserRepository(db)
	tokens := auth.NewManager("test-secret", time.Hour)
	pdfGenerator, err := pdf.NewGenerator()
	require.NoError(t, err)

	svcs := Services{
		Auth:        service.NewAuthService(userRepo, tokens),
		Dashboard:   service.NewDashboardService(repository.NewDashboardRepository(db)),
		Vehicles:    service.NewVehicleService(repository.NewVehicleRepository(db), resolver, lookups),
		Generators:  service.NewGeneratorService(repository.NewGeneratorRepository(db), resolver, lookups),
		FuelLogs:    service.NewFuelLogService(repository.NewFuelLogRepository(db), resolver, lookups),
		GasBills:    service.NewGasBillService(repository.NewGasBillRepository(db), resolver, lookups),
		Inventory:   service.NewInventoryService(repository.NewInventoryRepository(db)),
		Constants:   service.NewConstantService(repository.NewConstantRepository(db), resolver),
		Stations:    service.NewStationService(repository.NewStationRepository(db)),
		Users:       service.NewUserService(userRepo),
		Maintenance: service.NewMaintenanceService(repository.NewMaintenanceRepository(db), resolver, lookups),
		Excel:       excel.NewGenerator(),
		PDF:         pdfGenerator,
	}

	handler := NewHandler(svcs, zerolog.Nop(), false)
	router := NewRouter(handler, middleware.Auth(tokens), "test", zerolog.Nop())

	// Seed the admin account directly; the API has no self-registration.
	_, err = svcs.Users.Create(t.Context(), model.Principal{ID: 1, Username: "seed"}, service.UserCreateInput{
		Username: "admin",
		Password: "s3cret",
		FullName: "Admin",
	})
	require.NoError(t, err)

	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func loginToken(t *testing.T, router *gin.Engine) string {
	t.Helper()
	recorder := doJSON(t, router, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": "admin",
		"password": "s3cret",
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.NotEmpty(t, resp.Data.Token)
	return resp.Data.Token
}

func TestLoginAndProtectedRoute(t *testing.T) {
	router := setupAPI(t)
	token := loginToken(t, router)

	recorder := doJSON(t, router, http.MethodGet, "/api/vehicles", token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Total int64 `json:"total"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.EqualValues(t, 0, resp.Data.Total)
}

func TestProtectedRouteRequiresToken(t *testing.T) {
	router := setupAPI(t)

	recorder := doJSON(t, router, http.MethodGet, "/api/vehicles", "", nil)
	require.Equal(t, http.StatusUnauthorized, recorder.Code)

	recorder = doJSON(t, router, http.MethodGet, "/api/vehicles", "garbage-token", nil)
	require.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	router := setupAPI(t)

	recorder := doJSON(t, router, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": "admin",
		"password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestVehicleCRUDOverHTTP(t *testing.T) {
	router := setupAPI(t)
	token := loginToken(t, router)

	recorder := doJSON(t, router, http.MethodPost, "/api/vehicles", token, gin.H{
		"vehicle_num":   "TRK-1",
		"fuel_type_oid": 3,
		"type_oid":      1,
	})
	require.Equal(t, http.StatusCreated, recorder.Code)

	var created struct {
		Data model.Vehicle `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &created))
	require.NotZero(t, created.Data.ID)

	path := fmt.Sprintf("/api/vehicles/%d", created.Data.ID)
	recorder = doJSON(t, router, http.MethodGet, path, token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = doJSON(t, router, http.MethodPut, path, token, gin.H{"plate_num": "XYZ-1"})
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = doJSON(t, router, http.MethodDelete, path, token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = doJSON(t, router, http.MethodGet, path, token, nil)
	require.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestValidationErrorMapsTo422(t *testing.T) {
	router := setupAPI(t)
	token := loginToken(t, router)

	recorder := doJSON(t, router, http.MethodPost, "/api/vehicles", token, gin.H{
		"fuel_type_oid": 3,
		"type_oid":      1,
	})
	require.Equal(t, http.StatusUnprocessableEntity, recorder.Code)

	var resp envelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	require.False(t, resp.Success)
	require.NotEmpty(t, resp.Message)
}

func TestFuelLogOwnerRejectedOverHTTP(t *testing.T) {
	router := setupAPI(t)
	token := loginToken(t, router)

	recorder := doJSON(t, router, http.MethodPost, "/api/fuel-logs", token, gin.H{
		"veh_oid":       42,
		"generator_oid": 7,
		"fill_up_date":  "2025-05-01",
		"gallons":       50,
	})
	require.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
}

func TestMalformedLimitRejected(t *testing.T) {
	router := setupAPI(t)
	token := loginToken(t, router)

	recorder := doJSON(t, router, http.MethodPost, "/api/vehicles", token, gin.H{
		"vehicle_num":   "TRK-9",
		"fuel_type_oid": 3,
		"type_oid":      1,
	})
	require.Equal(t, http.StatusCreated, recorder.Code)

	var created struct {
		Data model.Vehicle `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &created))

	path := fmt.Sprintf("/api/vehicles/%d/fuel-logs?limit=abc", created.Data.ID)
	recorder = doJSON(t, router, http.MethodGet, path, token, nil)
	require.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestUserActiveFilterParam(t *testing.T) {
	router := setupAPI(t)
	token := loginToken(t, router)

	recorder := doJSON(t, router, http.MethodGet, "/api/users?user_active=true", token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var resp struct {
		Data struct {
			Total int64 `json:"total"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	require.EqualValues(t, 1, resp.Data.Total)

	recorder = doJSON(t, router, http.MethodGet, "/api/users?user_active=false", token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	require.EqualValues(t, 0, resp.Data.Total)
}

func TestHealthOpen(t *testing.T) {
	router := setupAPI(t)
	recorder := doJSON(t, router, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
}
