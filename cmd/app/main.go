package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"freight/cmd"
	adapterhttp "freight/internal/adapters/in/http"
	"freight/internal/adapters/out/postgres/driverrepo"
	"freight/internal/adapters/out/postgres/ledgerrepo"
	"freight/internal/adapters/out/postgres/notificationrepo"
	"freight/internal/adapters/out/postgres/shipmentrepo"
	"freight/internal/adapters/out/postgres/warehouserepo"
	"freight/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const defaultCommissionRate = 0.15

func main() {
	configs := getConfigs()

	gormDB := openDatabase(configs)
	migrateDatabase(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(
		app.CreateAssignDriverCommandHandler(),
		app.CreateRecalculateWarehouseLoadsCommandHandler(),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:              goDotEnvVariable("HTTP_PORT"),
		DBHost:                goDotEnvVariable("DB_HOST"),
		DBPort:                goDotEnvVariable("DB_PORT"),
		DBUser:                goDotEnvVariable("DB_USER"),
		DBPassword:            goDotEnvVariable("DB_PASSWORD"),
		DBName:                goDotEnvVariable("DB_NAME"),
		DBSslMode:             goDotEnvVariable("DB_SSLMODE"),
		DefaultCommissionRate: commissionRateVariable("DEFAULT_COMMISSION_RATE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func commissionRateVariable(key string) float64 {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return defaultCommissionRate
	}

	rate, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Fatalf("Invalid %s value %q: %v", key, raw, err)
	}
	return rate
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func migrateDatabase(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&shipmentrepo.ShipmentDTO{},
		&shipmentrepo.HistoryEntryDTO{},
		&warehouserepo.WarehouseDTO{},
		&driverrepo.DriverDTO{},
		&notificationrepo.NotificationDTO{},
		&ledgerrepo.TransactionDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	server := adapterhttp.NewServer(
		app.CreateCreateShipmentCommandHandler(),
		app.CreateTransitionShipmentCommandHandler(),
		app.CreateDeleteShipmentCommandHandler(),
		app.CreateAssignWarehouseCommandHandler(),
		app.CreateCreateWarehouseCommandHandler(),
		app.CreateDeleteWarehouseCommandHandler(),
		app.CreateCreateDriverCommandHandler(),
		app.CreateDeleteDriverCommandHandler(),
		app.CreateTrackShipmentQueryHandler(),
		app.CreateGetActiveShipmentsQueryHandler(),
		app.CreateGetDriverPerformanceQueryHandler(),
		app.CreateGetWarehouseUtilizationQueryHandler(),
		configs.DefaultCommissionRate,
	)

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
