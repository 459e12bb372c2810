package main

import (
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"

	"resourceshare/cmd"
	httpadapter "resourceshare/internal/adapters/in/http"
	"resourceshare/internal/adapters/out/postgres/resourcerepo"
	"resourceshare/internal/adapters/out/postgres/userrepo"
	"resourceshare/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db := mustOpenDB(configs)
	app := cmd.NewCompositionRoot(configs, db)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(app.CreateGetStatusSummaryQueryHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
		JWTSecret:  goDotEnvVariable("JWT_SECRET"),
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

func mustOpenDB(config cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword,
		config.DBName, config.DBSslMode)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&userrepo.UserDTO{}, &resourcerepo.ResourceDTO{}); err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return db
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(nethttp.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(
		app.CreatePublishResourceCommandHandler(),
		app.CreateClaimResourceCommandHandler(),
		app.CreateConfirmPickupCommandHandler(),
		app.CreateConfirmDeliveryCommandHandler(),
		app.CreateToggleAutoConfirmCommandHandler(),
		app.CreateCancelResourceCommandHandler(),
		app.CreateGetAvailableResourcesQueryHandler(),
		app.CreateGetDonorResourcesQueryHandler(),
		app.CreateGetClaimedDonorResourcesQueryHandler(),
		app.CreateGetReceiverResourcesQueryHandler(),
		app.CreateGetResourceByIDQueryHandler(),
	)
	server.RegisterRoutes(e, app.CreateIdentityProvider())

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
