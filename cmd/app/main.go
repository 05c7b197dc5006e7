package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"kitchen/cmd"
	httpadapter "kitchen/internal/adapters/in/http"
	"kitchen/internal/adapters/out/postgres/orderrepo"
	"kitchen/internal/adapters/out/postgres/productrepo"
	"kitchen/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	mustMigrate(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := startJobs(&app, configs)
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:      goDotEnvVariable("HTTP_PORT"),
		DBHost:        goDotEnvVariable("DB_HOST"),
		DBPort:        goDotEnvVariable("DB_PORT"),
		DBUser:        goDotEnvVariable("DB_USER"),
		DBPassword:    goDotEnvVariable("DB_PASSWORD"),
		DBName:        goDotEnvVariable("DB_NAME"),
		DBSslMode:     goDotEnvVariable("DB_SSLMODE"),
		RedisAddr:     goDotEnvVariable("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		DraftTTLHours: goDotEnvVariable("DRAFT_TTL_HOURS"),
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

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	// TranslateError turns unique violations into gorm.ErrDuplicatedKey,
	// which the repositories map to conflict errors.
	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	return gormDB
}

func mustMigrate(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.LineDTO{},
		&productrepo.ProductDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// One active cart per client. GORM tags cannot express a partial index.
	err = gormDB.Exec(
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_one_draft_per_client ON orders (client_id) WHERE status = 'DRAFT'",
	).Error
	if err != nil {
		log.Fatalf("Failed to create partial draft index: %v", err)
	}
}

func startJobs(app *cmd.CompositionRoot, configs cmd.Config) *jobs.JobManager {
	draftTTL := 24 * time.Hour
	if hours, err := strconv.Atoi(configs.DraftTTLHours); err == nil && hours > 0 {
		draftTTL = time.Duration(hours) * time.Hour
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(
		app.CreateRemoveStaleDraftsCommandHandler(),
		draftTTL,
		logger,
	)

	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}

	return jobManager
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpadapter.NewServer(
		app.CreateCreateDraftOrderCommandHandler(),
		app.CreateAddProductToDraftCommandHandler(),
		app.CreateRemoveProductFromDraftCommandHandler(),
		app.CreateFormOrderCommandHandler(),
		app.CreateCompleteOrderCommandHandler(),
		app.CreateRejectOrderCommandHandler(),
		app.CreateDeleteOrderCommandHandler(),
		app.CreateIncrementPreparedCommandHandler(),
		app.CreateCreateProductCommandHandler(),
		app.CreateUpdateProductCommandHandler(),
		app.CreateDeleteProductCommandHandler(),
		app.CreateGetOrdersQueryHandler(),
		app.CreateGetProductsQueryHandler(),
		app.CreateGetCookTasksQueryHandler(),
	)

	server.RegisterRoutes(e, httpadapter.BearerAuth(app.SessionStore()))

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
