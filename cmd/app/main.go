package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"fulfillment/cmd"
	httpin "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/postgres/notifyrepo"
	"fulfillment/internal/adapters/out/postgres/operatorrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/subrulerepo"
	"fulfillment/internal/adapters/out/postgres/toterepo"
	_ "fulfillment/internal/generated/docs"
	"fulfillment/internal/generated/servers"
	"fulfillment/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const tokenTTL = 12 * time.Hour

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := connectDB(configs)

	app, err := cmd.NewCompositionRoot(context.Background(), configs, gormDB)
	if err != nil {
		log.Fatalf("Failed to build composition root: %v", err)
	}

	jobManager := jobs.NewJobManager(
		app.CreateImportOrdersCommandHandler(),
		app.CreateSyncDeliveriesCommandHandler(),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs)
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

		ShopifyShop:       goDotEnvVariable("SHOPIFY_SHOP"),
		ShopifyToken:      goDotEnvVariable("SHOPIFY_TOKEN"),
		ShopifyAPIVersion: goDotEnvVariable("SHOPIFY_API_VERSION"),
		ShopifyLocationID: goDotEnvVariable("SHOPIFY_LOCATION_ID"),

		Locate2uBaseURL:      goDotEnvVariable("LOCATE2U_BASE_URL"),
		Locate2uClientID:     goDotEnvVariable("LOCATE2U_CLIENT_ID"),
		Locate2uClientSecret: goDotEnvVariable("LOCATE2U_CLIENT_SECRET"),

		SlackWebhookURL: goDotEnvVariable("SLACK_WEBHOOK_URL"),

		S3Endpoint:  goDotEnvVariable("S3_ENDPOINT"),
		S3Region:    goDotEnvVariable("S3_REGION"),
		S3AccessKey: goDotEnvVariable("S3_ACCESS_KEY"),
		S3SecretKey: goDotEnvVariable("S3_SECRET_KEY"),
		S3Bucket:    goDotEnvVariable("S3_BUCKET"),
		S3PublicURL: goDotEnvVariable("S3_PUBLIC_URL"),

		JWTSecret: goDotEnvVariable("JWT_SECRET"),
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

func connectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&toterepo.ToteDTO{},
		&operatorrepo.OperatorDTO{},
		&subrulerepo.RuleDTO{},
		&notifyrepo.NotificationDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	server := httpin.NewServer(httpin.Handlers{
		ImportOrders:        app.CreateImportOrdersCommandHandler(),
		SyncDeliveries:      app.CreateSyncDeliveriesCommandHandler(),
		PickItem:            app.CreatePickItemCommandHandler(),
		UnpickItem:          app.CreateUnpickItemCommandHandler(),
		PackItem:            app.CreatePackItemCommandHandler(),
		UnpackItem:          app.CreateUnpackItemCommandHandler(),
		FlagException:       app.CreateFlagExceptionCommandHandler(),
		UndoItem:            app.CreateUndoItemCommandHandler(),
		RecordSubstitution:  app.CreateRecordSubstitutionCommandHandler(),
		ConfirmSubstitution: app.CreateConfirmSubstitutionCommandHandler(),
		RefundLineItem:      app.CreateRefundLineItemCommandHandler(),
		UpdateNotes:         app.CreateUpdateNotesCommandHandler(),
		Approve:             app.CreateApproveCommandHandler(),
		CompletePicking:     app.CreateCompletePickingCommandHandler(),
		StartPacking:        app.CreateStartPackingCommandHandler(),
		CompletePacking:     app.CreateCompletePackingCommandHandler(),
		AssignTote:          app.CreateAssignToteCommandHandler(),
		RemoveTote:          app.CreateRemoveToteCommandHandler(),
		AddPhoto:            app.CreateAddPhotoCommandHandler(),
		RemovePhoto:         app.CreateRemovePhotoCommandHandler(),
		CreateOperator:      app.CreateCreateOperatorCommandHandler(),
		UpdateOperator:      app.CreateUpdateOperatorCommandHandler(),
		UpsertRule:          app.CreateUpsertSubstitutionRuleCommandHandler(),
		DeleteRule:          app.CreateDeleteSubstitutionRuleCommandHandler(),

		DashboardStats:         app.CreateGetDashboardStatsQueryHandler(),
		PickBoard:              app.CreateGetPickBoardQueryHandler(),
		PackBoard:              app.CreateGetPackBoardQueryHandler(),
		OrderDetail:            app.CreateGetOrderDetailQueryHandler(),
		OrderLog:               app.CreateGetOrderLogQueryHandler(),
		AllOperators:           app.CreateGetAllOperatorsQueryHandler(),
		SubstitutionCandidates: app.CreateGetSubstitutionCandidatesQueryHandler(),
		Notifications:          app.CreateGetNotificationsQueryHandler(),
	})

	tokenManager := httpin.NewTokenManager(configs.JWTSecret, tokenTTL, "fulfillment")

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1", tokenManager.Authenticate)
	servers.RegisterHandlers(api, server)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
