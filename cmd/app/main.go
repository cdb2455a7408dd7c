package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"courierhub/cmd"
	"courierhub/internal/adapters/out/postgres/courierrepo"
	"courierhub/internal/adapters/out/postgres/disputerepo"
	"courierhub/internal/adapters/out/postgres/orderrepo"
	"courierhub/internal/adapters/out/postgres/shoprepo"
	"courierhub/internal/adapters/out/postgres/zonerepo"
	"courierhub/internal/adapters/out/redis/codestore"
	"courierhub/internal/adapters/out/telegram"
	"courierhub/internal/core/ports"
	"courierhub/internal/jobs"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	goredis "github.com/redis/go-redis/v9"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustOpenDB(configs)

	redisClient := goredis.NewClient(&goredis.Options{
		Addr:     configs.RedisAddr,
		Password: configs.RedisPassword,
	})
	codeStore := codestore.NewRedisCodeStore(redisClient)

	notifier := buildNotifier(configs, gormDB, logger)

	app := cmd.NewCompositionRoot(gormDB, notifier, codeStore, gracePeriod(configs))

	jobManager := app.CreateJobManager(jobs.JobSchedules{
		AutoAssignment: configs.AutoAssignmentCronSpec,
		AutoConfirm:    configs.AutoConfirmCronSpec,
	}, logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:               goDotEnvVariable("HTTP_PORT"),
		DBHost:                 goDotEnvVariable("DB_HOST"),
		DBPort:                 goDotEnvVariable("DB_PORT"),
		DBUser:                 goDotEnvVariable("DB_USER"),
		DBPassword:             goDotEnvVariable("DB_PASSWORD"),
		DBName:                 goDotEnvVariable("DB_NAME"),
		DBSslMode:              goDotEnvVariable("DB_SSLMODE"),
		RedisAddr:              goDotEnvVariable("REDIS_ADDR"),
		RedisPassword:          goDotEnvVariable("REDIS_PASSWORD"),
		TelegramBotToken:       goDotEnvVariable("TELEGRAM_BOT_TOKEN"),
		ConfirmationGraceHours: goDotEnvVariable("CONFIRMATION_GRACE_HOURS"),
		AutoAssignmentCronSpec: goDotEnvVariable("AUTO_ASSIGNMENT_CRON_SPEC"),
		AutoConfirmCronSpec:    goDotEnvVariable("AUTO_CONFIRM_CRON_SPEC"),
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

func mustOpenDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&courierrepo.CourierDTO{},
		&zonerepo.ZoneDTO{},
		&shoprepo.ShopDTO{},
		&disputerepo.DisputeDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

// buildNotifier wires the Telegram notifier when a bot token is configured
// and falls back to a no-op notifier otherwise, so local runs do not need a
// bot account.
func buildNotifier(configs cmd.Config, gormDB *gorm.DB, logger *slog.Logger) ports.Notifier {
	if configs.TelegramBotToken == "" {
		logger.Info("No bot token configured, notifications are disabled")
		return ports.NewNopNotifier()
	}

	bot, err := tgbotapi.NewBotAPI(configs.TelegramBotToken)
	if err != nil {
		log.Fatalf("Failed to initialize bot API: %v", err)
	}

	shopRepo := shoprepo.NewGormShopRepository(gormDB)
	return telegram.NewNotifier(bot, shopRepo, logger)
}

func gracePeriod(configs cmd.Config) time.Duration {
	hours, err := strconv.Atoi(configs.ConfirmationGraceHours)
	if err != nil || hours <= 0 {
		return 0 // handler falls back to its default
	}
	return time.Duration(hours) * time.Hour
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	app.CreateHTTPServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
