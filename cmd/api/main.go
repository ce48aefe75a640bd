package main

import (
	"log"

	"github.com/RedPanda-08/AI-Content-Generator-sub000/config"
	"github.com/RedPanda-08/AI-Content-Generator-sub000/internal/ai"
	"github.com/RedPanda-08/AI-Content-Generator-sub000/internal/domain/billing"
	"github.com/RedPanda-08/AI-Content-Generator-sub000/internal/domain/content"
	"github.com/RedPanda-08/AI-Content-Generator-sub000/internal/domain/event"
	"github.com/RedPanda-08/AI-Content-Generator-sub000/internal/handler"
	"github.com/RedPanda-08/AI-Content-Generator-sub000/internal/mailer"
	appredis "github.com/RedPanda-08/AI-Content-Generator-sub000/internal/redis"
	"github.com/RedPanda-08/AI-Content-Generator-sub000/internal/repository"
	"github.com/RedPanda-08/AI-Content-Generator-sub000/internal/server"
	"github.com/RedPanda-08/AI-Content-Generator-sub000/internal/services"
	"github.com/RedPanda-08/AI-Content-Generator-sub000/pkg/database"
	"github.com/RedPanda-08/AI-Content-Generator-sub000/pkg/logger"
)

func main() {
	cfg := config.LoadConfig()

	logMode := logger.DevelopmentMode
	if cfg.AppMode == server.ReleaseMode {
		logMode = logger.ProductionMode
	}
	l := logger.New(logMode)
	logger.SetGlobalLogger(l)

	// Connect to Database
	database.Connect(cfg)

	if err := database.DB.AutoMigrate(
		&event.ScheduledEvent{},
		&content.GeneratedContent{},
		&content.BrandProfile{},
		&billing.CreditAccount{},
	); err != nil {
		log.Fatalf("Failed to apply GORM migrations: %v", err)
	}

	appredis.Initialize(appredis.Config{
		Host:     cfg.RedisHost,
		Port:     cfg.RedisPort,
		Password: cfg.RedisPassword,
	})
	limiter := appredis.NewRateLimiter(appredis.GetClient(), appredis.DefaultRateLimitConfig())

	eventRepo := repository.NewEventRepository(database.DB)
	contentRepo := repository.NewContentRepository(database.DB)
	creditRepo := repository.NewCreditRepository(database.DB)

	smtpMailer := mailer.NewSMTPMailer(cfg)
	completer := ai.NewHTTPCompleter(cfg)

	calendarService := services.NewCalendarService(eventRepo)
	watchdogService := services.NewWatchdogService(eventRepo, smtpMailer, l, cfg.NotifyTimezone)
	generatorService := services.NewGeneratorService(contentRepo, creditRepo, completer, cfg.FreeCredits)

	scheduler := services.NewScheduler(watchdogService, l)
	if err := scheduler.Start(cfg.CronSpec); err != nil {
		log.Fatalf("Failed to start schedule trigger: %v", err)
	}
	defer scheduler.Stop()

	srv := server.New(cfg, l)
	srv.SetupRoutes(&server.Handlers{
		Calendar: handler.NewCalendarHandler(calendarService),
		Content:  handler.NewContentHandler(generatorService),
		Cron:     handler.NewCronHandler(watchdogService),
	}, limiter)

	if err := srv.Start(); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
}
