package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/RedPanda-08/AI-Content-Generator-sub000/config"
	"github.com/RedPanda-08/AI-Content-Generator-sub000/internal/handler"
	"github.com/RedPanda-08/AI-Content-Generator-sub000/internal/middleware"
	appredis "github.com/RedPanda-08/AI-Content-Generator-sub000/internal/redis"
	"github.com/RedPanda-08/AI-Content-Generator-sub000/internal/transport/httpdto"
	"github.com/RedPanda-08/AI-Content-Generator-sub000/pkg/database"
	"github.com/RedPanda-08/AI-Content-Generator-sub000/pkg/logger"
)

type Server struct {
	httpServer *http.Server
	engine     *gin.Engine
	config     *config.Config
	logger     *logger.Logger
}

var (
	ReleaseMode = "release"
	DebugMode   = "debug"
	TestMode    = "test"
)

type Handlers struct {
	Calendar *handler.CalendarHandler
	Content  *handler.ContentHandler
	Cron     *handler.CronHandler
}

func New(cfg *config.Config, l *logger.Logger) *Server {
	if cfg.AppMode == ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	} else if cfg.AppMode == TestMode {
		gin.SetMode(gin.TestMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())

	return &Server{
		httpServer: &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.AppPort),
			Handler: engine,
		},
		engine: engine,
		config: cfg,
		logger: l,
	}
}

func (s *Server) SetupRoutes(handlers *Handlers, limiter *appredis.RateLimiter) {
	s.engine.Use(middleware.RequestIDMiddleware())
	s.engine.Use(middleware.CORSMiddleware())
	s.engine.Use(middleware.LoggingMiddleware(s.logger))

	s.engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, httpdto.NewSuccessResponse(gin.H{"message": "pong"}))
	})

	s.engine.GET("/health", func(c *gin.Context) {
		if err := database.HealthCheck(); err != nil {
			c.JSON(http.StatusServiceUnavailable, httpdto.NewErrorResponse(err.Error(), "UNHEALTHY"))
			return
		}
		c.JSON(http.StatusOK, httpdto.NewSuccessResponse(gin.H{"status": "healthy"}))
	})

	authed := s.engine.Group("/v1", middleware.AuthMiddleware([]byte(s.config.AuthJWTSecret)))
	{
		calendar := authed.Group("/calendar")
		calendar.GET("", handlers.Calendar.List)
		calendar.POST("", middleware.CalendarRateLimit(limiter, s.logger), handlers.Calendar.Create)
		calendar.DELETE("/:id", middleware.CalendarRateLimit(limiter, s.logger), handlers.Calendar.Delete)

		generate := authed.Group("/content")
		generate.POST("/generate", middleware.GenerateRateLimit(limiter, s.logger), handlers.Content.Generate)
		generate.GET("/history", handlers.Content.History)
		generate.GET("/credits", handlers.Content.Credits)
		generate.GET("/brand", handlers.Content.GetBrandProfile)
		generate.PUT("/brand", handlers.Content.SaveBrandProfile)
	}

	cronGroup := s.engine.Group("/v1/cron", middleware.CronAuthMiddleware(s.config.CronSecret))
	{
		cronGroup.POST("/check-schedule", handlers.Cron.CheckSchedule)
	}
}

func (s *Server) Start() error {
	go func() {
		if s.logger != nil {
			s.logger.Infof("Starting the server on port %s...", s.config.AppPort)
		}
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if s.logger != nil {
				s.logger.Errorf("Error in starting the server: %s", err)
			}
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	if s.logger != nil {
		s.logger.Infof("Server is running on :%s", s.config.AppPort)
	}

	<-quit

	if s.logger != nil {
		s.logger.Infof("Quitting signal received.. Shutting down after 5 seconds")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	return s.httpServer.Shutdown(ctx)
}
