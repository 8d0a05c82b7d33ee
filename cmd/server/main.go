package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/classboard/classboard-api/api/swagger"
	"github.com/classboard/classboard-api/internal/handler"
	"github.com/classboard/classboard-api/internal/middleware"
	"github.com/classboard/classboard-api/internal/repository"
	"github.com/classboard/classboard-api/internal/service"
	"github.com/classboard/classboard-api/pkg/cache"
	"github.com/classboard/classboard-api/pkg/config"
	"github.com/classboard/classboard-api/pkg/database"
	"github.com/classboard/classboard-api/pkg/export"
	"github.com/classboard/classboard-api/pkg/logger"
	corsmiddleware "github.com/classboard/classboard-api/pkg/middleware/cors"
	reqidmiddleware "github.com/classboard/classboard-api/pkg/middleware/requestid"
	"github.com/classboard/classboard-api/pkg/storage"
)

// @title ClassBoard API
// @version 0.1.0
// @description REST API for the ClassBoard teacher dashboard
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close() //nolint:errcheck

	metricsSvc := service.NewMetricsService()

	var cacheSvc *service.CacheService
	if cfg.Dashboard.CacheEnabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, dashboard cache disabled", "error", err)
			cacheSvc = service.NewCacheService(nil, metricsSvc, cfg.Dashboard.CacheTTL, logr, false)
		} else {
			defer redisClient.Close() //nolint:errcheck
			cacheRepo := repository.NewCacheRepository(redisClient, logr)
			cacheSvc = service.NewCacheService(cacheRepo, metricsSvc, cfg.Dashboard.CacheTTL, logr, true)
		}
	} else {
		cacheSvc = service.NewCacheService(nil, metricsSvc, cfg.Dashboard.CacheTTL, logr, false)
	}

	uploads, err := storage.NewLocalStorage(cfg.Uploads.Dir)
	if err != nil {
		logr.Sugar().Fatalw("failed to init upload storage", "error", err)
	}

	validate := validator.New()

	teacherRepo := repository.NewTeacherRepository(db)
	classRepo := repository.NewClassRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	tokenRepo := repository.NewTokenRepository(db)

	authSvc := service.NewAuthService(teacherRepo, tokenRepo, validate, logr, service.AuthConfig{
		TokenSecret:    cfg.JWT.Secret,
		TokenExpiry:    cfg.JWT.Expiration,
		RememberExpiry: cfg.JWT.RememberExpiration,
		Issuer:         "classboard-api",
	})
	profileSvc := service.NewProfileService(teacherRepo, uploads, cfg.Uploads.PublicPath, cfg.Uploads.MaxFileSizeBytes, validate, logr)
	classSvc := service.NewClassService(classRepo, studentRepo, validate, logr)
	studentSvc := service.NewStudentService(studentRepo, export.NewCSVExporter(), logr)
	questionSvc := service.NewQuestionService(questionRepo, export.NewPDFExporter(), logr)
	dashboardSvc := service.NewDashboardService(classSvc, profileSvc, cacheSvc, cfg.Dashboard.CacheTTL, logr)

	authHandler := handler.NewAuthHandler(authSvc, cfg.Env == config.EnvProduction)
	profileHandler := handler.NewProfileHandler(profileSvc, dashboardSvc)
	classHandler := handler.NewClassHandler(classSvc, dashboardSvc)
	studentHandler := handler.NewStudentHandler(studentSvc)
	questionHandler := handler.NewQuestionHandler(questionSvc)
	dashboardHandler := handler.NewDashboardHandler(dashboardSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	r.Static(cfg.Uploads.PublicPath, uploads.BaseDir())

	r.POST("/teacher/register", authHandler.Register)
	r.POST("/teacher/login", authHandler.Login)
	r.GET("/teacher/session", authHandler.Session)

	auth := r.Group("/", middleware.JWT(authSvc))
	{
		auth.GET("/teacher/dashboard", dashboardHandler.Overview)
		auth.GET("/teacher/class/:id", classHandler.Get)
		auth.POST("/teacher/class", classHandler.Create)
		auth.DELETE("/teacher/class/:id", classHandler.Delete)
		auth.GET("/teacher/students", studentHandler.List)
		auth.GET("/teacher/students/export", studentHandler.Export)
		auth.GET("/teacher/profile", profileHandler.Get)
		auth.PUT("/teacher/profile", profileHandler.Update)
		auth.PUT("/teacher/profile/upload", profileHandler.Upload)
		auth.POST("/teacher/question-paper", questionHandler.Submit)
		auth.GET("/teacher/question-paper/:id/export", questionHandler.Export)
		auth.POST("/auth/logout", authHandler.Logout)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
