package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/classcore/results-api/api/swagger"
	"github.com/classcore/results-api/internal/handler"
	"github.com/classcore/results-api/internal/middleware"
	"github.com/classcore/results-api/internal/repository"
	"github.com/classcore/results-api/internal/service"
	"github.com/classcore/results-api/pkg/cache"
	"github.com/classcore/results-api/pkg/config"
	"github.com/classcore/results-api/pkg/database"
	"github.com/classcore/results-api/pkg/logger"
	corsmiddleware "github.com/classcore/results-api/pkg/middleware/cors"
	reqidmiddleware "github.com/classcore/results-api/pkg/middleware/requestid"
)

// @title ClassCore Results API
// @version 1.0.0
// @description Ranking, statistics and integrity auditing over academic term results
// @BasePath /api/v1
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
		logr.Sugar().Fatalw("database connect failed", "error", err)
	}
	defer db.Close()

	var redisClient *redis.Client
	if cfg.Results.CacheEnabled {
		redisClient, err = cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, continuing without cache", zap.Error(err))
			redisClient = nil
		}
	}

	metricsSvc := service.NewMetricsService()
	cacheRepo := repository.NewCacheRepository(redisClient, logr)
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Results.CacheTTL, logr, cfg.Results.CacheEnabled && redisClient != nil)

	resultRepo := repository.NewResultRepository(db)
	resultSvc := service.NewResultService(resultRepo, cacheSvc, metricsSvc, logr, cfg.Results.PassingScore)
	exportSvc := service.NewExportService(resultSvc, logr, nil, nil)

	resultHandler := handler.NewResultHandler(resultSvc)
	exportHandler := handler.NewExportHandler(exportSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.WithResponseMeta())
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	api := r.Group(cfg.APIPrefix)
	{
		results := api.Group("/results")
		results.GET("/cohort", resultHandler.Cohort)
		results.GET("/level", resultHandler.Level)
		results.GET("/subjects", resultHandler.Subjects)
		results.GET("/percentile", resultHandler.Percentile)
		results.GET("/statistics", resultHandler.Statistics)
		results.GET("/integrity", resultHandler.Integrity)
		results.GET("/system", resultHandler.System)
		results.DELETE("/cache", resultHandler.InvalidateCache)

		if cfg.Export.Enabled {
			results.GET("/export/cohort", exportHandler.Cohort)
			results.GET("/export/level", exportHandler.Level)
		}
	}

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "cache_enabled", cacheSvc.Enabled())
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
