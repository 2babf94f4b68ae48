package router

import (
	"fmt"
	"strings"

	"github.com/newsroom-next/internal/cache"
	"github.com/newsroom-next/internal/config"
	"github.com/newsroom-next/internal/constants"
	adminhandlers "github.com/newsroom-next/internal/http/handlers/admin"
	publichandlers "github.com/newsroom-next/internal/http/handlers/public"
	"github.com/newsroom-next/internal/logger"
	"github.com/newsroom-next/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	// 初始化 Handler（按前台/后台分组）
	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = constants.RedisPrefixDefault
	}
	redisClient := cache.Client()
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		BlockSeconds:  cfg.Security.LoginRateLimit.BlockSeconds,
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// 本地存储时由进程直接提供上传文件
	if strings.EqualFold(cfg.Blob.Provider, constants.BlobProviderLocal) {
		dir := strings.TrimSpace(cfg.Blob.LocalDir)
		if dir == "" {
			dir = "./uploads"
		}
		r.Static("/uploads", dir)
	}

	api := r.Group("/api")
	{
		// 健康检查
		api.GET("/health", func(ctx *gin.Context) {
			ctx.JSON(200, gin.H{"status": "ok"})
		})

		// 公开接口
		api.GET("/news", publicHandler.ListNews)
		api.GET("/news/:id", publicHandler.GetNews)
		api.PATCH("/news/:id/view", publicHandler.IncrementNewsView)

		api.GET("/trainings", publicHandler.ListTrainings)
		api.GET("/trainings/:id", publicHandler.GetTraining)

		api.GET("/media", publicHandler.ListMedia)
		api.GET("/media/:id", publicHandler.GetMedia)
		api.PATCH("/media/:id/view", publicHandler.IncrementMediaView)
		api.GET("/media/:id/related", publicHandler.GetRelatedMedia)

		// 登录接口（无需鉴权，按 IP+用户名限流）
		api.POST("/auth/login", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("username")), adminHandler.Login)

		// 管理接口（需鉴权）
		authorized := api.Group("")
		authorized.Use(JWTAuthMiddleware(cfg.JWT.SecretKey, c.AdminRepo))
		{
			authorized.PUT("/auth/password", adminHandler.UpdatePassword)

			authorized.POST("/news", adminHandler.CreateNews)
			authorized.PUT("/news/:id", adminHandler.UpdateNews)
			authorized.DELETE("/news/:id", adminHandler.DeleteNews)

			authorized.POST("/trainings", adminHandler.CreateTraining)
			authorized.PUT("/trainings/:id", adminHandler.UpdateTraining)
			authorized.DELETE("/trainings/:id", adminHandler.DeleteTraining)

			authorized.POST("/media", adminHandler.CreateMedia)
			authorized.PUT("/media/:id", adminHandler.UpdateMedia)
			authorized.DELETE("/media/:id", adminHandler.DeleteMedia)

			authorized.GET("/upload", adminHandler.PresignUpload)
			authorized.POST("/upload", adminHandler.UploadFile)

			authorized.GET("/audit-logs", adminHandler.ListAuditLogs)
		}
	}

	return r
}
