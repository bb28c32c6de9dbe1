package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"healthmate/internal/ai"
	appsvc "healthmate/internal/app"
	"healthmate/internal/bootstrap"
	"healthmate/internal/cache"
	"healthmate/internal/extract"
	"healthmate/internal/platform/rabbitmq"
	"healthmate/internal/repository"
	"healthmate/internal/transport/http/handler"
	"healthmate/internal/transport/http/middleware"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	healthHandler := handler.NewHealthHandler(app)
	router.GET("/healthz", healthHandler.Check)

	userRepo := repository.NewUserRepository(app.MySQL)
	fileRepo := repository.NewFileRepository(app.MySQL)
	insightRepo := repository.NewInsightRepository(app.MySQL)

	authService := appsvc.NewAuthService(
		userRepo,
		app.Config.Auth.JWTSecret,
		time.Duration(app.Config.Auth.JWTExpireMinute)*time.Minute,
	)
	fileService := appsvc.NewFileService(fileRepo, app.Storage)

	geminiClient := ai.NewGeminiClient(ai.GenerateConfig{
		BaseURL: app.Config.Gemini.BaseURL,
		APIKey:  app.Config.Gemini.APIKey,
		Model:   app.Config.Gemini.Model,
	})
	extractor := extract.NewExtractor(app.Storage)
	insightCache := cache.NewInsightCache(app.Redis, time.Duration(app.Config.Redis.InsightTTLSeconds)*time.Second)
	eventPublisher := rabbitmq.NewEventPublisher(app.MQConn, app.Config.RabbitMQ.AnalysisAuditQueue)
	analysisService := appsvc.NewAnalysisService(
		fileRepo,
		insightRepo,
		extractor,
		geminiClient,
		eventPublisher,
		insightCache,
	)

	authHandler := handler.NewAuthHandler(authService)
	fileHandler := handler.NewFileHandler(fileService)
	insightHandler := handler.NewInsightHandler(analysisService, fileService)

	v1 := router.Group("/api/v1")
	authGroup := v1.Group("/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)
	authGroup.GET("/me", middleware.AuthJWT(app.Config.Auth.JWTSecret), authHandler.Me)

	fileGroup := v1.Group("/files")
	fileGroup.Use(middleware.AuthJWT(app.Config.Auth.JWTSecret))
	fileGroup.POST("/upload", fileHandler.Upload)
	fileGroup.GET("", fileHandler.List)

	aiGroup := v1.Group("/ai")
	aiGroup.Use(middleware.AuthJWT(app.Config.Auth.JWTSecret))
	aiGroup.POST("/analyze/:fileId", insightHandler.Analyze)
	aiGroup.GET("/insight/:fileId", insightHandler.GetInsight)

	return router
}
