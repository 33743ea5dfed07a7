package main

import (
	"health_check_project/internal/auth"
	"health_check_project/internal/config"
	"health_check_project/internal/extractor"
	"health_check_project/internal/handler"
	"health_check_project/internal/llm"
	"health_check_project/internal/middleware"
	"health_check_project/internal/service"
	"health_check_project/internal/session"
	"health_check_project/internal/storage"

	_ "health_check_project/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title        Health Check Analysis API
// @version      1.0
// @description  Health-records service: registration, document upload and LLM-driven analysis.
// @BasePath     /
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	cfg := config.Load()

	store, err := storage.Open(cfg.DatabasePath)
	if err != nil {
		logrus.WithError(err).Fatal("failed to open database")
	}
	defer store.Close()

	tokens := auth.NewTokenManager(cfg.JWTSecret)
	sessions := session.NewStore(cfg.SessionTTL)
	generator := llm.NewClient(cfg.OllamaBaseURL, cfg.OllamaModel, cfg.Temperature, cfg.LLMTimeout)

	accounts := service.NewAccountService(store, tokens, cfg.ResetTempPassword)
	records := service.NewRecordService(store, extractor.Extract)
	analysis := service.NewAnalysisService(records, generator, sessions)

	h := handler.New(accounts, records, analysis)

	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	if cfg.AllowAllOrigins() {
		// Wildcard origin: credentials must stay off.
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	} else {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
		corsConfig.AllowCredentials = true
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", "X-Session-Token")
	router.Use(cors.New(corsConfig))

	router.POST("/register", h.Register)
	router.POST("/login", middleware.RateLimitByIP(), h.Login)
	router.POST("/forgot-password", middleware.RateLimitByIP(), h.ForgotPassword)

	router.POST("/health-check/upload/:identifier", h.UploadHealthCheck)
	router.GET("/health-check/user/:identifier", h.GetUserHealthCheck)
	router.GET("/health-check/other/:identifier", h.GetOtherHealthCheck)
	router.POST("/health-check/other/interact", h.Interact)

	router.GET("/ws/interact", h.HandleInteractiveWS)

	protected := router.Group("/api").Use(middleware.AuthMiddleware(tokens))
	{
		protected.GET("/profile", h.Profile)
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	logrus.WithField("addr", cfg.ListenAddr).Info("starting health check API")
	if err := router.Run(cfg.ListenAddr); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
