package server

import (
	"html/template"
	"slices"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "FitCoach_AIProject/docs"
	"FitCoach_AIProject/internal/config"
	"FitCoach_AIProject/internal/handler"
	"FitCoach_AIProject/internal/middleware"
)

// NewRouter wires middleware and routes onto a gin engine.
func NewRouter(h *handler.Handler, cfg config.ServerConfig, pages *template.Template) *gin.Engine {
	router := gin.New()
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		log.Error().Err(err).Strs("trusted_proxies", cfg.TrustedProxies).Msg("invalid trusted proxies, trusting none")
		_ = router.SetTrustedProxies(nil)
	}
	router.Use(middleware.RequestLogger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if len(cfg.CORSAllowOrigins) == 0 || slices.Contains(cfg.CORSAllowOrigins, "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSAllowOrigins
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, middleware.RequestIDHeader)
	corsConfig.ExposeHeaders = append(corsConfig.ExposeHeaders, middleware.RequestIDHeader)
	router.Use(cors.New(corsConfig))

	if pages != nil {
		router.SetHTMLTemplate(pages)
		router.GET("/", h.Index)
	}
	router.GET("/health", h.Health)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	api.GET("/usage", h.UsageSummary)

	generate := api.Group("", middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
	{
		generate.POST("/generate-plan", h.GeneratePlan)
		generate.POST("/generate-image", h.GenerateImage)
		generate.POST("/tts", h.TextToSpeech)
	}

	return router
}
