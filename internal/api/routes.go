package api

import (
	"github.com/clonelens/clonelens/internal/config"
	"github.com/clonelens/clonelens/internal/infra/redis"
	"github.com/clonelens/clonelens/internal/match"
	"github.com/clonelens/clonelens/internal/repository"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	cfg *config.Config,
	profilesRepo *repository.ProfilesRepository,
	reportsRepo *repository.ReportsRepository,
	matchSvc *match.Service,
	redisClient *redis.Client,
) *gin.Engine {
	router := gin.Default()

	// Create handler
	handler := NewHandler(cfg, profilesRepo, reportsRepo, matchSvc, redisClient)

	// Create rate limiter
	rateLimiter := NewRateLimiter(cfg.RateLimitRPS, int(cfg.RateLimitRPS*2))

	// Middleware
	router.Use(ErrorHandlerMiddleware())

	// Health endpoint (no auth)
	router.GET("/health", handler.Health)

	// API routes (with auth and rate limiting)
	api := router.Group("/api/v1")
	api.Use(JWTAuthMiddleware(cfg.JWTSecret))
	api.Use(RateLimitMiddleware(rateLimiter))
	{
		api.POST("/scan", handler.Scan)
		api.POST("/match", handler.Match)
		api.GET("/match/:runID", handler.GetMatchReport)
		api.GET("/collections/:collection/profiles", handler.GetCollectionProfiles)
		api.GET("/collections/:collection/report", handler.GetLatestCollectionReport)
		api.GET("/selectors/:selector", handler.GetSelectorContracts)
	}

	return router
}
