package handler

import (
	"wager-escrow-service/internal/adapter/http/middleware"
	"wager-escrow-service/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Registry       ports.EscrowRegistry
	Engine         ports.SettlementEngine
	Tracker        ports.GameTracker
	SettlementRepo ports.SettlementRepository
	AuthSvc        ports.AuthService
	TokenSvc       ports.TokenService
	RateLimiter    ports.RateLimiter // nil = HTTP rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep: verifies PostgreSQL and Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Helper: per-group rate limiting middleware, noop when disabled.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimiter == nil {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimit(deps.RateLimiter, group, deps.Logger)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Public routes ---
	authHandler := NewAuthHandler(deps.AuthSvc)
	v1.POST("/auth/login", rl("auth_login"), authHandler.Login)

	escrowHandler := NewEscrowHandler(deps.Registry, deps.Engine, deps.Tracker, deps.SettlementRepo)
	games := v1.Group("/games")
	{
		games.POST("/:game_id/wallet", escrowHandler.IssueWallet)
		games.POST("/:game_id/stakes", rl("stakes"), escrowHandler.Stake)
		games.GET("/:game_id", escrowHandler.GetGame)
		games.POST("/:game_id/settle", rl("settle"), escrowHandler.Settle)
		games.POST("/:game_id/refund", rl("settle"), escrowHandler.Refund)
		games.GET("/:game_id/settlement", escrowHandler.GetSettlement)
	}
	v1.GET("/stats", escrowHandler.GetStats)

	// --- JWT-authenticated routes (operator) ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	adminHandler := NewAdminHandler(deps.Registry, deps.SettlementRepo)
	admin := v1.Group("/admin", jwtAuth)
	{
		admin.POST("/games/:game_id/expire", adminHandler.ExpireWallet)
		admin.GET("/games/:game_id/secret", adminHandler.RevealSecret)
		admin.GET("/settlements", adminHandler.ListSettlements)
	}

	return r
}
