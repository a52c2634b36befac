package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"

	"wager-escrow-service/config"
	httpHandler "wager-escrow-service/internal/adapter/http/handler"
	"wager-escrow-service/internal/adapter/ledger"
	pgStorage "wager-escrow-service/internal/adapter/storage/postgres"
	redisStorage "wager-escrow-service/internal/adapter/storage/redis"
	"wager-escrow-service/internal/core/ports"
	"wager-escrow-service/internal/service"
	"wager-escrow-service/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Wager Escrow Service")

	feeRate, err := decimal.NewFromString(cfg.Escrow.FeeRate)
	if err != nil {
		log.Fatal().Err(err).Str("fee_rate", cfg.Escrow.FeeRate).Msg("Invalid fee rate")
	}
	if cfg.Escrow.HouseAddress == "" {
		log.Fatal().Msg("escrow.house_address must be configured")
	}

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	walletRepo := pgStorage.NewWalletRepo(pool)
	settlementRepo := pgStorage.NewSettlementRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis stores
	settlementCache := redisStorage.NewSettlementCache(rdb)

	// Initialize ledger RPC client
	ledgerClient := ledger.NewRPCClient(ledger.Config{
		Endpoints:           cfg.Ledger.Endpoints,
		RequestTimeout:      cfg.Ledger.RequestTimeout,
		ConfirmationTimeout: cfg.Ledger.ConfirmationTimeout,
		PollInterval:        cfg.Ledger.PollInterval,
	}, log)

	// Initialize core services
	cipher := service.NewAESCipher()
	keyring, err := service.NewHKDFKeyring(cfg.Escrow.MasterKey)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize keyring")
	}
	keypairSvc := service.NewEd25519KeypairService()
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	limiter := service.NewSlidingWindowLimiter(cfg.RateLimit.Window, cfg.RateLimit.MaxRequests)
	tracker := service.NewGameStateTracker()

	// Initialize business services
	authSvc := service.NewAuthService(cfg.Admin.Username, cfg.Admin.PasswordHash, hashSvc, tokenSvc)
	registry := service.NewEscrowRegistry(
		walletRepo,
		keypairSvc,
		cipher,
		keyring,
		limiter,
		cfg.Escrow.WalletTimeout,
		log,
	)
	engine := service.NewSettlementEngine(
		walletRepo,
		settlementRepo,
		transactor,
		tracker,
		cipher,
		keyring,
		keypairSvc,
		ledgerClient,
		settlementCache,
		service.SettlementConfig{
			HouseAddress:          cfg.Escrow.HouseAddress,
			FeeRate:               feeRate,
			RequiredConfirmations: cfg.Ledger.RequiredConfirmations,
			MinStake:              cfg.Escrow.MinStake,
		},
		log,
	)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Registry:       registry,
		Engine:         engine,
		Tracker:        tracker,
		SettlementRepo: settlementRepo,
		AuthSvc:        authSvc,
		TokenSvc:       tokenSvc,
		RateLimiter:    limiter,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	// Background house-balance refresh
	refreshCtx, stopRefresh := context.WithCancel(ctx)
	defer stopRefresh()
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		engine.RefreshBalance(refreshCtx)
		for {
			select {
			case <-refreshCtx.Done():
				return
			case <-ticker.C:
				engine.RefreshBalance(refreshCtx)
			}
		}
	}()

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")
	stopRefresh()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
