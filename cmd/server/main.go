package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/storefront/catalog-api/internal/api"
	"github.com/storefront/catalog-api/internal/api/handler"
	"github.com/storefront/catalog-api/internal/core/ports"
	"github.com/storefront/catalog-api/internal/core/service"
	"github.com/storefront/catalog-api/internal/infrastructure/config"
	mongostore "github.com/storefront/catalog-api/internal/infrastructure/db/mongo"
	redisstore "github.com/storefront/catalog-api/internal/infrastructure/db/redis"
	"github.com/storefront/catalog-api/internal/infrastructure/store/memory"
	"github.com/storefront/catalog-api/pkg/logger"
)

const version = "1.0.0"

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.IsProduction(),
	})

	ctx := context.Background()

	// --- Stores ---
	var userRepo ports.UserRepository
	var productRepo ports.ProductRepository

	switch cfg.StoreDriver {
	case config.DriverMongo:
		client, db, err := mongostore.Connect(ctx, mongostore.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to mongodb")
		}
		defer func() {
			_ = client.Disconnect(context.Background())
		}()

		users := mongostore.NewUserRepository(db)
		products := mongostore.NewProductRepository(db)
		if err := users.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("failed to create user indexes")
		}
		if err := products.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("failed to create product indexes")
		}
		userRepo, productRepo = users, products

	case config.DriverMemory:
		users := memory.NewUserRepository()
		users.Seed(memory.DefaultUsers())
		products := memory.NewProductRepository()
		products.Seed(memory.DefaultProducts())
		userRepo, productRepo = users, products

	default:
		log.Fatal().Str("driver", cfg.StoreDriver).Msg("unknown store driver")
	}

	// --- Optional Redis readiness dependency ---
	var checks []handler.ReadinessCheck
	if cfg.Redis.Addr != "" {
		rdb, err := redisstore.Connect(ctx, redisstore.Config{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer func() {
			_ = rdb.Close()
		}()
		checks = append(checks, redisstore.ReadinessCheck(rdb))
	}

	// --- Services and router ---
	userService := service.NewUserService(userRepo, log)
	productService := service.NewProductService(productRepo, log)

	e := api.NewRouter(api.RouterConfig{
		Env:       cfg.Env,
		Version:   version,
		RateLimit: cfg.RateLimit,
		BodyLimit: cfg.BodyLimit,
	}, log, userService, productService, checks...)

	// --- Serve until signalled ---
	go func() {
		log.Info().
			Str("port", cfg.Port).
			Str("env", cfg.Env).
			Str("store", cfg.StoreDriver).
			Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
