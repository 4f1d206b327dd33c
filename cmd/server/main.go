package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/tair/starwars-api/docs"
	cataloghttp "github.com/tair/starwars-api/internal/catalog/delivery/http"
	catalogrepository "github.com/tair/starwars-api/internal/catalog/repository"
	favoritehttp "github.com/tair/starwars-api/internal/favorite/delivery/http"
	favoriterepository "github.com/tair/starwars-api/internal/favorite/repository"
	"github.com/tair/starwars-api/internal/middleware"
	userhttp "github.com/tair/starwars-api/internal/user/delivery/http"
	userrepository "github.com/tair/starwars-api/internal/user/repository"
	"github.com/tair/starwars-api/kafka"
	"github.com/tair/starwars-api/pkg/database"
	"github.com/tair/starwars-api/pkg/logger"
	"github.com/tair/starwars-api/pkg/tracing"
)

func main() {
	serviceName := getEnv("OTEL_SERVICE_NAME", "starwars-api")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)
	logger.SetLevel(getEnv("LOG_LEVEL", "info"))

	// Tracing
	jaegerEndpoint := getEnv("JAEGER_ENDPOINT", "http://localhost:14268/api/traces")
	tp, err := tracing.InitTracer(serviceName, jaegerEndpoint)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to initialize tracer")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
			}
		}()
	}

	// Database
	dbConfig := database.Config{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "starwarsdb"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	db, err := database.NewGormConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	// Raw connection for the health endpoint
	healthDB, err := database.NewPostgresConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to open health check connection")
	}
	defer healthDB.Close()

	// Repositories and migrations
	userRepo := userrepository.NewGormUserRepository(db)
	catalogRepo := catalogrepository.NewGormCatalogRepository(db)
	favoriteRepo := favoriterepository.NewGormFavoriteRepository(db)

	if err := userRepo.AutoMigrate(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to migrate users")
	}
	if err := catalogRepo.AutoMigrate(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to migrate catalog")
	}
	if err := favoriteRepo.AutoMigrate(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to migrate favorites")
	}

	// Redis cache for catalog reads; the service degrades to uncached
	// reads when Redis is unreachable
	redisAddr := getEnv("REDIS_ADDR", "localhost:6379")
	redisClient := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		logger.Logger.Warn().
			Err(err).
			Str("redis_addr", redisAddr).
			Msg("Failed to connect to Redis - catalog caching disabled")
		redisClient = nil
	} else {
		logger.Logger.Info().
			Str("redis_addr", redisAddr).
			Msg("Connected to Redis for catalog caching")
	}
	catalog := catalogrepository.NewCachedCatalogRepository(catalogRepo, redisClient)

	// Kafka events are optional; a nil publisher drops them
	var publisher *kafka.Publisher
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		publisher, err = kafka.NewPublisher(strings.Split(brokers, ","))
		if err != nil {
			logger.Logger.Warn().Err(err).Msg("Failed to connect to Kafka - events disabled")
			publisher = nil
		} else {
			defer publisher.Close()
		}
	}

	// Handlers
	userHandler := userhttp.NewUserHandler(userRepo)
	catalogHandler := cataloghttp.NewCatalogHandler(catalog, userRepo, publisher)
	favoriteHandler := favoritehttp.NewFavoriteHandler(userRepo, catalog, favoriteRepo, publisher)

	// Router
	router := mux.NewRouter()
	favoriteHandler.RegisterRoutes(router)
	userHandler.RegisterRoutes(router)
	catalogHandler.RegisterRoutes(router)
	userHandler.RegisterHealthCheck(router, healthDB)

	router.Handle("/metrics", promhttp.Handler())
	router.PathPrefix("/swagger/").Handler(httpSwagger.Handler())

	// Middleware chain
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
	handler := c.Handler(middleware.RequestLogging(otelhttp.NewHandler(router, "http.server")))

	httpPort := getEnv("HTTP_PORT", "8080")
	server := &http.Server{
		Addr:    ":" + httpPort,
		Handler: handler,
	}

	go func() {
		logger.Logger.Info().
			Str("port", httpPort).
			Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("Server forced to shutdown")
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
