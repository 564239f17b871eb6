package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/xevscan/scan-api/internal/handlers"
	"github.com/xevscan/scan-api/internal/jwt"
	"github.com/xevscan/scan-api/internal/logger"
	"github.com/xevscan/scan-api/internal/mailers"
	"github.com/xevscan/scan-api/internal/middlewares"
	"github.com/xevscan/scan-api/internal/repositories"
	"github.com/xevscan/scan-api/internal/services"
	"github.com/xevscan/scan-api/migrations"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
	_ "github.com/xevscan/scan-api/docs"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title EV Scan API
// @version 1.0.0
// @description Backend for ingesting EV diagnostic scans and serving health-evaluated scan data
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel, baseURL,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		kafkaBrokers, kafkaTopic,
		smtpHost, smtpPort, smtpUser, smtpPassword, smtpFrom,
		jwtSecret, jwtExp,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel, baseURL,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		kafkaBrokers, kafkaTopic,
		smtpHost, smtpPort, smtpUser, smtpPassword, smtpFrom,
		jwtSecret, jwtExp,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// all application, database, Redis, Kafka, SMTP, logging, and JWT configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel, baseURL string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	kafkaBrokers, kafkaTopic string,
	smtpHost string, smtpPort int, smtpUser, smtpPassword, smtpFrom string,
	jwtSecretKey string, jwtExpSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")
	baseURL = getEnv("APP_BASE_URL", fmt.Sprintf("http://%s:%s", appHost, appPort))

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "database")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config (rate limiting)
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")

	// Kafka config (scan event publishing, optional)
	kafkaBrokers = getEnv("KAFKA_BROKERS", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "ev-scan-data")

	// SMTP config (verification mail)
	smtpHost = getEnv("SMTP_HOST", "localhost")
	if smtpPort, err = strconv.Atoi(getEnv("SMTP_PORT", "587")); err != nil {
		return
	}
	smtpUser = getEnv("SMTP_USERNAME", "")
	smtpPassword = getEnv("SMTP_PASSWORD", "")
	smtpFrom = getEnv("SMTP_FROM", "noreply@xevscan.local")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "604800")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel, baseURL string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	kafkaBrokers, kafkaTopic string,
	smtpHost string, smtpPort int, smtpUser, smtpPassword, smtpFrom string,
	jwtSecretKey string, jwtExpSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Errorw("PostgreSQL connection error", "error", err)
		return err
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Errorw("PostgreSQL ping failed", "error", err)
		return err
	}

	// Apply migrations
	if err := migrations.Up(ctx, db); err != nil {
		logger.Log.Errorw("failed to apply migrations", "error", err)
		return err
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password: redisPassword,
		DB:       redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		// Rate limiting degrades to pass-through when Redis is down.
		logger.Log.Warnw("Redis unavailable, rate limiting degraded", "error", err)
	}
	defer rdb.Close()

	// Initialize JWT service
	jwtSvc := jwt.New(jwtSecretKey, time.Duration(jwtExpSecond)*time.Second)

	// Initialize mailer
	mailer := mailers.New(smtpHost, smtpPort, smtpUser, smtpPassword, smtpFrom, baseURL)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	deviceReadRepo := repositories.NewDeviceReadRepository(db)
	deviceWriteRepo := repositories.NewDeviceWriteRepository(db)
	scanReadRepo := repositories.NewScanReadRepository(db)
	scanWriteRepo := repositories.NewScanWriteRepository(db, middlewares.GetTxFromContext)
	rateLimitRepo := repositories.NewRateLimitRepository(rdb)

	// Initialize Kafka writer
	var kafkaWriter services.KafkaWriter
	if kafkaBrokers != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(strings.Split(kafkaBrokers, ",")...),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infof("Kafka writer configured for topic %s", kafkaTopic)
	} else {
		logger.Log.Info("Kafka brokers not configured, scan events will not be published")
	}

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, deviceReadRepo, jwtSvc, mailer)
	deviceService := services.NewDeviceService(deviceReadRepo, deviceWriteRepo)
	ingestService := services.NewIngestService(scanWriteRepo, kafkaWriter)
	queryService := services.NewScanQueryService(scanReadRepo, deviceReadRepo)

	// Initialize handlers
	rootHandler := handlers.NewRootHandler()
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	verifyHandler := handlers.NewVerifyHandler(authService)
	profileHandler := handlers.NewProfileHandler(authService, jwtSvc)
	deviceListHandler := handlers.NewDeviceListHandler(deviceService, jwtSvc)
	deviceLinkHandler := handlers.NewDeviceLinkHandler(deviceService, jwtSvc)
	deviceUnlinkHandler := handlers.NewDeviceUnlinkHandler(deviceService, jwtSvc)
	scanIngestHandler := handlers.NewScanIngestHandler(ingestService)
	scanIngestBatchHandler := handlers.NewScanIngestBatchHandler(ingestService)
	scanListHandler := handlers.NewScanListHandler(queryService, jwtSvc)
	scanGetHandler := handlers.NewScanGetHandler(queryService, jwtSvc)
	deviceStatusHandler := handlers.NewDeviceStatusHandler(queryService, jwtSvc)
	deviceLatestHandler := handlers.NewDeviceLatestHandler(queryService, jwtSvc)
	analyticsHandler := handlers.NewAnalyticsSummaryHandler(queryService, jwtSvc)
	dataSpecHandler := handlers.NewDataSpecHandler()
	validationRulesHandler := handlers.NewValidationRulesHandler()

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	// Public routes
	r.Get("/", rootHandler)
	r.Post("/api/auth/register", registerHandler)
	r.Post("/api/auth/login", loginHandler)
	r.Get("/api/auth/verify/{token}", verifyHandler)
	r.Get("/api/data-spec", dataSpecHandler)
	r.Get("/api/data-spec/validation-rules", validationRulesHandler)

	// External ingestion routes: transactional, rate limited per client IP
	r.Group(func(r chi.Router) {
		r.Use(middlewares.TxMiddleware(db))
		r.With(middlewares.RateLimitMiddleware(rateLimitRepo, 100, time.Minute)).
			Post("/api/external/scan-data", scanIngestHandler)
		r.With(middlewares.RateLimitMiddleware(rateLimitRepo, 10, time.Minute)).
			Post("/api/external/scan-data/batch", scanIngestBatchHandler)
	})

	// Protected routes with JWT middleware
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(jwtSvc))
		r.Get("/api/user/profile", profileHandler)
		r.Get("/api/user/devices", deviceListHandler)
		r.Post("/api/user/devices", deviceLinkHandler)
		r.Delete("/api/user/devices/{device_id}", deviceUnlinkHandler)
		r.Get("/api/tablet/scan-data", scanListHandler)
		r.Get("/api/tablet/scan-data/{scan_id}", scanGetHandler)
		r.Get("/api/tablet/device-status", deviceStatusHandler)
		r.Get("/api/tablet/device/{device_id}/latest", deviceLatestHandler)
		r.Get("/api/tablet/analytics/summary", analyticsHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
