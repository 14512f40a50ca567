package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/RMahshie/voltadash/internal/api"
	"github.com/RMahshie/voltadash/internal/config"
	"github.com/RMahshie/voltadash/internal/device"
	"github.com/RMahshie/voltadash/internal/logging"
	"github.com/RMahshie/voltadash/internal/processing"
	"github.com/RMahshie/voltadash/internal/repository/postgres"
	"github.com/RMahshie/voltadash/internal/storage"
	"github.com/RMahshie/voltadash/migrations"
	"github.com/RMahshie/voltadash/pkg/models"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logging.Setup(cfg.Log.Level, cfg.Server.Env)

	ctx := context.Background()

	// Database
	db, err := sql.Open("postgres", cfg.Database.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database")
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	if err := postgres.Migrate(ctx, db, migrations.FS); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	// Peak current sessions
	var peakStore processing.PeakStore
	if cfg.Redis.URL != "" {
		redisStore, err := storage.NewRedisPeakStore(ctx, cfg.Redis.URL)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer redisStore.Close()
		peakStore = redisStore
		log.Info().Msg("Using Redis peak current store")
	} else {
		peakStore = processing.NewMemoryPeakStore()
		log.Info().Msg("Using in-memory peak current store")
	}

	// Measurement device
	var (
		dev       device.Device
		simulator *device.Simulator
	)
	if cfg.Device.URL != "" {
		dev = device.NewHTTPDevice(cfg.Device.URL, cfg.Device.Timeout)
		log.Info().Str("url", cfg.Device.URL).Msg("Using measurement device")
	} else {
		simulator = device.NewSimulator()
		dev = simulator
		log.Warn().Msg("DEVICE_URL not set, using built-in simulator")
	}

	// Graph exports
	var exporter storage.GraphExporter
	if cfg.AWS.S3Bucket != "" {
		exporter, err = storage.NewS3Exporter(ctx, storage.S3Config{
			Bucket:    cfg.AWS.S3Bucket,
			Endpoint:  cfg.AWS.S3Endpoint,
			Region:    cfg.AWS.Region,
			AccessKey: cfg.AWS.AccessKeyID,
			SecretKey: cfg.AWS.SecretAccessKey,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create S3 exporter")
		}
	}

	scanSvc := processing.NewScanService(
		dev,
		processing.NewPeakGenerator(peakStore, nil),
		processing.NewCountdown(time.Second),
		processing.ScanConfig{
			HighConcentrationThreshold: cfg.Scan.HighConcentrationThreshold,
			EISCountdown:               cfg.Scan.EISCountdown,
			Nyquist:                    processing.NyquistOptions{IncludeWarburgTail: cfg.Scan.WarburgTail},
		},
	)

	// Create Chi router
	router := chi.NewRouter()

	// Middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(logging.RequestLogger())
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Create Huma API
	humaConfig := huma.DefaultConfig("Voltadash API", version)
	humaConfig.DocsPath = "/api/docs"
	humaAPI := humachi.New(router, humaConfig)

	// Register health endpoint
	huma.Register(humaAPI, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Description: "Returns the health status of the service",
	}, func(ctx context.Context, input *struct{}) (*models.HealthResponse, error) {
		resp := &models.HealthResponse{}
		resp.Body.Status = "healthy"
		resp.Body.Version = version
		resp.Body.Time = time.Now()
		return resp, nil
	})

	api.RegisterRoutes(router, humaAPI, api.Dependencies{
		Scans:          scanSvc,
		Graphs:         postgres.NewPostgresGraphRepository(db),
		Concentrations: postgres.NewPostgresConcentrationRepository(db),
		Exporter:       exporter,
		Simulator:      simulator,
	})

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("Starting Voltadash API server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
