package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"

	"mentoria_engine/internal/config"
	"mentoria_engine/internal/handlers"
	"mentoria_engine/internal/middleware"
	"mentoria_engine/internal/repository"
	"mentoria_engine/internal/service"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)

	if err := config.LoadConfig("./configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logLevel := new(slog.LevelVar)
	switch strings.ToLower(config.Cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", config.Cfg.Log.Level))
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	slog.Info("Application starting...")

	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	// Redis is optional: without an address the indicator cache degrades to a
	// no-op and every read recomputes.
	var redisClient *redis.Client
	if config.Cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     config.Cfg.Redis.Addr,
			Password: config.Cfg.Redis.Password,
			DB:       config.Cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			slog.Warn("Redis unreachable, indicator cache disabled", slog.Any("error", err))
			redisClient = nil
		}
		defer func() {
			if redisClient != nil {
				redisClient.Close()
			}
		}()
	}

	// Dependency injection
	studentRepo := repository.NewGormStudentRepository()
	mentorRepo := repository.NewGormMentorRepository()
	sessionRepo := repository.NewGormSessionRepository()
	eventRepo := repository.NewGormEventRepository()
	planRepo := repository.NewGormPlanRepository()
	batchRepo := repository.NewGormBatchRepository()
	programRepo := repository.NewGormProgramRepository()
	auditRepo := repository.NewGormAuditRepository()
	indicatorCache := repository.NewRedisIndicatorCache(redisClient)

	resolverService := service.NewResolverService(db, studentRepo, mentorRepo, programRepo, auditRepo)
	ledgerService := service.NewLedgerService(db, sessionRepo, eventRepo)
	progressService := service.NewProgressService(db, planRepo)
	indicatorService := service.NewIndicatorService(db, studentRepo, sessionRepo, eventRepo, planRepo, indicatorCache)
	mergeService := service.NewMergeService(db, mentorRepo, sessionRepo, auditRepo)
	batchService := service.NewBatchService(db, batchRepo, resolverService, ledgerService, progressService, indicatorService)
	catalogService := service.NewCatalogService(db, programRepo)

	batchHandler := handlers.NewBatchHandler(batchService, logger)
	indicatorHandler := handlers.NewIndicatorHandler(indicatorService, logger)
	mergeHandler := handlers.NewMergeHandler(mergeService, logger)
	eventHandler := handlers.NewEventHandler(ledgerService, logger)
	planHandler := handlers.NewPlanHandler(progressService, logger)
	catalogHandler := handlers.NewCatalogHandler(catalogService, logger)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewStructuredLogger(logger))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
		AllowedMethods:   config.Cfg.CORS.AllowedMethods,
		AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
		ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
		AllowCredentials: config.Cfg.CORS.AllowCredentials,
		MaxAge:           config.Cfg.CORS.MaxAge,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(120 * time.Second))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/programs", func(r chi.Router) {
			r.Post("/", catalogHandler.CreateProgram)
			r.Get("/", catalogHandler.ListPrograms)
			r.Post("/{program_id}/cohorts", catalogHandler.CreateCohort)
			r.Post("/{program_id}/batches", batchHandler.CreateBatch)
			r.Post("/{program_id}/indicators/precompute", indicatorHandler.PrecomputeProgram)
			r.Post("/{program_id}/mentors/merge", mergeHandler.MergeMentors)
			r.Get("/{program_id}/mentors/duplicates", mergeHandler.GetDuplicateCandidates)
		})

		r.Post("/competencies", catalogHandler.CreateCompetency)

		r.Route("/batches", func(r chi.Router) {
			r.Post("/{batch_id}/files", batchHandler.UploadFile)
			r.Get("/{batch_id}", batchHandler.GetBatchReport)
		})
		r.Post("/files/{file_id}/reprocess", batchHandler.ReprocessFile)

		r.Route("/students", func(r chi.Router) {
			r.Get("/{student_id}/indicators", indicatorHandler.GetStudentIndicators)
			r.Get("/{student_id}/plan", planHandler.ListPlan)
		})

		r.Put("/plan/progress", planHandler.UpsertProgress)
		r.Post("/cycles/{cycle_id}/finalize", planHandler.FinalizeCycle)

		r.Post("/events/self-report", eventHandler.SelfReport)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if err := sqlDB.PingContext(ctx); err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}
