package repository

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"mentoria_engine/internal/model"

	slogGorm "github.com/orandin/slog-gorm"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewDB opens the postgres connection with GORM logging routed through slog.
func NewDB(databaseURL string, appLogger *slog.Logger) (*gorm.DB, error) {
	var gormLogLevel gormlogger.LogLevel
	if strings.ToLower(os.Getenv("APP_ENV")) == "dev" {
		gormLogLevel = gormlogger.Info
	} else {
		gormLogLevel = gormlogger.Warn
	}

	slogGormLogger := slogGorm.New(
		slogGorm.WithHandler(appLogger.Handler()),
		slogGorm.WithTraceAll(),
		slogGorm.WithSlowThreshold(500*time.Millisecond),
	)
	finalGormLogger := slogGormLogger.LogMode(gormLogLevel)

	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: finalGormLogger,
	})
	if err != nil {
		appLogger.Error("Failed to connect to database with GORM", slog.Any("error", err))
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		appLogger.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		return nil, err
	}

	if err = sqlDB.Ping(); err != nil {
		appLogger.Error("Error pinging database", slog.Any("error", err))
		sqlDB.Close()
		return nil, err
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	appLogger.Info("Database connection established with GORM")

	return db, nil
}

// AutoMigrate creates or updates every table the engine owns. Tests reuse it
// against in-memory sqlite.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Program{},
		&model.Cohort{},
		&model.Student{},
		&model.Mentor{},
		&model.Track{},
		&model.Competency{},
		&model.AssessmentCycle{},
		&model.PlanItem{},
		&model.MentoringSession{},
		&model.Event{},
		&model.EventParticipation{},
		&model.UploadBatch{},
		&model.UploadedFile{},
		&model.ResolutionLog{},
		&model.MergeLog{},
	)
}
