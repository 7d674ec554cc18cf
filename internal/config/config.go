package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type RedisConfig struct {
	// Empty address disables the indicator cache entirely.
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type IngestConfig struct {
	// File types listed here tolerate unresolved student references as
	// skipped rows; everything else is strict.
	LenientFileTypes []string `mapstructure:"lenient_file_types"`
	// A file whose row-error count exceeds this is marked error outright.
	MaxRowErrors int `mapstructure:"max_row_errors"`
}

type ScoringConfig struct {
	// Default competency target on the 0-10 scale; doubled to 70 when the
	// import arrives 0-100 normalized.
	DefaultTargetScore float64       `mapstructure:"default_target_score"`
	CacheTTL           time.Duration `mapstructure:"cache_ttl"`
}

type AppConfig struct {
	// Upper bound for parallel program ingestions.
	IngestWorkers int `mapstructure:"ingest_workers"`
}

type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	Redis    RedisConfig    `mapstructure:"redis"`
	CORS     CORSConfig     `mapstructure:"cors"`
	Ingest   IngestConfig   `mapstructure:"ingest"`
	Scoring  ScoringConfig  `mapstructure:"scoring"`
	App      AppConfig      `mapstructure:"app"`
}

var Cfg Config

// LenientFileType reports whether rows with unresolved references should be
// skipped with a warning instead of failing the file.
func (c *Config) LenientFileType(t string) bool {
	for _, lt := range c.Ingest.LenientFileTypes {
		if lt == t {
			return true
		}
	}
	return false
}

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("APP")
	viper.AutomaticEnv()
	viper.BindEnv("database.url", "DATABASE_URL")
	viper.BindEnv("redis.addr", "REDIS_ADDR")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using defaults and environment variables.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	if err := viper.Unmarshal(&Cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	if Cfg.Server.Port == "" {
		Cfg.Server.Port = DefaultServerPort
	}
	if Cfg.Log.Level == "" {
		Cfg.Log.Level = DefaultLogLevel
	}
	if Cfg.Ingest.MaxRowErrors <= 0 {
		Cfg.Ingest.MaxRowErrors = DefaultMaxRowErrors
	}
	if len(Cfg.Ingest.LenientFileTypes) == 0 {
		// Sessions and events tolerate unresolved students; roster and
		// performance files do not.
		Cfg.Ingest.LenientFileTypes = []string{"mentoria", "eventos"}
	}
	if Cfg.Scoring.DefaultTargetScore <= 0 {
		Cfg.Scoring.DefaultTargetScore = DefaultTargetScore
	}
	if Cfg.Scoring.CacheTTL <= 0 {
		Cfg.Scoring.CacheTTL = DefaultIndicatorCacheTTL
	}
	if Cfg.App.IngestWorkers <= 0 {
		Cfg.App.IngestWorkers = DefaultIngestWorkers
	}

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Ingest Workers: %d", Cfg.App.IngestWorkers)
	log.Printf("Indicator Cache: enabled=%t ttl=%s", Cfg.Redis.Addr != "", Cfg.Scoring.CacheTTL)

	return nil
}
