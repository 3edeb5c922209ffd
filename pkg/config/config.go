package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App         AppConfig
	Server      ServerConfig
	Database    DatabaseConfig
	JWT         JWTConfig
	Redis       RedisConfig
	Recommender RecommenderConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type JWTConfig struct {
	SecretKey string
}

type RedisConfig struct {
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
}

// RecommenderConfig carries the serving-level tunables. Scoring constants
// keep their in-code defaults unless overridden here.
type RecommenderConfig struct {
	DefaultN           int
	RelevanceThreshold float64
	CTRLoggingEnabled  bool
	CacheTTLSeconds    int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, errors.New("invalid redis database")
	}

	defaultN, err := strconv.Atoi(getEnv("RECO_DEFAULT_N", "10"))
	if err != nil {
		return nil, errors.New("invalid RECO_DEFAULT_N")
	}

	relevance, err := strconv.ParseFloat(getEnv("RECO_RELEVANCE_THRESHOLD", "0.01"), 64)
	if err != nil {
		return nil, errors.New("invalid RECO_RELEVANCE_THRESHOLD")
	}

	cacheTTL, err := strconv.Atoi(getEnv("RECO_CACHE_TTL_SECONDS", "60"))
	if err != nil {
		return nil, errors.New("invalid RECO_CACHE_TTL_SECONDS")
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Teddy Recommendation API"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "teddy_recommendations"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		JWT: JWTConfig{
			SecretKey: getEnv("JWT_SECRET", ""),
		},
		Redis: RedisConfig{
			RedisHost:     getEnv("REDIS_HOST", "localhost"),
			RedisPort:     getEnv("REDIS_PORT", "6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       redisDB,
		},
		Recommender: RecommenderConfig{
			DefaultN:           defaultN,
			RelevanceThreshold: relevance,
			CTRLoggingEnabled:  getEnv("RECO_CTR_LOGGING", "true") == "true",
			CacheTTLSeconds:    cacheTTL,
		},
	}

	if cfg.JWT.SecretKey == "" {
		return nil, errors.New("missing jwt secret")
	}

	if cfg.Database.Password == "" {
		return nil, errors.New("missing database password")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}
