package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// JWT
	JWTSecret string
	JWTExpiry time.Duration

	// AI providers
	DeepSeekAPIKey      string
	DeepSeekAPIURL      string
	DeepSeekModel       string
	DeepSeekVisionModel string
	DeepSeekTimeout     time.Duration

	HFAPIKey  string
	HFAPIURL  string
	HFTimeout time.Duration

	AIMockMode bool

	// Object storage (complaint images)
	MinIOEndpoint       string
	MinIOPublicEndpoint string
	MinIOAccessKey      string
	MinIOSecretKey      string
	MinIOBucket         string
	MinIOUseSSL         bool
	MinIOPublicUseSSL   bool

	// Admin
	AdminToken string

	// Server
	Port        string
	CORSOrigins string
}

func Load() *Config {
	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "agrocare_db"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		JWTSecret: getEnv("JWT_SECRET", ""),
		JWTExpiry: parseDuration(getEnv("JWT_EXPIRY", "60m"), 60*time.Minute),

		DeepSeekAPIKey:      getEnv("DEEPSEEK_API_KEY", ""),
		DeepSeekAPIURL:      getEnv("DEEPSEEK_API_URL", "https://api.deepseek.com/v1/chat/completions"),
		DeepSeekModel:       getEnv("DEEPSEEK_MODEL", "deepseek-chat"),
		DeepSeekVisionModel: getEnv("DEEPSEEK_VISION_MODEL", "deepseek-vl2"),
		DeepSeekTimeout:     parseDuration(getEnv("DEEPSEEK_TIMEOUT", "60s"), 60*time.Second),

		HFAPIKey:  getEnv("HF_API_KEY", ""),
		HFAPIURL:  getEnv("HF_API_URL", "https://api-inference.huggingface.co/models/google/flan-t5-large"),
		HFTimeout: parseDuration(getEnv("HF_TIMEOUT", "15s"), 15*time.Second),

		AIMockMode: parseBool(getEnv("AI_MOCK_MODE", "false")),

		MinIOEndpoint:       getEnv("MINIO_ENDPOINT", "localhost:9000"),
		MinIOPublicEndpoint: getEnv("MINIO_PUBLIC_ENDPOINT", getEnv("MINIO_ENDPOINT", "localhost:9000")),
		MinIOAccessKey:      getEnv("MINIO_ACCESS_KEY", "minioadmin"),
		MinIOSecretKey:      getEnv("MINIO_SECRET_KEY", "minioadmin"),
		MinIOBucket:         getEnv("MINIO_BUCKET", "agrocare-uploads"),
		MinIOUseSSL:         parseBool(getEnv("MINIO_USE_SSL", "false")),
		MinIOPublicUseSSL:   parseBool(getEnv("MINIO_PUBLIC_USE_SSL", "false")),

		AdminToken: getEnv("ADMIN_TOKEN", ""),

		Port:        getEnv("PORT", "8080"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
	}
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}

func parseBool(s string) bool {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false
	}
	return b
}
