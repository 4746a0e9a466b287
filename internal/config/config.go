package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port               string
	DatabaseURL        string
	MigrationsPath     string
	AccessTokenSecret  string
	RefreshTokenSecret string
	AccessTokenTTL     time.Duration
	RefreshTokenTTL    time.Duration
	ResetCodeTTL       time.Duration
	AllowOrigins       []string
	SMTPHost           string
	SMTPPort           string
	SMTPUsername       string
	SMTPPassword       string
	SMTPFrom           string
	MinIOEndpoint      string
	MinIOAccessKey     string
	MinIOSecretKey     string
	MinIOUseSSL        bool
	MinIOBucketAvatars string
	MinIOPublicURL     string
	AvatarMaxBytes     int64
	OpenRouterAPIKey   string
	OpenRouterModel    string
	FrontendBaseURL    string
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	avatarMax := int64(5 * 1024 * 1024)
	if v, err := strconv.ParseInt(getenv("AVATAR_MAX_BYTES", "5242880"), 10, 64); err == nil && v > 0 {
		avatarMax = v
	}

	return Config{
		Port:               getenv("PORT", "5000"),
		DatabaseURL:        must("DATABASE_URL"),
		MigrationsPath:     getenv("MIGRATIONS_PATH", "file://migrations"),
		AccessTokenSecret:  must("ACCESS_TOKEN_SECRET"),
		RefreshTokenSecret: must("REFRESH_TOKEN_SECRET"),
		AccessTokenTTL:     duration("ACCESS_TOKEN_TTL", 30*time.Minute),
		RefreshTokenTTL:    duration("REFRESH_TOKEN_TTL", 7*24*time.Hour),
		ResetCodeTTL:       duration("RESET_CODE_TTL", 2*time.Minute),
		AllowOrigins:       splitAndTrim(getenv("ALLOW_ORIGINS", "*")),
		SMTPHost:           getenv("SMTP_HOST", ""),
		SMTPPort:           getenv("SMTP_PORT", ""),
		SMTPUsername:       getenv("SMTP_USERNAME", ""),
		SMTPPassword:       getenv("SMTP_PASSWORD", ""),
		SMTPFrom:           getenv("SMTP_FROM", ""),
		MinIOEndpoint:      must("MINIO_ENDPOINT"),
		MinIOAccessKey:     must("MINIO_ACCESS_KEY"),
		MinIOSecretKey:     must("MINIO_SECRET_KEY"),
		MinIOUseSSL:        getenv("MINIO_USE_SSL", "false") == "true",
		MinIOBucketAvatars: getenv("MINIO_BUCKET_AVATARS", "langhub-avatars"),
		MinIOPublicURL:     getenv("MINIO_PUBLIC_URL", ""),
		AvatarMaxBytes:     avatarMax,
		OpenRouterAPIKey:   must("OPENROUTER_API_KEY"),
		OpenRouterModel:    getenv("OPENROUTER_MODEL", "google/gemma-3n-e4b-it:free"),
		FrontendBaseURL:    getenv("FRONTEND_BASE_URL", "http://localhost:5173"),
	}
}

func duration(k string, d time.Duration) time.Duration {
	raw := os.Getenv(k)
	if raw == "" {
		return d
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil || parsed <= 0 {
		log.Printf("Warning: invalid duration for %s: %q, using default %s", k, raw, d)
		return d
	}
	return parsed
}

func splitAndTrim(input string) []string {
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("missing env: %s", k)
	}
	return v
}
