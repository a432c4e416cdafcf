package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	MongoURI           string
	Port               string
	DBName             string
	ProfilesCollection string
	AuditCollection    string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration

	// Audit read path
	AuditDefaultLimit int
	AuditMaxLimit     int

	// Rate limiting sits in front of the core; 0 disables it.
	RateLimitRPS   float64
	RateLimitBurst int

	CORSAllowOrigins []string
	LogLevel         string

	// CIDRs of proxies whose X-Forwarded-For is believed. Empty means the
	// socket peer address is recorded as the client IP.
	TrustedProxies []string
}

func LoadConfig() (*Config, error) {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	cfg := &Config{
		MongoURI:           mongoURI,
		Port:               port,
		DBName:             getEnv("DB_NAME", "adminguard"),
		ProfilesCollection: getEnv("COLLECTION_PROFILES", "profiles"),
		AuditCollection:    getEnv("COLLECTION_AUDIT", "admin_audit_logs"),
		ReadTimeout:        getEnvDuration("SERVER_READ_TIMEOUT", 10*time.Second),
		WriteTimeout:       getEnvDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
		AuditDefaultLimit:  getEnvInt("AUDIT_DEFAULT_LIMIT", 50),
		AuditMaxLimit:      getEnvInt("AUDIT_MAX_LIMIT", 500),
		RateLimitRPS:       getEnvFloat("RATE_LIMIT_RPS", 0),
		RateLimitBurst:     getEnvInt("RATE_LIMIT_BURST", 0),
		CORSAllowOrigins:   getEnvList("CORS_ALLOW_ORIGINS", []string{"*"}),
		LogLevel:           strings.ToLower(getEnv("LOG_LEVEL", "info")),
		TrustedProxies:     getEnvList("TRUSTED_PROXIES", nil),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.MongoURI == "" {
		return fmt.Errorf("MONGO_URI is required")
	}
	if c.DBName == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	if c.ProfilesCollection == "" || c.AuditCollection == "" {
		return fmt.Errorf("collection names must not be empty")
	}
	if c.AuditDefaultLimit <= 0 {
		return fmt.Errorf("AUDIT_DEFAULT_LIMIT must be positive, got %d", c.AuditDefaultLimit)
	}
	if c.AuditMaxLimit < c.AuditDefaultLimit {
		return fmt.Errorf("AUDIT_MAX_LIMIT (%d) must be >= AUDIT_DEFAULT_LIMIT (%d)", c.AuditMaxLimit, c.AuditDefaultLimit)
	}
	if c.RateLimitRPS < 0 || c.RateLimitBurst < 0 {
		return fmt.Errorf("rate limit values must not be negative")
	}
	for _, cidr := range c.TrustedProxies {
		if _, _, err := net.ParseCIDR(cidr); err != nil {
			return fmt.Errorf("TRUSTED_PROXIES: %w", err)
		}
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return fallback
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		return fallback
	}
	return val
}

func getEnvFloat(key string, fallback float64) float64 {
	valStr := os.Getenv(key)
	if valStr == "" {
		return fallback
	}
	val, err := strconv.ParseFloat(valStr, 64)
	if err != nil {
		return fallback
	}
	return val
}

func getEnvList(key string, fallback []string) []string {
	valStr := os.Getenv(key)
	if valStr == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(valStr, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	valStr := os.Getenv(key)
	if valStr == "" {
		return fallback
	}
	// bare integers are seconds
	if secs, err := strconv.Atoi(valStr); err == nil {
		return time.Duration(secs) * time.Second
	}
	if d, err := time.ParseDuration(valStr); err == nil {
		return d
	}
	return fallback
}
