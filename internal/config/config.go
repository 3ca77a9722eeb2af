package config

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Security  SecurityConfig
	Analytics AnalyticsConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	ShutdownTimeout  time.Duration
	CORSAllowOrigins []string
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	MigrationsPath  string
	SeedsPath       string
	AutoMigrate     bool
	SeedDatabase    bool
}

// JWTConfig holds the token keys. PrivateKey is nil when the service only
// verifies tokens issued elsewhere.
type JWTConfig struct {
	AccessTokenDuration time.Duration
	PrivateKey          *rsa.PrivateKey
	PublicKey           *rsa.PublicKey
	Issuer              string
	Generated           bool
}

type SecurityConfig struct {
	RateLimitPerSecond int
	RateLimitBurst     int
}

// AnalyticsConfig tunes the reporting engine.
type AnalyticsConfig struct {
	RecentTransactionWindow  int
	RecentTransactionDisplay int
	AlertLimit               int
	InsightTransactionWindow int
	BudgetWarningRatio       decimal.Decimal
	ScheduleSlackPercent     float64
	FetchTimeout             time.Duration
	BreakerMaxFailures       int
	BreakerResetTimeout      time.Duration
}

// DefaultAnalyticsConfig returns the reporting defaults used when no
// overrides are present in the environment.
func DefaultAnalyticsConfig() AnalyticsConfig {
	return AnalyticsConfig{
		RecentTransactionWindow:  50,
		RecentTransactionDisplay: 10,
		AlertLimit:               10,
		InsightTransactionWindow: 100,
		BudgetWarningRatio:       decimal.NewFromFloat(0.9),
		ScheduleSlackPercent:     20,
		FetchTimeout:             10 * time.Second,
		BreakerMaxFailures:       5,
		BreakerResetTimeout:      30 * time.Second,
	}
}

func Load() (*Config, error) {
	defaults := DefaultAnalyticsConfig()

	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Host:            getEnv("SERVER_HOST", "localhost"),
			Environment:     getEnv("APP_ENV", "development"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "erp_user"),
			Password:        getEnv("DB_PASSWORD", "erp_password"),
			Name:            getEnv("DB_NAME", "erp_dashboard"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
			MigrationsPath:  getEnv("MIGRATIONS_PATH", "db/migrations"),
			SeedsPath:       getEnv("SEEDS_PATH", "db/seeds"),
			AutoMigrate:     getBoolEnv("AUTO_MIGRATE", false),
			SeedDatabase:    getBoolEnv("SEED_DATABASE", false),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 20),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 40),
		},
		JWT: JWTConfig{
			AccessTokenDuration: getDurationEnv("JWT_ACCESS_TOKEN_DURATION", 24*time.Hour),
			Issuer:              getEnv("JWT_ISSUER", "erp-dashboard"),
		},
		Analytics: AnalyticsConfig{
			RecentTransactionWindow:  getIntEnv("ANALYTICS_RECENT_TRANSACTION_WINDOW", defaults.RecentTransactionWindow),
			RecentTransactionDisplay: getIntEnv("ANALYTICS_RECENT_TRANSACTION_DISPLAY", defaults.RecentTransactionDisplay),
			AlertLimit:               getIntEnv("ANALYTICS_ALERT_LIMIT", defaults.AlertLimit),
			InsightTransactionWindow: getIntEnv("ANALYTICS_INSIGHT_TRANSACTION_WINDOW", defaults.InsightTransactionWindow),
			BudgetWarningRatio:       getDecimalEnv("ANALYTICS_BUDGET_WARNING_RATIO", defaults.BudgetWarningRatio),
			ScheduleSlackPercent:     getFloatEnv("ANALYTICS_SCHEDULE_SLACK_PERCENT", defaults.ScheduleSlackPercent),
			FetchTimeout:             getDurationEnv("ANALYTICS_FETCH_TIMEOUT", defaults.FetchTimeout),
			BreakerMaxFailures:       getIntEnv("ANALYTICS_BREAKER_MAX_FAILURES", defaults.BreakerMaxFailures),
			BreakerResetTimeout:      getDurationEnv("ANALYTICS_BREAKER_RESET_TIMEOUT", defaults.BreakerResetTimeout),
		},
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	if err := config.loadJWTKeys(); err != nil {
		return nil, fmt.Errorf("failed to load RSA keys: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Server.Port); err != nil || port < 1 || port > 65535 {
		problems = append(problems, "SERVER_PORT must be a port number between 1 and 65535")
	}
	switch c.Server.Environment {
	case "development", "testing", "staging", "production":
	default:
		problems = append(problems, fmt.Sprintf("APP_ENV %q is not a known environment", c.Server.Environment))
	}
	if c.Database.MaxConnections <= 0 || c.Database.MaxIdleConns < 0 || c.Database.MaxIdleConns > c.Database.MaxConnections {
		problems = append(problems, "DB_MAX_IDLE_CONNS must be between 0 and DB_MAX_CONNECTIONS")
	}
	if c.JWT.PublicKey == nil {
		problems = append(problems, "JWT public key is required")
	}
	if c.Security.RateLimitPerSecond <= 0 {
		problems = append(problems, "RATE_LIMIT_PER_SECOND must be positive")
	}

	a := c.Analytics
	if a.RecentTransactionWindow <= 0 {
		problems = append(problems, "ANALYTICS_RECENT_TRANSACTION_WINDOW must be positive")
	}
	if a.RecentTransactionDisplay <= 0 || a.RecentTransactionDisplay > a.RecentTransactionWindow {
		problems = append(problems, "ANALYTICS_RECENT_TRANSACTION_DISPLAY must be between 1 and the recent transaction window")
	}
	if a.AlertLimit <= 0 {
		problems = append(problems, "ANALYTICS_ALERT_LIMIT must be positive")
	}
	if a.InsightTransactionWindow <= 0 {
		problems = append(problems, "ANALYTICS_INSIGHT_TRANSACTION_WINDOW must be positive")
	}
	if !a.BudgetWarningRatio.IsPositive() || a.BudgetWarningRatio.GreaterThan(decimal.NewFromInt(1)) {
		problems = append(problems, "ANALYTICS_BUDGET_WARNING_RATIO must be in (0, 1]")
	}
	if a.ScheduleSlackPercent < 0 || a.ScheduleSlackPercent > 100 {
		problems = append(problems, "ANALYTICS_SCHEDULE_SLACK_PERCENT must be between 0 and 100")
	}
	if a.FetchTimeout <= 0 {
		problems = append(problems, "ANALYTICS_FETCH_TIMEOUT must be positive")
	}
	if a.BreakerMaxFailures < 0 {
		problems = append(problems, "ANALYTICS_BREAKER_MAX_FAILURES must not be negative")
	}
	if a.BreakerMaxFailures > 0 && a.BreakerResetTimeout <= 0 {
		problems = append(problems, "ANALYTICS_BREAKER_RESET_TIMEOUT must be positive while the breaker is enabled")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// URL returns the connection string in the form golang-migrate expects.
func (c *DatabaseConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

// CanIssueTokens reports whether a signing key is available.
func (c *Config) CanIssueTokens() bool {
	return c.JWT.PrivateKey != nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getDecimalEnv(key string, defaultValue decimal.Decimal) decimal.Decimal {
	if value := os.Getenv(key); value != "" {
		if decVal, err := decimal.NewFromString(value); err == nil {
			return decVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// loadJWTKeys resolves the token keys in this order:
// 1. JWT_PRIVATE_KEY and JWT_PUBLIC_KEY together: sign and verify.
// 2. JWT_PUBLIC_KEY alone: verify only.
// 3. Neither, outside production: generate a throwaway keypair.
func (c *Config) loadJWTKeys() error {
	privateKeyB64 := os.Getenv("JWT_PRIVATE_KEY")
	publicKeyB64 := os.Getenv("JWT_PUBLIC_KEY")

	if publicKeyB64 != "" {
		publicKey, err := decodePublicKey(publicKeyB64)
		if err != nil {
			return err
		}
		c.JWT.PublicKey = publicKey

		if privateKeyB64 == "" {
			slog.Info("loaded JWT public key, token issuing disabled")
			return nil
		}

		privateKey, err := decodePrivateKey(privateKeyB64)
		if err != nil {
			return err
		}
		c.JWT.PrivateKey = privateKey
		slog.Info("loaded RSA keypair from environment variables")
		return nil
	}

	if privateKeyB64 != "" {
		return errors.New("JWT_PRIVATE_KEY is set without JWT_PUBLIC_KEY")
	}

	if c.IsProduction() {
		return errors.New("JWT_PUBLIC_KEY environment variable must be set in production environments")
	}

	slog.Warn("no JWT keys configured, generating a temporary RSA keypair", "environment", c.Server.Environment)
	privateKey, publicKey, err := GenerateRSAKeyPair()
	if err != nil {
		return err
	}
	c.JWT.PrivateKey = privateKey
	c.JWT.PublicKey = publicKey
	c.JWT.Generated = true
	return nil
}

func decodePrivateKey(b64 string) (*rsa.PrivateKey, error) {
	raw, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return nil, fmt.Errorf("failed to decode JWT_PRIVATE_KEY: %w", err)
	}
	key, err := loadRSAPrivateKey(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}
	return key, nil
}

func decodePublicKey(b64 string) (*rsa.PublicKey, error) {
	raw, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return nil, fmt.Errorf("failed to decode JWT_PUBLIC_KEY: %w", err)
	}
	key, err := loadRSAPublicKey(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key: %w", err)
	}
	return key, nil
}

func (c *Config) loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")

	if corsOrigins == "" {
		if c.IsProduction() {
			slog.Warn("CORS_ALLOW_ORIGINS not set in production, allowing all origins")
		}
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}

	slog.Info("CORS allowed origins configured", "origins", origins)
	return origins
}

// GenerateRSAKeyPair generates a new RSA key pair
func GenerateRSAKeyPair() (*rsa.PrivateKey, *rsa.PublicKey, error) {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate RSA key pair: %w", err)
	}

	return privateKey, &privateKey.PublicKey, nil
}

// EncodePrivateKey returns the base64 PEM form accepted by JWT_PRIVATE_KEY.
func EncodePrivateKey(key *rsa.PrivateKey) string {
	block := &pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)}
	return base64.StdEncoding.EncodeToString(pem.EncodeToMemory(block))
}

// EncodePublicKey returns the base64 PEM form accepted by JWT_PUBLIC_KEY.
func EncodePublicKey(key *rsa.PublicKey) (string, error) {
	der, err := x509.MarshalPKIXPublicKey(key)
	if err != nil {
		return "", fmt.Errorf("failed to marshal public key: %w", err)
	}
	block := &pem.Block{Type: "PUBLIC KEY", Bytes: der}
	return base64.StdEncoding.EncodeToString(pem.EncodeToMemory(block)), nil
}

func loadRSAPrivateKey(pemData []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(pemData)
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing the key")
	}

	privateKey, err := x509.ParsePKCS1PrivateKey(block.Bytes)
	if err == nil {
		return privateKey, nil
	}

	key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}

	rsaKey, ok := key.(*rsa.PrivateKey)
	if !ok {
		return nil, errors.New("not an RSA private key")
	}
	return rsaKey, nil
}

func loadRSAPublicKey(pemData []byte) (*rsa.PublicKey, error) {
	block, _ := pem.Decode(pemData)
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing the key")
	}

	publicKey, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key: %w", err)
	}

	rsaPublicKey, ok := publicKey.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("not an RSA public key")
	}

	return rsaPublicKey, nil
}
