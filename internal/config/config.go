package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion
	"time"    // For parsing the expected due date

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort         string    // Application port
	DBUser          string    // Database user
	DBPassword      string    // Database password
	DBHost          string    // Database host
	DBPort          string    // Database port
	DBName          string    // Database name
	JWTSecret       string    // JWT secret key for admin tokens
	RedisAddr       string    // Redis server address
	RedisPass       string    // Redis password
	RedisDB         int       // Redis database number
	AdminCode       string    // Shared admin passphrase
	CaptchaPhrase   string    // Shared human-check phrase for the wizard
	ExpectedDueDate time.Time // Anchor for the +/- 14 day prediction window
	IsProd          bool      // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	return &Config{
		AppPort:         getEnv("APP_PORT", "8080"),
		DBUser:          os.Getenv("DB_USER"),
		DBPassword:      os.Getenv("DB_PASSWORD"),
		DBHost:          getEnv("DB_HOST", "localhost"),
		DBPort:          getEnv("DB_PORT", "3306"),
		DBName:          getEnv("DB_NAME", "babyshower"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:       os.Getenv("REDIS_PASS"),
		RedisDB:         redisDB,
		AdminCode:       getEnv("ADMIN_CODE", "baby"),
		CaptchaPhrase:   getEnv("CAPTCHA_PHRASE", "goo goo"),
		ExpectedDueDate: parseDate(getEnv("EXPECTED_DUE_DATE", "2026-06-15")),
		IsProd:          os.Getenv("IS_PROD") == "true",
	}
}

// DSN builds the MySQL data source name from the DB settings
func (c *Config) DSN() string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?parseTime=true"
}

// getEnv returns the environment value for key or the fallback when unset
func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

// parseDate parses an ISO date, falling back to the zero time on bad input
func parseDate(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}
