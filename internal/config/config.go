// Package config collects the runtime settings of the backend from the environment.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/exp/slices"
)

// Supported database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

var drivers = []string{DriverSQLite, DriverPostgres}

type Config struct {
	// HTTP server
	Port   string
	APIURL string // External URL of the API, used for links and the API docs

	// Database
	DBDriver    string
	DatabaseURL string // Path of the SQLite file or PostgreSQL DSN

	// Sessions
	JWTSecret     string
	TokenValidity time.Duration

	// Router
	CORSAllowOrigins []string // Origins allowed for CORS, may contain * as wildcard
	EnablePprof      bool

	// Export
	ExportTimezone string // IANA name of the time zone used for CSV dates if a request does not specify one

	// Problems found while reading the environment, reported by Validate
	loadProblems []string
}

// Load reads the configuration from the environment. It does not validate it,
// values that cannot be parsed are reported by Validate.
func Load() Config {
	c := Config{
		Port:   getEnv("PORT", "8080"),
		APIURL: getEnv("API_URL", "http://localhost:8080"),

		DBDriver:    getEnv("DB_DRIVER", DriverSQLite),
		DatabaseURL: getEnv("DATABASE_URL", "data/pocketledger.db"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		CORSAllowOrigins: strings.Fields(os.Getenv("CORS_ALLOW_ORIGINS")),
		EnablePprof:      os.Getenv("ENABLE_PPROF") == "true",

		ExportTimezone: getEnv("EXPORT_TIMEZONE", "UTC"),
	}

	validity, err := getEnvDuration("TOKEN_VALIDITY", 30*24*time.Hour)
	if err != nil {
		c.loadProblems = append(c.loadProblems, err.Error())
	}
	c.TokenValidity = validity

	return c
}

// Validate checks the configuration and returns all problems at once.
func (c Config) Validate() error {
	problems := slices.Clone(c.loadProblems)

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if _, err := c.BaseURL(); err != nil {
		problems = append(problems, err.Error())
	}

	if !slices.Contains(drivers, c.DBDriver) {
		problems = append(problems, fmt.Sprintf("invalid database driver '%s': must be one of %v", c.DBDriver, drivers))
	}

	if c.DatabaseURL == "" {
		problems = append(problems, "DATABASE_URL must not be empty")
	}

	if c.JWTSecret == "" {
		problems = append(problems, "JWT_SECRET must be set")
	}

	if c.TokenValidity <= 0 {
		problems = append(problems, fmt.Sprintf("invalid token validity %v: must be positive", c.TokenValidity))
	}

	if _, err := c.ExportLocation(); err != nil {
		problems = append(problems, fmt.Sprintf("invalid export time zone '%s': %v", c.ExportTimezone, err))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}

	return nil
}

// BaseURL returns the parsed API_URL.
func (c Config) BaseURL() (*url.URL, error) {
	u, err := url.Parse(c.APIURL)
	if err != nil {
		return nil, fmt.Errorf("invalid API URL '%s': %w", c.APIURL, err)
	}

	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid API URL '%s': must be absolute, e.g. https://example.com", c.APIURL)
	}

	return u, nil
}

// ExportLocation returns the time zone for CSV exports.
func (c Config) ExportLocation() (*time.Location, error) {
	return time.LoadLocation(c.ExportTimezone)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue, fmt.Errorf("invalid %s '%s': must be a duration like 720h", key, value)
	}

	return d, nil
}
