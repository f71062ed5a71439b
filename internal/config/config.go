package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	App      AppConfig
}

type ServerConfig struct {
	Port               string
	GinMode            string
	CORSAllowedOrigins []string
}

type DatabaseConfig struct {
	Driver string

	// SQLite
	Path string

	// Postgres
	URL           string
	Host          string
	Port          int
	User          string
	Password      string
	Name          string
	AdminUser     string
	AdminPassword string
}

type AppConfig struct {
	Name     string
	Version  string
	LogLevel string
}

// Load reads an optional .env file and builds the config from the environment.
// The bool reports whether a .env file was found.
func Load() (*Config, bool, error) {
	envLoaded := godotenv.Load() == nil

	cfg := &Config{
		Server: ServerConfig{
			Port:               getEnv("PORT", "3000"),
			GinMode:            getEnv("GIN_MODE", "release"),
			CORSAllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
		Database: DatabaseConfig{
			Driver:        strings.ToLower(getEnv("DB_DRIVER", DriverSQLite)),
			Path:          getEnv("DB_PATH", "./db/db.sqlite3"),
			URL:           os.Getenv("DATABASE_URL"),
			Host:          getEnv("DB_HOST", "localhost"),
			Port:          getEnvAsInt("DB_PORT", 5432),
			User:          os.Getenv("DB_USERNAME"),
			Password:      os.Getenv("DB_PASSWORD"),
			Name:          os.Getenv("DB_DATABASE"),
			AdminUser:     os.Getenv("DB_ADMIN_USER"),
			AdminPassword: os.Getenv("DB_ADMIN_PASSWORD"),
		},
		App: AppConfig{
			Name:     getEnv("APP_NAME", "project-reports"),
			Version:  getEnv("APP_VERSION", "1.0.0"),
			LogLevel: getEnv("LOG_LEVEL", "info"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, envLoaded, err
	}

	return cfg, envLoaded, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if _, err := strconv.Atoi(c.Server.Port); err != nil {
		return fmt.Errorf("PORT must be a number, got %q", c.Server.Port)
	}

	switch c.Database.Driver {
	case DriverSQLite:
		if c.Database.Path == "" {
			return fmt.Errorf("DB_PATH is required for the sqlite driver")
		}
	case DriverPostgres:
		if c.Database.URL != "" {
			return nil
		}
		if c.Database.Host == "" {
			return fmt.Errorf("DB_HOST is required for the postgres driver")
		}
		if c.Database.User == "" {
			return fmt.Errorf("DB_USERNAME is required for the postgres driver")
		}
		if c.Database.Name == "" {
			return fmt.Errorf("DB_DATABASE is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q: must be %q or %q", c.Database.Driver, DriverSQLite, DriverPostgres)
	}

	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Server.Port
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := strings.TrimSpace(os.Getenv(key))
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := strings.TrimSpace(os.Getenv(key))
	if valueStr == "" {
		return defaultValue
	}

	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
