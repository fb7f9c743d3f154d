package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds all runtime settings for the API gateway.
// Values come from the environment (a .env file is loaded in main).
type Config struct {
	ProjectName    string
	ProjectVersion string

	// SecretKey signs access tokens. It must be configured explicitly:
	// a random per-process key would invalidate every issued token on
	// restart, so its absence is a startup error.
	SecretKey string

	// Token lifetime, fixed at 24 hours like the legacy admin panel.
	AccessTokenTTL time.Duration

	Port string

	// MySQL connection settings for the OpenCart database.
	MySQLUser     string
	MySQLPassword string
	MySQLServer   string
	MySQLPort     string
	MySQLDB       string

	// Base URL for the IP geolocation service.
	GeolocationURL string
}

func Load() (*Config, error) {
	secret := os.Getenv("SECRET_KEY")
	if secret == "" {
		return nil, fmt.Errorf("SECRET_KEY is not defined in the environment")
	}

	cfg := &Config{
		ProjectName:    "OpenCart API",
		ProjectVersion: "1.0.0",
		SecretKey:      secret,
		AccessTokenTTL: 24 * time.Hour,
		Port:           getEnv("PORT", "8080"),
		MySQLUser:      getEnv("MYSQL_USER", "root"),
		MySQLPassword:  getEnv("MYSQL_PASSWORD", ""),
		MySQLServer:    getEnv("MYSQL_SERVER", "127.0.0.1"),
		MySQLPort:      getEnv("MYSQL_PORT", "3306"),
		MySQLDB:        getEnv("MYSQL_DB", "opencart_updated"),
		GeolocationURL: getEnv("GEOLOCATION_URL", "https://ipinfo.io"),
	}
	return cfg, nil
}

// DSN monta a string de conexão MySQL no formato esperado pelo driver.
func (c *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		c.MySQLUser, c.MySQLPassword, c.MySQLServer, c.MySQLPort, c.MySQLDB)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
