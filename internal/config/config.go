package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Project
		Database
		CORS
		Global
	}

	HTTP struct {
		Port int32
		Host string
	}
	Project struct {
		Name string
	}
	Database struct {
		User     string
		Password string
		Host     string
		Port     int
		Name     string
	}
	CORS struct {
		AllowedOrigins []string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
)

// DSN builds the MySQL connection string. parseTime is required for
// time.Time scanning and loc pins timestamps to UTC end to end.
func (d Database) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		d.User, d.Password, d.Host, d.Port, d.Name)
}

// LoadEnv loads a .env file if one is present. A missing file is fine;
// the environment itself is the source of truth in deployments.
func LoadEnv() {
	_ = godotenv.Load()
}

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8000)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("project_name", "Book Catalog")
	v.SetDefault("mysql_user", "root")
	v.SetDefault("mysql_password", "")
	v.SetDefault("mysql_host", "localhost")
	v.SetDefault("mysql_port", 3306)
	v.SetDefault("mysql_db", "bookcatalog")
	v.SetDefault("frontend_host", "http://localhost:5173")

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Project: Project{
			Name: v.GetString("PROJECT_NAME"),
		},
		Database: Database{
			User:     v.GetString("MYSQL_USER"),
			Password: v.GetString("MYSQL_PASSWORD"),
			Host:     v.GetString("MYSQL_HOST"),
			Port:     v.GetInt("MYSQL_PORT"),
			Name:     v.GetString("MYSQL_DB"),
		},
		CORS: CORS{
			AllowedOrigins: splitOrigins(v.GetString("FRONTEND_HOST")),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
	}
}

// splitOrigins parses a comma-separated origin list, e.g.
// "http://localhost:5173,https://books.example.com".
func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
