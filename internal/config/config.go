package config

import (
	"os"
	"strconv"
	"strings"
)

// Server configuration
type ServerConfig struct {
	Port string
	Host string
}

// Notion API configuration
type NotionConfig struct {
	Token       string
	TasksDB     string
	NoticesDB   string
	CommentsDB  string
	UsersDB     string
	APIVersion  string
	BaseURL     string
	TimeoutSecs int
}

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Notion   NotionConfig
	LogLevel string
}

// Default configuration values
const (
	DefaultServerPort    = "8000"
	DefaultServerHost    = ""
	DefaultNotionBaseURL = "https://api.notion.com/v1"
	DefaultNotionVersion = "2022-06-28"
	DefaultTimeoutSecs   = 30
	DefaultLogLevel      = "info"
)

// New returns a new Config populated from the environment. The legacy
// VITE_-prefixed variable names are still honored so deployments that
// predate the rewrite keep working without renaming anything.
func New() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", DefaultServerPort),
			Host: getEnv("SERVER_HOST", DefaultServerHost),
		},
		Notion: NotionConfig{
			Token:       getEnvAny("NOTION_TOKEN", "VITE_NOTION_TOKEN"),
			TasksDB:     getEnvAny("NOTION_DATABASE_ID", "VITE_NOTION_DATABASE_ID"),
			NoticesDB:   getEnvAny("NOTION_NOTICES_DATABASE_ID", "VITE_NOTION_NOTICES_DATABASE_ID"),
			CommentsDB:  getEnvAny("NOTION_COMMENTS_DATABASE_ID", "VITE_NOTION_COMMENTS_DATABASE_ID"),
			UsersDB:     getEnvAny("NOTION_USERS_DATABASE_ID", "VITE_NOTION_USERS_DATABASE_ID"),
			APIVersion:  getEnv("NOTION_API_VERSION", DefaultNotionVersion),
			BaseURL:     getEnv("NOTION_BASE_URL", DefaultNotionBaseURL),
			TimeoutSecs: getEnvInt("NOTION_TIMEOUT_SECS", DefaultTimeoutSecs),
		},
		LogLevel: getEnv("LOG_LEVEL", DefaultLogLevel),
	}
}

// Address returns the server address string
func (c *ServerConfig) Address() string {
	return c.Host + ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAny(keys ...string) string {
	for _, key := range keys {
		if value, exists := os.LookupEnv(key); exists && strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
