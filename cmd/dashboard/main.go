package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/viper"

	"github.com/leoking9009/notion-working/internal/apiclient"
	"github.com/leoking9009/notion-working/internal/filter"
	"github.com/leoking9009/notion-working/internal/session"
	"github.com/leoking9009/notion-working/internal/ui"
)

// clientConfig is the dashboard's own configuration, separate from the
// server's environment. StartView is a view selector ("dashboard",
// "all", "notices", "admin", a filter name, or "assignee:<name>");
// an unrecognized value falls back to the dashboard.
type clientConfig struct {
	APIBaseURL  string `mapstructure:"api_base_url"`
	SessionFile string `mapstructure:"session_file"`
	StartView   string `mapstructure:"start_view"`
}

func loadConfig() (clientConfig, error) {
	configDir := filepath.Join(configHome(), "notion-working")

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")

	v.SetDefault("api_base_url", "http://localhost:8000/api")
	v.SetDefault("session_file", filepath.Join(configDir, "session.json"))
	v.SetDefault("start_view", "dashboard")

	v.SetEnvPrefix("DASHBOARD")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// No config file is fine; defaults and env cover everything.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return clientConfig{}, err
		}
	}

	var cfg clientConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return clientConfig{}, err
	}
	return cfg, nil
}

func configHome() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return dir
	}
	return "."
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	client := apiclient.New(cfg.APIBaseURL)
	store := session.NewFileStore(cfg.SessionFile)

	startView := cfg.StartView
	if len(os.Args) > 1 {
		startView = os.Args[1]
	}

	program := tea.NewProgram(ui.New(client, store, filter.ParseView(startView)), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "dashboard error: %v\n", err)
		os.Exit(1)
	}
}
