package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config is loaded once at startup from environment variables. There is no
// hot-reload; restart the process to pick up changes.
type Config struct {
	Port      int
	LogLevel  string
	LogFormat string

	// DBDriver selects the gorm dialector: "postgres" for the managed
	// database, "sqlite" for local development (the change feed is
	// unavailable under sqlite).
	DBDriver    string
	DatabaseURL string
	SQLitePath  string

	// Identity service (admin API, authenticated with the service key).
	SupabaseURL string
	ServiceKey  string

	// Chat bot credentials. Alerts go to the fixed BotChatID.
	BotToken  string
	BotChatID int64

	SettingsFile string
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:         8080,
		LogLevel:     "info",
		LogFormat:    "json",
		DBDriver:     "postgres",
		SQLitePath:   "hydromon.sqlite",
		SettingsFile: "alertSettings.yml",
	}

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Port = port
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv("DB_DRIVER"); v != "" {
		cfg.DBDriver = v
	}
	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.SQLitePath = v
	}
	cfg.SupabaseURL = os.Getenv("SUPABASE_URL")
	cfg.ServiceKey = os.Getenv("SUPABASE_SERVICE_KEY")
	cfg.BotToken = os.Getenv("TELEGRAM_BOT_TOKEN")
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		chatID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid TELEGRAM_CHAT_ID %q: %w", v, err)
		}
		cfg.BotChatID = chatID
	}
	if v := os.Getenv("SETTINGS_FILE"); v != "" {
		cfg.SettingsFile = v
	}

	if cfg.DBDriver == "postgres" && cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required when DB_DRIVER is postgres")
	}

	return cfg, nil
}
