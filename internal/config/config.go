package config

import (
	"time"

	"github.com/spf13/viper"
)

type (
	Config struct {
		Database
		Catalog
		OverdueSweep
		Global
	}

	Database struct {
		Path string
	}
	Catalog struct {
		BaseURL      string
		FetchTimeout time.Duration
	}
	OverdueSweep struct {
		Enabled  bool
		Schedule string // Cron format: "0 * * * *" = hourly
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("catalog_base_url", "https://acervo.bn.gov.br")
	v.SetDefault("catalog_fetch_timeout", "30s")
	v.SetDefault("overdue_sweep_enabled", true)
	v.SetDefault("overdue_sweep_schedule", "0 * * * *") // Hourly at :00
	v.SetDefault("shutdown_timeout_in_seconds", 2)

	return &Config{
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Catalog: Catalog{
			BaseURL:      v.GetString("CATALOG_BASE_URL"),
			FetchTimeout: v.GetDuration("CATALOG_FETCH_TIMEOUT"),
		},
		OverdueSweep: OverdueSweep{
			Enabled:  v.GetBool("OVERDUE_SWEEP_ENABLED"),
			Schedule: v.GetString("OVERDUE_SWEEP_SCHEDULE"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
	}
}
