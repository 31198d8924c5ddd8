package config

import (
	"golang-portfolio-tracker/pkg/config"
)

// Scheduler holds the background job scheduling configuration.
type Scheduler struct {
	PollingInterval string `mapstructure:"polling_interval"`
	CronExpression  string `mapstructure:"cron_expression"`
	Timezone        string `mapstructure:"timezone"`
}

// Market holds the quote provider configuration.
type Market struct {
	Provider            string `mapstructure:"provider"`
	BaseURL             string `mapstructure:"base_url"`
	MaxRequestPerMinute int    `mapstructure:"max_request_per_minute"`
	QuoteCacheTTL       string `mapstructure:"quote_cache_ttl"`
}

// Config holds the full configuration for the API service.
type Config struct {
	App       config.App      `mapstructure:"app"`
	Logger    config.Logger   `mapstructure:"logger"`
	Database  config.Database `mapstructure:"database"`
	Redis     config.Redis    `mapstructure:"redis"`
	API       config.API      `mapstructure:"api"`
	Scheduler Scheduler       `mapstructure:"scheduler"`
	Market    Market          `mapstructure:"market"`
}

// Load loads the API service configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
