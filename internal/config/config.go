package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"StockScout/internal/collector"
	"StockScout/internal/strategy"
)

// DefaultSymbols is the watchlist used when neither flags nor config
// provide one.
var DefaultSymbols = []string{
	"AAPL", "GOOGL", "MSFT", "AMZN", "TSLA",
	"NVDA", "META", "NFLX", "AMD", "CRM",
	"BABA", "UBER", "SHOP", "SQ", "PYPL",
}

// Config holds all application configuration. Values come from the YAML
// file first, then environment variables override (SYMBOLS, PERIOD,
// SCREENER_VOLUME_SPIKE_THRESHOLD, TELEGRAM_BOT_TOKEN, ...).
type Config struct {
	Symbols []string `yaml:"symbols" envconfig:"SYMBOLS"`
	Period  string   `yaml:"period" envconfig:"PERIOD"`

	Screener struct {
		VolumeSpikeThreshold float64 `yaml:"volume_spike_threshold" envconfig:"VOLUME_SPIKE_THRESHOLD"`
		BreakoutThreshold    float64 `yaml:"breakout_threshold" envconfig:"BREAKOUT_THRESHOLD"`
	} `yaml:"screener"`

	DataSource struct {
		BaseURL string `yaml:"base_url" envconfig:"BASE_URL"`
		APIKey  string `yaml:"api_key" envconfig:"API_KEY"`
	} `yaml:"data_source"`

	Schedule struct {
		ScanCron string `yaml:"scan_cron" envconfig:"SCAN_CRON"`
	} `yaml:"schedule"`

	Telegram struct {
		BotToken string `yaml:"bot_token" envconfig:"BOT_TOKEN"`
		ChatID   string `yaml:"chat_id" envconfig:"CHAT_ID"`
	} `yaml:"telegram"`

	Database struct {
		SQLitePath string `yaml:"sqlite_path" envconfig:"SQLITE_PATH"`
	} `yaml:"database"`

	Proxy string `yaml:"proxy" envconfig:"HTTPS_PROXY"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is not an error; env and defaults
// still apply.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("env overrides: %w", err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if len(c.Symbols) == 0 {
		c.Symbols = DefaultSymbols
	}
	if c.Period == "" {
		c.Period = collector.DefaultPeriod
	}
	if c.Screener.VolumeSpikeThreshold == 0 {
		c.Screener.VolumeSpikeThreshold = strategy.DefaultVolumeSpikeThreshold
	}
	if c.Screener.BreakoutThreshold == 0 {
		c.Screener.BreakoutThreshold = strategy.DefaultBreakoutThreshold
	}
	if c.Schedule.ScanCron == "" {
		// Weekdays at 22:30, after the US close.
		c.Schedule.ScanCron = "0 30 22 * * 1-5"
	}
}

// Validate checks the fields required for a one-shot run.
func (c *Config) Validate() error {
	if !collector.ValidPeriod(c.Period) {
		return fmt.Errorf("period %q is not supported", c.Period)
	}
	if c.Screener.VolumeSpikeThreshold <= 0 {
		return fmt.Errorf("screener.volume_spike_threshold must be positive")
	}
	if c.Screener.BreakoutThreshold <= 0 {
		return fmt.Errorf("screener.breakout_threshold must be positive")
	}
	return nil
}

// ValidateDaemon additionally checks the fields the scheduled mode needs.
func (c *Config) ValidateDaemon() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required in daemon mode")
	}
	if c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required in daemon mode")
	}
	return nil
}

// StrategyConfig converts the screener section into classifier thresholds.
func (c *Config) StrategyConfig() strategy.Config {
	return strategy.Config{
		VolumeSpikeThreshold: c.Screener.VolumeSpikeThreshold,
		BreakoutThreshold:    c.Screener.BreakoutThreshold,
	}
}
