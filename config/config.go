package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Upstream  UpstreamConfig  `mapstructure:"upstream"`
	Telegram  TelegramConfig  `mapstructure:"telegram"`
	Monitor   MonitorConfig   `mapstructure:"monitor"`
	Donations DonationsConfig `mapstructure:"donations"`
	Sanitizer SanitizerConfig `mapstructure:"sanitizer"`
	State     StateConfig     `mapstructure:"state"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Admin     AdminConfig     `mapstructure:"admin"`
	Log       LogConfig       `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// UpstreamConfig describes the read-only wallet API and the monitored wallets.
// APIKey is the main wallet credential; ExtraAPIKeys is a comma-separated list
// of additional read-only credentials, one per extra wallet.
type UpstreamConfig struct {
	BaseURL      string        `mapstructure:"base_url"`
	APIKey       string        `mapstructure:"api_key"`
	ExtraAPIKeys string        `mapstructure:"extra_api_keys"`
	Timeout      time.Duration `mapstructure:"timeout"`
}

// ExtraKeyList splits the comma-separated extra credentials, dropping blanks.
func (u UpstreamConfig) ExtraKeyList() []string {
	var keys []string
	for _, k := range strings.Split(u.ExtraAPIKeys, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

type TelegramConfig struct {
	BotToken string `mapstructure:"bot_token"`
	ChatID   int64  `mapstructure:"chat_id"`
	APIBase  string `mapstructure:"api_base"`
}

// MonitorConfig tunes the polling pipeline.
type MonitorConfig struct {
	InstanceName     string        `mapstructure:"instance_name"`
	BalanceThreshold int64         `mapstructure:"balance_threshold"` // whole display units (sats)
	FetchCount       int           `mapstructure:"fetch_count"`       // most recent N payment records per poll
	PollInterval     time.Duration `mapstructure:"poll_interval"`     // 0 disables polling
	DigestInterval   time.Duration `mapstructure:"digest_interval"`   // 0 disables the scheduled digest
}

// DonationsConfig enables donation attribution when LinkID is set.
type DonationsConfig struct {
	LinkID  string `mapstructure:"link_id"`
	PageURL string `mapstructure:"page_url"`
	InfoURL string `mapstructure:"info_url"`
}

type SanitizerConfig struct {
	ForbiddenWords string `mapstructure:"forbidden_words"` // comma-separated
}

// WordList splits the comma-separated forbidden words, dropping blanks.
func (s SanitizerConfig) WordList() []string {
	var words []string
	for _, w := range strings.Split(s.ForbiddenWords, ",") {
		if w = strings.TrimSpace(w); w != "" {
			words = append(words, w)
		}
	}
	return words
}

// StateConfig locates the durable stores on disk.
type StateConfig struct {
	Dir string `mapstructure:"dir"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type AdminConfig struct {
	Token string `mapstructure:"token"` // empty disables the admin surface
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: LNS_.
// Nested keys use underscore: LNS_UPSTREAM_API_KEY, LNS_TELEGRAM_BOT_TOKEN, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 5009)
	v.SetDefault("upstream.base_url", "")
	v.SetDefault("upstream.api_key", "")
	v.SetDefault("upstream.extra_api_keys", "")
	v.SetDefault("upstream.timeout", "10s")
	v.SetDefault("telegram.bot_token", "")
	v.SetDefault("telegram.chat_id", 0)
	v.SetDefault("telegram.api_base", "https://api.telegram.org")
	v.SetDefault("monitor.instance_name", "LNbits Instance")
	v.SetDefault("monitor.balance_threshold", 10)
	v.SetDefault("monitor.fetch_count", 21)
	v.SetDefault("monitor.poll_interval", "60s")
	v.SetDefault("monitor.digest_interval", "24h")
	v.SetDefault("donations.link_id", "")
	v.SetDefault("donations.page_url", "")
	v.SetDefault("donations.info_url", "")
	v.SetDefault("sanitizer.forbidden_words", "")
	v.SetDefault("state.dir", "./state")
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("admin.token", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: LNS_UPSTREAM_BASE_URL -> upstream.base_url
	v.SetEnvPrefix("LNS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required — env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Validate checks required values. A failure here is fatal at startup,
// before any polling begins.
func (c *Config) Validate() error {
	if c.Upstream.BaseURL == "" {
		return fmt.Errorf("upstream.base_url is required")
	}
	if c.Upstream.APIKey == "" {
		return fmt.Errorf("upstream.api_key is required")
	}
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required")
	}
	if c.Telegram.ChatID == 0 {
		return fmt.Errorf("telegram.chat_id is required")
	}
	if c.Monitor.BalanceThreshold < 0 {
		return fmt.Errorf("monitor.balance_threshold must not be negative")
	}
	if c.Monitor.FetchCount <= 0 {
		return fmt.Errorf("monitor.fetch_count must be positive")
	}
	if c.Upstream.Timeout <= 0 {
		return fmt.Errorf("upstream.timeout must be positive")
	}
	return nil
}
