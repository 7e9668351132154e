package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	Cache      CacheConfig
	Log        LogConfig
	I18n       I18nConfig
	Translator TranslatorConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	FilterOptionsTTL time.Duration
	ReferenceTTL     time.Duration
}

type LogConfig struct {
	Level string
}

// I18nConfig drives language negotiation and translation fallbacks.
type I18nConfig struct {
	DefaultLanguage    string
	SupportedLanguages []string
	Timezone           string
}

// TranslatorConfig configures the offline translation batch tool. The
// provider enforces a request rate limit, hence the mandatory delay.
type TranslatorConfig struct {
	BaseURL        string
	Email          string
	RequestTimeout time.Duration
	CallDelay      time.Duration
	SourceLanguage string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			FilterOptionsTTL: time.Duration(viper.GetInt("FILTER_OPTIONS_CACHE_TTL")) * time.Second,
			ReferenceTTL:     time.Duration(viper.GetInt("REFERENCE_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		I18n: I18nConfig{
			DefaultLanguage:    viper.GetString("DEFAULT_LANGUAGE"),
			SupportedLanguages: parseList(viper.GetString("SUPPORTED_LANGUAGES")),
			Timezone:           viper.GetString("TIMEZONE"),
		},
		Translator: TranslatorConfig{
			BaseURL:        viper.GetString("TRANSLATOR_BASE_URL"),
			Email:          viper.GetString("TRANSLATOR_EMAIL"),
			RequestTimeout: time.Duration(viper.GetInt("TRANSLATOR_REQUEST_TIMEOUT")) * time.Second,
			CallDelay:      time.Duration(viper.GetInt("TRANSLATOR_CALL_DELAY_MS")) * time.Millisecond,
			SourceLanguage: viper.GetString("TRANSLATOR_SOURCE_LANGUAGE"),
		},
	}

	// Set default values if not provided
	if cfg.I18n.DefaultLanguage == "" {
		cfg.I18n.DefaultLanguage = "en"
	}
	if len(cfg.I18n.SupportedLanguages) == 0 {
		cfg.I18n.SupportedLanguages = []string{"en", "tr", "ru"}
	}
	if cfg.I18n.Timezone == "" {
		cfg.I18n.Timezone = "Europe/Nicosia"
	}
	if cfg.Cache.FilterOptionsTTL == 0 {
		cfg.Cache.FilterOptionsTTL = 10 * time.Minute
	}
	if cfg.Cache.ReferenceTTL == 0 {
		cfg.Cache.ReferenceTTL = time.Hour
	}
	if cfg.Translator.BaseURL == "" {
		cfg.Translator.BaseURL = "https://api.mymemory.translated.net"
	}
	if cfg.Translator.RequestTimeout == 0 {
		cfg.Translator.RequestTimeout = 15 * time.Second
	}
	if cfg.Translator.CallDelay == 0 {
		cfg.Translator.CallDelay = 1100 * time.Millisecond
	}
	if cfg.Translator.SourceLanguage == "" {
		cfg.Translator.SourceLanguage = cfg.I18n.DefaultLanguage
	}

	return cfg, nil
}

func parseList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
