package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vfg2006/transaction-dashboard/internal/domain"
)

type Config struct {
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	Catalog   Catalog   `mapstructure:",squash"`
	Dashboard Dashboard `mapstructure:",squash"`
	Cors      Cors      `mapstructure:",squash"`
	RateLimit RateLimit `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// Catalog aponta para a fonte de dados externa dos três endpoints
type Catalog struct {
	BaseURL string        `mapstructure:"catalog_base_url"`
	Timeout time.Duration `mapstructure:"catalog_timeout"`
}

type Dashboard struct {
	DefaultMonth           string        `mapstructure:"dashboard_default_month"`
	PageReset              bool          `mapstructure:"dashboard_page_reset"`
	SessionTTL             time.Duration `mapstructure:"dashboard_session_ttl"`
	SessionCleanupInterval time.Duration `mapstructure:"dashboard_session_cleanup_interval"`
	SettleTimeout          time.Duration `mapstructure:"dashboard_settle_timeout"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type RateLimit struct {
	Interval time.Duration `mapstructure:"rate_limit_interval"`
	Burst    int           `mapstructure:"rate_limit_burst"`
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("HOST", "localhost")
	v.SetDefault("PORT", "8000")

	v.SetDefault("LOG_LEVEL", "debug")

	v.SetDefault("CATALOG_BASE_URL", "http://localhost:3000")
	v.SetDefault("CATALOG_TIMEOUT", "30s")

	v.SetDefault("DASHBOARD_DEFAULT_MONTH", "03")
	v.SetDefault("DASHBOARD_PAGE_RESET", true)                // volta para a página 1 quando mês ou busca mudam
	v.SetDefault("DASHBOARD_SESSION_TTL", "30m")              // sessão ociosa expira
	v.SetDefault("DASHBOARD_SESSION_CLEANUP_INTERVAL", "10m") // varredura de sessões expiradas
	v.SetDefault("DASHBOARD_SETTLE_TIMEOUT", "10s")           // limite do ?wait=true

	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:3001")

	v.SetDefault("RATE_LIMIT_INTERVAL", "100ms")
	v.SetDefault("RATE_LIMIT_BURST", 30)
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	v := viper.New()
	SetDefaults(v)

	v.SetConfigType("env")
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		logrus.Debug("config: using environment loaded by godotenv (viper could not read .env): ", err)
	} else {
		logrus.Info("config: .env read by viper")
	}

	err := v.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate rejeita combinações que deixariam o dashboard em estado inválido
func (c *Config) Validate() error {
	if _, err := domain.ParseMonthCode(c.Dashboard.DefaultMonth); err != nil {
		return fmt.Errorf("config: invalid DASHBOARD_DEFAULT_MONTH, expected 01..12: %w", err)
	}
	if c.Catalog.BaseURL == "" {
		return fmt.Errorf("config: CATALOG_BASE_URL is required")
	}
	if c.Catalog.Timeout <= 0 {
		return fmt.Errorf("config: CATALOG_TIMEOUT must be positive")
	}
	if c.Dashboard.SessionTTL <= 0 {
		return fmt.Errorf("config: DASHBOARD_SESSION_TTL must be positive")
	}
	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("config: could not get working directory: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("config: .env loaded from ", location)
			return
		}
	}

	logrus.Debug("config: no .env file found, relying on environment variables")
}
