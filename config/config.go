package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	FTX       FTXConfig       `mapstructure:"ftx"`
	Log       LogConfig       `mapstructure:"log"`
	Postgres  PostgresConfig  `mapstructure:"postgres"`
	Collector CollectorConfig `mapstructure:"collector"`
}

type FTXConfig struct {
	REST RESTConfig `mapstructure:"rest"`

	APIKey     string `mapstructure:"api_key"`
	APISecret  string `mapstructure:"api_secret"`
	Subaccount string `mapstructure:"subaccount"`

	// SecretsSource is "env" (default) or "ssm".
	SecretsSource string    `mapstructure:"secrets_source"`
	SSM           SSMConfig `mapstructure:"ssm"`
}

type RESTConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// SSMConfig names the Parameter Store entries holding the API key pair.
type SSMConfig struct {
	KeyParam        string `mapstructure:"key_param"`
	SecretParam     string `mapstructure:"secret_param"`
	SubaccountParam string `mapstructure:"subaccount_param"`
}

// Options defines the logger configuration options.
type LogConfig struct {
	Level       string `mapstructure:"level"`       // log level: "debug", "info", "warn", "error"
	Format      string `mapstructure:"format"`      // log format: "json" or "console"
	OutputFile  string `mapstructure:"output_file"` // file path to store logs (optional)
	Environment string `mapstructure:"environment"` // environment: "dev" or "prod"
}

type CollectorConfig struct {
	Markets     []string      `mapstructure:"markets"`
	MarketType  string        `mapstructure:"market_type"`
	Concurrency int           `mapstructure:"concurrency"`
	RatePerSec  float64       `mapstructure:"rate_per_sec"`
	Lookback    time.Duration `mapstructure:"lookback"`
}

func newViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("ftx.rest.base_url", "https://ftx.com/api")
	v.SetDefault("ftx.rest.timeout", 10*time.Second)
	v.SetDefault("ftx.secrets_source", "env")
	// registered so AutomaticEnv picks up FTX_API_KEY and friends on Unmarshal
	v.SetDefault("ftx.api_key", "")
	v.SetDefault("ftx.api_secret", "")
	v.SetDefault("ftx.subaccount", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("collector.concurrency", 4)
	v.SetDefault("collector.rate_per_sec", 5)
	v.SetDefault("collector.lookback", 24*time.Hour)

	// Support environment variables with dot notation (e.g., FTX_API_KEY)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load loads application configuration using Viper.
// It reads from config.yaml and overrides with environment variables.
func Load() *Config {
	v := newViper()

	v.SetConfigName("config") // config.yaml
	v.SetConfigType("yaml")

	ex, _ := os.Executable()
	if strings.Contains(ex, "go-build") {
		pwd, _ := os.Getwd()
		v.AddConfigPath(filepath.Join(pwd, "../../config"))
	} else {
		v.AddConfigPath(filepath.Join(filepath.Dir(ex), "../config"))
	}

	cfg, err := read(v)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	return cfg
}

// LoadFrom reads the given YAML file. Environment variables still override
// file values.
func LoadFrom(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	return read(v)
}

func read(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}
