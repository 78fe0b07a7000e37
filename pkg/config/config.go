package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix namespaces every environment variable consumed by the platform.
const EnvPrefix = "SHELFWISE"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App       AppConfig
	Store     StoreConfig
	Redis     RedisConfig
	Inventory InventoryConfig
	DevStore  DevStoreConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env      string `envconfig:"SHELFWISE_APP_ENV" default:"dev"`
	LogLevel string `envconfig:"SHELFWISE_LOG_LEVEL" default:"info"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// StoreConfig points the client at the remote REST data store.
type StoreConfig struct {
	BaseURL string        `envconfig:"SHELFWISE_STORE_BASE_URL" default:"http://localhost:3000"`
	Timeout time.Duration `envconfig:"SHELFWISE_STORE_TIMEOUT" default:"10s"`
}

// RedisConfig configures the connection backing the persisted session slot.
type RedisConfig struct {
	URL          string        `envconfig:"SHELFWISE_REDIS_URL" default:"redis://localhost:6379/0"`
	Address      string        `envconfig:"SHELFWISE_REDIS_ADDR"`
	Password     string        `envconfig:"SHELFWISE_REDIS_PASSWORD"`
	DB           int           `envconfig:"SHELFWISE_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"SHELFWISE_REDIS_POOL_SIZE" default:"5"`
	MinIdleConns int           `envconfig:"SHELFWISE_REDIS_MIN_IDLE_CONNS" default:"1"`
	DialTimeout  time.Duration `envconfig:"SHELFWISE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"SHELFWISE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"SHELFWISE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// InventoryConfig carries display-side inventory tuning.
type InventoryConfig struct {
	LowStockThreshold int `envconfig:"SHELFWISE_LOW_STOCK_THRESHOLD" default:"5"`
}

// DevStoreConfig configures the development data-store server.
type DevStoreConfig struct {
	Port     string `envconfig:"SHELFWISE_DEVSTORE_PORT" default:"3000"`
	SeedFile string `envconfig:"SHELFWISE_DEVSTORE_SEED_FILE"`
}
