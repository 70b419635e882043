package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix marks the variables read into Config. A double underscore
// separates nesting levels: RELOCATION_DB__HOST sets DB.Host.
const EnvPrefix = "RELOCATION_"

type Config struct {
	Env      string         `koanf:"env" validate:"required,oneof=development production test"`
	LogLevel string         `koanf:"log_level" validate:"required"`
	HTTP     HTTPConfig     `koanf:"http"`
	DB       DBConfig       `koanf:"db"`
	Auth     AuthConfig     `koanf:"auth"`
	Redis    RedisConfig    `koanf:"redis"`
	Kafka    KafkaConfig    `koanf:"kafka"`
	Storage  StorageConfig  `koanf:"storage"`
	Tracking TrackingConfig `koanf:"tracking"`
	Jobs     JobsConfig     `koanf:"jobs"`
}

type HTTPConfig struct {
	Port            string        `koanf:"port" validate:"required"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

type DBConfig struct {
	Host            string        `koanf:"host" validate:"required"`
	Port            string        `koanf:"port" validate:"required"`
	User            string        `koanf:"user" validate:"required"`
	Password        string        `koanf:"password"`
	Name            string        `koanf:"name" validate:"required"`
	SSLMode         string        `koanf:"sslmode" validate:"required"`
	MaxOpenConns    int           `koanf:"max_open_conns"`
	MaxIdleConns    int           `koanf:"max_idle_conns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
}

// DSN renders the connection string for the postgres driver.
func (c DBConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

type AuthConfig struct {
	AccessSecret  string        `koanf:"access_secret" validate:"required,min=16"`
	RefreshSecret string        `koanf:"refresh_secret" validate:"required,min=16,nefield=AccessSecret"`
	AccessTTL     time.Duration `koanf:"access_ttl" validate:"gt=0"`
	RefreshTTL    time.Duration `koanf:"refresh_ttl" validate:"gtfield=AccessTTL"`
	Issuer        string        `koanf:"issuer"`
	BcryptCost    int           `koanf:"bcrypt_cost" validate:"min=4,max=31"`
}

// RedisConfig enables the tracking cache when Address is set.
type RedisConfig struct {
	Address  string `koanf:"address"`
	Password string `koanf:"password"`
	DB       int    `koanf:"db"`
}

// KafkaConfig enables event publishing when Brokers is set. Brokers is a
// comma separated list in the environment.
type KafkaConfig struct {
	Brokers []string `koanf:"brokers"`
	Topic   string   `koanf:"topic" validate:"required_with=Brokers"`
}

type StorageConfig struct {
	Root string `koanf:"root" validate:"required"`
}

type TrackingConfig struct {
	CacheTTL time.Duration `koanf:"cache_ttl"`
}

// JobsConfig holds cron schedules. An empty schedule disables the job.
type JobsConfig struct {
	RatingReconcileSchedule string        `koanf:"rating_reconcile_schedule"`
	RatingReconcileTimeout  time.Duration `koanf:"rating_reconcile_timeout"`
}

func defaults() map[string]any {
	return map[string]any{
		"env":                           "development",
		"log_level":                     "info",
		"http.port":                     "8080",
		"http.read_timeout":             "15s",
		"http.write_timeout":            "30s",
		"http.shutdown_timeout":         "10s",
		"db.host":                       "localhost",
		"db.port":                       "5432",
		"db.sslmode":                    "disable",
		"db.max_open_conns":             25,
		"db.max_idle_conns":             5,
		"db.conn_max_lifetime":          "30m",
		"auth.access_ttl":               "15m",
		"auth.refresh_ttl":              "168h",
		"auth.issuer":                   "relocation",
		"auth.bcrypt_cost":              12,
		"kafka.topic":                   "relocation.events",
		"storage.root":                  "./data/documents",
		"tracking.cache_ttl":            "30s",
		"jobs.rating_reconcile_timeout": "1m",
	}
}

// LoadConfig reads .env when present, layers RELOCATION_* variables over the
// defaults and validates the result.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return Config{}, fmt.Errorf("load defaults: %w", err)
	}

	err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envKeyValue), nil)
	if err != nil {
		return Config{}, fmt.Errorf("load environment: %w", err)
	}

	var cfg Config
	if err = k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err = validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func envKeyValue(name, value string) (string, any) {
	key := strings.ToLower(strings.ReplaceAll(strings.TrimPrefix(name, EnvPrefix), "__", "."))
	if key == "kafka.brokers" {
		var brokers []string
		for _, b := range strings.Split(value, ",") {
			if b = strings.TrimSpace(b); b != "" {
				brokers = append(brokers, b)
			}
		}
		return key, brokers
	}
	return key, value
}
