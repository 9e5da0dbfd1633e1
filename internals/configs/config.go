package configs

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
)

var ErrInvalidConfig = errors.New("invalid config")

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("no .env file found, using system environment")
		} else {
			log.Println(".env file loaded")
		}
	} else {
		log.Println("running on Railway, using system environment")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// =======================
// CONFIG
// =======================

type PostgresConfig struct {
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
}

type MongoConfig struct {
	URI      string `mapstructure:"uri"`
	Database string `mapstructure:"database"`
}

type Config struct {
	Port           string         `mapstructure:"port"`
	StoreDriver    string         `mapstructure:"store_driver"`
	Postgres       PostgresConfig `mapstructure:"db"`
	Mongo          MongoConfig    `mapstructure:"mongodb"`
	Timezone       string         `mapstructure:"timezone"`
	LogLevel       string         `mapstructure:"log_level"`
	HealthCron     string         `mapstructure:"health_cron"`
	RequestTimeout time.Duration  `mapstructure:"request_timeout"`
	CORSOrigins    []string       `mapstructure:"cors_origins"`

	// resolved from Timezone by Load
	Location *time.Location `mapstructure:"-"`
}

var envBindings = map[string]string{
	"port":             "PORT",
	"store_driver":     "STORE_DRIVER",
	"db.user":          "DB_USER",
	"db.password":      "DB_PASSWORD",
	"db.host":          "DB_HOST",
	"db.port":          "DB_PORT",
	"db.name":          "DB_NAME",
	"db.sslmode":       "DB_SSLMODE",
	"mongodb.uri":      "MONGODB_URI",
	"mongodb.database": "MONGODB_DATABASE",
	"timezone":         "PORTAL_TIMEZONE",
	"log_level":        "LOG_LEVEL",
	"health_cron":      "HEALTH_CRON",
	"request_timeout":  "REQUEST_TIMEOUT",
	"cors_origins":     "CORS_ORIGINS",
}

// flag name -> config key
var flagBindings = map[string]string{
	"port":         "port",
	"store-driver": "store_driver",
	"log-level":    "log_level",
	"timezone":     "timezone",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("store_driver", DriverPostgres)
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", "5432")
	v.SetDefault("db.sslmode", "require")
	v.SetDefault("mongodb.database", "portal_mpa")
	v.SetDefault("timezone", "Asia/Kuala_Lumpur")
	v.SetDefault("log_level", "info")
	v.SetDefault("health_cron", "@every 1m")
	v.SetDefault("request_timeout", 5*time.Second)
	v.SetDefault("cors_origins", []string{"*"})
}

// Flags declares the command-line overrides Load understands.
func Flags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("portal-mpa", pflag.ContinueOnError)
	fs.String("port", "", "HTTP listen port (PORT)")
	fs.String("store-driver", "", "tournament store: postgres or mongo (STORE_DRIVER)")
	fs.String("log-level", "", "debug, info, warn or error (LOG_LEVEL)")
	fs.String("timezone", "", "IANA zone for calendar-month statistics (PORTAL_TIMEZONE)")
	return fs
}

// Load resolves configuration from defaults, the environment and, when set, flags.
// Flags win over the environment only when they were given explicitly.
func Load(flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	setDefaults(v)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return Config{}, err
		}
	}
	if flags != nil {
		for name, key := range flagBindings {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, err
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	c.StoreDriver = strings.ToLower(strings.TrimSpace(c.StoreDriver))
	switch c.StoreDriver {
	case DriverPostgres:
	case DriverMongo:
		if c.Mongo.URI == "" {
			return fmt.Errorf("%w: MONGODB_URI is required for the mongo driver", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown STORE_DRIVER %q", ErrInvalidConfig, c.StoreDriver)
	}

	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return fmt.Errorf("%w: PORTAL_TIMEZONE %q: %v", ErrInvalidConfig, c.Timezone, err)
	}
	c.Location = loc

	if c.RequestTimeout <= 0 {
		return fmt.Errorf("%w: REQUEST_TIMEOUT must be positive", ErrInvalidConfig)
	}

	origins := c.CORSOrigins[:0]
	for _, o := range c.CORSOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	c.CORSOrigins = origins
	return nil
}

// Addr is the fiber listen address.
func (c Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}
