package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Store drivers
const (
	StoreMemory = "memory"
	StoreOracle = "oracle"
)

type Config struct {
	Server    ServerConfig
	Store     StoreConfig
	DB        DBConfig
	Redis     RedisConfig
	CacheTTLs CacheTTLConfig
	Logger    LoggerConfig
	Catalog   CatalogConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// StoreConfig selects where the API reads topics from.
type StoreConfig struct {
	Driver string
}

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

// CacheTTLConfig holds Go duration strings such as "10m".
type CacheTTLConfig struct {
	Topic   string
	Listing string
}

type LoggerConfig struct {
	Level string
	Env   string
}

type CatalogConfig struct {
	// Strict refuses to start the API when the loaded content has validation errors.
	Strict bool
	// MigrationsDir overrides the embedded migrations when set.
	MigrationsDir string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.read_timeout", 20)
	v.SetDefault("server.write_timeout", 20)
	v.SetDefault("store.driver", StoreMemory)
	v.SetDefault("db.port", 1521)
	v.SetDefault("redis.db", 0)
	v.SetDefault("cache_ttls.topic", "30m")
	v.SetDefault("cache_ttls.listing", "10m")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.env", "development")
	v.SetDefault("catalog.strict", true)
}

func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Add config paths based on environment
	if os.Getenv("ENV") == "test" {
		v.AddConfigPath("../../configs")
		v.AddConfigPath("../../")
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  time.Duration(v.GetInt("server.read_timeout")) * time.Second,
			WriteTimeout: time.Duration(v.GetInt("server.write_timeout")) * time.Second,
		},
		Store: StoreConfig{
			Driver: strings.ToLower(v.GetString("store.driver")),
		},
		DB: DBConfig{
			Host:     v.GetString("db.host"),
			Port:     v.GetInt("db.port"),
			User:     v.GetString("db.user"),
			Password: v.GetString("db.password"),
			DBName:   v.GetString("db.name"),
		},
		Redis: RedisConfig{
			Address:  v.GetString("redis.address"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		CacheTTLs: CacheTTLConfig{
			Topic:   v.GetString("cache_ttls.topic"),
			Listing: v.GetString("cache_ttls.listing"),
		},
		Logger: LoggerConfig{
			Level: v.GetString("logger.level"),
			Env:   v.GetString("logger.env"),
		},
		Catalog: CatalogConfig{
			Strict:        v.GetBool("catalog.strict"),
			MigrationsDir: v.GetString("catalog.migrations_dir"),
		},
	}

	switch cfg.Store.Driver {
	case StoreMemory, StoreOracle:
	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.Store.Driver)
	}

	return cfg, nil
}

// GetDSN builds the go-ora connection URL.
func (c *Config) GetDSN() string {
	return fmt.Sprintf("oracle://%s:%s@%s:%d/%s",
		c.DB.User,
		c.DB.Password,
		c.DB.Host,
		c.DB.Port,
		c.DB.DBName,
	)
}

// ParseTTLStringOrDefault parses a duration string, falling back when it is
// empty, malformed or not positive.
func (c *Config) ParseTTLStringOrDefault(ttl string, defaultTTL time.Duration) time.Duration {
	if ttl == "" {
		return defaultTTL
	}
	d, err := time.ParseDuration(ttl)
	if err != nil || d <= 0 {
		return defaultTTL
	}
	return d
}
