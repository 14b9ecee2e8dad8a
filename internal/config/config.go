package config

import (
	"errors"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/spf13/viper"
)

const defaultJWTSecret = "catalog_dev_secret"

var (
	// *Config snapshot; readers never lock
	appConfig  atomic.Value
	configMu   sync.Mutex
	configDir  = "config"
	configFile string
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Download  DownloadConfig  `mapstructure:"download"`
	Redis     RedisConfig     `mapstructure:"redis"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

type ServerConfig struct {
	Port               string   `mapstructure:"port"`
	Mode               string   `mapstructure:"mode"`
	CORSOrigins        []string `mapstructure:"cors_origins"`
	CORSCredentials    bool     `mapstructure:"cors_credentials"`
	MaxBodyMB          int      `mapstructure:"max_body_mb"`
	StaticCacheControl string   `mapstructure:"static_cache_control"`
	// comma, semicolon or whitespace separated; empty trusts no proxy
	TrustedProxies string `mapstructure:"trusted_proxies"`
}

type DatabaseConfig struct {
	Type     string `mapstructure:"type"`     // sqlite, postgres, mysql
	Filename string `mapstructure:"filename"` // for sqlite
	URL      string `mapstructure:"url"`      // full DSN, takes precedence over host/port/...
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSL      bool   `mapstructure:"ssl"`
}

type JWTConfig struct {
	Secret          string `mapstructure:"secret"`
	ExpirationHours int    `mapstructure:"expiration_hours"`
}

type StorageConfig struct {
	Path      string `mapstructure:"path"`
	URLPrefix string `mapstructure:"url_prefix"`
}

type DownloadConfig struct {
	MaxAttempts int           `mapstructure:"max_attempts"`
	RetryDelay  time.Duration `mapstructure:"retry_delay"`
	Timeout     time.Duration `mapstructure:"timeout"`
	UserAgent   string        `mapstructure:"user_agent"`
	ChunkSize   int           `mapstructure:"chunk_size"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

type RateLimitConfig struct {
	Enabled       bool    `mapstructure:"enabled"`
	AuthRPS       float64 `mapstructure:"auth_rps"`
	AuthBurst     int     `mapstructure:"auth_burst"`
	DownloadRPS   float64 `mapstructure:"download_rps"`
	DownloadBurst int     `mapstructure:"download_burst"`
}

// Get returns a copy of the current configuration.
func Get() Config {
	val := appConfig.Load()
	if val == nil {
		return Config{}
	}
	c, ok := val.(*Config)
	if !ok {
		return Config{}
	}
	return *c
}

func GetConfigDir() string {
	return configDir
}

// UsedConfigFile returns the config file viper loaded, or "" when only
// defaults and environment variables were used.
func UsedConfigFile() string {
	return configFile
}

// InitConfig loads config.yaml from customConfigDir (or ./config and .),
// applies CATALOG_* environment overrides and stores the result.
func InitConfig(customConfigDir string) error {
	v, err := initViper(customConfigDir)
	if err != nil {
		return err
	}
	return loadAndStore(v)
}

func initViper(customConfigDir string) (*viper.Viper, error) {
	v := viper.New()

	customConfigDir = strings.TrimSpace(customConfigDir)
	if customConfigDir == "" {
		customConfigDir = "config"
	}
	configDir = customConfigDir

	v.AddConfigPath(configDir)
	v.AddConfigPath(".")
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetDefault("server.port", "5000")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.cors_origins", []string{"*"})
	v.SetDefault("server.cors_credentials", true)
	v.SetDefault("server.max_body_mb", 2)
	v.SetDefault("server.static_cache_control", "public, max-age=86400")
	v.SetDefault("server.trusted_proxies", "")
	v.SetDefault("database.type", "")
	v.SetDefault("database.filename", "database/app.db")
	v.SetDefault("database.url", "")
	v.SetDefault("database.host", "127.0.0.1")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.name", "catalog")
	v.SetDefault("database.ssl", false)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiration_hours", 24)
	v.SetDefault("storage.path", "saved_images")
	v.SetDefault("storage.url_prefix", "/saved_images/")
	v.SetDefault("download.max_attempts", 3)
	v.SetDefault("download.retry_delay", 2*time.Second)
	v.SetDefault("download.timeout", 60*time.Second)
	v.SetDefault("download.user_agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")
	v.SetDefault("download.chunk_size", 8192)
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "127.0.0.1:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.prefix", "catalog")
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.auth_rps", 1.0)
	v.SetDefault("rate_limit.auth_burst", 10)
	v.SetDefault("rate_limit.download_rps", 0.2)
	v.SetDefault("rate_limit.download_burst", 5)

	configFile = ""
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	} else {
		configFile = v.ConfigFileUsed()
	}

	// server.port -> CATALOG_SERVER_PORT
	v.SetEnvPrefix("CATALOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v, nil
}

func loadAndStore(v *viper.Viper) error {
	configMu.Lock()
	defer configMu.Unlock()

	var tempConfig Config
	if err := v.Unmarshal(&tempConfig); err != nil {
		return err
	}

	applyDatabaseURL(&tempConfig.Database, os.Getenv("DATABASE_URL"))

	if tempConfig.Server.Mode == "release" {
		if tempConfig.JWT.Secret == "" || tempConfig.JWT.Secret == defaultJWTSecret {
			return errors.New("release mode requires a non-default jwt.secret (set CATALOG_JWT_SECRET)")
		}
	} else if tempConfig.JWT.Secret == "" {
		tempConfig.JWT.Secret = defaultJWTSecret
	}

	appConfig.Store(&tempConfig)
	return nil
}

// applyDatabaseURL selects the networked engine when the deployment only
// provides DATABASE_URL. An explicit database.type always wins.
func applyDatabaseURL(db *DatabaseConfig, databaseURL string) {
	databaseURL = strings.TrimSpace(databaseURL)
	if db.URL == "" {
		db.URL = databaseURL
	}
	if db.Type != "" {
		return
	}
	if db.URL != "" {
		db.Type = "postgres"
		return
	}
	db.Type = "sqlite"
}
