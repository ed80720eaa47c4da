// Package config contains code to set the default values and read
// config files to be used throughout the whole application
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"strings"
	"time"

	"second-brain/api/pkg/util"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	configFile = pflag.String("config", "", "Path to a config.toml file")
	_          = pflag.Int("port", 0, "Port to listen on")

	validLogLevels = []string{"debug", "info", "warn", "error", "fatal"}
	validDrivers   = []string{"sqlite", "postgres"}
)

var defaultOrigins = []string{
	"http://localhost:5173",
	"http://localhost:5174",
	"http://localhost:3000",
}

type App struct {
	LogLevel string
	Env      string
}

func (a App) Production() bool {
	return a.Env == "production"
}

type Host struct {
	Port int
	// Proxies allowed to set X-Forwarded-For and X-Forwarded-Proto. Empty
	// means the peer address is the client.
	TrustedProxies []string
}

type Database struct {
	Driver         string
	URL            string
	ConnectTimeout time.Duration
	IdleTimeout    time.Duration
}

type JWT struct {
	Secret string
	// Zero means issued tokens never expire
	TTL time.Duration
}

type RateLimit struct {
	RequestsPerSecond float64
	Burst             int
}

type Config struct {
	App         App
	Host        Host
	Database    Database
	JWT         JWT
	CORSOrigins []string
	RateLimit   RateLimit
}

// Setup prepares everything config-related so that the app can
// start working. Function will return an error if something
// is critically wrong and the application can't run because of
// that.
func Setup() (*Config, error) {
	pflag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file, %w", err)
	}

	v := viper.New()
	if err := v.BindPFlag("host.port", pflag.Lookup("port")); err != nil {
		return nil, err
	}

	return load(v, *configFile)
}

func load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("toml")
		v.AddConfigPath(".")
	}

	//
	// ENVS
	//
	v.BindEnv("app.log_level", "LOG_LEVEL")
	v.BindEnv("app.env", "APP_ENV")

	v.BindEnv("host.port", "PORT")
	v.BindEnv("host.trusted_proxies", "TRUSTED_PROXIES")

	v.BindEnv("database.driver", "DB_DRIVER")
	v.BindEnv("database.url", "DB_URL")
	v.BindEnv("database.connect_timeout", "DB_CONNECT_TIMEOUT")
	v.BindEnv("database.idle_timeout", "DB_IDLE_TIMEOUT")

	v.BindEnv("jwt.secret", "JWT_SECRET")
	v.BindEnv("jwt.ttl", "JWT_TTL")

	v.BindEnv("cors.frontend_url", "FRONTEND_URL")
	v.BindEnv("cors.origins", "CORS_ORIGINS")

	v.BindEnv("rate_limit.rps", "RATE_LIMIT_RPS")
	v.BindEnv("rate_limit.burst", "RATE_LIMIT_BURST")

	//
	// Defaults
	//
	v.SetDefault("app.log_level", "info")
	v.SetDefault("app.env", "development")

	v.SetDefault("host.port", 3000)

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.connect_timeout", 5*time.Second)
	v.SetDefault("database.idle_timeout", 45*time.Second)

	v.SetDefault("jwt.ttl", 0)

	v.SetDefault("cors.origins", defaultOrigins)

	v.SetDefault("rate_limit.rps", 1)
	v.SetDefault("rate_limit.burst", 5)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file, %w", err)
		}
	}

	cfg := &Config{
		App: App{
			LogLevel: strings.ToLower(v.GetString("app.log_level")),
			Env:      strings.ToLower(v.GetString("app.env")),
		},
		Host: Host{
			Port:           v.GetInt("host.port"),
			TrustedProxies: splitList(v.GetStringSlice("host.trusted_proxies")),
		},
		Database: Database{
			Driver:         strings.ToLower(v.GetString("database.driver")),
			URL:            v.GetString("database.url"),
			ConnectTimeout: v.GetDuration("database.connect_timeout"),
			IdleTimeout:    v.GetDuration("database.idle_timeout"),
		},
		JWT: JWT{
			Secret: v.GetString("jwt.secret"),
			TTL:    v.GetDuration("jwt.ttl"),
		},
		CORSOrigins: origins(v.GetStringSlice("cors.origins"), v.GetString("cors.frontend_url")),
		RateLimit: RateLimit{
			RequestsPerSecond: v.GetFloat64("rate_limit.rps"),
			Burst:             v.GetInt("rate_limit.burst"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if !slices.Contains(validLogLevels, c.App.LogLevel) {
		return errors.New("invalid log level provided")
	}

	if c.Host.Port <= 0 || c.Host.Port > 65535 {
		return errors.New("invalid port provided")
	}

	if _, err := util.ParseProxies(c.Host.TrustedProxies); err != nil {
		return fmt.Errorf("invalid trusted proxies, %w", err)
	}

	if !slices.Contains(validDrivers, c.Database.Driver) {
		return errors.New("invalid database driver provided")
	}

	if c.Database.URL == "" {
		return errors.New("no database URL provided, set DB_URL")
	}

	if c.Database.ConnectTimeout <= 0 {
		return errors.New("database.connect_timeout must be bigger than 0")
	}

	if c.Database.IdleTimeout <= 0 {
		return errors.New("database.idle_timeout must be bigger than 0")
	}

	if c.JWT.Secret == "" {
		return errors.New("no JWT secret provided, set JWT_SECRET")
	}

	if c.JWT.TTL < 0 {
		return errors.New("jwt.ttl can't be negative")
	}

	if len(c.CORSOrigins) == 0 {
		return errors.New("at least one CORS origin is required")
	}

	if c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0 {
		return errors.New("rate limit values must be bigger than 0")
	}

	return nil
}

// origins splits comma separated entries and appends the frontend URL
func origins(list []string, frontend string) []string {
	var out []string
	for _, o := range splitList(slices.Concat(list, []string{frontend})) {
		o = strings.TrimRight(o, "/")
		if o != "" && !slices.Contains(out, o) {
			out = append(out, o)
		}
	}

	return out
}

// splitList flattens comma separated entries, dropping blanks and repeats
func splitList(list []string) []string {
	var out []string
	for _, entry := range list {
		for _, item := range strings.Split(entry, ",") {
			item = strings.TrimSpace(item)
			if item != "" && !slices.Contains(out, item) {
				out = append(out, item)
			}
		}
	}

	return out
}
