package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Upload   UploadConfig
	Log      LogConfig
	Rate     RateConfig
}

type ServerConfig struct {
	Port           int
	TimeoutSeconds int
}

type DatabaseConfig struct {
	URL          string
	MaxOpenConns int
	MaxIdleConns int
}

type JWTConfig struct {
	Secret        string
	ExpireMinutes int
}

type UploadConfig struct {
	Dir string
}

type LogConfig struct {
	Level  string
	Pretty bool
}

type RateConfig struct {
	RPS   float64
	Burst int
}

// Expiry returns the access token lifetime.
func (c JWTConfig) Expiry() time.Duration {
	return time.Duration(c.ExpireMinutes) * time.Minute
}

// LoadConfig reads configuration from the environment, with an optional .env
// file in the working directory. Values are read once at startup; the returned
// Config is never mutated afterwards.
func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("SERVER_TIMEOUT_SECONDS", 30)
	v.SetDefault("DB_MAX_OPEN_CONNS", 25)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("ACCESS_TOKEN_EXPIRE_MINUTES", 60)
	v.SetDefault("UPLOAD_DIR", "uploads")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_PRETTY", false)
	v.SetDefault("RATE_LIMIT_RPS", 50.0)
	v.SetDefault("RATE_LIMIT_BURST", 100)

	// A missing .env file is fine, the environment still applies.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigParseError); ok {
			return nil, fmt.Errorf("failed to parse .env file: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:           v.GetInt("SERVER_PORT"),
			TimeoutSeconds: v.GetInt("SERVER_TIMEOUT_SECONDS"),
		},
		Database: DatabaseConfig{
			URL:          v.GetString("DATABASE_URL"),
			MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
		},
		JWT: JWTConfig{
			Secret:        v.GetString("SECRET_KEY"),
			ExpireMinutes: v.GetInt("ACCESS_TOKEN_EXPIRE_MINUTES"),
		},
		Upload: UploadConfig{
			Dir: v.GetString("UPLOAD_DIR"),
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Pretty: v.GetBool("LOG_PRETTY"),
		},
		Rate: RateConfig{
			RPS:   v.GetFloat64("RATE_LIMIT_RPS"),
			Burst: v.GetInt("RATE_LIMIT_BURST"),
		},
	}

	if cfg.Database.URL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("SECRET_KEY is required")
	}

	return cfg, nil
}
