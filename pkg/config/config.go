package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "CARTWORKS"

	EnvAppEnv = "CARTWORKS_APP_ENV"
	EnvPort   = "CARTWORKS_APP_PORT"

	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

type Config struct {
	App    AppConfig
	Server ServerConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"CARTWORKS_APP_ENV" required:"true"`
	Port         string `envconfig:"CARTWORKS_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"CARTWORKS_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"CARTWORKS_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type ServerConfig struct {
	ReadTimeout       time.Duration `envconfig:"CARTWORKS_SERVER_READ_TIMEOUT" default:"10s"`
	WriteTimeout      time.Duration `envconfig:"CARTWORKS_SERVER_WRITE_TIMEOUT" default:"15s"`
	IdleTimeout       time.Duration `envconfig:"CARTWORKS_SERVER_IDLE_TIMEOUT" default:"60s"`
	ReadHeaderTimeout time.Duration `envconfig:"CARTWORKS_SERVER_READ_HEADER_TIMEOUT" default:"5s"`
}
