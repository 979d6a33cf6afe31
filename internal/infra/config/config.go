package config

import (
	"log"

	"github.com/kelseyhightower/envconfig"
)

// AppConfig describes the bot configuration.
type AppConfig struct {
	AppEnv string `envconfig:"APP_ENV" default:"dev"`
	TZ     string `envconfig:"TZ" default:"Europe/Madrid"`

	Telegram struct {
		Token       string `envconfig:"TG_BOT_TOKEN"`
		PollTimeout int    `envconfig:"TG_POLL_TIMEOUT" default:"60"`
	} `envconfig:""`

	Mongo struct {
		URI      string `envconfig:"MONGODB_URI"`
		Database string `envconfig:"MONGODB_DATABASE" default:"polesbot"`
	} `envconfig:""`

	RedisAddr string `envconfig:"REDIS_ADDR"`

	OpsAddr string `envconfig:"OPS_ADDR" default:":9090"`
}

// Load reads the config from the environment.
func Load() AppConfig {
	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	return cfg
}
