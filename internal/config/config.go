package config

import (
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/garrettladley/upay/internal/xslog"
)

const DefaultBaseURL = "https://api.upay-sistema.onrender.com"

type Config struct {
	APIKey        string        `env:"UPAY_API_KEY"`
	BaseURL       string        `env:"UPAY_BASE_URL" envDefault:"https://api.upay-sistema.onrender.com"`
	APIVersion    string        `env:"UPAY_API_VERSION" envDefault:"v1"`
	Timeout       time.Duration `env:"UPAY_TIMEOUT" envDefault:"30s"`
	WebhookSecret string        `env:"UPAY_WEBHOOK_SECRET"`
	LogLevel      xslog.Level   `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat     xslog.Format  `env:"LOG_FORMAT" envDefault:"text"`
}

func Read() (Config, error) {
	return env.ParseAs[Config]()
}

// ReadFrom parses configuration from the given environment instead of the process one.
func ReadFrom(environ map[string]string) (Config, error) {
	return env.ParseAsWithOptions[Config](env.Options{Environment: environ})
}
