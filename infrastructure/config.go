package infrastructure

import (
	"fmt"
	"os"
	"strings"
	"time"

	env "github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/jobcrawler/internal/models"
)

const (
	EnvPrefix = "JOBCRAWLER_"

	ProductionAPIURL  = "https://jobcrawler-production.up.railway.app/api/"
	DevelopmentAPIURL = "http://localhost:5000/api/"
)

// Config holds the client settings read from JOBCRAWLER_* environment variables.
type Config struct {
	// Environment selects the default API address. Falls back to NODE_ENV.
	Environment string `env:"ENV"`

	// APIURL overrides the per-environment API address. The source is
	// appended verbatim, so it normally ends with a slash.
	APIURL string `env:"API_URL" validate:"omitempty,url"`

	ResponseFormat  models.ResponseFormat `env:"RESPONSE_FORMAT" envDefault:"envelope" validate:"oneof=envelope list"`
	RequestTimeout  time.Duration         `env:"REQUEST_TIMEOUT" envDefault:"30s" validate:"gt=0"`
	RequestInterval time.Duration         `env:"REQUEST_INTERVAL" envDefault:"0s"`
	UserAgent       string                `env:"USER_AGENT" envDefault:"jobcrawler-cli/1.0"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=trace debug info warn warning error fatal panic"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`
}

func LoadConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.Sanitize()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Sanitize fills derived defaults and clamps values that have no meaning.
func (c *Config) Sanitize() {
	if c.Environment == "" {
		c.Environment = os.Getenv("NODE_ENV")
	}
	c.Environment = strings.ToLower(strings.TrimSpace(c.Environment))
	if c.Environment == "" {
		c.Environment = "development"
	}

	c.APIURL = strings.TrimSpace(c.APIURL)
	c.LogLevel = strings.ToLower(c.LogLevel)
	c.LogFormat = strings.ToLower(c.LogFormat)
	c.ResponseFormat = models.ResponseFormat(strings.ToLower(string(c.ResponseFormat)))

	if c.RequestInterval < 0 {
		c.RequestInterval = 0
	}
}

func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func (c Config) IsProduction() bool {
	return c.Environment == "production" || c.Environment == "prod"
}

// BaseURL returns the address that sources are appended to.
func (c Config) BaseURL() string {
	if c.APIURL != "" {
		return c.APIURL
	}
	if c.IsProduction() {
		return ProductionAPIURL
	}
	return DevelopmentAPIURL
}
