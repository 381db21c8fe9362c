package config

import (
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config carries everything main wires into services at construction time.
// Database credentials stay with database.Connect.
type Config struct {
	Host        string `env:"HOST" envDefault:"127.0.0.1"`
	Port        string `env:"PORT" envDefault:"3000"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Version     string `env:"VERSION" envDefault:"0.1.0"`

	JWTSecret         string        `env:"JWT_SECRET" envDefault:"change-me"`
	GameSessionTTL    time.Duration `env:"GAME_SESSION_TTL" envDefault:"2h"`
	AccountSessionTTL time.Duration `env:"ACCOUNT_SESSION_TTL" envDefault:"168h"`

	PayPalClientID     string `env:"PAYPAL_CLIENT_ID"`
	PayPalClientSecret string `env:"PAYPAL_CLIENT_SECRET"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

var defaultOrigins = []string{
	"http://localhost:3000",
	"http://localhost:3001",
	"http://localhost:3002",
	"https://quizmo.fun",
	"https://www.quizmo.fun",
	"https://mixmo.fun",
	"https://www.mixmo.fun",
	"https://funhub.fun",
	"https://www.funhub.fun",
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = defaultOrigins
	}
	return cfg, nil
}

func (c Config) IsDevelopment() bool {
	return strings.EqualFold(c.Environment, "development")
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

// OriginsCSV renders the allowlist the way the fiber CORS middleware wants it.
func (c Config) OriginsCSV() string {
	return strings.Join(c.AllowedOrigins, ",")
}
