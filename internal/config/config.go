package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
)

const envPrefix = "THEME_"

type Config struct {
	Primary       Primary            `koanf:"primary"`
	Server        ServerConfig       `koanf:"server"`
	Storefront    StorefrontConfig   `koanf:"storefront"`
	Retry         RetryConfig        `koanf:"retry"`
	Logger        LoggerConfig       `koanf:"logger"`
	Money         MoneyConfig        `koanf:"money"`
	Notifications NotificationConfig `koanf:"notifications"`
	Search        SearchConfig       `koanf:"search"`
	CORS          CORSConfig         `koanf:"cors"`
}

type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

type ServerConfig struct {
	Port           string        `koanf:"port" validate:"required"`
	ReadTimeout    time.Duration `koanf:"read_timeout" validate:"required"`
	WriteTimeout   time.Duration `koanf:"write_timeout" validate:"required"`
	IdleTimeout    time.Duration `koanf:"idle_timeout" validate:"required"`
	RequestTimeout time.Duration `koanf:"request_timeout" validate:"required"`
}

// StorefrontConfig holds the platform origin and the theme routes that the
// storefront exposes to scripts.
type StorefrontConfig struct {
	BaseURL       string        `koanf:"base_url" validate:"required,url"`
	CartAddURL    string        `koanf:"cart_add_url" validate:"required"`
	CartChangeURL string        `koanf:"cart_change_url" validate:"required"`
	CartURL       string        `koanf:"cart_url" validate:"required"`
	NewsletterURL string        `koanf:"newsletter_url" validate:"required"`
	Timeout       time.Duration `koanf:"timeout" validate:"required"`
	// ForwardCookies names the shopper cookies that identify the platform
	// cart and session. They are sent on every storefront call.
	ForwardCookies []string `koanf:"forward_cookies"`
}

// RetryConfig applies to idempotent storefront reads only.
type RetryConfig struct {
	BaseDelay  time.Duration `koanf:"base_delay"`
	MaxRetries int           `koanf:"max_retries" validate:"min=1"`
}

type LoggerConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format" validate:"omitempty,oneof=json text"`
}

type MoneyConfig struct {
	DefaultFormat string `koanf:"default_format" validate:"required"`
}

type NotificationConfig struct {
	TTL           time.Duration `koanf:"ttl" validate:"required"`
	SweepInterval time.Duration `koanf:"sweep_interval" validate:"required"`
	// SessionCookie scopes notifications to one browser.
	SessionCookie string `koanf:"session_cookie" validate:"required"`
}

type SearchConfig struct {
	MinQueryLength int           `koanf:"min_query_length" validate:"min=1"`
	Debounce       time.Duration `koanf:"debounce" validate:"required"`
}

type CORSConfig struct {
	AllowedOrigins []string `koanf:"allowed_origins" validate:"required,min=1"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"primary.env":                  "development",
		"server.port":                  "8080",
		"server.read_timeout":          "10s",
		"server.write_timeout":         "15s",
		"server.idle_timeout":          "60s",
		"server.request_timeout":       "10s",
		"storefront.cart_add_url":      "/cart/add",
		"storefront.cart_change_url":   "/cart/change",
		"storefront.cart_url":          "/cart",
		"storefront.newsletter_url":    "/contact",
		"storefront.timeout":           "5s",
		"storefront.forward_cookies":   []string{"cart", "cart_sig", "cart_ts", "cart_ver", "_secure_session_id", "localization"},
		"retry.base_delay":             "200ms",
		"retry.max_retries":            3,
		"logger.level":                 "info",
		"logger.format":                "json",
		"money.default_format":         "${{amount}}",
		"notifications.ttl":            "3s",
		"notifications.sweep_interval": "1s",
		"notifications.session_cookie": "theme_session",
		"search.min_query_length":      2,
		"search.debounce":              "300ms",
		"cors.allowed_origins":         []string{"*"},
	}
}

func LoadConfig() (*Config, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		logger.Error("failed to load defaults", "error", err)
		return nil, err
	}

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, envPrefix)),
			"__",
			".",
		)
	}), nil)
	if err != nil {
		logger.Error("failed to load environment variables", "error", err)
		return nil, err
	}

	mainConfig := &Config{}

	err = k.Unmarshal("", mainConfig)
	if err != nil {
		logger.Error("could not unmarshal main config", "error", err)
		return nil, err
	}

	validate := validator.New()

	err = validate.Struct(mainConfig)
	if err != nil {
		logger.Error("config validation failed", "error", err)
		return nil, err
	}

	return mainConfig, nil
}
