package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	StoreBackendMemory   = "memory"
	StoreBackendDynamoDB = "dynamodb"
)

// Config holds application settings read from the environment (and .env,
// which cmd/api autoloads before viper reads the process env).
type Config struct {
	Port            int
	GinMode         string
	LogLevel        string
	ShutdownTimeout time.Duration

	StoreBackend string
	StoreLatency time.Duration
	SeedData     bool
	TablePrefix  string

	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	DynamoDBEndpoint   string

	GeminiAPIKey string
	GeminiModel  string
	LLMMock      bool

	MercadoPagoAccessToken    string
	MercadoPagoTestPayerEmail string
	PaymentGatewayMock        bool
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", 8080)
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("STORE_BACKEND", StoreBackendMemory)
	v.SetDefault("STORE_LATENCY", "150ms")
	v.SetDefault("SEED_DATA", true)
	v.SetDefault("TABLE_PREFIX", "fieldservice_")
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("AWS_ACCESS_KEY_ID", "local")
	v.SetDefault("AWS_SECRET_ACCESS_KEY", "local")
	v.SetDefault("DYNAMODB_ENDPOINT", "")
	v.SetDefault("GEMINI_API_KEY", "")
	v.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	v.SetDefault("LLM_MOCK", false)
	v.SetDefault("MERCADOPAGO_ACCESS_TOKEN", "")
	v.SetDefault("MERCADOPAGO_TEST_PAYER_EMAIL", "")
	v.SetDefault("PAYMENT_GATEWAY_MOCK", false)
}

// Load reads the configuration from the process environment.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	cfg := &Config{
		Port:                      v.GetInt("PORT"),
		GinMode:                   v.GetString("GIN_MODE"),
		LogLevel:                  strings.ToLower(v.GetString("LOG_LEVEL")),
		ShutdownTimeout:           v.GetDuration("SHUTDOWN_TIMEOUT"),
		StoreBackend:              strings.ToLower(strings.TrimSpace(v.GetString("STORE_BACKEND"))),
		StoreLatency:              v.GetDuration("STORE_LATENCY"),
		SeedData:                  v.GetBool("SEED_DATA"),
		TablePrefix:               v.GetString("TABLE_PREFIX"),
		AWSRegion:                 v.GetString("AWS_REGION"),
		AWSAccessKeyID:            v.GetString("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey:        v.GetString("AWS_SECRET_ACCESS_KEY"),
		DynamoDBEndpoint:          v.GetString("DYNAMODB_ENDPOINT"),
		GeminiAPIKey:              v.GetString("GEMINI_API_KEY"),
		GeminiModel:               v.GetString("GEMINI_MODEL"),
		LLMMock:                   v.GetBool("LLM_MOCK"),
		MercadoPagoAccessToken:    v.GetString("MERCADOPAGO_ACCESS_TOKEN"),
		MercadoPagoTestPayerEmail: v.GetString("MERCADOPAGO_TEST_PAYER_EMAIL"),
		PaymentGatewayMock:        v.GetBool("PAYMENT_GATEWAY_MOCK"),
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid PORT %d", cfg.Port)
	}
	switch cfg.StoreBackend {
	case StoreBackendMemory, StoreBackendDynamoDB:
	default:
		return nil, fmt.Errorf("invalid STORE_BACKEND %q (want %s or %s)", cfg.StoreBackend, StoreBackendMemory, StoreBackendDynamoDB)
	}
	if cfg.StoreLatency < 0 {
		cfg.StoreLatency = 0
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}
	return cfg, nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
