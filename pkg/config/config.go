// Package config loads service configuration from the environment into an
// explicit Config value. Components receive the value through their
// constructors; nothing reads configuration ambiently after startup.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	AppName string
	Host    string
	Port    int
	Debug   bool

	DatabaseURL string

	JWTSecret      string
	JWTAlgorithm   string
	AccessTokenTTL time.Duration

	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	S3Bucket           string
	S3EndpointURL      string

	StripeAPIKey        string
	StripeWebhookSecret string

	AllowedHosts string
}

func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("APP_NAME", "streamly-backend")
	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("PORT", 8000)
	v.SetDefault("DEBUG", true)
	v.SetDefault("DATABASE_URL", "dev.db")
	v.SetDefault("JWT_SECRET", "changeme")
	v.SetDefault("JWT_ALGORITHM", "HS256")
	v.SetDefault("ACCESS_TOKEN_EXPIRE_MINUTES", 60*24*7)
	v.SetDefault("AWS_REGION", "")
	v.SetDefault("AWS_ACCESS_KEY_ID", "")
	v.SetDefault("AWS_SECRET_ACCESS_KEY", "")
	v.SetDefault("S3_BUCKET", "")
	v.SetDefault("S3_ENDPOINT_URL", "")
	v.SetDefault("STRIPE_API_KEY", "")
	v.SetDefault("STRIPE_WEBHOOK_SECRET", "")
	v.SetDefault("ALLOWED_HOSTS", "*")

	// .env is optional; deployments configure through the environment.
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig()

	v.AutomaticEnv()

	cfg := &Config{
		AppName:             v.GetString("APP_NAME"),
		Host:                v.GetString("HOST"),
		Port:                v.GetInt("PORT"),
		Debug:               v.GetBool("DEBUG"),
		DatabaseURL:         v.GetString("DATABASE_URL"),
		JWTSecret:           v.GetString("JWT_SECRET"),
		JWTAlgorithm:        v.GetString("JWT_ALGORITHM"),
		AccessTokenTTL:      time.Duration(v.GetInt("ACCESS_TOKEN_EXPIRE_MINUTES")) * time.Minute,
		AWSRegion:           v.GetString("AWS_REGION"),
		AWSAccessKeyID:      v.GetString("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey:  v.GetString("AWS_SECRET_ACCESS_KEY"),
		S3Bucket:            v.GetString("S3_BUCKET"),
		S3EndpointURL:       v.GetString("S3_ENDPOINT_URL"),
		StripeAPIKey:        v.GetString("STRIPE_API_KEY"),
		StripeWebhookSecret: v.GetString("STRIPE_WEBHOOK_SECRET"),
		AllowedHosts:        v.GetString("ALLOWED_HOSTS"),
	}

	if cfg.JWTAlgorithm != "HS256" {
		return nil, fmt.Errorf("unsupported JWT algorithm %q", cfg.JWTAlgorithm)
	}

	return cfg, nil
}

// Addr returns the host:port the HTTP server binds to.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// AllowedOrigins splits ALLOWED_HOSTS on commas. A single "*" means
// unrestricted.
func (c *Config) AllowedOrigins() []string {
	if c.AllowedHosts == "" {
		return []string{"*"}
	}
	parts := strings.Split(c.AllowedHosts, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			origins = append(origins, s)
		}
	}
	return origins
}
