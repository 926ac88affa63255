package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Port              string        `mapstructure:"PORT" validate:"required,numeric"`
	GinMode           string        `mapstructure:"GIN_MODE" validate:"oneof=debug release test"`
	MongoURI          string        `mapstructure:"MONGO_URI" validate:"required"`
	MongoDatabase     string        `mapstructure:"MONGO_DATABASE" validate:"required"`
	MongoForceIPv4    bool          `mapstructure:"MONGO_FORCE_IPV4"`
	HealthPingTimeout time.Duration `mapstructure:"HEALTH_PING_TIMEOUT" validate:"gt=0"`

	// Firebase service account. Any one of the three credential sources is enough;
	// with none of them the auth middleware is not available.
	FirebaseProjectID                string `mapstructure:"FIREBASE_PROJECT_ID"`
	FirebaseClientEmail              string `mapstructure:"FIREBASE_CLIENT_EMAIL"`
	FirebasePrivateKey               string `mapstructure:"FIREBASE_PRIVATE_KEY"`
	GoogleApplicationCredentials     string `mapstructure:"GOOGLE_APPLICATION_CREDENTIALS"`
	FirebaseServiceAccountJSONBase64 string `mapstructure:"FIREBASE_SERVICE_ACCOUNT_JSON_BASE64"`

	RequireAuth bool   `mapstructure:"REQUIRE_AUTH"`
	ClientURL   string `mapstructure:"CLIENT_URL"`
}

// envKeys lists every variable bound into Config. MONGO_URI also accepts
// MONGO_URI_TEST, which older deployments still set.
var envKeys = [][]string{
	{"PORT"},
	{"GIN_MODE"},
	{"MONGO_URI", "MONGO_URI", "MONGO_URI_TEST"},
	{"MONGO_DATABASE"},
	{"MONGO_FORCE_IPV4"},
	{"HEALTH_PING_TIMEOUT"},
	{"FIREBASE_PROJECT_ID"},
	{"FIREBASE_CLIENT_EMAIL"},
	{"FIREBASE_PRIVATE_KEY"},
	{"GOOGLE_APPLICATION_CREDENTIALS"},
	{"FIREBASE_SERVICE_ACCOUNT_JSON_BASE64"},
	{"REQUIRE_AUTH"},
	{"CLIENT_URL"},
}

// LoadConfig loads configuration from environment variables using Viper.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("PORT", "3000")
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("MONGO_DATABASE", "tuition_media")
	v.SetDefault("MONGO_FORCE_IPV4", true)
	v.SetDefault("HEALTH_PING_TIMEOUT", "5s")
	v.SetDefault("REQUIRE_AUTH", false)

	for _, keys := range envKeys {
		if err := v.BindEnv(keys...); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", keys[0], err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.FirebasePrivateKey = strings.ReplaceAll(cfg.FirebasePrivateKey, `\n`, "\n")
	// gin modes are lower case; accept "Release" and the like.
	cfg.GinMode = strings.ToLower(strings.TrimSpace(cfg.GinMode))

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if cfg.RequireAuth && !cfg.HasFirebaseCredentials() {
		return nil, fmt.Errorf("invalid config: REQUIRE_AUTH is set but no Firebase credentials are configured")
	}

	return &cfg, nil
}

// HasFirebaseCredentials reports whether any Firebase credential source is set.
func (c *Config) HasFirebaseCredentials() bool {
	if c.GoogleApplicationCredentials != "" || c.FirebaseServiceAccountJSONBase64 != "" {
		return true
	}
	return c.FirebaseProjectID != "" && c.FirebaseClientEmail != "" && c.FirebasePrivateKey != ""
}

// AllowedOrigins splits CLIENT_URL on commas. An empty result means every
// origin is allowed.
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.ClientURL, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// IsRelease reports whether gin runs in release mode.
func (c *Config) IsRelease() bool {
	return c.GinMode == "release"
}
