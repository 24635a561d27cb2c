package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Log         LogConfig         `mapstructure:"log"`
	Session     SessionConfig     `mapstructure:"session"`
	Portal      PortalConfig      `mapstructure:"portal"`
	Preferences PreferencesConfig `mapstructure:"preferences"`
	Database    DatabaseConfig    `mapstructure:"database"`
	S3          S3Config          `mapstructure:"s3"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
	// SecureCookies marks the session and browser cookies Secure. Enable behind TLS.
	SecureCookies bool `mapstructure:"secure_cookies"`
}

type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

// SessionConfig configures the signed cookie that stands in for the
// browser's isLoggedIn/currentUser keys.
type SessionConfig struct {
	Secret     string        `mapstructure:"secret"`
	Expiration time.Duration `mapstructure:"expiration"`
	CookieName string        `mapstructure:"cookie_name"`
}

// PortalConfig groups the knobs of the portal pages themselves.
type PortalConfig struct {
	// SubmitDelay is the simulated latency of an assignment submission.
	SubmitDelay          time.Duration `mapstructure:"submit_delay"`
	AlertDuration        time.Duration `mapstructure:"alert_duration"`
	WelcomeAlertDuration time.Duration `mapstructure:"welcome_alert_duration"`
	// Timezone decides where "today" starts and ends. "Local" uses the host zone.
	Timezone string `mapstructure:"timezone"`
}

// Location resolves Timezone, falling back to time.Local.
func (p PortalConfig) Location() (*time.Location, error) {
	if p.Timezone == "" || p.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(p.Timezone)
}

// PreferencesConfig selects the backend for per-session preferences.
type PreferencesConfig struct {
	Driver   string `mapstructure:"driver"` // "bolt" or "mongo"
	BoltPath string `mapstructure:"bolt_path"`
}

type DatabaseConfig struct {
	URI  string `mapstructure:"uri"`
	Name string `mapstructure:"name"`
}

type S3Config struct {
	Enabled         bool   `mapstructure:"enabled"`
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	BucketName      string `mapstructure:"bucket_name"`
	UseSSL          bool   `mapstructure:"use_ssl"`
}

var ErrMissingSessionSecret = errors.New("session.secret must be set")

// LoadConfig reads configuration from file or environment variables.
// A .env file in the working directory, if present, is loaded first so its
// values are visible to the environment lookups.
func LoadConfig(path string) (config Config, err error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// server.address -> SERVER_ADDRESS, portal.submit_delay -> PORTAL_SUBMIT_DELAY
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	setDefaults(v)

	err = v.ReadInConfig()
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		err = nil
	} else if err != nil {
		return
	}

	// AutomaticEnv only applies to keys viper already knows about, so
	// secrets without a default need an explicit binding.
	_ = v.BindEnv("session.secret")
	_ = v.BindEnv("s3.access_key_id")
	_ = v.BindEnv("s3.secret_access_key")

	if err = v.Unmarshal(&config); err != nil {
		return
	}

	if config.Session.Secret == "" {
		return config, ErrMissingSessionSecret
	}
	if _, err = config.Portal.Location(); err != nil {
		return
	}
	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.secure_cookies", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
	v.SetDefault("session.expiration", "24h")
	v.SetDefault("session.cookie_name", "portal_session")
	v.SetDefault("portal.submit_delay", "1500ms")
	v.SetDefault("portal.alert_duration", "5s")
	v.SetDefault("portal.welcome_alert_duration", "3s")
	v.SetDefault("portal.timezone", "Local")
	v.SetDefault("preferences.driver", "bolt")
	v.SetDefault("preferences.bolt_path", "data/preferences.db")
	v.SetDefault("database.uri", "mongodb://localhost:27017")
	v.SetDefault("database.name", "student_portal")
	v.SetDefault("s3.enabled", false)
	v.SetDefault("s3.use_ssl", true)
}
