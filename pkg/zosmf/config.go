package zosmf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config represents client configuration for building a z/OSMF session.
//
// # Authentication
//
// Credentials are not required to construct a session: most deployments
// authenticate once via Login (basic auth against the z/OSMF authenticate
// service), after which the session cookie issued by the server is carried
// automatically. Username/Password in the Config are used as a default for
// Login when it is called without arguments by helpers, and may be left
// empty.
//
// # Timeouts and retries
//
// Per-request deadlines are controlled by the context passed to each
// operation; the client itself never retries. RetryMax and the wait bounds
// exist for callers that explicitly want transient failures (>=500 and
// connection errors) retried at the transport level; they default to off.
type Config struct {
	// BaseURL: base URL of the z/OSMF instance
	// (e.g., "https://zosmf.mainframe.example.com"). A trailing slash is
	// trimmed by the client constructor.
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`

	// Username and Password are the default credentials for Login.
	Username string `mapstructure:"username" yaml:"username,omitempty"`
	Password string `mapstructure:"password" yaml:"password,omitempty"`

	// RetryMax: maximum number of transport-level retries. 0 (the default)
	// disables retrying entirely; every failure is surfaced immediately.
	RetryMax int `mapstructure:"retry_max" yaml:"retry_max,omitempty"`
	// RetryWaitMin: minimum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMin time.Duration `mapstructure:"retry_wait_min" yaml:"retry_wait_min,omitempty"`
	// RetryWaitMax: maximum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMax time.Duration `mapstructure:"retry_wait_max" yaml:"retry_wait_max,omitempty"`

	// Debug enables verbose request/response logging when a Logger is set.
	Debug bool `mapstructure:"debug" yaml:"debug,omitempty"`
	// UserAgent overrides the default User-Agent header.
	UserAgent string `mapstructure:"user_agent" yaml:"user_agent,omitempty"`

	// Logger: optional structured logger used by the transport layer.
	Logger Logger `mapstructure:"-" yaml:"-"`
}

// LoadConfig reads a Config from a YAML or JSON file, with environment
// variable overrides under the ZOSMF_ prefix (e.g. ZOSMF_BASE_URL).
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("ZOSMF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv alone does not surface env-only keys through Unmarshal;
	// each key must be bound so ZOSMF_USERNAME works without a username
	// entry in the file.
	for _, key := range []string{
		"base_url", "username", "password",
		"retry_max", "retry_wait_min", "retry_wait_max",
		"debug", "user_agent",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("binding environment variable for %q: %w", key, err)
		}
	}

	err := v.ReadInConfig()
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var config Config

	err = v.Unmarshal(&config)
	if err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if config.BaseURL == "" {
		return nil, ErrBaseURLRequired
	}

	return &config, nil
}

// WriteFile persists the Config as YAML. Parent directories are created as
// needed and the file is written with owner-only permissions, since it may
// contain credentials.
func (c *Config) WriteFile(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	err = os.MkdirAll(filepath.Dir(path), 0o700)
	if err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	err = os.WriteFile(path, data, 0o600)
	if err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
