package util

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Environment       string        `mapstructure:"ENVIRONMENT"`
	HTTPServerAddress string        `mapstructure:"HTTP_SERVER_ADDRESS"`
	AllowedOrigins    []string      `mapstructure:"ALLOWED_ORIGINS"`
	MaxMessageBytes   int           `mapstructure:"MAX_MESSAGE_BYTES"`
	ShutdownTimeout   time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
	LinkTargetBlank   bool          `mapstructure:"LINK_TARGET_BLANK"`
}

// LoadConfig reads app.env from the given directory and overrides it with
// environment variables. A missing app.env is not an error: defaults and the
// environment are used instead.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()

	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.SetDefault("ENVIRONMENT", EnvProduction)
	v.SetDefault("HTTP_SERVER_ADDRESS", "0.0.0.0:8080")
	v.SetDefault("ALLOWED_ORIGINS", "*")
	v.SetDefault("MAX_MESSAGE_BYTES", 64*1024)
	v.SetDefault("SHUTDOWN_TIMEOUT", 5*time.Second)
	v.SetDefault("LINK_TARGET_BLANK", true)

	v.AutomaticEnv()

	err = v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return
		}
		err = nil
	}

	err = v.Unmarshal(&config)
	if err != nil {
		return
	}

	config.AllowedOrigins = splitOrigins(config.AllowedOrigins)

	if config.MaxMessageBytes <= 0 {
		err = fmt.Errorf("MAX_MESSAGE_BYTES must be positive, got %d", config.MaxMessageBytes)
	}

	return
}

// splitOrigins normalizes "a, b" style values, which viper may hand over
// as a single element, into trimmed non-empty origins.
func splitOrigins(in []string) []string {
	out := make([]string, 0, len(in))

	for _, item := range in {
		for _, o := range strings.Split(item, ",") {
			if o = strings.TrimSpace(o); o != "" {
				out = append(out, o)
			}
		}
	}

	return out
}

// IsDevelopment reports whether the service runs in the development environment.
func (config *Config) IsDevelopment() bool {
	return config.Environment == EnvDevelopment
}

// ExtractHostPort parses the HTTP server address and returns the host and port components.
// The address may come with or without a scheme. If no port is specified, port will be
// an empty string.
func (config *Config) ExtractHostPort() (host string, port string, err error) {
	raw := config.HTTPServerAddress
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		err = fmt.Errorf("error parsing http server url: %w", err)
		return
	}

	host = u.Hostname()
	port = u.Port()

	if host == "" {
		err = fmt.Errorf("http server url %q has no host", config.HTTPServerAddress)
	}

	return
}

// ListenAddress returns the "host:port" pair to bind the HTTP server to.
// Without an explicit port, the default port of the scheme is used.
func (config *Config) ListenAddress() (string, error) {
	host, port, err := config.ExtractHostPort()
	if err != nil {
		return "", err
	}

	if port == "" {
		port = "80"
		if strings.HasPrefix(config.HTTPServerAddress, "https://") {
			port = "443"
		}
	}

	return net.JoinHostPort(host, port), nil
}
