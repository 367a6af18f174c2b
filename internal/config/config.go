package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

type (
	Config struct {
		Language       string `json:"language"`
		APIURL         string `json:"api_url"`
		GraphQLURL     string `json:"graphql_url"`
		TimeoutSeconds int    `json:"timeout_seconds"`
		PathFile       string `json:"path_file"`
	}

	// envOverrides are applied on top of the file for the running process only.
	envOverrides struct {
		Language       string `env:"TICKETY_LANG"`
		APIURL         string `env:"TICKETY_API_URL"`
		GraphQLURL     string `env:"TICKETY_GRAPHQL_URL"`
		TimeoutSeconds int    `env:"TICKETY_TIMEOUT_SECONDS"`
	}

	homeEnv struct {
		Home string `env:"TICKETY_HOME"`
	}
)

const (
	DirName               = ".tickety"
	FileName              = "config.json"
	DefaultAPIURL         = "https://api.github.com/"
	DefaultGraphQLURL     = "https://api.github.com/graphql"
	defaultLang           = LangEN
	defaultTimeoutSeconds = 30
)

// Dir returns the directory holding config.json and the stored credentials.
// TICKETY_HOME wins over the given home directory.
func Dir(homeDir string) (string, error) {
	var h homeEnv
	if err := env.Parse(&h); err != nil {
		return "", fmt.Errorf("error reading environment: %w", err)
	}
	if h.Home != "" {
		return h.Home, nil
	}
	if homeDir == "" {
		return "", errors.New("home directory is not defined")
	}
	return filepath.Join(homeDir, DirName), nil
}

// LoadConfig reads the config file at path, or config.json inside the
// directory at path, creating a default one when it does not exist yet.
func LoadConfig(path string) (*Config, error) {
	configPath := path
	if filepath.Ext(path) != ".json" {
		configPath = filepath.Join(path, FileName)
	}

	if _, err := os.Stat(configPath); err != nil {
		if os.IsNotExist(err) {
			return CreateDefaultConfig(configPath)
		}
		return nil, fmt.Errorf("error checking configuration file: %w", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading configuration file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error decoding configuration file: %w", err)
	}
	config.PathFile = configPath

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("loaded configuration is invalid: %w", err)
	}

	return &config, nil
}

func CreateDefaultConfig(path string) (*Config, error) {
	config := &Config{
		Language:       defaultLang,
		APIURL:         DefaultAPIURL,
		GraphQLURL:     DefaultGraphQLURL,
		TimeoutSeconds: defaultTimeoutSeconds,
		PathFile:       path,
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("error creating configuration directory: %w", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error encoding default configuration: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("error saving default configuration: %w", err)
	}

	return config, nil
}

func SaveConfig(config *Config) error {
	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration to save is invalid: %w", err)
	}

	if config.PathFile == "" {
		return errors.New("configuration file path is not defined")
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding configuration: %w", err)
	}

	if err := os.WriteFile(config.PathFile, data, 0644); err != nil {
		return fmt.Errorf("error saving configuration: %w", err)
	}

	return nil
}

// WithEnv returns a copy of the config with TICKETY_* environment overrides applied.
// The copy is meant for the running process and is never saved.
func (c *Config) WithEnv() (*Config, error) {
	var o envOverrides
	if err := env.Parse(&o); err != nil {
		return nil, fmt.Errorf("error reading environment: %w", err)
	}

	resolved := *c
	if o.Language != "" {
		resolved.Language = o.Language
	}
	if o.APIURL != "" {
		resolved.APIURL = o.APIURL
	}
	if o.GraphQLURL != "" {
		resolved.GraphQLURL = o.GraphQLURL
	}
	if o.TimeoutSeconds != 0 {
		resolved.TimeoutSeconds = o.TimeoutSeconds
	}

	if err := validateConfig(&resolved); err != nil {
		return nil, fmt.Errorf("environment overrides are invalid: %w", err)
	}
	return &resolved, nil
}

// Timeout is the HTTP client timeout for calls to the provider.
func (c *Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return defaultTimeoutSeconds * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func validateConfig(config *Config) error {
	if config.Language == "" {
		return errors.New("language cannot be empty")
	}
	if !IsSupportedLanguage(config.Language) {
		return fmt.Errorf("unsupported language: %s", config.Language)
	}
	if config.TimeoutSeconds < 0 {
		return errors.New("timeout_seconds cannot be negative")
	}
	for name, raw := range map[string]string{"api_url": config.APIURL, "graphql_url": config.GraphQLURL} {
		if raw == "" {
			continue
		}
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%s is not an absolute URL: %q", name, raw)
		}
	}
	return nil
}
