package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/defistate/soroswap-client-go/networks"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override values read from the config file.
const (
	EnvAPIKey  = "SOROSWAP_API_KEY"
	EnvBaseURL = "SOROSWAP_BASE_URL"
	EnvNetwork = "SOROSWAP_NETWORK"
)

// ClientConfig holds the settings needed to talk to the Soroswap API.
type ClientConfig struct {
	APIKey  string           `yaml:"apiKey"`
	BaseURL string           `yaml:"baseUrl"`
	Network networks.Network `yaml:"network"`
	Timeout time.Duration    `yaml:"timeout"`
}

// LoadConfig reads the YAML file at path, if any, and then applies overrides from
// the environment. A .env file in the working directory is loaded first when
// present; variables already set in the process win over it.
func LoadConfig(path string) (*ClientConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := &ClientConfig{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if v := os.Getenv(EnvAPIKey); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv(EnvBaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv(EnvNetwork); v != "" {
		cfg.Network = networks.Network(v)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *ClientConfig) validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("config: apiKey is required (or set %s)", EnvAPIKey)
	}
	if c.Network != "" {
		if _, err := networks.Parse(string(c.Network)); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	if c.Timeout < 0 {
		return errors.New("config: timeout must not be negative")
	}
	return nil
}
