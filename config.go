package main

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultConfigDir = ".devto-sync"
	apiKeyEnv        = "DEV_TO_API_KEY"
	defaultWorkers   = 4
)

//go:embed config/settings.yaml
var defaultSettings string

// Settings represents the YAML configuration structure
type Settings struct {
	APIURL            string `yaml:"api_url"`
	PostsDirectory    string `yaml:"posts_directory"`
	SpeakingDirectory string `yaml:"speaking_directory"`
	Workers           int    `yaml:"workers"`
	TimeoutSeconds    int    `yaml:"timeout_seconds"`
	Validate          bool   `yaml:"validate"`
}

// Timeout returns the HTTP client timeout, zero meaning none
func (s *Settings) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// ConfigOverrides holds values set from the command line
type ConfigOverrides struct {
	SettingsPath   *string
	PostsDirectory *string
	Workers        *int
	Validate       *bool
}

// Config is everything a sync run needs. APIKey is empty when the
// credential is not configured.
type Config struct {
	APIKey   string
	Settings *Settings
}

// NewConfig loads settings, applies overrides and attaches the API key
func NewConfig(apiKey string, overrides *ConfigOverrides) (*Config, error) {
	var (
		settings *Settings
		err      error
	)

	if overrides != nil && overrides.SettingsPath != nil {
		settings, err = loadSettingsRequired(*overrides.SettingsPath)
	} else {
		settings, err = loadSettings(GetConfigPath("settings.yaml"))
	}
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}

	settings.applyOverrides(overrides)
	settings.applyDefaults()

	return &Config{
		APIKey:   apiKey,
		Settings: settings,
	}, nil
}

// GetConfigPath returns the full path to a config file
func GetConfigPath(filename string) string {
	return filepath.Join(defaultConfigDir, filename)
}

// loadSettings loads settings from YAML file with fallback to embedded defaults
func loadSettings(settingsPath string) (*Settings, error) {
	data, err := os.ReadFile(settingsPath)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		data = []byte(defaultSettings)
	}

	return parseSettings(data)
}

// loadSettingsRequired loads settings from YAML file, failing if file doesn't exist
func loadSettingsRequired(settingsPath string) (*Settings, error) {
	data, err := os.ReadFile(settingsPath)
	if err != nil {
		return nil, err
	}

	return parseSettings(data)
}

func parseSettings(data []byte) (*Settings, error) {
	// Start from the embedded defaults so partial files keep sane values
	var settings Settings
	if err := yaml.Unmarshal([]byte(defaultSettings), &settings); err != nil {
		return nil, fmt.Errorf("parsing default settings: %w", err)
	}

	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parsing settings YAML: %w", err)
	}

	return &settings, nil
}

func (s *Settings) applyOverrides(o *ConfigOverrides) {
	if o == nil {
		return
	}
	if o.PostsDirectory != nil {
		s.PostsDirectory = *o.PostsDirectory
	}
	if o.Workers != nil {
		s.Workers = *o.Workers
	}
	if o.Validate != nil {
		s.Validate = *o.Validate
	}
}

func (s *Settings) applyDefaults() {
	if s.Workers < 1 {
		s.Workers = defaultWorkers
	}
}
