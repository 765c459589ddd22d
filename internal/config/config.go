package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/losadrian/genviper/internal/branding"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Setting keys.
const (
	KeyPlatform  = "platform"
	KeyOutputDir = "output_dir"
)

// DefaultPlatform is used when no platform is configured.
const DefaultPlatform = "uikit"

// Keys lists every recognised setting in display order.
var Keys = []string{KeyPlatform, KeyOutputDir}

// Dir returns the config directory. GENVIPER_HOME overrides the default
// of ~/.genviper/.
func Dir() string {
	if v := os.Getenv(branding.EnvVar("HOME")); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()
	viper.SetDefault(KeyPlatform, DefaultPlatform)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Platform returns the configured UI platform name.
func Platform() string {
	return viper.GetString(KeyPlatform)
}

// OutputDir returns the configured output root, or the current working
// directory when none is set.
func OutputDir() (string, error) {
	if dir := viper.GetString(KeyOutputDir); dir != "" {
		return dir, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting current directory: %w", err)
	}
	return wd, nil
}

// Set validates and writes a config key-value pair.
func Set(key, value string) error {
	candidate := viper.AllSettings()
	candidate[key] = value

	data, err := yaml.Marshal(candidate)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	result, err := Validate(data)
	if err != nil {
		return err
	}
	if !result.Valid {
		return &InvalidSettingError{Key: key, Value: value, Issues: result.Issues}
	}

	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
