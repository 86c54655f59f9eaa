package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/uom-labs/uomsys/internal/branding"
	"github.com/uom-labs/uomsys/internal/log"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Known configuration keys.
const (
	KeyProvider = "provider" // name of the provider used when --provider is absent
	KeyCatalogs = "catalogs" // extra catalog manifest paths
	KeyDebug    = "debug"    // enable debug logging
)

// Dir returns the path to the config directory (~/.uomsys/).
// UOMSYS_HOME overrides it.
func Dir() string {
	if home := os.Getenv(branding.EnvVar("HOME")); home != "" {
		return home
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.uomsys/config.yaml).
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

	// Ignore error if config file doesn't exist yet.
	if err := viper.ReadInConfig(); err != nil {
		log.Debug(log.CatConfig, "no config file read", "path", FilePath(), "reason", err.Error())
	}
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Provider returns the configured default provider name, if any.
func Provider() string {
	return viper.GetString(KeyProvider)
}

// Catalogs returns the configured extra catalog manifest paths. A YAML list
// is taken as is; a plain string (UOMSYS_CATALOGS or `config set`) is split
// on the OS path list separator so paths may contain spaces.
func Catalogs() []string {
	raw, ok := viper.Get(KeyCatalogs).(string)
	if !ok {
		return viper.GetStringSlice(KeyCatalogs)
	}
	var paths []string
	for _, p := range filepath.SplitList(raw) {
		if p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}

// Debug reports whether debug logging is enabled by config or environment.
func Debug() bool {
	return viper.GetBool(KeyDebug)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Debug(log.CatConfig, "config key written", "key", key, "path", configFile)
	return nil
}
