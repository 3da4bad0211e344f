package config

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// AppConfig is the process-wide application configuration. Agents read the
// application name from it when deriving their fully qualified instance code.
type AppConfig struct {
	// AppName qualifies every instance code produced in this process.
	AppName string `yaml:"appname"`
	// LogLevel selects the default framework log level (debug/info/warn/error).
	LogLevel string `yaml:"log_level"`
}

// DefaultAppName is used until an application configuration is loaded.
const DefaultAppName = "agentuniverse"

var (
	appMu sync.RWMutex
	app   = &AppConfig{AppName: DefaultAppName, LogLevel: "info"}
)

// App returns a snapshot of the current application configuration.
func App() AppConfig {
	appMu.RLock()
	defer appMu.RUnlock()
	return *app
}

// SetApp replaces the process-wide application configuration. Empty fields
// fall back to their defaults.
func SetApp(cfg AppConfig) {
	if cfg.AppName == "" {
		cfg.AppName = DefaultAppName
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	appMu.Lock()
	defer appMu.Unlock()
	app = &cfg
}

// LoadAppConfig reads the application configuration from a YAML file and
// installs it process-wide.
func LoadAppConfig(path string) (AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return AppConfig{}, fmt.Errorf("read app config %s: %w", path, err)
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, fmt.Errorf("unmarshal app config %s: %w", path, err)
	}
	SetApp(cfg)
	return App(), nil
}
