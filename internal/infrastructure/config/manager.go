package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/avolut/themectl/internal/infrastructure/xdg"
)

// Manager handles configuration loading and change watching.
type Manager struct {
	mu        sync.RWMutex
	viper     *viper.Viper
	config    *Config
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a manager wired to the standard config location and
// environment. The config file is optional; defaults apply without one.
func NewManager() (*Manager, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")

	configDir, err := xdg.ConfigDir()
	if err != nil {
		return nil, fmt.Errorf("determine config directory: %w", err)
	}
	v.AddConfigPath(configDir)

	v.SetEnvPrefix("THEMECTL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	return &Manager{viper: v}, nil
}

// NewManagerWithPath creates a manager reading from an explicit directory,
// used by tests and the --config flag.
func NewManagerWithPath(dir string) *Manager {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(dir)
	setDefaults(v)
	return &Manager{viper: v}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("enabled_targets", []string{})
	v.SetDefault("extra_theme_dirs", []string{})
	v.SetDefault("backup_retention", 10)
	v.SetDefault("handler_timeout_seconds", 10)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}

// Load reads the configuration. A missing config file is not an error.
func (m *Manager) Load() (*Config, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := m.viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if _, err := cfg.Targets(); err != nil {
		return nil, err
	}
	if cfg.BackupRetention < 1 {
		return nil, fmt.Errorf("backup_retention must be at least 1, got %d", cfg.BackupRetention)
	}

	m.config = cfg
	return cfg, nil
}

// Get returns the last loaded configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

// OnChange registers a callback invoked after a successful reload.
func (m *Manager) OnChange(fn func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacks = append(m.callbacks, fn)
}

// Watch starts watching the config file for changes. Reload failures keep
// the previous configuration in place.
func (m *Manager) Watch() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.watching {
		return
	}
	m.watching = true

	m.viper.OnConfigChange(func(e fsnotify.Event) {
		if e.Op&(fsnotify.Write|fsnotify.Create) == 0 {
			return
		}
		cfg := &Config{}
		if err := m.viper.Unmarshal(cfg); err != nil {
			return
		}
		if _, err := cfg.Targets(); err != nil {
			return
		}

		m.mu.Lock()
		m.config = cfg
		callbacks := make([]func(*Config), len(m.callbacks))
		copy(callbacks, m.callbacks)
		m.mu.Unlock()

		for _, fn := range callbacks {
			fn(cfg)
		}
	})
	m.viper.WatchConfig()
}
