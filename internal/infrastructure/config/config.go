// Package config loads and watches themectl's TOML configuration.
package config

import (
	"fmt"
	"time"

	"github.com/avolut/themectl/internal/domain/entity"
)

// Config is the root configuration.
type Config struct {
	// EnabledTargets restricts which handlers run. Empty means all.
	EnabledTargets []string `mapstructure:"enabled_targets"`

	// ExtraThemeDirs extends the XDG theme search path.
	ExtraThemeDirs []string `mapstructure:"extra_theme_dirs"`

	// BackupRetention is how many backups pruning keeps.
	BackupRetention int `mapstructure:"backup_retention"`

	// HandlerTimeoutSeconds bounds one handler invocation.
	HandlerTimeoutSeconds int `mapstructure:"handler_timeout_seconds"`

	Logging LoggingConfig `mapstructure:"logging"`
}

// LoggingConfig mirrors the logging package's knobs.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// HandlerTimeout returns the configured bound as a duration.
func (c *Config) HandlerTimeout() time.Duration {
	return time.Duration(c.HandlerTimeoutSeconds) * time.Second
}

// Targets converts the configured target names to toolkit identifiers,
// rejecting unknown names early instead of silently skipping them.
func (c *Config) Targets() ([]entity.ToolkitID, error) {
	var targets []entity.ToolkitID
	for _, name := range c.EnabledTargets {
		id := entity.ToolkitID(name)
		if !id.Valid() {
			return nil, fmt.Errorf("unknown target %q in enabled_targets", name)
		}
		targets = append(targets, id)
	}
	return targets, nil
}
