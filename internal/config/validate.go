package config

import (
	"strings"

	"github.com/thoreinstein/awscmds/internal/catalog"
	"github.com/thoreinstein/awscmds/internal/errors"
)

// Validate returns the first problem found in cfg, or nil.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("config is nil")
	}
	if cfg.Version != CurrentVersion {
		return errors.Newf("unsupported config version: %d", cfg.Version)
	}
	if strings.TrimSpace(cfg.Binary) == "" {
		return errors.New("binary must not be empty")
	}
	if !catalog.ValidFormat(cfg.Format) {
		return errors.Wrapf(errors.ErrInvalidFormat, "%s (valid: %s)",
			cfg.Format, strings.Join(catalog.Formats(), ", "))
	}
	return nil
}
