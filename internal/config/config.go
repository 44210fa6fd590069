package config

import (
	"github.com/spf13/viper"

	"github.com/thoreinstein/awscmds/internal/awscli"
	"github.com/thoreinstein/awscmds/internal/catalog"
	"github.com/thoreinstein/awscmds/internal/errors"
	"github.com/thoreinstein/awscmds/internal/paths"
)

// Configuration keys.
const (
	KeyVersion = "version"
	KeyBinary  = "binary"
	KeyFormat  = "format"
)

// CurrentVersion is the only config schema version understood.
const CurrentVersion = 1

// Config represents the top-level configuration structure.
type Config struct {
	Version int    `mapstructure:"version" yaml:"version"`
	Binary  string `mapstructure:"binary" yaml:"binary"`
	Format  string `mapstructure:"format" yaml:"format"`
}

// Init resets Viper and installs the config search path, environment binding
// and defaults. Call it once at startup before Load. Only the awscmds config
// directory is searched; the working directory never is.
func Init() {
	viper.Reset()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(paths.ConfigDir())

	viper.SetEnvPrefix("AWSCMDS")
	viper.AutomaticEnv()

	viper.SetDefault(KeyVersion, CurrentVersion)
	viper.SetDefault(KeyBinary, awscli.DefaultBinary)
	viper.SetDefault(KeyFormat, string(catalog.FormatLines))
}

// Load reads the configuration file and returns the validated result.
// If path is empty the search paths from Init are used and a missing file is
// not an error; an explicit path must exist.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound) && path == "":
			// defaults and environment only
		case errors.As(err, &notFound):
			return nil, errors.Wrapf(err, "config file not found at %s", path)
		default:
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if err := Validate(&cfg); err != nil {
		return nil, errors.Wrap(err, "validating config")
	}

	return &cfg, nil
}
