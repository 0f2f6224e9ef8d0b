package config

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/questlabs/questlog/internal/constants"
	"github.com/questlabs/questlog/internal/errors"
)

// newViperInstance creates a new Viper instance with standard questlog
// configuration: defaults, the QUESTLOG_ env prefix, and a key replacer so
// QUESTLOG_ENGINE_FETCH_TIMEOUT maps onto engine.fetch_timeout.
func newViperInstance() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// isConfigNotFoundError returns true if the error is a viper config file
// not found error. Missing config files are expected, not failures.
func isConfigNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var configNotFoundErr viper.ConfigFileNotFoundError
	return stderrors.As(err, &configNotFoundErr)
}

// unmarshalAndValidate unmarshals viper config into Config and validates it.
func unmarshalAndValidate(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg, viperDecoderOption()); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := Validate(&cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return &cfg, nil
}

// viperDecoderOption returns the decoder options for Viper unmarshal.
// The duration hook lets config files write "10s" for time.Duration fields.
func viperDecoderOption() viper.DecoderConfigOption {
	return viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
		),
	)
}

// Load reads configuration from all available sources with proper
// precedence: env vars over project config over global config over
// defaults.
//
// The function returns an error only for actual configuration problems,
// not for missing config files (which are expected in many scenarios).
//
// The context parameter is accepted for API consistency and future use;
// config file reads are fast local I/O.
func Load(_ context.Context) (*Config, error) {
	v := newViperInstance()

	if err := mergeConfigFile(v, globalConfigPath()); err != nil {
		return nil, err
	}
	if err := mergeConfigFile(v, projectConfigPath()); err != nil {
		return nil, err
	}

	return unmarshalAndValidate(v)
}

// mergeConfigFile merges one YAML config file into the instance when it
// exists. An empty path or a missing file is not an error.
func mergeConfigFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil //nolint:nilerr // Missing config files are expected
	}
	v.SetConfigFile(path)
	if err := v.MergeInConfig(); err != nil {
		if isConfigNotFoundError(err) {
			return nil
		}
		return errors.Wrapf(err, "failed to read config %s", path)
	}
	return nil
}

// globalConfigPath is ~/.questlog/config.yaml, or empty when the home
// directory cannot be resolved.
func globalConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, constants.ConfigDirName, constants.ConfigFileName)
}

// projectConfigPath is ./.questlog/config.yaml relative to the working
// directory, or empty when the working directory cannot be resolved.
func projectConfigPath() string {
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return filepath.Join(wd, constants.ConfigDirName, constants.ConfigFileName)
}
