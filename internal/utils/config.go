package utils

import (
	"github.com/blagojts/viper"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

// SetupConfigFile binds fs into v and reads the configuration file. An
// explicit path must exist; without one, ./config.yaml is read if present.
func SetupConfigFile(v *viper.Viper, path string, fs *pflag.FlagSet) error {
	if err := v.BindPFlags(fs); err != nil {
		return errors.Wrap(err, "could not bind flags to configuration")
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		// Ignore error if the default config file is not found.
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && path == "" {
			return nil
		}
		return errors.Wrap(err, "could not read config file")
	}

	return nil
}
