package main

import (
	"github.com/blagojts/viper"
	"github.com/pkg/errors"
)

func parseConfig(v *viper.Viper) (*Config, error) {
	var conf Config
	if err := v.Unmarshal(&conf); err != nil {
		return nil, errors.Wrap(err, "unable to decode config")
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return &conf, nil
}

// defaultConfig returns the configuration produced by the flag defaults alone.
func defaultConfig() (*Config, error) {
	v := viper.New()
	if err := v.BindPFlags(sessionFlagSet()); err != nil {
		return nil, errors.Wrap(err, "could not bind default flags")
	}
	return parseConfig(v)
}
