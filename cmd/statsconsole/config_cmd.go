package main

import (
	"bytes"
	"fmt"

	"github.com/blagojts/viper"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

const writeConfigTo = "./config.yaml"

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Generate example config yaml file and save it to " + writeConfigTo,
		Args:  cobra.NoArgs,
		RunE:  writeExampleConfig,
	}
	cmd.Flags().String(outFlag, writeConfigTo, "where to write the example config (must end in .yaml)")
	return cmd
}

func writeExampleConfig(cmd *cobra.Command, _ []string) error {
	out, err := cmd.Flags().GetString(outFlag)
	if err != nil {
		return err
	}
	conf, err := defaultConfig()
	if err != nil {
		return err
	}
	v, err := exampleConfigViper(conf)
	if err != nil {
		return err
	}
	if err := v.WriteConfigAs(out); err != nil {
		return errors.Wrapf(err, "could not write sample config to file %s", out)
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Wrote example config to: %s\n", out)
	return err
}

func exampleConfigViper(conf *Config) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	configInBytes, err := yaml.Marshal(conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not convert example config to yaml")
	}
	if err := v.ReadConfig(bytes.NewBuffer(configInBytes)); err != nil {
		return nil, errors.Wrap(err, "could not load example config in viper")
	}
	return v, nil
}
