package main

import (
	"github.com/blagojts/viper"
	"github.com/spf13/cobra"

	"github.com/timescale/statsconsole/internal/console"
	"github.com/timescale/statsconsole/internal/logging"
	"github.com/timescale/statsconsole/internal/utils"
	"github.com/timescale/statsconsole/pkg/data"
)

func newRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	cmd := &cobra.Command{
		Use:          "statsconsole",
		Short:        "Calculate mean, median and mode of numbers entered interactively",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInteractive(cmd, v)
		},
	}

	sessionFlags := sessionFlagSet()
	cmd.PersistentFlags().AddFlagSet(sessionFlags)
	// don't bind --config which specifies the file from where to read config
	cmd.PersistentFlags().StringVar(&cfgFile, configFlag, "", "config file (default is ./config.yaml)")
	cmd.PersistentPreRunE = func(*cobra.Command, []string) error {
		return utils.SetupConfigFile(v, cfgFile, sessionFlags)
	}

	cmd.AddCommand(newCalcCmd(v), newConfigCmd())
	return cmd
}

func runInteractive(cmd *cobra.Command, v *viper.Viper) error {
	cfg, err := parseConfig(v)
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	if used := v.ConfigFileUsed(); used != "" {
		log.Info().Str("file", used).Msg("using config file")
	}

	store := data.NewStore(cfg.MaxValues)
	session := console.NewSession(cmd.InOrStdin(), cmd.OutOrStdout(), store, cfg.sessionConfig(), log)
	return session.Run()
}
