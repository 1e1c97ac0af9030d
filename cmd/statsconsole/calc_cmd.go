package main

import (
	"strings"

	"github.com/blagojts/viper"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/timescale/statsconsole/internal/console"
	"github.com/timescale/statsconsole/internal/logging"
	"github.com/timescale/statsconsole/pkg/data"
	"github.com/timescale/statsconsole/pkg/stats"
)

func newCalcCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calc [values...]",
		Short: "Calculate statistics of the given values without the interactive menu",
		Long: "Calculate statistics of the given values without the interactive menu.\n" +
			"Put negative values after -- so they are not read as flags, e.g. calc -- -3 4 5",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalc(cmd, v, args)
		},
	}
	cmd.Flags().String(
		statFlag,
		statAll,
		"Statistic to calculate, valid: mean, median, mode, "+statAll,
	)
	return cmd
}

func runCalc(cmd *cobra.Command, v *viper.Viper, args []string) error {
	cfg, err := parseConfig(v)
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	statName, err := cmd.Flags().GetString(statFlag)
	if err != nil {
		return err
	}

	values, err := console.ParseValues(args)
	if err != nil {
		return err
	}
	store := data.NewStore(cfg.MaxValues)
	for _, val := range values {
		if err := store.Add(val); err != nil {
			return errors.Wrapf(err, "could not add %s", stats.FormatValue(val, cfg.Precision))
		}
	}

	sc := cfg.sessionConfig()
	snapshot := store.Snapshot()
	var results []stats.Result
	if strings.EqualFold(statName, statAll) {
		results = stats.ComputeAll(snapshot, sc.TieBreak)
	} else {
		kind, err := stats.ParseKind(statName)
		if err != nil {
			return err
		}
		results = []stats.Result{stats.Compute(kind, snapshot, sc.TieBreak)}
	}
	log.Debug().Int("count", len(snapshot)).Str("stat", statName).Msg("calculated")

	return stats.WriteResults(cmd.OutOrStdout(), results, sc.Precision)
}
