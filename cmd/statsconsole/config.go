package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/timescale/statsconsole/internal/console"
	"github.com/timescale/statsconsole/internal/logging"
	"github.com/timescale/statsconsole/internal/utils"
	"github.com/timescale/statsconsole/pkg/stats"
)

const maxPrecision = 17

const (
	errEmptySentinel      = "sentinel cannot be empty"
	errNumericSentinelFmt = "sentinel cannot be a number: '%v'"
	errBadPrecisionFmt    = "invalid precision specified: %d (must be -1 or between 0 and %d)"
	errBadTieBreakFmt     = "invalid tie-break specified: '%v'"
	errBadLogLevelFmt     = "invalid log level specified: '%v'"
	errBadLogFormatFmt    = "invalid log format specified: '%v'"
)

// Config is the full configuration of statsconsole, assembled from flags
// and the optional config file.
type Config struct {
	Sentinel  string         `yaml:"sentinel"`
	Precision int            `yaml:"precision"`
	TieBreak  string         `yaml:"tie-break" mapstructure:"tie-break"`
	MaxValues uint64         `yaml:"max-values" mapstructure:"max-values"`
	Log       logging.Config `yaml:"log"`
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	sentinel := strings.TrimSpace(c.Sentinel)
	if sentinel == "" {
		return fmt.Errorf(errEmptySentinel)
	}
	if _, err := strconv.ParseFloat(sentinel, 64); err == nil {
		return fmt.Errorf(errNumericSentinelFmt, c.Sentinel)
	}
	if c.Precision < -1 || c.Precision > maxPrecision {
		return fmt.Errorf(errBadPrecisionFmt, c.Precision, maxPrecision)
	}
	if !utils.IsInFold(c.TieBreak, stats.TieBreakChoices) {
		return fmt.Errorf(errBadTieBreakFmt, c.TieBreak)
	}
	if !utils.IsIn(c.Log.Level, logging.Levels) {
		return fmt.Errorf(errBadLogLevelFmt, c.Log.Level)
	}
	if !utils.IsIn(c.Log.Format, logging.Formats) {
		return fmt.Errorf(errBadLogFormatFmt, c.Log.Format)
	}
	return nil
}

func (c *Config) sessionConfig() console.Config {
	tb, err := stats.ParseTieBreak(c.TieBreak)
	if err != nil {
		// Validate rejects unknown tie-breaks.
		panic(err)
	}
	return console.Config{
		Sentinel:  strings.TrimSpace(c.Sentinel),
		Precision: c.Precision,
		TieBreak:  tb,
	}
}
