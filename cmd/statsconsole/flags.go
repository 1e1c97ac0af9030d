package main

import (
	"strings"

	"github.com/spf13/pflag"

	"github.com/timescale/statsconsole/internal/console"
	"github.com/timescale/statsconsole/internal/logging"
	"github.com/timescale/statsconsole/pkg/stats"
)

const (
	configFlag = "config"
	statFlag   = "stat"
	outFlag    = "out"

	statAll = "all"
)

func sessionFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("", pflag.ContinueOnError)
	fs.String(
		"sentinel",
		console.DefaultSentinel,
		"Word that ends number input (case-insensitive)",
	)
	fs.Int("precision", -1, "Decimals shown for values, -1 = shortest exact form")
	fs.String(
		"tie-break",
		string(stats.TieBreakFirst),
		"Which value mode returns when frequencies tie, valid: "+strings.Join(stats.TieBreakChoices, ", "),
	)
	fs.Uint64("max-values", 0, "Maximum number of values kept in memory (0 = unlimited)")
	fs.String(
		"log.level",
		"warn",
		"Diagnostic log level, valid: "+strings.Join(logging.Levels, ", "),
	)
	fs.String(
		"log.format",
		logging.FormatConsole,
		"Diagnostic log format, valid: "+strings.Join(logging.Formats, ", "),
	)
	return fs
}
