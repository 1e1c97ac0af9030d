// statsconsole collects numbers from the user and computes their mean,
// median and mode.
//
// Running it without a subcommand starts the interactive menu. The calc
// subcommand computes statistics over values given on the command line, and
// the config subcommand writes an example config file.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
