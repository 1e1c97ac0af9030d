// Package console implements the interactive menu shell around a data.Store.
//
// The shell is a small state machine: the main menu dispatches to the number
// input loop, the data listing, the statistics menu or the clear action, and
// every one of them returns to the main menu. The session ends on the exit
// choice or when input runs out.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/timescale/statsconsole/pkg/data"
	"github.com/timescale/statsconsole/pkg/stats"
)

// DefaultSentinel ends the number input loop.
const DefaultSentinel = "done"

// Config holds the user-visible knobs of a Session.
type Config struct {
	// Sentinel ends the number input loop, compared case-insensitively.
	Sentinel string
	// Precision is the number of decimals shown, -1 for the shortest form.
	Precision int
	TieBreak  stats.TieBreak
}

type mode int

const (
	modeMain mode = iota
	modeInput
	modeDisplay
	modeStats
	modeClear
	modeExit
)

var modeNames = [...]string{"main", "input", "display", "stats", "clear", "exit"}

func (m mode) String() string {
	return modeNames[m]
}

// Session runs the menu loop over one store. It is single use.
type Session struct {
	cfg   Config
	store *data.Store
	in    *bufio.Scanner
	out   io.Writer
	log   zerolog.Logger

	eof bool
	err error // first write error, ends the session
}

// NewSession returns a Session reading commands from in and writing the
// dialogue to out.
func NewSession(in io.Reader, out io.Writer, store *data.Store, cfg Config, log zerolog.Logger) *Session {
	if cfg.Sentinel == "" {
		cfg.Sentinel = DefaultSentinel
	}
	if cfg.TieBreak == "" {
		cfg.TieBreak = stats.TieBreakFirst
	}
	return &Session{
		cfg:   cfg,
		store: store,
		in:    bufio.NewScanner(in),
		out:   out,
		log:   log,
	}
}

// Run drives the menu until the user exits or input ends. User mistakes
// never fail the session; only errors writing output or reading input do.
func (s *Session) Run() error {
	s.println("=== Statistics Console App ===")
	s.println("Calculate Mean, Median, and Mode of numbers")
	s.println("")

	m := modeMain
	for m != modeExit && s.err == nil {
		s.log.Debug().Stringer("mode", m).Msg("entering mode")
		switch m {
		case modeMain:
			m = s.mainMenu()
			continue
		case modeInput:
			s.inputNumbers()
		case modeDisplay:
			s.displayData()
		case modeStats:
			s.statsMenu()
		case modeClear:
			s.clearData()
		}
		if s.eof {
			break
		}
		s.println("")
		m = modeMain
	}
	if s.err != nil {
		return s.err
	}

	if s.eof {
		s.println("")
	}
	s.println("Thank you for using Statistics Console App!")
	if s.err == nil {
		if err := s.in.Err(); err != nil {
			s.err = errors.Wrap(err, "read input")
		}
	}
	return s.err
}

func (s *Session) mainMenu() mode {
	s.println("--- Menu ---")
	s.println("1. Input Numbers")
	s.println("2. Display Current Data")
	s.println("3. Calculate Statistics")
	s.println("4. Clear Data")
	s.println("5. Exit")
	s.print("Enter your choice (1-5): ")

	choice, ok := s.readChoice()
	if s.eof {
		return modeExit
	}
	if ok && choice >= 1 && choice <= 5 {
		return []mode{modeInput, modeDisplay, modeStats, modeClear, modeExit}[choice-1]
	}
	s.println("Invalid choice. Please try again.")
	s.println("")
	return modeMain
}

func (s *Session) inputNumbers() {
	s.printf("Enter numbers (type '%s' when finished):\n", s.cfg.Sentinel)
	for {
		s.print("Enter number: ")
		line, ok := s.readLine()
		if !ok {
			return
		}
		if strings.EqualFold(line, s.cfg.Sentinel) {
			break
		}

		v, err := parseValue(line)
		if err != nil {
			s.log.Debug().Err(err).Msg("rejected input")
			s.println("Invalid number. Please try again.")
			continue
		}
		if err := s.store.Add(v); err != nil {
			s.log.Warn().Err(err).Msg("value not added")
			if errors.Is(err, data.ErrStoreFull) {
				s.printf("Data limit of %d values reached.\n", s.store.Limit())
				return
			}
			s.printf("Could not add %s: %v\n", s.format(v), err)
			continue
		}
		s.log.Debug().Float64("value", v).Int("count", s.store.Len()).Msg("value added")
		s.printf("Added: %s\n", s.format(v))
	}
	s.println("Numbers added successfully!")
}

func (s *Session) displayData() {
	s.println("--- Current Data ---")
	values := s.store.Snapshot()
	s.writeListing(values)
	s.printf("Total numbers: %d\n", len(values))
	if len(values) > 0 {
		lo, hi := valueRange(values)
		s.printf("Range: %s .. %s\n", s.format(lo), s.format(hi))
	}
}

func (s *Session) statsMenu() {
	if s.store.IsEmpty() {
		s.println("No data available. Please input numbers first.")
		return
	}

	s.println("--- Statistics Menu ---")
	s.println("1. Calculate Mean")
	s.println("2. Calculate Median")
	s.println("3. Calculate Mode")
	s.println("4. Calculate All")
	s.print("Enter your choice (1-4): ")

	choice, ok := s.readChoice()
	if s.eof {
		return
	}
	switch {
	case ok && choice >= 1 && choice <= len(stats.Kinds):
		kind := stats.Kinds[choice-1]
		r := stats.Compute(kind, s.store.Snapshot(), s.cfg.TieBreak)
		s.log.Debug().Str("statistic", r.Label).Float64("result", r.Value).Msg("statistic computed")
		s.writeResults([]stats.Result{r})
	case ok && choice == len(stats.Kinds)+1:
		s.println("--- All Statistics ---")
		values := s.store.Snapshot()
		s.writeListing(values)
		s.writeResults(stats.ComputeAll(values, s.cfg.TieBreak))
	default:
		s.println("Invalid choice.")
	}
}

func (s *Session) clearData() {
	n := s.store.Len()
	s.store.Clear()
	s.log.Debug().Int("removed", n).Msg("data cleared")
	s.println("All data cleared.")
}

func (s *Session) writeListing(values []float64) {
	if len(values) == 0 {
		s.println("No data available.")
		return
	}
	s.printf("Data: %s\n", stats.FormatValues(values, s.cfg.Precision))
}

func (s *Session) writeResults(results []stats.Result) {
	if s.err != nil {
		return
	}
	s.err = stats.WriteResults(s.out, results, s.cfg.Precision)
}

func (s *Session) format(v float64) string {
	return stats.FormatValue(v, s.cfg.Precision)
}

// readLine returns the next input line without surrounding whitespace.
func (s *Session) readLine() (string, bool) {
	if !s.in.Scan() {
		s.eof = true
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

// readChoice reads a menu selection. ok is false for non-integer input.
func (s *Session) readChoice() (choice int, ok bool) {
	line, ok := s.readLine()
	if !ok {
		return 0, false
	}
	choice, err := strconv.Atoi(line)
	if err != nil {
		s.log.Debug().Str("input", line).Msg("rejected menu choice")
		return 0, false
	}
	return choice, true
}

func (s *Session) print(a string) {
	if s.err != nil {
		return
	}
	_, s.err = io.WriteString(s.out, a)
}

func (s *Session) println(a string) {
	s.print(a + "\n")
}

func (s *Session) printf(format string, args ...interface{}) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.out, format, args...)
}
