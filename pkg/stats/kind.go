package stats

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Kind selects one of the supported reductions.
type Kind int

const (
	KindMean Kind = iota
	KindMedian
	KindMode
)

// Kinds lists every reduction in display order.
var Kinds = []Kind{KindMean, KindMedian, KindMode}

var kindNames = map[Kind]string{
	KindMean:   "Mean",
	KindMedian: "Median",
	KindMode:   "Mode",
}

// ErrUnknownKind is returned when a statistic name is not recognized.
var ErrUnknownKind = errors.New("unknown statistic")

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind parses a case-insensitive statistic name (mean, median or mode).
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if strings.EqualFold(s, kindNames[k]) {
			return k, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownKind, "'%s'", s)
}

// Reduction returns the pure function computing k. tb only affects KindMode.
func (k Kind) Reduction(tb TieBreak) Reduction {
	switch k {
	case KindMean:
		return Mean
	case KindMedian:
		return Median
	case KindMode:
		return ModeWith(tb)
	default:
		panic("unsupported statistic kind: " + k.String())
	}
}

// TieBreak decides which value Mode returns when several values share the
// highest frequency.
type TieBreak string

const (
	// TieBreakFirst picks the tied value that was added first.
	TieBreakFirst TieBreak = "first"
	// TieBreakSmallest picks the numerically smallest tied value.
	TieBreakSmallest TieBreak = "smallest"
)

// TieBreakChoices lists the accepted tie-break names.
var TieBreakChoices = []string{string(TieBreakFirst), string(TieBreakSmallest)}

const errBadTieBreakFmt = "invalid tie-break specified: '%v'"

// ParseTieBreak parses a tie-break name. The empty string means TieBreakFirst.
func ParseTieBreak(s string) (TieBreak, error) {
	switch strings.ToLower(s) {
	case "", string(TieBreakFirst):
		return TieBreakFirst, nil
	case string(TieBreakSmallest):
		return TieBreakSmallest, nil
	}
	return "", fmt.Errorf(errBadTieBreakFmt, s)
}
