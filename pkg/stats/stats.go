package stats

import (
	"math"
	"sort"
)

// Reduction maps a snapshot of values to one summary value. Reductions never
// modify their input and return 0 for an empty input.
type Reduction func(values []float64) float64

// Mean returns the arithmetic mean of values, or 0 if values is empty.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Median returns the middle value of the sorted values, or the average of the
// two middle values when the count is even. It returns 0 if values is empty.
// NaN sorts after every other value.
func Median(values []float64) float64 {
	count := len(values)
	if count == 0 {
		return 0
	}
	sorted := make([]float64, count)
	copy(sorted, values)
	sort.Slice(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })

	if count%2 == 0 {
		idx := count / 2
		return (sorted[idx] + sorted[idx-1]) / 2.0
	}
	return sorted[count/2]
}

// Mode returns the most frequent value, breaking ties by first occurrence.
func Mode(values []float64) float64 {
	return ModeWith(TieBreakFirst)(values)
}

// ModeWith returns a mode reduction that breaks frequency ties with tb.
//
// Values are grouped by their bit pattern, so 0 and -0 count as different
// values and every NaN counts as the same value.
func ModeWith(tb TieBreak) Reduction {
	return func(values []float64) float64 {
		if len(values) == 0 {
			return 0
		}

		counts := make(map[uint64]int, len(values))
		order := make([]float64, 0, len(values))
		for _, v := range values {
			k := key(v)
			if _, ok := counts[k]; !ok {
				order = append(order, v)
			}
			counts[k]++
		}

		mode := order[0]
		maxCount := counts[key(mode)]
		for _, v := range order[1:] {
			c := counts[key(v)]
			switch {
			case c > maxCount:
				mode, maxCount = v, c
			case c == maxCount && tb == TieBreakSmallest && less(v, mode):
				mode = v
			}
		}
		return mode
	}
}

var nanKey = math.Float64bits(math.NaN())

func key(v float64) uint64 {
	if math.IsNaN(v) {
		return nanKey
	}
	return math.Float64bits(v)
}

// less is a total order on float64: -0 sorts before 0 and NaN sorts last.
func less(a, b float64) bool {
	switch {
	case math.IsNaN(a):
		return false
	case math.IsNaN(b):
		return true
	case a == b:
		return math.Signbit(a) && !math.Signbit(b)
	}
	return a < b
}
