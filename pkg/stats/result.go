package stats

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Result is one computed statistic.
type Result struct {
	Label string
	Value float64
}

// Compute applies the reduction for kind to values.
func Compute(kind Kind, values []float64, tb TieBreak) Result {
	return Result{
		Label: kind.String(),
		Value: kind.Reduction(tb)(values),
	}
}

// ComputeAll returns mean, median and mode of values, in that order.
func ComputeAll(values []float64, tb TieBreak) []Result {
	results := make([]Result, 0, len(Kinds))
	for _, k := range Kinds {
		results = append(results, Compute(k, values, tb))
	}
	return results
}

// FormatValue renders v for display. A negative precision gives the shortest
// exact representation, keeping a trailing ".0" on integral values.
func FormatValue(v float64, precision int) string {
	if precision >= 0 {
		return strconv.FormatFloat(v, 'f', precision, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if math.IsNaN(v) || math.IsInf(v, 0) || strings.Contains(s, ".") {
		return s
	}
	return s + ".0"
}

// FormatValues joins the formatted values with ", ".
func FormatValues(values []float64, precision int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = FormatValue(v, precision)
	}
	return strings.Join(parts, ", ")
}

// WriteResults writes one "Label: value" line per result, with values aligned.
func WriteResults(w io.Writer, results []Result, precision int) error {
	maxLabelLength := 0
	for _, r := range results {
		if len(r.Label) > maxLabelLength {
			maxLabelLength = len(r.Label)
		}
	}
	for _, r := range results {
		paddedLabel := r.Label + ":"
		for len(paddedLabel) < maxLabelLength+1 {
			paddedLabel += " "
		}
		if _, err := fmt.Fprintf(w, "%s %s\n", paddedLabel, FormatValue(r.Value, precision)); err != nil {
			return err
		}
	}
	return nil
}
