package console

import (
	"strconv"

	moremath "github.com/aclements/go-moremath/stats"
	"github.com/pkg/errors"
)

// parseValue parses one number as typed by the user. Out-of-range input
// saturates to an infinity instead of being rejected.
func parseValue(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
			return v, nil
		}
		return 0, errors.Wrapf(err, "invalid number '%s'", s)
	}
	return v, nil
}

// ParseValues parses every string in args, failing on the first bad one.
func ParseValues(args []string) ([]float64, error) {
	values := make([]float64, 0, len(args))
	for _, a := range args {
		v, err := parseValue(a)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

func valueRange(values []float64) (lo, hi float64) {
	return moremath.Bounds(values)
}
