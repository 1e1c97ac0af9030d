package data

import (
	"github.com/pkg/errors"
)

// ErrStoreFull is returned by Add when a limited store already holds its limit.
var ErrStoreFull = errors.New("store is full")

// Store is an ordered, append-only-until-cleared collection of values.
// It is not safe for concurrent use.
type Store struct {
	values []float64
	limit  uint64
}

// NewStore returns an empty Store. A limit of 0 means the store is unbounded.
func NewStore(limit uint64) *Store {
	return &Store{
		values: make([]float64, 0),
		limit:  limit,
	}
}

// Add appends v to the end of the store. Values are not filtered, so NaN
// and infinities are stored as given.
func (s *Store) Add(v float64) error {
	if s.limit > 0 && uint64(len(s.values)) >= s.limit {
		return errors.Wrapf(ErrStoreFull, "limit of %d values reached", s.limit)
	}
	s.values = append(s.values, v)
	return nil
}

// Snapshot returns a copy of the current values in insertion order.
func (s *Store) Snapshot() []float64 {
	out := make([]float64, len(s.values))
	copy(out, s.values)
	return out
}

// Len returns the number of stored values.
func (s *Store) Len() int {
	return len(s.values)
}

// IsEmpty reports whether the store holds no values.
func (s *Store) IsEmpty() bool {
	return len(s.values) == 0
}

// Limit returns the configured capacity, 0 if unbounded.
func (s *Store) Limit() uint64 {
	return s.limit
}

// Clear removes all values.
func (s *Store) Clear() {
	s.values = s.values[:0:0]
}
