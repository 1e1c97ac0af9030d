package data

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
)

func TestStoreAddSnapshot(t *testing.T) {
	s := NewStore(0)
	if !s.IsEmpty() || s.Len() != 0 {
		t.Fatalf("new store not empty: len %d", s.Len())
	}
	if got := s.Snapshot(); got == nil || len(got) != 0 {
		t.Errorf("empty snapshot: got %v want non-nil empty slice", got)
	}

	vals := []float64{3, 1, 3, -2.5}
	for i, v := range vals {
		if err := s.Add(v); err != nil {
			t.Fatalf("unexpected error adding %v: %v", v, err)
		}
		if got := s.Len(); got != i+1 {
			t.Errorf("incorrect len after %d adds: got %d", i+1, got)
		}
		if got := s.Snapshot(); !cmp.Equal(got, vals[:i+1]) {
			t.Errorf("incorrect snapshot after adding %v: got %v want %v", v, got, vals[:i+1])
		}
	}
	if s.IsEmpty() {
		t.Errorf("store with values reports empty")
	}
}

func TestStoreAddNonFinite(t *testing.T) {
	s := NewStore(0)
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if err := s.Add(v); err != nil {
			t.Fatalf("unexpected error adding %v: %v", v, err)
		}
	}
	got := s.Snapshot()
	if len(got) != 3 || !math.IsNaN(got[0]) || !math.IsInf(got[1], 1) || !math.IsInf(got[2], -1) {
		t.Errorf("non-finite values not stored as given: %v", got)
	}
}

func TestStoreSnapshotIsolation(t *testing.T) {
	s := NewStore(0)
	_ = s.Add(1)
	_ = s.Add(2)

	snap := s.Snapshot()
	snap[0] = 100
	if got := s.Snapshot(); got[0] != 1 {
		t.Errorf("mutating a snapshot changed the store: got %v", got)
	}

	snap = s.Snapshot()
	_ = s.Add(3)
	if len(snap) != 2 {
		t.Errorf("add changed a previous snapshot: got %v", snap)
	}

	s.Clear()
	if !cmp.Equal(snap, []float64{1, 2}) {
		t.Errorf("clear changed a previous snapshot: got %v", snap)
	}
}

func TestStoreClear(t *testing.T) {
	s := NewStore(0)
	for i := 0; i < 10; i++ {
		_ = s.Add(float64(i))
	}
	before := s.Snapshot()
	s.Clear()
	if got := s.Len(); got != 0 {
		t.Errorf("incorrect len after clear: got %d", got)
	}
	if !s.IsEmpty() {
		t.Errorf("store not empty after clear")
	}
	_ = s.Add(42)
	if got := s.Snapshot(); !cmp.Equal(got, []float64{42}) {
		t.Errorf("incorrect snapshot after clear and add: got %v", got)
	}
	if before[0] != 0 || len(before) != 10 {
		t.Errorf("add after clear changed an earlier snapshot: %v", before)
	}
}

func TestStoreLimit(t *testing.T) {
	cases := []struct {
		desc    string
		limit   uint64
		adds    int
		wantLen int
		wantErr bool
	}{
		{desc: "unbounded", limit: 0, adds: 100, wantLen: 100},
		{desc: "under limit", limit: 5, adds: 4, wantLen: 4},
		{desc: "at limit", limit: 5, adds: 5, wantLen: 5},
		{desc: "over limit", limit: 5, adds: 6, wantLen: 5, wantErr: true},
	}
	for _, c := range cases {
		s := NewStore(c.limit)
		var err error
		for i := 0; i < c.adds; i++ {
			err = s.Add(float64(i))
		}
		if c.wantErr && !errors.Is(err, ErrStoreFull) {
			t.Errorf("%s: incorrect error: got %v want %v", c.desc, err, ErrStoreFull)
		} else if !c.wantErr && err != nil {
			t.Errorf("%s: unexpected error: %v", c.desc, err)
		}
		if got := s.Len(); got != c.wantLen {
			t.Errorf("%s: incorrect len: got %d want %d", c.desc, got, c.wantLen)
		}
		if got := s.Limit(); got != c.limit {
			t.Errorf("%s: incorrect limit: got %d want %d", c.desc, got, c.limit)
		}
	}
}
