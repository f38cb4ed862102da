package clock

import (
	"testing"
	"time"
)

func TestReal(t *testing.T) {
	before := time.Now()
	got := Real().Now()
	after := time.Now()

	if got.Before(before) || got.After(after) {
		t.Errorf("Real().Now() = %v, want between %v and %v", got, before, after)
	}
}

func TestFixed(t *testing.T) {
	ts := time.Date(2023, time.February, 2, 15, 4, 0, 0, time.UTC)
	c := Fixed{T: ts}

	if got := c.Now(); !got.Equal(ts) {
		t.Errorf("Fixed.Now() = %v, want %v", got, ts)
	}
	if got := c.Now(); !got.Equal(ts) {
		t.Errorf("Fixed.Now() moved to %v", got)
	}
}
