package core

import (
	"testing"
	"time"
)

func TestIntervalDue(t *testing.T) {
	start := time.Unix(1000, 0)
	iv := NewInterval(2 * time.Second)

	if iv.Due(start) {
		t.Fatal("first call should only arm the interval")
	}
	if iv.Due(start.Add(time.Second)) {
		t.Fatal("interval fired before its period elapsed")
	}
	if !iv.Due(start.Add(2 * time.Second)) {
		t.Fatal("interval should fire once the period elapsed")
	}
	if iv.Due(start.Add(3 * time.Second)) {
		t.Fatal("interval fired twice within one period")
	}
	// A long stall fires once, not once per missed period.
	if !iv.Due(start.Add(11 * time.Second)) {
		t.Fatal("interval should fire after a stall")
	}
	if iv.Due(start.Add(11*time.Second + time.Millisecond)) {
		t.Fatal("interval should not replay missed periods")
	}
}

func TestIntervalDisabled(t *testing.T) {
	iv := NewInterval(0)
	now := time.Unix(0, 0)
	for i := 0; i < 3; i++ {
		if iv.Due(now.Add(time.Duration(i) * time.Hour)) {
			t.Fatal("disabled interval should never fire")
		}
	}
	iv.SetPeriod(time.Second)
	if iv.Due(now) || !iv.Due(now.Add(time.Second)) {
		t.Fatal("interval should resume after SetPeriod")
	}
}
