package testing

import (
	"testing"
	"time"

	"github.com/go-drift/scrollkit/pkg/timing"
)

func TestFakeClock_Advance(t *testing.T) {
	clk := NewFakeClock()
	start := clk.Now()

	clk.Advance(100 * time.Millisecond)
	elapsed := clk.Now().Sub(start)

	if elapsed != 100*time.Millisecond {
		t.Errorf("expected 100ms elapsed, got %v", elapsed)
	}
}

func TestFakeClock_Set(t *testing.T) {
	clk := NewFakeClock()
	target := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	clk.Set(target)
	if !clk.Now().Equal(target) {
		t.Errorf("expected %v, got %v", target, clk.Now())
	}
}

func TestFakeClock_InstallAndRestore(t *testing.T) {
	clk := NewFakeClock()
	restore := clk.Install()
	if !timing.Now().Equal(clk.Now()) {
		restore()
		t.Fatal("expected timing.Now to follow the fake clock")
	}
	restore()
	if timing.Now().Equal(clk.Now()) {
		t.Error("expected the real clock after restore")
	}
}

func TestFakeClock_AdvanceFiresDueTimers(t *testing.T) {
	clk := NewFakeClock()
	restore := clk.Install()
	defer restore()
	defer timing.ResetTimers()

	var fired []string
	timing.AfterFunc(50*time.Millisecond, func() { fired = append(fired, "50ms") })
	timing.AfterFunc(10*time.Millisecond, func() { fired = append(fired, "10ms") })

	clk.Advance(20 * time.Millisecond)
	if len(fired) != 1 || fired[0] != "10ms" {
		t.Fatalf("after 20ms fired = %v", fired)
	}
	clk.Advance(30 * time.Millisecond)
	if len(fired) != 2 || fired[1] != "50ms" {
		t.Errorf("after 50ms fired = %v", fired)
	}
}
