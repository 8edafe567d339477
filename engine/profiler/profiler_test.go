package profiler

import (
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestTickLogsOncePerInterval(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	clock := &fakeClock{t: time.Unix(0, 0)}
	p := NewProfiler(WithLogger(zap.New(core)), WithClock(clock.now), WithInterval(time.Second))

	for i := range 9 {
		clock.advance(100 * time.Millisecond)
		if p.Tick() {
			t.Fatalf("tick %d logged before the interval elapsed", i)
		}
	}
	clock.advance(100 * time.Millisecond)
	if !p.Tick() {
		t.Fatal("tenth tick did not log")
	}

	if got := p.FPS(); got != 10 {
		t.Errorf("FPS() = %v, want 10", got)
	}
	if got := p.FrameTime(); got != 100*time.Millisecond {
		t.Errorf("FrameTime() = %v, want 100ms", got)
	}

	entries := logs.FilterMessage("frame stats").All()
	if len(entries) != 1 {
		t.Fatalf("logged %d entries, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["fps"] != float64(10) {
		t.Errorf("fps field = %v", fields["fps"])
	}
	if _, ok := fields["heap_mb"]; !ok {
		t.Error("heap_mb field missing")
	}
	if entries[0].LoggerName != "profiler" {
		t.Errorf("logger name = %q", entries[0].LoggerName)
	}
}

func TestTickResetsCounters(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	p := NewProfiler(WithClock(clock.now), WithInterval(time.Second))

	clock.advance(2 * time.Second)
	if !p.Tick() {
		t.Fatal("first interval did not log")
	}
	if got := p.FPS(); got != 0.5 {
		t.Errorf("FPS() = %v, want 0.5", got)
	}

	clock.advance(250 * time.Millisecond)
	if p.Tick() {
		t.Error("counter was not reset after logging")
	}
}

func TestWithIntervalIgnoresNonPositive(t *testing.T) {
	p := NewProfiler(WithInterval(0), WithInterval(-time.Second))
	if p.updateInterval != time.Second {
		t.Errorf("updateInterval = %v, want 1s", p.updateInterval)
	}
}
