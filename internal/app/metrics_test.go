package app

import (
	"strings"
	"testing"
	"time"
)

func TestNewMetrics(t *testing.T) {
	snapshot := NewMetrics().Snapshot()
	if snapshot.FrameCount != 0 {
		t.Errorf("expected 0 frame count, got %d", snapshot.FrameCount)
	}
	if snapshot.MinFrameTimeNs != 0 {
		t.Errorf("expected 0 min frame time (sentinel handled), got %d", snapshot.MinFrameTimeNs)
	}
}

func TestMetrics_RecordFrame(t *testing.T) {
	m := NewMetrics()

	m.RecordFrame(10 * time.Millisecond)
	m.RecordFrame(20 * time.Millisecond)
	m.RecordFrame(6 * time.Millisecond)

	snapshot := m.Snapshot()
	if snapshot.FrameCount != 3 {
		t.Errorf("expected 3 frames, got %d", snapshot.FrameCount)
	}
	if snapshot.MinFrameTimeNs != int64(6*time.Millisecond) {
		t.Errorf("expected min 6ms, got %d ns", snapshot.MinFrameTimeNs)
	}
	if snapshot.MaxFrameTimeNs != int64(20*time.Millisecond) {
		t.Errorf("expected max 20ms, got %d ns", snapshot.MaxFrameTimeNs)
	}
	if snapshot.LastFrameNs != int64(6*time.Millisecond) {
		t.Errorf("expected last 6ms, got %d ns", snapshot.LastFrameNs)
	}
	if snapshot.AvgFrameTimeNs != int64(12*time.Millisecond) {
		t.Errorf("expected avg 12ms, got %d ns", snapshot.AvgFrameTimeNs)
	}
}

func TestMetrics_RecordEvent(t *testing.T) {
	m := NewMetrics()

	m.RecordEvent(2 * time.Millisecond)
	m.RecordEvent(4 * time.Millisecond)
	m.RecordKey()
	m.RecordKey()
	m.RecordMouse()

	snapshot := m.Snapshot()
	if snapshot.EventCount != 2 || snapshot.AvgEventNs != int64(3*time.Millisecond) {
		t.Errorf("events = %d avg %d ns, want 2 avg 3ms", snapshot.EventCount, snapshot.AvgEventNs)
	}
	if snapshot.KeyCount != 2 || snapshot.MouseCount != 1 {
		t.Errorf("keys = %d mouse = %d, want 2 and 1", snapshot.KeyCount, snapshot.MouseCount)
	}
	if s := snapshot.String(); !strings.Contains(s, "events=2 keys=2 mouse=1") {
		t.Errorf("String() = %q", s)
	}
}

func TestTimer(t *testing.T) {
	timer := StartTimer()
	time.Sleep(time.Millisecond)

	if elapsed := timer.Stop(); elapsed < time.Millisecond {
		t.Errorf("Stop() = %v, want at least 1ms", elapsed)
	}
	if timer.Elapsed() >= time.Second {
		t.Error("Stop() should reset the timer")
	}
}
