package ui

import (
	"testing"
	"time"
)

func TestClockTickAutoDayProgression(t *testing.T) {
	m := testRunModel(t)
	m.cfg.TimeScale = 60
	m.lastTickAt = time.Date(2026, 2, 18, 10, 0, 0, 0, time.UTC)

	beforeDay := m.engine.Status().Day
	beforeFood := m.engine.Status().Inventory.Food

	updated, cmd := m.Update(clockTickMsg{at: m.lastTickAt.Add(time.Second)})
	got := updated.(menuModel)

	if got.engine.Status().Day != beforeDay+1 {
		t.Fatalf("expected auto day advance, before=%d after=%d", beforeDay, got.engine.Status().Day)
	}
	if got.engine.Status().Elapsed != 0 {
		t.Fatalf("expected elapsed reset to 0 after full day, got %v", got.engine.Status().Elapsed)
	}
	if got.engine.Status().Inventory.Food >= beforeFood {
		t.Fatalf("expected food to be consumed after progressed day, before=%d after=%d", beforeFood, got.engine.Status().Inventory.Food)
	}
	if cmd == nil {
		t.Fatalf("expected next tick to be scheduled")
	}
}

func TestClockTickPartialDayDoesNotAdvanceDay(t *testing.T) {
	m := testRunModel(t)
	m.cfg.TimeScale = 1
	m.lastTickAt = time.Date(2026, 2, 18, 10, 0, 0, 0, time.UTC)

	updated, _ := m.Update(clockTickMsg{at: m.lastTickAt.Add(30 * time.Second)})
	got := updated.(menuModel)

	if got.engine.Status().Day != 1 {
		t.Fatalf("expected no day advance on partial duration, got day %d", got.engine.Status().Day)
	}
	if got.engine.Status().Elapsed != 30 {
		t.Fatalf("expected 30s elapsed, got %v", got.engine.Status().Elapsed)
	}
}

func TestFirstTickOnlyStartsClock(t *testing.T) {
	m := testRunModel(t)

	updated, _ := m.Update(clockTickMsg{at: time.Date(2026, 2, 18, 10, 0, 0, 0, time.UTC)})
	got := updated.(menuModel)

	if got.engine.Status().Elapsed != 0 {
		t.Fatalf("expected the first tick to only record the time, got %v", got.engine.Status().Elapsed)
	}
	if got.lastTickAt.IsZero() {
		t.Fatalf("expected last tick time recorded")
	}
}

func TestClockStopsOutsideRunScreen(t *testing.T) {
	m := testRunModel(t)
	m.screen = screenMenu
	m.lastTickAt = time.Date(2026, 2, 18, 10, 0, 0, 0, time.UTC)

	updated, cmd := m.Update(clockTickMsg{at: m.lastTickAt.Add(time.Minute)})
	got := updated.(menuModel)

	if got.engine.Status().Elapsed != 0 || cmd != nil {
		t.Fatalf("expected paused clock to ignore ticks")
	}
}
