package autoplay

import (
	"context"
	"errors"
	"testing"

	"github.com/appengine-ltd/deathgame/internal/game"
)

func newEngine(t *testing.T, seed int64, opts ...game.Option) *game.Engine {
	t.Helper()

	engine, err := game.New(append([]game.Option{game.WithSeed(seed)}, opts...)...)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func encounter(t *testing.T, kind game.EventKind) *game.Event {
	t.Helper()

	for _, event := range game.EncounterCatalog() {
		if event.Kind == kind {
			return &event
		}
	}
	t.Fatalf("no encounter of kind %s", kind)
	return nil
}

func TestRunReachesTerminalState(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		engine := newEngine(t, seed)

		summary, err := Run(context.Background(), engine, DefaultPolicy(), DefaultConfig())
		if err != nil {
			t.Fatalf("seed %d: run: %v", seed, err)
		}
		if !summary.GameOver {
			t.Fatalf("seed %d: expected the run to end within %d ticks, got %+v", seed, DefaultConfig().MaxTicks, summary)
		}
		if summary.Victory && summary.Distance < 1000 {
			t.Fatalf("seed %d: expected victory only at the target, got %v", seed, summary.Distance)
		}
		if summary.Outcome() == "unfinished" {
			t.Fatalf("seed %d: expected a finished outcome", seed)
		}
	}
}

func TestRunStopsAtMaxTicks(t *testing.T) {
	engine := newEngine(t, 3)

	summary, err := Run(context.Background(), engine, DefaultPolicy(), Config{DT: 1, MaxTicks: 5})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if summary.Ticks != 5 {
		t.Fatalf("expected 5 ticks, got %d", summary.Ticks)
	}
	if summary.GameOver {
		t.Fatalf("expected the run to still be going")
	}
	if summary.Outcome() != "unfinished" {
		t.Fatalf("expected unfinished outcome, got %q", summary.Outcome())
	}
}

func TestRunHonoursCancellation(t *testing.T) {
	engine := newEngine(t, 4)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	summary, err := Run(ctx, engine, DefaultPolicy(), DefaultConfig())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if summary.Ticks != 0 {
		t.Fatalf("expected no ticks after cancellation, got %d", summary.Ticks)
	}
}

func TestRunRejectsBadConfig(t *testing.T) {
	engine := newEngine(t, 5)
	if _, err := Run(context.Background(), engine, DefaultPolicy(), Config{DT: 0, MaxTicks: 10}); err == nil {
		t.Fatalf("expected zero dt to be rejected")
	}
	if _, err := Run(context.Background(), engine, DefaultPolicy(), Config{DT: 1}); err == nil {
		t.Fatalf("expected zero max ticks to be rejected")
	}
}

func TestRunIsDeterministicForSeed(t *testing.T) {
	a, err := Run(context.Background(), newEngine(t, 77), DefaultPolicy(), DefaultConfig())
	if err != nil {
		t.Fatalf("run a: %v", err)
	}
	b, err := Run(context.Background(), newEngine(t, 77), DefaultPolicy(), DefaultConfig())
	if err != nil {
		t.Fatalf("run b: %v", err)
	}
	if a.Ticks != b.Ticks || a.Day != b.Day || a.Distance != b.Distance || a.Outcome() != b.Outcome() {
		t.Fatalf("expected identical runs, got %+v and %+v", a, b)
	}
}

func TestPolicyWalksWhenRested(t *testing.T) {
	d := DefaultPolicy().Decide(game.Status{Stamina: 80})
	if d.Kind != ActionMove || d.DX != 25 || d.DY != 0 {
		t.Fatalf("expected a 25-unit step east, got %+v", d)
	}
}

func TestPolicyRestsWhenTired(t *testing.T) {
	d := DefaultPolicy().Decide(game.Status{Stamina: 5})
	if d.Kind != ActionRest {
		t.Fatalf("expected rest, got %v", d.Kind)
	}
}

func TestPolicySkipsUnaffordableChoices(t *testing.T) {
	st := game.Status{
		Stamina:   80,
		Inventory: game.Inventory{Weapons: 0},
		Current:   encounter(t, game.EventWildAnimal),
	}
	d := DefaultPolicy().Decide(st)
	if d.Kind != ActionChoose || d.Choice != game.ChoiceFlee {
		t.Fatalf("expected to flee without weapons, got %+v", d)
	}

	st.Inventory.Weapons = 3
	if d := DefaultPolicy().Decide(st); d.Choice != game.ChoiceUseWeapon {
		t.Fatalf("expected to use a weapon, got %s", d.Choice)
	}
}

func TestPolicyFallsBackToFirstChoice(t *testing.T) {
	policy := DefaultPolicy()
	policy.Preferences = nil
	st := game.Status{Current: encounter(t, game.EventSevereStorm)}

	if d := policy.Decide(st); d.Choice != game.ChoiceWaitOut {
		t.Fatalf("expected first choice wait_out, got %s", d.Choice)
	}
}
