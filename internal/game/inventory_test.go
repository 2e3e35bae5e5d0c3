package game

import "testing"

func TestInventoryAdjustFloorsAndCaps(t *testing.T) {
	caps := DefaultTuning().Caps
	inv := Inventory{Food: 95, Medicine: 3}

	if got := inv.adjust(ResourceFood, 20, caps); got != 100 {
		t.Fatalf("expected food capped at 100, got %d", got)
	}
	if got := inv.adjust(ResourceMedicine, -10, caps); got != 0 {
		t.Fatalf("expected medicine floored at 0, got %d", got)
	}
	if got := inv.adjust(Resource("gold"), 5, caps); got != 0 {
		t.Fatalf("expected unknown resource to be ignored, got %d", got)
	}
}

func TestInventoryConsumeRequiresFullAmount(t *testing.T) {
	inv := Inventory{Medicine: 1}

	if inv.consume(ResourceMedicine, 2) {
		t.Fatalf("expected consume to fail without enough medicine")
	}
	if inv.Medicine != 1 {
		t.Fatalf("expected failed consume to leave medicine at 1, got %d", inv.Medicine)
	}
	if !inv.consume(ResourceMedicine, 1) || inv.Medicine != 0 {
		t.Fatalf("expected medicine consumed, got %d", inv.Medicine)
	}
}

func TestLevelFor(t *testing.T) {
	tests := []struct {
		current int
		want    ResourceLevel
	}{
		{100, LevelGood},
		{71, LevelGood},
		{70, LevelModerate},
		{41, LevelModerate},
		{40, LevelLow},
		{21, LevelLow},
		{20, LevelCritical},
		{1, LevelCritical},
		{0, LevelEmpty},
	}
	for _, tc := range tests {
		if got := levelFor(tc.current, 100); got != tc.want {
			t.Fatalf("expected %d/100 to be %s, got %s", tc.current, tc.want, got)
		}
	}
	if got := levelFor(5, 0); got != LevelEmpty {
		t.Fatalf("expected zero max to be empty, got %s", got)
	}
}
