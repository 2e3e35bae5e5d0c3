package game

import "testing"

func TestResolutionRules(t *testing.T) {
	stocked := Inventory{Food: 50, Water: 30, Medicine: 10, Fuel: 20, Weapons: 5}

	tests := []struct {
		name   string
		choice ChoiceID
		inv    Inventory
		draws  []int
		want   Delta
	}{
		{"fight won", ChoiceFight, stocked, []int{0}, Delta{Health: -25, Resources: Inventory{Food: 15}, Cause: DeathCauseViolence}},
		{"fight lost", ChoiceFight, stocked, []int{1}, Delta{Health: -40, Cause: DeathCauseViolence}},
		{"weapon used", ChoiceUseWeapon, stocked, nil, Delta{Resources: Inventory{Weapons: -1, Food: 20}}},
		{"weapon missing", ChoiceUseWeapon, Inventory{}, []int{0}, Delta{Health: -15, Cause: DeathCauseViolence}},
		{"scare worked", ChoiceScare, stocked, []int{0}, Delta{}},
		{"scare failed", ChoiceScare, stocked, nil, Delta{Health: -20, Stamina: -25, Cause: DeathCauseViolence}},
		{"flee", ChoiceFlee, stocked, nil, Delta{Stamina: -30}},
		{"help with medicine", ChoiceHelp, stocked, nil, Delta{Resources: Inventory{Medicine: -1}, Morale: 10}},
		{"help without medicine", ChoiceHelp, Inventory{}, nil, Delta{Morale: -5}},
		{"share", ChoiceShare, Inventory{Food: 5, Water: 3}, nil, Delta{Resources: Inventory{Food: -5, Water: -3}, Health: 5}},
		{"share short", ChoiceShare, Inventory{Food: 4, Water: 3}, nil, Delta{}},
		{"ignore", ChoiceIgnore, stocked, nil, Delta{Morale: -15}},
		{"rob", ChoiceRob, stocked, nil, Delta{Resources: Inventory{Food: 5, Water: 3}, Morale: -25}},
		{"take all", ChoiceTakeAll, stocked, nil, Delta{Resources: Inventory{Food: 20, Water: 15, Medicine: 5, Fuel: 10}}},
		{"take some", ChoiceTakeSome, stocked, []int{0, 0, 0}, Delta{Resources: Inventory{Food: 3, Water: 2}}},
		{"leave", ChoiceLeave, stocked, nil, Delta{Morale: 20}},
		{"trap", ChoiceTrap, stocked, nil, Delta{Resources: Inventory{Weapons: 2}, Morale: -10}},
		{"trade food", ChoiceTradeFood, Inventory{Food: 10}, nil, Delta{Resources: Inventory{Food: -10, Medicine: 5}}},
		{"trade food short", ChoiceTradeFood, Inventory{Food: 9}, nil, Delta{}},
		{"trade weapons", ChoiceTradeWeapons, Inventory{Weapons: 2}, nil, Delta{Resources: Inventory{Weapons: -2, Food: 15}}},
		{"trade weapons short", ChoiceTradeWeapons, Inventory{Weapons: 1}, nil, Delta{}},
		{"move on", ChoiceMoveOn, stocked, nil, Delta{}},
		{"wait out", ChoiceWaitOut, Inventory{Fuel: 5}, nil, Delta{Resources: Inventory{Fuel: -5}}},
		{"wait out cold", ChoiceWaitOut, Inventory{Fuel: 4}, []int{0}, Delta{Health: -5, Cause: DeathCauseExposure}},
		{"push through", ChoicePushThrough, stocked, nil, Delta{Health: -20, Cause: DeathCauseWeather}},
		{"shelter", ChoiceShelter, stocked, nil, Delta{Seconds: 30}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rule, ok := resolutionRules[tc.choice]
			if !ok {
				t.Fatalf("expected a rule for %q", tc.choice)
			}
			got := rule(ruleInput{
				Inventory:      tc.inv,
				ShelterSeconds: 30,
				dice:           dice{rng: &scriptedRand{values: tc.draws}},
			})
			if got.Outcome == "" {
				t.Fatalf("expected an outcome message")
			}
			got.Outcome = ""
			if got != tc.want {
				t.Fatalf("expected %+v, got %+v", tc.want, got)
			}
		})
	}
}

func TestEveryCatalogChoiceHasRule(t *testing.T) {
	seen := map[ChoiceID]bool{}
	for _, event := range EncounterCatalog() {
		if len(event.Choices) < 2 || len(event.Choices) > 4 {
			t.Fatalf("expected 2-4 choices for %s, got %d", event.Kind, len(event.Choices))
		}
		for _, c := range event.Choices {
			if _, ok := resolutionRules[c.ID]; !ok {
				t.Fatalf("expected a rule for %s/%s", event.Kind, c.ID)
			}
			seen[c.ID] = true
		}
	}
	for id := range resolutionRules {
		if !seen[id] {
			t.Fatalf("rule %q is not offered by any encounter", id)
		}
	}
}

func TestDescribeGain(t *testing.T) {
	if got := describeGain(Inventory{}); got != "Nothing useful." {
		t.Fatalf("expected nothing useful, got %q", got)
	}
	if got := describeGain(Inventory{Food: 3, Fuel: 1}); got != "+3 food, +1 fuel." {
		t.Fatalf("expected food and fuel, got %q", got)
	}
}
