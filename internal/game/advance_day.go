package game

import "fmt"

type dailyNeed struct {
	resource Resource
	use      IntRange
	penalty  float64
	cause    DeathCause
}

func (t Tuning) dailyNeeds() []dailyNeed {
	return []dailyNeed{
		{resource: ResourceFood, use: t.FoodUse, penalty: t.FoodShortagePenalty, cause: DeathCauseStarvation},
		{resource: ResourceWater, use: t.WaterUse, penalty: t.WaterShortagePenalty, cause: DeathCauseDehydration},
		{resource: ResourceFuel, use: t.FuelUse, penalty: t.FuelShortagePenalty, cause: DeathCauseExposure},
	}
}

func (e *Engine) advanceDay() {
	s := &e.session
	s.Day++
	s.Elapsed = 0

	for _, need := range e.tuning.dailyNeeds() {
		used := e.dice.roll(need.use)
		if s.Inventory.adjust(need.resource, -used, e.tuning.Caps) > 0 {
			continue
		}
		if need.penalty > 0 && s.Player.Health > 0 {
			s.lastHarm = need.cause
		}
		s.Player.Health -= need.penalty
		s.record(e.tuning.HistoryLimit, HistoryEntry{
			Kind:   HistoryShortage,
			Title:  fmt.Sprintf("Out of %s", need.resource),
			Detail: fmt.Sprintf("-%.0f health.", need.penalty),
		})
	}

	clampPlayer(&s.Player)
	if s.Player.Health <= 0 {
		return
	}

	s.Player.Stamina += e.tuning.DailyStaminaGain
	clampPlayer(&s.Player)

	if e.dice.oneIn(e.tuning.DailyEventOdds) {
		catalog := DailyEventCatalog()
		event := catalog[e.dice.pick(len(catalog))]
		delta := resolveDailyEvent(event, e.view())
		s.record(e.tuning.HistoryLimit, HistoryEntry{Kind: HistoryDaily, Title: event.Text, Detail: delta.Outcome})
		e.apply(delta)
	}

	s.snapshotSupplies(e.tuning.SupplyHistory)
}

func resolveDailyEvent(event DailyEvent, in ruleInput) Delta {
	switch event.Kind {
	case DailyHazard:
		damage := in.dice.roll(dailyHazardDamage)
		fuel := in.dice.roll(dailyHazardFuel)
		return Delta{
			Health:    -float64(damage),
			Resources: Inventory{Fuel: -fuel},
			Cause:     DeathCauseWeather,
			Outcome:   fmt.Sprintf("-%d health, -%d fuel.", damage, fuel),
		}
	case DailyBoon:
		food := in.dice.roll(dailyBoonFood)
		return Delta{
			Resources: Inventory{Food: food},
			Outcome:   fmt.Sprintf("+%d food.", food),
		}
	default:
		return Delta{}
	}
}
