package game

import "fmt"

// Delta is the change a rule asks the engine to apply. Resource fields are
// signed; the engine floors them at 0 and caps them.
type Delta struct {
	Health    float64
	Stamina   float64
	Morale    float64
	Resources Inventory
	Seconds   float64
	Cause     DeathCause
	Outcome   string
}

// ruleInput is the read-only view a rule decides from.
type ruleInput struct {
	Player         PlayerState
	Inventory      Inventory
	ShelterSeconds float64
	dice           dice
}

type resolution func(in ruleInput) Delta

var (
	fightWinDamage    = IntRange{Min: 10, Max: 25}
	fightWinFood      = IntRange{Min: 5, Max: 15}
	fightLoseDamage   = IntRange{Min: 20, Max: 40}
	weaponHuntFood    = IntRange{Min: 8, Max: 20}
	bareHandsDamage   = IntRange{Min: 15, Max: 35}
	scareFailDamage   = IntRange{Min: 10, Max: 20}
	scareFailStamina  = IntRange{Min: 15, Max: 25}
	robFood           = IntRange{Min: 1, Max: 5}
	robWater          = IntRange{Min: 1, Max: 3}
	takeAllFood       = IntRange{Min: 10, Max: 20}
	takeAllWater      = IntRange{Min: 5, Max: 15}
	takeAllMedicine   = IntRange{Min: 1, Max: 5}
	takeAllFuel       = IntRange{Min: 3, Max: 10}
	takeSomeFood      = IntRange{Min: 3, Max: 8}
	takeSomeWater     = IntRange{Min: 2, Max: 6}
	takeSomeMedicine  = IntRange{Min: 0, Max: 2}
	trapWeapons       = IntRange{Min: 1, Max: 2}
	stormExposure     = IntRange{Min: 5, Max: 15}
	dailyHazardDamage = IntRange{Min: 5, Max: 15}
	dailyHazardFuel   = IntRange{Min: 1, Max: 5}
	dailyBoonFood     = IntRange{Min: 2, Max: 8}
	fleeStaminaCost   = 30.0
	pushThroughDamage = 20.0
	helpMoraleGain    = 10.0
	helpMoraleLoss    = 5.0
	ignoreMoraleLoss  = 15.0
	robMoraleLoss     = 25.0
	leaveMoraleGain   = 20.0
	trapMoraleLoss    = 10.0
	shareHealthGain   = 5.0
	shareFoodCost     = 5
	shareWaterCost    = 3
	tradeFoodCost     = 10
	tradeMedicineGain = 5
	tradeWeaponsCost  = 2
	tradeFoodGain     = 15
	waitOutFuelCost   = 5
)

var resolutionRules = map[ChoiceID]resolution{
	ChoiceFight:        resolveFight,
	ChoiceUseWeapon:    resolveUseWeapon,
	ChoiceScare:        resolveScare,
	ChoiceFlee:         resolveFlee,
	ChoiceHelp:         resolveHelp,
	ChoiceShare:        resolveShare,
	ChoiceIgnore:       resolveIgnore,
	ChoiceRob:          resolveRob,
	ChoiceTakeAll:      resolveTakeAll,
	ChoiceTakeSome:     resolveTakeSome,
	ChoiceLeave:        resolveLeave,
	ChoiceTrap:         resolveTrap,
	ChoiceTradeFood:    resolveTradeFood,
	ChoiceTradeWeapons: resolveTradeWeapons,
	ChoiceMoveOn:       resolveMoveOn,
	ChoiceWaitOut:      resolveWaitOut,
	ChoicePushThrough:  resolvePushThrough,
	ChoiceShelter:      resolveShelter,
}

func init() {
	for _, event := range EncounterCatalog() {
		for _, c := range event.Choices {
			if _, ok := resolutionRules[c.ID]; !ok {
				panic(fmt.Sprintf("game: encounter %s offers %q without a resolution rule", event.Kind, c.ID))
			}
		}
	}
}

func resolveFight(in ruleInput) Delta {
	if in.dice.oneIn(2) {
		damage := in.dice.roll(fightWinDamage)
		food := in.dice.roll(fightWinFood)
		return Delta{
			Health:    -float64(damage),
			Resources: Inventory{Food: food},
			Cause:     DeathCauseViolence,
			Outcome:   fmt.Sprintf("You won the fight but took %d damage. +%d food.", damage, food),
		}
	}
	damage := in.dice.roll(fightLoseDamage)
	return Delta{
		Health:  -float64(damage),
		Cause:   DeathCauseViolence,
		Outcome: fmt.Sprintf("The animal overwhelmed you. -%d health.", damage),
	}
}

func resolveUseWeapon(in ruleInput) Delta {
	if in.Inventory.Weapons > 0 {
		food := in.dice.roll(weaponHuntFood)
		return Delta{
			Resources: Inventory{Weapons: -1, Food: food},
			Outcome:   fmt.Sprintf("You brought it down with a weapon. +%d food.", food),
		}
	}
	damage := in.dice.roll(bareHandsDamage)
	return Delta{
		Health:  -float64(damage),
		Cause:   DeathCauseViolence,
		Outcome: fmt.Sprintf("No weapons left, you fought bare-handed. -%d health.", damage),
	}
}

func resolveScare(in ruleInput) Delta {
	if in.dice.oneIn(3) {
		return Delta{Outcome: "You scared it away."}
	}
	damage := in.dice.roll(scareFailDamage)
	stamina := in.dice.roll(scareFailStamina)
	return Delta{
		Health:  -float64(damage),
		Stamina: -float64(stamina),
		Cause:   DeathCauseViolence,
		Outcome: fmt.Sprintf("It was not impressed. -%d health, -%d stamina.", damage, stamina),
	}
}

func resolveFlee(ruleInput) Delta {
	return Delta{
		Stamina: -fleeStaminaCost,
		Outcome: fmt.Sprintf("You ran. -%.0f stamina.", fleeStaminaCost),
	}
}

func resolveHelp(in ruleInput) Delta {
	if in.Inventory.Medicine > 0 {
		return Delta{
			Resources: Inventory{Medicine: -1},
			Morale:    helpMoraleGain,
			Outcome:   "You treated the traveler. They bless your journey.",
		}
	}
	return Delta{
		Morale:  -helpMoraleLoss,
		Outcome: "You have no medicine to spare.",
	}
}

func resolveShare(in ruleInput) Delta {
	if in.Inventory.Food >= shareFoodCost && in.Inventory.Water >= shareWaterCost {
		return Delta{
			Resources: Inventory{Food: -shareFoodCost, Water: -shareWaterCost},
			Health:    shareHealthGain,
			Outcome:   "You shared your supplies. Good karma follows you.",
		}
	}
	return Delta{Outcome: "You don't have enough supplies to share."}
}

func resolveIgnore(ruleInput) Delta {
	return Delta{
		Morale:  -ignoreMoraleLoss,
		Outcome: "You walked past without a word.",
	}
}

func resolveRob(in ruleInput) Delta {
	food := in.dice.roll(robFood)
	water := in.dice.roll(robWater)
	return Delta{
		Resources: Inventory{Food: food, Water: water},
		Morale:    -robMoraleLoss,
		Outcome:   fmt.Sprintf("You robbed them. +%d food, +%d water.", food, water),
	}
}

func resolveTakeAll(in ruleInput) Delta {
	loot := Inventory{
		Food:     in.dice.roll(takeAllFood),
		Water:    in.dice.roll(takeAllWater),
		Medicine: in.dice.roll(takeAllMedicine),
		Fuel:     in.dice.roll(takeAllFuel),
	}
	return Delta{
		Resources: loot,
		Outcome:   "You took everything from the cache. " + describeGain(loot),
	}
}

func resolveTakeSome(in ruleInput) Delta {
	loot := Inventory{
		Food:     in.dice.roll(takeSomeFood),
		Water:    in.dice.roll(takeSomeWater),
		Medicine: in.dice.roll(takeSomeMedicine),
	}
	return Delta{
		Resources: loot,
		Outcome:   "You took only what you needed. " + describeGain(loot),
	}
}

func resolveLeave(ruleInput) Delta {
	return Delta{
		Morale:  leaveMoraleGain,
		Outcome: "You left the supplies for someone more desperate.",
	}
}

func resolveTrap(in ruleInput) Delta {
	weapons := in.dice.roll(trapWeapons)
	return Delta{
		Resources: Inventory{Weapons: weapons},
		Morale:    -trapMoraleLoss,
		Outcome:   fmt.Sprintf("You rigged the cache. +%d weapons.", weapons),
	}
}

func resolveTradeFood(in ruleInput) Delta {
	if in.Inventory.Food < tradeFoodCost {
		return Delta{Outcome: "The merchant wants more food than you have."}
	}
	return Delta{
		Resources: Inventory{Food: -tradeFoodCost, Medicine: tradeMedicineGain},
		Outcome:   fmt.Sprintf("Traded %d food for %d medicine.", tradeFoodCost, tradeMedicineGain),
	}
}

func resolveTradeWeapons(in ruleInput) Delta {
	if in.Inventory.Weapons < tradeWeaponsCost {
		return Delta{Outcome: "You don't have enough weapons to trade."}
	}
	return Delta{
		Resources: Inventory{Weapons: -tradeWeaponsCost, Food: tradeFoodGain},
		Outcome:   fmt.Sprintf("Traded %d weapons for %d food.", tradeWeaponsCost, tradeFoodGain),
	}
}

func resolveMoveOn(ruleInput) Delta {
	return Delta{Outcome: "You moved on."}
}

func resolveWaitOut(in ruleInput) Delta {
	if in.Inventory.Fuel >= waitOutFuelCost {
		return Delta{
			Resources: Inventory{Fuel: -waitOutFuelCost},
			Outcome:   fmt.Sprintf("You burned %d fuel to stay warm.", waitOutFuelCost),
		}
	}
	damage := in.dice.roll(stormExposure)
	return Delta{
		Health:  -float64(damage),
		Cause:   DeathCauseExposure,
		Outcome: fmt.Sprintf("Not enough fuel for a fire. -%d health.", damage),
	}
}

func resolvePushThrough(ruleInput) Delta {
	return Delta{
		Health:  -pushThroughDamage,
		Cause:   DeathCauseWeather,
		Outcome: fmt.Sprintf("You pushed through the storm. -%.0f health.", pushThroughDamage),
	}
}

func resolveShelter(in ruleInput) Delta {
	return Delta{
		Seconds: in.ShelterSeconds,
		Outcome: "You waited in shelter while the storm passed.",
	}
}

func describeGain(inv Inventory) string {
	out := ""
	for _, r := range AllResources() {
		n := inv.Get(r)
		if n == 0 {
			continue
		}
		if out != "" {
			out += ", "
		}
		out += fmt.Sprintf("+%d %s", n, r)
	}
	if out == "" {
		return "Nothing useful."
	}
	return out + "."
}
