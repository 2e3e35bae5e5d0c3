package game

import "fmt"

type MishapKind string

const (
	MishapIllness      MishapKind = "illness"
	MishapInjury       MishapKind = "injury"
	MishapEquipment    MishapKind = "equipment_loss"
	MishapFoodSpoilage MishapKind = "food_spoilage"
	MishapWaterTaint   MishapKind = "water_contamination"
)

// Mishap is an automatic misfortune. When PreventWith is set and the player
// holds PreventAmount of it, the resource is spent instead of the effect.
type Mishap struct {
	Kind          MishapKind
	Title         string
	Description   string
	PreventWith   Resource
	PreventAmount int
	effect        resolution
}

func MishapCatalog() []Mishap {
	return []Mishap{
		{
			Kind:          MishapIllness,
			Title:         "Illness",
			Description:   "You feel feverish and weak.",
			PreventWith:   ResourceMedicine,
			PreventAmount: 2,
			effect: func(ruleInput) Delta {
				return Delta{Health: -15, Cause: DeathCauseIllness, Outcome: "The fever takes its toll. -15 health."}
			},
		},
		{
			Kind:          MishapInjury,
			Title:         "Injury",
			Description:   "You trip and injure yourself.",
			PreventWith:   ResourceMedicine,
			PreventAmount: 1,
			effect: func(ruleInput) Delta {
				return Delta{Health: -10, Cause: DeathCauseViolence, Outcome: "The wound aches. -10 health."}
			},
		},
		{
			Kind:        MishapEquipment,
			Title:       "Equipment Loss",
			Description: "Some of your equipment was lost or damaged.",
			effect: func(ruleInput) Delta {
				return Delta{Resources: Inventory{Weapons: -1}, Outcome: "You lost a weapon."}
			},
		},
		{
			Kind:        MishapFoodSpoilage,
			Title:       "Food Spoilage",
			Description: "Some of your food has spoiled.",
			effect: func(in ruleInput) Delta {
				food := in.dice.roll(IntRange{Min: 3, Max: 8})
				return Delta{Resources: Inventory{Food: -food}, Outcome: fmt.Sprintf("-%d food.", food)}
			},
		},
		{
			Kind:          MishapWaterTaint,
			Title:         "Water Contamination",
			Description:   "Your water supply may be contaminated.",
			PreventWith:   ResourceMedicine,
			PreventAmount: 1,
			effect: func(in ruleInput) Delta {
				water := in.dice.roll(IntRange{Min: 5, Max: 10})
				damage := in.dice.roll(IntRange{Min: 8, Max: 15})
				return Delta{
					Resources: Inventory{Water: -water},
					Health:    -float64(damage),
					Cause:     DeathCauseIllness,
					Outcome:   fmt.Sprintf("-%d water, -%d health.", water, damage),
				}
			},
		},
	}
}

func (m Mishap) preventable() bool {
	return m.PreventWith != "" && m.PreventAmount > 0
}
