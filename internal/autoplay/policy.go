package autoplay

import "github.com/appengine-ltd/deathgame/internal/game"

// Cautious walks east at a fixed stride, rests when tired, and answers
// encounters from a preference list, skipping choices it cannot afford.
type Cautious struct {
	Stride      float64
	RestBelow   float64
	Preferences []game.ChoiceID
	DirectionX  float64
	DirectionY  float64
}

func DefaultPolicy() *Cautious {
	return &Cautious{
		Stride:     25,
		RestBelow:  10,
		DirectionX: 1,
		Preferences: []game.ChoiceID{
			game.ChoiceTakeAll,
			game.ChoiceUseWeapon,
			game.ChoiceTradeWeapons,
			game.ChoiceShelter,
			game.ChoiceWaitOut,
			game.ChoiceHelp,
			game.ChoiceShare,
			game.ChoiceFlee,
			game.ChoiceTakeSome,
			game.ChoiceMoveOn,
			game.ChoiceIgnore,
		},
	}
}

func (c *Cautious) Decide(st game.Status) Decision {
	if st.Current != nil {
		return Decision{Kind: ActionChoose, Choice: c.choose(st)}
	}
	if st.Stamina < c.RestBelow {
		return Decision{Kind: ActionRest}
	}
	if c.Stride <= 0 {
		return Decision{Kind: ActionWait}
	}
	return Decision{Kind: ActionMove, DX: c.DirectionX * c.Stride, DY: c.DirectionY * c.Stride}
}

func (c *Cautious) choose(st game.Status) game.ChoiceID {
	for _, want := range c.Preferences {
		if _, ok := st.Current.Choice(want); !ok {
			continue
		}
		if affordable(want, st.Inventory) {
			return want
		}
	}
	return st.Current.Choices[0].ID
}

// affordable mirrors the resource gates of the resolution rules, so the
// autopilot never picks a choice that would fall back to its bad branch.
func affordable(id game.ChoiceID, inv game.Inventory) bool {
	switch id {
	case game.ChoiceUseWeapon:
		return inv.Weapons > 0
	case game.ChoiceTradeWeapons:
		return inv.Weapons >= 2
	case game.ChoiceTradeFood:
		return inv.Food >= 10
	case game.ChoiceWaitOut:
		return inv.Fuel >= 5
	case game.ChoiceHelp:
		return inv.Medicine > 0
	case game.ChoiceShare:
		return inv.Food >= 5 && inv.Water >= 3
	default:
		return true
	}
}
