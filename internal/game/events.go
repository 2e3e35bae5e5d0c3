package game

type EventKind string

const (
	EventWildAnimal    EventKind = "wild_animal"
	EventSickTraveler  EventKind = "sick_traveler"
	EventResourceCache EventKind = "resource_cache"
	EventMerchant      EventKind = "merchant"
	EventSevereStorm   EventKind = "severe_storm"
)

// ChoiceID names the action a choice takes. Resolution is keyed on it, not
// on the event it belongs to.
type ChoiceID string

const (
	ChoiceFight        ChoiceID = "fight"
	ChoiceUseWeapon    ChoiceID = "use_weapon"
	ChoiceScare        ChoiceID = "scare"
	ChoiceFlee         ChoiceID = "flee"
	ChoiceHelp         ChoiceID = "help"
	ChoiceShare        ChoiceID = "share"
	ChoiceIgnore       ChoiceID = "ignore"
	ChoiceRob          ChoiceID = "rob"
	ChoiceTakeAll      ChoiceID = "take_all"
	ChoiceTakeSome     ChoiceID = "take_some"
	ChoiceLeave        ChoiceID = "leave"
	ChoiceTrap         ChoiceID = "trap"
	ChoiceTradeFood    ChoiceID = "trade_food"
	ChoiceTradeWeapons ChoiceID = "trade_weapons"
	ChoiceMoveOn       ChoiceID = "move_on"
	ChoiceWaitOut      ChoiceID = "wait_out"
	ChoicePushThrough  ChoiceID = "push_through"
	ChoiceShelter      ChoiceID = "shelter"
)

type Choice struct {
	ID   ChoiceID
	Text string
}

// Event is an encounter awaiting a decision. ID is assigned when the event
// is triggered; catalog entries carry an empty ID.
type Event struct {
	ID          string
	Kind        EventKind
	Title       string
	Description string
	Choices     []Choice
}

func (e Event) Choice(id ChoiceID) (Choice, bool) {
	for _, c := range e.Choices {
		if c.ID == id {
			return c, true
		}
	}
	return Choice{}, false
}

func (e Event) clone() *Event {
	out := e
	out.Choices = append([]Choice(nil), e.Choices...)
	return &out
}

// EncounterCatalog returns a fresh copy of every encounter that
// TriggerRandomEvent can select from.
func EncounterCatalog() []Event {
	catalog := []Event{
		{
			Kind:        EventWildAnimal,
			Title:       "Wild Animal Attack",
			Description: "A hostile wolf blocks your path, growling.",
			Choices: []Choice{
				{ID: ChoiceFight, Text: "Fight it (-health, +food if you win)"},
				{ID: ChoiceUseWeapon, Text: "Use a weapon (-weapon, +food)"},
				{ID: ChoiceScare, Text: "Try to scare it away"},
				{ID: ChoiceFlee, Text: "Run away (-stamina)"},
			},
		},
		{
			Kind:        EventSickTraveler,
			Title:       "Sick Traveler",
			Description: "You encounter a sick traveler asking for help.",
			Choices: []Choice{
				{ID: ChoiceHelp, Text: "Help them (-medicine, +morale)"},
				{ID: ChoiceShare, Text: "Share food and water"},
				{ID: ChoiceIgnore, Text: "Ignore them (-morale)"},
				{ID: ChoiceRob, Text: "Rob them (+resources, -morale)"},
			},
		},
		{
			Kind:        EventResourceCache,
			Title:       "Resource Cache",
			Description: "You found an abandoned supply cache.",
			Choices: []Choice{
				{ID: ChoiceTakeAll, Text: "Take everything (+resources)"},
				{ID: ChoiceTakeSome, Text: "Take only what you need (+some resources)"},
				{ID: ChoiceLeave, Text: "Leave it for others (+morale)"},
				{ID: ChoiceTrap, Text: "Set a trap for other survivors"},
			},
		},
		{
			Kind:        EventMerchant,
			Title:       "Traveling Merchant",
			Description: "A merchant with a heavy pack waves you over.",
			Choices: []Choice{
				{ID: ChoiceTradeFood, Text: "Trade 10 food for 5 medicine"},
				{ID: ChoiceTradeWeapons, Text: "Trade 2 weapons for 15 food"},
				{ID: ChoiceMoveOn, Text: "Continue without trading"},
			},
		},
		{
			Kind:        EventSevereStorm,
			Title:       "Severe Storm",
			Description: "A severe storm is rolling in fast.",
			Choices: []Choice{
				{ID: ChoiceWaitOut, Text: "Wait it out (-5 fuel for warmth)"},
				{ID: ChoicePushThrough, Text: "Push through the storm (-health)"},
				{ID: ChoiceShelter, Text: "Find shelter (lose time)"},
			},
		},
	}
	return catalog
}

type DailyEventKind string

const (
	DailyHazard DailyEventKind = "hazard"
	DailyBoon   DailyEventKind = "boon"
)

type DailyEvent struct {
	Text string
	Kind DailyEventKind
}

// DailyEventCatalog is drawn from uniformly, so the hazard/boon split
// follows the entry count.
func DailyEventCatalog() []DailyEvent {
	return []DailyEvent{
		{Text: "Harsh weather slows your progress", Kind: DailyHazard},
		{Text: "You found some berries along the way", Kind: DailyBoon},
		{Text: "A storm damages your supplies", Kind: DailyHazard},
		{Text: "You met friendly travelers who shared food", Kind: DailyBoon},
	}
}
