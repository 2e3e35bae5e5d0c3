package parser

import (
	"math"
	"testing"
)

var wildAnimal = ParseContext{Choices: []string{"fight", "use_weapon", "scare", "flee"}}

func TestNormalisationTable(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "  STATS  ", want: "stats"},
		{in: "take_all!!", want: "take all"},
		{in: "go   N", want: "go n"},
		{in: "?", want: "?"},
	}
	for _, tc := range tests {
		got := normaliseInput(tc.in)
		if got != tc.want {
			t.Fatalf("normaliseInput(%q)=%q want=%q", tc.in, got, tc.want)
		}
	}
}

func TestAliasInvMapsToStatus(t *testing.T) {
	p := New()
	intent := p.Parse(ParseContext{}, "inv")
	if intent.Verb != "status" {
		t.Fatalf("expected status verb, got %q", intent.Verb)
	}
	if intent.Kind != Query {
		t.Fatalf("expected query kind, got %v", intent.Kind)
	}
	if intent.Clarify != nil {
		t.Fatalf("did not expect clarify: %+v", intent.Clarify)
	}
}

func TestTypoStatsMapsToStatus(t *testing.T) {
	p := New()
	intent := p.Parse(ParseContext{}, "statsu")
	if intent.Verb != "status" {
		t.Fatalf("expected status verb, got %q", intent.Verb)
	}
	if intent.Confidence < 0.5 {
		t.Fatalf("expected decent confidence for typo correction, got %.2f", intent.Confidence)
	}
}

func TestGoWithDirectionAndDistance(t *testing.T) {
	p := New()
	intent := p.Parse(ParseContext{}, "walk N 25")
	if intent.Verb != "go" {
		t.Fatalf("expected go verb, got %q", intent.Verb)
	}
	if len(intent.Args) != 1 || intent.Args[0] != "north" {
		t.Fatalf("expected north, got %+v", intent.Args)
	}
	if intent.Quantity == nil || intent.Quantity.N != 25 {
		t.Fatalf("expected distance 25, got %+v", intent.Quantity)
	}
}

func TestGoDistanceWithStepSuffix(t *testing.T) {
	p := New()
	intent := p.Parse(ParseContext{}, "go east 30steps")
	if len(intent.Args) != 1 || intent.Args[0] != "east" {
		t.Fatalf("expected east, got %+v", intent.Args)
	}
	if intent.Quantity == nil || intent.Quantity.N != 30 || intent.Quantity.Raw != "30steps" {
		t.Fatalf("expected 30 from 30steps, got %+v", intent.Quantity)
	}
}

func TestGoFuzzyDirection(t *testing.T) {
	p := New()
	intent := p.Parse(ParseContext{}, "go soutth")
	if intent.Verb != "go" || len(intent.Args) != 1 || intent.Args[0] != "south" {
		t.Fatalf("expected go south, got %q %+v (clarify %+v)", intent.Verb, intent.Args, intent.Clarify)
	}
}

func TestGoWithoutDirectionAsksWhichWay(t *testing.T) {
	p := New()
	intent := p.Parse(ParseContext{}, "go")
	if intent.Clarify == nil {
		t.Fatalf("expected clarify for go without direction")
	}
	if len(intent.Clarify.Options) != 4 {
		t.Fatalf("expected 4 direction options, got %d", len(intent.Clarify.Options))
	}
}

func TestFreeTextDirectionInference(t *testing.T) {
	p := New()
	intent := p.Parse(ParseContext{}, "lets run south")
	if intent.Verb != "go" || len(intent.Args) == 0 || intent.Args[0] != "south" {
		t.Fatalf("expected go south, got %q %+v", intent.Verb, intent.Args)
	}
}

func TestRestAliases(t *testing.T) {
	p := New()
	for _, in := range []string{"rest", "sleep", "camp", "i am so tired"} {
		if intent := p.Parse(ParseContext{}, in); intent.Verb != "rest" {
			t.Fatalf("expected rest for %q, got %q", in, intent.Verb)
		}
	}
}

func TestBareChoiceWordWhilePending(t *testing.T) {
	p := New()
	intent := p.Parse(wildAnimal, "figt")
	if intent.Verb != "choose" {
		t.Fatalf("expected choose verb, got %q", intent.Verb)
	}
	if len(intent.Args) != 1 || intent.Args[0] != "fight" {
		t.Fatalf("expected fight, got %+v", intent.Args)
	}
}

func TestBareDigitWhilePending(t *testing.T) {
	p := New()
	intent := p.Parse(wildAnimal, "2")
	if intent.Verb != "choose" || len(intent.Args) != 1 || intent.Args[0] != "2" {
		t.Fatalf("expected choose 2, got %q %+v", intent.Verb, intent.Args)
	}

	intent = p.Parse(wildAnimal, "7")
	if intent.Verb == "choose" {
		t.Fatalf("expected out-of-range digit to not choose")
	}
}

func TestChooseMultiWordChoice(t *testing.T) {
	p := New()
	ctx := ParseContext{Choices: []string{"take_all", "take_some", "leave", "trap"}}

	intent := p.Parse(ctx, "choose take all")
	if intent.Verb != "choose" || len(intent.Args) != 1 || intent.Args[0] != "take_all" {
		t.Fatalf("expected choose take_all, got %q %+v (clarify %+v)", intent.Verb, intent.Args, intent.Clarify)
	}

	intent = p.Parse(ctx, "take some")
	if intent.Verb != "choose" || intent.Args[0] != "take_some" {
		t.Fatalf("expected bare take some to choose, got %q %+v", intent.Verb, intent.Args)
	}
}

func TestChoiceWinsOverCommandWord(t *testing.T) {
	p := New()
	ctx := ParseContext{Choices: []string{"help", "share", "ignore", "rob"}}

	intent := p.Parse(ctx, "help")
	if intent.Verb != "choose" || intent.Args[0] != "help" {
		t.Fatalf("expected help to answer the encounter, got %q %+v", intent.Verb, intent.Args)
	}
	if intent = p.Parse(ctx, "?"); intent.Verb != "help" {
		t.Fatalf("expected ? to still reach help, got %q", intent.Verb)
	}
}

func TestMoveOnIsAChoiceNotADirection(t *testing.T) {
	p := New()
	ctx := ParseContext{Choices: []string{"trade_food", "trade_weapons", "move_on"}}

	intent := p.Parse(ctx, "move on")
	if intent.Verb != "choose" || intent.Args[0] != "move_on" {
		t.Fatalf("expected choose move_on, got %q %+v", intent.Verb, intent.Args)
	}
}

func TestAmbiguousChoiceReturnsClarify(t *testing.T) {
	p := New()
	ctx := ParseContext{Choices: []string{"trade_food", "trade_weapons", "move_on"}}

	intent := p.Parse(ctx, "choose trade")
	if intent.Clarify == nil {
		t.Fatalf("expected clarify for ambiguous trade")
	}
	if len(intent.Clarify.Options) != 2 {
		t.Fatalf("expected 2 clarify options, got %d", len(intent.Clarify.Options))
	}
}

func TestChooseWithNothingPending(t *testing.T) {
	p := New()
	intent := p.Parse(ParseContext{}, "choose 1")
	if intent.Clarify == nil {
		t.Fatalf("expected clarify when nothing is pending")
	}
}

func TestUnknownInputAsksForCommand(t *testing.T) {
	p := New()
	intent := p.Parse(ParseContext{}, "xyzzy plugh")
	if intent.Kind != Unknown || intent.Clarify == nil {
		t.Fatalf("expected unknown with clarify, got %+v", intent)
	}
}

func TestDirectionVector(t *testing.T) {
	dx, dy, ok := DirectionVector("n")
	if !ok || dx != 0 || dy != -1 {
		t.Fatalf("expected north to be (0,-1), got (%v,%v) ok=%v", dx, dy, ok)
	}
	dx, dy, ok = DirectionVector("southeast")
	if !ok || math.Abs(math.Hypot(dx, dy)-1) > 1e-9 || dx <= 0 || dy <= 0 {
		t.Fatalf("expected unit southeast vector, got (%v,%v)", dx, dy)
	}
	if _, _, ok := DirectionVector("sideways"); ok {
		t.Fatalf("expected unknown direction to fail")
	}
}

func TestIntentToCommandString(t *testing.T) {
	intent := Intent{Verb: "go", Args: []string{"north"}, Quantity: &Quantity{Raw: "25"}}
	if got := IntentToCommandString(intent); got != "go north 25" {
		t.Fatalf("expected go north 25, got %q", got)
	}
}
