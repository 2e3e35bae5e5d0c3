package parser

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
)

type Parser struct {
	registry *Registry
}

func New() *Parser {
	return &Parser{registry: DefaultRegistry()}
}

func (p *Parser) RegisterCommand(c CommandDef) {
	p.registry.RegisterCommand(c)
}

func (p *Parser) Commands() []CommandDef {
	return p.registry.Commands()
}

func (p *Parser) Parse(ctx ParseContext, raw string) Intent {
	intent := Intent{
		Raw:        raw,
		Normalised: normaliseInput(raw),
		Kind:       Unknown,
		Confidence: 0,
	}
	if intent.Normalised == "" {
		intent.Clarify = &ClarifyQuestion{Prompt: "Enter a command or intent.", Options: nil}
		return intent
	}

	// A pending encounter claims exact choice words and bare numbers before
	// commands, so "help" or "move on" answer the encounter.
	if len(ctx.Choices) > 0 {
		if choice, ok := exactChoice(ctx, intent.Normalised); ok {
			return chooseIntent(raw, intent.Normalised, choice, 1)
		}
	}

	tokens := tokenise(intent.Normalised)
	cmdMatch, alternates := p.registry.matchCommand(tokens)
	if cmdMatch.Canonical == "" || cmdMatch.Score < 0.5 {
		if len(ctx.Choices) > 0 {
			if matches, confidence, tie := resolveChoice(ctx, intent.Normalised); len(matches) > 0 {
				if tie {
					intent.Clarify = choiceClarify(matches, confidence)
					return intent
				}
				return chooseIntent(raw, intent.Normalised, matches[0], confidence)
			}
		}
		inferred := inferFreeTextIntent(raw, intent.Normalised)
		if inferred != nil {
			return *inferred
		}
		intent.Clarify = &ClarifyQuestion{
			Prompt: "I couldn't map that to a command. Try help, status, go, rest, choose, history, reset, quit.",
		}
		return intent
	}

	if len(alternates) > 0 && (cmdMatch.Score-alternates[0].Score) < 0.05 && alternates[0].Score > 0.65 {
		options := []Intent{
			{
				Raw:        raw,
				Normalised: cmdMatch.Canonical,
				Kind:       commandKind(cmdMatch.Canonical),
				Verb:       cmdMatch.Canonical,
				Confidence: cmdMatch.Score,
			},
			{
				Raw:        raw,
				Normalised: alternates[0].Canonical,
				Kind:       commandKind(alternates[0].Canonical),
				Verb:       alternates[0].Canonical,
				Confidence: alternates[0].Score,
			},
		}
		intent.Clarify = &ClarifyQuestion{
			Prompt:  "Did you mean:",
			Options: options,
		}
		return intent
	}

	intent.Verb = cmdMatch.Canonical
	intent.Kind = commandKind(intent.Verb)
	intent.Confidence = clampScore(cmdMatch.Score)

	argsTokens := tokens
	if cmdMatch.Consumed > 0 && len(tokens) >= cmdMatch.Consumed {
		argsTokens = tokens[cmdMatch.Consumed:]
	}
	if intent.Verb == "go" {
		argsTokens, intent.Quantity = splitQuantity(argsTokens)
	}

	def, _ := p.registry.command(intent.Verb)
	resolvedArgs, clarify, argScore := p.resolveArgs(ctx, def, argsTokens)
	if clarify != nil {
		intent.Clarify = clarify
		intent.Confidence = 0.45
		return intent
	}
	intent.Args = resolvedArgs
	intent.Confidence = clampScore((intent.Confidence * 0.75) + (argScore * 0.25))

	if intent.Kind == Command && len(intent.Args) < def.MinArgs {
		if options := buildArgOptions(ctx, def.Canonical); len(options) > 0 {
			prompt := "Which way?"
			if def.Canonical == "choose" {
				prompt = "Which choice?"
			}
			intent.Clarify = &ClarifyQuestion{Prompt: prompt, Options: options}
			intent.Confidence = 0.46
			return intent
		}
		intent.Clarify = &ClarifyQuestion{Prompt: fmt.Sprintf("%s needs at least %d argument(s).", def.Canonical, def.MinArgs)}
		intent.Confidence = 0.42
		return intent
	}

	if def.MaxArgs > 0 && len(intent.Args) > def.MaxArgs {
		intent.Args = append([]string(nil), intent.Args[:def.MaxArgs]...)
		intent.Confidence = clampScore(intent.Confidence - 0.05)
	}

	if intent.Confidence < 0.52 && intent.Clarify == nil {
		intent.Clarify = &ClarifyQuestion{Prompt: "I have low confidence in that parse. Please rephrase or pick a clearer command."}
	}
	return intent
}

func commandKind(verb string) IntentKind {
	switch verb {
	case "help":
		return Help
	case "status", "history":
		return Query
	default:
		return Command
	}
}

func splitQuantity(tokens []string) ([]string, *Quantity) {
	if len(tokens) == 0 {
		return nil, nil
	}
	out := make([]string, 0, len(tokens))
	var q *Quantity
	for _, token := range tokens {
		if q == nil {
			if candidate := parseQuantityToken(token); candidate != nil {
				q = candidate
				continue
			}
		}
		out = append(out, token)
	}
	return out, q
}

func (p *Parser) resolveArgs(ctx ParseContext, def CommandDef, args []string) ([]string, *ClarifyQuestion, float64) {
	if len(args) == 0 {
		return nil, nil, 0.9
	}

	switch def.Canonical {
	case "choose":
		joined := strings.Join(args, " ")
		if len(ctx.Choices) == 0 {
			return nil, &ClarifyQuestion{Prompt: "There is nothing to choose right now."}, 0.4
		}
		if choice, ok := exactChoice(ctx, joined); ok {
			return []string{choice}, nil, 1
		}
		matches, confidence, tie := resolveChoice(ctx, joined)
		if tie {
			return nil, choiceClarify(matches, confidence), 0.52
		}
		if len(matches) == 0 {
			return nil, &ClarifyQuestion{Prompt: "Choose one of:", Options: buildArgOptions(ctx, "choose")}, 0.4
		}
		return []string{matches[0]}, nil, confidence
	case "go":
		resolved := make([]string, 0, len(args))
		score := 0.9
		for i, token := range args {
			if i == 0 {
				mapped := mapDirection(token)
				if mapped == "" {
					entity, confidence, tie := resolveDirection(token, ctx.KnownDirections)
					if tie {
						options := []Intent{
							{Kind: Command, Verb: "go", Args: []string{entity[0]}, Confidence: confidence},
							{Kind: Command, Verb: "go", Args: []string{entity[1]}, Confidence: confidence - 0.01},
						}
						return nil, &ClarifyQuestion{Prompt: "Which direction?", Options: options}, 0.5
					}
					if len(entity) > 0 {
						mapped = entity[0]
						score = minScore(score, confidence)
					}
				}
				if mapped != "" {
					resolved = append(resolved, mapped)
					continue
				}
				return nil, &ClarifyQuestion{Prompt: "Which way?", Options: buildArgOptions(ctx, "go")}, 0.4
			}
			resolved = append(resolved, token)
			score -= 0.02
		}
		return resolved, nil, clampScore(score)
	default:
		return append([]string(nil), args...), nil, 0.85
	}
}

func resolveDirection(token string, known []string) ([]string, float64, bool) {
	n := normaliseInput(token)
	if d := mapDirection(n); d != "" {
		return []string{d}, 0.98, false
	}
	if len(known) == 0 {
		known = Directions()
	}
	return bestMatches(n, known, nil)
}

// exactChoice matches a choice id or a 1-based position. Digits are returned
// as-is so the caller resolves by position.
func exactChoice(ctx ParseContext, normalised string) (string, bool) {
	if n, err := strconv.Atoi(normalised); err == nil {
		if n >= 1 && n <= len(ctx.Choices) {
			return normalised, true
		}
		return "", false
	}
	for _, choice := range ctx.Choices {
		if normaliseInput(choice) == normalised {
			return choice, true
		}
	}
	return "", false
}

// resolveChoice fuzzy-matches free text against the pending choices and
// returns the matching choice ids as given.
func resolveChoice(ctx ParseContext, token string) ([]string, float64, bool) {
	n := normaliseInput(token)
	if n == "" {
		return nil, 0, false
	}
	byName := make(map[string]string, len(ctx.Choices))
	names := make([]string, 0, len(ctx.Choices))
	for _, choice := range ctx.Choices {
		name := normaliseInput(choice)
		if name == "" {
			continue
		}
		byName[name] = choice
		names = append(names, name)
	}
	matches, confidence, tie := bestMatches(n, names, nil)
	for i, m := range matches {
		matches[i] = byName[m]
	}
	return matches, confidence, tie
}

func chooseIntent(raw, normalised, choice string, confidence float64) Intent {
	return Intent{
		Raw:        raw,
		Normalised: normalised,
		Kind:       Command,
		Verb:       "choose",
		Args:       []string{choice},
		Confidence: clampScore(confidence),
	}
}

func choiceClarify(matches []string, confidence float64) *ClarifyQuestion {
	options := make([]Intent, 0, len(matches))
	for idx, m := range matches {
		options = append(options, Intent{
			Kind:       Command,
			Verb:       "choose",
			Args:       []string{m},
			Confidence: confidence - float64(idx)*0.01,
		})
	}
	return &ClarifyQuestion{Prompt: "Did you mean:", Options: options}
}

func bestMatches(token string, all []string, boost []string) ([]string, float64, bool) {
	if len(all) == 0 {
		return nil, 0, false
	}
	type scored struct {
		val   string
		score float64
	}
	boostSet := make(map[string]bool, len(boost))
	for _, n := range boost {
		boostSet[n] = true
	}

	results := make([]scored, 0, len(all))
	for _, cand := range all {
		score := 0.0
		switch {
		case token == cand:
			score = 1.0
		case strings.HasPrefix(cand, token) && len(token) >= 2:
			score = 0.9
		default:
			dist := levenshtein.ComputeDistance(token, cand)
			if dist > levenshteinLimit(len(cand)) {
				continue
			}
			score = 0.72 - (0.08 * float64(dist))
		}
		if boostSet[cand] {
			score += 0.08
		}
		results = append(results, scored{val: cand, score: clampScore(score)})
	}
	if len(results) == 0 {
		return nil, 0, false
	}
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].score == results[j].score {
			return results[i].val < results[j].val
		}
		return results[i].score > results[j].score
	})

	best := results[0]
	tie := len(results) > 1 && (best.score-results[1].score) < 0.05 && results[1].score > 0.6
	if tie {
		return []string{best.val, results[1].val}, best.score, true
	}
	return []string{best.val}, best.score, false
}

func buildArgOptions(ctx ParseContext, verb string) []Intent {
	var pool []string
	switch verb {
	case "go":
		pool = ctx.KnownDirections
		if len(pool) == 0 {
			pool = Directions()[:4]
		}
	case "choose":
		pool = ctx.Choices
	}
	options := make([]Intent, 0, len(pool))
	for _, arg := range pool {
		options = append(options, Intent{
			Kind:       Command,
			Verb:       verb,
			Args:       []string{arg},
			Confidence: 0.88,
		})
	}
	return options
}

func inferFreeTextIntent(raw string, normalised string) *Intent {
	n := normalised
	makeIntent := func(kind IntentKind, verb string, args []string, confidence float64) *Intent {
		return &Intent{
			Raw:        raw,
			Normalised: normalised,
			Kind:       kind,
			Verb:       verb,
			Args:       args,
			Confidence: clampScore(confidence),
		}
	}

	if containsAnyPhrase(n,
		"how am i doing", "how am i", "check my bag", "check bag", "what do i have", "what have i got", "my supplies",
	) {
		return makeIntent(Query, "status", nil, 0.92)
	}
	if containsAnyPhrase(n, "what happened", "what has happened", "so far") {
		return makeIntent(Query, "history", nil, 0.84)
	}
	if containsAnyPhrase(n, "start over", "try again", "new run") {
		return makeIntent(Command, "reset", nil, 0.84)
	}

	if dir := inferDirectionFromText(n); dir != "" {
		return makeIntent(Command, "go", []string{dir}, 0.86)
	}

	if containsWord(n, "tired") || containsWord(n, "sleep") || containsWord(n, "rest") || containsPhrase(n, "end the day") {
		return makeIntent(Command, "rest", nil, 0.8)
	}

	return nil
}

func inferDirectionFromText(normalised string) string {
	tokens := tokenise(normalised)
	if len(tokens) == 0 {
		return ""
	}
	for i, token := range tokens {
		mapped := mapDirection(token)
		if mapped == "" {
			continue
		}
		// "go n", "walk north", "head east", etc.
		if i > 0 {
			prev := tokens[i-1]
			if prev == "go" || prev == "walk" || prev == "head" || prev == "travel" || prev == "move" || prev == "run" {
				return mapped
			}
		}
		if i == 0 && len(tokens) == 1 {
			return mapped
		}
	}
	return ""
}

func containsAnyPhrase(value string, phrases ...string) bool {
	for _, phrase := range phrases {
		if containsPhrase(value, phrase) {
			return true
		}
	}
	return false
}

func containsPhrase(value, phrase string) bool {
	p := normaliseInput(phrase)
	if p == "" {
		return false
	}
	return strings.Contains(" "+value+" ", " "+p+" ")
}

func containsWord(value, word string) bool {
	w := normaliseInput(word)
	if w == "" {
		return false
	}
	return strings.Contains(" "+value+" ", " "+w+" ")
}

func minScore(a, b float64) float64 {
	if b < a {
		return b
	}
	return a
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func IntentToCommandString(intent Intent) string {
	verb := normaliseInput(intent.Verb)
	if verb == "" {
		return ""
	}
	args := make([]string, 0, len(intent.Args)+1)
	for _, arg := range intent.Args {
		n := normaliseInput(arg)
		if n != "" {
			args = append(args, n)
		}
	}
	if intent.Quantity != nil && intent.Quantity.Raw != "" {
		args = append(args, normaliseInput(intent.Quantity.Raw))
	}
	if len(args) == 0 {
		return verb
	}
	return verb + " " + strings.Join(args, " ")
}
