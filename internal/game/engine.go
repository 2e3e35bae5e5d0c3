package game

import (
	"fmt"
	"math"
	"time"

	"github.com/oklog/ulid/v2"
)

// Engine owns one Session and is the only way to change it.
//
// An Engine is not safe for concurrent use. Front-ends that call it from
// more than one goroutine must serialise every call themselves.
type Engine struct {
	tuning  Tuning
	dice    dice
	session Session
	newID   func() string
}

type Option func(*Engine)

// WithSeed makes every random draw reproducible for the given seed.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.dice = dice{rng: seededRNG(seed)}
	}
}

func WithRand(rng Rand) Option {
	return func(e *Engine) {
		if rng != nil {
			e.dice = dice{rng: rng}
		}
	}
}

func WithTuning(t Tuning) Option {
	return func(e *Engine) {
		e.tuning = t
	}
}

func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		tuning: DefaultTuning(),
		dice:   dice{rng: seededRNG(time.Now().UnixNano())},
		newID:  func() string { return ulid.Make().String() },
	}
	for _, opt := range opts {
		opt(e)
	}
	if err := e.tuning.Validate(); err != nil {
		return nil, fmt.Errorf("new engine: %w", err)
	}
	e.session = newSession(e.tuning)
	return e, nil
}

func (e *Engine) Tuning() Tuning {
	return e.tuning
}

// Update advances the day clock by dt seconds and rolls for encounters and
// mishaps. Negative dt is ignored.
func (e *Engine) Update(dt float64) {
	s := &e.session
	if s.GameOver || !s.Player.Alive || dt < 0 || math.IsNaN(dt) {
		return
	}

	e.passTime(dt)
	e.evaluateOutcome()
	if s.GameOver {
		return
	}

	if s.Current == nil && e.dice.oneIn(e.tuning.EncounterOdds) {
		e.startEncounter()
	}
	if s.Current == nil && e.dice.oneIn(e.tuning.MishapOdds) {
		e.suffer(e.pickMishap())
	}
	e.evaluateOutcome()
}

// AdvanceDay ends the current day immediately. It does nothing once the
// session is over.
func (e *Engine) AdvanceDay() {
	if e.session.GameOver {
		return
	}
	e.advanceDay()
	e.evaluateOutcome()
}

func (e *Engine) TriggerRandomEvent() error {
	s := &e.session
	if s.GameOver {
		return ErrGameOver
	}
	if s.Current != nil {
		return ErrEventPending
	}
	e.startEncounter()
	return nil
}

func (e *Engine) ResolveEvent(id ChoiceID) error {
	s := &e.session
	if s.GameOver {
		return ErrGameOver
	}
	if s.Current == nil {
		return ErrNoPendingEvent
	}
	choice, ok := s.Current.Choice(id)
	if !ok {
		return fmt.Errorf("%w: %q is not an option for %s", ErrInvalidChoice, id, s.Current.Title)
	}
	delta := resolutionRules[id](e.view())
	event := s.Current
	s.Current = nil
	e.apply(delta)
	s.record(e.tuning.HistoryLimit, HistoryEntry{
		Kind:   HistoryEncounter,
		Title:  event.Title,
		Detail: choice.Text + ". " + delta.Outcome,
	})
	e.evaluateOutcome()
	return nil
}

// ResolveChoice resolves the pending event by the 1-based position of the
// choice, as shown to the player.
func (e *Engine) ResolveChoice(n int) error {
	s := &e.session
	if s.GameOver {
		return ErrGameOver
	}
	if s.Current == nil {
		return ErrNoPendingEvent
	}
	if n < 1 || n > len(s.Current.Choices) {
		return fmt.Errorf("%w: choose 1-%d, got %d", ErrInvalidChoice, len(s.Current.Choices), n)
	}
	return e.ResolveEvent(s.Current.Choices[n-1].ID)
}

// TriggerMishap applies a random mishap straight away. Mishaps never become
// the pending event.
func (e *Engine) TriggerMishap() error {
	if e.session.GameOver {
		return ErrGameOver
	}
	e.suffer(e.pickMishap())
	e.evaluateOutcome()
	return nil
}

func (e *Engine) Reset() {
	e.session = newSession(e.tuning)
}

func (e *Engine) startEncounter() {
	catalog := EncounterCatalog()
	event := catalog[e.dice.pick(len(catalog))].clone()
	event.ID = e.newID()
	e.session.Current = event
	e.session.EventsFaced++
}

func (e *Engine) pickMishap() Mishap {
	catalog := MishapCatalog()
	return catalog[e.dice.pick(len(catalog))]
}

func (e *Engine) suffer(m Mishap) {
	s := &e.session
	if m.preventable() && s.Inventory.consume(m.PreventWith, m.PreventAmount) {
		s.record(e.tuning.HistoryLimit, HistoryEntry{
			Kind:   HistoryMishap,
			Title:  m.Title,
			Detail: fmt.Sprintf("Used %d %s to avoid the worst.", m.PreventAmount, m.PreventWith),
		})
		return
	}
	delta := m.effect(e.view())
	s.record(e.tuning.HistoryLimit, HistoryEntry{Kind: HistoryMishap, Title: m.Title, Detail: delta.Outcome})
	e.apply(delta)
}

func (e *Engine) view() ruleInput {
	return ruleInput{
		Player:         e.session.Player,
		Inventory:      e.session.Inventory,
		ShelterSeconds: e.tuning.ShelterSeconds,
		dice:           e.dice,
	}
}

// apply folds a Delta into the session: gauges are clamped, resources are
// floored at 0 and capped.
func (e *Engine) apply(d Delta) {
	s := &e.session
	if d.Health < 0 && d.Cause != DeathCauseNone && s.Player.Health > 0 {
		s.lastHarm = d.Cause
	}
	s.Player.Health += d.Health
	s.Player.Stamina += d.Stamina
	s.Player.Morale += d.Morale
	clampPlayer(&s.Player)

	for _, r := range AllResources() {
		if n := d.Resources.Get(r); n != 0 {
			s.Inventory.adjust(r, n, e.tuning.Caps)
		}
	}

	if d.Seconds > 0 {
		e.passTime(d.Seconds)
	}
}

// passTime moves the day clock. Crossing the day length advances the day
// and restarts the clock at 0; the overflow is dropped.
func (e *Engine) passTime(seconds float64) {
	s := &e.session
	s.Elapsed += seconds
	if s.Elapsed >= e.tuning.DayLengthSeconds {
		e.advanceDay()
	}
}

// evaluateOutcome checks death before victory, so an operation that kills
// the player never also wins the game.
func (e *Engine) evaluateOutcome() {
	s := &e.session
	if s.GameOver {
		return
	}
	if s.Player.Health <= 0 {
		s.Player.Health = 0
		s.Player.Alive = false
		s.GameOver = true
		s.Victory = false
		s.DeathCause = s.lastHarm
		return
	}
	if s.Progress.Distance >= s.Progress.Target {
		s.Victory = true
		s.GameOver = true
	}
}
