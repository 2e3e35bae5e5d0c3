// Package autoplay drives a game engine without a player, for headless runs
// and balance checks.
package autoplay

import (
	"context"
	"fmt"

	"github.com/appengine-ltd/deathgame/internal/game"
)

// Engine is the part of *game.Engine the autopilot needs.
type Engine interface {
	Update(dt float64)
	Move(dx, dy float64)
	AdvanceDay()
	ResolveEvent(id game.ChoiceID) error
	Status() game.Status
}

type ActionKind int

const (
	ActionWait ActionKind = iota
	ActionMove
	ActionRest
	ActionChoose
)

func (k ActionKind) String() string {
	switch k {
	case ActionWait:
		return "wait"
	case ActionMove:
		return "move"
	case ActionRest:
		return "rest"
	case ActionChoose:
		return "choose"
	default:
		return "unknown"
	}
}

type Decision struct {
	Kind   ActionKind
	DX, DY float64
	Choice game.ChoiceID
}

type Policy interface {
	Decide(st game.Status) Decision
}

type Config struct {
	DT       float64
	MaxTicks int
}

func DefaultConfig() Config {
	return Config{DT: 1, MaxTicks: 20000}
}

type Summary struct {
	Ticks       int
	Day         int
	Distance    float64
	Progress    float64
	Health      float64
	GameOver    bool
	Victory     bool
	DeathCause  game.DeathCause
	EventsFaced int
	Decisions   map[ActionKind]int
}

func (s Summary) Outcome() string {
	switch {
	case s.Victory:
		return "victory"
	case s.GameOver:
		return "died of " + string(s.DeathCause)
	default:
		return "unfinished"
	}
}

// Run ticks the engine and applies one policy decision per tick until the
// game ends, MaxTicks is reached, or ctx is cancelled. On cancellation the
// summary so far is returned with ctx.Err().
func Run(ctx context.Context, engine Engine, policy Policy, cfg Config) (Summary, error) {
	if cfg.DT <= 0 {
		return Summary{}, fmt.Errorf("autoplay: dt must be positive, got %v", cfg.DT)
	}
	if cfg.MaxTicks <= 0 {
		return Summary{}, fmt.Errorf("autoplay: max ticks must be positive, got %d", cfg.MaxTicks)
	}

	summary := Summary{Decisions: map[ActionKind]int{}}
	for summary.Ticks < cfg.MaxTicks {
		if err := ctx.Err(); err != nil {
			summary.fill(engine.Status())
			return summary, err
		}
		if engine.Status().GameOver {
			break
		}

		engine.Update(cfg.DT)
		summary.Ticks++

		st := engine.Status()
		if st.GameOver {
			break
		}
		decision := policy.Decide(st)
		summary.Decisions[decision.Kind]++
		if err := apply(engine, decision); err != nil {
			summary.fill(engine.Status())
			return summary, fmt.Errorf("autoplay: tick %d: %w", summary.Ticks, err)
		}
	}
	summary.fill(engine.Status())
	return summary, nil
}

func apply(engine Engine, d Decision) error {
	switch d.Kind {
	case ActionMove:
		engine.Move(d.DX, d.DY)
	case ActionRest:
		engine.AdvanceDay()
	case ActionChoose:
		return engine.ResolveEvent(d.Choice)
	}
	return nil
}

func (s *Summary) fill(st game.Status) {
	s.Day = st.Day
	s.Distance = st.Distance
	s.Progress = st.Progress
	s.Health = st.Health
	s.GameOver = st.GameOver
	s.Victory = st.Victory
	s.DeathCause = st.DeathCause
	s.EventsFaced = st.EventsFaced
}
