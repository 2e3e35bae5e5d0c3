package game

import "math"

// Move walks the player by (dx, dy). Distance and stamina cost both scale
// with the straight-line length of the step.
func (e *Engine) Move(dx, dy float64) {
	s := &e.session
	if s.GameOver || !s.Player.Alive {
		return
	}
	magnitude := math.Hypot(dx, dy)
	if math.IsNaN(magnitude) || math.IsInf(magnitude, 0) {
		return
	}

	s.Player.X += dx
	s.Player.Y += dy
	s.Progress.Distance += magnitude * e.tuning.DistancePerUnit

	s.Player.Stamina -= magnitude * e.tuning.StaminaCostPerUnit
	if s.Player.Stamina < 0 {
		s.Player.Stamina = 0
		if s.Player.Health > 0 {
			s.lastHarm = DeathCauseExhaustion
		}
		s.Player.Health -= e.tuning.ExhaustionPenalty
	}
	clampPlayer(&s.Player)
	e.evaluateOutcome()
}
