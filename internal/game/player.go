package game

const maxGauge = 100.0

type PlayerState struct {
	Health  float64
	Stamina float64
	Morale  float64
	Alive   bool
	X       float64
	Y       float64
}

type DeathCause string

const (
	DeathCauseNone        DeathCause = ""
	DeathCauseStarvation  DeathCause = "starvation"
	DeathCauseDehydration DeathCause = "dehydration"
	DeathCauseExposure    DeathCause = "exposure"
	DeathCauseExhaustion  DeathCause = "exhaustion"
	DeathCauseViolence    DeathCause = "violence"
	DeathCauseIllness     DeathCause = "illness"
	DeathCauseWeather     DeathCause = "weather"
)

func newPlayer(start StartingValues) PlayerState {
	return PlayerState{
		Health:  start.Health,
		Stamina: start.Stamina,
		Morale:  start.Morale,
		Alive:   true,
		X:       start.X,
		Y:       start.Y,
	}
}

func clampFloat(number, min, max float64) float64 {
	if number < min {
		return min
	}
	if number > max {
		return max
	}
	return number
}

func clampPlayer(p *PlayerState) {
	p.Health = clampFloat(p.Health, 0, maxGauge)
	p.Stamina = clampFloat(p.Stamina, 0, maxGauge)
	p.Morale = clampFloat(p.Morale, 0, maxGauge)
}
