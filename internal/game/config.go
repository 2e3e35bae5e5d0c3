package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// IntRange is an inclusive integer range that dice rolls are drawn from.
type IntRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

func (r IntRange) valid() bool {
	return r.Min >= 0 && r.Min <= r.Max
}

type StartingValues struct {
	Health    float64   `yaml:"health"`
	Stamina   float64   `yaml:"stamina"`
	Morale    float64   `yaml:"morale"`
	X         float64   `yaml:"x"`
	Y         float64   `yaml:"y"`
	Inventory Inventory `yaml:"inventory"`
}

// Tuning holds every rule constant of a session. The zero value is not
// usable; start from DefaultTuning.
type Tuning struct {
	DayLengthSeconds float64 `yaml:"day_length_seconds"`
	ShelterSeconds   float64 `yaml:"shelter_seconds"`

	// Odds are "one in N" per roll. Zero disables the roll.
	EncounterOdds  int `yaml:"encounter_odds"`
	MishapOdds     int `yaml:"mishap_odds"`
	DailyEventOdds int `yaml:"daily_event_odds"`

	TargetDistance     float64 `yaml:"target_distance"`
	DistancePerUnit    float64 `yaml:"distance_per_unit"`
	StaminaCostPerUnit float64 `yaml:"stamina_cost_per_unit"`
	ExhaustionPenalty  float64 `yaml:"exhaustion_penalty"`
	DailyStaminaGain   float64 `yaml:"daily_stamina_gain"`

	FoodUse  IntRange `yaml:"food_use"`
	WaterUse IntRange `yaml:"water_use"`
	FuelUse  IntRange `yaml:"fuel_use"`

	FoodShortagePenalty  float64 `yaml:"food_shortage_penalty"`
	WaterShortagePenalty float64 `yaml:"water_shortage_penalty"`
	FuelShortagePenalty  float64 `yaml:"fuel_shortage_penalty"`

	Start StartingValues `yaml:"start"`
	Caps  Inventory      `yaml:"caps"`

	HistoryLimit  int `yaml:"history_limit"`
	SupplyHistory int `yaml:"supply_history"`
}

func DefaultTuning() Tuning {
	return Tuning{
		DayLengthSeconds: 60,
		ShelterSeconds:   30,

		EncounterOdds:  1000,
		MishapOdds:     2500,
		DailyEventOdds: 3,

		TargetDistance:     1000,
		DistancePerUnit:    0.1,
		StaminaCostPerUnit: 0.01,
		ExhaustionPenalty:  0.5,
		DailyStaminaGain:   20,

		FoodUse:  IntRange{Min: 3, Max: 7},
		WaterUse: IntRange{Min: 5, Max: 10},
		FuelUse:  IntRange{Min: 1, Max: 3},

		FoodShortagePenalty:  15,
		WaterShortagePenalty: 20,
		FuelShortagePenalty:  5,

		Start: StartingValues{
			Health:  maxGauge,
			Stamina: maxGauge,
			Morale:  maxGauge,
			Inventory: Inventory{
				Food:     50,
				Water:    30,
				Medicine: 10,
				Fuel:     20,
				Weapons:  5,
			},
		},
		Caps: Inventory{
			Food:     100,
			Water:    100,
			Medicine: 50,
			Fuel:     100,
			Weapons:  20,
		},

		HistoryLimit:  50,
		SupplyHistory: 7,
	}
}

func (t Tuning) Validate() error {
	if t.DayLengthSeconds <= 0 {
		return fmt.Errorf("day length must be positive, got %v", t.DayLengthSeconds)
	}
	if t.ShelterSeconds < 0 {
		return fmt.Errorf("shelter seconds must not be negative, got %v", t.ShelterSeconds)
	}
	if t.EncounterOdds < 0 || t.MishapOdds < 0 || t.DailyEventOdds < 0 {
		return fmt.Errorf("odds must not be negative")
	}
	if t.TargetDistance <= 0 {
		return fmt.Errorf("target distance must be positive, got %v", t.TargetDistance)
	}
	if t.DistancePerUnit < 0 || t.StaminaCostPerUnit < 0 || t.ExhaustionPenalty < 0 || t.DailyStaminaGain < 0 {
		return fmt.Errorf("movement factors must not be negative")
	}
	for name, r := range map[string]IntRange{"food_use": t.FoodUse, "water_use": t.WaterUse, "fuel_use": t.FuelUse} {
		if !r.valid() {
			return fmt.Errorf("invalid %s range: %d-%d", name, r.Min, r.Max)
		}
	}
	if t.FoodShortagePenalty < 0 || t.WaterShortagePenalty < 0 || t.FuelShortagePenalty < 0 {
		return fmt.Errorf("shortage penalties must not be negative")
	}
	if t.Start.Health <= 0 || t.Start.Health > maxGauge {
		return fmt.Errorf("starting health must be in (0,%v], got %v", maxGauge, t.Start.Health)
	}
	if t.Start.Stamina < 0 || t.Start.Stamina > maxGauge || t.Start.Morale < 0 || t.Start.Morale > maxGauge {
		return fmt.Errorf("starting gauges must be in [0,%v]", maxGauge)
	}
	for _, r := range AllResources() {
		if t.Caps.Get(r) <= 0 {
			return fmt.Errorf("cap for %s must be positive", r)
		}
		if n := t.Start.Inventory.Get(r); n < 0 || n > t.Caps.Get(r) {
			return fmt.Errorf("starting %s must be in [0,%d], got %d", r, t.Caps.Get(r), n)
		}
	}
	if t.HistoryLimit < 1 || t.SupplyHistory < 1 {
		return fmt.Errorf("history limits must be at least 1")
	}
	return nil
}

// LoadTuning reads a YAML file and overlays it on DefaultTuning, so a file
// only needs the keys it changes.
func LoadTuning(path string) (Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("read tuning: %w", err)
	}
	return ParseTuning(data)
}

func ParseTuning(data []byte) (Tuning, error) {
	t := DefaultTuning()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("parse tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, fmt.Errorf("invalid tuning: %w", err)
	}
	return t, nil
}

func MarshalTuning(t Tuning) ([]byte, error) {
	return yaml.Marshal(t)
}
