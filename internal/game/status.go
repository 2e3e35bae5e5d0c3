package game

import "math"

const recentHistory = 5

type ResourceStatus struct {
	Resource Resource
	Quantity int
	Max      int
	Level    ResourceLevel
}

// Status is a read-only snapshot for front-ends. It shares no memory with
// the engine.
type Status struct {
	Day     int
	Elapsed float64

	Health  float64
	Stamina float64
	Morale  float64
	X       float64
	Y       float64

	Inventory Inventory
	Caps      Inventory
	Resources []ResourceStatus
	Critical  []Resource
	// SupplyDays is how many days food, water and fuel last at average use.
	SupplyDays float64

	Distance float64
	Target   float64
	Progress float64

	Alive       bool
	GameOver    bool
	Victory     bool
	DeathCause  DeathCause
	EventsFaced int
	Current     *Event
	Recent      []HistoryEntry
}

func (e *Engine) Status() Status {
	s := e.session
	st := Status{
		Day:         s.Day,
		Elapsed:     s.Elapsed,
		Health:      s.Player.Health,
		Stamina:     s.Player.Stamina,
		Morale:      s.Player.Morale,
		X:           s.Player.X,
		Y:           s.Player.Y,
		Inventory:   s.Inventory,
		Caps:        e.tuning.Caps,
		SupplyDays:  e.supplyDays(),
		Distance:    s.Progress.Distance,
		Target:      s.Progress.Target,
		Progress:    s.Progress.Percent(),
		Alive:       s.Player.Alive,
		GameOver:    s.GameOver,
		Victory:     s.Victory,
		DeathCause:  s.DeathCause,
		EventsFaced: s.EventsFaced,
	}

	for _, r := range AllResources() {
		level := levelFor(s.Inventory.Get(r), e.tuning.Caps.Get(r))
		st.Resources = append(st.Resources, ResourceStatus{
			Resource: r,
			Quantity: s.Inventory.Get(r),
			Max:      e.tuning.Caps.Get(r),
			Level:    level,
		})
		if level == LevelCritical || level == LevelEmpty {
			st.Critical = append(st.Critical, r)
		}
	}

	if s.Current != nil {
		st.Current = s.Current.clone()
	}
	if n := len(s.History); n > 0 {
		st.Recent = append([]HistoryEntry(nil), s.History[max(0, n-recentHistory):]...)
	}
	return st
}

// History returns a copy of every retained history entry, oldest first.
func (e *Engine) History() []HistoryEntry {
	return append([]HistoryEntry(nil), e.session.History...)
}

// Supplies returns the end-of-day inventory snapshots, oldest first.
func (e *Engine) Supplies() []Inventory {
	return append([]Inventory(nil), e.session.Supplies...)
}

func (e *Engine) supplyDays() float64 {
	days := math.Inf(1)
	for _, need := range e.tuning.dailyNeeds() {
		mean := float64(need.use.Min+need.use.Max) / 2
		if mean <= 0 {
			continue
		}
		days = math.Min(days, float64(e.session.Inventory.Get(need.resource))/mean)
	}
	if math.IsInf(days, 1) {
		return 0
	}
	return days
}
