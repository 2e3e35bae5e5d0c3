package game

type Progress struct {
	Distance float64
	Target   float64
}

func (p Progress) Percent() float64 {
	if p.Target <= 0 {
		return 0
	}
	return p.Distance / p.Target * 100
}

type HistoryKind string

const (
	HistoryEncounter HistoryKind = "encounter"
	HistoryDaily     HistoryKind = "daily"
	HistoryMishap    HistoryKind = "mishap"
	HistoryShortage  HistoryKind = "shortage"
)

// HistoryEntry is one line of the run's journal. Seq increases by one per
// entry for the life of a session, so callers can tell which entries are new.
type HistoryEntry struct {
	Seq    int
	Day    int
	Kind   HistoryKind
	Title  string
	Detail string
}

// Session is the complete mutable state of one run.
type Session struct {
	Player    PlayerState
	Inventory Inventory
	Progress  Progress
	Day       int
	Elapsed   float64

	GameOver   bool
	Victory    bool
	DeathCause DeathCause

	Current     *Event
	EventsFaced int
	History     []HistoryEntry
	Supplies    []Inventory

	lastHarm   DeathCause
	historySeq int
}

func newSession(t Tuning) Session {
	return Session{
		Player:    newPlayer(t.Start),
		Inventory: t.Start.Inventory,
		Progress:  Progress{Target: t.TargetDistance},
		Day:       1,
	}
}

func (s *Session) record(limit int, entry HistoryEntry) {
	s.historySeq++
	entry.Seq = s.historySeq
	entry.Day = s.Day
	s.History = append(s.History, entry)
	if over := len(s.History) - limit; over > 0 {
		s.History = append([]HistoryEntry(nil), s.History[over:]...)
	}
}

func (s *Session) snapshotSupplies(limit int) {
	s.Supplies = append(s.Supplies, s.Inventory)
	if over := len(s.Supplies) - limit; over > 0 {
		s.Supplies = append([]Inventory(nil), s.Supplies[over:]...)
	}
}
