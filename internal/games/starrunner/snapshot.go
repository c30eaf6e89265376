package starrunner

// EntitySnapshot is one live entity in primitive form.
type EntitySnapshot struct {
	Kind  Kind
	X, Y  float64
	Scale float64
	Speed float64
}

// Snapshot is a read-only copy of a session, used by tests to compare
// runs and by debug tooling.
type Snapshot struct {
	Frames         int
	Score          int
	CharacterX     float64
	CharacterY     float64
	SpeedX         float64
	SpeedY         float64
	FacingLeft     bool
	LastCometScale float64
	LastRockSpeed  float64
	SpeedBoost     bool
	Frenzy         bool
	GameOver       bool
	Cause          string
	Label          string
	Entities       []EntitySnapshot // Grouped by kind, spawn order within a kind
	Destroyed      int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	s := g.state
	snap := Snapshot{
		Frames:         s.Frames,
		Score:          s.Score,
		CharacterX:     s.Character.X,
		CharacterY:     s.Character.Y,
		SpeedX:         s.Character.SpeedX,
		SpeedY:         s.Character.SpeedY,
		FacingLeft:     s.Character.FacingLeft,
		LastCometScale: s.LastCometScale,
		LastRockSpeed:  s.LastRockSpeed,
		SpeedBoost:     s.SpeedBoost.Active,
		Frenzy:         s.Frenzy.Active,
		GameOver:       s.GameOver,
		Cause:          s.Cause,
		Label:          s.Label,
		Destroyed:      s.Arena.Destroyed(),
	}
	for k := range kindCount {
		for _, h := range s.Live[k] {
			e, ok := s.Arena.Get(h)
			if !ok {
				continue
			}
			snap.Entities = append(snap.Entities, EntitySnapshot{
				Kind:  e.Kind,
				X:     e.X,
				Y:     e.Y,
				Scale: e.Scale,
				Speed: e.Speed,
			})
		}
	}
	return snap
}
