package stick

// Snapshot is a read-only copy of everything the renderer needs.
type Snapshot struct {
	Phase       Phase
	Platforms   []Platform
	Sticks      []Stick
	Hero        Hero
	SceneOffset float64
	Score       int
	GameOver    bool
}

// ActiveStick returns the stick currently in play.
func (s Snapshot) ActiveStick() Stick {
	if len(s.Sticks) == 0 {
		return Stick{}
	}
	return s.Sticks[len(s.Sticks)-1]
}

// Snapshot returns the current game state as a Snapshot.
// The slices are copies; later ticks do not change them.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Phase:       g.phase,
		Platforms:   append([]Platform(nil), g.platforms...),
		Sticks:      append([]Stick(nil), g.sticks...),
		Hero:        g.hero,
		SceneOffset: g.sceneOffset,
		Score:       g.score,
		GameOver:    g.phase == PhaseEnded,
	}
}
