package core

// Snapshot captures the world state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Phase     Phase
	Cause     EndCause
	Score     int
	Stage     int
	CameraY   float64
	PlayerX   float64
	PlayerY   float64
	PlayerVX  float64
	PlayerVY  float64
	Platforms int
	Enemies   int
	Obstacles int
	Bullets   int
	TopY      float64 // Highest platform, 0 when there are none
	Layout    float64 // Sum of platform coordinates, a cheap layout fingerprint
}

// Snapshot returns the current world snapshot.
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		Tick:      w.tick,
		Phase:     w.phase,
		Cause:     w.cause,
		Score:     w.score,
		Stage:     w.stage,
		CameraY:   w.cameraY,
		PlayerX:   w.player.X,
		PlayerY:   w.player.Y,
		PlayerVX:  w.player.VX,
		PlayerVY:  w.player.VY,
		Platforms: len(w.platforms),
		Enemies:   len(w.enemies),
		Obstacles: len(w.obstacles),
		Bullets:   len(w.bullets),
	}
	for i, p := range w.platforms {
		if i == 0 || p.Y < s.TopY {
			s.TopY = p.Y
		}
		s.Layout += p.X + p.Y
	}
	return s
}
