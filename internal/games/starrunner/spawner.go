package starrunner

// spawnAll rolls once per kind in table order and spawns on a hit.
func spawnAll(s *State) {
	for _, p := range s.policies {
		if p.Range < 1 {
			continue
		}
		roll := s.rng.Intn(p.Range) + 1
		if roll != p.Target {
			continue
		}
		if s.Count(p.Kind) >= p.Cap || !p.Unlocked(s.Score) {
			continue
		}
		s.spawn(p.Kind)
	}
}
