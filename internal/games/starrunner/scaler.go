package starrunner

// scaleComets grows comets whenever the score sits on a multiple of the
// comet interval, and keeps every live comet at the current scale.
func scaleComets(s *State) {
	if f, ok := s.scaler.Factor(s.Score); ok && f != s.LastCometScale {
		s.LastCometScale = f
		s.log.Debug("comets grow", "score", s.Score, "scale", f)
	}
	for _, h := range s.Live[KindComet] {
		if e, ok := s.Arena.Get(h); ok {
			e.Scale = s.LastCometScale
		}
	}
}
