package starrunner

// hits returns the handles of a kind the player currently overlaps.
func (s *State) hits(k Kind) map[Handle]struct{} {
	hit := make(map[Handle]struct{})
	for _, h := range s.Live[k] {
		if s.Colliding(h) {
			hit[h] = struct{}{}
		}
	}
	return hit
}

// collectStars scores one point per star touched.
func collectStars(s *State) {
	hit := s.hits(KindStar)
	s.Score += len(hit)
	s.remove(KindStar, hit)
}

// collectLightning starts the speed boost.
func collectLightning(s *State) {
	hit := s.hits(KindLightning)
	if len(hit) == 0 {
		return
	}
	s.SpeedBoost.Active = true
	s.SpeedBoost.Start = s.Now
	s.log.Debug("speed boost", "score", s.Score)
	s.remove(KindLightning, hit)
}

// collectFrenzy starts a star frenzy.
func collectFrenzy(s *State) {
	hit := s.hits(KindFrenzy)
	if len(hit) == 0 {
		return
	}
	s.Frenzy.Active = true
	s.Frenzy.Start = s.Now
	s.log.Debug("frenzy", "score", s.Score)
	s.remove(KindFrenzy, hit)
}

// collectResets restores comet size and rock speed for the scaling state
// and every live comet and rock.
func collectResets(s *State) {
	hit := s.hits(KindReset)
	if len(hit) == 0 {
		return
	}
	s.LastCometScale = s.Cfg.Scaling.CometResetScale
	s.LastRockSpeed = s.Cfg.Scaling.RockResetSpeed
	for _, h := range s.Live[KindComet] {
		if e, ok := s.Arena.Get(h); ok {
			e.Scale = s.LastCometScale
		}
	}
	for _, h := range s.Live[KindRock] {
		if e, ok := s.Arena.Get(h); ok {
			e.Speed = s.LastRockSpeed
		}
	}
	s.log.Debug("reset", "comet_scale", s.LastCometScale, "rock_speed", s.LastRockSpeed)
	s.remove(KindReset, hit)
}
