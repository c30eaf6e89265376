package starrunner

// sustainFrenzy adds a star every frame while the frenzy lasts, ignoring
// the star cap. The flag clears on the first frame after it runs out.
func sustainFrenzy(s *State) {
	if s.Frenzy.Active && s.Frenzy.InForce(s.Now) {
		s.spawn(KindStar)
		return
	}
	s.Frenzy.Active = false
}

// updateLabel refreshes the score display.
func updateLabel(s *State) {
	s.Label = scoreLabel(s.Score)
}
