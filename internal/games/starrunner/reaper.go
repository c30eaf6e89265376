package starrunner

// reapFallen destroys falling entities that reached the bottom edge.
func reapFallen(s *State) {
	h := s.Cfg.World.Height
	for k := range kindCount {
		if !k.Falls() {
			continue
		}
		gone := make(map[Handle]struct{})
		for _, hd := range s.Live[k] {
			if e, ok := s.Arena.Get(hd); ok && e.Y >= h {
				gone[hd] = struct{}{}
			}
		}
		s.remove(k, gone)
	}
}
