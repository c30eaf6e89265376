package starrunner

import "math"

// moveCharacter applies horizontal speed, doubled while the speed boost
// is in force.
func moveCharacter(s *State) {
	dx := s.Character.SpeedX
	if s.SpeedBoost.Active && s.SpeedBoost.InForce(s.Now) {
		dx *= s.Cfg.Player.BoostMultiplier
	}
	s.Character.X += dx
}

// moveCharacterY applies vertical speed. Positive speed moves up.
func moveCharacterY(s *State) {
	s.Character.Y -= s.Character.SpeedY
}

// wrapAround teleports the player to the opposite edge.
func wrapAround(s *State) {
	w := s.Cfg.World.Width
	switch {
	case s.Character.X > w:
		s.Character.X = 0
	case s.Character.X < 0:
		s.Character.X = w
	}
}

// dropFalling moves every falling entity down by its kind's drop.
func dropFalling(s *State) {
	for _, p := range s.policies {
		if !p.Kind.Falls() {
			continue
		}
		for _, h := range s.Live[p.Kind] {
			if e, ok := s.Arena.Get(h); ok {
				e.Y += p.Drop
			}
		}
	}
}

// homingAngle returns the direction from the player to the rock in degrees,
// normalized to [0, 360).
func homingAngle(ch Character, e *Entity) float64 {
	deg := math.Atan2(e.Y-ch.Y, e.X-ch.X) * 180 / math.Pi
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// moveRocks steers each rock toward the player and removes rocks that
// outlived their lifetime.
func moveRocks(s *State) {
	lifetime := s.Cfg.RockLifetime()
	expired := make(map[Handle]struct{})
	for _, h := range s.Live[KindRock] {
		e, ok := s.Arena.Get(h)
		if !ok {
			continue
		}
		e.Direction = homingAngle(s.Character, e)
		rad := e.Direction * math.Pi / 180
		e.X -= e.Speed * math.Cos(rad)
		e.Y -= e.Speed * math.Sin(rad)

		if s.Now.Sub(e.CreatedAt) > lifetime {
			expired[h] = struct{}{}
		}
	}
	s.remove(KindRock, expired)
}
