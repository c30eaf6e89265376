package starrunner

// System is one step of a frame.
type System func(s *State)

// Predicate decides whether a guard fires.
type Predicate func(s *State) bool

// Handler reacts to a guard firing.
type Handler func(s *State)

type namedSystem struct {
	name string
	fn   System
}

type guard struct {
	name     string
	when     Predicate
	handlers []Handler
}

// Loop runs registered systems in registration order, then checks guards.
// Once paused it dispatches nothing until Resume.
type Loop struct {
	systems []namedSystem
	guards  []guard
	paused  bool
}

// OnFrame registers a system to run every frame.
func (l *Loop) OnFrame(name string, fn System) {
	l.systems = append(l.systems, namedSystem{name: name, fn: fn})
}

// Guard registers handlers that run, in order, after the systems of any
// frame on which when returns true.
func (l *Loop) Guard(name string, when Predicate, handlers ...Handler) {
	l.guards = append(l.guards, guard{name: name, when: when, handlers: handlers})
}

// Pause stops further dispatch, including the rest of the current frame's
// guards.
func (l *Loop) Pause() {
	l.paused = true
}

// Resume allows dispatch again.
func (l *Loop) Resume() {
	l.paused = false
}

// Paused reports whether the loop is stopped.
func (l *Loop) Paused() bool {
	return l.paused
}

// Systems returns the registered system names in execution order.
func (l *Loop) Systems() []string {
	names := make([]string, len(l.systems))
	for i, sys := range l.systems {
		names[i] = sys.name
	}
	return names
}

// Run executes one frame. It returns false if the loop was paused and
// nothing ran.
func (l *Loop) Run(s *State) bool {
	if l.paused {
		return false
	}
	for _, sys := range l.systems {
		sys.fn(s)
	}
	for _, g := range l.guards {
		if !g.when(s) {
			continue
		}
		for _, h := range g.handlers {
			h(s)
		}
		if l.paused {
			break
		}
	}
	return true
}
