package starrunner

import (
	"errors"
	"time"
)

// ErrStaleHandle is returned when a handle no longer refers to a live entity.
var ErrStaleHandle = errors.New("starrunner: stale entity handle")

// Handle is a generational key into an Arena. A slot's generation bumps
// every time it is freed, so old handles stop resolving.
type Handle struct {
	Index uint32
	Gen   uint32
}

// Entity is anything on the playfield besides the player.
type Entity struct {
	Kind      Kind
	X, Y      float64
	Scale     float64
	Speed     float64 // Rocks only
	Direction float64 // Rocks only, degrees
	CreatedAt time.Time
}

type slot struct {
	ent   Entity
	gen   uint32
	alive bool
}

// Arena owns every entity of a session.
type Arena struct {
	slots     []slot
	free      []uint32
	live      int
	destroyed int
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

// Spawn stores an entity and returns its handle.
func (a *Arena) Spawn(e Entity) Handle {
	a.live++
	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]
		s := &a.slots[idx]
		s.ent = e
		s.alive = true
		return Handle{Index: idx, Gen: s.gen}
	}

	idx := uint32(len(a.slots)) //#nosec G115 -- entity counts stay tiny
	a.slots = append(a.slots, slot{ent: e, gen: 1, alive: true})
	return Handle{Index: idx, Gen: 1}
}

// Get returns the entity behind a handle, or false if it was destroyed.
func (a *Arena) Get(h Handle) (*Entity, bool) {
	if int(h.Index) >= len(a.slots) {
		return nil, false
	}
	s := &a.slots[h.Index]
	if !s.alive || s.gen != h.Gen {
		return nil, false
	}
	return &s.ent, true
}

// Destroy frees the entity. Destroying the same handle twice fails with
// ErrStaleHandle and changes nothing.
func (a *Arena) Destroy(h Handle) error {
	if _, ok := a.Get(h); !ok {
		return ErrStaleHandle
	}
	s := &a.slots[h.Index]
	s.alive = false
	s.gen++
	s.ent = Entity{}
	a.free = append(a.free, h.Index)
	a.live--
	a.destroyed++
	return nil
}

// Len returns the number of live entities.
func (a *Arena) Len() int {
	return a.live
}

// Destroyed returns how many entities have been destroyed so far.
func (a *Arena) Destroyed() int {
	return a.destroyed
}
