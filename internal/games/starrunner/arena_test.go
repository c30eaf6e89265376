package starrunner

import (
	"errors"
	"testing"
)

func TestArenaSpawnGet(t *testing.T) {
	a := NewArena()
	h := a.Spawn(Entity{Kind: KindStar, X: 10, Y: 20})

	e, ok := a.Get(h)
	if !ok {
		t.Fatal("Get() should find a freshly spawned entity")
	}
	if e.Kind != KindStar || e.X != 10 || e.Y != 20 {
		t.Errorf("Get() = %+v", e)
	}

	// Mutations through the pointer stick
	e.Y = 30
	e2, _ := a.Get(h)
	if e2.Y != 30 {
		t.Errorf("Y = %v, want 30", e2.Y)
	}

	if a.Len() != 1 {
		t.Errorf("Len() = %d, want 1", a.Len())
	}
}

func TestArenaDoubleDestroy(t *testing.T) {
	a := NewArena()
	h := a.Spawn(Entity{Kind: KindComet})

	if err := a.Destroy(h); err != nil {
		t.Fatalf("first Destroy() failed: %v", err)
	}
	if err := a.Destroy(h); !errors.Is(err, ErrStaleHandle) {
		t.Errorf("second Destroy() = %v, want ErrStaleHandle", err)
	}
	if a.Destroyed() != 1 {
		t.Errorf("Destroyed() = %d, want 1", a.Destroyed())
	}
	if a.Len() != 0 {
		t.Errorf("Len() = %d, want 0", a.Len())
	}
}

func TestArenaGenerationReuse(t *testing.T) {
	a := NewArena()
	old := a.Spawn(Entity{Kind: KindStar})
	a.Destroy(old)

	fresh := a.Spawn(Entity{Kind: KindRock})
	if fresh.Index != old.Index {
		t.Errorf("expected slot reuse, got index %d want %d", fresh.Index, old.Index)
	}
	if fresh.Gen == old.Gen {
		t.Error("reused slot should have a new generation")
	}

	if _, ok := a.Get(old); ok {
		t.Error("stale handle should not resolve")
	}
	if err := a.Destroy(old); !errors.Is(err, ErrStaleHandle) {
		t.Errorf("Destroy(stale) = %v, want ErrStaleHandle", err)
	}
	e, ok := a.Get(fresh)
	if !ok || e.Kind != KindRock {
		t.Errorf("fresh handle should resolve to the rock, got %+v %v", e, ok)
	}
}

func TestArenaZeroHandle(t *testing.T) {
	a := NewArena()
	a.Spawn(Entity{})
	if _, ok := a.Get(Handle{}); ok {
		t.Error("zero handle should never resolve")
	}
	if _, ok := a.Get(Handle{Index: 99, Gen: 1}); ok {
		t.Error("out of range handle should not resolve")
	}
}
