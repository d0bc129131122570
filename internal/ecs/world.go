package ecs

import (
	"maps"
	"slices"

	"github.com/jakecoffman/cp"
)

// EntityID is a unique identifier for an entity (never recycled)
type EntityID uint64

// World holds all component maps and the next entity ID
type World struct {
	nextID EntityID

	// Components
	Position     map[EntityID]Position
	Velocity     map[EntityID]Velocity
	Acceleration map[EntityID]Acceleration
	Hitbox       map[EntityID]Hitbox
	Hurtbox      map[EntityID]Hurtbox
	Collisions   map[EntityID]*Collisions

	// Tags
	IsPlayer    map[EntityID]struct{}
	IsPlayerRay map[EntityID]struct{}
	IsGround    map[EntityID]struct{}

	// Singleton references
	PlayerID EntityID
}

// NewWorld creates a new empty world
func NewWorld() *World {
	return &World{
		nextID:       1, // 0 is "nil"
		Position:     make(map[EntityID]Position),
		Velocity:     make(map[EntityID]Velocity),
		Acceleration: make(map[EntityID]Acceleration),
		Hitbox:       make(map[EntityID]Hitbox),
		Hurtbox:      make(map[EntityID]Hurtbox),
		Collisions:   make(map[EntityID]*Collisions),
		IsPlayer:     make(map[EntityID]struct{}),
		IsPlayerRay:  make(map[EntityID]struct{}),
		IsGround:     make(map[EntityID]struct{}),
	}
}

// NewEntity returns a new unique entity ID
func (w *World) NewEntity() EntityID {
	id := w.nextID
	w.nextID++
	return id
}

// DestroyEntity removes all components for an entity
func (w *World) DestroyEntity(id EntityID) {
	delete(w.Position, id)
	delete(w.Velocity, id)
	delete(w.Acceleration, id)
	delete(w.Hitbox, id)
	delete(w.Hurtbox, id)
	delete(w.Collisions, id)
	delete(w.IsPlayer, id)
	delete(w.IsPlayerRay, id)
	delete(w.IsGround, id)
	if w.PlayerID == id {
		w.PlayerID = 0
	}
}

// AttachHitbox makes the entity a passive collision target
func (w *World) AttachHitbox(id EntityID, shape CollisionShape, ct ColliderType) {
	w.Hitbox[id] = Hitbox{Shape: shape, ColliderType: ct}
}

// AttachHurtbox makes the entity a prober and gives it a collision buffer
func (w *World) AttachHurtbox(id EntityID, shape CollisionShape, ct ColliderType) {
	w.Hurtbox[id] = Hurtbox{Shape: shape, ColliderType: ct}
	if _, ok := w.Collisions[id]; !ok {
		w.Collisions[id] = &Collisions{}
	}
}

// CollisionsOf returns the entity's collisions for the current tick.
// It is empty outside the window between detection and cleanup.
func (w *World) CollisionsOf(id EntityID) []CollisionData {
	buf, ok := w.Collisions[id]
	if !ok {
		return nil
	}
	return buf.Entries()
}

// SpawnPlayer creates the player: a kinematic rect prober of the given size
func (w *World) SpawnPlayer(pos, size cp.Vector) EntityID {
	id := w.NewEntity()

	w.Position[id] = Position{Vector: pos}
	w.Velocity[id] = Velocity{}
	w.Acceleration[id] = Acceleration{}
	w.AttachHurtbox(id, RectShape(size), ColliderPlayer)
	w.IsPlayer[id] = struct{}{}

	w.PlayerID = id
	return id
}

// SpawnPlayerRay creates the ground probe ray as its own entity
func (w *World) SpawnPlayerRay(pos, ray cp.Vector) (EntityID, error) {
	shape, err := RayShape(ray)
	if err != nil {
		return 0, err
	}

	id := w.NewEntity()
	w.Position[id] = Position{Vector: pos}
	w.AttachHurtbox(id, shape, ColliderPlayerRay)
	w.IsPlayerRay[id] = struct{}{}

	return id, nil
}

// SpawnGround creates a static ground rectangle
func (w *World) SpawnGround(pos, size cp.Vector) EntityID {
	id := w.NewEntity()

	w.Position[id] = Position{Vector: pos}
	w.AttachHitbox(id, RectShape(size), ColliderGround)
	w.IsGround[id] = struct{}{}

	return id
}

// GetPlayerPosition returns the player's position
func (w *World) GetPlayerPosition() Position {
	return w.Position[w.PlayerID]
}

// PlayerSize returns the full extent of the player's rect hurtbox
func (w *World) PlayerSize(id EntityID) (cp.Vector, bool) {
	hb, ok := w.Hurtbox[id]
	if !ok || hb.Shape.Kind != ShapeRect {
		return cp.Vector{}, false
	}
	return hb.Shape.Vector, true
}

// PlayerIDs returns every player entity in ascending ID order
func (w *World) PlayerIDs() []EntityID {
	return sortedIDs(w.IsPlayer)
}

// sortedIDs returns map keys in ascending order so systems visit entities deterministically
func sortedIDs[V any](m map[EntityID]V) []EntityID {
	return slices.Sorted(maps.Keys(m))
}
