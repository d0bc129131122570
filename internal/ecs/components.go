package ecs

import (
	"errors"
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/younwookim/platformer/internal/domain/collision"
)

// ErrDegenerateRay is returned when a ray shape would have zero length.
var ErrDegenerateRay = errors.New("ecs: ray shape must have non-zero length")

// Position is an entity's center in world units (y-up)
type Position struct {
	cp.Vector
}

// Velocity is in world units per second
type Velocity struct {
	cp.Vector
}

// Acceleration is in world units per second².
// It is never reset automatically; input policy and the ground resolver set it.
type Acceleration struct {
	cp.Vector
}

// ShapeKind selects the geometry of a CollisionShape
type ShapeKind uint8

const (
	ShapeRect ShapeKind = iota + 1
	ShapeRay
)

// String returns the string representation of the shape kind
func (k ShapeKind) String() string {
	switch k {
	case ShapeRect:
		return "Rect"
	case ShapeRay:
		return "Ray"
	default:
		return fmt.Sprintf("ShapeKind(%d)", uint8(k))
	}
}

// CollisionShape is either a rectangle or a ray, both anchored at the owner's Position.
//
// For ShapeRect, Vector is the full extent (width, height).
// For ShapeRay, Vector is the displacement from the origin to the ray's end.
type CollisionShape struct {
	Kind   ShapeKind
	Vector cp.Vector
}

// RectShape returns a rectangle shape with the given full extent
func RectShape(extent cp.Vector) CollisionShape {
	return CollisionShape{Kind: ShapeRect, Vector: extent}
}

// RayShape returns a ray shape. A zero vector has no direction and is rejected.
func RayShape(vector cp.Vector) (CollisionShape, error) {
	if vector.X == 0 && vector.Y == 0 {
		return CollisionShape{}, ErrDegenerateRay
	}
	return CollisionShape{Kind: ShapeRay, Vector: vector}, nil
}

// ColliderType is the semantic role of a shape. It filters which geometric
// overlaps produce a collision.
type ColliderType uint8

const (
	ColliderPlayer ColliderType = iota + 1
	ColliderPlayerRay
	ColliderGround
)

// String returns the string representation of the collider type
func (c ColliderType) String() string {
	switch c {
	case ColliderPlayer:
		return "Player"
	case ColliderPlayerRay:
		return "PlayerRay"
	case ColliderGround:
		return "Ground"
	default:
		return fmt.Sprintf("ColliderType(%d)", uint8(c))
	}
}

// Hitbox is a passive shape that hurtboxes are tested against
type Hitbox struct {
	Shape        CollisionShape
	ColliderType ColliderType
}

// Hurtbox is an active shape that probes every hitbox each tick
type Hurtbox struct {
	Shape        CollisionShape
	ColliderType ColliderType
}

// CollisionType carries what the resolver needs to respond to a collision.
// Implementations: PlayerHitsGround, PlayerRayHitsGround.
type CollisionType interface {
	isCollisionType()
}

// PlayerHitsGround is produced by a Player rect overlapping a Ground rect.
// Ground values are copied at detection time.
type PlayerHitsGround struct {
	GroundPos  cp.Vector
	GroundSize cp.Vector
}

func (PlayerHitsGround) isCollisionType() {}

// PlayerRayHitsGround is produced by a PlayerRay crossing a Ground rect
type PlayerRayHitsGround struct {
	GroundPos  cp.Vector
	GroundSize cp.Vector
}

func (PlayerRayHitsGround) isCollisionType() {}

// CollisionData is one detected collision, stored on the prober
type CollisionData struct {
	Other EntityID
	Side  collision.Side
	Type  CollisionType
}

// Collisions is the per-tick collision buffer of a hurtbox owner.
// The detector appends, the resolver reads, and the cleanup step clears it.
// Slices returned by Entries are only valid until the next Clear.
type Collisions struct {
	entries []CollisionData
	changed bool
}

// Push appends a collision and marks the buffer changed for this tick
func (c *Collisions) Push(d CollisionData) {
	c.entries = append(c.entries, d)
	c.changed = true
}

// Entries returns the collisions in detection order
func (c *Collisions) Entries() []CollisionData {
	return c.entries
}

// Len returns the number of buffered collisions
func (c *Collisions) Len() int {
	return len(c.entries)
}

// Changed reports whether anything was pushed since the last Clear
func (c *Collisions) Changed() bool {
	return c.changed
}

// Clear empties the buffer, keeping its backing array for the next tick
func (c *Collisions) Clear() {
	clear(c.entries)
	c.entries = c.entries[:0]
	c.changed = false
}
